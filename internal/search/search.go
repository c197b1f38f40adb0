// Package search scores pages against a query by counting literal phrase hits.
//
// A query of n words produces every order-preserving subset of its words with
// at least max(1, n-3) members. Each distinct subset, joined by single spaces,
// is a candidate phrase. Candidates found in the page body contribute
//
//	keyword * words^5 * (bodyHits + 25*titleHits)
//
// where keyword is 10 for phrases listed as priority keywords and 1 otherwise.
package search

import (
	"strings"

	"github.com/atomicstack/pageview/internal/page"
)

const (
	titleWeight      = 25
	keywordBoost     = 10
	sizeExponent     = 5
	maxDroppedWords  = 3
	candidateJoinSep = " "
)

// Candidates returns the deduplicated candidate phrases for query in
// generation order. The query is expected to be trimmed and lower-cased.
func Candidates(query string) []string {
	words := strings.Split(query, " ")
	n := len(words)
	minSize := n - maxDroppedWords
	if minSize < 1 {
		minSize = 1
	}
	seen := make(map[string]struct{})
	out := make([]string, 0, n)
	for k := minSize; k <= n; k++ {
		combinations(n, k, func(idx []int) {
			parts := make([]string, len(idx))
			for i, j := range idx {
				parts[i] = words[j]
			}
			phrase := strings.TrimSpace(strings.ToLower(strings.Join(parts, candidateJoinSep)))
			if phrase == "" {
				return
			}
			if _, ok := seen[phrase]; ok {
				return
			}
			seen[phrase] = struct{}{}
			out = append(out, phrase)
		})
	}
	return out
}

// combinations calls fn with every k-sized subset of [0, n) in lexicographic
// order. The slice passed to fn is reused between calls.
func combinations(n, k int, fn func([]int)) {
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// KeywordSet normalizes priority phrases for membership tests.
type KeywordSet map[string]struct{}

// NewKeywordSet trims and lower-cases each keyword.
func NewKeywordSet(keywords []string) KeywordSet {
	set := make(KeywordSet, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(strings.ToLower(kw))
		if kw == "" {
			continue
		}
		set[kw] = struct{}{}
	}
	return set
}

// Has reports whether phrase is a priority keyword.
func (s KeywordSet) Has(phrase string) bool {
	_, ok := s[phrase]
	return ok
}

// ScoreCandidates accumulates the relevancy of title and contents for a
// precomputed candidate list. Matching is literal, so callers wanting
// case-insensitive behaviour pass lower-cased text.
func ScoreCandidates(candidates []string, keywords KeywordSet, title, contents string) uint64 {
	var relevancy uint64
	for _, phrase := range candidates {
		if !strings.Contains(contents, phrase) {
			continue
		}
		size := pow(uint64(len(strings.Split(phrase, " "))), sizeExponent)
		boost := uint64(1)
		if keywords.Has(phrase) {
			boost = keywordBoost
		}
		bodyHits := uint64(strings.Count(contents, phrase))
		titleHits := titleWeight * uint64(strings.Count(title, phrase))
		relevancy += boost * size * (bodyHits + titleHits)
	}
	return relevancy
}

// Score computes the relevancy of a title/contents pair for query.
func Score(query string, keywords []string, title, contents string) uint64 {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return 0
	}
	return ScoreCandidates(Candidates(query), NewKeywordSet(keywords), title, contents)
}

// ScorePage scores p case-insensitively.
func ScorePage(p page.Page, query string, keywords []string) uint64 {
	return Score(query, keywords, strings.ToLower(p.Title), strings.ToLower(p.Contents))
}

func pow(base uint64, exp int) uint64 {
	result := uint64(1)
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
