package store

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/atomicstack/pageview/internal/logging/events"
	"github.com/atomicstack/pageview/internal/page"
	"github.com/atomicstack/pageview/internal/search"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

type entry struct {
	page          page.Page
	lowerTitle    string
	lowerContents string
}

// Store owns the full page set loaded from a source and derives filtered,
// ranked views from it.
type Store struct {
	source  page.Source
	pages   []page.Page
	entries []entry
}

// New loads the pages from src once.
func New(src page.Source) *Store {
	s := &Store{source: src}
	if src == nil {
		return s
	}
	s.pages = src.Pages()
	s.entries = make([]entry, len(s.pages))
	for i, p := range s.pages {
		s.entries[i] = entry{
			page:          p,
			lowerTitle:    strings.ToLower(p.Title),
			lowerContents: strings.ToLower(p.Contents),
		}
	}
	return s
}

// Pages returns a copy of the load-time page set.
func (s *Store) Pages() []page.Page {
	dup := make([]page.Page, len(s.pages))
	copy(dup, s.pages)
	return dup
}

// Len reports the number of loaded pages.
func (s *Store) Len() int {
	return len(s.pages)
}

// Apply returns the view for query: every page in load order when the query
// is blank, otherwise the pages with a positive relevancy ordered by Compare.
func (s *Store) Apply(query string) []page.Ranked {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return page.Unranked(s.pages)
	}
	var keywords []string
	if s.source != nil {
		keywords = s.source.Keywords()
	}
	candidates := search.Candidates(query)
	set := search.NewKeywordSet(keywords)
	view := make([]page.Ranked, 0, len(s.entries))
	for _, e := range s.entries {
		relevancy := search.ScoreCandidates(candidates, set, e.lowerTitle, e.lowerContents)
		if relevancy == 0 {
			continue
		}
		view = append(view, page.Ranked{Page: e.page, Relevancy: relevancy})
	}
	slices.SortStableFunc(view, Compare)
	events.Search.Apply(query, len(candidates), len(view), len(s.entries))
	return view
}

// Compare orders ranked pages for display. When a carries a sort field both
// pages are ordered by sort field, descending, with an absent field sorting
// after a present one. Otherwise relevancy decides, descending. Only the
// left-hand page is inspected when picking the branch, so collections that mix
// pages with and without sort fields do not get a consistent order.
func Compare(a, b page.Ranked) int {
	if a.SortField != nil {
		return compareOptional(b.SortField, a.SortField)
	}
	return cmp.Compare(b.Relevancy, a.Relevancy)
}

// compareOptional treats nil as smaller than any value and NaN as smaller
// than any number.
func compareOptional(x, y *float64) int {
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	case y == nil:
		return 1
	}
	xn, yn := math.IsNaN(*x), math.IsNaN(*y)
	switch {
	case xn && yn:
		return 0
	case xn:
		return -1
	case yn:
		return 1
	}
	return cmp.Compare(*x, *y)
}

// Suggest returns up to limit page titles closest to query by fuzzy
// distance. It is only used to hint at alternatives when a query has no
// results and never affects ranking.
func (s *Store) Suggest(query string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || len(s.pages) == 0 || limit <= 0 {
		return nil
	}
	titles := make([]string, len(s.pages))
	for i, p := range s.pages {
		titles[i] = p.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	if len(ranks) == 0 {
		for _, word := range strings.Fields(query) {
			ranks = append(ranks, fuzzy.RankFindNormalizedFold(word, titles)...)
		}
	}
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.OriginalIndex, b.OriginalIndex)
	})
	seen := make(map[int]struct{}, len(ranks))
	out := make([]string, 0, limit)
	for _, rank := range ranks {
		if _, ok := seen[rank.OriginalIndex]; ok {
			continue
		}
		seen[rank.OriginalIndex] = struct{}{}
		out = append(out, rank.Target)
		if len(out) == limit {
			break
		}
	}
	events.Search.Suggest(query, out)
	return out
}
