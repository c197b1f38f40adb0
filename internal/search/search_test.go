package search

import (
	"strings"
	"testing"

	"github.com/atomicstack/pageview/internal/page"
	"github.com/stretchr/testify/require"
)

func TestCandidatesShortQueryTriesEverySize(t *testing.T) {
	got := Candidates("rust is fast")
	want := []string{
		"rust", "is", "fast",
		"rust is", "rust fast", "is fast",
		"rust is fast",
	}
	require.Equal(t, want, got)
}

func TestCandidatesLongQueryBoundsSubsetSize(t *testing.T) {
	got := Candidates("a b c d e")
	// sizes 2..5: C(5,2)+C(5,3)+C(5,4)+C(5,5)
	require.Len(t, got, 10+10+5+1)
	for _, phrase := range got {
		require.GreaterOrEqual(t, len(strings.Fields(phrase)), 2, "phrase %q below minimum size", phrase)
	}
	require.Equal(t, "a b c d e", got[len(got)-1])
}

func TestCandidatesDeduplicates(t *testing.T) {
	require.Equal(t, []string{"go", "go go"}, Candidates("go go"))
}

func TestCandidatesPreserveWordOrder(t *testing.T) {
	for _, phrase := range Candidates("one two three") {
		require.NotEqual(t, "two one", phrase)
		require.NotEqual(t, "three one", phrase)
	}
}

func TestCandidatesSkipEmptyPhrase(t *testing.T) {
	for _, phrase := range Candidates("a  b") {
		require.NotEmpty(t, phrase)
	}
}

func TestScoreSingleWordScenario(t *testing.T) {
	intro := page.New("Intro", "rust is fast")
	guide := page.New("Guide", "go is simple")
	require.Equal(t, uint64(1), ScorePage(intro, "is", nil))
	require.Equal(t, uint64(1), ScorePage(guide, "is", nil))
}

func TestScoreOnlyLiteralSubstringsContribute(t *testing.T) {
	p := page.New("Intro", "rust is fast")
	// rust, is, fast: 1 each; "rust is", "is fast": 2^5 each; full phrase 3^5.
	// "rust fast" is a keyword but never appears literally.
	got := ScorePage(p, "rust is fast", []string{"rust fast"})
	require.Equal(t, uint64(3+32+32+243), got)
}

func TestScoreKeywordBoost(t *testing.T) {
	p := page.New("Notes", "rust is fast")
	plain := ScorePage(p, "rust", nil)
	boosted := ScorePage(p, "rust", []string{"  Rust "})
	require.Equal(t, uint64(1), plain)
	require.Equal(t, uint64(10), boosted)
}

func TestScoreTitleHitsWeighted(t *testing.T) {
	p := page.New("Rust", "rust")
	require.Equal(t, uint64(1+25), ScorePage(p, "rust", nil))
}

func TestScoreTitleOnlyMatchDoesNotCount(t *testing.T) {
	p := page.New("Rust", "nothing here")
	require.Zero(t, ScorePage(p, "rust", nil))
}

func TestScoreCountsNonOverlapping(t *testing.T) {
	p := page.New("", "aaaa")
	require.Equal(t, uint64(2), ScorePage(p, "aa", nil))
}

func TestScoreIsCaseInsensitive(t *testing.T) {
	p := page.New("Guide", "Go Is Simple")
	require.Equal(t, uint64(1+1+32), ScorePage(p, "GO is", nil))
}

func TestScoreEmptyQuery(t *testing.T) {
	require.Zero(t, Score("   ", nil, "title", "contents"))
}

func TestScoreMonotonicInMatchCount(t *testing.T) {
	queries := []string{"is", "rust is", "fast rust", "a b c d e"}
	base := "rust is fast and a b c d e"
	for _, q := range queries {
		before := ScorePage(page.New("t", base), q, nil)
		for _, phrase := range Candidates(q) {
			after := ScorePage(page.New("t", base+" "+phrase), q, nil)
			require.GreaterOrEqual(t, after, before, "query %q phrase %q", q, phrase)
		}
	}
}

func TestCombinationsLexicographic(t *testing.T) {
	var got [][]int
	combinations(4, 2, func(idx []int) {
		got = append(got, append([]int(nil), idx...))
	})
	require.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, got)

	calls := 0
	combinations(2, 3, func([]int) { calls++ })
	require.Zero(t, calls)
}
