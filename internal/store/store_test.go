package store

import (
	"math"
	"testing"

	"github.com/atomicstack/pageview/internal/page"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	page.StaticSource
	keywordCalls int
}

func (c *countingSource) Keywords() []string {
	c.keywordCalls++
	return c.StaticSource.Keywords()
}

func titles(view []page.Ranked) []string {
	out := make([]string, len(view))
	for i, r := range view {
		out[i] = r.Title
	}
	return out
}

func samplePages() []page.Page {
	return []page.Page{
		page.New("Intro", "rust is fast"),
		page.New("Guide", "go is simple"),
		page.New("Tour", "go go go, rust rust"),
		page.New("Appendix", "nothing relevant"),
	}
}

func TestApplyEmptyQueryReturnsAllPagesInOrder(t *testing.T) {
	s := New(page.StaticSource{Items: samplePages()})
	for _, q := range []string{"", "   ", "\t"} {
		view := s.Apply(q)
		require.Equal(t, []string{"Intro", "Guide", "Tour", "Appendix"}, titles(view))
		for _, r := range view {
			require.Zero(t, r.Relevancy)
		}
	}
}

func TestApplyKeepsOnlyPositiveRelevancy(t *testing.T) {
	s := New(page.StaticSource{Items: samplePages()})
	for _, q := range []string{"go", "rust", "is", "nothing", "zzz", "Go Rust"} {
		view := s.Apply(q)
		for _, r := range view {
			require.Positive(t, r.Relevancy, "query %q page %q", q, r.Title)
		}
	}
	require.Empty(t, s.Apply("zzz"))
}

func TestApplySortsByRelevancyDescendingStable(t *testing.T) {
	s := New(page.StaticSource{Items: samplePages()})
	view := s.Apply("go")
	require.Equal(t, []string{"Tour", "Guide"}, titles(view))
	require.Equal(t, uint64(3), view[0].Relevancy)

	view = s.Apply("is")
	require.Equal(t, []string{"Intro", "Guide"}, titles(view), "ties keep load order")
	for i := 1; i < len(view); i++ {
		require.GreaterOrEqual(t, view[i-1].Relevancy, view[i].Relevancy)
	}
}

func TestApplyUsesKeywordsOncePerPass(t *testing.T) {
	src := &countingSource{StaticSource: page.StaticSource{Items: samplePages(), Priority: []string{"simple"}}}
	s := New(src)
	view := s.Apply("simple")
	require.Equal(t, []string{"Guide"}, titles(view))
	require.Equal(t, uint64(10), view[0].Relevancy)
	require.Equal(t, 1, src.keywordCalls)

	s.Apply("")
	require.Equal(t, 1, src.keywordCalls, "blank queries skip scoring")
}

func TestApplySortFieldOverridesRelevancy(t *testing.T) {
	pages := []page.Page{
		page.New("low", "go").WithSortField(1),
		page.New("high", "go go go").WithSortField(3),
		page.New("mid", "go go").WithSortField(2),
	}
	s := New(page.StaticSource{Items: pages})
	require.Equal(t, []string{"high", "mid", "low"}, titles(s.Apply("go")))

	pages[0] = page.New("low", "go go go go").WithSortField(1)
	s = New(page.StaticSource{Items: pages})
	require.Equal(t, []string{"high", "mid", "low"}, titles(s.Apply("go")))
}

func TestCompareTreatsNaNAsMinimal(t *testing.T) {
	nan := page.Ranked{Page: page.New("nan", "x").WithSortField(math.NaN())}
	one := page.Ranked{Page: page.New("one", "x").WithSortField(1)}
	require.Equal(t, 1, Compare(nan, one), "NaN sorts after numbers")
	require.Equal(t, -1, Compare(one, nan))
	require.Zero(t, Compare(nan, nan))

	s := New(page.StaticSource{Items: []page.Page{nan.Page, one.Page}})
	require.Equal(t, []string{"one", "nan"}, titles(s.Apply("x")))
}

func TestCompareBranchesOnLeftOperandOnly(t *testing.T) {
	with := page.Ranked{Page: page.New("with", "x").WithSortField(1), Relevancy: 1}
	without := page.Ranked{Page: page.New("without", "x"), Relevancy: 5}
	// left carries a field: the absent right-hand field sorts after it
	require.Equal(t, -1, Compare(with, without))
	// left has no field: relevancy decides, so each page claims first place
	require.Equal(t, -1, Compare(without, with))
}

func TestPagesReturnsCopy(t *testing.T) {
	s := New(page.StaticSource{Items: samplePages()})
	pages := s.Pages()
	pages[0].Title = "changed"
	require.Equal(t, "Intro", s.Pages()[0].Title)
	require.Equal(t, 4, s.Len())
}

func TestNilSource(t *testing.T) {
	s := New(nil)
	require.Zero(t, s.Len())
	require.Empty(t, s.Apply("go"))
	require.Empty(t, s.Apply(""))
}

func TestSuggestRanksClosestTitles(t *testing.T) {
	s := New(page.StaticSource{Items: []page.Page{
		page.New("Getting Started", "a"),
		page.New("Configuration", "b"),
		page.New("Config Reference", "c"),
	}})
	got := s.Suggest("cfg", 2)
	require.Len(t, got, 2)
	require.ElementsMatch(t, []string{"Configuration", "Config Reference"}, got)
	require.Nil(t, s.Suggest("", 3))
	require.Nil(t, s.Suggest("cfg", 0))
	require.Empty(t, s.Suggest("qqq", 3))
}
