package page

// Page is one unit of displayable content.
type Page struct {
	Title    string
	Contents string
	// SortField, when set, takes over ordering of filtered results.
	SortField *float64
	// Source optionally records where the page came from (a file path, a URL).
	Source string
}

// Ranked pairs a page with the relevancy computed for it by a filter pass.
// Relevancy is zero for unfiltered views.
type Ranked struct {
	Page
	Relevancy uint64
}

// Source supplies the pages shown in a session and the priority phrases that
// boost ranking.
type Source interface {
	Pages() []Page
	Keywords() []string
}

// New constructs a page without a sort field.
func New(title, contents string) Page {
	return Page{Title: title, Contents: contents}
}

// WithSortField returns a copy of p carrying the given sort key.
func (p Page) WithSortField(v float64) Page {
	p.SortField = &v
	return p
}

// Unranked wraps pages with a zero relevancy, preserving order.
func Unranked(pages []Page) []Ranked {
	out := make([]Ranked, len(pages))
	for i, p := range pages {
		out[i] = Ranked{Page: p}
	}
	return out
}

// StaticSource is a fixed Source, handy for embedders with a literal page set.
type StaticSource struct {
	Items    []Page
	Priority []string
}

func (s StaticSource) Pages() []Page {
	dup := make([]Page, len(s.Items))
	copy(dup, s.Items)
	return dup
}

func (s StaticSource) Keywords() []string {
	return s.Priority
}
