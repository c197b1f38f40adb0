package state

import "github.com/atomicstack/pageview/internal/page"

// NoSelection marks a session whose view is empty.
const NoSelection = -1

// Session is the complete interactive state of a viewer session. It is a
// value type: embedder hooks receive a copy and return the state that
// replaces the current one.
type Session struct {
	// Pages is the load-time page set and is never modified.
	Pages []page.Page
	// View is the filtered, ranked sequence currently displayed. It is
	// replaced wholesale by SetView.
	View []page.Ranked
	// Query holds the characters typed into the search field.
	Query []rune
	// LastQuery is the query the current View was computed from.
	LastQuery []rune
	// Selected indexes View, or NoSelection.
	Selected int
	// Scroll is the reader offset into the selected page, in lines.
	Scroll uint16

	DockVisible  bool
	PopupVisible bool
	PopupContent string
}

// New builds a session showing every page unfiltered with the first row
// selected and the dock visible.
func New(pages []page.Page) Session {
	s := Session{
		Pages:       clonePages(pages),
		DockVisible: true,
	}
	s.SetView(page.Unranked(s.Pages))
	return s
}

// Clone returns a deep copy of the mutable slices so the copy can be handed
// to code that may modify it.
func (s Session) Clone() Session {
	dup := s
	dup.Pages = clonePages(s.Pages)
	if s.View != nil {
		dup.View = make([]page.Ranked, len(s.View))
		copy(dup.View, s.View)
	}
	dup.Query = cloneRunes(s.Query)
	dup.LastQuery = cloneRunes(s.LastQuery)
	return dup
}

// SetView replaces the view and resets selection and scroll.
func (s *Session) SetView(view []page.Ranked) {
	s.View = view
	s.Scroll = 0
	if len(view) == 0 {
		s.Selected = NoSelection
		return
	}
	s.Selected = 0
}

// Normalize clamps the selection into the current view. Hooks may return
// sessions with arbitrary indices; rendering relies on this running first.
func (s *Session) Normalize() {
	switch {
	case len(s.View) == 0:
		s.Selected = NoSelection
	case s.Selected < 0:
		s.Selected = 0
	case s.Selected >= len(s.View):
		s.Selected = len(s.View) - 1
	}
}

func clonePages(pages []page.Page) []page.Page {
	if pages == nil {
		return nil
	}
	dup := make([]page.Page, len(pages))
	copy(dup, pages)
	return dup
}

func cloneRunes(r []rune) []rune {
	if r == nil {
		return nil
	}
	dup := make([]rune, len(r))
	copy(dup, r)
	return dup
}
