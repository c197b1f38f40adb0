package state

import (
	"math"
	"testing"

	"github.com/atomicstack/pageview/internal/page"
)

func newTestSession(titles ...string) Session {
	pages := make([]page.Page, len(titles))
	for i, title := range titles {
		pages[i] = page.New(title, title+" contents")
	}
	return New(pages)
}

func TestNewSelectsFirstRow(t *testing.T) {
	s := newTestSession("a", "b")
	if s.Selected != 0 {
		t.Fatalf("expected selection 0, got %d", s.Selected)
	}
	if !s.DockVisible || s.PopupVisible {
		t.Fatalf("unexpected toggles dock=%v popup=%v", s.DockVisible, s.PopupVisible)
	}
	if len(s.View) != 2 || s.View[1].Title != "b" {
		t.Fatalf("expected unfiltered view, got %#v", s.View)
	}

	empty := New(nil)
	if empty.Selected != NoSelection {
		t.Fatalf("expected no selection for empty session, got %d", empty.Selected)
	}
}

func TestSelectNextClampsAtEnd(t *testing.T) {
	s := newTestSession("a", "b", "c")
	if !s.SelectNext() || s.Selected != 1 {
		t.Fatalf("expected selection 1, got %d", s.Selected)
	}
	s.SelectNext()
	s.Scroll = 7
	if s.SelectNext() {
		t.Fatalf("expected no movement past the last row")
	}
	if s.Selected != 2 {
		t.Fatalf("expected selection to stay at 2, got %d", s.Selected)
	}
	if s.Scroll != 0 {
		t.Fatalf("expected scroll reset, got %d", s.Scroll)
	}
}

func TestSelectPreviousClampsAtStart(t *testing.T) {
	s := newTestSession("a", "b")
	s.Selected = 1
	s.Scroll = 3
	if !s.SelectPrevious() || s.Selected != 0 {
		t.Fatalf("expected selection 0, got %d", s.Selected)
	}
	if s.Scroll != 0 {
		t.Fatalf("expected scroll reset, got %d", s.Scroll)
	}
	if s.SelectPrevious() {
		t.Fatalf("expected no movement before the first row")
	}
	if s.Selected != 0 {
		t.Fatalf("expected selection to stay at 0, got %d", s.Selected)
	}
}

func TestSelectionStaysInBounds(t *testing.T) {
	s := newTestSession("a", "b", "c", "d")
	moves := []func() bool{s.SelectNext, s.SelectNext, s.SelectPrevious, s.SelectNext, s.SelectNext, s.SelectNext, s.SelectNext}
	for i, move := range moves {
		move()
		if s.Selected < 0 || s.Selected >= len(s.View) {
			t.Fatalf("move %d left selection out of range: %d", i, s.Selected)
		}
	}
	if !s.SelectFirst() || s.Selected != 0 {
		t.Fatalf("expected first row, got %d", s.Selected)
	}
	if !s.SelectLast() || s.Selected != 3 {
		t.Fatalf("expected last row, got %d", s.Selected)
	}
}

func TestSelectOnEmptyView(t *testing.T) {
	s := New(nil)
	if s.SelectNext() || s.SelectPrevious() {
		t.Fatalf("expected no movement on empty view")
	}
	if s.Selected != NoSelection {
		t.Fatalf("expected no selection, got %d", s.Selected)
	}
}

func TestSelectFromNoSelection(t *testing.T) {
	s := newTestSession("a", "b")
	s.Selected = NoSelection
	if !s.SelectNext() || s.Selected != 0 {
		t.Fatalf("expected selection 0, got %d", s.Selected)
	}
}

func TestScrollSaturates(t *testing.T) {
	s := newTestSession("a")
	if s.ScrollUp() {
		t.Fatalf("expected no movement above zero")
	}
	if s.Scroll != 0 {
		t.Fatalf("expected scroll 0, got %d", s.Scroll)
	}
	if !s.ScrollDown() || s.Scroll != 1 {
		t.Fatalf("expected scroll 1, got %d", s.Scroll)
	}
	s.Scroll = math.MaxUint16
	if s.ScrollDown() {
		t.Fatalf("expected no movement at maximum offset")
	}
	if s.Scroll != math.MaxUint16 {
		t.Fatalf("expected scroll to stay at max, got %d", s.Scroll)
	}
	s.Scroll = 2
	s.ScrollBy(-5)
	if s.Scroll != 0 {
		t.Fatalf("expected scroll clamped to 0, got %d", s.Scroll)
	}
}

func TestTogglesLeaveSelectionAlone(t *testing.T) {
	s := newTestSession("a", "b")
	s.Selected = 1
	s.Scroll = 4
	s.ToggleDock()
	s.TogglePopup()
	if s.DockVisible || !s.PopupVisible {
		t.Fatalf("unexpected toggles dock=%v popup=%v", s.DockVisible, s.PopupVisible)
	}
	if s.Selected != 1 || s.Scroll != 4 {
		t.Fatalf("expected selection and scroll untouched, got %d/%d", s.Selected, s.Scroll)
	}
	s.ToggleDock()
	if !s.DockVisible {
		t.Fatalf("expected dock visible after second toggle")
	}
}

func TestCurrentTextNeverPanics(t *testing.T) {
	s := newTestSession("a", "b")
	if got := s.CurrentText(); got != "a contents" {
		t.Fatalf("expected first page contents, got %q", got)
	}
	for _, idx := range []int{NoSelection, 2, 100, -42} {
		s.Selected = idx
		if got := s.CurrentText(); got != "" {
			t.Fatalf("expected empty text for index %d, got %q", idx, got)
		}
	}
}
