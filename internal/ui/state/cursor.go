package state

import (
	"math"

	"github.com/atomicstack/pageview/internal/page"
)

// SelectNext moves the selection one row down without wrapping. The scroll
// offset resets even when the selection is already on the last row.
func (s *Session) SelectNext() bool {
	return s.moveSelectionBy(1)
}

// SelectPrevious moves the selection one row up without wrapping.
func (s *Session) SelectPrevious() bool {
	return s.moveSelectionBy(-1)
}

// SelectFirst moves the selection to the first row.
func (s *Session) SelectFirst() bool {
	return s.moveSelectionBy(-len(s.View))
}

// SelectLast moves the selection to the last row.
func (s *Session) SelectLast() bool {
	return s.moveSelectionBy(len(s.View))
}

func (s *Session) moveSelectionBy(delta int) bool {
	s.Scroll = 0
	if len(s.View) == 0 {
		s.Selected = NoSelection
		return false
	}
	old := s.Selected
	if s.Selected < 0 {
		s.Selected = 0
		return true
	}
	s.Selected += delta
	if s.Selected < 0 {
		s.Selected = 0
	}
	if s.Selected >= len(s.View) {
		s.Selected = len(s.View) - 1
	}
	return s.Selected != old
}

// ScrollDown advances the reader by one line, saturating at the maximum offset.
func (s *Session) ScrollDown() bool {
	return s.ScrollBy(1)
}

// ScrollUp moves the reader back by one line, saturating at zero.
func (s *Session) ScrollUp() bool {
	return s.ScrollBy(-1)
}

// ScrollBy shifts the reader offset by delta lines, saturating at both ends.
func (s *Session) ScrollBy(delta int) bool {
	old := s.Scroll
	next := int(s.Scroll) + delta
	if next < 0 {
		next = 0
	}
	if next > math.MaxUint16 {
		next = math.MaxUint16
	}
	s.Scroll = uint16(next)
	return s.Scroll != old
}

// ToggleDock flips the directory pane visibility.
func (s *Session) ToggleDock() {
	s.DockVisible = !s.DockVisible
}

// TogglePopup flips the popup overlay visibility.
func (s *Session) TogglePopup() {
	s.PopupVisible = !s.PopupVisible
}

// Current returns the selected page, if any.
func (s Session) Current() (page.Ranked, bool) {
	if s.Selected < 0 || s.Selected >= len(s.View) {
		return page.Ranked{}, false
	}
	return s.View[s.Selected], true
}

// CurrentText returns the contents of the selected page or an empty string
// when nothing is selected.
func (s Session) CurrentText() string {
	if current, ok := s.Current(); ok {
		return current.Contents
	}
	return ""
}
