package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pageview/internal/page"
	"github.com/atomicstack/pageview/internal/ui/state"
)

// KeyHandler lets an embedder act on key presses. It runs after the built-in
// key handling with a copy of the session, and the session it returns
// replaces the current one. A non-nil error ends the session.
type KeyHandler interface {
	HandleKey(msg tea.KeyMsg, s state.Session) (state.Session, error)
}

// KeyHandlerFunc adapts a function to KeyHandler.
type KeyHandlerFunc func(msg tea.KeyMsg, s state.Session) (state.Session, error)

func (f KeyHandlerFunc) HandleKey(msg tea.KeyMsg, s state.Session) (state.Session, error) {
	return f(msg, s)
}

// Identity leaves the session untouched.
var Identity KeyHandler = KeyHandlerFunc(func(_ tea.KeyMsg, s state.Session) (state.Session, error) {
	return s, nil
})

// OnEnter calls fn with the selected page whenever enter is pressed and a
// page is selected.
func OnEnter(fn func(page.Ranked) error) KeyHandler {
	return KeyHandlerFunc(func(msg tea.KeyMsg, s state.Session) (state.Session, error) {
		if msg.Type != tea.KeyEnter || fn == nil {
			return s, nil
		}
		current, ok := s.Current()
		if !ok {
			return s, nil
		}
		return s, fn(current)
	})
}

// Chain runs handlers in order, feeding each the session returned by the
// previous one. It stops at the first error.
func Chain(handlers ...KeyHandler) KeyHandler {
	return KeyHandlerFunc(func(msg tea.KeyMsg, s state.Session) (state.Session, error) {
		for _, h := range handlers {
			if h == nil {
				continue
			}
			next, err := h.HandleKey(msg, s)
			if err != nil {
				return s, err
			}
			s = next
		}
		return s, nil
	})
}
