package ui

import (
	"fmt"

	"github.com/atomicstack/pageview/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return m.quit(keyMsg.String())
	}
	if !keyMsg.Alt {
		switch {
		case key.Matches(keyMsg, m.keys.Backspace):
			m.handleTextInput(keyMsg)
		case m.handleNavigationKey(keyMsg):
		case !isControlKey(keyMsg):
			m.handleTextInput(keyMsg)
		}
	}
	if err := m.runHook(keyMsg); err != nil {
		m.err = err
		m.quitting = true
		return tea.Quit
	}
	return m.scheduleDebounce()
}

// handleNavigationKey applies the control key table. Unrecognised
// combinations are ignored.
func (m *Model) handleNavigationKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.selectNext()
	case key.Matches(msg, m.keys.Previous):
		m.selectPrevious()
	case key.Matches(msg, m.keys.ScrollDown):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.ToggleDock):
		m.session.ToggleDock()
		events.Nav.Toggle("dock", m.session.DockVisible)
	case key.Matches(msg, m.keys.TogglePopup):
		m.session.TogglePopup()
		events.Nav.Toggle("popup", m.session.PopupVisible)
	case key.Matches(msg, m.keys.DeleteWord):
		if m.session.DeleteQueryWordBackward() {
			events.Search.Backspace(m.session.QueryString())
		}
	default:
		return false
	}
	return true
}

// handleTextInput edits the query buffer. Keys other than backspace and
// printable characters leave the buffer alone.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	if key.Matches(msg, m.keys.Backspace) {
		if !m.session.PopQuery() {
			return false
		}
		events.Search.Backspace(m.session.QueryString())
		return true
	}
	switch msg.Type {
	case tea.KeyRunes:
		if !m.session.PushQuery(msg.Runes...) {
			return false
		}
	case tea.KeySpace:
		m.session.PushQuery(' ')
	default:
		return false
	}
	events.Search.Append(m.session.QueryString())
	return true
}

func (m *Model) runHook(msg tea.KeyMsg) error {
	if m.hook == nil {
		return nil
	}
	events.Session.Hook(msg.String())
	next, err := m.hook.HandleKey(msg, m.session.Clone())
	if err != nil {
		events.Session.HookError(msg.String(), err)
		return fmt.Errorf("key handler: %w", err)
	}
	popupBefore := m.session.PopupVisible
	m.session = next
	m.session.Normalize()
	if m.session.PopupVisible != popupBefore {
		events.Session.Popup(m.session.PopupVisible, "hook")
	}
	return nil
}

func (m *Model) quit(trigger string) tea.Cmd {
	events.Session.Quit(trigger)
	m.quitting = true
	return tea.Quit
}

func (m *Model) searchPrompt() string {
	prompt := render(styles.FilterPrompt, "» ")
	query := m.session.QueryString()
	if query == "" {
		placeholder := []rune("(type to search)")
		m.filterCursor.SetChar(string(placeholder[0]))
		return prompt + m.filterCursor.View() + render(styles.FilterPlaceholder, string(placeholder[1:]))
	}
	m.filterCursor.SetChar(" ")
	return prompt + render(styles.Filter, query) + m.filterCursor.View()
}
