package ui

import (
	"strings"
	"time"

	"github.com/atomicstack/pageview/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	wheelStep       = 3
	suggestionLimit = 3
)

type debounceMsg struct {
	seq uint64
}

func (m *Model) selectNext() {
	if m.session.SelectNext() {
		m.traceSelection()
	}
}

func (m *Model) selectPrevious() {
	if m.session.SelectPrevious() {
		m.traceSelection()
	}
}

func (m *Model) traceSelection() {
	title := ""
	if current, ok := m.session.Current(); ok {
		title = current.Title
	}
	events.Nav.Select(m.session.Selected, title)
}

func (m *Model) scrollBy(delta int) {
	if m.session.ScrollBy(delta) {
		events.Nav.Scroll(m.session.Scroll)
	}
}

// scheduleDebounce starts a new idle window. Windows opened earlier are
// superseded and ignored when they fire.
func (m *Model) scheduleDebounce() tea.Cmd {
	m.seq++
	seq := m.seq
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

func (m *Model) handleDebounceMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(debounceMsg)
	if !ok || tick.seq != m.seq {
		return nil
	}
	if !m.session.Dirty() {
		return nil
	}
	events.Search.Debounce(m.session.QueryString(), tick.seq)
	m.applySearch()
	return nil
}

// applySearch recomputes the view from the query buffer and resets the
// selection to the first row.
func (m *Model) applySearch() {
	query := m.session.QueryString()
	view := m.store.Apply(query)
	m.session.ApplyView(view)
	m.listOffset = 0
	m.suggestions = nil
	if len(view) == 0 && strings.TrimSpace(query) != "" {
		m.suggestions = m.store.Suggest(query, suggestionLimit)
	}
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch {
	case ev.Button == tea.MouseButtonWheelUp:
		m.scrollBy(-wheelStep)
	case ev.Button == tea.MouseButtonWheelDown:
		m.scrollBy(wheelStep)
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		if m.session.PopupVisible {
			events.Session.Popup(false, "mouse")
		}
		m.session.PopupVisible = false
	}
	// Any input, keyboard or mouse, restarts the idle window.
	return m.scheduleDebounce()
}

// ensureListVisible keeps the selected directory row inside a window of
// maxVisible rows.
func (m *Model) ensureListVisible(maxVisible int) {
	total := len(m.session.View)
	if total == 0 || maxVisible <= 0 {
		m.listOffset = 0
		return
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.listOffset > maxOffset {
		m.listOffset = maxOffset
	}
	if m.listOffset < 0 {
		m.listOffset = 0
	}
	selected := m.session.Selected
	if selected < 0 {
		return
	}
	if selected < m.listOffset {
		m.listOffset = selected
	}
	if upper := m.listOffset + maxVisible - 1; selected > upper {
		m.listOffset = selected - maxVisible + 1
	}
}
