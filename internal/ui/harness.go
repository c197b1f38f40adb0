package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for tests. Commands returned
// by the model are queued rather than run, so callers decide when timers
// such as the debounce tick fire.
type Harness struct {
	model   *Model
	pending []tea.Cmd
	quit    bool
}

// NewHarness creates a harness for the provided model and queues its Init
// command.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model}
	if model != nil {
		h.enqueue(model.Init())
	}
	return h
}

// Send routes a message through the model and queues any returned command.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.enqueue(cmd)
}

// Type sends one key message per rune of text.
func (h *Harness) Type(text string) {
	for _, r := range text {
		if r == ' ' {
			h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Pending reports how many queued commands have not yet run.
func (h *Harness) Pending() int {
	return len(h.pending)
}

// Flush runs queued commands in order, feeding their messages back into
// the model, until the queue drains.
func (h *Harness) Flush() {
	for len(h.pending) > 0 {
		cmd := h.pending[0]
		h.pending = h.pending[1:]
		h.dispatch(cmd())
	}
}

func (h *Harness) dispatch(msg tea.Msg) {
	switch msg := msg.(type) {
	case nil:
	case tea.QuitMsg:
		h.quit = true
	case tea.BatchMsg:
		for _, cmd := range msg {
			h.enqueue(cmd)
		}
	default:
		h.Send(msg)
	}
}

func (h *Harness) enqueue(cmd tea.Cmd) {
	if cmd != nil {
		h.pending = append(h.pending, cmd)
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
