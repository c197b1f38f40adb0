package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/pageview/internal/store"
	"github.com/atomicstack/pageview/internal/theme"
	"github.com/atomicstack/pageview/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDebounce is the idle window after the last key press before the
// query is evaluated.
const DefaultDebounce = 200 * time.Millisecond

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	// Width and Height pin the layout size; zero follows the terminal.
	Width  int
	Height int
	// Debounce overrides DefaultDebounce when positive.
	Debounce   time.Duration
	ShowFooter bool
	ShowScores bool
	HideDock   bool
	Hook       KeyHandler
}

// Model implements the Bubble Tea model for a viewer session.
type Model struct {
	session state.Session
	store   *store.Store
	hook    KeyHandler

	keys         keyMap
	help         help.Model
	reader       viewport.Model
	filterCursor cursor.Model

	debounce    time.Duration
	seq         uint64
	suggestions []string
	listOffset  int

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	showScores  bool

	err      error
	quitting bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds a session over the pages held by st.
func NewModel(st *store.Store, opts Options) *Model {
	if st == nil {
		st = store.New(nil)
	}
	m := &Model{
		session:    state.New(st.Pages()),
		store:      st,
		hook:       opts.Hook,
		keys:       defaultKeyMap(),
		help:       help.New(),
		reader:     viewport.New(0, 0),
		debounce:   opts.Debounce,
		showFooter: opts.ShowFooter,
		showScores: opts.ShowScores,
	}
	if m.hook == nil {
		m.hook = Identity
	}
	if m.debounce <= 0 {
		m.debounce = DefaultDebounce
	}
	if opts.HideDock {
		m.session.DockVisible = false
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	c.SetMode(cursor.CursorStatic)
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(debounceMsg{}):       m.handleDebounceMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Session returns a copy of the current session state.
func (m *Model) Session() state.Session {
	return m.session.Clone()
}

// Err returns the error that ended the session, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}
