package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Border            *lipgloss.Style
	PaneTitle         *lipgloss.Style
	Item              *lipgloss.Style
	ItemIndicator     *lipgloss.Style
	SelectedItem      *lipgloss.Style
	SelectedIndicator *lipgloss.Style
	Score             *lipgloss.Style
	Info              *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
	ReaderBody        *lipgloss.Style
	ReaderScroll      *lipgloss.Style
	Popup             *lipgloss.Style
	PopupBorder       *lipgloss.Style
	PopupTitle        *lipgloss.Style
	Footer            *lipgloss.Style
}

var defaultStyles = Styles{
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	PaneTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	SelectedIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	Score: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Italic(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	ReaderBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	ReaderScroll: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Popup: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	PopupBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	PopupTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
