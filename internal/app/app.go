package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atomicstack/pageview/internal/logging/events"
	"github.com/atomicstack/pageview/internal/page"
	"github.com/atomicstack/pageview/internal/store"
	"github.com/atomicstack/pageview/internal/terminal"
	"github.com/atomicstack/pageview/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided session options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	ShowScores bool
	HideDock   bool
	Debounce   time.Duration
}

var (
	stdin  terminal.File = os.Stdin
	stdout io.Writer     = os.Stdout

	runProgram = func(model tea.Model) error {
		program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
		_, err := program.Run()
		return err
	}
)

// Run takes over the terminal and runs a viewer session over the pages from
// src until the user quits or hook fails. The terminal is restored on every
// exit path.
func Run(cfg Config, src page.Source, hook ui.KeyHandler) error {
	guard, err := terminal.Acquire(stdin, stdout)
	if err != nil {
		return fmt.Errorf("terminal setup: %w", err)
	}
	model := newModel(cfg, src, hook)
	err = guard.Run(func() error {
		return runSession(model)
	})
	events.App.Exit(err)
	return err
}

// runSession runs the program and reports why the session ended. A panic
// recovered by Bubble Tea also reports the program as killed, so it is
// checked first and surfaced rather than treated as a clean exit.
func runSession(model *ui.Model) error {
	err := runProgram(model)
	switch {
	case errors.Is(err, tea.ErrProgramPanic):
		return fmt.Errorf("session panicked: %w", err)
	case errors.Is(err, tea.ErrProgramKilled):
		return nil
	case err != nil:
		return err
	}
	return model.Err()
}

func newModel(cfg Config, src page.Source, hook ui.KeyHandler) *ui.Model {
	return ui.NewModel(store.New(src), ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Debounce:   cfg.Debounce,
		ShowFooter: cfg.ShowFooter,
		ShowScores: cfg.ShowScores,
		HideDock:   cfg.HideDock,
		Hook:       hook,
	})
}
