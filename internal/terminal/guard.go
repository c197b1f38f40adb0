// Package terminal treats the controlling terminal's mode as a scoped
// resource. A Guard snapshots the terminal before the UI switches it into raw
// and alternate-screen mode and puts it back on every exit path, including
// panics.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/atomicstack/pageview/internal/logging"
	"github.com/atomicstack/pageview/internal/logging/events"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Acquire when the input is not a terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// File is the subset of *os.File needed to inspect a terminal.
type File interface {
	Fd() uintptr
}

var (
	isTerminal   = term.IsTerminal
	getState     = term.GetState
	restoreState = term.Restore
)

// restoreSequence leaves the alternate screen, disables mouse reporting and
// shows the cursor.
var restoreSequence = ansi.ResetButtonEventMouseMode +
	ansi.ResetAnyEventMouseMode +
	ansi.ResetSgrExtMouseMode +
	ansi.EraseEntireScreen +
	ansi.ResetAltScreenSaveCursorMode +
	ansi.ShowCursor

// Guard restores a terminal to the state captured by Acquire.
type Guard struct {
	fd    int
	state *term.State
	out   io.Writer

	mu       sync.Mutex
	released bool
}

// Acquire snapshots the terminal attached to in. Restore sequences are written
// to out on release; out may be nil.
func Acquire(in File, out io.Writer) (*Guard, error) {
	if in == nil {
		return nil, ErrNotTerminal
	}
	fd := int(in.Fd())
	if !isTerminal(fd) {
		return nil, ErrNotTerminal
	}
	st, err := getState(fd)
	if err != nil {
		return nil, fmt.Errorf("snapshot terminal state: %w", err)
	}
	events.Terminal.Acquire(fd)
	return &Guard{fd: fd, state: st, out: out}, nil
}

// Release restores the captured terminal state. Only the first call has any
// effect. Failures are logged and returned but never retried.
func (g *Guard) Release() error {
	return g.release(false)
}

func (g *Guard) release(panicked bool) error {
	if g == nil {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.released {
		return nil
	}
	g.released = true
	events.Terminal.Release(g.fd, panicked)

	var errs []error
	if g.out != nil {
		if _, err := io.WriteString(g.out, restoreSequence); err != nil {
			errs = append(errs, fmt.Errorf("write restore sequence: %w", err))
		}
	}
	if g.state != nil {
		if err := restoreState(g.fd, g.state); err != nil {
			errs = append(errs, fmt.Errorf("restore terminal state: %w", err))
		}
	}
	err := errors.Join(errs...)
	logging.Warn("terminal release", err)
	return err
}

// Run executes fn while holding the guard. The terminal is restored when fn
// returns and before a panic from fn continues unwinding.
func (g *Guard) Run(fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			_ = g.release(true)
			panic(r)
		}
	}()
	err := fn()
	_ = g.release(false)
	return err
}
