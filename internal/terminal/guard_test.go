package terminal

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/pageview/internal/logging"
	"golang.org/x/term"
)

type fakeFile uintptr

func (f fakeFile) Fd() uintptr { return uintptr(f) }

func stubTerminal(t *testing.T, tty bool, restoreErr error) *int {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "pageview.log"))
	restores := 0
	origIs, origGet, origRestore := isTerminal, getState, restoreState
	isTerminal = func(int) bool { return tty }
	getState = func(int) (*term.State, error) { return &term.State{}, nil }
	restoreState = func(int, *term.State) error {
		restores++
		return restoreErr
	}
	t.Cleanup(func() {
		isTerminal, getState, restoreState = origIs, origGet, origRestore
		logging.Configure("")
	})
	return &restores
}

func TestAcquireRejectsNonTerminal(t *testing.T) {
	stubTerminal(t, false, nil)
	if _, err := Acquire(fakeFile(3), nil); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
	if _, err := Acquire(nil, nil); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal for nil input, got %v", err)
	}
}

func TestReleaseRestoresOnce(t *testing.T) {
	restores := stubTerminal(t, true, nil)
	var out bytes.Buffer
	g, err := Acquire(fakeFile(3), &out)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if err := g.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := g.Release(); err != nil {
		t.Fatalf("second release: %v", err)
	}
	if *restores != 1 {
		t.Fatalf("expected one restore, got %d", *restores)
	}
	if !strings.HasSuffix(out.String(), "\x1b[?25h") {
		t.Fatalf("expected cursor to be shown, got %q", out.String())
	}
	if !strings.Contains(out.String(), "\x1b[?1049l") {
		t.Fatalf("expected alternate screen to be left, got %q", out.String())
	}
}

func TestRunRestoresOnError(t *testing.T) {
	restores := stubTerminal(t, true, nil)
	g, err := Acquire(fakeFile(3), nil)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	want := errors.New("hook failed")
	if got := g.Run(func() error { return want }); !errors.Is(got, want) {
		t.Fatalf("expected hook error, got %v", got)
	}
	if *restores != 1 {
		t.Fatalf("expected restore after error, got %d", *restores)
	}
}

func TestRunRestoresBeforePanicPropagates(t *testing.T) {
	restores := stubTerminal(t, true, nil)
	g, err := Acquire(fakeFile(3), nil)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer func() {
		r := recover()
		if r != "boom" {
			t.Fatalf("expected panic to propagate, got %v", r)
		}
		if *restores != 1 {
			t.Fatalf("expected restore before panic propagated, got %d", *restores)
		}
	}()
	_ = g.Run(func() error { panic("boom") })
}

func TestReleaseReportsRestoreFailure(t *testing.T) {
	stubTerminal(t, true, errors.New("bad fd"))
	g, err := Acquire(fakeFile(3), nil)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if err := g.Release(); err == nil || !strings.Contains(err.Error(), "bad fd") {
		t.Fatalf("expected restore failure, got %v", err)
	}
}

func TestInspectReportsFirstSizedTerminal(t *testing.T) {
	origIs, origSize := isTerminal, getSize
	isTerminal = func(fd int) bool { return fd != 0 }
	getSize = func(fd int) (int, int, error) {
		if fd == 1 {
			return 0, 0, errors.New("no size")
		}
		return 120, 40, nil
	}
	t.Cleanup(func() { isTerminal, getSize = origIs, origSize })

	report := Inspect(
		Descriptor{Name: "stdin", File: fakeFile(0)},
		Descriptor{Name: "stdout", File: fakeFile(1)},
		Descriptor{Name: "stderr", File: fakeFile(2)},
		Descriptor{Name: "missing"},
	)
	if len(report.Probes) != 4 {
		t.Fatalf("expected 4 probes, got %d", len(report.Probes))
	}
	if report.Probes[0].IsTerminal || report.Probes[3].IsTerminal {
		t.Fatalf("unexpected terminal flags %+v", report.Probes)
	}
	if report.Probes[1].Error != "no size" {
		t.Fatalf("expected size error recorded, got %+v", report.Probes[1])
	}
	if report.Detected == nil || report.Detected.Name != "stderr" || report.Detected.Width != 120 {
		t.Fatalf("unexpected detection %+v", report.Detected)
	}
}
