package main

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/atomicstack/pageview"
	"github.com/atomicstack/pageview/internal/config"
	"github.com/atomicstack/pageview/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

// library serves loaded page files to the viewer. Enter shows a popup
// describing the selected page and, when an open command is configured,
// launches it in the background with the page's path.
type library struct {
	pages    []pageview.Page
	keywords []string
	openCmd  []string
	start    func(name string, args ...string) error
}

func newLibrary(pages []pageview.Page, cfg config.Pages) *library {
	return &library{
		pages:    pages,
		keywords: cfg.Keywords,
		openCmd:  strings.Fields(cfg.OpenCmd),
		start:    startDetached,
	}
}

func (l *library) Pages() []pageview.Page {
	return l.pages
}

func (l *library) Keywords() []string {
	return l.keywords
}

func (l *library) HandleKey(msg tea.KeyMsg, s pageview.Session) (pageview.Session, error) {
	if msg.Type != tea.KeyEnter {
		return s, nil
	}
	current, ok := s.Current()
	if !ok {
		return s, nil
	}
	s.PopupVisible = true
	s.PopupContent = describe(current)
	if len(l.openCmd) == 0 || current.Source == "" {
		return s, nil
	}
	args := append(append([]string(nil), l.openCmd[1:]...), current.Source)
	if err := l.start(l.openCmd[0], args...); err != nil {
		logging.Warn("open page", err)
		s.PopupContent += fmt.Sprintf("\n\nopen failed: %v", err)
		return s, nil
	}
	s.PopupContent += "\n\nopened with " + l.openCmd[0]
	return s, nil
}

func describe(p pageview.Ranked) string {
	var b strings.Builder
	b.WriteString(p.Title)
	if p.Source != "" {
		fmt.Fprintf(&b, "\n%s", p.Source)
	}
	fmt.Fprintf(&b, "\n%d lines", strings.Count(p.Contents, "\n")+1)
	if p.Relevancy > 0 {
		fmt.Fprintf(&b, ", relevancy %d", p.Relevancy)
	}
	return b.String()
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
