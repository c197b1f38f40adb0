// Package pageview runs an interactive terminal viewer over a fixed set of
// pages. The screen shows a search field and a directory of page titles on
// the left and the selected page's text on the right. Typing filters and
// ranks the directory once input has been idle for a short window.
//
// Embedders supply pages through a Source. A Source that also implements
// KeyHandler sees every key press after the built-in handling and may
// rewrite the session, for example to show a popup.
package pageview

import (
	"github.com/atomicstack/pageview/internal/app"
	"github.com/atomicstack/pageview/internal/page"
	"github.com/atomicstack/pageview/internal/ui"
	"github.com/atomicstack/pageview/internal/ui/state"
)

type (
	// Page is one unit of displayable content.
	Page = page.Page
	// Ranked is a page paired with the relevancy of the current query.
	Ranked = page.Ranked
	// Session is the interactive state handed to a KeyHandler.
	Session = state.Session
	// Opts supplies the pages of a session and its priority keywords.
	Opts = page.Source
	// StaticSource is an Opts over a literal page list.
	StaticSource = page.StaticSource
	// KeyHandler is the optional key hook capability of an Opts.
	KeyHandler = ui.KeyHandler
	// KeyHandlerFunc adapts a function to KeyHandler.
	KeyHandlerFunc = ui.KeyHandlerFunc
	// Config holds layout and timing options.
	Config = app.Config
)

// NoSelection is the Session.Selected value of an empty view.
const NoSelection = state.NoSelection

// NewPage constructs a page without a sort field.
func NewPage(title, contents string) Page {
	return page.New(title, contents)
}

// OnEnter returns a KeyHandler calling fn with the selected page whenever
// enter is pressed.
func OnEnter(fn func(Ranked) error) KeyHandler {
	return ui.OnEnter(fn)
}

// Chain combines key handlers, running them in order.
func Chain(handlers ...KeyHandler) KeyHandler {
	return ui.Chain(handlers...)
}

// Run takes over the terminal and blocks until the user quits or the key
// handler returns an error, which Run then returns. When opts implements
// KeyHandler it is installed as the session's key hook.
func Run(opts Opts, cfg Config) error {
	return app.Run(cfg, opts, hookFor(opts))
}

func hookFor(opts Opts) KeyHandler {
	if h, ok := opts.(KeyHandler); ok {
		return h
	}
	return nil
}
