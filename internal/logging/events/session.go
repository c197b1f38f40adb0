package events

import "github.com/atomicstack/pageview/internal/logging"

type NavTracer struct{}

type SessionTracer struct{}

var (
	Nav     = NavTracer{}
	Session = SessionTracer{}
)

func (NavTracer) Select(selected int, title string) {
	logging.Trace("nav.select", map[string]interface{}{"selected": selected, "title": title})
}

func (NavTracer) Scroll(offset uint16) {
	logging.Trace("nav.scroll", map[string]interface{}{"offset": offset})
}

func (NavTracer) Toggle(target string, visible bool) {
	logging.Trace("nav.toggle", map[string]interface{}{"target": target, "visible": visible})
}

func (SessionTracer) Hook(key string) {
	logging.Trace("session.hook", map[string]interface{}{"key": key})
}

func (SessionTracer) HookError(key string, err error) {
	if err == nil {
		return
	}
	logging.Trace("session.hook.error", map[string]interface{}{"key": key, "error": err.Error()})
}

func (SessionTracer) Popup(visible bool, source string) {
	logging.Trace("session.popup", map[string]interface{}{"visible": visible, "source": source})
}

func (SessionTracer) Quit(key string) {
	logging.Trace("session.quit", map[string]interface{}{"key": key})
}
