package events

import "github.com/atomicstack/pageview/internal/logging"

type AppTracer struct{}

type TerminalTracer struct{}

var (
	App      = AppTracer{}
	Terminal = TerminalTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}

func (TerminalTracer) Acquire(fd int) {
	logging.Trace("terminal.acquire", map[string]interface{}{"fd": fd})
}

func (TerminalTracer) Release(fd int, panicked bool) {
	logging.Trace("terminal.release", map[string]interface{}{"fd": fd, "panic": panicked})
}
