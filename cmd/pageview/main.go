package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/pageview"
	"github.com/atomicstack/pageview/internal/config"
	"github.com/atomicstack/pageview/internal/logging"
	"github.com/atomicstack/pageview/internal/logging/events"
	"github.com/atomicstack/pageview/internal/terminal"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	pages, err := loadPages(runtimeCfg.Pages.Paths, runtimeCfg.Pages.Sort)
	if err != nil {
		fail(err)
	}
	traceStartup(runtimeCfg, len(pages))

	lib := newLibrary(pages, runtimeCfg.Pages)
	if err := pageview.Run(lib, runtimeCfg.App); err != nil {
		fail(err)
	}
}

func fail(err error) {
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func traceStartup(cfg config.Config, pageCount int) {
	events.App.Start(startupTracePayload(cfg, pageCount))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, pageCount int) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"pages":  pageCount,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

func collectTTYDetails() terminal.Report {
	return terminal.Inspect(
		terminal.Descriptor{Name: "stdin", File: os.Stdin},
		terminal.Descriptor{Name: "stdout", File: os.Stdout},
		terminal.Descriptor{Name: "stderr", File: os.Stderr},
	)
}
