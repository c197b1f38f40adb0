package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/pageview/internal/app"
	"github.com/atomicstack/pageview/internal/ui"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Pages   Pages
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// Pages configures how the command line viewer loads and orders pages.
type Pages struct {
	Paths    []string
	Keywords []string
	Sort     string
	OpenCmd  string
}

// Sort modes accepted by -sort.
const (
	SortNone  = "none"
	SortMtime = "mtime"
	SortSize  = "size"
	SortOrder = "order"
)

const (
	envWidth    = "PAGEVIEW_WIDTH"
	envHeight   = "PAGEVIEW_HEIGHT"
	envFooter   = "PAGEVIEW_FOOTER"
	envScores   = "PAGEVIEW_SCORES"
	envHideDock = "PAGEVIEW_HIDE_DOCK"
	envDebounce = "PAGEVIEW_DEBOUNCE"
	envKeywords = "PAGEVIEW_KEYWORDS"
	envSort     = "PAGEVIEW_SORT"
	envOpenCmd  = "PAGEVIEW_OPEN_CMD"
	envTrace    = "PAGEVIEW_TRACE"
	envLogFile  = "PAGEVIEW_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("pageview", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, false), "show the key help footer")
	scores := fs.Bool("scores", envOrBool(env, envScores, false), "show relevancy next to filtered titles")
	hideDock := fs.Bool("hide-dock", envOrBool(env, envHideDock, false), "start with the search dock hidden")
	debounce := fs.Duration("debounce", envOrDuration(env, envDebounce, ui.DefaultDebounce), "idle time after the last key press before searching")
	keywords := fs.String("keywords", envOrDefault(env, envKeywords, ""), "comma separated priority phrases that boost ranking")
	sortMode := fs.String("sort", envOrDefault(env, envSort, SortNone), "order filtered results by none, mtime, size or order")
	openCmd := fs.String("open-cmd", envOrDefault(env, envOpenCmd, ""), "command run with the selected page's path on enter")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *debounce <= 0 {
		return Config{}, fmt.Errorf("debounce must be > 0 (got %s)", *debounce)
	}
	mode := strings.ToLower(strings.TrimSpace(*sortMode))
	switch mode {
	case SortNone, SortMtime, SortSize, SortOrder:
	default:
		return Config{}, fmt.Errorf("unknown sort mode %q", *sortMode)
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			ShowScores: *scores,
			HideDock:   *hideDock,
			Debounce:   *debounce,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Pages: Pages{
			Paths:    append([]string(nil), fs.Args()...),
			Keywords: splitList(*keywords),
			Sort:     mode,
			OpenCmd:  strings.TrimSpace(*openCmd),
		},
		Flags: map[string]string{
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"scores":   strconv.FormatBool(*scores),
			"hideDock": strconv.FormatBool(*hideDock),
			"debounce": debounce.String(),
			"keywords": *keywords,
			"sort":     mode,
			"openCmd":  *openCmd,
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks settings that depend on more than a single flag.
func Validate(cfg Config) error {
	if len(cfg.Pages.Paths) == 0 {
		return errors.New("no page files or directories given")
	}
	return nil
}
