package terminal

import "golang.org/x/term"

var getSize = term.GetSize

// Descriptor names a file to inspect.
type Descriptor struct {
	Name string
	File File
}

// ProbeResult describes one inspected descriptor.
type ProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Report is the outcome of Inspect. Detected is the first descriptor that is
// a terminal with a readable size.
type Report struct {
	Detected *ProbeResult  `json:"detected,omitempty"`
	Probes   []ProbeResult `json:"probes"`
}

// Inspect reports which descriptors are terminals and their sizes. It never
// changes terminal state.
func Inspect(descriptors ...Descriptor) Report {
	report := Report{Probes: make([]ProbeResult, 0, len(descriptors))}
	for _, d := range descriptors {
		entry := ProbeResult{Name: d.Name}
		if d.File != nil {
			fd := int(d.File.Fd())
			if fd >= 0 && isTerminal(fd) {
				entry.IsTerminal = true
				if w, h, err := getSize(fd); err != nil {
					entry.Error = err.Error()
				} else {
					entry.Width, entry.Height = w, h
				}
			}
		}
		report.Probes = append(report.Probes, entry)
		if report.Detected == nil && entry.IsTerminal && entry.Error == "" {
			detected := entry
			report.Detected = &detected
		}
	}
	return report
}
