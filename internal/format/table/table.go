package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format pads rows so each column lines up with its widest cell. When width
// is positive the first column absorbs any overflow by truncation so every
// row fits within width cells.
func Format(rows [][]string, alignments []Alignment, width int) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	if width > 0 && colCount > 0 {
		total := (colCount - 1) * len(columnGap)
		for _, w := range widths {
			total += w
		}
		if over := total - width; over > 0 {
			widths[0] -= over
			if widths[0] < 1 {
				widths[0] = 1
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := 0; c < colCount; c++ {
			var cell string
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString(columnGap)
			}
			if ansi.StringWidth(cell) > widths[c] {
				cell = ansi.Truncate(cell, widths[c], "…")
			}
			pad := widths[c] - ansi.StringWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				writeSpaces(&b, pad)
			}
		}
		out[i] = b.String()
	}
	return out
}

const columnGap = "  "

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
