package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/pageview/internal/format/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	dockPercent  = 30
	minDockWidth = 16

	searchBoxHeight = 3

	popupWidthPercent  = 60
	popupHeightPercent = 20
	minPopupHeight     = 3
	minPopupWidth      = 12

	rowIndicator = "▌ "
)

// View renders the dock (search box over the directory), the reader and,
// when shown, the popup overlay and key help footer.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	width, height := m.layoutSize()

	footer := ""
	bodyHeight := height
	if m.showFooter {
		footer = m.footerView(width)
		bodyHeight -= lipgloss.Height(footer)
	}
	if bodyHeight < searchBoxHeight+3 {
		bodyHeight = searchBoxHeight + 3
	}

	var body string
	if m.session.DockVisible {
		dockWidth := m.dockWidth(width)
		dock := lipgloss.JoinVertical(lipgloss.Left,
			m.renderSearchBox(dockWidth),
			m.renderDirectory(dockWidth, bodyHeight-searchBoxHeight),
		)
		body = lipgloss.JoinHorizontal(lipgloss.Top, dock, m.renderReader(width-dockWidth, bodyHeight))
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.renderSearchBox(width),
			m.renderReader(width, bodyHeight-searchBoxHeight),
		)
	}

	if m.session.PopupVisible {
		body = m.overlayPopup(body, width, bodyHeight)
	}
	if footer != "" {
		body += "\n" + footer
	}
	return body
}

func (m *Model) layoutSize() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func (m *Model) dockWidth(total int) int {
	w := total * dockPercent / 100
	if w < minDockWidth {
		w = minDockWidth
	}
	if w > total-minDockWidth {
		w = total / 2
	}
	return w
}

func (m *Model) footerView(width int) string {
	m.help.Width = width
	text := m.help.View(m.keys)
	if lipgloss.Width(text) > width {
		text = truncate.StringWithTail(text, uint(width-1), "…")
	}
	if styles.Footer != nil {
		return styles.Footer.Render(text)
	}
	return text
}

func (m *Model) renderSearchBox(width int) string {
	return renderBox(boxLayout{
		title:  "Search",
		lines:  []string{m.searchPrompt()},
		width:  width,
		height: searchBoxHeight,
		raw:    true,
	})
}

func (m *Model) renderDirectory(width, height int) string {
	innerW := max(width-2, 1)
	innerH := max(height-2, 1)
	info := ""
	if m.session.Filtering() {
		info = fmt.Sprintf(" %d/%d ", len(m.session.View), len(m.session.Pages))
	}
	return renderBox(boxLayout{
		title:  "Directory",
		info:   info,
		lines:  m.directoryLines(innerW, innerH),
		width:  width,
		height: height,
		raw:    true,
	})
}

// directoryLines renders the visible window of the view, one styled row
// per page. While filtering with scores shown, the relevancy column sits
// flush right in the Score style.
func (m *Model) directoryLines(innerW, innerH int) []string {
	view := m.session.View
	if len(view) == 0 {
		return m.emptyDirectoryLines()
	}
	m.ensureListVisible(innerH)
	end := min(len(view), m.listOffset+innerH)
	labelW := max(innerW-lipgloss.Width(rowIndicator), 1)

	type label struct{ title, score string }
	labels := make([]label, 0, end-m.listOffset)
	if m.showScores && m.session.Filtering() {
		rows := make([][]string, 0, end-m.listOffset)
		scoreW := 0
		for _, p := range view[m.listOffset:end] {
			score := strconv.FormatUint(p.Relevancy, 10)
			scoreW = max(scoreW, len(score))
			rows = append(rows, []string{p.Title, score})
		}
		for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight}, labelW) {
			// the score cell is right-aligned digits, one byte per cell
			cut := max(len(line)-scoreW, 0)
			labels = append(labels, label{title: line[:cut], score: line[cut:]})
		}
	} else {
		for _, p := range view[m.listOffset:end] {
			labels = append(labels, label{title: ansi.Truncate(p.Title, labelW, "…")})
		}
	}

	lines := make([]string, 0, len(labels))
	for i, l := range labels {
		if w := ansi.StringWidth(l.title) + len(l.score); w < labelW {
			l.title += strings.Repeat(" ", labelW-w)
		}
		if m.listOffset+i == m.session.Selected {
			lines = append(lines, render(styles.SelectedIndicator, rowIndicator)+render(styles.SelectedItem, l.title+l.score))
			continue
		}
		lines = append(lines, render(styles.ItemIndicator, rowIndicator)+render(styles.Item, l.title)+render(styles.Score, l.score))
	}
	return lines
}

func (m *Model) emptyDirectoryLines() []string {
	if !m.session.Filtering() {
		return []string{render(styles.Info, "(no pages)")}
	}
	lines := []string{render(styles.Info, fmt.Sprintf("No matches for %q", strings.TrimSpace(m.session.QueryString())))}
	if len(m.suggestions) > 0 {
		lines = append(lines, "", render(styles.Info, "Closest titles:"))
		for _, title := range m.suggestions {
			lines = append(lines, render(styles.Item, "  • "+title))
		}
	}
	return lines
}

func (m *Model) renderReader(width, height int) string {
	innerW := max(width-2, 1)
	innerH := max(height-2, 1)

	title := "Reader"
	if current, ok := m.session.Current(); ok && strings.TrimSpace(current.Title) != "" {
		title = "Reader: " + strings.TrimSpace(current.Title)
	}

	text := m.session.CurrentText()
	m.reader.Width = innerW
	m.reader.Height = innerH
	m.reader.SetContent(wrapText(text, innerW))
	m.reader.SetYOffset(int(m.session.Scroll))

	info := ""
	if text != "" {
		total := m.reader.TotalLineCount()
		info = fmt.Sprintf(" %d/%d ", min(m.reader.YOffset+innerH, total), total)
	}
	return renderBox(boxLayout{
		title:  title,
		info:   info,
		lines:  strings.Split(m.reader.View(), "\n"),
		width:  width,
		height: height,
		body:   styles.ReaderBody,
	})
}

// overlayPopup draws the popup box centred over base. Rows it covers are
// replaced from the popup's left edge onwards.
func (m *Model) overlayPopup(base string, width, height int) string {
	popW := max(width*popupWidthPercent/100, minPopupWidth)
	popH := max(height*popupHeightPercent/100, minPopupHeight)
	popW = min(popW, width)
	popH = min(popH, height)

	box := renderBox(boxLayout{
		title:  "Popup",
		lines:  strings.Split(wrapText(m.session.PopupContent, max(popW-2, 1)), "\n"),
		width:  popW,
		height: popH,
		body:   styles.Popup,
		border: styles.PopupBorder,
		label:  styles.PopupTitle,
	})

	x := (width - popW) / 2
	y := (height - popH) / 2
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(box, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		left := ansi.Truncate(baseLines[row], x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		baseLines[row] = left + line
	}
	return strings.Join(baseLines, "\n")
}

func wrapText(text string, width int) string {
	if text == "" {
		return ""
	}
	return wrap.String(wordwrap.String(text, width), width)
}

type boxLayout struct {
	title  string
	info   string
	lines  []string
	width  int
	height int
	// raw lines carry their own styling and bypass body.
	raw    bool
	body   *lipgloss.Style
	border *lipgloss.Style
	label  *lipgloss.Style
}

// renderBox draws a rounded box of exactly b.width x b.height cells
// with the title and info embedded in the top border.
func renderBox(b boxLayout) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	border := b.border
	if border == nil {
		border = styles.Border
	}
	label := b.label
	if label == nil {
		label = styles.PaneTitle
	}

	innerW := max(b.width-2, 1)
	innerH := max(b.height-2, 1)

	titleSeg := " " + b.title + " "
	infoSeg := b.info
	dashes := b.width - 4 - lipgloss.Width(titleSeg) - lipgloss.Width(infoSeg)
	if dashes < 0 {
		infoSeg = ""
		dashes = b.width - 4 - lipgloss.Width(titleSeg)
	}
	if dashes < 0 {
		room := b.width - 6
		if room > 1 {
			titleSeg = " " + truncate.StringWithTail(b.title, uint(room), "…") + " "
		} else {
			titleSeg = ""
		}
		dashes = max(b.width-4-lipgloss.Width(titleSeg), 0)
	}

	rows := make([]string, 0, innerH+2)
	rows = append(rows, render(border, tlc+hz)+
		render(label, titleSeg)+
		render(border, strings.Repeat(hz, dashes))+
		render(styles.ReaderScroll, infoSeg)+
		render(border, hz+trc))

	for i := 0; i < innerH; i++ {
		var content string
		if i < len(b.lines) {
			content = b.lines[i]
		}
		w := lipgloss.Width(content)
		if w > innerW {
			content = truncate.StringWithTail(content, uint(innerW-1), "…")
			w = lipgloss.Width(content)
		}
		if w < innerW {
			content += strings.Repeat(" ", innerW-w)
		}
		if !b.raw {
			content = render(b.body, content)
		}
		rows = append(rows, render(border, vt)+content+render(border, vt))
	}
	rows = append(rows, render(border, blc+strings.Repeat(hz, innerW)+brc))
	return strings.Join(rows, "\n")
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}
