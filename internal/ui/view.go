package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/jamessmith/termfolio/internal/console"
	"github.com/jamessmith/termfolio/internal/logging"
	"github.com/jamessmith/termfolio/internal/theme"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	defaultPaneWidth = 60
	modalMaxWidth    = 50
	linkSeparator    = " · "
	footerHelp       = "↑/↓ suggestions  enter choose  tab settings  ctrl+y copy email  esc quit"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text is already painted; skip style wrapping, use ANSI-aware truncation
}

// painter renders text on top of the console colors. Every segment inherits
// the root style so nested resets never drop the background.
type painter struct {
	root lipgloss.Style
}

func (p painter) style(style *lipgloss.Style) lipgloss.Style {
	if style == nil {
		return p.root
	}
	return style.Inherit(p.root)
}

func (p painter) paint(style *lipgloss.Style, text string) string {
	if text == "" {
		return ""
	}
	return p.style(style).Render(text)
}

// pad extends line with painted spaces up to width columns.
func (p painter) pad(line string, width int) string {
	if width <= 0 {
		return line
	}
	if w := ansi.StringWidth(line); w < width {
		return line + p.root.Render(strings.Repeat(" ", width-w))
	}
	return line
}

// View implements tea.Model.
func (m *Model) View() string {
	p := painter{root: theme.Root(m.state.BgColor, m.state.TextColor)}
	inner := m.paneInnerWidth()

	lines := make([]styledLine, 0, 32)
	lines = append(lines, m.headerLines(p)...)
	lines = append(lines, styledLine{})
	for _, row := range box(p, "Output", m.outputLines(inner), inner) {
		lines = append(lines, styledLine{text: row, raw: true})
	}
	lines = append(lines, styledLine{text: m.inputPrompt(p), raw: true})

	m.suggestionRow = -1
	if m.state.ShowModal() {
		lines = append(lines, styledLine{})
		for _, row := range m.modalLines(p, inner) {
			lines = append(lines, styledLine{text: row, raw: true})
		}
	} else {
		if len(m.picker.Items) > 0 {
			m.suggestionRow = len(lines)
			lines = append(lines, m.suggestionLines()...)
		}
		if m.state.ShowMenu {
			lines = append(lines, styledLine{})
			lines = append(lines, m.panelLines(p)...)
		}
	}

	lines = append(lines, styledLine{})
	lines = append(lines, m.statusLine())
	lines = append(lines, m.footerLines()...)

	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines, p, m.width, m.height)
}

func (m *Model) paneInnerWidth() int {
	if m.width <= 0 {
		return defaultPaneWidth
	}
	inner := m.width - 4
	if inner < 1 {
		inner = 1
	}
	return inner
}

func (m *Model) headerLines(p painter) []styledLine {
	nameStyle := p.style(styles.Name)
	if m.accent != "" {
		nameStyle = nameStyle.Foreground(lipgloss.Color(m.accent))
	}
	lines := []styledLine{
		{text: nameStyle.Render(m.profile.Name), raw: true},
	}
	if m.profile.Tagline != "" {
		lines = append(lines, styledLine{text: m.profile.Tagline, style: styles.Tagline})
	}
	links := m.profile.Links()
	if len(links) > 0 {
		parts := make([]string, 0, len(links))
		for _, link := range links {
			parts = append(parts, ansi.SetHyperlink(link.URL)+p.paint(styles.Link, link.Label)+ansi.ResetHyperlink())
		}
		lines = append(lines, styledLine{text: strings.Join(parts, p.paint(nil, linkSeparator)), raw: true})
	}
	return lines
}

func (m *Model) outputLines(inner int) []string {
	if m.state.Output == "" {
		return []string{""}
	}
	wrapped := wordwrap.String(m.state.Output, inner)
	rows := strings.Split(wrapped, "\n")
	for i, row := range rows {
		rows[i] = truncate.StringWithTail(row, uint(inner), "…")
	}
	return rows
}

// box frames body lines in a rounded border with a title. Body lines may be
// plain or painted; each is padded to inner columns.
func box(p painter, title string, body []string, inner int) []string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	titleSeg := " " + title + " "
	dashes := inner + 1 - ansi.StringWidth(titleSeg)
	if dashes < 0 {
		titleSeg = ""
		dashes = inner + 1
	}
	rows := make([]string, 0, len(body)+2)
	rows = append(rows, p.paint(styles.PaneBorder, tlc+hz)+
		p.paint(styles.PaneTitle, titleSeg)+
		p.paint(styles.PaneBorder, strings.Repeat(hz, dashes)+trc))
	for _, line := range body {
		if ansi.StringWidth(line) > inner {
			line = ansi.Truncate(line, inner, "…")
		}
		if !strings.Contains(line, "\x1b") {
			line = p.paint(styles.Output, line)
		}
		rows = append(rows, p.paint(styles.PaneBorder, vt)+
			p.paint(nil, " ")+
			p.pad(line, inner)+
			p.paint(nil, " ")+
			p.paint(styles.PaneBorder, vt))
	}
	rows = append(rows, p.paint(styles.PaneBorder, blc+strings.Repeat(hz, inner+2)+brc))
	return rows
}

func (m *Model) suggestionLines() []styledLine {
	lines := make([]styledLine, 0, len(m.picker.Items))
	for i, name := range m.picker.Items {
		desc := ""
		if cmd, ok := console.Lookup(name); ok {
			desc = cmd.Description()
		}
		text := fmt.Sprintf("  %s - %s", name, desc)
		style := styles.Suggestion
		if i == m.picker.Cursor {
			text = fmt.Sprintf("› %s - %s", name, desc)
			style = styles.SelectedSuggestion
		}
		lines = append(lines, styledLine{text: text, style: style})
	}
	return lines
}

func (m *Model) panelLines(p painter) []styledLine {
	lines := []styledLine{{text: "Settings", style: styles.PanelTitle}}
	for _, row := range m.panel.Rows(p) {
		lines = append(lines, styledLine{text: row, raw: true})
	}
	lines = append(lines, styledLine{text: panelHelp, style: styles.Hint})
	return lines
}

func (m *Model) modalLines(p painter, inner int) []string {
	width := inner
	if width > modalMaxWidth {
		width = modalMaxWidth
	}
	body := strings.Split(wordwrap.String(console.RainbowWarningMessage, width), "\n")
	body = append(body, "")
	buttons := make([]string, 0, 2)
	for _, b := range []modalButton{modalOkay, modalCancel} {
		style := styles.Button
		if b == m.modal {
			style = styles.FocusedButton
		}
		buttons = append(buttons, p.paint(style, "[ "+b.label()+" ]"))
	}
	body = append(body, strings.Join(buttons, p.paint(nil, "  ")))
	return box(p, console.RainbowWarningTitle, body, width)
}

func (m *Model) statusLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: styles.Info}
	}
	if m.hint != "" {
		return styledLine{text: m.hint, style: styles.Hint}
	}
	return styledLine{}
}

func (m *Model) footerLines() []styledLine {
	lines := []styledLine{{text: m.profile.Copyright(), style: styles.Footer}}
	if m.showFooter {
		lines = append(lines, styledLine{text: footerHelp, style: styles.Footer})
	}
	if m.verbose {
		status := fmt.Sprintf("session %s  rainbow %s  focus %s", logging.Session(), m.state.Rainbow, m.focus)
		lines = append(lines, styledLine{text: status, style: styles.Footer})
	}
	return lines
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if ansi.StringWidth(text) > width {
				text = ansi.Truncate(text, width, "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine, p painter, width, height int) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		text := line.text
		if !line.raw {
			text = p.paint(line.style, text)
		}
		out = append(out, p.pad(text, width))
	}
	for height > 0 && len(out) < height {
		out = append(out, p.pad("", width))
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
