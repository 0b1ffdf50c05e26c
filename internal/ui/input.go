package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jamessmith/termfolio/internal/logging/events"
)

const promptText = "> "

func (m *Model) updateInputCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputCursor, cmd = m.inputCursor.Update(msg)
	return cmd
}

func (m *Model) noteInputCursorChange(before int) {
	if before != m.line.CursorPos() {
		m.inputCursorDirty = true
	}
}

// handleTextInput edits the command line. It reports whether the key was
// consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+u":
		if m.line.Text == "" {
			return false
		}
		before := m.line.CursorPos()
		m.line.Set("", 0)
		m.noteInputCursorChange(before)
		events.Input.Cleared()
		m.textChanged()
		return true
	case "ctrl+w":
		before := m.line.CursorPos()
		if !m.line.DeleteWordBackward() {
			return false
		}
		m.noteInputCursorChange(before)
		events.Input.WordBackspace(m.line.Text)
		m.textChanged()
		return true
	case "ctrl+a", "home":
		before := m.line.CursorPos()
		if !m.line.MoveStart() {
			return false
		}
		m.noteInputCursorChange(before)
		events.Input.Cursor(m.line.Cursor)
		return true
	case "ctrl+e", "end":
		before := m.line.CursorPos()
		if !m.line.MoveEnd() {
			return false
		}
		m.noteInputCursorChange(before)
		events.Input.Cursor(m.line.Cursor)
		return true
	case "alt+b":
		before := m.line.CursorPos()
		if !m.line.MoveWordBackward() {
			return false
		}
		m.noteInputCursorChange(before)
		events.Input.CursorWord(m.line.Cursor)
		return true
	case "alt+f":
		before := m.line.CursorPos()
		if !m.line.MoveWordForward() {
			return false
		}
		m.noteInputCursorChange(before)
		events.Input.CursorWord(m.line.Cursor)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		before := m.line.CursorPos()
		if !m.line.DeleteRuneBackward() {
			return false
		}
		m.noteInputCursorChange(before)
		events.Input.Backspace(m.line.Text)
		m.textChanged()
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToInput(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToInput(" ")
	case tea.KeyLeft:
		before := m.line.CursorPos()
		if !m.line.MoveRuneBackward() {
			return false
		}
		m.noteInputCursorChange(before)
		events.Input.Cursor(m.line.Cursor)
		return true
	case tea.KeyRight:
		before := m.line.CursorPos()
		if !m.line.MoveRuneForward() {
			return false
		}
		m.noteInputCursorChange(before)
		events.Input.Cursor(m.line.Cursor)
		return true
	}
	return false
}

func (m *Model) appendToInput(text string) bool {
	if text == "" {
		return false
	}
	before := m.line.CursorPos()
	if !m.line.InsertText(text) {
		return false
	}
	m.noteInputCursorChange(before)
	events.Input.Append(m.line.Text)
	m.textChanged()
	return true
}

func (m *Model) textChanged() {
	m.forceClearInfo()
	m.errMsg = ""
	m.resolveInput(m.line.Text)
}

func (m *Model) inputPrompt(p painter) string {
	m.inputCursor.Style = p.style(styles.Cursor)
	m.inputCursor.TextStyle = p.style(styles.Input)
	prompt := p.paint(styles.Prompt, promptText)
	text := m.line.Text
	if text == "" {
		runes := []rune(m.state.Placeholder)
		var caretRune, rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if m.focus != FocusInput {
			return prompt + p.paint(styles.Placeholder, m.state.Placeholder)
		}
		m.inputCursor.TextStyle = p.style(styles.Placeholder)
		return prompt + m.renderInputCursor(caretRune) + p.paint(styles.Placeholder, rest)
	}
	if m.focus != FocusInput {
		return prompt + p.paint(styles.Input, text)
	}
	runes := []rune(text)
	pos := m.line.CursorPos()
	before := p.paint(styles.Input, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = p.paint(styles.Input, string(runes[pos+1:]))
	}
	return prompt + before + m.renderInputCursor(caretRune) + after
}

func (m *Model) renderInputCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.inputCursor.SetChar(char)

	base := m.inputCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.inputCursor.Blink {
		return base.Render(char)
	}

	cursorStyle := m.inputCursor.Style.Copy().Inline(true)
	base = base.Inherit(cursorStyle).Blink(false)
	return base.Reverse(true).Render(char)
}
