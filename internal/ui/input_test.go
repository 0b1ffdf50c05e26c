package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/jamessmith/termfolio/internal/theme"
)

func TestHandleTextInputAppendsRunes(t *testing.T) {
	m := NewModel(Options{})
	handled := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	if !handled {
		t.Fatalf("expected key press to be handled")
	}
	if m.line.Text != "abc" {
		t.Fatalf("expected line 'abc', got %q", m.line.Text)
	}
	if pos := m.line.CursorPos(); pos != 3 {
		t.Fatalf("expected cursor at end, got %d", pos)
	}
	if got := m.State().Input; got != "abc" {
		t.Fatalf("expected console input to follow, got %q", got)
	}
}

func TestHandleTextInputCursorMovement(t *testing.T) {
	m := NewModel(Options{})
	m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})

	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}) {
		t.Fatalf("expected left arrow to be handled")
	}
	if pos := m.line.CursorPos(); pos != 2 {
		t.Fatalf("expected cursor at 2 after left, got %d", pos)
	}

	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight}) {
		t.Fatalf("expected right arrow to be handled")
	}
	if pos := m.line.CursorPos(); pos != 3 {
		t.Fatalf("expected cursor back at 3, got %d", pos)
	}
}

func TestHandleTextInputInsertsMidLine(t *testing.T) {
	m := NewModel(Options{})
	m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hllo")})
	m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlA})
	m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight})
	m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	if m.line.Text != "hello" || m.line.CursorPos() != 2 {
		t.Fatalf("expected hello with cursor at 2, got %q/%d", m.line.Text, m.line.CursorPos())
	}
	if got := m.State().Output; got != "Hi there, welcome to the CLI!" {
		t.Fatalf("expected mid-line edit to dispatch, got %q", got)
	}
}

func TestHandleTextInputWordDelete(t *testing.T) {
	m := NewModel(Options{})
	m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("say hello")})
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlW}) {
		t.Fatalf("expected ctrl+w to be handled")
	}
	if m.line.Text != "say " {
		t.Fatalf("expected trailing word removed, got %q", m.line.Text)
	}
	if got := m.State().Output; got != "Command 'say ' not recognized." {
		t.Fatalf("expected raw input echoed, got %q", got)
	}
}

func TestHandleTextInputIgnoresAltRunes(t *testing.T) {
	m := NewModel(Options{})
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}) {
		t.Fatalf("expected alt runes to be ignored")
	}
}

func TestInputPromptPlaceholder(t *testing.T) {
	m := NewModel(Options{})
	prompt := ansi.Strip(m.inputPrompt(painter{root: theme.Root(m.State().BgColor, m.State().TextColor)}))
	if !strings.Contains(prompt, "Type a command") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
}
