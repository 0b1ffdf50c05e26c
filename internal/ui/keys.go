package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jamessmith/termfolio/internal/console"
	"github.com/jamessmith/termfolio/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if m.state.ShowModal() {
		return m.handleModalKey(keyMsg)
	}
	switch keyMsg.String() {
	case "ctrl+y":
		return m.copyEmail()
	case "tab":
		if m.state.ShowMenu {
			return m.setFocus(nextFocus(m.focus, false))
		}
	case "shift+tab":
		if m.state.ShowMenu {
			return m.setFocus(nextFocus(m.focus, true))
		}
		return nil
	}
	if m.focus != FocusInput {
		return m.handlePanelKey(keyMsg)
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "esc":
		return m.handleEscapeKey()
	case "enter", "tab":
		m.handleChooseKey()
	case "up":
		m.moveSuggestion(m.picker.MoveUp)
	case "down":
		m.moveSuggestion(m.picker.MoveDown)
	case "pgup":
		m.moveSuggestion(m.picker.MoveHome)
	case "pgdown":
		m.moveSuggestion(m.picker.MoveEnd)
	}
	return nil
}

func (m *Model) handleEscapeKey() tea.Cmd {
	if m.state.ShowMenu {
		m.apply(console.MenuClosed{})
		return nil
	}
	return tea.Quit
}

func (m *Model) handleChooseKey() {
	name, ok := m.picker.Selected()
	if !ok {
		return
	}
	m.chooseSuggestion(name, "key")
}

func (m *Model) moveSuggestion(move func() bool) {
	if move() {
		events.Input.SuggestionCursor(m.picker.Cursor)
	}
}

// handleMouseMsg lets the wheel move the suggestion highlight and a left
// click choose the suggestion under the pointer.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if m.state.ShowModal() {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.moveSuggestion(m.picker.MoveUp)
	case tea.MouseButtonWheelDown:
		m.moveSuggestion(m.picker.MoveDown)
	case tea.MouseButtonLeft:
		if ev.Action != tea.MouseActionRelease {
			return nil
		}
		if m.suggestionRow < 0 {
			return nil
		}
		idx := ev.Y - m.suggestionRow
		if idx < 0 || idx >= len(m.picker.Items) {
			return nil
		}
		m.picker.Set(idx)
		name, _ := m.picker.Selected()
		m.chooseSuggestion(name, "mouse")
	}
	return nil
}
