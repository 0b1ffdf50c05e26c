package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jamessmith/termfolio/internal/logging/events"
	"github.com/jamessmith/termfolio/internal/ui/command"
)

var writeClipboard = clipboard.WriteAll

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Info != "" {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	return nil
}

func (m *Model) copyEmail() tea.Cmd {
	email := strings.TrimSpace(m.profile.Email)
	req := command.Request{ID: "profile:copy-email", Label: "copy email"}
	if email != "" {
		req.Handler = func() (string, error) {
			if err := writeClipboard(email); err != nil {
				return "", fmt.Errorf("copy email: %w", err)
			}
			return fmt.Sprintf("Copied %s to clipboard", email), nil
		}
	}
	return m.bus.Execute(req)
}

func didYouMean(name string) string {
	return fmt.Sprintf("did you mean %q?", name)
}
