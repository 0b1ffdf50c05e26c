package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jamessmith/termfolio/internal/console"
	"github.com/jamessmith/termfolio/internal/logging/events"
)

type modalButton int

const (
	modalOkay modalButton = iota
	modalCancel
)

func (b modalButton) label() string {
	if b == modalCancel {
		return "Cancel"
	}
	return "Okay"
}

func (m *Model) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "o":
		m.confirmModal(events.ModalReasonKey)
		return nil
	case "n", "c", "esc":
		reason := events.ModalReasonKey
		if msg.Type == tea.KeyEsc {
			reason = events.ModalReasonEscape
		}
		m.cancelModal(reason)
		return nil
	case "left", "h":
		m.modal = modalOkay
		return nil
	case "right", "l":
		m.modal = modalCancel
		return nil
	case "tab", "shift+tab":
		if m.modal == modalOkay {
			m.modal = modalCancel
		} else {
			m.modal = modalOkay
		}
		return nil
	case "enter", " ":
		if m.modal == modalCancel {
			m.cancelModal(events.ModalReasonButton)
		} else {
			m.confirmModal(events.ModalReasonButton)
		}
		return nil
	}
	return nil
}

func (m *Model) confirmModal(reason events.ModalReason) {
	if !m.state.ShowModal() {
		return
	}
	events.Modal.Confirm(reason)
	m.apply(console.ModalConfirmed{})
}

func (m *Model) cancelModal(reason events.ModalReason) {
	if !m.state.ShowModal() {
		return
	}
	events.Modal.Cancel(reason)
	m.apply(console.ModalCanceled{})
}
