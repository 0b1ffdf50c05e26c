package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI. Styles
// used for body text leave the foreground unset so the console text color
// shows through.
type Styles struct {
	Name               *lipgloss.Style
	Tagline            *lipgloss.Style
	Link               *lipgloss.Style
	PaneBorder         *lipgloss.Style
	PaneTitle          *lipgloss.Style
	Output             *lipgloss.Style
	Prompt             *lipgloss.Style
	Input              *lipgloss.Style
	Placeholder        *lipgloss.Style
	Cursor             *lipgloss.Style
	Suggestion         *lipgloss.Style
	SelectedSuggestion *lipgloss.Style
	PanelTitle         *lipgloss.Style
	PanelLabel         *lipgloss.Style
	PanelInvalid       *lipgloss.Style
	ModalTitle         *lipgloss.Style
	ModalBody          *lipgloss.Style
	Button             *lipgloss.Style
	FocusedButton      *lipgloss.Style
	Error              *lipgloss.Style
	Info               *lipgloss.Style
	Hint               *lipgloss.Style
	Footer             *lipgloss.Style
}

var defaultStyles = Styles{
	Name: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	Tagline: ptr(
		lipgloss.NewStyle().Italic(true),
	),
	Link: ptr(
		lipgloss.NewStyle().Underline(true),
	),
	PaneBorder: ptr(
		lipgloss.NewStyle().Faint(true),
	),
	PaneTitle: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	Output: ptr(
		lipgloss.NewStyle(),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	Input: ptr(
		lipgloss.NewStyle(),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Faint(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Reverse(true),
	),
	Suggestion: ptr(
		lipgloss.NewStyle(),
	),
	SelectedSuggestion: ptr(
		lipgloss.NewStyle().Reverse(true).Bold(true),
	),
	PanelTitle: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	PanelLabel: ptr(
		lipgloss.NewStyle(),
	),
	PanelInvalid: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	ModalTitle: ptr(
		lipgloss.NewStyle().Bold(true).Underline(true),
	),
	ModalBody: ptr(
		lipgloss.NewStyle(),
	),
	Button: ptr(
		lipgloss.NewStyle(),
	),
	FocusedButton: ptr(
		lipgloss.NewStyle().Reverse(true).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Italic(true),
	),
	Hint: ptr(
		lipgloss.NewStyle().Faint(true).Italic(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Faint(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Root returns the base style carrying the console colors. Every rendered
// line inherits from it.
func Root(background, foreground string) lipgloss.Style {
	style := lipgloss.NewStyle()
	if background != "" {
		style = style.Background(lipgloss.Color(background))
	}
	if foreground != "" {
		style = style.Foreground(lipgloss.Color(foreground))
	}
	return style
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
