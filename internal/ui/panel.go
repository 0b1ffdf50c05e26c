package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jamessmith/termfolio/internal/console"
	"github.com/jamessmith/termfolio/internal/format/table"
	"github.com/jamessmith/termfolio/internal/logging/events"
	"github.com/jamessmith/termfolio/internal/palette"
)

const panelHelp = "tab next field  enter back to input  esc close"

type colorField struct {
	label   string
	input   textinput.Model
	invalid bool
}

func newColorField(label, value string) colorField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "#rrggbb"
	ti.CharLimit = 7
	ti.Width = 8
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(value)
	ti.CursorEnd()
	return colorField{label: label, input: ti}
}

func (f *colorField) set(value string) {
	f.input.SetValue(value)
	f.input.CursorEnd()
	f.invalid = false
}

// settingsPanel holds the two color fields shown by the secret command.
type settingsPanel struct {
	background colorField
	text       colorField
	focus      Focus
}

func newSettingsPanel(background, text string) *settingsPanel {
	return &settingsPanel{
		background: newColorField("Background Color", background),
		text:       newColorField("Text Color", text),
		focus:      FocusInput,
	}
}

func (p *settingsPanel) field(f Focus) *colorField {
	switch f {
	case FocusBackground:
		return &p.background
	case FocusText:
		return &p.text
	default:
		return nil
	}
}

// Focus moves keyboard focus to f, blurring the other field.
func (p *settingsPanel) Focus(f Focus) tea.Cmd {
	p.background.input.Blur()
	p.text.input.Blur()
	p.focus = f
	fld := p.field(f)
	if fld == nil {
		return nil
	}
	fld.input.CursorEnd()
	return fld.input.Focus()
}

// Follow mirrors a changed console color into its field unless the user is
// currently editing that field.
func (p *settingsPanel) Follow(f Focus, value string) {
	if p.focus == f {
		return
	}
	if fld := p.field(f); fld != nil {
		fld.set(value)
	}
}

// Rows lays the panel out as aligned label/value lines. Labels are padded
// before painting so the gap carries the console background.
func (p *settingsPanel) Rows(pt painter) []string {
	fields := []*colorField{&p.background, &p.text}
	labels := make([][]string, 0, len(fields))
	for _, fld := range fields {
		labels = append(labels, []string{fld.label + ":"})
	}
	padded := table.Format(labels, []table.Alignment{table.AlignLeft})
	rows := make([]string, 0, len(fields))
	for i, fld := range fields {
		fld.input.TextStyle = pt.style(styles.Input)
		fld.input.PlaceholderStyle = pt.style(styles.Placeholder)
		fld.input.Cursor.Style = pt.style(styles.Cursor)
		fld.input.Cursor.TextStyle = pt.style(styles.Input)
		row := pt.paint(styles.PanelLabel, padded[i]+"  ") + fld.input.View()
		if fld.invalid {
			row += pt.paint(nil, " ") + pt.paint(styles.PanelInvalid, "invalid")
		}
		rows = append(rows, row)
	}
	return rows
}

func nextFocus(f Focus, reverse bool) Focus {
	order := []Focus{FocusInput, FocusBackground, FocusText}
	idx := 0
	for i, candidate := range order {
		if candidate == f {
			idx = i
			break
		}
	}
	if reverse {
		idx = (idx + len(order) - 1) % len(order)
	} else {
		idx = (idx + 1) % len(order)
	}
	return order[idx]
}

func (m *Model) handlePanelKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.apply(console.MenuClosed{})
		return nil
	case tea.KeyEnter:
		return m.setFocus(FocusInput)
	}
	fld := m.panel.field(m.focus)
	if fld == nil {
		return nil
	}
	before := fld.input.Value()
	var cmd tea.Cmd
	fld.input, cmd = fld.input.Update(msg)
	if value := fld.input.Value(); value != before {
		m.colorEdited(m.focus, value)
	}
	return cmd
}

// colorEdited applies a color typed into a panel field. Text that does not
// parse stays in the field and is flagged.
func (m *Model) colorEdited(f Focus, raw string) {
	fld := m.panel.field(f)
	if fld == nil {
		return
	}
	parsed, err := palette.Parse(raw)
	if err != nil {
		fld.invalid = true
		events.Panel.Invalid(f.String(), raw)
		return
	}
	fld.invalid = false
	events.Panel.Color(f.String(), parsed)
	switch f {
	case FocusBackground:
		m.apply(console.BackgroundChanged{Color: parsed})
	case FocusText:
		m.apply(console.TextColorChanged{Color: parsed})
	}
}
