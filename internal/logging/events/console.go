package events

import "github.com/jamessmith/termfolio/internal/logging"

type ConsoleTracer struct{}

type PanelTracer struct{}

type ModalTracer struct{}

type ModalReason string

const (
	ModalReasonKey    ModalReason = "key"
	ModalReasonButton ModalReason = "button"
	ModalReasonEscape ModalReason = "escape"
)

var (
	Console = ConsoleTracer{}
	Panel   = PanelTracer{}
	Modal   = ModalTracer{}
)

func (ConsoleTracer) Resolve(input, outcome string, suggestions []string) {
	logging.Trace("console.resolve", map[string]interface{}{
		"input":       input,
		"outcome":     outcome,
		"suggestions": suggestions,
	})
}

func (ConsoleTracer) Dispatch(command string) {
	logging.Trace("console.dispatch", map[string]interface{}{"command": command})
}

func (ConsoleTracer) Suggestion(name, via string) {
	logging.Trace("console.suggestion", map[string]interface{}{"name": name, "via": via})
}

func (PanelTracer) Open() {
	logging.Trace("panel.open", nil)
}

func (PanelTracer) Close() {
	logging.Trace("panel.close", nil)
}

func (PanelTracer) Focus(field string) {
	logging.Trace("panel.focus", map[string]interface{}{"field": field})
}

func (PanelTracer) Color(field, value string) {
	logging.Trace("panel.color", map[string]interface{}{"field": field, "value": value})
}

func (PanelTracer) Invalid(field, value string) {
	logging.Trace("panel.color.invalid", map[string]interface{}{"field": field, "value": value})
}

func (ModalTracer) Show() {
	logging.Trace("modal.show", nil)
}

func (ModalTracer) Confirm(reason ModalReason) {
	logging.Trace("modal.confirm", map[string]interface{}{"reason": string(reason)})
}

func (ModalTracer) Cancel(reason ModalReason) {
	logging.Trace("modal.cancel", map[string]interface{}{"reason": string(reason)})
}
