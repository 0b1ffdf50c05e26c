package events

import "github.com/jamessmith/termfolio/internal/logging"

type InputTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	Input   = InputTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (InputTracer) Cleared() {
	logging.Trace("input.clear", nil)
}

func (InputTracer) WordBackspace(text string) {
	logging.Trace("input.word-backspace", map[string]interface{}{"text": text})
}

func (InputTracer) Cursor(pos int) {
	logging.Trace("input.cursor", map[string]interface{}{"cursor": pos})
}

func (InputTracer) CursorWord(pos int) {
	logging.Trace("input.cursor-word", map[string]interface{}{"cursor": pos})
}

func (InputTracer) Append(text string) {
	logging.Trace("input.append", map[string]interface{}{"text": text})
}

func (InputTracer) Backspace(text string) {
	logging.Trace("input.backspace", map[string]interface{}{"text": text})
}

func (InputTracer) SuggestionCursor(cursor int) {
	logging.Trace("input.suggestion-cursor", map[string]interface{}{"cursor": cursor})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
