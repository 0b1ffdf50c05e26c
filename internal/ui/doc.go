// Package ui contains the Bubble Tea program that powers the command console.
// The Model type focuses on message orchestration, while dedicated helpers own
// input editing, the settings panel, the rainbow warning modal, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse events, timer ticks, action results).
//   - Every change to the console itself goes through apply, which runs the
//     event through console.Reduce and then reconciles everything that mirrors
//     the console state: the editable line, the suggestion picker, the panel
//     fields, and the rainbow timer.
//
// State ownership:
//   - console.State is the single source of truth for input, output,
//     suggestions, colors, the placeholder, and the rainbow phase.
//   - internal/ui/state.Line keeps the caret position for the command line and
//     internal/ui/state.Picker keeps the highlighted suggestion.
//   - Side effects outside the console (copying the email address) run through
//     the internal/ui/command bus and report back with a command.Result.
//
// Timers:
//   - A Timers implementation (normally *schedule.Scheduler) streams ticks.
//     Update waits for them with waitForTick and drops any tick whose
//     generation is no longer current, so a restarted rainbow run never
//     shares the screen with the one it replaced.
package ui
