package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/jamessmith/termfolio/internal/console"
)

func TestViewDisplaysProfileAndConsole(t *testing.T) {
	h, _ := newTestModel(t)
	typeText(h, "he")
	view := ansi.Strip(h.View())
	for _, want := range []string{
		"James Smith",
		"Software Developer | Student Athlete",
		"Resume (download)",
		"Output",
		"> he",
		"› hello - greets user",
		"  help - lists commands",
		"© 2024 James Smith. All rights reserved.",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
}

func TestViewWrapsOutputInsidePane(t *testing.T) {
	m := NewModel(Options{Width: 24})
	m.resolveInput("help")
	view := ansi.Strip(m.View())
	for _, line := range strings.Split(view, "\n") {
		if w := ansi.StringWidth(line); w > 24 {
			t.Fatalf("expected lines within width, got %d: %q", w, line)
		}
	}
	if !strings.Contains(view, "Available") {
		t.Fatalf("expected help output in pane, got:\n%s", view)
	}
}

func TestViewShowsPlaceholderWhenEmpty(t *testing.T) {
	m := NewModel(Options{})
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "> "+console.DefaultPlaceholder) {
		t.Fatalf("expected placeholder prompt, got:\n%s", view)
	}
}

func TestViewShowsPanelAndModal(t *testing.T) {
	m := NewModel(Options{Width: 80})
	m.resolveInput("secret")
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Background Color:") || !strings.Contains(view, "Text Color:") {
		t.Fatalf("expected settings panel, got:\n%s", view)
	}

	m.resolveInput("rainbow")
	view = ansi.Strip(m.View())
	if !strings.Contains(view, console.RainbowWarningTitle) {
		t.Fatalf("expected modal title, got:\n%s", view)
	}
	if !strings.Contains(view, "[ Okay ]") || !strings.Contains(view, "[ Cancel ]") {
		t.Fatalf("expected modal buttons, got:\n%s", view)
	}
	if m.suggestionRow != -1 {
		t.Fatalf("expected suggestions hidden behind modal")
	}
}

func TestViewShowsHintAndFooterHelp(t *testing.T) {
	m := NewModel(Options{ShowFooter: true})
	m.resolveInput("helo")
	view := ansi.Strip(m.View())
	if !strings.Contains(view, `did you mean "hello"?`) {
		t.Fatalf("expected hint in view, got:\n%s", view)
	}
	if !strings.Contains(view, footerHelp) {
		t.Fatalf("expected footer help, got:\n%s", view)
	}
}

func TestViewFillsHeight(t *testing.T) {
	m := NewModel(Options{Width: 40, Height: 30})
	view := m.View()
	if got := len(strings.Split(view, "\n")); got != 30 {
		t.Fatalf("expected 30 rows, got %d", got)
	}
}

func TestLimitHeightAddsEllipsis(t *testing.T) {
	lines := []styledLine{{text: "a"}, {text: "b"}, {text: "c"}}
	got := limitHeight(lines, 2, 10)
	if len(got) != 2 || got[1].text != "…" {
		t.Fatalf("expected truncated lines with ellipsis, got %#v", got)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("hello", 3); got != "he…" {
		t.Fatalf("expected he…, got %q", got)
	}
	if got := truncateText("hi", 3); got != "hi" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}
