package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jamessmith/termfolio/internal/logging/events"
	"github.com/jamessmith/termfolio/internal/palette"
	"github.com/jamessmith/termfolio/internal/profile"
	"github.com/jamessmith/termfolio/internal/schedule"
	"github.com/jamessmith/termfolio/internal/ui"
	"github.com/muesli/termenv"
)

// Config describes user-provided application options.
type Config struct {
	Width               int
	Height              int
	ShowFooter          bool
	Verbose             bool
	Mouse               bool
	NoColor             bool
	PlaceholderInterval time.Duration
	RainbowInterval     time.Duration
	Background          string
	Foreground          string
	Profile             profile.Profile
}

// Run bootstraps and executes the Bubble Tea program. It returns once the
// program exits or ctx is canceled; every timer is stopped before returning.
func Run(ctx context.Context, cfg Config) error {
	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	timers := schedule.New()
	defer timers.Close()
	colors := palette.NewGenerator()
	model := ui.NewModel(ui.Options{
		Width:               cfg.Width,
		Height:              cfg.Height,
		ShowFooter:          cfg.ShowFooter,
		Verbose:             cfg.Verbose,
		Background:          cfg.Background,
		Foreground:          cfg.Foreground,
		Accent:              colors.Light(),
		Profile:             cfg.Profile,
		Timers:              timers,
		Colors:              colors,
		PlaceholderInterval: cfg.PlaceholderInterval,
		RainbowInterval:     cfg.RainbowInterval,
	})
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(model, opts...)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	events.App.Stop(err)
	return err
}
