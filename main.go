package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jamessmith/termfolio/internal/app"
	"github.com/jamessmith/termfolio/internal/config"
	"github.com/jamessmith/termfolio/internal/console"
	"github.com/jamessmith/termfolio/internal/format/table"
	"github.com/jamessmith/termfolio/internal/logging"
	"github.com/jamessmith/termfolio/internal/logging/events"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

var version = "dev"

// configError marks failures that should exit with status 2.
type configError struct{ err error }

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		var cfgErr configError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", cfgErr.err)
			stop()
			os.Exit(2)
		}
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "termfolio",
		Short:         "A command-line styled portfolio for the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(cmd.Flags(), os.Environ())
			if err != nil {
				return configError{err}
			}
			cfg.Args = os.Args[1:]
			logging.Configure(cfg.Logging.FilePath)
			logging.SetTraceEnabled(cfg.Logging.Trace)
			traceStartup(cfg)
			return app.Run(cmd.Context(), cfg.App)
		},
	}
	config.BindFlags(root.Flags())
	root.AddCommand(newCommandsCmd(), newEvalCmd(), newVersionCmd())
	return root
}

func newCommandsCmd() *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List the commands the console understands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCommands(cmd.OutOrStdout(), asYAML)
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the command table as YAML")
	return cmd
}

type commandDoc struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func writeCommands(w io.Writer, asYAML bool) error {
	entries := console.Commands()
	if asYAML {
		docs := make([]commandDoc, len(entries))
		for i, entry := range entries {
			docs[i] = commandDoc{Name: entry.Name, Description: entry.Description}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return fmt.Errorf("encode commands: %w", err)
		}
		return enc.Close()
	}
	rows := make([][]string, len(entries))
	for i, entry := range entries {
		rows[i] = []string{entry.Name, entry.Description}
	}
	for _, line := range table.Lines(rows, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <input>",
		Short: "Resolve console input without starting the interface",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeEval(cmd.OutOrStdout(), strings.Join(args, " "))
		},
	}
}

func writeEval(w io.Writer, input string) error {
	state := console.Resolve(console.NewState(), input)
	var b strings.Builder
	if state.Output != "" {
		b.WriteString(state.Output)
		b.WriteString("\n")
	}
	if len(state.Suggestions) > 0 {
		fmt.Fprintf(&b, "suggestions: %s\n", strings.Join(state.Suggestions, ", "))
	}
	if state.ShowMenu {
		b.WriteString("settings panel opened\n")
	}
	if state.ShowModal() {
		fmt.Fprintf(&b, "%s: %s\n", console.RainbowWarningTitle, console.RainbowWarningMessage)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "termfolio %s\n", version)
			return err
		},
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"session": logging.Session(),
		"version": version,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
