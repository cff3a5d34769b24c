package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/tick-counter/internal/app"
	"github.com/atomicstack/tick-counter/internal/config"
	"github.com/atomicstack/tick-counter/internal/logging"
	"github.com/atomicstack/tick-counter/internal/logging/events"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

const (
	exitOK     = 0
	exitError  = 1
	exitConfig = 2
)

func main() {
	os.Exit(execute(os.Args[1:], os.Environ(), os.Stderr, start))
}

// configError marks failures that happen before the terminal is touched.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }

func (e *configError) Unwrap() error { return e.err }

func execute(args, environ []string, stderr io.Writer, run func(config.Config) error) int {
	cmd := newRootCommand(args, environ, run)
	cmd.SetArgs(args)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	var cfgErr *configError
	if errors.As(err, &cfgErr) {
		printError(stderr, "Configuration error", err)
		return exitConfig
	}
	logging.Error(err)
	printError(stderr, "Error", err)
	return exitError
}

func newRootCommand(rawArgs, environ []string, run func(config.Config) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tick-counter",
		Short: "Terminal counter redrawn at a fixed tick rate.",
		Long: `Shows a counter in the middle of the terminal.

Keys: space adds the step, left/right arrows subtract/add one, q quits.
Key presses take effect on the next tick.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &configError{err: err}
			}
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &configError{err: err}
	})

	opts := config.Bind(cmd.Flags(), environ)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := opts.Resolve(args)
		if err != nil {
			return &configError{err: err}
		}
		if err := config.Validate(cfg); err != nil {
			return &configError{err: err}
		}
		cfg.Args = append([]string(nil), rawArgs...)
		return run(cfg)
	}
	return cmd
}

func start(cfg config.Config) error {
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	traceStartup(cfg)

	return app.Run(cfg.App)
}

func printError(w io.Writer, label string, err error) {
	_, _ = color.New(color.FgRed).Fprintf(w, "%s: %v\n", label, err)
}

func traceStartup(cfg config.Config) {
	if !logging.TraceEnabled() {
		return
	}
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
		"version": version,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
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
				entry.Error = fmt.Sprintf("get size: %v", err)
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
