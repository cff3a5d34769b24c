package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tick-counter/internal/app"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envTick    = "TICK_COUNTER_TICK"
	envStep    = "TICK_COUNTER_STEP"
	envTrace   = "TICK_COUNTER_TRACE"
	envLogFile = "TICK_COUNTER_LOG_FILE"
)

// Options holds flag values registered by Bind until Resolve turns them into
// a Config.
type Options struct {
	tick    *time.Duration
	step    *int
	trace   *bool
	logFile *string
}

// Bind registers the application flags on fs. Defaults come from environ so
// an explicit flag always wins over the environment.
func Bind(fs *pflag.FlagSet, environ []string) *Options {
	env := parseEnv(environ)
	return &Options{
		tick:    fs.Duration("tick", envOrDuration(env, envTick, app.DefaultTickRate), "interval between state updates and redraws"),
		step:    fs.Int("step", envOrInt(env, envStep, app.DefaultIncrementAmount), "amount added to the counter by the space key"),
		trace:   fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging (requires --log-file)"),
		logFile: fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file (no file is written when empty)"),
	}
}

// Resolve validates the parsed values. args are the positional arguments
// left after flag parsing.
func (o *Options) Resolve(args []string) (Config, error) {
	if len(args) > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(args, " "))
	}
	if *o.tick <= 0 {
		return Config{}, fmt.Errorf("tick must be > 0 (got %s)", *o.tick)
	}
	logFile, err := homedir.Expand(strings.TrimSpace(*o.logFile))
	if err != nil {
		return Config{}, fmt.Errorf("expand log file path: %w", err)
	}

	cfg := Config{
		App: app.Config{
			TickRate:        *o.tick,
			IncrementAmount: *o.step,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    *o.trace,
		},
		Flags: map[string]string{
			"tick":    o.tick.String(),
			"step":    strconv.Itoa(*o.step),
			"trace":   strconv.FormatBool(*o.trace),
			"logFile": logFile,
		},
	}
	return cfg, nil
}

// loadArgs parses args and environ into a Config using a standalone flag set.
func loadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("tick-counter", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := Bind(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg, err := opts.Resolve(fs.Args())
	if err != nil {
		return Config{}, err
	}
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate ensures the configuration can drive the application.
func Validate(cfg Config) error {
	if cfg.App.TickRate <= 0 {
		return fmt.Errorf("tick must be > 0 (got %s)", cfg.App.TickRate)
	}
	if cfg.Logging.Trace && cfg.Logging.FilePath == "" {
		return fmt.Errorf("trace requires a log file")
	}
	return nil
}
