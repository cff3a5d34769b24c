package app

import (
	"time"

	"github.com/atomicstack/tick-counter/internal/event"
	"github.com/atomicstack/tick-counter/internal/logging/events"
	"github.com/atomicstack/tick-counter/internal/store"
	"github.com/atomicstack/tick-counter/internal/terminal"
)

const (
	DefaultTickRate        = 50 * time.Millisecond
	DefaultIncrementAmount = 10
)

// Config describes user-provided application options.
type Config struct {
	TickRate        time.Duration
	IncrementAmount int
}

// DefaultConfig returns the stock tick rate and step.
func DefaultConfig() Config {
	return Config{TickRate: DefaultTickRate, IncrementAmount: DefaultIncrementAmount}
}

// Backend is a terminal that can both draw frames and be polled for input.
type Backend interface {
	terminal.Backend
	event.Poller
}

// Run opens the terminal and runs the counter until quit.
func Run(cfg Config) error {
	return RunWith(terminal.NewProgram(terminal.Options{}), cfg)
}

// RunWith runs the counter on the supplied backend. The terminal is restored
// on every exit path.
func RunWith(b Backend, cfg Config) error {
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	err := terminal.Run(b, func() error {
		source := event.NewSource(b, cfg.TickRate)
		defer source.Stop()
		return NewLoop(b, source, store.New(), cfg.IncrementAmount).Run()
	})
	events.App.Stop(err)
	return err
}
