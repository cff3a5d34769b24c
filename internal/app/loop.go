package app

import (
	"fmt"

	"github.com/atomicstack/tick-counter/internal/event"
	"github.com/atomicstack/tick-counter/internal/logging/events"
	"github.com/atomicstack/tick-counter/internal/store"
	"github.com/atomicstack/tick-counter/internal/terminal"
	"github.com/atomicstack/tick-counter/internal/view"
	"github.com/charmbracelet/bubbles/key"
)

// RunState is the lifecycle state of the loop.
type RunState int

const (
	Running RunState = iota
	Off
)

func (s RunState) String() string {
	if s == Off {
		return "off"
	}
	return "running"
}

// EventSource is the blocking event stream the loop consumes.
type EventSource interface {
	Next() (event.Event, error)
}

// Drawer paints frames. terminal.Backend satisfies it.
type Drawer interface {
	Draw(build terminal.FrameBuilder) error
}

// Loop draws the current state, waits for the next event and applies it,
// until the quit key is pressed. It is the only goroutine touching the store.
type Loop struct {
	screen Drawer
	events EventSource
	store  *store.Store
	keys   KeyMap
	amount int
	state  RunState
}

// NewLoop returns a loop in the Running state.
// amount is the increment applied by the step key.
func NewLoop(screen Drawer, events EventSource, st *store.Store, amount int) *Loop {
	return &Loop{
		screen: screen,
		events: events,
		store:  st,
		keys:   DefaultKeyMap(),
		amount: amount,
		state:  Running,
	}
}

// State reports whether the loop is still running.
func (l *Loop) State() RunState {
	return l.state
}

// Store exposes the store driven by the loop.
func (l *Loop) Store() *store.Store {
	return l.store
}

// Run iterates until the loop turns Off or a draw or event error occurs.
func (l *Loop) Run() error {
	for l.state == Running {
		if err := l.step(); err != nil {
			events.Loop.Error(err)
			return err
		}
	}
	return nil
}

func (l *Loop) step() error {
	if err := l.screen.Draw(l.frame); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	ev, err := l.events.Next()
	if err != nil {
		return fmt.Errorf("next event: %w", err)
	}
	l.handle(ev)
	return nil
}

func (l *Loop) frame(area view.Rect) []view.Block {
	return view.Build(view.Home{Props: view.HomeProps{
		Counter:         l.store.State().Counter(),
		Viewport:        area,
		IncrementAmount: l.amount,
	}})
}

func (l *Loop) handle(ev event.Event) {
	switch ev.Kind {
	case event.KindTick:
		l.store.Reduce()
	case event.KindKey:
		l.handleKey(ev.Key)
	}
}

func (l *Loop) handleKey(k event.Key) {
	switch {
	case key.Matches(k, l.keys.Quit):
		l.transition(Off)
	case key.Matches(k, l.keys.Step):
		l.dispatch(k, l.amount)
	case key.Matches(k, l.keys.Decrement):
		l.dispatch(k, -1)
	case key.Matches(k, l.keys.Increment):
		l.dispatch(k, 1)
	}
}

func (l *Loop) dispatch(k event.Key, amount int) {
	events.Loop.Dispatch(k.String(), amount)
	l.store.Dispatch(store.Increment{Amount: amount})
}

func (l *Loop) transition(to RunState) {
	events.Loop.Transition(l.state.String(), to.String())
	l.state = to
}
