package store

import (
	"math"

	"github.com/atomicstack/tick-counter/internal/logging/events"
)

// State is an immutable snapshot of the application data.
type State struct {
	counter int
}

// Counter returns the current counter value.
func (s State) Counter() int {
	return s.counter
}

// Action describes an intended state change. Actions are queued by Dispatch
// and only take effect on the next Reduce.
type Action interface {
	isAction()
}

// Increment adds Amount to the counter. Negative amounts decrement.
type Increment struct {
	Amount int
}

func (Increment) isAction() {}

// Store holds the current state and the actions waiting for the next reduce.
// It is not safe for concurrent use; the application loop is its only owner.
type Store struct {
	state   State
	pending []Action
}

// New returns a store with a zeroed counter.
func New() *Store {
	return &Store{}
}

// State returns the current snapshot.
func (s *Store) State() State {
	return s.state
}

// Pending reports how many actions are queued.
func (s *Store) Pending() int {
	return len(s.pending)
}

// Dispatch queues an action without touching the state.
func (s *Store) Dispatch(action Action) {
	s.pending = append(s.pending, action)
}

// Reduce applies every queued action in dispatch order and clears the queue.
// Actions that cannot be applied (an increment that would overflow) are
// dropped and leave the state unchanged.
func (s *Store) Reduce() {
	if len(s.pending) == 0 {
		return
	}
	next := s.state
	applied, dropped := 0, 0
	for _, action := range s.pending {
		var ok bool
		next, ok = apply(next, action)
		if ok {
			applied++
		} else {
			dropped++
		}
	}
	s.state = next
	s.pending = s.pending[:0]
	events.Store.Reduce(applied, dropped, next.counter)
}

func apply(state State, action Action) (State, bool) {
	switch a := action.(type) {
	case Increment:
		sum, ok := checkedAdd(state.counter, a.Amount)
		if !ok {
			return state, false
		}
		state.counter = sum
		return state, true
	default:
		return state, false
	}
}

func checkedAdd(a, b int) (int, bool) {
	if b > 0 && a > math.MaxInt-b {
		return a, false
	}
	if b < 0 && a < math.MinInt-b {
		return a, false
	}
	return a + b, true
}
