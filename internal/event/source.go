package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/atomicstack/tick-counter/internal/logging/events"
)

// ErrSourceClosed is returned by Next once the producer has stopped. When the
// producer died because of a failure the returned error also wraps the cause.
var ErrSourceClosed = errors.New("event source closed")

// DefaultBuffer is the capacity of the queue between producer and consumer.
const DefaultBuffer = 64

// Input is one item read from a Poller.
type Input struct {
	Event Event
	// Released marks key release or repeat reports from backends that
	// distinguish them. Those are dropped.
	Released bool
}

// Poller is the raw input capability of a terminal backend.
type Poller interface {
	// Poll waits up to timeout for input. ok is false when the timeout
	// expired first. Any error is fatal to the source.
	Poll(timeout time.Duration) (in Input, ok bool, err error)
}

// Source merges polled input and a fixed-rate tick into one ordered stream.
// A single goroutine owns both the poller and the clock.
type Source struct {
	poller   Poller
	interval time.Duration
	now      func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	err    error
	wg     sync.WaitGroup
}

// Option customises a Source.
type Option func(*Source)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Source) {
		if now != nil {
			s.now = now
		}
	}
}

// WithBuffer sets the queue capacity.
func WithBuffer(size int) Option {
	return func(s *Source) {
		if size >= 0 {
			s.events = make(chan Event, size)
		}
	}
}

// NewSource starts producing events from p, emitting a tick every interval.
func NewSource(p Poller, interval time.Duration, opts ...Option) *Source {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Source{
		poller:   p,
		interval: interval,
		now:      time.Now,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, DefaultBuffer),
	}
	for _, opt := range opts {
		opt(s)
	}

	lastTick := s.now()
	events.Input.Start(interval)
	s.wg.Add(1)
	go s.run(lastTick)
	return s
}

// Next blocks until the next event is available. Events arrive in the order
// they were produced. After the producer exits, the remaining queued events
// are returned first and then the error describing why it stopped.
func (s *Source) Next() (Event, error) {
	ev, ok := <-s.events
	if !ok {
		if s.err != nil {
			return Event{}, s.err
		}
		return Event{}, ErrSourceClosed
	}
	return ev, nil
}

// Stop cancels the producer. It returns once the poll in progress, if any,
// has been given the chance to finish; use Wait to block until exit.
func (s *Source) Stop() {
	s.cancel()
}

// Wait blocks until the producer goroutine has exited and the queue is closed.
func (s *Source) Wait() {
	s.wg.Wait()
}

func (s *Source) run(lastTick time.Time) {
	defer s.wg.Done()
	defer close(s.events)
	defer func() {
		if r := recover(); r != nil {
			s.err = fmt.Errorf("%w: producer panic: %v", ErrSourceClosed, r)
			events.Input.Error(s.err)
		}
	}()

	for {
		if s.ctx.Err() != nil {
			s.stopped()
			return
		}

		timeout := s.interval - s.now().Sub(lastTick)
		if timeout < 0 {
			timeout = 0
		}

		in, ok, err := s.poller.Poll(timeout)
		if err != nil {
			if s.ctx.Err() != nil {
				s.stopped()
				return
			}
			s.err = fmt.Errorf("%w: poll input: %w", ErrSourceClosed, err)
			events.Input.Error(err)
			return
		}
		if ok && !in.Released {
			if !s.emit(in.Event) {
				s.stopped()
				return
			}
		}

		if s.now().Sub(lastTick) >= s.interval {
			if !s.emit(Tick()) {
				s.stopped()
				return
			}
			lastTick = s.now()
		}
	}
}

func (s *Source) emit(ev Event) bool {
	select {
	case <-s.ctx.Done():
		return false
	case s.events <- ev:
		return true
	}
}

func (s *Source) stopped() {
	s.err = ErrSourceClosed
	events.Input.Stop("stopped")
}
