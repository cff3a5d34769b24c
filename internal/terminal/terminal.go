// Package terminal owns the screen: raw mode and alternate-screen lifecycle,
// frame painting, and raw input decoding.
//
// The application talks to it through two narrow capabilities:
//   - Backend: Enter, Draw one frame built from view blocks, Exit.
//   - event.Poller: wait a bounded time for the next decoded input.
//
// Program implements both on top of Bubble Tea. Bubble Tea only paints the
// frame string it is handed and forwards input; all state and layout live
// outside this package.
//
// Run is the scoped guard around a Backend. It guarantees Exit on every path,
// including panics, so the host terminal is never left in raw mode.
package terminal

import (
	"errors"
	"fmt"

	"github.com/atomicstack/tick-counter/internal/view"
)

var (
	// ErrNotTerminal is returned by Enter when input is not a TTY.
	ErrNotTerminal = errors.New("input is not a terminal")
	// ErrClosed is returned once the backend can no longer draw or read.
	ErrClosed = errors.New("terminal closed")
)

// FrameBuilder produces the blocks for one frame given the drawable area.
type FrameBuilder func(area view.Rect) []view.Block

// Backend is the screen capability used by the application loop.
type Backend interface {
	// Enter switches the terminal into application mode.
	Enter() error
	// Exit restores the terminal. Calling it again is harmless.
	Exit() error
	// Draw paints one full frame.
	Draw(build FrameBuilder) error
}

// Run enters b, runs fn, and exits b on every path. A panic in fn restores
// the terminal before it continues unwinding. An Exit failure is reported
// only when fn itself succeeded.
func Run(b Backend, fn func() error) (err error) {
	if err := b.Enter(); err != nil {
		return fmt.Errorf("enter terminal: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			_ = b.Exit()
			panic(r)
		}
		if exitErr := b.Exit(); exitErr != nil && err == nil {
			err = fmt.Errorf("restore terminal: %w", exitErr)
		}
	}()
	return fn()
}
