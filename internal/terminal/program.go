package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/tick-counter/internal/event"
	"github.com/atomicstack/tick-counter/internal/theme"
	"github.com/atomicstack/tick-counter/internal/view"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Options configures a Program.
type Options struct {
	// Input defaults to os.Stdin.
	Input *os.File
	// Output defaults to os.Stderr.
	Output *os.File
	// Styles defaults to theme.Default().
	Styles *theme.Styles
}

// Program is a Backend and event.Poller driven by a Bubble Tea program that
// runs on its own goroutines. Input decoded by Bubble Tea is queued without
// blocking its event loop; Poll hands it out one item at a time.
type Program struct {
	in     *os.File
	out    *os.File
	styles *theme.Styles

	queue *inputQueue

	mu      sync.Mutex
	area    view.Rect
	program *tea.Program
	done    chan struct{}
	runErr  error

	exitOnce sync.Once
}

// NewProgram prepares a backend. Nothing touches the terminal until Enter.
func NewProgram(opts Options) *Program {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.Styles == nil {
		opts.Styles = theme.Default()
	}
	return &Program{
		in:     opts.Input,
		out:    opts.Output,
		styles: opts.Styles,
		queue:  newInputQueue(),
		area:   view.Rect{Width: fallbackWidth, Height: fallbackHeight},
		done:   make(chan struct{}),
	}
}

// Enter starts the Bubble Tea program in the alternate screen with raw input,
// mouse reporting and a hidden cursor.
func (p *Program) Enter() error {
	if !term.IsTerminal(int(p.in.Fd())) {
		return fmt.Errorf("%w: %s", ErrNotTerminal, p.in.Name())
	}
	if width, height, err := term.GetSize(int(p.out.Fd())); err == nil {
		p.setArea(width, height)
	}

	mdl := &model{sink: p.queue.push, resize: p.setArea}
	program := tea.NewProgram(mdl,
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	p.mu.Lock()
	if p.program != nil {
		p.mu.Unlock()
		return errors.New("terminal already entered")
	}
	p.program = program
	p.mu.Unlock()

	go func() {
		_, err := program.Run()
		p.runErr = err
		close(p.done)
	}()
	return nil
}

// Exit stops the Bubble Tea program and waits for it to restore the terminal.
func (p *Program) Exit() error {
	var err error
	p.exitOnce.Do(func() {
		program := p.current()
		if program == nil {
			return
		}
		program.Quit()
		<-p.done
		if p.runErr != nil && !errors.Is(p.runErr, tea.ErrProgramKilled) {
			err = fmt.Errorf("stop terminal program: %w", p.runErr)
		}
	})
	return err
}

// Draw builds a frame for the current area and hands it to the renderer.
func (p *Program) Draw(build FrameBuilder) error {
	program := p.current()
	if program == nil {
		return ErrClosed
	}
	select {
	case <-p.done:
		return p.closedErr()
	default:
	}
	area := p.Area()
	program.Send(frameMsg(Compose(area, build(area), p.styles)))
	return nil
}

// Poll waits up to timeout for decoded input.
func (p *Program) Poll(timeout time.Duration) (event.Input, bool, error) {
	if in, ok := p.queue.pop(); ok {
		return in, true, nil
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case <-p.queue.ready:
			if in, ok := p.queue.pop(); ok {
				return in, true, nil
			}
		case <-timer.C:
			return event.Input{}, false, nil
		case <-p.done:
			if in, ok := p.queue.pop(); ok {
				return in, true, nil
			}
			return event.Input{}, false, p.closedErr()
		}
	}
}

// Area returns the current drawable region.
func (p *Program) Area() view.Rect {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.area
}

func (p *Program) setArea(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.mu.Lock()
	p.area = view.Rect{Width: width, Height: height}
	p.mu.Unlock()
}

func (p *Program) current() *tea.Program {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.program
}

func (p *Program) closedErr() error {
	if p.runErr != nil {
		return fmt.Errorf("%w: %w", ErrClosed, p.runErr)
	}
	return ErrClosed
}

// inputQueue is an unbounded FIFO with a one-slot wakeup signal.
type inputQueue struct {
	mu    sync.Mutex
	items []event.Input
	ready chan struct{}
}

func newInputQueue() *inputQueue {
	return &inputQueue{ready: make(chan struct{}, 1)}
}

func (q *inputQueue) push(in event.Input) {
	q.mu.Lock()
	q.items = append(q.items, in)
	q.mu.Unlock()
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

func (q *inputQueue) pop() (event.Input, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return event.Input{}, false
	}
	in := q.items[0]
	q.items = q.items[1:]
	return in, true
}
