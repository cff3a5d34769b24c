package terminal

import (
	"github.com/atomicstack/tick-counter/internal/event"
	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg replaces the frame the renderer shows.
type frameMsg string

// model is the Bubble Tea side of Program. It holds no application state:
// it repaints the last frame it received and forwards input to sink.
type model struct {
	frame  string
	sink   func(event.Input)
	resize func(width, height int)
}

// Init is part of the tea.Model interface.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update is part of the tea.Model interface.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = string(msg)
	case tea.KeyMsg:
		m.forward(event.KeyPress(keyFromTea(msg)))
	case tea.MouseMsg:
		m.forward(event.Pointer(event.Mouse{
			X:   msg.X,
			Y:   msg.Y,
			Raw: tea.MouseEvent(msg).String(),
		}))
	case tea.WindowSizeMsg:
		if m.resize != nil {
			m.resize(msg.Width, msg.Height)
		}
		m.forward(event.Resize(msg.Width, msg.Height))
	}
	return m, nil
}

// View is part of the tea.Model interface.
func (m *model) View() string {
	return m.frame
}

func (m *model) forward(ev event.Event) {
	if m.sink == nil {
		return
	}
	m.sink(event.Input{Event: ev})
}

func keyFromTea(msg tea.KeyMsg) event.Key {
	switch msg.Type {
	case tea.KeyLeft:
		return event.Key{Code: event.KeyLeft, Alt: msg.Alt}
	case tea.KeyRight:
		return event.Key{Code: event.KeyRight, Alt: msg.Alt}
	case tea.KeySpace:
		return event.Key{Code: event.KeyRune, Rune: ' ', Alt: msg.Alt}
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Paste {
			return event.Key{Code: event.KeyRune, Rune: msg.Runes[0], Alt: msg.Alt}
		}
	}
	return event.Key{Code: event.KeyOther, Name: msg.String()}
}
