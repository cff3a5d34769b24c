package terminal

import (
	"testing"

	"github.com/atomicstack/tick-counter/internal/event"
	tea "github.com/charmbracelet/bubbletea"
)

type recorder struct {
	inputs []event.Input
	width  int
	height int
}

func newRecordingModel() (*model, *recorder) {
	r := &recorder{}
	m := &model{
		sink: func(in event.Input) { r.inputs = append(r.inputs, in) },
		resize: func(w, h int) {
			r.width = w
			r.height = h
		},
	}
	return m, r
}

func TestModelForwardsKeys(t *testing.T) {
	m, r := newRecordingModel()
	msgs := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeySpace, Runes: []rune{' '}},
		{Type: tea.KeyLeft},
		{Type: tea.KeyRight},
		{Type: tea.KeyCtrlC},
	}
	for _, msg := range msgs {
		m.Update(msg)
	}
	want := []string{"q", "space", "left", "right", "ctrl+c"}
	if len(r.inputs) != len(want) {
		t.Fatalf("expected %d inputs, got %d", len(want), len(r.inputs))
	}
	for i, name := range want {
		in := r.inputs[i]
		if in.Event.Kind != event.KindKey {
			t.Fatalf("input %d: expected key event, got %v", i, in.Event.Kind)
		}
		if got := in.Event.Key.String(); got != name {
			t.Fatalf("input %d: expected %q, got %q", i, name, got)
		}
	}
}

func TestModelPasteIsNotASingleKey(t *testing.T) {
	m, r := newRecordingModel()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("qq"), Paste: true})
	if len(r.inputs) != 1 {
		t.Fatalf("expected one input, got %d", len(r.inputs))
	}
	if r.inputs[0].Event.Key.Code != event.KeyOther {
		t.Fatalf("expected paste to be reported as other key, got %+v", r.inputs[0].Event.Key)
	}
}

func TestModelForwardsResizeAndMouse(t *testing.T) {
	m, r := newRecordingModel()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if r.width != 120 || r.height != 40 {
		t.Fatalf("expected resize callback with 120x40, got %dx%d", r.width, r.height)
	}
	if len(r.inputs) != 2 {
		t.Fatalf("expected two inputs, got %d", len(r.inputs))
	}
	if ev := r.inputs[0].Event; ev.Kind != event.KindResize || ev.Width != 120 || ev.Height != 40 {
		t.Fatalf("unexpected resize event %+v", ev)
	}
	if ev := r.inputs[1].Event; ev.Kind != event.KindMouse || ev.Mouse.X != 3 || ev.Mouse.Y != 4 || ev.Mouse.Raw == "" {
		t.Fatalf("unexpected mouse event %+v", ev)
	}
}

func TestModelViewShowsLatestFrame(t *testing.T) {
	m, r := newRecordingModel()
	if m.View() != "" {
		t.Fatalf("expected empty view before the first frame")
	}
	m.Update(frameMsg("first"))
	m.Update(frameMsg("second"))
	if got := m.View(); got != "second" {
		t.Fatalf("expected latest frame, got %q", got)
	}
	if len(r.inputs) != 0 {
		t.Fatalf("expected frames not to produce input, got %d", len(r.inputs))
	}
}
