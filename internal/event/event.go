package event

import "fmt"

// Kind identifies the variant carried by an Event.
type Kind int

const (
	KindTick Kind = iota
	KindKey
	KindMouse
	KindResize
)

func (k Kind) String() string {
	switch k {
	case KindTick:
		return "tick"
	case KindKey:
		return "key"
	case KindMouse:
		return "mouse"
	case KindResize:
		return "resize"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is a single item in the stream consumed by the application loop.
// Only the fields matching Kind are meaningful.
type Event struct {
	Kind   Kind
	Key    Key
	Mouse  Mouse
	Width  int
	Height int
}

// Tick returns a timer event.
func Tick() Event {
	return Event{Kind: KindTick}
}

// KeyPress returns a key event.
func KeyPress(k Key) Event {
	return Event{Kind: KindKey, Key: k}
}

// Pointer returns a mouse event.
func Pointer(m Mouse) Event {
	return Event{Kind: KindMouse, Mouse: m}
}

// Resize returns a terminal geometry change.
func Resize(width, height int) Event {
	return Event{Kind: KindResize, Width: width, Height: height}
}

// KeyCode classifies a key.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyRune
	KeyLeft
	KeyRight
)

// Key is a decoded key press.
type Key struct {
	Code KeyCode
	Rune rune
	Alt  bool
	// Name is the backend's label for keys without a dedicated code.
	Name string
}

// Char returns the key for a printable rune.
func Char(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// String returns the binding name of the key, e.g. "q", "space", "left".
func (k Key) String() string {
	var name string
	switch k.Code {
	case KeyRune:
		if k.Rune == ' ' {
			name = "space"
		} else {
			name = string(k.Rune)
		}
	case KeyLeft:
		name = "left"
	case KeyRight:
		name = "right"
	default:
		name = k.Name
	}
	if k.Alt && name != "" {
		return "alt+" + name
	}
	return name
}

// Mouse carries raw pointer data. The application does not interpret it.
type Mouse struct {
	X   int
	Y   int
	Raw string
}
