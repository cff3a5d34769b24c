// Package view turns application state into positioned blocks of text.
//
// Building a view performs no I/O and mutates nothing: the same inputs always
// produce the same blocks, which keeps layout testable without a terminal.
// Painting the blocks is the terminal package's job.
package view

import "fmt"

// Rect is a screen region in cells. The origin is the top-left corner.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the region covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Align controls horizontal placement of text inside its rectangle.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Role tells the renderer which style applies to a block.
type Role int

const (
	RoleText Role = iota
	RoleCounter
	RoleHint
)

// Block is one renderable piece of text and the rectangle it occupies.
type Block struct {
	Text  string
	Rect  Rect
	Align Align
	Role  Role
}

// View is the closed set of screens the application can show.
type View interface {
	isView()
}

// HomeProps carries everything the home screen needs for one frame.
type HomeProps struct {
	Counter         int
	Viewport        Rect
	IncrementAmount int
}

// Home is the counter screen.
type Home struct {
	Props HomeProps
}

func (Home) isView() {}

// Build lays out v and returns its blocks top to bottom.
func Build(v View) []Block {
	switch screen := v.(type) {
	case Home:
		return buildHome(screen.Props)
	default:
		return nil
	}
}

const (
	// centerPercent and centerBias produce the top padding percentage as
	// centerPercent - centerBias/height.
	centerPercent = 50
	centerBias    = 300
)

func buildHome(p HomeProps) []Block {
	bands := splitVertical(p.Viewport, []int{2, 1, 1, 1, 1}, padPercent(p.Viewport.Height))
	texts := []string{
		fmt.Sprintf("Counter: %d", p.Counter),
		fmt.Sprintf("Hit space to increment counter by %d", p.IncrementAmount),
		"Hit Left Arrow to decrement",
		"Hit Right Arrow to increment",
		"Hit q to quit",
	}
	blocks := make([]Block, 0, len(texts))
	for i, text := range texts {
		role := RoleHint
		if i == 0 {
			role = RoleCounter
		}
		blocks = append(blocks, Block{
			Text:  text,
			Rect:  bands[i],
			Align: AlignCenter,
			Role:  role,
		})
	}
	return blocks
}

// padPercent returns the share of the viewport used as top padding. Small
// heights would make the formula negative; those clamp to zero.
func padPercent(height int) int {
	if height <= 0 {
		return 0
	}
	pct := centerPercent - centerBias/height
	if pct < 0 {
		return 0
	}
	return pct
}

// splitVertical carves area into a padding band of padPct percent followed by
// fixed-height bands, returning only the fixed bands. Bands past the bottom
// of area collapse to zero height at the bottom edge.
func splitVertical(area Rect, heights []int, padPct int) []Rect {
	total := area.Height
	if total < 0 {
		total = 0
	}
	y := total/100*padPct + total%100*padPct/100
	out := make([]Rect, len(heights))
	for i, h := range heights {
		if y > total {
			y = total
		}
		if y+h > total {
			h = total - y
		}
		out[i] = Rect{X: area.X, Y: area.Y + y, Width: area.Width, Height: h}
		y += h
	}
	return out
}
