package terminal

import (
	"strings"

	"github.com/atomicstack/tick-counter/internal/theme"
	"github.com/atomicstack/tick-counter/internal/view"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

// Compose paints blocks onto a canvas the size of area and returns it as
// newline-separated rows. Blocks are clipped to area; text wider than its
// rectangle is truncated and extra lines beyond its height are dropped.
// Later blocks overwrite earlier ones on shared rows.
func Compose(area view.Rect, blocks []view.Block, styles *theme.Styles) string {
	if area.Empty() {
		return ""
	}
	rows := make([]string, area.Height)
	for _, b := range blocks {
		r := clip(b.Rect, area)
		if r.Empty() {
			continue
		}
		lines := strings.Split(b.Text, "\n")
		for i := 0; i < r.Height && i < len(lines); i++ {
			rows[r.Y-area.Y+i] = renderLine(lines[i], r.X-area.X, r.Width, b, styles)
		}
	}
	return strings.Join(rows, "\n")
}

func renderLine(text string, offset, width int, b view.Block, styles *theme.Styles) string {
	if ansi.StringWidth(text) > width {
		text = truncate.String(text, uint(width))
	}
	style := styles.For(b.Role).
		Width(width).
		MaxWidth(width).
		Align(position(b.Align))
	return strings.Repeat(" ", offset) + style.Render(text)
}

func position(a view.Align) lipgloss.Position {
	switch a {
	case view.AlignCenter:
		return lipgloss.Center
	case view.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// clip returns the part of r that lies inside area.
func clip(r, area view.Rect) view.Rect {
	x0 := max(r.X, area.X)
	y0 := max(r.Y, area.Y)
	x1 := min(r.X+r.Width, area.X+area.Width)
	y1 := min(r.Y+r.Height, area.Y+area.Height)
	if x1 <= x0 || y1 <= y0 {
		return view.Rect{X: x0, Y: y0}
	}
	return view.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
