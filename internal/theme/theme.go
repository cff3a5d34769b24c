package theme

import (
	"github.com/atomicstack/tick-counter/internal/view"
	"github.com/charmbracelet/lipgloss"
)

// Styles describes the Lip Gloss styles applied to each block role.
type Styles struct {
	Text    *lipgloss.Style
	Counter *lipgloss.Style
	Hint    *lipgloss.Style
}

var defaultStyles = Styles{
	Text: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Counter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Hint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
}

// Default exposes the standard style set.
func Default() *Styles {
	return &defaultStyles
}

// Plain returns a style set that adds no decoration.
func Plain() *Styles {
	return &Styles{}
}

// For returns the style for role. Missing entries fall back to an empty style.
func (s *Styles) For(role view.Role) lipgloss.Style {
	if s == nil {
		return lipgloss.NewStyle()
	}
	var style *lipgloss.Style
	switch role {
	case view.RoleCounter:
		style = s.Counter
	case view.RoleHint:
		style = s.Hint
	default:
		style = s.Text
	}
	if style == nil {
		return lipgloss.NewStyle()
	}
	return *style
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
