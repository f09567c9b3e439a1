// Package styles holds the dashboard palette and the priority badge mapping.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	Blue   = lipgloss.Color("#3B82F6")
	Purple = lipgloss.Color("#8B5CF6")
	Green  = lipgloss.Color("#10B981")
	Red    = lipgloss.Color("#EF4444")
	Yellow = lipgloss.Color("#EAB308")
	Orange = lipgloss.Color("#F97316")
	Gray   = lipgloss.Color("#6B7280")
	Muted  = lipgloss.Color("241")
	Border = lipgloss.Color("240")
)

// PriorityClass is the display class for a task priority badge.
type PriorityClass string

const (
	PriorityRed     PriorityClass = "red"
	PriorityYellow  PriorityClass = "yellow"
	PriorityGreen   PriorityClass = "green"
	PriorityDefault PriorityClass = "gray"
)

// Priority maps a priority value to its display class. Unknown and empty
// values get PriorityDefault.
func Priority(p string) PriorityClass {
	switch p {
	case "high":
		return PriorityRed
	case "medium":
		return PriorityYellow
	case "low":
		return PriorityGreen
	default:
		return PriorityDefault
	}
}

// Color returns the foreground color for the class.
func (c PriorityClass) Color() lipgloss.Color {
	switch c {
	case PriorityRed:
		return Red
	case PriorityYellow:
		return Yellow
	case PriorityGreen:
		return Green
	default:
		return Gray
	}
}

// Badge returns the badge style for the class.
func (c PriorityClass) Badge() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(c.Color()).
		Bold(true).
		Padding(0, 1)
}
