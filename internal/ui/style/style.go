// Package style holds the shared color palette and status icons used by the
// progress renderers and the logger.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Violet = lipgloss.Color("#6D5EF3")
	Slate  = lipgloss.Color("#5B6474")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#1F9D63")
	Red    = lipgloss.Color("#D64545")
	Yellow = lipgloss.Color("#E8A13C")
)

// Status icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)
