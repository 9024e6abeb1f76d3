package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/JakWdo/Symulacja-sub006/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Background(style.Violet).
			Foreground(style.White)

	stageStyle = lipgloss.NewStyle().
			Foreground(style.Violet).
			Bold(true)

	unitsStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	doneStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	warnStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)
)
