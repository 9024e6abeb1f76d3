// Package tui provides an interactive terminal renderer for generation jobs.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
	"github.com/JakWdo/Symulacja-sub006/internal/ui/output"
	"github.com/JakWdo/Symulacja-sub006/internal/ui/style"
)

const (
	defaultBarWidth = 40
	viewPadding     = 4
)

// MsgJobStart announces the job being tracked.
type MsgJobStart struct {
	JobID      string
	Kind       domain.JobKind
	UnitsTotal int
}

// MsgSnapshot carries an accepted progress snapshot.
type MsgSnapshot struct {
	Snapshot domain.Snapshot
}

// MsgJobDone carries the final job state. Err is nil on completion and
// cancellation.
type MsgJobDone struct {
	Job domain.GenerationJob
	Err error
}

// Model is the Bubble Tea model for a single generation job.
type Model struct {
	spinner spinner.Model
	bar     progress.Model

	jobID      string
	kind       domain.JobKind
	unitsTotal int
	snapshot   domain.Snapshot
	started    bool
	done       bool
	final      domain.GenerationJob
	err        error
	width      int
}

// NewModel creates a new TUI model writing through the given writer's
// color profile.
func NewModel(w io.Writer) Model {
	if w == nil {
		w = os.Stderr
	}
	lipgloss.SetColorProfile(output.New(w).Profile)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(style.Violet)

	bar := progress.New(
		progress.WithGradient(string(style.Violet), string(style.Green)),
		progress.WithWidth(defaultBarWidth),
	)

	return Model{
		spinner: sp,
		bar:     bar,
	}
}

// Init starts the spinner ticking.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles incoming messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		barWidth := msg.Width - viewPadding
		if barWidth > defaultBarWidth {
			barWidth = defaultBarWidth
		}
		if barWidth > 0 {
			m.bar.Width = barWidth
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case MsgJobStart:
		m.jobID = msg.JobID
		m.kind = msg.Kind
		m.unitsTotal = msg.UnitsTotal
		m.started = true

	case MsgSnapshot:
		m.snapshot = msg.Snapshot

	case MsgJobDone:
		m.done = true
		m.final = msg.Job
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// View renders the job header, stage line, and progress bar.
func (m Model) View() string {
	if !m.started {
		return ""
	}

	var b strings.Builder

	title := titleStyle.Render(fmt.Sprintf(" %s %s ", kindLabel(m.kind), m.jobID))
	b.WriteString(title)
	b.WriteString("\n\n")

	if m.done {
		b.WriteString(m.finalLine())
		b.WriteString("\n")
		return b.String()
	}

	stage := m.snapshot.Stage
	if stage == "" {
		stage = domain.StageInitializing
	}
	b.WriteString(fmt.Sprintf("%s %s\n", m.spinner.View(), stageStyle.Render(string(stage))))

	b.WriteString(m.bar.ViewAs(float64(m.snapshot.ProgressPercent) / 100))
	if m.snapshot.UnitsTotal > 0 {
		b.WriteString(unitsStyle.Render(fmt.Sprintf("  %d/%d", m.snapshot.UnitsCompleted, m.snapshot.UnitsTotal)))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) finalLine() string {
	switch {
	case m.err != nil:
		return errorStyle.Render(fmt.Sprintf("%s %v", style.Cross, m.err))
	case m.final.Stage == domain.StageCancelled:
		return warnStyle.Render(fmt.Sprintf("%s cancelled", style.Warning))
	default:
		return doneStyle.Render(fmt.Sprintf("%s completed", style.Check))
	}
}

func kindLabel(kind domain.JobKind) string {
	switch kind {
	case domain.KindPersona:
		return "Generating personas"
	case domain.KindFocusGroup:
		return "Generating focus group"
	default:
		return "Generating"
	}
}
