package tui_test

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JakWdo/Symulacja-sub006/internal/adapters/tui"
	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
)

func startedModel(t *testing.T) tea.Model {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var m tea.Model = tui.NewModel(io.Discard)
	m, _ = m.Update(tui.MsgJobStart{
		JobID:      "job-1",
		Kind:       domain.KindPersona,
		UnitsTotal: 8,
	})
	return m
}

func TestModel_EmptyBeforeStart(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	m := tui.NewModel(io.Discard)
	assert.Empty(t, m.View())
}

func TestModel_ViewAfterStart(t *testing.T) {
	m := startedModel(t)

	view := m.View()
	assert.Contains(t, view, "Generating personas")
	assert.Contains(t, view, "job-1")
	assert.Contains(t, view, string(domain.StageInitializing))
}

func TestModel_SnapshotUpdatesView(t *testing.T) {
	m := startedModel(t)

	m, _ = m.Update(tui.MsgSnapshot{Snapshot: domain.Snapshot{
		Stage:           domain.StageGenerating,
		ProgressPercent: 40,
		UnitsCompleted:  3,
		UnitsTotal:      8,
	}})

	view := m.View()
	assert.Contains(t, view, string(domain.StageGenerating))
	assert.Contains(t, view, "3/8")
	assert.NotContains(t, view, string(domain.StageInitializing))
}

func TestModel_DoneQuitsAndRendersResult(t *testing.T) {
	tests := []struct {
		name string
		msg  tui.MsgJobDone
		want string
	}{
		{
			name: "completed",
			msg: tui.MsgJobDone{
				Job: domain.GenerationJob{JobID: "job-1", Stage: domain.StageCompleted},
			},
			want: "✓ completed",
		},
		{
			name: "failed",
			msg: tui.MsgJobDone{
				Job: domain.GenerationJob{JobID: "job-1", Stage: domain.StageFailed},
				Err: assert.AnError,
			},
			want: "✗",
		},
		{
			name: "cancelled",
			msg: tui.MsgJobDone{
				Job: domain.GenerationJob{JobID: "job-1", Stage: domain.StageCancelled},
			},
			want: "! cancelled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := startedModel(t)

			m, cmd := m.Update(tt.msg)
			require.NotNil(t, cmd, "terminal message should quit the program")
			assert.Equal(t, tea.Quit(), cmd())

			assert.Contains(t, m.View(), tt.want)
		})
	}
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := startedModel(t)

			var msg tea.Msg
			if key == "ctrl+c" {
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			} else {
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}

			_, cmd := m.Update(msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}
