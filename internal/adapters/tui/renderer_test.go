package tui_test

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/JakWdo/Symulacja-sub006/internal/adapters/tui"
	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
)

func newTestRenderer(t *testing.T) *tui.Renderer {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	return tui.NewRenderer(
		tui.NewModel(io.Discard),
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)
}

func TestRenderer_Lifecycle(t *testing.T) {
	renderer := newTestRenderer(t)

	require.NoError(t, renderer.Start(context.Background()))
	require.NoError(t, renderer.Stop())
	require.NoError(t, renderer.Wait())
}

func TestRenderer_JobDoneQuitsProgram(t *testing.T) {
	renderer := newTestRenderer(t)

	require.NoError(t, renderer.Start(context.Background()))

	renderer.OnJobStart("job-1", domain.KindFocusGroup, 4)
	renderer.OnSnapshot(domain.Snapshot{
		Stage:           domain.StageGenerating,
		ProgressPercent: 50,
		UnitsCompleted:  2,
		UnitsTotal:      4,
	})
	renderer.OnJobDone(domain.GenerationJob{JobID: "job-1", Stage: domain.StageCompleted}, nil)

	// The model quits itself on MsgJobDone, so Wait returns without Stop.
	require.NoError(t, renderer.Wait())
}
