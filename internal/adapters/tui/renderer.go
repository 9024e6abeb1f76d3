package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
)

// Renderer wraps the Bubble Tea model as a ports.JobRenderer.
type Renderer struct {
	program *tea.Program
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model Model, opts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(model, opts...)
	return &Renderer{
		program: program,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnJobStart forwards the job header to the TUI.
func (r *Renderer) OnJobStart(jobID string, kind domain.JobKind, unitsTotal int) {
	r.program.Send(MsgJobStart{
		JobID:      jobID,
		Kind:       kind,
		UnitsTotal: unitsTotal,
	})
}

// OnSnapshot forwards an accepted progress snapshot to the TUI.
func (r *Renderer) OnSnapshot(s domain.Snapshot) {
	r.program.Send(MsgSnapshot{Snapshot: s})
}

// OnJobDone forwards the final job state. The model quits itself after
// rendering the terminal line.
func (r *Renderer) OnJobDone(job domain.GenerationJob, err error) {
	r.program.Send(MsgJobDone{Job: job, Err: err})
}

// Program returns the underlying tea.Program for testing.
func (r *Renderer) Program() *tea.Program {
	return r.program
}
