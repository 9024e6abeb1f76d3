// Package linear provides a synchronous, line-oriented renderer for CI and
// non-interactive environments.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
	"github.com/JakWdo/Symulacja-sub006/internal/ui/output"
	"github.com/JakWdo/Symulacja-sub006/internal/ui/style"
)

// Renderer implements ports.JobRenderer for CI/non-interactive environments.
// It prints one chronological line per stage transition and progress update,
// prefixed with the job kind.
type Renderer struct {
	stderr io.Writer
	output *termenv.Output
	clock  func() time.Time

	mu        sync.Mutex
	jobID     string
	kind      domain.JobKind
	startTime time.Time
	lastStage domain.Stage
}

// NewRenderer creates a new linear Renderer writing to stderr.
func NewRenderer(stderr io.Writer) *Renderer {
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stderr: stderr,
		output: output.NewWithProfile(stderr, output.ColorProfileANSI),
		clock:  time.Now,
	}
}

// Start is a no-op, the linear renderer is synchronous.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop is a no-op, every event is flushed as it arrives.
func (r *Renderer) Stop() error {
	return nil
}

// Wait is a no-op, the linear renderer is synchronous.
func (r *Renderer) Wait() error {
	return nil
}

// OnJobStart prints the job header line.
func (r *Renderer) OnJobStart(jobID string, kind domain.JobKind, unitsTotal int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.jobID = jobID
	r.kind = kind
	r.startTime = r.clock()
	r.lastStage = ""

	prefix := r.prefixLocked()
	if unitsTotal > 0 {
		_, _ = fmt.Fprintf(r.stderr, "%s Job %s started (%d units)\n", prefix, jobID, unitsTotal)
		return
	}
	_, _ = fmt.Fprintf(r.stderr, "%s Job %s started\n", prefix, jobID)
}

// OnSnapshot prints a progress line. Stage transitions are called out,
// repeat snapshots within a stage only update the percentage.
func (r *Renderer) OnSnapshot(s domain.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := r.prefixLocked()

	if s.Stage != r.lastStage {
		r.lastStage = s.Stage
		stage := r.output.String(string(s.Stage)).Bold().String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s %d%%%s\n", prefix, stage, s.ProgressPercent, unitsSuffix(s))
		return
	}

	_, _ = fmt.Fprintf(r.stderr, "%s %d%%%s\n", prefix, s.ProgressPercent, unitsSuffix(s))
}

// OnJobDone prints the terminal line with the elapsed duration.
func (r *Renderer) OnJobDone(job domain.GenerationJob, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := r.prefixLocked()
	elapsed := r.clock().Sub(r.startTime).Round(time.Millisecond)

	switch {
	case err != nil:
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n", prefix, symbol, elapsed, err)
	case job.Stage == domain.StageCancelled:
		symbol := r.output.String(style.Warning).Foreground(termenv.ANSIYellow).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Cancelled after %v\n", prefix, symbol, elapsed)
	default:
		symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", prefix, symbol, elapsed)
	}
}

// prefixLocked renders the faint job-kind prefix. Must be called with r.mu held.
func (r *Renderer) prefixLocked() string {
	return r.output.String(fmt.Sprintf("[%s]", r.kind)).Faint().String()
}

func unitsSuffix(s domain.Snapshot) string {
	if s.UnitsTotal <= 0 {
		return ""
	}
	return fmt.Sprintf(" (%d/%d)", s.UnitsCompleted, s.UnitsTotal)
}
