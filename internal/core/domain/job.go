package domain

// JobKind distinguishes the two batch generation job types.
type JobKind string

const (
	// KindPersona is a persona batch generation job.
	KindPersona JobKind = "persona"
	// KindFocusGroup is a focus-group batch generation job.
	KindFocusGroup JobKind = "focus_group"
)

// Stage is a named step in a generation job's lifecycle.
type Stage string

const (
	StageInitializing  Stage = "initializing"
	StageOrchestration Stage = "orchestration"
	StageGenerating    Stage = "generating"
	// StageModeration only occurs for focus-group jobs, between generation
	// and saving.
	StageModeration Stage = "moderation"
	// StageValidating only occurs for persona jobs.
	StageValidating Stage = "validating"
	StageSaving     Stage = "saving"
	StageCompleted  Stage = "completed"
	StageFailed     Stage = "failed"
	// StageCancelled is a local marker applied on caller-initiated
	// cancellation. The server never emits it and it is not an error.
	StageCancelled Stage = "cancelled"
)

// stageRank orders the forward progression of stages. Kind-specific stages
// share the global order so a poll backend that skips intermediate stages
// still advances monotonically.
var stageRank = map[Stage]int{
	StageInitializing:  0,
	StageOrchestration: 1,
	StageGenerating:    2,
	StageModeration:    3,
	StageValidating:    4,
	StageSaving:        5,
	StageCompleted:     6,
	StageFailed:        6,
}

// ParseStage validates a stage string received from the server.
func ParseStage(s string) (Stage, error) {
	stage := Stage(s)
	if _, ok := stageRank[stage]; !ok {
		return "", ErrUnknownStage
	}
	return stage, nil
}

// Terminal reports whether no transition leaves the stage.
func (s Stage) Terminal() bool {
	return s == StageCompleted || s == StageFailed
}

// rank returns the ordering index of the stage, or -1 for the local
// cancelled marker which never arrives over the wire.
func (s Stage) rank() int {
	r, ok := stageRank[s]
	if !ok {
		return -1
	}
	return r
}

// Snapshot is one parsed progress event from the job stream.
type Snapshot struct {
	Stage           Stage  `json:"stage"`
	ProgressPercent int    `json:"progress_percent"`
	Message         string `json:"message"`
	UnitsCompleted  int    `json:"units_completed"`
	UnitsTotal      int    `json:"units_total"`
	Error           string `json:"error,omitempty"`
}

// GenerationJob is the tracker-owned view of one long-running generation
// job. It is mutated exclusively through Apply.
type GenerationJob struct {
	JobID           string
	Kind            JobKind
	Stage           Stage
	ProgressPercent int
	UnitsCompleted  int
	UnitsTotal      int
	ErrorMessage    string
}

// NewGenerationJob returns a job in its initial stage.
func NewGenerationJob(jobID string, kind JobKind) GenerationJob {
	return GenerationJob{JobID: jobID, Kind: kind, Stage: StageInitializing}
}

// Apply folds a snapshot into the job and reports whether it was accepted.
// A snapshot is discarded as late or duplicate when it would move the stage
// or progress percentage backward, and everything is discarded once the job
// has reached a terminal stage or the cancelled marker.
func (j *GenerationJob) Apply(s Snapshot) bool {
	if j.Stage.Terminal() || j.Stage == StageCancelled {
		return false
	}
	if s.Stage.rank() < j.Stage.rank() {
		return false
	}
	if s.Stage == j.Stage && s.ProgressPercent < j.ProgressPercent {
		return false
	}

	j.Stage = s.Stage
	if s.ProgressPercent > j.ProgressPercent {
		j.ProgressPercent = s.ProgressPercent
	}
	j.UnitsCompleted = s.UnitsCompleted
	j.UnitsTotal = s.UnitsTotal
	if s.Error != "" {
		j.ErrorMessage = s.Error
	}
	return true
}

// Cancel applies the local cancelled marker. It is distinct from failed and
// is not reported as an error. Cancelling a job already in a terminal stage
// is a no-op.
func (j *GenerationJob) Cancel() {
	if j.Stage.Terminal() {
		return
	}
	j.Stage = StageCancelled
}

// StreamRequest carries the connection parameters for a job's progress
// stream: the job id plus kind-specific sizing parameters.
type StreamRequest struct {
	JobID              string
	Kind               JobKind
	UnitCount          int
	UseKnowledgeSource bool
}

// GenerationRequest asks the server to start a batch generation job.
type GenerationRequest struct {
	Kind               JobKind `json:"kind"`
	ProjectID          string  `json:"project_id"`
	Count              int     `json:"count"`
	Topic              string  `json:"topic,omitempty"`
	UseKnowledgeSource bool    `json:"use_knowledge_source"`
}
