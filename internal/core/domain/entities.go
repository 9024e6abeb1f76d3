// Package domain contains the core domain types for the Symulacja client:
// research artifacts, cache keys, generation jobs and their lifecycle.
package domain

import "time"

// Project is a research project grouping personas and focus groups.
type Project struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	PersonaCount    int       `json:"persona_count"`
	FocusGroupCount int       `json:"focus_group_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProjectDraft carries the user-editable fields of a project.
type ProjectDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Persona is a single AI-generated research persona.
type Persona struct {
	ID         string `json:"id"`
	ProjectID  string `json:"project_id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Occupation string `json:"occupation"`
	Summary    string `json:"summary"`
}

// FocusGroup is a moderated discussion between generated personas.
type FocusGroup struct {
	ID         string   `json:"id"`
	ProjectID  string   `json:"project_id"`
	Name       string   `json:"name"`
	Topic      string   `json:"topic"`
	Status     string   `json:"status"`
	PersonaIDs []string `json:"persona_ids"`
}

// DashboardSummary aggregates near-real-time counters for the dashboard view.
type DashboardSummary struct {
	ProjectCount    int       `json:"project_count"`
	PersonaCount    int       `json:"persona_count"`
	FocusGroupCount int       `json:"focus_group_count"`
	ActiveJobs      int       `json:"active_jobs"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// DeleteReason is a server-recognized reason code for a soft delete.
type DeleteReason string

// Reason codes accepted by the delete endpoints.
const (
	ReasonObsolete  DeleteReason = "obsolete"
	ReasonDuplicate DeleteReason = "duplicate"
	ReasonMistake   DeleteReason = "mistake"
	ReasonOther     DeleteReason = "other"
)

// DeleteRequest carries the reason code and optional free-text detail
// accepted by the delete endpoints.
type DeleteRequest struct {
	Reason DeleteReason `json:"reason"`
	Detail string       `json:"detail,omitempty"`
}

// DeleteReceipt is the server response to a successful soft delete.
// RecoveryDeadline is optional; when absent the client falls back to its
// configured undo window.
type DeleteReceipt struct {
	ResourceID       string     `json:"resource_id"`
	Message          string     `json:"message"`
	RecoveryDeadline *time.Time `json:"recovery_deadline,omitempty"`
}

// UndoReceipt is the server response to a successful undo, carrying the
// restored resource's display name.
type UndoReceipt struct {
	ResourceID  string `json:"resource_id"`
	DisplayName string `json:"display_name"`
}
