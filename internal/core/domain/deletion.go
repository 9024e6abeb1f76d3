package domain

import "time"

// PendingDeletion is the client-side bookkeeping record for a reversible
// soft delete. The deadline is advisory: it gates the local undo affordance
// only, the server remains authoritative on whether undo is still possible.
type PendingDeletion struct {
	ResourceID       string
	Resource         ResourceKind
	DeletedAt        time.Time
	RecoveryDeadline time.Time
	// SnapshotHint is the display name captured at delete time, shown in
	// the undo affordance without another fetch.
	SnapshotHint string
}

// Expired reports whether the advisory recovery window has elapsed.
func (p PendingDeletion) Expired(now time.Time) bool {
	return now.After(p.RecoveryDeadline)
}
