package domain

// ActionOutcome is the result of executing a named server action. It is a
// sealed tagged variant with one case per status rather than a single
// struct with optional fields.
type ActionOutcome interface {
	actionOutcome()
}

// ActionSuccess indicates the action ran to completion.
type ActionSuccess struct {
	Message string
}

// ActionError indicates the server rejected or failed the action.
type ActionError struct {
	Message string
}

// ActionRedirect instructs the client to navigate to a server-issued
// relative path. It performs no cache mutation of its own.
type ActionRedirect struct {
	Message string
	URL     string
}

func (ActionSuccess) actionOutcome()  {}
func (ActionError) actionOutcome()    {}
func (ActionRedirect) actionOutcome() {}

// View identifies a local navigation target.
type View string

const (
	// ViewProjects is the top-level resource-list view and the safe
	// default for unparseable or unrecognized redirect paths.
	ViewProjects          View = "projects"
	ViewProjectDetail     View = "project-detail"
	ViewPersonaDetail     View = "persona-detail"
	ViewFocusGroupDetail  View = "focus-group-detail"
	ViewFocusGroupBuilder View = "focus-group-builder"
	ViewDashboard         View = "dashboard"
)

// RedirectTarget is the resolved local navigation target for a
// server-issued path: the view to show, the resource it concerns and the
// panel to activate.
type RedirectTarget struct {
	View       View
	ResourceID string
	Panel      string
}
