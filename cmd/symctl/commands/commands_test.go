package commands_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JakWdo/Symulacja-sub006/cmd/symctl/commands"
	"github.com/JakWdo/Symulacja-sub006/internal/app"
	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
)

// fakeApp implements commands.Application with overridable funcs so each
// test only wires the calls it expects.
type fakeApp struct {
	listProjectsFunc  func(ctx context.Context) ([]domain.Project, error)
	showProjectFunc   func(ctx context.Context, id string) (*app.ProjectDetail, error)
	createProjectFunc func(ctx context.Context, draft domain.ProjectDraft) (*domain.Project, error)
	updateProjectFunc func(ctx context.Context, id string, draft domain.ProjectDraft) (*domain.Project, error)
	deleteProjectFunc func(ctx context.Context, id string, req domain.DeleteRequest) (*domain.DeleteReceipt, error)
	undoDeleteFunc    func(ctx context.Context, id string) (*domain.UndoReceipt, error)
	pendingFunc       func(id string) (domain.PendingDeletion, bool)
	dashboardFunc     func(ctx context.Context) (*domain.DashboardSummary, error)
	runActionFunc     func(ctx context.Context, name string, params map[string]string) (domain.ActionOutcome, *domain.RedirectTarget, error)
	openLinkFunc      func(ctx context.Context, path string) domain.RedirectTarget
	generateFunc      func(ctx context.Context, req domain.GenerationRequest, opts app.GenerateOptions) error
}

func (f *fakeApp) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return f.listProjectsFunc(ctx)
}

func (f *fakeApp) ShowProject(ctx context.Context, id string) (*app.ProjectDetail, error) {
	return f.showProjectFunc(ctx, id)
}

func (f *fakeApp) CreateProject(ctx context.Context, draft domain.ProjectDraft) (*domain.Project, error) {
	return f.createProjectFunc(ctx, draft)
}

func (f *fakeApp) UpdateProject(ctx context.Context, id string, draft domain.ProjectDraft) (*domain.Project, error) {
	return f.updateProjectFunc(ctx, id, draft)
}

func (f *fakeApp) DeleteProject(ctx context.Context, id string, req domain.DeleteRequest) (*domain.DeleteReceipt, error) {
	return f.deleteProjectFunc(ctx, id, req)
}

func (f *fakeApp) UndoDelete(ctx context.Context, id string) (*domain.UndoReceipt, error) {
	return f.undoDeleteFunc(ctx, id)
}

func (f *fakeApp) PendingDeletion(id string) (domain.PendingDeletion, bool) {
	if f.pendingFunc == nil {
		return domain.PendingDeletion{}, false
	}
	return f.pendingFunc(id)
}

func (f *fakeApp) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	return f.dashboardFunc(ctx)
}

func (f *fakeApp) RunAction(ctx context.Context, name string, params map[string]string) (domain.ActionOutcome, *domain.RedirectTarget, error) {
	return f.runActionFunc(ctx, name, params)
}

func (f *fakeApp) OpenLink(ctx context.Context, path string) domain.RedirectTarget {
	return f.openLinkFunc(ctx, path)
}

func (f *fakeApp) Generate(ctx context.Context, req domain.GenerationRequest, opts app.GenerateOptions) error {
	return f.generateFunc(ctx, req, opts)
}

func runCLI(t *testing.T, a *fakeApp, args ...string) (string, error) {
	t.Helper()

	cli := commands.New(a, nil)
	var out bytes.Buffer
	cli.SetOutput(&out, &out)
	cli.SetArgs(args)

	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestProjectsList(t *testing.T) {
	a := &fakeApp{
		listProjectsFunc: func(_ context.Context) ([]domain.Project, error) {
			return []domain.Project{
				{ID: "p1", Name: "Badanie rynku", PersonaCount: 12, FocusGroupCount: 2},
				{ID: "p2", Name: "UX sondaż", PersonaCount: 4, FocusGroupCount: 0},
			}, nil
		},
	}

	out, err := runCLI(t, a, "projects", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "p1  Badanie rynku  (12 personas, 2 focus groups)")
	assert.Contains(t, out, "p2  UX sondaż  (4 personas, 0 focus groups)")
}

func TestProjectsList_Empty(t *testing.T) {
	a := &fakeApp{
		listProjectsFunc: func(_ context.Context) ([]domain.Project, error) {
			return nil, nil
		},
	}

	out, err := runCLI(t, a, "projects", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No projects yet.")
}

func TestProjectsShow(t *testing.T) {
	a := &fakeApp{
		showProjectFunc: func(_ context.Context, id string) (*app.ProjectDetail, error) {
			require.Equal(t, "p1", id)
			return &app.ProjectDetail{
				Project: &domain.Project{ID: "p1", Name: "Badanie rynku", Description: "Q3 pricing study"},
				Personas: []domain.Persona{
					{ID: "per-1", Name: "Anna Kowalska", Age: 34, Occupation: "nurse"},
				},
				FocusGroups: []domain.FocusGroup{
					{ID: "fg-1", Topic: "pricing", Status: "completed"},
				},
			}, nil
		},
	}

	out, err := runCLI(t, a, "projects", "show", "p1")
	require.NoError(t, err)
	assert.Contains(t, out, "p1  Badanie rynku")
	assert.Contains(t, out, "Q3 pricing study")
	assert.Contains(t, out, "Personas (1):")
	assert.Contains(t, out, "per-1  Anna Kowalska, 34, nurse")
	assert.Contains(t, out, "fg-1  pricing [completed]")
}

func TestProjectsCreate(t *testing.T) {
	var got domain.ProjectDraft
	a := &fakeApp{
		createProjectFunc: func(_ context.Context, draft domain.ProjectDraft) (*domain.Project, error) {
			got = draft
			return &domain.Project{ID: "p9", Name: draft.Name}, nil
		},
	}

	out, err := runCLI(t, a, "projects", "create", "--name", "Nowy projekt", "--description", "opis")
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectDraft{Name: "Nowy projekt", Description: "opis"}, got)
	assert.Contains(t, out, "Created project Nowy projekt (p9)")
}

func TestProjectsCreate_RequiresName(t *testing.T) {
	a := &fakeApp{}
	_, err := runCLI(t, a, "projects", "create")
	require.Error(t, err)
}

func TestProjectsEdit(t *testing.T) {
	var gotID string
	var gotDraft domain.ProjectDraft
	a := &fakeApp{
		updateProjectFunc: func(_ context.Context, id string, draft domain.ProjectDraft) (*domain.Project, error) {
			gotID, gotDraft = id, draft
			return &domain.Project{ID: id, Name: draft.Name}, nil
		},
	}

	out, err := runCLI(t, a, "projects", "edit", "p1", "--name", "Zmieniona nazwa")
	require.NoError(t, err)
	assert.Equal(t, "p1", gotID)
	assert.Equal(t, "Zmieniona nazwa", gotDraft.Name)
	assert.Contains(t, out, "Updated project Zmieniona nazwa (p1)")
}

func TestProjectsDelete(t *testing.T) {
	deadline := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var got domain.DeleteRequest
	a := &fakeApp{
		deleteProjectFunc: func(_ context.Context, id string, req domain.DeleteRequest) (*domain.DeleteReceipt, error) {
			require.Equal(t, "p1", id)
			got = req
			return &domain.DeleteReceipt{ResourceID: "p1", RecoveryDeadline: &deadline}, nil
		},
	}

	out, err := runCLI(t, a, "projects", "delete", "p1", "--reason", "duplicate", "--detail", "created twice")
	require.NoError(t, err)
	assert.Equal(t, domain.ReasonDuplicate, got.Reason)
	assert.Equal(t, "created twice", got.Detail)
	assert.Contains(t, out, "Deleted project p1")
	assert.Contains(t, out, "undo p1")
	assert.Contains(t, out, "2026-03-01T12:00:00Z")
}

func TestProjectsDelete_DefaultReason(t *testing.T) {
	a := &fakeApp{
		deleteProjectFunc: func(_ context.Context, _ string, req domain.DeleteRequest) (*domain.DeleteReceipt, error) {
			assert.Equal(t, domain.ReasonOther, req.Reason)
			return &domain.DeleteReceipt{ResourceID: "p1"}, nil
		},
	}

	out, err := runCLI(t, a, "projects", "delete", "p1")
	require.NoError(t, err)
	assert.NotContains(t, out, "Undo with", "no hint without a deadline from either side")
}

func TestProjectsDelete_AdvisoryWindowDrivesUndoHint(t *testing.T) {
	advisory := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	a := &fakeApp{
		deleteProjectFunc: func(_ context.Context, _ string, _ domain.DeleteRequest) (*domain.DeleteReceipt, error) {
			return &domain.DeleteReceipt{ResourceID: "p1"}, nil
		},
		pendingFunc: func(id string) (domain.PendingDeletion, bool) {
			require.Equal(t, "p1", id)
			return domain.PendingDeletion{ResourceID: "p1", RecoveryDeadline: advisory}, true
		},
	}

	out, err := runCLI(t, a, "projects", "delete", "p1")
	require.NoError(t, err)
	assert.Contains(t, out, "undo p1")
	assert.Contains(t, out, "2026-03-01T12:30:00Z")
}

func TestProjectsUndo(t *testing.T) {
	a := &fakeApp{
		undoDeleteFunc: func(_ context.Context, id string) (*domain.UndoReceipt, error) {
			require.Equal(t, "p1", id)
			return &domain.UndoReceipt{ResourceID: "p1", DisplayName: "Badanie rynku"}, nil
		},
	}

	out, err := runCLI(t, a, "projects", "undo", "p1")
	require.NoError(t, err)
	assert.Contains(t, out, "Restored project Badanie rynku")
}

func TestProjectsUndo_Expired(t *testing.T) {
	a := &fakeApp{
		undoDeleteFunc: func(_ context.Context, _ string) (*domain.UndoReceipt, error) {
			return nil, domain.ErrUndoExpired
		},
	}

	_, err := runCLI(t, a, "projects", "undo", "p1")
	require.ErrorIs(t, err, domain.ErrUndoExpired)
}

func TestDashboard(t *testing.T) {
	a := &fakeApp{
		dashboardFunc: func(_ context.Context) (*domain.DashboardSummary, error) {
			return &domain.DashboardSummary{
				ProjectCount:    3,
				PersonaCount:    40,
				FocusGroupCount: 7,
				ActiveJobs:      1,
			}, nil
		},
	}

	out, err := runCLI(t, a, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Projects:     3")
	assert.Contains(t, out, "Personas:     40")
	assert.Contains(t, out, "Focus groups: 7")
	assert.Contains(t, out, "Active jobs:  1")
}

func TestAction_Success(t *testing.T) {
	a := &fakeApp{
		runActionFunc: func(_ context.Context, name string, params map[string]string) (domain.ActionOutcome, *domain.RedirectTarget, error) {
			assert.Equal(t, "rebuild-index", name)
			assert.Equal(t, map[string]string{"scope": "all"}, params)
			return domain.ActionSuccess{Message: "index rebuilt"}, nil, nil
		},
	}

	out, err := runCLI(t, a, "action", "run", "rebuild-index", "--param", "scope=all")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ index rebuilt")
}

func TestAction_Error(t *testing.T) {
	a := &fakeApp{
		runActionFunc: func(_ context.Context, _ string, _ map[string]string) (domain.ActionOutcome, *domain.RedirectTarget, error) {
			return domain.ActionError{Message: "quota exceeded"}, nil, nil
		},
	}

	out, err := runCLI(t, a, "action", "run", "big-job")
	require.NoError(t, err)
	assert.Contains(t, out, "✗ quota exceeded")
}

func TestAction_Redirect(t *testing.T) {
	a := &fakeApp{
		runActionFunc: func(_ context.Context, _ string, _ map[string]string) (domain.ActionOutcome, *domain.RedirectTarget, error) {
			outcome := domain.ActionRedirect{Message: "focus group ready", URL: "/projects/p1/focus-groups"}
			target := domain.RedirectTarget{View: domain.ViewFocusGroupBuilder, ResourceID: "p1"}
			return outcome, &target, nil
		},
	}

	out, err := runCLI(t, a, "action", "run", "prepare-group")
	require.NoError(t, err)
	assert.Contains(t, out, "focus group ready")
	assert.Contains(t, out, "view: focus-group-builder")
	assert.Contains(t, out, "resource: p1")
}

func TestOpen(t *testing.T) {
	a := &fakeApp{
		openLinkFunc: func(_ context.Context, path string) domain.RedirectTarget {
			assert.Equal(t, "/projects/p1?panel=personas", path)
			return domain.RedirectTarget{View: domain.ViewProjectDetail, ResourceID: "p1", Panel: "personas"}
		},
	}

	out, err := runCLI(t, a, "open", "/projects/p1?panel=personas")
	require.NoError(t, err)
	assert.Contains(t, out, "view: project-detail")
	assert.Contains(t, out, "resource: p1")
	assert.Contains(t, out, "panel: personas")
}

func TestGeneratePersonas_Flags(t *testing.T) {
	var gotReq domain.GenerationRequest
	var gotOpts app.GenerateOptions
	a := &fakeApp{
		generateFunc: func(_ context.Context, req domain.GenerationRequest, opts app.GenerateOptions) error {
			gotReq, gotOpts = req, opts
			return nil
		},
	}

	_, err := runCLI(t, a, "generate", "personas",
		"--project", "p1", "--count", "8", "--knowledge-source", "--output-mode", "tui")
	require.NoError(t, err)
	assert.Equal(t, domain.GenerationRequest{
		Kind:               domain.KindPersona,
		ProjectID:          "p1",
		Count:              8,
		UseKnowledgeSource: true,
	}, gotReq)
	assert.Equal(t, "tui", gotOpts.OutputMode)
}

func TestGenerateFocusGroup_Flags(t *testing.T) {
	var gotReq domain.GenerationRequest
	a := &fakeApp{
		generateFunc: func(_ context.Context, req domain.GenerationRequest, _ app.GenerateOptions) error {
			gotReq = req
			return nil
		},
	}

	_, err := runCLI(t, a, "generate", "focus-group",
		"--project", "p1", "--topic", "pricing", "--count", "4")
	require.NoError(t, err)
	assert.Equal(t, domain.GenerationRequest{
		Kind:      domain.KindFocusGroup,
		ProjectID: "p1",
		Count:     4,
		Topic:     "pricing",
	}, gotReq)
}

func TestGenerate_CIShorthand(t *testing.T) {
	var gotOpts app.GenerateOptions
	a := &fakeApp{
		generateFunc: func(_ context.Context, _ domain.GenerationRequest, opts app.GenerateOptions) error {
			gotOpts = opts
			return nil
		},
	}

	_, err := runCLI(t, a, "generate", "personas", "--project", "p1", "--ci")
	require.NoError(t, err)
	assert.Equal(t, "linear", gotOpts.OutputMode)
}

func TestGenerate_RequiresProject(t *testing.T) {
	a := &fakeApp{}
	_, err := runCLI(t, a, "generate", "personas")
	require.Error(t, err)
}

func TestGenerateFocusGroup_RequiresTopic(t *testing.T) {
	a := &fakeApp{}
	_, err := runCLI(t, a, "generate", "focus-group", "--project", "p1")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	a := &fakeApp{}
	out, err := runCLI(t, a, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "symctl version")
}

func TestRoot_Help(t *testing.T) {
	a := &fakeApp{}
	out, err := runCLI(t, a, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "symctl")
	assert.Contains(t, out, "projects")
	assert.Contains(t, out, "generate")
}
