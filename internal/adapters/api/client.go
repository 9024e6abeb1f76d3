// Package api implements the APIClient port over the Symulacja HTTP API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/zerr"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
)

const defaultTimeout = 30 * time.Second

// Client implements ports.APIClient against the server's JSON API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return newClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// errorEnvelope is the server's error response body.
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e errorEnvelope) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// do performs one JSON round-trip. A non-nil out receives the decoded
// response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return zerr.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return zerr.Wrap(domain.ErrAPIRequestFailed, err.Error())
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zerr.Wrap(domain.ErrAPIRequestFailed, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return zerr.Wrap(domain.ErrAPIResponseParse, err.Error())
	}
	return nil
}

// statusError maps non-2xx responses to sentinel errors, carrying the
// server's message where one is given.
func (c *Client) statusError(resp *http.Response) error {
	var envelope errorEnvelope
	// A malformed error body is tolerated; the status code still maps.
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.ErrResourceNotFound
	case http.StatusGone:
		return domain.ErrUndoExpired
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if msg := envelope.text(); msg != "" {
			return zerr.Wrap(domain.ErrMutationRejected, msg)
		}
		return domain.ErrMutationRejected
	default:
		err := zerr.With(domain.ErrAPIRequestFailed, "status", fmt.Sprintf("%d", resp.StatusCode))
		if msg := envelope.text(); msg != "" {
			err = zerr.Wrap(err, msg)
		}
		return err
	}
}

// ListProjects implements ports.APIClient.
func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject implements ports.APIClient.
func (c *Client) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	var project domain.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+url.PathEscape(id), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject implements ports.APIClient.
func (c *Client) CreateProject(ctx context.Context, draft domain.ProjectDraft) (*domain.Project, error) {
	var project domain.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", draft, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject implements ports.APIClient.
func (c *Client) UpdateProject(ctx context.Context, id string, draft domain.ProjectDraft) (*domain.Project, error) {
	var project domain.Project
	if err := c.do(ctx, http.MethodPatch, "/api/projects/"+url.PathEscape(id), draft, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject implements ports.APIClient. The reason code travels in the
// request body of the DELETE.
func (c *Client) DeleteProject(ctx context.Context, id string, req domain.DeleteRequest) (*domain.DeleteReceipt, error) {
	var receipt domain.DeleteReceipt
	if err := c.do(ctx, http.MethodDelete, "/api/projects/"+url.PathEscape(id), req, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// UndoDeleteProject implements ports.APIClient.
func (c *Client) UndoDeleteProject(ctx context.Context, id string) (*domain.UndoReceipt, error) {
	var receipt domain.UndoReceipt
	if err := c.do(ctx, http.MethodPost, "/api/projects/"+url.PathEscape(id)+"/undo", nil, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// ListPersonas implements ports.APIClient.
func (c *Client) ListPersonas(ctx context.Context, projectID string) ([]domain.Persona, error) {
	var personas []domain.Persona
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+url.PathEscape(projectID)+"/personas", nil, &personas); err != nil {
		return nil, err
	}
	return personas, nil
}

// ListFocusGroups implements ports.APIClient.
func (c *Client) ListFocusGroups(ctx context.Context, projectID string) ([]domain.FocusGroup, error) {
	var groups []domain.FocusGroup
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+url.PathEscape(projectID)+"/focus-groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// FetchDashboard implements ports.APIClient.
func (c *Client) FetchDashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	var summary domain.DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// StartGeneration implements ports.APIClient.
func (c *Client) StartGeneration(ctx context.Context, req domain.GenerationRequest) (string, error) {
	var resp struct {
		JobID string `json:"job_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/generation", req, &resp); err != nil {
		return "", err
	}
	if resp.JobID == "" {
		return "", zerr.Wrap(domain.ErrAPIResponseParse, "generation response missing job_id")
	}
	return resp.JobID, nil
}

// JobStatus implements ports.APIClient.
func (c *Client) JobStatus(ctx context.Context, jobID string) (*domain.Snapshot, error) {
	var raw struct {
		Stage           string `json:"stage"`
		ProgressPercent int    `json:"progress_percent"`
		Message         string `json:"message"`
		UnitsCompleted  int    `json:"units_completed"`
		UnitsTotal      int    `json:"units_total"`
		Error           string `json:"error"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/generation/"+url.PathEscape(jobID)+"/status", nil, &raw); err != nil {
		return nil, err
	}

	stage, err := domain.ParseStage(raw.Stage)
	if err != nil {
		return nil, zerr.With(err, "stage", raw.Stage)
	}
	return &domain.Snapshot{
		Stage:           stage,
		ProgressPercent: raw.ProgressPercent,
		Message:         raw.Message,
		UnitsCompleted:  raw.UnitsCompleted,
		UnitsTotal:      raw.UnitsTotal,
		Error:           raw.Error,
	}, nil
}

// actionEnvelope is the wire form of an action outcome.
type actionEnvelope struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	RedirectURL string `json:"redirect_url"`
}

// ExecuteAction implements ports.APIClient. The flat wire envelope is
// mapped onto the sealed outcome variants.
func (c *Client) ExecuteAction(ctx context.Context, name string, params map[string]string) (domain.ActionOutcome, error) {
	body := struct {
		Params map[string]string `json:"params,omitempty"`
	}{Params: params}

	var envelope actionEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/actions/"+url.PathEscape(name), body, &envelope); err != nil {
		return nil, err
	}

	switch envelope.Status {
	case "success":
		return domain.ActionSuccess{Message: envelope.Message}, nil
	case "error":
		return domain.ActionError{Message: envelope.Message}, nil
	case "redirect":
		return domain.ActionRedirect{Message: envelope.Message, URL: envelope.RedirectURL}, nil
	default:
		return nil, zerr.Wrap(domain.ErrAPIResponseParse, fmt.Sprintf("unknown action status %q", envelope.Status))
	}
}
