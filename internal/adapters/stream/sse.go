// Package stream implements the ProgressSource port: the SSE transport
// that feeds generation job progress to the tracker, and a poll-based
// fallback for environments without event-stream support.
package stream

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"go.trai.ch/zerr"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports"
)

// SSESource opens server-sent-event progress streams.
type SSESource struct {
	baseURL    string
	httpClient *http.Client
	logger     ports.Logger
}

// NewSSESource creates an SSE-backed progress source. Streams are
// long-lived; the client carries no overall timeout.
func NewSSESource(baseURL string, logger ports.Logger) *SSESource {
	return newSSESourceWithHTTP(baseURL, &http.Client{}, logger)
}

// newSSESourceWithHTTP creates a source with a custom http client (used for testing).
func newSSESourceWithHTTP(baseURL string, httpClient *http.Client, logger ports.Logger) *SSESource {
	return &SSESource{baseURL: baseURL, httpClient: httpClient, logger: logger}
}

// Open implements ports.ProgressSource.
func (s *SSESource) Open(ctx context.Context, req domain.StreamRequest) (ports.ProgressStream, error) {
	if req.JobID == "" {
		return nil, domain.ErrEmptyJobID
	}

	query := url.Values{}
	if req.UnitCount > 0 {
		query.Set("units", strconv.Itoa(req.UnitCount))
	}
	if req.UseKnowledgeSource {
		query.Set("knowledge_source", "true")
	}
	endpoint := fmt.Sprintf("%s/api/generation/%s/stream", s.baseURL, url.PathEscape(req.JobID))
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	ctx, cancel := context.WithCancel(ctx)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		cancel()
		return nil, zerr.Wrap(domain.ErrConnectionLost, err.Error())
	}
	httpReq.Header.Set("Accept", "text/event-stream")
	httpReq.Header.Set("Cache-Control", "no-cache")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		cancel()
		return nil, zerr.Wrap(domain.ErrConnectionLost, err.Error())
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return nil, zerr.With(domain.ErrConnectionLost, "status", strconv.Itoa(resp.StatusCode))
	}

	stream := &sseStream{
		resp:   resp,
		cancel: cancel,
		logger: s.logger,
		events: make(chan domain.Snapshot),
	}
	go stream.consume()
	return stream, nil
}

// sseStream is one open event-stream connection.
type sseStream struct {
	resp   *http.Response
	cancel context.CancelFunc
	logger ports.Logger

	events chan domain.Snapshot

	mu  sync.Mutex
	err error

	closeOnce sync.Once
}

// consume reads SSE frames off the response body until it ends. Malformed
// events are logged and dropped; they never tear the stream down. A
// transport failure is recorded once for Err.
func (s *sseStream) consume() {
	defer close(s.events)
	defer s.resp.Body.Close()

	scanner := bufio.NewScanner(s.resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var eventName string
	var data strings.Builder

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "":
			// Blank line terminates a frame.
			s.dispatch(eventName, data.String())
			eventName = ""
			data.Reset()
		case strings.HasPrefix(line, "event:"):
			eventName = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		case strings.HasPrefix(line, ":"):
			// Comment line, used by servers as keep-alive.
		}
	}

	if err := scanner.Err(); err != nil && context.Cause(s.resp.Request.Context()) == nil {
		s.mu.Lock()
		s.err = zerr.Wrap(domain.ErrConnectionLost, err.Error())
		s.mu.Unlock()
	}
}

// dispatch parses one complete frame and forwards progress events.
func (s *sseStream) dispatch(eventName, payload string) {
	if eventName != "progress" || payload == "" {
		return
	}

	var raw struct {
		Stage           string `json:"stage"`
		ProgressPercent int    `json:"progress_percent"`
		Message         string `json:"message"`
		UnitsCompleted  int    `json:"units_completed"`
		UnitsTotal      int    `json:"units_total"`
		Error           string `json:"error"`
	}
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		s.logger.Warn(fmt.Sprintf("dropping event: %v", zerr.Wrap(domain.ErrEventParseFailed, err.Error())))
		return
	}
	stage, err := domain.ParseStage(raw.Stage)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("dropping event: %v", zerr.With(err, "stage", raw.Stage)))
		return
	}

	s.events <- domain.Snapshot{
		Stage:           stage,
		ProgressPercent: raw.ProgressPercent,
		Message:         raw.Message,
		UnitsCompleted:  raw.UnitsCompleted,
		UnitsTotal:      raw.UnitsTotal,
		Error:           raw.Error,
	}
}

// Events implements ports.ProgressStream.
func (s *sseStream) Events() iter.Seq[domain.Snapshot] {
	return func(yield func(domain.Snapshot) bool) {
		for snapshot := range s.events {
			if !yield(snapshot) {
				return
			}
		}
	}
}

// Err implements ports.ProgressStream.
func (s *sseStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close implements ports.ProgressStream. It is idempotent.
func (s *sseStream) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		// Drain so the consumer can observe the cancelled body and exit.
		go func() {
			for range s.events {
			}
		}()
	})
	return nil
}

var _ ports.ProgressSource = (*SSESource)(nil)
