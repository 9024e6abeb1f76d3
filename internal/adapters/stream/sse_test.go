package stream

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports/mocks"
)

func sseHandler(t *testing.T, frames []string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		for _, frame := range frames {
			fmt.Fprint(w, frame)
			flusher.Flush()
		}
	})
}

func collect(t *testing.T, s ports.ProgressStream) []domain.Snapshot {
	t.Helper()
	var got []domain.Snapshot
	for snapshot := range s.Events() {
		got = append(got, snapshot)
	}
	return got
}

func TestSSESource_DeliversProgressEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	server := httptest.NewServer(sseHandler(t, []string{
		"event: progress\ndata: {\"stage\":\"generating\",\"progress_percent\":40,\"units_completed\":2,\"units_total\":5}\n\n",
		"event: progress\ndata: {\"stage\":\"completed\",\"progress_percent\":100,\"units_completed\":5,\"units_total\":5}\n\n",
	}))
	defer server.Close()

	source := NewSSESource(server.URL, logger)
	stream, err := source.Open(context.Background(), domain.StreamRequest{JobID: "job-1", UnitCount: 5})
	require.NoError(t, err)
	defer stream.Close()

	got := collect(t, stream)
	require.Len(t, got, 2)
	assert.Equal(t, domain.StageGenerating, got[0].Stage)
	assert.Equal(t, 40, got[0].ProgressPercent)
	assert.Equal(t, domain.StageCompleted, got[1].Stage)
	assert.NoError(t, stream.Err())
}

func TestSSESource_QueryParameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	var gotPath, gotQuery, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "text/event-stream")
	}))
	defer server.Close()

	source := NewSSESource(server.URL, logger)
	stream, err := source.Open(context.Background(), domain.StreamRequest{
		JobID: "job-1", UnitCount: 8, UseKnowledgeSource: true,
	})
	require.NoError(t, err)
	collect(t, stream)
	stream.Close()

	assert.Equal(t, "/api/generation/job-1/stream", gotPath)
	assert.Equal(t, "knowledge_source=true&units=8", gotQuery)
	assert.Equal(t, "text/event-stream", gotAccept)
}

func TestSSESource_MalformedEventsAreDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	var warns []string
	logger.EXPECT().Warn(gomock.Any()).Times(2).Do(func(msg string) {
		warns = append(warns, msg)
	})

	server := httptest.NewServer(sseHandler(t, []string{
		"event: progress\ndata: {not json}\n\n",
		"event: progress\ndata: {\"stage\":\"daydreaming\"}\n\n",
		"event: progress\ndata: {\"stage\":\"saving\",\"progress_percent\":90}\n\n",
	}))
	defer server.Close()

	source := NewSSESource(server.URL, logger)
	stream, err := source.Open(context.Background(), domain.StreamRequest{JobID: "job-1"})
	require.NoError(t, err)
	defer stream.Close()

	got := collect(t, stream)
	require.Len(t, got, 1, "bad frames are dropped, the stream survives")
	assert.Equal(t, domain.StageSaving, got[0].Stage)
	assert.NoError(t, stream.Err(), "a dropped event is not a connection failure")

	require.Len(t, warns, 2)
	assert.Contains(t, warns[0], domain.ErrEventParseFailed.Error())
	assert.Contains(t, warns[1], domain.ErrUnknownStage.Error())
}

func TestSSESource_IgnoresOtherEventsAndComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	server := httptest.NewServer(sseHandler(t, []string{
		": keep-alive\n\n",
		"event: ping\ndata: {}\n\n",
		"event: progress\ndata: {\"stage\":\"initializing\",\"progress_percent\":0}\n\n",
	}))
	defer server.Close()

	source := NewSSESource(server.URL, logger)
	stream, err := source.Open(context.Background(), domain.StreamRequest{JobID: "job-1"})
	require.NoError(t, err)
	defer stream.Close()

	got := collect(t, stream)
	require.Len(t, got, 1)
	assert.Equal(t, domain.StageInitializing, got[0].Stage)
}

func TestSSESource_EmptyJobIDFailsFast(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		requested = true
	}))
	defer server.Close()

	source := NewSSESource(server.URL, logger)
	_, err := source.Open(context.Background(), domain.StreamRequest{})
	require.ErrorIs(t, err, domain.ErrEmptyJobID)
	assert.False(t, requested, "no connection may be opened for an empty job id")
}

func TestSSESource_NonOKStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	source := NewSSESource(server.URL, logger)
	_, err := source.Open(context.Background(), domain.StreamRequest{JobID: "job-1"})
	require.ErrorIs(t, err, domain.ErrConnectionLost)
}

func TestSSEStream_CloseIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	}))
	defer server.Close()

	source := NewSSESource(server.URL, logger)
	stream, err := source.Open(context.Background(), domain.StreamRequest{JobID: "job-1"})
	require.NoError(t, err)

	require.NoError(t, stream.Close())
	require.NoError(t, stream.Close())
	assert.NoError(t, stream.Err(), "a caller-initiated close is not a connection loss")
}
