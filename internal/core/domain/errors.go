package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyJobID is returned when a progress stream is requested for an
	// empty job identifier. No connection attempt is made.
	ErrEmptyJobID = zerr.New("job id is empty")

	// ErrConnectionLost is the single terminal notification raised when a
	// progress stream's transport fails. The tracker never reconnects on
	// its own; retry policy belongs to the caller.
	ErrConnectionLost = zerr.New("connection to progress stream lost")

	// ErrEventParseFailed marks a malformed stream payload. It is logged
	// and absorbed, never surfaced: the next event is expected to
	// self-correct.
	ErrEventParseFailed = zerr.New("failed to parse progress event")

	// ErrUnknownStage is returned when the server emits a stage name the
	// client does not recognize.
	ErrUnknownStage = zerr.New("unknown job stage")

	// ErrGenerationFailed is the fallback failure message when the server
	// reports a failed job without error text.
	ErrGenerationFailed = zerr.New("generation failed")

	// ErrMutationRejected is returned when the server rejects a mutation.
	// The cache is left untouched.
	ErrMutationRejected = zerr.New("mutation rejected by server")

	// ErrResourceNotFound is returned when a detail fetch or redirect
	// resolution targets a missing resource.
	ErrResourceNotFound = zerr.New("resource not found")

	// ErrUndoExpired is returned when the server refuses an undo because
	// the recovery window has closed.
	ErrUndoExpired = zerr.New("recovery window has expired")

	// ErrCacheTypeMismatch is returned when a cached value does not have
	// the type the caller expects for its key.
	ErrCacheTypeMismatch = zerr.New("unexpected cached value type")

	// ErrStoreClosed is returned when fetching through a cache store that
	// has been torn down.
	ErrStoreClosed = zerr.New("cache store closed")

	// ErrJobStartFailed is returned when the server accepts a generation
	// request but returns no job id.
	ErrJobStartFailed = zerr.New("server returned no job id")

	// ErrAPIRequestFailed is returned for transport-level API failures.
	ErrAPIRequestFailed = zerr.New("api request failed")

	// ErrAPIResponseParse is returned when an API response body cannot be
	// decoded.
	ErrAPIResponseParse = zerr.New("failed to decode api response")

	// ErrConfigReadFailed is returned when the client config file cannot
	// be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the client config file cannot
	// be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnknownStreamMode is returned for a stream.mode config value
	// other than sse or poll.
	ErrUnknownStreamMode = zerr.New("unknown stream mode, expected 'sse' or 'poll'")

	// ErrNoProjectSpecified is returned by CLI operations that require a
	// project id.
	ErrNoProjectSpecified = zerr.New("no project specified")
)
