package ports

import "io"

// Logger is the application-wide logging interface.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning message.
	Warn(msg string)

	// Error logs an error, unwrapping structured error chains.
	Error(err error)

	// SetOutput redirects log output. Used for testing.
	SetOutput(w io.Writer)

	// SetJSON switches between JSON and pretty output.
	SetJSON(enable bool)
}
