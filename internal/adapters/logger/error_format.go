package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error (go.trai.ch/zerr v0.3.0+).
// If zerr's API changes, errors will gracefully fall back to standard error handling.
type messager interface {
	Message() string
}

// metadater describes an error carrying structured key-value context, as
// attached via zerr.With.
type metadater interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of a formatted error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the error chain collecting per-link messages
// and metadata. A standard (non-zerr) error terminates the walk with its
// full Error() text.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	current := err

	for current != nil {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message()}
		if md, hasMeta := current.(metadater); hasMeta {
			entry.Metadata = md.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}
	return entries
}

// formatErrorEntries renders a collected chain hierarchically: the main
// error first, then its causes under a "Caused by:" header. Metadata keys
// are sorted for stable output.
func formatErrorEntries(entries []ErrorEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var lines []string
	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")
		keys := slices.Sorted(maps.Keys(entry.Metadata))

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			for _, key := range keys {
				lines = append(lines, fmt.Sprintf("       %s: %v", key, entry.Metadata[key]))
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		for _, key := range keys {
			lines = append(lines, fmt.Sprintf("      %s: %v", key, entry.Metadata[key]))
		}
	}
	return strings.Join(lines, "\n")
}
