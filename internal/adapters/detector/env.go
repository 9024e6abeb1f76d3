// Package detector picks the progress rendering mode from the runtime
// environment and the user's output-mode flag.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how job progress is rendered.
type OutputMode int

const (
	// ModeAuto defers to environment detection.
	ModeAuto OutputMode = iota
	// ModeTUI renders the interactive progress view.
	ModeTUI
	// ModeLinear prints one line per progress change, suited to CI logs.
	ModeLinear
)

// DetectEnvironment recommends a rendering mode. Progress is drawn on
// stderr, so that is the descriptor probed for a TTY. Any recognized CI
// marker wins over TTY detection.
func DetectEnvironment() OutputMode {
	if inCI() {
		return ModeLinear
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return ModeLinear
	}
	return ModeTUI
}

func inCI() bool {
	switch os.Getenv("CI") {
	case "true", "1":
		return true
	}
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// ResolveMode applies the user's output-mode flag on top of detection.
// Accepted values are "tui", "linear", "ci", "auto" and empty; anything
// else falls back to the detected mode.
func ResolveMode(detected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	default:
		return detected
	}
}
