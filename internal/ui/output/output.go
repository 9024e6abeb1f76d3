// Package output constructs termenv outputs with uniform color profile and
// TTY handling for the renderers and the logger.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

func noColor() bool {
	return os.Getenv("NO_COLOR") != ""
}

// ColorProfile detects the terminal's color capabilities, honoring NO_COLOR.
func ColorProfile() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI picks plain ANSI colors for non-interactive writers such
// as CI logs, honoring NO_COLOR.
func ColorProfileANSI() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New returns a termenv output on w using the detected color profile.
// A nil writer falls back to stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile, opts...)
}

// NewWithProfile returns a termenv output on w using the given profile
// selector. A nil writer falls back to stderr.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
