// Package build holds build-time metadata injected via -ldflags.
package build

// These variables are overridden at build time:
//
//	go build -ldflags "-X github.com/JakWdo/Symulacja-sub006/internal/build.Version=..."
var (
	// Version is the semantic version of the binary.
	Version = "dev"
	// Commit is the git commit hash the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
