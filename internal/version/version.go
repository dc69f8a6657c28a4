package version

import (
	"fmt"
	"runtime/debug"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/RenoirTan/tti/internal/version.Version=v1.2.3 \
//	                   -X github.com/RenoirTan/tti/internal/version.Commit=abc123"
//
// If not set, they are populated from Go's VCS build info when available.
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

func init() {
	if Version == "" || Commit == "" {
		populateFromBuildInfo()
	}

	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// populateFromBuildInfo reads VCS information embedded by the Go toolchain
// when built from a git checkout.
func populateFromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var vcsRevision, vcsModified string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			vcsRevision = setting.Value
		case "vcs.modified":
			vcsModified = setting.Value
		}
	}

	if Commit == "" && vcsRevision != "" {
		// Use short hash (first 7 characters)
		if len(vcsRevision) > 7 {
			Commit = vcsRevision[:7]
		} else {
			Commit = vcsRevision
		}
		if vcsModified == "true" {
			Commit += "-dirty"
		}
	}
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
