// Package version carries build metadata injected via -ldflags.
package version

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"
	// Commit is the short git hash of the build.
	Commit = ""
	// BuildDate is the RFC 3339 build timestamp.
	BuildDate = ""
)
