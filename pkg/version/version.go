// Package version exposes build metadata stamped at link time via
// -ldflags.
package version

// Set by the build, e.g.
// -ldflags "-X github.com/statlens/crimelens/pkg/version.Version=v1.0.0".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
