// Package version reports build information for fil.
package version

import "fmt"

// Set at build time with -ldflags "-X .../internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String describes the build, as printed by fil --version.
func String() string {
	return fmt.Sprintf("fil version %s (commit: %s, built: %s)", Version, Commit, Date)
}
