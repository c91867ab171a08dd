// Package version holds build information injected at link time.
package version

import "fmt"

// Build information set by ldflags, e.g.
// -X github.com/arthur-debert/oascan/internal/version.Version=v1.2.0
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the one-line version summary
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
