// Package version carries build information stamped at link time.
package version

// Build information set by ldflags, for example:
// -X github.com/tacogips/kickstart/internal/version.Version=1.2.3
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
