// internal/version/version.go
package version

import "fmt"

// Overridden at build time with -ldflags "-X primecheck/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("primecheck %s (commit=%s, date=%s)", Version, Commit, Date)
}
