// Package buildinfo holds version information stamped in at link time:
//
//	go build -ldflags "-X github.com/matzehuels/plannerkit/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/plannerkit/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/plannerkit/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/plannerkit
package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies plannerkit in outgoing HTTP requests.
func UserAgent() string {
	return fmt.Sprintf("plannerkit/%s (%s/%s)", Version, runtime.GOOS, runtime.GOARCH)
}

// Template is the cobra --version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
