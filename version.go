package gmaps

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// Build metadata. Release builds set them with
//
//	go build -ldflags "-X github.com/ambiyansyah-risyal/gmaps.GitCommit=$(git rev-parse --short HEAD) \
//	    -X github.com/ambiyansyah-risyal/gmaps.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/gmaps
//
// Values left at "unknown" are filled from the VCS stamp the go command
// embeds in binaries built inside a checkout.
var (
	// Version is sent in the User-Agent header.
	Version   = "0.3.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var stampOnce sync.Once

// stamp fills GitCommit and BuildDate from the embedded build info.
func stamp() {
	stampOnce.Do(func() {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if GitCommit == "unknown" && s.Value != "" {
					GitCommit = s.Value
					if len(GitCommit) > 12 {
						GitCommit = GitCommit[:12]
					}
				}
			case "vcs.time":
				if BuildDate == "unknown" && s.Value != "" {
					BuildDate = s.Value
				}
			}
		}
	})
}

// GetVersion returns the one-line version printed by the CLI.
func GetVersion() string {
	stamp()
	return fmt.Sprintf("gmaps v%s (commit: %s, built: %s, go: %s)",
		Version, GitCommit, BuildDate, runtime.Version())
}

// GetVersionInfo returns the same data keyed for JSON output.
func GetVersionInfo() map[string]string {
	stamp()
	return map[string]string{
		"version":    Version,
		"commit":     GitCommit,
		"build_date": BuildDate,
		"go_version": runtime.Version(),
	}
}
