// Package version reports which rolegen build is running.
//
// Release builds stamp Version, Commit and Date with -ldflags -X. Builds that
// were not stamped (go install, go build in a checkout) fall back to the VCS
// details the Go toolchain embeds in the binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const unknown = "unknown"

// Stamped at build time, e.g.
// -ldflags "-X github.com/jmylchreest/rolegen/internal/version.Version=1.2.0".
var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown
)

// Info describes a build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns the build description, filling unstamped fields from the
// embedded build info where available.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info = withBuildSettings(info, bi.Settings)
	}
	return info
}

// withBuildSettings copies vcs.* settings into fields that were not stamped.
func withBuildSettings(info Info, settings []debug.BuildSetting) Info {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown && s.Value != "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == unknown && s.Value != "" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String returns a one-line description such as
// "rolegen version 1.2.0 (commit: 0123abcd, built: ..., go1.25.1, linux/amd64)".
func String() string {
	return format(GetInfo())
}

func format(info Info) string {
	if info.Commit == unknown || info.Date == unknown {
		return fmt.Sprintf("rolegen version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}

	commit := shortCommit(info.Commit)
	if info.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("rolegen version %s (commit: %s, built: %s, %s, %s)",
		info.Version, commit, info.Date, info.GoVersion, info.Platform)
}

// Short returns just the version number.
func Short() string {
	return Version
}

// shortCommit abbreviates a commit hash to eight characters.
func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
