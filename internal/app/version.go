package app

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/heartmarshall/mydocs-backend/internal/app.Version=1.4.0".
// Commit and BuildTime fall back to the VCS stamp go build embeds.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		Commit, BuildTime = vcsStamp(info.Settings, Commit, BuildTime)
	}
}

// vcsStamp fills commit and build time from vcs.* build settings when they
// were not set by ldflags. A dirty tree is marked with a "+dirty" suffix.
func vcsStamp(settings []debug.BuildSetting, commit, built string) (string, string) {
	var revision, modified, vcsTime string
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			vcsTime = s.Value
		}
	}

	if commit == "unknown" && revision != "" {
		if len(revision) > 12 {
			revision = revision[:12]
		}
		if modified == "true" {
			revision += "+dirty"
		}
		commit = revision
	}
	if built == "unknown" && vcsTime != "" {
		built = vcsTime
	}
	return commit, built
}

// BuildVersion is the version string logged at startup.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
