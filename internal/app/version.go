package app

import (
	"fmt"
	"runtime/debug"
)

const serviceName = "scanreview"

// Build metadata, stamped with
// -ldflags "-X github.com/heartmarshall/scanreview-backend/internal/app.Version=1.4.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is reported by /health and the startup log. When Commit was
// not stamped it falls back to the VCS revision recorded by the toolchain.
func BuildVersion() string {
	commit := Commit
	if commit == "unknown" {
		commit = vcsRevision()
	}
	return fmt.Sprintf("%s %s (commit %s, built %s)", serviceName, Version, commit, BuildTime)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return "unknown"
}
