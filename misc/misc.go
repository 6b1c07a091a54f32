// Package misc keeps build time program identity.
package misc

import (
	"runtime/debug"
)

// Set with -ldflags "-X selb/misc.version=... -X selb/misc.gitHash=..."
var (
	appName = "selb"
	version = ""
	gitHash = ""
)

func GetAppName() string {
	return appName
}

// GetVersion returns version stamped at build time, falling back to module
// version recorded by the go tool.
func GetVersion() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "dev"
}

func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
