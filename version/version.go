package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// These will be set by build flags or default to development values
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// GetVersion returns the version string, preferring the compile-time version
// when one was injected and falling back to module build info.
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "development"
}

// GetCommit returns the git commit hash, preferring the compile-time value
// and falling back to the vcs.revision build setting.
func GetCommit() string {
	if Commit != "unknown" && Commit != "" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return "unknown"
}

// GetBuildDate returns the build date, preferring the compile-time value and
// falling back to the vcs.time build setting.
func GetBuildDate() string {
	if Date != "unknown" && Date != "" {
		return Date
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				return setting.Value
			}
		}
	}
	return "unknown"
}

// GetFullVersion returns a formatted version string with commit and date
func GetFullVersion() string {
	commit := GetCommit()
	if commit != "unknown" && len(commit) > 7 {
		short := commit[:7]
		if date := GetBuildDate(); date != "unknown" {
			return fmt.Sprintf("%s (%s, built %s)", GetVersion(), short, date)
		}
		return fmt.Sprintf("%s (%s)", GetVersion(), short)
	}
	return GetVersion()
}
