// Package version exposes build metadata for the pakctl CLI.
package version

import "runtime/debug"

// Set by build flags, defaulting to development values.
var (
	Version = "dev"
	Commit  = "unknown"
)

// String returns the version, preferring the compile-time value and
// falling back to module build info.
func String() string {
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

// Full returns the version together with the commit hash when known.
func Full() string {
	s := String()
	if Commit != "unknown" && Commit != "" {
		s += " (" + Commit + ")"
	}
	return s
}
