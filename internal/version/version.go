package version

import "runtime/debug"

// unknown is the version reported when neither -ldflags nor the module build
// info provide one.
const unknown = "unknown"

var (
	// Build-time parameters set via -ldflags
	Version = unknown
)

// Known reports whether a version has been determined for this build.
func Known() bool {
	return Version != "" && Version != unknown
}

// svgedit may be installed with `go install` without -ldflags, in which case
// the version above is unset; the module version embedded by `go install` is
// used instead (it is not set by `go build`).
func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	mainVersion := info.Main.Version
	if mainVersion == "" || mainVersion == "(devel)" {
		return
	}
	Version = mainVersion
}
