package meta

import "strings"

// Python setuptools marks developmental releases with ".dev", Debian version
// ordering needs "~" to sort them before the final release.
const (
	devMarker    = ".dev"
	debianMarker = "~dev"
)

// DebianVersion rewrites developmental release markers into their Debian form.
// Versions without the marker pass through unchanged.
func DebianVersion(version string) string {
	return strings.ReplaceAll(version, devMarker, debianMarker)
}

// ReleaseID returns the release identifier naming the packaged release,
// e.g. "hyperspy" + "1.2.dev0" -> "hyperspy-1.2~dev0".
func ReleaseID(name, version string) string {
	return name + "-" + DebianVersion(version)
}
