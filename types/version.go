// Package types holds the values shared between the wpget library, its
// internal packages and the command line tool.
package types

import "runtime"

// Version and Name are printed by "wpget -version".
const (
	Version = "0.1.0"
	Name    = "wpget"
)

// BuildInfo is what "wpget -version" reports.
type BuildInfo struct {
	Version   string
	Name      string
	GoVersion string
}

// GetBuildInfo reports the wpget release along with the Go toolchain the
// binary was built with.
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Name:      Name,
		GoVersion: runtime.Version(),
	}
}
