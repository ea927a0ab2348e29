// Package version holds build metadata, overridable with -ldflags.
package version

// Version is the service release reported by /health and the version command
var Version = "1.0.0"
