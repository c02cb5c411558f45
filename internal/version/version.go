// Package version carries the departure build version.
package version

// Version is stamped via ldflags on release builds; source builds report
// "dev".
var Version = "dev"

// Short returns the version string shown by --version.
func Short() string {
	return Version
}
