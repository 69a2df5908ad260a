// Package version provides the build version of the tools.
package version

import "fmt"

// build is overridden at link time with
// -ldflags "-X ...internal/version.build=..."
var (
	major = 0
	minor = 1
	build = "dev"
)

// Info describes the build version.
type Info struct {
	Major int
	Minor int
	Build string
}

// Current returns the version of the binary.
func Current() Info {
	return Info{Major: major, Minor: minor, Build: build}
}

func (v Info) String() string {
	return fmt.Sprintf("%d.%d-%s", v.Major, v.Minor, v.Build)
}
