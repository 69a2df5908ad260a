package gnupg

import (
	"strconv"
	"strings"
)

// Version identifies the installed GnuPG release: the comparable
// major.minor pair plus the full dotted string as reported by the tool.
// It is probed once per configuration and never mutated.
type Version struct {
	Major int
	Minor int
	// Full is the complete version string, e.g. "2.4.6".
	Full string
}

// AtLeast reports whether the version is >= major.minor.
func (v Version) AtLeast(major, minor int) bool {
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}

func (v Version) String() string {
	return v.Full
}

// parseVersion locates the version field in the output of a
// `--list-config --with-colons` probe and parses its first two dotted
// components. The probe emits one record per config item, e.g.
//
//	cfg:version:2.4.6
func parseVersion(res *CmdResult) (Version, error) {
	for _, line := range strings.Split(res.Text(), "\n") {
		fields := strings.Split(strings.TrimSpace(line), ":")
		if len(fields) < 3 || fields[0] != "cfg" || fields[1] != "version" {
			continue
		}
		return parseVersionString(fields[2], res)
	}
	return Version{}, NewError(ErrInit, "version not found in gpg config listing").WithResult(res)
}

func parseVersionString(full string, res *CmdResult) (Version, error) {
	parts := strings.Split(full, ".")
	if len(parts) < 2 {
		return Version{}, NewError(ErrInit, "unsupported gpg version format: %q", full).WithResult(res)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, NewError(ErrInit, "unsupported gpg version format: %q", full).WithResult(res).WithCause(err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}, NewError(ErrInit, "unsupported gpg version format: %q", full).WithResult(res).WithCause(err)
	}
	return Version{Major: major, Minor: minor, Full: full}, nil
}
