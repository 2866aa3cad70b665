// Package lineedit carries the release version of the module. The editing
// engine lives in the buffer, history, repeat, input and editor packages.
package lineedit

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Release is a parsed SemVer 2.0.0 version.
type Release struct {
	Major, Minor, Patch int
	Pre, Build          string
}

// ParseRelease parses v without a leading "v".
func ParseRelease(v string) (Release, error) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return Release{}, fmt.Errorf("invalid version %q", v)
	}
	var r Release
	for i, dst := range []*int{&r.Major, &r.Minor, &r.Patch} {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Release{}, fmt.Errorf("invalid version %q: %w", v, err)
		}
		*dst = n
	}
	r.Pre = strings.TrimPrefix(m[4], "-")
	r.Build = strings.TrimPrefix(m[5], "+")
	return r, nil
}

func (r Release) String() string {
	s := fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Patch)
	if r.Pre != "" {
		s += "-" + r.Pre
	}
	if r.Build != "" {
		s += "+" + r.Build
	}
	return s
}

// Tag returns the git tag form with a leading "v".
func (r Release) Tag() string { return "v" + r.String() }

// Version returns the embedded module version.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}
