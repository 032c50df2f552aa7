// Package strands visualises trigram co-occurrence around the letters of a
// text: corpus statistics are learned by the trigram package, the buffer is
// scanned by grid, and arrow decides which neighbours to point at.
package strands

import (
	_ "embed"
	"regexp"
	"runtime/debug"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the strands version string in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// BuildInfo describes the running binary for `strands version`.
type BuildInfo struct {
	Version   string
	GoVersion string
	Revision  string
	Modified  bool
}

// ReadBuildInfo combines the embedded version with VCS stamps recorded by the
// Go toolchain. Revision is empty for builds outside a repository.
func ReadBuildInfo() BuildInfo {
	out := BuildInfo{Version: VersionTag()}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}
	out.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Revision = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}
	return out
}

func (b BuildInfo) String() string {
	var sb strings.Builder
	sb.WriteString("strands ")
	sb.WriteString(b.Version)
	if b.Revision != "" {
		rev := b.Revision
		if len(rev) > 12 {
			rev = rev[:12]
		}
		sb.WriteString(" (")
		sb.WriteString(rev)
		if b.Modified {
			sb.WriteString("+dirty")
		}
		sb.WriteString(")")
	}
	if b.GoVersion != "" {
		sb.WriteString(" ")
		sb.WriteString(b.GoVersion)
	}
	return sb.String()
}
