package mode

import (
	"regexp"
	"strings"
)

var (
	// foo.~1~, foo.~tag~ and plain foo~
	versionSuffix = regexp.MustCompile(`(?:\.~[-0-9A-Za-z:#@^._]+~|~)\z`)

	// /ssh:user@host: and multi-hop /ssh:a|sudo:b:
	trampPrefix = regexp.MustCompile(`\A/(?:[A-Za-z][-A-Za-z0-9]*:[^/:|]*\|)*[A-Za-z][-A-Za-z0-9]*:[^/:|]*:`)

	// ssh://host, sftp://user@host:22
	urlPrefix = regexp.MustCompile(`\A[A-Za-z][-+.A-Za-z0-9]*://[^/]*`)
)

// StripVersions removes backup and version suffixes from the base name
// until none are left. The directory part is never touched and the base
// name is never reduced to nothing.
func StripVersions(name string) string {
	baseStart := strings.LastIndexByte(name, '/') + 1
	for {
		loc := versionSuffix.FindStringIndex(name)
		if loc == nil || loc[0] <= baseStart {
			return name
		}
		name = name[:loc[0]]
	}
}

// RemotePrefix returns the remote-location prefix of name, or "" when name
// is local.
func RemotePrefix(name string) string {
	if loc := trampPrefix.FindStringIndex(name); loc != nil {
		return name[:loc[1]]
	}
	if loc := urlPrefix.FindStringIndex(name); loc != nil {
		return name[:loc[1]]
	}
	return ""
}

// TrimRemote strips prefix from the front of name. A prefix that is not
// actually at the front is ignored.
func TrimRemote(name, prefix string) string {
	if prefix == "" {
		return name
	}
	return strings.TrimPrefix(name, prefix)
}

// Normalize returns the name that takes part in pattern matching: version
// suffixes and remote prefixes removed. Normalize(Normalize(x)) == Normalize(x).
func Normalize(name string) string {
	for {
		next := StripVersions(name)
		next = TrimRemote(next, RemotePrefix(next))
		if next == name {
			return name
		}
		name = next
	}
}
