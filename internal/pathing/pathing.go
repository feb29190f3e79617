// Package pathing implements [Path], the immutable key path used to address
// both schema nodes and keys inside decoded file values.
package pathing

import (
	"path/filepath"
	"strings"
)

// Separator is the segment separator of the textual path form.
const Separator = "/"

// Path is an ordered sequence of segments. Operations never modify a Path in
// place, they return a new one that may share the backing array.
type Path struct {
	segments []string
}

// New returns a [Path] holding a copy of the given segments.
func New(segments ...string) Path {
	if len(segments) == 0 {
		return Path{}
	}

	owned := make([]string, len(segments))
	copy(owned, segments)

	return Path{segments: owned}
}

// Parse splits a textual path on [Separator]. An empty string is the empty
// path, a leading or trailing separator is ignored.
func Parse(s string) Path {
	s = strings.Trim(s, Separator)
	if s == "" {
		return Path{}
	}

	return Path{segments: strings.Split(s, Separator)}
}

func (p Path) Len() int {
	return len(p.segments)
}

func (p Path) IsEmpty() bool {
	return len(p.segments) == 0
}

// First returns the first segment, or an empty string for the empty path.
func (p Path) First() string {
	if p.IsEmpty() {
		return ""
	}

	return p.segments[0]
}

// Rest drops the first segment.
func (p Path) Rest() Path {
	return p.Skip(1)
}

// Take returns the prefix of length n, clamped to the path length.
func (p Path) Take(n int) Path {
	n = p.clamp(n)

	return Path{segments: p.segments[:n:n]}
}

// Skip drops the first n segments, clamped to the path length.
func (p Path) Skip(n int) Path {
	n = p.clamp(n)

	return Path{segments: p.segments[n:len(p.segments):len(p.segments)]}
}

// Append returns a new path with segment added at the end.
func (p Path) Append(segment string) Path {
	segments := make([]string, len(p.segments), len(p.segments)+1)
	copy(segments, p.segments)

	return Path{segments: append(segments, segment)}
}

// Join returns a new path with all segments of other added at the end.
func (p Path) Join(other Path) Path {
	segments := make([]string, 0, len(p.segments)+len(other.segments))
	segments = append(segments, p.segments...)

	return Path{segments: append(segments, other.segments...)}
}

// Segments returns a copy of the segments.
func (p Path) Segments() []string {
	segments := make([]string, len(p.segments))
	copy(segments, p.segments)

	return segments
}

// FilePath returns the segments joined with the operating system's path
// separator.
func (p Path) FilePath() string {
	return filepath.Join(p.segments...)
}

func (p Path) String() string {
	return strings.Join(p.segments, Separator)
}

func (p Path) clamp(n int) int {
	switch {
	case n < 0:
		return 0
	case n > len(p.segments):
		return len(p.segments)
	default:
		return n
	}
}
