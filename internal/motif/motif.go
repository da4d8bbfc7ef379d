// Package motif holds the fixed GGA spacer motif and the search over a
// single sequence.
package motif

import "regexp"

// Pattern is two GGA triplets 4–70 nt apart followed by a 2–12 nt tail.
const Pattern = `GGA[ACGT]{4,70}GGA[ACGT]{2,12}`

// Flags written per record.
const (
	FlagMatch   = "Y"
	FlagNoMatch = "N"
)

var re = regexp.MustCompile(Pattern)

// Match reports whether the motif occurs anywhere in seq.
// The search is unanchored and case-sensitive.
func Match(seq []byte) bool {
	return re.Match(seq)
}

// Find returns the half-open span of the leftmost occurrence.
func Find(seq []byte) (start, end int, ok bool) {
	loc := re.FindIndex(seq)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// Flag maps a match result to its output flag.
func Flag(matched bool) string {
	if matched {
		return FlagMatch
	}
	return FlagNoMatch
}
