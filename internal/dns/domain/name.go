package domain

import "strings"

// Name represents a domain name as an ordered sequence of labels.
// Labels are stored as raw text, without length prefixes and without the
// terminating root label of the wire form.
type Name struct {
	Labels []string
}

// ParseName splits a dotted domain name into its labels.
// A single trailing dot is treated as the root terminator and discarded;
// an empty string yields the root name (no labels).
func ParseName(s string) Name {
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return Name{Labels: []string{}}
	}
	return Name{Labels: strings.Split(s, ".")}
}

// String returns the dotted representation of the name.
func (n Name) String() string {
	return strings.Join(n.Labels, ".")
}

// IsRoot returns true if the name has no labels.
func (n Name) IsRoot() bool {
	return len(n.Labels) == 0
}
