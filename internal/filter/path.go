package filter

import "strings"

// Path is a fully resolved field path: the sequence of element names
// from the document root to the addressed field.
//
// Paths inside filter nodes are always complete: resolution finishes
// before any node is constructed, so a Path never stands in for an
// unresolved source expression.
type Path []string

// NewPath creates a Path from element names.
func NewPath(steps ...string) Path {
	return Path(steps)
}

// Child returns a new Path extended by one element name. The receiver
// is not mutated; extensions during resolution never alias.
func (p Path) Child(step string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, step)
}

// Dotted renders the path in the target grammar's dotted notation,
// e.g. ["a","b"] renders as "a.b".
func (p Path) Dotted() string {
	return strings.Join([]string(p), ".")
}

// Equal reports whether two paths have identical step sequences.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// IsEmpty reports whether the path has no steps. Empty paths are
// unreachable from the valid filter grammar.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

func (p Path) String() string {
	return p.Dotted()
}
