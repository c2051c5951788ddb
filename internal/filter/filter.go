package filter

import (
	"fmt"

	"github.com/siftlab/sift/internal/ir"
)

// Filter is a sealed interface over the filter AST: the intermediate
// representation of a query-filter document, independent of its final
// encoding.
//
// Only types in this package implement it. The marker method pattern
// enables exhaustive type switches in renderers and validators.
//
// Every Field inside a node is a fully resolved Path. Nodes are created
// fresh per translation call and never mutated afterwards.
type Filter interface {
	filterNode() // Marker method - seals interface to this package
}

// Exists tests whether a field is present ({"f": {"$exists": true}}).
type Exists struct {
	Field Path

	// Exists is true for presence, false for absence tests.
	Exists bool
}

func (Exists) filterNode() {}

// Eq tests a field for equality with a wire value. Under the target
// grammar this also matches array fields containing the value.
type Eq struct {
	Field Path
	Value ir.Value
}

func (Eq) filterNode() {}

// CompareOp enumerates the non-equality comparison operators.
type CompareOp int

const (
	CompareNe CompareOp = iota
	CompareGt
	CompareGte
	CompareLt
	CompareLte
)

// Operator returns the target grammar's operator key, e.g. "$gt".
func (op CompareOp) Operator() string {
	switch op {
	case CompareNe:
		return "$ne"
	case CompareGt:
		return "$gt"
	case CompareGte:
		return "$gte"
	case CompareLt:
		return "$lt"
	case CompareLte:
		return "$lte"
	default:
		return fmt.Sprintf("$op(%d)", int(op))
	}
}

// Compare tests a field against a wire value with a comparison operator.
type Compare struct {
	Op    CompareOp
	Field Path
	Value ir.Value
}

func (Compare) filterNode() {}

// In tests a field for membership in a set of wire values.
// An empty set is a legal filter that matches nothing.
type In struct {
	Field  Path
	Values ir.Array
}

func (In) filterNode() {}

// And is the conjunction of its children. Child order mirrors the
// left-to-right order of the source expression and is never reordered.
type And struct {
	Children []Filter
}

func (And) filterNode() {}

// Or is the disjunction of its children. Child order mirrors the
// left-to-right order of the source expression and is never reordered.
type Or struct {
	Children []Filter
}

func (Or) filterNode() {}

// Not negates its child.
type Not struct {
	Child Filter
}

func (Not) filterNode() {}

// Regex tests a string field against a regular expression in the target
// grammar's dialect. Options uses the grammar's flag letters ("i", "s").
type Regex struct {
	Field   Path
	Pattern string
	Options string
}

func (Regex) filterNode() {}
