package filter

import "fmt"

// Validate checks that a filter AST is reachable from the valid target
// grammar: every field path resolved and non-empty, every operand
// present, every combinator non-degenerate. Translators uphold these
// rules by construction; Validate is the safety net for hand-built
// trees (tests, the conformance harness, future translators).
//
// Validate is a pure function with no side effects.
func Validate(f Filter) error {
	v := &validator{}
	v.validate(f)
	if len(v.issues) == 0 {
		return nil
	}
	return fmt.Errorf("invalid filter: %s", v.issues[0])
}

// validator accumulates issues during traversal.
type validator struct {
	issues []string
}

func (v *validator) addIssue(format string, args ...any) {
	v.issues = append(v.issues, fmt.Sprintf(format, args...))
}

func (v *validator) validate(f Filter) {
	switch node := f.(type) {
	case nil:
		v.addIssue("nil filter node")
	case Exists:
		v.validateField("Exists", node.Field)
	case Eq:
		v.validateField("Eq", node.Field)
		if node.Value == nil {
			v.addIssue("Eq on %q has no value", node.Field)
		}
	case Compare:
		v.validateField("Compare", node.Field)
		if node.Value == nil {
			v.addIssue("Compare %s on %q has no value", node.Op.Operator(), node.Field)
		}
	case In:
		v.validateField("In", node.Field)
		for i, elem := range node.Values {
			if elem == nil {
				v.addIssue("In on %q has nil element at %d", node.Field, i)
			}
		}
	case And:
		if len(node.Children) == 0 {
			v.addIssue("And with no children is outside the filter grammar")
		}
		for _, child := range node.Children {
			v.validate(child)
		}
	case Or:
		if len(node.Children) == 0 {
			v.addIssue("Or with no children is outside the filter grammar")
		}
		for _, child := range node.Children {
			v.validate(child)
		}
	case Not:
		if node.Child == nil {
			v.addIssue("Not with no child")
			return
		}
		v.validate(node.Child)
	case Regex:
		v.validateField("Regex", node.Field)
		if node.Pattern == "" {
			v.addIssue("Regex on %q has empty pattern", node.Field)
		}
	default:
		v.addIssue("unknown filter node type: %T", f)
	}
}

func (v *validator) validateField(kind string, p Path) {
	if p.IsEmpty() {
		v.addIssue("%s node with empty field path", kind)
		return
	}
	for i, step := range p {
		if step == "" {
			v.addIssue("%s node field path has empty step at %d", kind, i)
		}
	}
}
