package conformance

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Case defines a conformance test case: a document model, a predicate
// expression over it, and the expected outcome. Cases validate the
// translation contract end to end, from expression tree to rendered
// filter document, without touching any Go API surface.
type Case struct {
	// Name uniquely identifies this case.
	Name string `yaml:"name"`

	// Description explains what this case validates.
	Description string `yaml:"description"`

	// Model declares the document model the predicate ranges over.
	Model ModelSpec `yaml:"model"`

	// Expression is the predicate expression tree.
	Expression ExprSpec `yaml:"expression"`

	// Expect specifies the expected outcome: exactly one of a rendered
	// filter document or a translation error code.
	Expect ExpectSpec `yaml:"expect"`
}

// ModelSpec declares a document model as an ordered field list.
type ModelSpec struct {
	// Name is the model's type name, used in diagnostics.
	Name string `yaml:"name"`

	// Fields lists the model's fields in declaration order.
	Fields []FieldSpec `yaml:"fields"`
}

// FieldSpec declares one model field and its serialization mapping.
type FieldSpec struct {
	// Member is the model-level member name.
	Member string `yaml:"member"`

	// Key is the document-level field name. Defaults to Member.
	Key string `yaml:"key,omitempty"`

	// Type selects the serializer: string, int32, int64, double, bool,
	// enum, map, or array.
	Type string `yaml:"type"`

	// Representation selects the on-wire form of a map field:
	// Document, ArrayOfDocuments, or ArrayOfArrays.
	Representation string `yaml:"representation,omitempty"`

	// Keys and Values describe a map field's key and value serializers.
	Keys   *FieldSpec `yaml:"keys,omitempty"`
	Values *FieldSpec `yaml:"values,omitempty"`

	// Elements describes an array field's element serializer.
	Elements *FieldSpec `yaml:"elements,omitempty"`

	// Enum names an enum type; Names maps ordinals to wire strings.
	Enum  string           `yaml:"enum,omitempty"`
	Names map[int64]string `yaml:"names,omitempty"`
}

// ExprSpec encodes one expression tree node. Exactly one field must be
// set; which one determines the node kind.
type ExprSpec struct {
	// Param references a lambda parameter by name.
	Param string `yaml:"param,omitempty"`

	// Member accesses a named member of a target expression.
	Member *MemberSpec `yaml:"member,omitempty"`

	// Index accesses a keyed element of a target expression.
	Index *IndexSpec `yaml:"index,omitempty"`

	// Const is a compile-time literal.
	Const *ConstSpec `yaml:"const,omitempty"`

	// Call invokes a method on a receiver.
	Call *CallSpec `yaml:"call,omitempty"`

	// Binary applies a binary operator.
	Binary *BinarySpec `yaml:"binary,omitempty"`

	// Unary applies a unary operator.
	Unary *UnarySpec `yaml:"unary,omitempty"`

	// Lambda binds a parameter over a predicate body.
	Lambda *LambdaSpec `yaml:"lambda,omitempty"`
}

// MemberSpec is a member access node.
type MemberSpec struct {
	Target *ExprSpec `yaml:"target"`
	Name   string    `yaml:"name"`
}

// IndexSpec is a keyed access node.
type IndexSpec struct {
	Target *ExprSpec `yaml:"target"`
	Key    *ExprSpec `yaml:"key"`
}

// ConstSpec is a literal node. Value holds the decoded YAML scalar,
// sequence, or mapping.
type ConstSpec struct {
	Value any `yaml:"value"`
}

// CallSpec is a method call node. Calls in case files default to the
// instance-method predicate shape: non-static, exported, boolean
// return. Static flips the shape for negative cases.
type CallSpec struct {
	Method   string     `yaml:"method"`
	Receiver *ExprSpec  `yaml:"receiver,omitempty"`
	Args     []ExprSpec `yaml:"args,omitempty"`
	Static   bool       `yaml:"static,omitempty"`

	// Returns overrides the return type name. Defaults to bool.
	Returns string `yaml:"returns,omitempty"`
}

// BinarySpec is a binary operator node. Op is one of: and, or, eq, ne,
// gt, gte, lt, lte.
type BinarySpec struct {
	Op    string    `yaml:"op"`
	Left  *ExprSpec `yaml:"left"`
	Right *ExprSpec `yaml:"right"`
}

// UnarySpec is a unary operator node. Op must be not.
type UnarySpec struct {
	Op      string    `yaml:"op"`
	Operand *ExprSpec `yaml:"operand"`
}

// LambdaSpec is a root predicate node.
type LambdaSpec struct {
	Param string    `yaml:"param"`
	Body  *ExprSpec `yaml:"body"`
}

// ExpectSpec specifies the expected outcome of a case.
type ExpectSpec struct {
	// Document is the expected rendered filter document in canonical
	// JSON form.
	Document string `yaml:"document,omitempty"`

	// Error is the expected translation error code, e.g.
	// UNSUPPORTED_REPRESENTATION.
	Error string `yaml:"error,omitempty"`

	// Contains lists substrings the error message must include, e.g.
	// the representation tag the failure names.
	Contains []string `yaml:"contains,omitempty"`
}

// ParseCase parses a case from YAML bytes with strict field validation,
// rejecting unknown fields to catch typos in case files.
func ParseCase(data []byte) (*Case, error) {
	var c Case
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse case YAML: %w", err)
	}

	if err := validateCase(&c); err != nil {
		return nil, fmt.Errorf("invalid case: %w", err)
	}
	return &c, nil
}

// validateCase checks that required fields are present and that the
// expectation is unambiguous.
func validateCase(c *Case) error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Description == "" {
		return fmt.Errorf("description is required")
	}
	if c.Model.Name == "" {
		return fmt.Errorf("model.name is required")
	}
	if len(c.Model.Fields) == 0 {
		return fmt.Errorf("model.fields is required and must be non-empty")
	}
	for i, f := range c.Model.Fields {
		if f.Member == "" {
			return fmt.Errorf("model.fields[%d]: member is required", i)
		}
		if f.Type == "" {
			return fmt.Errorf("model.fields[%d]: type is required", i)
		}
	}

	hasDoc := c.Expect.Document != ""
	hasErr := c.Expect.Error != ""
	if hasDoc == hasErr {
		return fmt.Errorf("expect: exactly one of document or error is required")
	}
	if hasDoc && len(c.Expect.Contains) > 0 {
		return fmt.Errorf("expect.contains is only valid with expect.error")
	}
	return nil
}
