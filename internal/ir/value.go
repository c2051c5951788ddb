package ir

import (
	"fmt"
	"math"
	"slices"
	"unicode/utf16"
)

// Value is a sealed interface over the literal values that can appear in a
// filter document. Only Null, String, Int32, Int64, Double, Bool, Array,
// and Document implement it.
//
// Values are what serializers produce: the wire-level form of a model-level
// constant. The translation engine never invents a Value shape a serializer
// did not emit.
type Value interface {
	value() // Sealed - only these types implement it
}

// Null represents the document null value.
// Using an explicit type ensures all Values satisfy the sealed interface.
type Null struct{}

func (Null) value() {}

// String represents a UTF-8 string value.
type String string

func (String) value() {}

// Int32 represents a 32-bit integer value.
type Int32 int32

func (Int32) value() {}

// Int64 represents a 64-bit integer value.
type Int64 int64

func (Int64) value() {}

// Double represents a 64-bit IEEE 754 value.
// NaN and infinities are rejected at the canonical rendering boundary.
type Double float64

func (Double) value() {}

// Bool represents a boolean value.
type Bool bool

func (Bool) value() {}

// Array represents an ordered sequence of Values.
type Array []Value

func (Array) value() {}

// Entry is a single key/value pair of a Document.
type Entry struct {
	Key   string
	Value Value
}

// Document represents an ordered sequence of key/value pairs.
//
// Order is significant: a filter document's shape depends on the order its
// entries were appended, and rendering preserves it. Use NewDocument and
// Append for construction; use FromGoMap when starting from an unordered
// Go map (keys are then ordered deterministically).
type Document []Entry

func (Document) value() {}

// NewDocument creates a Document from entries, preserving their order.
func NewDocument(entries ...Entry) Document {
	return Document(entries)
}

// E is a shorthand Entry constructor for ergonomic Document literals.
// Example: NewDocument(E("$exists", Bool(true)))
func E(key string, v Value) Entry {
	return Entry{Key: key, Value: v}
}

// Append returns a new Document with the entry added at the end.
// The receiver is never mutated in place by the translation engine.
func (d Document) Append(key string, v Value) Document {
	out := make(Document, len(d), len(d)+1)
	copy(out, d)
	return append(out, Entry{Key: key, Value: v})
}

// Get returns the value for key and whether it is present.
// The first entry wins when a key is duplicated.
func (d Document) Get(key string) (Value, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the document keys in entry order.
func (d Document) Keys() []string {
	keys := make([]string, len(d))
	for i, e := range d {
		keys[i] = e.Key
	}
	return keys
}

// FromGo converts a plain Go value (as produced by YAML or JSON decoding)
// into a Value. Maps become Documents with keys in canonical UTF-16 code
// unit order, since Go map iteration order is not deterministic.
//
// Integral float64 values decode to Int64, fractional ones to Double.
// NaN and infinities are rejected.
func FromGo(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case int:
		return Int64(val), nil
	case int32:
		return Int32(val), nil
	case int64:
		return Int64(val), nil
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, fmt.Errorf("non-finite double not representable: %v", val)
		}
		if val == math.Trunc(val) && math.Abs(val) < 1<<53 {
			return Int64(val), nil
		}
		return Double(val), nil
	case []any:
		arr := make(Array, len(val))
		for i, elem := range val {
			ev, err := FromGo(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			arr[i] = ev
		}
		return arr, nil
	case map[string]any:
		return FromGoMap(val)
	case Value:
		return val, nil
	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}

// FromGoMap converts an unordered Go map into a Document with keys in
// canonical UTF-16 code unit order.
func FromGoMap(m map[string]any) (Document, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, CompareKeys)

	doc := make(Document, 0, len(m))
	for _, k := range keys {
		ev, err := FromGo(m[k])
		if err != nil {
			return nil, fmt.Errorf("document[%q]: %w", k, err)
		}
		doc = append(doc, Entry{Key: k, Value: ev})
	}
	return doc, nil
}

// CompareKeys compares strings by UTF-16 code units, the canonical JSON
// key ordering (RFC 8785). Go's default string comparison uses UTF-8
// bytes, which produces a different order for some code points.
func CompareKeys(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	minLen := len(a16)
	if len(b16) < minLen {
		minLen = len(b16)
	}

	for i := 0; i < minLen; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}

	if len(a16) < len(b16) {
		return -1
	}
	if len(a16) > len(b16) {
		return 1
	}
	return 0
}

// Equal reports deep structural equality of two Values.
// Document equality is order-sensitive: the same entries in a different
// order are different documents.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Int32:
		bv, ok := b.(Int32)
		return ok && av == bv
	case Int64:
		bv, ok := b.(Int64)
		return ok && av == bv
	case Double:
		bv, ok := b.(Double)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Document:
		bv, ok := b.(Document)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i].Key != bv[i].Key || !Equal(av[i].Value, bv[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
