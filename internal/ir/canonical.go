package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical renders a Value as canonical JSON bytes for golden
// comparison and diagnostics.
//
// Properties:
//  1. Document entries render in entry order (Documents are ordered)
//  2. No HTML escaping (< > & are NOT escaped)
//  3. Strings are NFC normalized
//  4. Doubles use the shortest round-trip decimal form
//  5. NaN and infinities return an error
//
// Identical Values always produce identical bytes.
func MarshalCanonical(v Value) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("nil Value cannot be rendered")
	case Null:
		return []byte("null"), nil
	case String:
		return marshalCanonicalString(string(val))
	case Int32:
		return []byte(strconv.FormatInt(int64(val), 10)), nil
	case Int64:
		return []byte(strconv.FormatInt(int64(val), 10)), nil
	case Double:
		return marshalCanonicalDouble(float64(val))
	case Bool:
		if val {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case Array:
		return marshalCanonicalArray(val)
	case Document:
		return marshalCanonicalDocument(val)
	default:
		return nil, fmt.Errorf("unsupported Value type: %T", v)
	}
}

func marshalCanonicalDocument(d Document) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := marshalCanonicalString(e.Key)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", e.Key, err)
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		valBytes, err := MarshalCanonical(e.Value)
		if err != nil {
			return nil, fmt.Errorf("value for key %q: %w", e.Key, err)
		}
		buf.Write(valBytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalCanonicalArray(arr Array) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, elem := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		elemBytes, err := MarshalCanonical(elem)
		if err != nil {
			return nil, fmt.Errorf("array[%d]: %w", i, err)
		}
		buf.Write(elemBytes)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// marshalCanonicalString produces a canonical JSON string with NFC
// normalization. HTML escaping is disabled: <, > and & must render as
// themselves so golden files stay readable and stable.
func marshalCanonicalString(s string) ([]byte, error) {
	// NFC normalize at the serialization boundary
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}
	// json.Encoder appends a trailing newline
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// marshalCanonicalDouble renders a finite double in its shortest
// round-trip decimal form. A trailing ".0" is added to values that would
// otherwise render as integers, so Double(2) and Int64(2) stay distinct.
func marshalCanonicalDouble(f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("non-finite double cannot be rendered: %v", f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !bytes.ContainsAny([]byte(s), ".eE") {
		s += ".0"
	}
	return []byte(s), nil
}
