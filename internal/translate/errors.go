package translate

import (
	"errors"
	"fmt"

	"github.com/siftlab/sift/internal/expr"
)

// Error represents a translation failure. Translation is all-or-nothing
// per root expression: an Error is terminal for the call, carries the
// offending source expression for diagnostics, and is never accompanied
// by a partial or degraded filter.
type Error struct {
	// Code identifies the failure category.
	Code ErrorCode

	// Expr is the offending source expression.
	Expr expr.Expr

	// Message is a human-readable description.
	Message string
}

// ErrorCode categorizes translation failures.
type ErrorCode string

const (
	// ErrCodeUnsupportedExpression indicates no translator claims the
	// expression's shape, or a claiming translator's deeper checks found
	// a construct the engine cannot express.
	ErrCodeUnsupportedExpression ErrorCode = "UNSUPPORTED_EXPRESSION"

	// ErrCodeUnsupportedRepresentation indicates the field's on-wire
	// representation cannot express the requested predicate.
	ErrCodeUnsupportedRepresentation ErrorCode = "UNSUPPORTED_REPRESENTATION"

	// ErrCodeUnresolvedField indicates an operand does not denote a
	// deterministic field path from the document root.
	ErrCodeUnresolvedField ErrorCode = "UNRESOLVED_FIELD"

	// ErrCodeInvalidKey indicates a required compile-time key argument
	// is missing, non-constant, or does not serialize to the required
	// scalar kind.
	ErrCodeInvalidKey ErrorCode = "INVALID_KEY"

	// ErrCodeNotADictionary indicates the resolved field's serializer
	// lacks the key/value mapping capability a translator requires.
	ErrCodeNotADictionary ErrorCode = "NOT_A_DICTIONARY"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Expr != nil {
		return fmt.Sprintf("%s: %s (expression: %s)", e.Code, e.Message, expr.Sprint(e.Expr))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf returns the translation error code of err, if it carries one.
// Uses errors.As to handle wrapped errors.
func CodeOf(err error) (ErrorCode, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Code, true
	}
	return "", false
}

// IsUnsupportedExpression reports whether err is an
// unsupported-expression failure.
func IsUnsupportedExpression(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrCodeUnsupportedExpression
}

// IsUnsupportedRepresentation reports whether err is an
// unsupported-representation failure.
func IsUnsupportedRepresentation(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrCodeUnsupportedRepresentation
}

// IsUnresolvedField reports whether err is an unresolved-field failure.
func IsUnresolvedField(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrCodeUnresolvedField
}

// IsInvalidKey reports whether err is a non-constant or wrong-typed key
// failure.
func IsInvalidKey(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrCodeInvalidKey
}

// IsNotADictionary reports whether err is a serializer capability
// mismatch failure.
func IsNotADictionary(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrCodeNotADictionary
}

func newError(code ErrorCode, e expr.Expr, format string, args ...any) *Error {
	return &Error{Code: code, Expr: e, Message: fmt.Sprintf(format, args...)}
}
