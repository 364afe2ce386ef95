package signature

import (
	"strings"

	"github.com/arthur-debert/evreg/pkg/errors"
)

// ParamType identifies one positional parameter type
type ParamType string

// Common parameter type tags
const (
	Int      ParamType = "int"
	Int64    ParamType = "int64"
	Float64  ParamType = "float64"
	String   ParamType = "string"
	Bool     ParamType = "bool"
	Bytes    ParamType = "bytes"
	Time     ParamType = "time"
	Duration ParamType = "duration"
	Any      ParamType = "any"
	Error    ParamType = "error"
)

// BuiltinTypes lists the predefined tags in declaration order
var BuiltinTypes = []ParamType{Int, Int64, Float64, String, Bool, Bytes, Time, Duration, Any, Error}

// Placeholders used when rendering signatures
const (
	NoneText  = "null"
	EmptyText = "<empty>"
)

// Signature is an ordered parameter list, or the no-parameters marker
type Signature struct {
	params  []ParamType
	present bool
}

// None returns the no-parameters marker
func None() Signature {
	return Signature{}
}

// Of returns a signature with the given positional parameter types.
// Of() with no arguments is an empty but present list, distinct from None.
func Of(params ...ParamType) Signature {
	p := make([]ParamType, len(params))
	copy(p, params)
	return Signature{params: p, present: true}
}

// FromStrings builds a present signature from raw type names
func FromStrings(names []string) Signature {
	p := make([]ParamType, len(names))
	for i, n := range names {
		p[i] = ParamType(n)
	}
	return Signature{params: p, present: true}
}

// IsNone reports whether s is the no-parameters marker
func (s Signature) IsNone() bool { return !s.present }

// Len returns the number of parameters (0 for None)
func (s Signature) Len() int { return len(s.params) }

// Params returns a copy of the parameter types, nil for None
func (s Signature) Params() []ParamType {
	if !s.present {
		return nil
	}
	p := make([]ParamType, len(s.params))
	copy(p, s.params)
	return p
}

// Equal reports whether two signatures match.
// None matches only None; lists match positionally with exact length.
func (s Signature) Equal(other Signature) bool {
	if !s.present || !other.present {
		return !s.present && !other.present
	}
	if len(s.params) != len(other.params) {
		return false
	}
	for i := range s.params {
		if s.params[i] != other.params[i] {
			return false
		}
	}
	return true
}

// String renders the signature as "int, string", "null" for None and
// "<empty>" for an empty list
func (s Signature) String() string {
	if !s.present {
		return NoneText
	}
	if len(s.params) == 0 {
		return EmptyText
	}
	names := make([]string, len(s.params))
	for i, p := range s.params {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// Validate checks actual against the signature on record for eventID.
// It returns a SIGNATURE_MISMATCH error when they differ.
func Validate(eventID interface{}, expected, actual Signature) error {
	if expected.Equal(actual) {
		return nil
	}
	return errors.SignatureMismatch(eventID, expected.String(), actual.String())
}
