package teleport

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeTypeMismatch: the JSON value's shape does not match the expected
	// type ("Invalid Integer", "Invalid Struct", ...).
	CodeTypeMismatch = "type_mismatch"
	// CodeStructural: field-set or key/order mismatch ("Missing fields",
	// "Unexpected fields", "Invalid OrderedMap").
	CodeStructural = "structural"
	// CodeDecode: malformed text or base64 encoding. A specialization of
	// type mismatch surfaced distinctly so callers can special-case it.
	CodeDecode = "decode"
	// CodeUnknownType: a schema's "type" name missed the registry. This is a
	// capability gap, not bad data.
	CodeUnknownType = "unknown_type"
	// CodeSchemaShape: malformed schema JSON itself ("Invalid Schema",
	// "Missing param", "Unexpected param").
	CodeSchemaShape = "schema_shape"
)

// ValidationError is a deserialization or serialization failure. Stack records
// the location of the error in the document relative to its root: composites
// push their local location (field name, array index, map key) as the error
// propagates outward, so entries run leaf-to-root and are rendered reversed.
type ValidationError struct {
	Code     string
	Message  string
	Stack    []any
	Value    any
	HasValue bool
}

// NewError creates a ValidationError with an empty location stack and no
// offending value.
func NewError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// NewErrorValue creates a ValidationError carrying the offending value.
func NewErrorValue(code, message string, v any) *ValidationError {
	return &ValidationError{Code: code, Message: message, Value: v, HasValue: true}
}

// At pushes a location onto the stack and returns the receiver. Locations are
// pushed innermost-first; rendering reverses them.
func (e *ValidationError) At(loc any) *ValidationError {
	e.Stack = append(e.Stack, loc)
	return e
}

// Error renders the failure as
//
//	Item at [0]["bar"] Invalid Integer: false
//
// with locations printed closest-to-root first.
func (e *ValidationError) Error() string {
	b := &strings.Builder{}
	if len(e.Stack) > 0 {
		b.WriteString("Item at ")
		for i := len(e.Stack) - 1; i >= 0; i-- {
			b.WriteByte('[')
			b.WriteString(renderLocation(e.Stack[i]))
			b.WriteByte(']')
		}
		b.WriteByte(' ')
	}
	b.WriteString(e.Message)
	if e.HasValue {
		fmt.Fprintf(b, ": %v", e.Value)
	}
	return b.String()
}

func renderLocation(loc any) string {
	switch l := loc.(type) {
	case int:
		return strconv.Itoa(l)
	case string:
		return strconv.Quote(l)
	default:
		return fmt.Sprintf("%v", l)
	}
}

// AsValidationError extracts a *ValidationError using errors.As internally.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// IsUnknownType reports whether err is a registry miss while resolving a
// schema's type name.
func IsUnknownType(err error) bool {
	ve, ok := AsValidationError(err)
	return ok && ve.Code == CodeUnknownType
}

// IsDecodeError reports whether err is a text or base64 decoding failure.
func IsDecodeError(err error) bool {
	ve, ok := AsValidationError(err)
	return ok && ve.Code == CodeDecode
}

// locate pushes loc onto err's stack when err is a ValidationError; anything
// else is wrapped under CodeTypeMismatch, the documented fallback, so the
// path is not lost. Custom schemas that care about their error's kind should
// return a *ValidationError (NewError/NewErrorValue) rather than a plain
// error, which survives location pushes with its code intact.
func locate(err error, loc any) error {
	if ve, ok := AsValidationError(err); ok {
		return ve.At(loc)
	}
	return NewError(CodeTypeMismatch, err.Error()).At(loc)
}
