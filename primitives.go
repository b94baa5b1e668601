package teleport

import (
	"encoding/base64"
	"encoding/json"
	"math"
	"strings"
	"unicode/utf8"
)

// Integer returns the schema accepting JSON integers, or floats with a zero
// fractional part. The native form is int64.
func Integer() Schema { return integerSchema{} }

// Float returns the schema accepting JSON floats, widening integers. The
// native form is float64.
func Float() Schema { return floatSchema{} }

// String returns the schema accepting JSON text, or byte strings that decode
// as UTF-8. The native form is string.
func String() Schema { return stringSchema{} }

// Binary returns the schema accepting base64-encoded text. The native form is
// []byte.
func Binary() Schema { return binarySchema{} }

// Boolean returns the schema accepting boolean literals only. In particular
// 0/1 are not booleans.
func Boolean() Schema { return booleanSchema{} }

// JSON returns the passthrough schema accepting any JSON value. The native
// form is *Box, preserving null-vs-absent uniformly through composites.
func JSON() Schema { return jsonSchema{} }

// Nothing returns the schema of no value at all: deserialization fails
// whenever a value is present. Its only legal occurrence is at boundaries
// where absence is representable, such as a Dynamic with no datum.
func Nothing() Schema { return nothingSchema{} }

type integerSchema struct{}

func (integerSchema) TypeName() string { return "Integer" }

func (integerSchema) FromJSON(v any) (any, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		// Int64 failure on plain integer syntax means overflow; only float
		// forms ("3.0", "1e3") get the float fallback, so out-of-range
		// integers cannot sneak through float rounding.
		if strings.ContainsAny(n.String(), ".eE") {
			if f, err := n.Float64(); err == nil && fitsInt64(f) {
				return int64(f), nil
			}
		}
	case float64:
		if fitsInt64(n) {
			return int64(n), nil
		}
	}
	return nil, NewErrorValue(CodeTypeMismatch, "Invalid Integer", v)
}

// fitsInt64 reports whether f is an integral float representable as int64.
// Converting an out-of-range float with int64(f) is implementation-defined,
// so the range check must come first. MaxInt64 is not exactly representable
// as float64; the upper bound is exclusive at 2^63.
func fitsInt64(f float64) bool {
	return f == math.Trunc(f) && !math.IsInf(f, 0) &&
		f >= math.MinInt64 && f < math.MaxInt64
}

func (integerSchema) ToJSON(v any) (any, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	}
	return nil, NewErrorValue(CodeTypeMismatch, "Invalid Integer", v)
}

type floatSchema struct{}

func (floatSchema) TypeName() string { return "Float" }

func (floatSchema) FromJSON(v any) (any, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, nil
		}
	}
	return nil, NewErrorValue(CodeTypeMismatch, "Invalid Float", v)
}

func (floatSchema) ToJSON(v any) (any, error) {
	if f, ok := v.(float64); ok {
		return f, nil
	}
	return nil, NewErrorValue(CodeTypeMismatch, "Invalid Float", v)
}

type stringSchema struct{}

func (stringSchema) TypeName() string { return "String" }

func (stringSchema) FromJSON(v any) (any, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		if !utf8.Valid(s) {
			return nil, NewErrorValue(CodeDecode, "Invalid String encoding", s)
		}
		return string(s), nil
	}
	return nil, NewErrorValue(CodeTypeMismatch, "Invalid String", v)
}

func (stringSchema) ToJSON(v any) (any, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return nil, NewErrorValue(CodeTypeMismatch, "Invalid String", v)
}

type binarySchema struct{}

func (binarySchema) TypeName() string { return "Binary" }

func (binarySchema) FromJSON(v any) (any, error) {
	if s, ok := v.(string); ok {
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, NewErrorValue(CodeDecode, "Invalid base64 encoding", s)
		}
		return b, nil
	}
	return nil, NewErrorValue(CodeTypeMismatch, "Invalid Binary data", v)
}

func (binarySchema) ToJSON(v any) (any, error) {
	if b, ok := v.([]byte); ok {
		return base64.StdEncoding.EncodeToString(b), nil
	}
	return nil, NewErrorValue(CodeTypeMismatch, "Invalid Binary data", v)
}

type booleanSchema struct{}

func (booleanSchema) TypeName() string { return "Boolean" }

func (booleanSchema) FromJSON(v any) (any, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return nil, NewErrorValue(CodeTypeMismatch, "Invalid Boolean", v)
}

func (booleanSchema) ToJSON(v any) (any, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return nil, NewErrorValue(CodeTypeMismatch, "Invalid Boolean", v)
}

type jsonSchema struct{}

func (jsonSchema) TypeName() string { return "JSON" }

func (jsonSchema) FromJSON(v any) (any, error) { return NewBox(v), nil }

func (jsonSchema) ToJSON(v any) (any, error) {
	if b, ok := v.(*Box); ok {
		return b.Datum, nil
	}
	return nil, NewErrorValue(CodeTypeMismatch, "Invalid JSON", v)
}

type nothingSchema struct{}

func (nothingSchema) TypeName() string { return "Nothing" }

func (nothingSchema) FromJSON(v any) (any, error) {
	return nil, NewErrorValue(CodeTypeMismatch, "Invalid Nothing", v)
}

func (nothingSchema) ToJSON(v any) (any, error) {
	return nil, NewErrorValue(CodeTypeMismatch, "Invalid Nothing", v)
}

func (nothingSchema) ToleratesAbsence() bool { return true }
