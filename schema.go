package teleport

// Schema is a two-way converter between JSON values and native values. JSON
// values are the usual decoded forms: nil, bool, string, numbers (int, int64,
// float64 or json.Number), []any and map[string]any. Schemas are immutable
// once constructed and may be shared across concurrent validations.
type Schema interface {
	// TypeName returns the registry name of the type ("Integer", "Array", ...).
	TypeName() string
	// FromJSON validates the JSON value and converts it to the native form.
	FromJSON(v any) (any, error)
	// ToJSON converts a native value back into its JSON form.
	ToJSON(v any) (any, error)
}

// Parameterized is implemented by schemas whose registry entry declares a
// parameter schema. Param returns the native parameter value, to be
// serialized against that parameter schema.
type Parameterized interface {
	Param() any
}

// AbsenceTolerant is implemented by schemas that accept "no value at all" at
// boundaries where absence is representable, such as a Dynamic with no datum.
// Nothing tolerates absence; registry-installed custom types may too.
type AbsenceTolerant interface {
	ToleratesAbsence() bool
}

// FromJSON deserializes the JSON value v against schema s.
func FromJSON(s Schema, v any) (any, error) { return s.FromJSON(v) }

// ToJSON serializes the native value v against schema s.
func ToJSON(s Schema, v any) (any, error) { return s.ToJSON(v) }
