package teleport

import (
	j "github.com/goccy/go-json"
)

// Source abstracts over polymorphic input sources. Drivers under source/
// decode a whole document into engine values (map[string]any, []any,
// json.Number and friends); the engine itself never touches bytes.
type Source interface {
	Decode() (any, error)
}

// ParseFrom decodes one document from src and deserializes it against s.
// Decode failures surface as decode-kind validation errors.
func ParseFrom(s Schema, src Source) (any, error) {
	v, err := src.Decode()
	if err != nil {
		return nil, NewErrorValue(CodeDecode, "Invalid document", err.Error())
	}
	return s.FromJSON(v)
}

// ParseSchema deserializes a schema description against r's reflexive Schema
// type.
func ParseSchema(r *Registry, v any) (Schema, error) {
	sv, err := r.Schema().FromJSON(v)
	if err != nil {
		return nil, err
	}
	return sv.(Schema), nil
}

// ParseSchemaFrom decodes one document from src and parses it as a schema.
func ParseSchemaFrom(r *Registry, src Source) (Schema, error) {
	v, err := src.Decode()
	if err != nil {
		return nil, NewErrorValue(CodeDecode, "Invalid document", err.Error())
	}
	return ParseSchema(r, v)
}

// EncodeTo serializes the native value v against s and marshals the result.
func EncodeTo(s Schema, v any) ([]byte, error) {
	jv, err := s.ToJSON(v)
	if err != nil {
		return nil, err
	}
	return j.Marshal(jv)
}
