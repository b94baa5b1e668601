package teleport

import "fmt"

// schemaSchema is the reflexive schema type: its values are schemas. It
// carries the registry used to resolve type names, so custom types installed
// in a scope resolve only through schemas bound to that scope.
type schemaSchema struct {
	reg *Registry
}

func (s schemaSchema) TypeName() string { return "Schema" }

// FromJSON parses {"type": name, "param"?: ...} into a Schema value. An
// unresolvable name is an unknown-type error, distinguishable from ordinary
// validation failures; mismatched param presence is a schema-shape error.
func (s schemaSchema) FromJSON(v any) (any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, NewErrorValue(CodeSchemaShape, "Invalid Schema", v)
	}
	rawName, ok := obj["type"]
	if !ok {
		return nil, NewErrorValue(CodeSchemaShape, "Invalid Schema", v)
	}
	name, ok := rawName.(string)
	if !ok {
		return nil, NewErrorValue(CodeSchemaShape, "Invalid Schema", v)
	}
	entry, ok := s.reg.Lookup(name)
	if !ok {
		return nil, NewErrorValue(CodeUnknownType, "Unknown type", name)
	}
	var paramSchema Schema
	if entry.Param != nil {
		paramSchema = entry.Param(s.reg)
	}
	rawParam, hasParam := obj["param"]
	if paramSchema != nil && !hasParam {
		return nil, NewError(CodeSchemaShape, fmt.Sprintf("Missing param for %s schema", name))
	}
	if paramSchema == nil && hasParam {
		return nil, NewError(CodeSchemaShape, fmt.Sprintf("Unexpected param for %s schema", name))
	}
	if paramSchema == nil {
		return entry.Make(s.reg, nil)
	}
	param, err := paramSchema.FromJSON(rawParam)
	if err != nil {
		return nil, err
	}
	return entry.Make(s.reg, param)
}

// ToJSON serializes a Schema value by deriving its type name and, when the
// registry entry declares a parameter schema, serializing the schema's own
// parameter against it.
func (s schemaSchema) ToJSON(v any) (any, error) {
	sch, ok := v.(Schema)
	if !ok {
		return nil, NewErrorValue(CodeTypeMismatch, "Invalid Schema", v)
	}
	name := sch.TypeName()
	entry, ok := s.reg.Lookup(name)
	if !ok {
		return nil, NewErrorValue(CodeUnknownType, "Unknown type", name)
	}
	if entry.Param == nil {
		return map[string]any{"type": name}, nil
	}
	par, ok := sch.(Parameterized)
	if !ok {
		return nil, NewError(CodeSchemaShape, fmt.Sprintf("Missing param for %s schema", name))
	}
	paramJSON, err := entry.Param(s.reg).ToJSON(par.Param())
	if err != nil {
		return nil, err
	}
	return map[string]any{"type": name, "param": paramJSON}, nil
}
