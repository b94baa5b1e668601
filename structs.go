package teleport

import "sort"

// Field declares one Struct member. Name must be unique within a Struct; the
// declaration order is irrelevant to validation but is preserved for
// self-description.
type Field struct {
	Name     string
	Schema   Schema
	Required bool
	Doc      string
}

// Required declares a mandatory field.
func Required(name string, s Schema) Field {
	return Field{Name: name, Schema: s, Required: true}
}

// Optional declares a field that may be omitted.
func Optional(name string, s Schema) Field {
	return Field{Name: name, Schema: s}
}

// WithDoc attaches a documentation string to the field.
func (f Field) WithDoc(doc string) Field {
	f.Doc = doc
	return f
}

// StructOf returns the schema for a fixed-field JSON object. The native form
// is map[string]any with one entry per present field. Validation is closed:
// missing required fields and undeclared fields are each reported as a full
// sorted name set before any field schema runs. Present fields then validate
// in declaration order, stopping at the first failure.
func StructOf(fields ...Field) Schema { return structSchema{fields: fields} }

type structSchema struct {
	fields []Field
}

func (s structSchema) TypeName() string { return "Struct" }

// Param returns the field list as an OrderedMap of field records, the shape
// the registry's Struct parameter schema round-trips.
func (s structSchema) Param() any {
	om := NewOrderedMap()
	for _, f := range s.fields {
		rec := map[string]any{
			"schema":   f.Schema,
			"required": f.Required,
		}
		if f.Doc != "" {
			rec["doc"] = f.Doc
		}
		om.Set(f.Name, rec)
	}
	return om
}

func (s structSchema) FromJSON(v any) (any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, NewErrorValue(CodeTypeMismatch, "Invalid Struct", v)
	}
	declared := make(map[string]bool, len(s.fields))
	var missing []string
	for _, f := range s.fields {
		declared[f.Name] = true
		if f.Required {
			if _, present := obj[f.Name]; !present {
				missing = append(missing, f.Name)
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, NewErrorValue(CodeStructural, "Missing fields", missing)
	}
	var extra []string
	for key := range obj {
		if !declared[key] {
			extra = append(extra, key)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return nil, NewErrorValue(CodeStructural, "Unexpected fields", extra)
	}
	out := make(map[string]any, len(obj))
	for _, f := range s.fields {
		raw, present := obj[f.Name]
		if !present {
			continue
		}
		dv, err := f.Schema.FromJSON(raw)
		if err != nil {
			return nil, locate(err, f.Name)
		}
		out[f.Name] = dv
	}
	return out, nil
}

// ToJSON emits one entry per field that is present and non-nil in the native
// value. A nil value acts as a "treat as absent" signal, never as a literal
// null output; this is how "optional + absent" round-trips cleanly.
func (s structSchema) ToJSON(v any) (any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, NewErrorValue(CodeTypeMismatch, "Invalid Struct", v)
	}
	out := make(map[string]any, len(obj))
	for _, f := range s.fields {
		val, present := obj[f.Name]
		if !present || val == nil {
			continue
		}
		jv, err := f.Schema.ToJSON(val)
		if err != nil {
			return nil, locate(err, f.Name)
		}
		out[f.Name] = jv
	}
	return out, nil
}

// structFromParam rebuilds a Struct schema from its deserialized parameter,
// an OrderedMap of {"schema": Schema, "required": bool, "doc"?: string}
// records keyed by field name.
func structFromParam(param any) (Schema, error) {
	om, ok := param.(*OrderedMap)
	if !ok {
		return nil, NewErrorValue(CodeSchemaShape, "Invalid Struct param", param)
	}
	fields := make([]Field, 0, om.Len())
	for _, name := range om.Keys() {
		raw, _ := om.Get(name)
		rec, ok := raw.(map[string]any)
		if !ok {
			return nil, NewErrorValue(CodeSchemaShape, "Invalid Struct param", raw)
		}
		sch, ok := rec["schema"].(Schema)
		if !ok {
			return nil, NewErrorValue(CodeSchemaShape, "Invalid Struct param", raw)
		}
		req, ok := rec["required"].(bool)
		if !ok {
			return nil, NewErrorValue(CodeSchemaShape, "Invalid Struct param", raw)
		}
		doc, _ := rec["doc"].(string)
		fields = append(fields, Field{Name: name, Schema: sch, Required: req, Doc: doc})
	}
	return StructOf(fields...), nil
}
