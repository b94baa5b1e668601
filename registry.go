package teleport

// Entry maps a type name to its constructor and parameter schema.
type Entry struct {
	// Param resolves the parameter schema relative to the registry active at
	// resolution time, so type names nested inside a parameter see the same
	// scope. nil means the type takes no parameter.
	Param func(r *Registry) Schema
	// Make constructs the schema instance. param is the value deserialized
	// against Param's schema, or nil for parameterless types.
	Make func(r *Registry, param any) (Schema, error)
}

// Registry maps type names to entries. Registries are immutable: overrides
// derive a child value that falls back to its parent, so a scope is simply a
// derived registry passed down explicitly. Entering and exiting a scope is
// symmetric on every path because nothing is ever mutated, and concurrent
// validations cannot observe each other's overrides.
type Registry struct {
	parent  *Registry
	entries map[string]Entry

	// fieldList is the bootstrap fixpoint: the schema describing a Struct's
	// field list, itself built from Struct and OrderedMap. Hand-written once
	// per registry at construction time; deriving it reflectively would
	// recurse forever.
	fieldList Schema
}

func newRegistry(parent *Registry, entries map[string]Entry) *Registry {
	r := &Registry{parent: parent, entries: entries}
	r.fieldList = OrderedMapOf(StructOf(
		Required("schema", r.Schema()),
		Required("required", Boolean()),
		Optional("doc", String()),
	))
	return r
}

var builtins = newRegistry(nil, map[string]Entry{
	"Integer": parameterless(Integer()),
	"Float":   parameterless(Float()),
	"String":  parameterless(String()),
	"Binary":  parameterless(Binary()),
	"Boolean": parameterless(Boolean()),
	"JSON":    parameterless(JSON()),
	"Nothing": parameterless(Nothing()),
	"Schema": {
		Make: func(r *Registry, _ any) (Schema, error) { return r.Schema(), nil },
	},
	"Dynamic": {
		Make: func(r *Registry, _ any) (Schema, error) { return r.Dynamic(), nil },
	},
	"Array": {
		Param: func(r *Registry) Schema { return r.Schema() },
		Make: func(_ *Registry, param any) (Schema, error) {
			item, err := paramAsSchema("Array", param)
			if err != nil {
				return nil, err
			}
			return ArrayOf(item), nil
		},
	},
	"Map": {
		Param: func(r *Registry) Schema { return r.Schema() },
		Make: func(_ *Registry, param any) (Schema, error) {
			item, err := paramAsSchema("Map", param)
			if err != nil {
				return nil, err
			}
			return MapOf(item), nil
		},
	},
	"OrderedMap": {
		Param: func(r *Registry) Schema { return r.Schema() },
		Make: func(_ *Registry, param any) (Schema, error) {
			item, err := paramAsSchema("OrderedMap", param)
			if err != nil {
				return nil, err
			}
			return OrderedMapOf(item), nil
		},
	},
	"Struct": {
		Param: func(r *Registry) Schema { return r.fieldList },
		Make:  func(_ *Registry, param any) (Schema, error) { return structFromParam(param) },
	},
})

func parameterless(s Schema) Entry {
	return Entry{Make: func(_ *Registry, _ any) (Schema, error) { return s, nil }}
}

func paramAsSchema(name string, param any) (Schema, error) {
	s, ok := param.(Schema)
	if !ok {
		return nil, NewErrorValue(CodeSchemaShape, "Invalid "+name+" param", param)
	}
	return s, nil
}

// Builtins returns the process-wide table covering the built-in catalogue.
// It is read-only; overrides go through With or WithTypes.
func Builtins() *Registry { return builtins }

// NewRegistry builds an isolated registry from entries, with no fallback to
// the built-in table. Most callers want Builtins().WithTypes instead.
func NewRegistry(entries map[string]Entry) *Registry {
	return newRegistry(nil, cloneEntries(entries))
}

// With derives a registry that resolves name to e and falls back to r for
// everything else. The receiver is left untouched.
func (r *Registry) With(name string, e Entry) *Registry {
	return newRegistry(r, map[string]Entry{name: e})
}

// WithTypes derives a registry adding every entry in entries, falling back to
// r for unknown names.
func (r *Registry) WithTypes(entries map[string]Entry) *Registry {
	return newRegistry(r, cloneEntries(entries))
}

// Lookup resolves a type name, walking parent registries from the innermost
// scope outward.
func (r *Registry) Lookup(name string) (Entry, bool) {
	for cur := r; cur != nil; cur = cur.parent {
		if e, ok := cur.entries[name]; ok {
			return e, true
		}
	}
	return Entry{}, false
}

// Schema returns the reflexive schema type bound to this registry: a value of
// this schema is itself a Schema, serialized as {"type": name, "param"?: ...}.
func (r *Registry) Schema() Schema { return schemaSchema{reg: r} }

// Dynamic returns the Dynamic schema type bound to this registry. The native
// form is the Dynamic struct.
func (r *Registry) Dynamic() Schema { return dynamicSchema{reg: r} }

func cloneEntries(entries map[string]Entry) map[string]Entry {
	out := make(map[string]Entry, len(entries))
	for k, v := range entries {
		out[k] = v
	}
	return out
}
