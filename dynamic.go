package teleport

import "sort"

// Dynamic is the native form of the Dynamic type: a schema paired with a
// value of that schema. Datum is nil when the payload is absent, which is
// legal only when Schema tolerates absence (Nothing, or any AbsenceTolerant
// schema); a Box holding nil is a present JSON null.
type Dynamic struct {
	Schema Schema
	Datum  *Box
}

// dynamicSchema carries "any typed value" inside a document. Wire form:
//
//	{"schema": <Schema JSON>, "datum": <JSON value or null>}
type dynamicSchema struct {
	reg *Registry
}

func (d dynamicSchema) TypeName() string { return "Dynamic" }

func (d dynamicSchema) FromJSON(v any) (any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, NewErrorValue(CodeTypeMismatch, "Invalid Dynamic", v)
	}
	var extra []string
	for key := range obj {
		if key != "schema" && key != "datum" {
			extra = append(extra, key)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return nil, NewErrorValue(CodeStructural, "Unexpected fields", extra)
	}
	rawSchema, ok := obj["schema"]
	if !ok {
		return nil, NewErrorValue(CodeStructural, "Missing fields", []string{"schema"})
	}
	sv, err := d.reg.Schema().FromJSON(rawSchema)
	if err != nil {
		return nil, locate(err, "schema")
	}
	sch := sv.(Schema)
	rawDatum, present := obj["datum"]
	if !present {
		if at, ok := sch.(AbsenceTolerant); !ok || !at.ToleratesAbsence() {
			return nil, NewErrorValue(CodeStructural, "Missing fields", []string{"datum"})
		}
		return Dynamic{Schema: sch}, nil
	}
	dv, err := sch.FromJSON(rawDatum)
	if err != nil {
		return nil, locate(err, "datum")
	}
	return Dynamic{Schema: sch, Datum: NewBox(dv)}, nil
}

func (d dynamicSchema) ToJSON(v any) (any, error) {
	dyn, ok := v.(Dynamic)
	if !ok {
		return nil, NewErrorValue(CodeTypeMismatch, "Invalid Dynamic", v)
	}
	schemaJSON, err := d.reg.Schema().ToJSON(dyn.Schema)
	if err != nil {
		return nil, locate(err, "schema")
	}
	out := map[string]any{"schema": schemaJSON}
	if dyn.Datum != nil {
		datumJSON, err := dyn.Schema.ToJSON(dyn.Datum.Datum)
		if err != nil {
			return nil, locate(err, "datum")
		}
		out["datum"] = datumJSON
	}
	return out, nil
}
