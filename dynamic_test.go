package teleport_test

import (
	"reflect"
	"testing"

	teleport "github.com/neuroradiology/teleport"
)

// TestDynamic_RoundTrip carries a typed value inside the document.
func TestDynamic_RoundTrip(t *testing.T) {
	d := teleport.Builtins().Dynamic()
	wire := map[string]any{
		"schema": map[string]any{"type": "Array", "param": map[string]any{"type": "Integer"}},
		"datum":  []any{int64(1), int64(2)},
	}
	v, err := teleport.FromJSON(d, wire)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	dyn := v.(teleport.Dynamic)
	if !reflect.DeepEqual(dyn.Schema, teleport.ArrayOf(teleport.Integer())) {
		t.Fatalf("unexpected carried schema: %#v", dyn.Schema)
	}
	if dyn.Datum == nil || !reflect.DeepEqual(dyn.Datum.Datum, []any{int64(1), int64(2)}) {
		t.Fatalf("unexpected payload: %#v", dyn.Datum)
	}

	back, err := teleport.ToJSON(d, dyn)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(back, wire) {
		t.Fatalf("reserialize mismatch: %#v", back)
	}
}

// TestDynamic_AbsentDatum is legal only when the carried schema tolerates
// absence.
func TestDynamic_AbsentDatum(t *testing.T) {
	d := teleport.Builtins().Dynamic()

	v, err := teleport.FromJSON(d, map[string]any{"schema": map[string]any{"type": "Nothing"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	dyn := v.(teleport.Dynamic)
	if dyn.Datum != nil {
		t.Fatalf("expected absent payload, got %#v", dyn.Datum)
	}
	back, err := teleport.ToJSON(d, dyn)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(back, map[string]any{"schema": map[string]any{"type": "Nothing"}}) {
		t.Fatalf("reserialize mismatch: %#v", back)
	}

	_, err = teleport.FromJSON(d, map[string]any{"schema": map[string]any{"type": "Integer"}})
	ve, ok := teleport.AsValidationError(err)
	if !ok || ve.Message != "Missing fields" {
		t.Fatalf("expected missing datum failure, got %v", err)
	}
}

// maybeText accepts a string payload or no payload at all.
type maybeText struct{}

func (maybeText) TypeName() string { return "MaybeText" }

func (maybeText) FromJSON(v any) (any, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return nil, teleport.NewErrorValue(teleport.CodeTypeMismatch, "Invalid MaybeText", v)
}

func (maybeText) ToJSON(v any) (any, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return nil, teleport.NewErrorValue(teleport.CodeTypeMismatch, "Invalid MaybeText", v)
}

func (maybeText) ToleratesAbsence() bool { return true }

// TestDynamic_CustomAbsenceTolerance: a registry-installed type implementing
// AbsenceTolerant may carry an absent payload, just like Nothing.
func TestDynamic_CustomAbsenceTolerance(t *testing.T) {
	reg := teleport.Builtins().With("MaybeText", teleport.Entry{
		Make: func(_ *teleport.Registry, _ any) (teleport.Schema, error) {
			return maybeText{}, nil
		},
	})
	d := reg.Dynamic()

	wire := map[string]any{"schema": map[string]any{"type": "MaybeText"}}
	v, err := teleport.FromJSON(d, wire)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	dyn := v.(teleport.Dynamic)
	if dyn.Datum != nil {
		t.Fatalf("expected absent payload, got %#v", dyn.Datum)
	}
	back, err := teleport.ToJSON(d, dyn)
	if err != nil || !reflect.DeepEqual(back, wire) {
		t.Fatalf("reserialize mismatch: v=%#v err=%v", back, err)
	}

	// A present payload still validates normally.
	v, err = teleport.FromJSON(d, map[string]any{
		"schema": map[string]any{"type": "MaybeText"},
		"datum":  "hi",
	})
	if err != nil || v.(teleport.Dynamic).Datum.Datum != "hi" {
		t.Fatalf("v=%#v err=%v", v, err)
	}
}

// TestDynamic_NullDatum: a literal null payload is a present value and
// passes only through schemas that accept null, like JSON.
func TestDynamic_NullDatum(t *testing.T) {
	d := teleport.Builtins().Dynamic()

	v, err := teleport.FromJSON(d, map[string]any{
		"schema": map[string]any{"type": "JSON"},
		"datum":  nil,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	dyn := v.(teleport.Dynamic)
	box, ok := dyn.Datum.Datum.(*teleport.Box)
	if !ok || box.Datum != nil {
		t.Fatalf("expected boxed null payload, got %#v", dyn.Datum)
	}

	_, err = teleport.FromJSON(d, map[string]any{
		"schema": map[string]any{"type": "Integer"},
		"datum":  nil,
	})
	ve, ok := teleport.AsValidationError(err)
	if !ok || ve.Message != "Invalid Integer" {
		t.Fatalf("expected Invalid Integer for null datum, got %v", err)
	}
	if !reflect.DeepEqual(ve.Stack, []any{"datum"}) {
		t.Fatalf("unexpected stack: %#v", ve.Stack)
	}
}

// TestDynamic_ErrorLocations pins down the schema/datum location markers.
func TestDynamic_ErrorLocations(t *testing.T) {
	d := teleport.Builtins().Dynamic()

	_, err := teleport.FromJSON(d, map[string]any{"schema": map[string]any{"type": "Bogus"}, "datum": 1})
	if !teleport.IsUnknownType(err) {
		t.Fatalf("expected unknown type, got %v", err)
	}
	ve, _ := teleport.AsValidationError(err)
	if !reflect.DeepEqual(ve.Stack, []any{"schema"}) {
		t.Fatalf("unexpected stack: %#v", ve.Stack)
	}

	_, err = teleport.FromJSON(d, map[string]any{"schema": map[string]any{"type": "Integer"}, "extra": 1})
	ve, ok := teleport.AsValidationError(err)
	if !ok || ve.Message != "Unexpected fields" {
		t.Fatalf("expected Unexpected fields, got %v", err)
	}

	_, err = teleport.FromJSON(d, "not an object")
	ve, ok = teleport.AsValidationError(err)
	if !ok || ve.Message != "Invalid Dynamic" {
		t.Fatalf("expected Invalid Dynamic, got %v", err)
	}
}
