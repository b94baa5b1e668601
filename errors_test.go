package teleport_test

import (
	"errors"
	"fmt"
	"testing"

	teleport "github.com/neuroradiology/teleport"
)

// TestValidationError_Rendering checks the breadcrumb format: locations are
// printed closest-to-root first, the offending value last.
func TestValidationError_Rendering(t *testing.T) {
	e := teleport.NewErrorValue(teleport.CodeTypeMismatch, "Invalid Integer", true)
	e.At("bar").At(0) // leaf-to-root pushes
	if got, want := e.Error(), `Item at [0]["bar"] Invalid Integer: true`; got != want {
		t.Fatalf("rendered %q, want %q", got, want)
	}

	plain := teleport.NewError(teleport.CodeStructural, "Missing fields")
	if plain.Error() != "Missing fields" {
		t.Fatalf("unexpected rendering: %q", plain.Error())
	}
}

// TestValidationError_ErrorsAs extracts the typed error through wrapping.
func TestValidationError_ErrorsAs(t *testing.T) {
	_, err := teleport.FromJSON(teleport.Boolean(), int64(1))
	wrapped := fmt.Errorf("request rejected: %w", err)

	ve, ok := teleport.AsValidationError(wrapped)
	if !ok || ve.Message != "Invalid Boolean" {
		t.Fatalf("expected extraction through wrapping, got %v", wrapped)
	}
	var target *teleport.ValidationError
	if !errors.As(wrapped, &target) {
		t.Fatalf("errors.As should match *ValidationError")
	}
}

// TestValidationError_KindPredicates keeps the error taxonomy separable.
func TestValidationError_KindPredicates(t *testing.T) {
	_, decodeErr := teleport.FromJSON(teleport.Binary(), "%%%")
	_, typeErr := teleport.FromJSON(teleport.Integer(), "x")
	_, unknownErr := teleport.ParseSchema(teleport.Builtins(), map[string]any{"type": "Bogus"})

	if !teleport.IsDecodeError(decodeErr) || teleport.IsDecodeError(typeErr) || teleport.IsDecodeError(unknownErr) {
		t.Fatalf("decode predicate misfired: %v / %v / %v", decodeErr, typeErr, unknownErr)
	}
	if !teleport.IsUnknownType(unknownErr) || teleport.IsUnknownType(decodeErr) || teleport.IsUnknownType(typeErr) {
		t.Fatalf("unknown-type predicate misfired: %v / %v / %v", decodeErr, typeErr, unknownErr)
	}
	if teleport.IsDecodeError(nil) || teleport.IsUnknownType(nil) {
		t.Fatalf("predicates must be false for nil")
	}
}

// grumpySchema fails with an untyped error, exercising the fallback for
// schemas that do not return *ValidationError.
type grumpySchema struct{}

func (grumpySchema) TypeName() string { return "Grumpy" }

func (grumpySchema) FromJSON(v any) (any, error) { return nil, errors.New("grumpy today") }

func (grumpySchema) ToJSON(v any) (any, error) { return nil, errors.New("grumpy today") }

// TestValidationError_PlainErrorFallback: untyped errors from nested schemas
// gain a location under the fallback type-mismatch code instead of vanishing.
func TestValidationError_PlainErrorFallback(t *testing.T) {
	_, err := teleport.FromJSON(teleport.ArrayOf(grumpySchema{}), []any{int64(1)})
	ve, ok := teleport.AsValidationError(err)
	if !ok {
		t.Fatalf("expected wrapped validation error, got %v", err)
	}
	if ve.Code != teleport.CodeTypeMismatch || ve.Message != "grumpy today" {
		t.Fatalf("unexpected wrap: code=%q msg=%q", ve.Code, ve.Message)
	}
	if got, want := ve.Error(), `Item at [0] grumpy today`; got != want {
		t.Fatalf("rendered %q, want %q", got, want)
	}
}

// TestValidationError_DeepStack accumulates one marker per enclosing
// composite through arbitrarily deep nesting.
func TestValidationError_DeepStack(t *testing.T) {
	s := teleport.MapOf(teleport.ArrayOf(teleport.ArrayOf(teleport.Boolean())))
	_, err := teleport.FromJSON(s, map[string]any{
		"k": []any{[]any{true}, []any{true, "oops"}},
	})
	ve, ok := teleport.AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got, want := ve.Error(), `Item at ["k"][1][1] Invalid Boolean: oops`; got != want {
		t.Fatalf("rendered %q, want %q", got, want)
	}
}
