package teleport

// Box wraps a JSON value to disambiguate nil as a JSON value (null) from nil
// as an absence of value. Datum holds the actual value. Presence or absence
// is always modeled by passing a *Box or nil at the call site, never by using
// nil as a presence sentinel; only the Struct-field and Dynamic-payload
// boundaries need the distinction.
type Box struct {
	Datum any
}

// NewBox constructs a Box holding exactly v, which may be nil.
func NewBox(v any) *Box { return &Box{Datum: v} }
