package teleport

// ArrayOf returns the schema for JSON arrays whose every element validates
// against item. The native form is []any. Validation stops at the first
// failing element, with the zero-based index pushed onto the error stack.
func ArrayOf(item Schema) Schema { return arraySchema{item: item} }

// MapOf returns the schema for JSON objects whose every value validates
// against item. The native form is map[string]any; key order is irrelevant.
func MapOf(item Schema) Schema { return mapSchema{item: item} }

type arraySchema struct {
	item Schema
}

func (a arraySchema) TypeName() string { return "Array" }

func (a arraySchema) Param() any { return a.item }

func (a arraySchema) FromJSON(v any) (any, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, NewErrorValue(CodeTypeMismatch, "Invalid Array", v)
	}
	out := make([]any, 0, len(arr))
	for i, item := range arr {
		dv, err := a.item.FromJSON(item)
		if err != nil {
			return nil, locate(err, i)
		}
		out = append(out, dv)
	}
	return out, nil
}

func (a arraySchema) ToJSON(v any) (any, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, NewErrorValue(CodeTypeMismatch, "Invalid Array", v)
	}
	out := make([]any, 0, len(arr))
	for i, item := range arr {
		jv, err := a.item.ToJSON(item)
		if err != nil {
			return nil, locate(err, i)
		}
		out = append(out, jv)
	}
	return out, nil
}

type mapSchema struct {
	item Schema
}

func (m mapSchema) TypeName() string { return "Map" }

func (m mapSchema) Param() any { return m.item }

func (m mapSchema) FromJSON(v any) (any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, NewErrorValue(CodeTypeMismatch, "Invalid Map", v)
	}
	out := make(map[string]any, len(obj))
	for key, val := range obj {
		dv, err := m.item.FromJSON(val)
		if err != nil {
			return nil, locate(err, key)
		}
		out[key] = dv
	}
	return out, nil
}

func (m mapSchema) ToJSON(v any) (any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, NewErrorValue(CodeTypeMismatch, "Invalid Map", v)
	}
	out := make(map[string]any, len(obj))
	for key, val := range obj {
		jv, err := m.item.ToJSON(val)
		if err != nil {
			return nil, locate(err, key)
		}
		out[key] = jv
	}
	return out, nil
}
