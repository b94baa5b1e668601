package teleport

// OrderedMap is the native form of the OrderedMap type: a string-keyed
// mapping that remembers insertion order. JSON objects cannot preserve key
// order, so the wire form splits the data into a plain map plus an explicit
// key-order array.
type OrderedMap struct {
	keys []string
	vals map[string]any
}

// NewOrderedMap returns an empty order-preserving mapping.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{vals: map[string]any{}}
}

// Set stores v under key, appending the key to the order when it is new.
func (m *OrderedMap) Set(key string, v any) {
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
}

// Get returns the value stored under key.
func (m *OrderedMap) Get(key string) (any, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *OrderedMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int { return len(m.keys) }

// OrderedMapOf returns the schema for order-preserving mappings whose values
// validate against item. The wire form is
//
//	{"map": {k: v, ...}, "order": [k, ...]}
//
// where order must be an exact permutation of map's keys.
func OrderedMapOf(item Schema) Schema {
	return orderedMapSchema{
		item: item,
		inner: StructOf(
			Required("map", MapOf(item)),
			Required("order", ArrayOf(String())),
		),
	}
}

type orderedMapSchema struct {
	item  Schema
	inner Schema
}

func (o orderedMapSchema) TypeName() string { return "OrderedMap" }

func (o orderedMapSchema) Param() any { return o.item }

func (o orderedMapSchema) FromJSON(v any) (any, error) {
	dv, err := o.inner.FromJSON(v)
	if err != nil {
		return nil, err
	}
	datum := dv.(map[string]any)
	plain := datum["map"].(map[string]any)
	order := datum["order"].([]any)
	// Any mismatch between order and map's keys fails with the whole
	// composite value attached: a partial description would hide whether the
	// culprit was a duplicate, a missing key, or an unknown one.
	if len(order) != len(plain) {
		return nil, NewErrorValue(CodeStructural, "Invalid OrderedMap", datum)
	}
	out := NewOrderedMap()
	for _, k := range order {
		key := k.(string)
		val, ok := plain[key]
		if !ok {
			return nil, NewErrorValue(CodeStructural, "Invalid OrderedMap", datum)
		}
		if _, dup := out.Get(key); dup {
			return nil, NewErrorValue(CodeStructural, "Invalid OrderedMap", datum)
		}
		out.Set(key, val)
	}
	return out, nil
}

func (o orderedMapSchema) ToJSON(v any) (any, error) {
	om, ok := v.(*OrderedMap)
	if !ok {
		return nil, NewErrorValue(CodeTypeMismatch, "Invalid OrderedMap", v)
	}
	plain := make(map[string]any, om.Len())
	order := make([]any, 0, om.Len())
	for _, key := range om.Keys() {
		val, _ := om.Get(key)
		plain[key] = val
		order = append(order, key)
	}
	return o.inner.ToJSON(map[string]any{"map": plain, "order": order})
}
