// Package yaml provides a YAML input driver. Documents are decoded with
// yaml.v3 and normalized to JSON-shaped values (string-keyed maps only), so
// the same schemas validate YAML and JSON input alike.
package yaml

import (
	"bytes"
	"fmt"
	"io"

	goyaml "gopkg.in/yaml.v3"
)

// Source decodes one YAML document from an io.Reader.
type Source struct {
	dec *goyaml.Decoder
}

// NewReader wraps an io.Reader as a YAML Source.
func NewReader(r io.Reader) *Source {
	return &Source{dec: goyaml.NewDecoder(r)}
}

// NewBytes wraps a byte slice as a YAML Source.
func NewBytes(b []byte) *Source { return NewReader(bytes.NewReader(b)) }

// Bytes is shorthand for NewBytes.
func Bytes(b []byte) *Source { return NewBytes(b) }

// Reader is shorthand for NewReader.
func Reader(r io.Reader) *Source { return NewReader(r) }

// Decode reads the next document and normalizes it to JSON-shaped values.
func (s *Source) Decode() (any, error) {
	var node any
	if err := s.dec.Decode(&node); err != nil {
		return nil, err
	}
	return normalize(node)
}

// normalize converts YAML decoding artifacts into the engine's value
// conventions. YAML allows non-string mapping keys; those are a decode error
// because JSON objects cannot represent them.
func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			nv, err := normalize(val)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("yaml: mapping key must be a string, got %T", k)
			}
			nv, err := normalize(val)
			if err != nil {
				return nil, err
			}
			out[key] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			nv, err := normalize(val)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	default:
		return v, nil
	}
}
