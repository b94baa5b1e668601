// Package json provides the encoding/json-backed input driver. It exists as
// the dependency-free fallback; most callers want source/gojson.
package json

import (
	"bytes"
	"encoding/json"
	"io"
)

// Source decodes one JSON document from an io.Reader.
type Source struct {
	dec *json.Decoder
}

// NewReader wraps an io.Reader as a JSON Source. Numbers decode as
// json.Number so integer precision survives the trip.
func NewReader(r io.Reader) *Source {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &Source{dec: dec}
}

// NewBytes wraps a byte slice as a JSON Source.
func NewBytes(b []byte) *Source { return NewReader(bytes.NewReader(b)) }

// Decode reads the next document.
func (s *Source) Decode() (any, error) {
	var v any
	if err := s.dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
