// Package gojson provides the default input driver, backed by goccy/go-json.
package gojson

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"
)

// Source decodes one JSON document from an io.Reader using go-json.
type Source struct {
	dec *j.Decoder
}

// NewReader wraps an io.Reader as a JSON Source. Numbers decode as
// json.Number so integer precision survives the trip.
func NewReader(r io.Reader) *Source {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &Source{dec: dec}
}

// NewBytes wraps a byte slice as a JSON Source.
func NewBytes(b []byte) *Source { return NewReader(bytes.NewReader(b)) }

// Bytes is shorthand for NewBytes.
func Bytes(b []byte) *Source { return NewBytes(b) }

// Reader is shorthand for NewReader.
func Reader(r io.Reader) *Source { return NewReader(r) }

// Decode reads the next document.
func (s *Source) Decode() (any, error) {
	var v any
	if err := s.dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
