// SPDX-License-Identifier: MIT
// File: decode.go
// Role: payload decoding (tuple and object forms) and validation.

package mapdata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/katalvlaran/ticketrail/routes"
)

// Sentinel errors.
var (
	// ErrInvalidMapData indicates a malformed payload or route.
	ErrInvalidMapData = errors.New("mapdata: invalid map data")

	// ErrUnknownCity indicates a city outside the gazetteer.
	ErrUnknownCity = errors.New("mapdata: city not in gazetteer")

	// ErrUnknownMap indicates a catalog name that does not exist.
	ErrUnknownMap = errors.New("mapdata: unknown map")
)

const (
	minTupleLen = 4
	maxTupleLen = 6
)

// Option configures Decode.
type Option func(*decoder)

// WithGazetteer restricts city names to the given list.
func WithGazetteer(cities []routes.City) Option {
	return func(d *decoder) {
		d.gazetteer = make(map[routes.City]struct{}, len(cities))
		for _, c := range cities {
			d.gazetteer[c] = struct{}{}
		}
	}
}

// decoder holds decode settings.
type decoder struct {
	gazetteer map[routes.City]struct{}
}

// Decode parses and validates a board payload.
func Decode(data []byte, opts ...Option) ([]routes.Route, error) {
	d := &decoder{}
	for _, opt := range opts {
		opt(d)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: payload is not an array: %w", ErrInvalidMapData, err)
	}
	rs := make([]routes.Route, 0, len(raw))
	for i, item := range raw {
		r, err := decodeRoute(item)
		if err != nil {
			return nil, fmt.Errorf("%w: route #%d: %w", ErrInvalidMapData, i, err)
		}
		if err = d.check(r); err != nil {
			return nil, fmt.Errorf("route #%d: %w", i, err)
		}
		rs = append(rs, r)
	}
	if err := routes.Validate(rs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMapData, err)
	}

	return routes.Normalize(rs), nil
}

// check applies the gazetteer.
func (d *decoder) check(r routes.Route) error {
	if d.gazetteer == nil {
		return nil
	}
	for _, c := range [2]routes.City{r.From, r.To} {
		if _, ok := d.gazetteer[c]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCity, c)
		}
	}

	return nil
}

// decodeRoute accepts the tuple or the object form of one route.
func decodeRoute(item json.RawMessage) (routes.Route, error) {
	trimmed := bytes.TrimSpace(item)
	if len(trimmed) == 0 {
		return routes.Route{}, errors.New("empty element")
	}
	switch trimmed[0] {
	case '[':
		return decodeTuple(trimmed)
	case '{':
		var r routes.Route
		if err := json.Unmarshal(trimmed, &r); err != nil {
			return routes.Route{}, err
		}
		return r, nil
	}

	return routes.Route{}, fmt.Errorf("unexpected element %s", trimmed)
}

// decodeTuple parses ["from", "to", length, "color", joker?, tunnel?].
func decodeTuple(item []byte) (routes.Route, error) {
	var fields []json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil {
		return routes.Route{}, err
	}
	if len(fields) < minTupleLen || len(fields) > maxTupleLen {
		return routes.Route{}, fmt.Errorf("tuple has %d fields, want %d..%d", len(fields), minTupleLen, maxTupleLen)
	}

	var r routes.Route
	targets := []interface{}{&r.From, &r.To, &r.Length, &r.Color, &r.Joker, &r.Tunnel}
	names := []string{"from", "to", "length", "color", "joker", "tunnel"}
	for i, f := range fields {
		if err := json.Unmarshal(f, targets[i]); err != nil {
			return routes.Route{}, fmt.Errorf("field %s: %w", names[i], err)
		}
	}

	return r, nil
}

// LoadFile reads and decodes a payload from fs.
func LoadFile(fs afero.Fs, path string, opts ...Option) ([]routes.Route, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("mapdata: read %s: %w", path, err)
	}

	return Decode(data, opts...)
}
