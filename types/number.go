package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

var nullLiteral = []byte("null")

// Float is a float64 that decodes from either a JSON number or a numeric
// string.
type Float float64

func (f *Float) UnmarshalJSON(data []byte) error {
	v, err := parseStringOrNumber(data)
	if err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

func (f Float) Float64() float64 {
	return float64(f)
}

// OptionalFloat is a Float that may be absent. JSON null decodes to an
// absent value.
type OptionalFloat struct {
	Value float64
	Valid bool
}

// SomeFloat returns a present OptionalFloat.
func SomeFloat(v float64) OptionalFloat {
	return OptionalFloat{Value: v, Valid: true}
}

func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), nullLiteral) {
		*o = OptionalFloat{}
		return nil
	}
	v, err := parseStringOrNumber(data)
	if err != nil {
		return err
	}
	*o = OptionalFloat{Value: v, Valid: true}
	return nil
}

func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return nullLiteral, nil
	}
	return json.Marshal(o.Value)
}

// Get returns the value and whether it is present.
func (o OptionalFloat) Get() (float64, bool) {
	return o.Value, o.Valid
}

func parseStringOrNumber(data []byte) (float64, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return 0, fmt.Errorf("expected either a string or a JSON number, got empty input")
	}

	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, fmt.Errorf("failed to decode string: %w", err)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse %q as float64: %w", s, err)
		}
		return v, nil
	case c == '-' || (c >= '0' && c <= '9'):
		v, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse %s as float64: %w", data, err)
		}
		return v, nil
	default:
		return 0, fmt.Errorf("expected either a string or a JSON number, got %s", data)
	}
}
