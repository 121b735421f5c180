package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFloat_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"quoted", `"123.45"`, 123.45},
		{"number", `123.45`, 123.45},
		{"integer", `7`, 7},
		{"negative string", `"-0.5"`, -0.5},
		{"exponent", `1e3`, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Float
			if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tt.input, err)
			}
			if f.Float64() != tt.expected {
				t.Errorf("Unmarshal(%s) = %f, expected %f", tt.input, f.Float64(), tt.expected)
			}
		})
	}
}

func TestFloat_StringAndNumberAgree(t *testing.T) {
	var fromString, fromNumber Float
	if err := json.Unmarshal([]byte(`"123.45"`), &fromString); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`123.45`), &fromNumber); err != nil {
		t.Fatal(err)
	}
	if fromString != fromNumber {
		t.Errorf("string form %f differs from number form %f", fromString, fromNumber)
	}
}

func TestFloat_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"non-numeric string", `"abc"`, `failed to parse "abc" as float64`},
		{"empty string", `""`, `failed to parse "" as float64`},
		{"bool", `true`, "expected either a string or a JSON number"},
		{"object", `{}`, "expected either a string or a JSON number"},
		{"null", `null`, "expected either a string or a JSON number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Float
			err := f.UnmarshalJSON([]byte(tt.input))
			if err == nil {
				t.Fatalf("UnmarshalJSON(%s) should fail", tt.input)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("UnmarshalJSON(%s) error = %q, expected it to contain %q", tt.input, err, tt.message)
			}
		})
	}
}

func TestOptionalFloat_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Present OptionalFloat `json:"present"`
		Null    OptionalFloat `json:"null"`
		Missing OptionalFloat `json:"missing"`
	}
	if err := json.Unmarshal([]byte(`{"present":"0.25","null":null}`), &payload); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	if v, ok := payload.Present.Get(); !ok || v != 0.25 {
		t.Errorf("present = (%f, %t), expected (0.25, true)", v, ok)
	}
	if payload.Null.Valid {
		t.Errorf("null should decode as absent, got %f", payload.Null.Value)
	}
	if payload.Missing.Valid {
		t.Errorf("missing should stay absent, got %f", payload.Missing.Value)
	}
}

func TestOptionalFloat_MarshalJSON(t *testing.T) {
	data, err := json.Marshal([]OptionalFloat{SomeFloat(1.5), {}})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[1.5,null]` {
		t.Errorf("Marshal = %s, expected [1.5,null]", data)
	}
}
