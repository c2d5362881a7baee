package dcbor

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func TestFromJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		hex  string
	}{
		{"int", `42`, "182a"},
		{"negative", `-1`, "20"},
		{"uint64-max", `18446744073709551615`, "1bffffffffffffffff"},
		{"neg-2-64", `-18446744073709551616`, "3bffffffffffffffff"},
		{"float-reduces", `10.0`, "0a"},
		{"float", `1.5`, "f93e00"},
		{"string", `"a"`, "6161"},
		{"bool", `true`, "f5"},
		{"null", `null`, "f6"},
		{"array", `[1, 2, 3]`, "83010203"},
		{"object-sorted", `{"b": 1, "a": 2}`, "a2616102616201"},
		{"nested", `{"xs": [1.0, null]}`, "a16278738201f6"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := FromJSON([]byte(tc.in))
			if err != nil {
				t.Fatalf("FromJSON: %v", err)
			}
			got := Encode(v)
			want := mustHex(t, tc.hex)
			if !bytes.Equal(got, want) {
				t.Fatalf("encoding mismatch: got %s want %s",
					hex.EncodeToString(got), hex.EncodeToString(want))
			}
		})
	}
}

func TestFromJSONErrors(t *testing.T) {
	if _, err := FromJSON([]byte(`{"a": 1, "a": 2}`)); !errors.Is(err, ErrDuplicateMapKey) {
		t.Fatalf("duplicate keys: got %v", err)
	}
	if _, err := FromJSON([]byte(`{`)); err == nil {
		t.Fatalf("unterminated object accepted")
	}
	if _, err := FromJSON([]byte(`1 2`)); err == nil {
		t.Fatalf("trailing JSON value accepted")
	}
	// NFC-equivalent keys collide after normalization.
	if _, err := FromJSON([]byte("{\"é\": 1, \"é\": 2}")); !errors.Is(err, ErrDuplicateMapKey) {
		t.Fatalf("NFC-colliding keys: got %v", err)
	}
}
