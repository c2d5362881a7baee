package dcbor

import (
	"bytes"
	"encoding/hex"
	"math"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func mustTag(t *testing.T, tag uint64, content Value) Value {
	t.Helper()
	v, err := Tag(tag, content)
	if err != nil {
		t.Fatalf("Tag(%d): %v", tag, err)
	}
	return v
}

func mustMap(t *testing.T, pairs ...[2]Value) Value {
	t.Helper()
	mb := NewMapBuilder()
	for _, p := range pairs {
		if err := mb.Insert(p[0], p[1]); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	return FromMap(mb.Build())
}

func TestEncodeVectors(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		hex  string
	}{
		{"uint-0", Uint(0), "00"},
		{"uint-10", Uint(10), "0a"},
		{"uint-23", Uint(23), "17"},
		{"uint-24", Uint(24), "1818"},
		{"uint-255", Uint(255), "18ff"},
		{"uint-256", Uint(256), "190100"},
		{"uint-65535", Uint(65535), "19ffff"},
		{"uint-65536", Uint(65536), "1a00010000"},
		{"uint-4294967295", Uint(math.MaxUint32), "1affffffff"},
		{"uint-4294967296", Uint(1 << 32), "1b0000000100000000"},
		{"uint-max-int64", Uint(math.MaxInt64), "1b7fffffffffffffff"},
		{"uint-2-63", Uint(1 << 63), "1b8000000000000000"},
		{"uint-max", Uint(math.MaxUint64), "1bffffffffffffffff"},
		{"neg-1", Int(-1), "20"},
		{"neg-24", Int(-24), "37"},
		{"neg-25", Int(-25), "3818"},
		{"neg-min-int64", Int(math.MinInt64), "3b7fffffffffffffff"},
		{"neg-2-64", NegUint64(math.MaxUint64), "3bffffffffffffffff"},
		{"bytes-empty", Bin(nil), "40"},
		{"bytes-010203", Bin([]byte{1, 2, 3}), "43010203"},
		{"text-empty", Str(""), "60"},
		{"text-a", Str("a"), "6161"},
		{"text-accented", Str("é"), "62c3a9"},
		{"array-empty", Array(), "80"},
		{"array-1-2-3", Array(Uint(1), Uint(2), Uint(3)), "83010203"},
		{"map-empty", mustMap(t), "a0"},
		{"map-int-keys", mustMap(t,
			[2]Value{Uint(10), Str("a")},
			[2]Value{Uint(100), Str("b")},
		), "a20a616118646162"},
		{"tag-epoch", mustTag(t, 1, Uint(1363896240)), "c11a514b67b0"},
		{"false", Bool(false), "f4"},
		{"true", Bool(true), "f5"},
		{"null", Null(), "f6"},
		{"zero-value", Value{}, "f6"},
		{"float-1.5", Float(1.5), "f93e00"},
		{"float-0.5", Float(0.5), "f93800"},
		{"float-3.5", Float(3.5), "f94300"},
		{"float-1.1", Float(1.1), "fb3ff199999999999a"},
		{"float-minus-4.1", Float(-4.1), "fbc010666666666666"},
		{"float-max-f32", Float(3.4028234663852886e38), "fa7f7fffff"},
		{"float-1e300", Float(1.0e300), "fb7e37e43c8800759c"},
		{"float-min-subnormal-f16", Float(5.960464477539063e-8), "f90001"},
		{"float-min-normal-f16", Float(0.00006103515625), "f90400"},
		{"float-inf", Float(math.Inf(1)), "f97c00"},
		{"float-neg-inf", Float(math.Inf(-1)), "f9fc00"},
		{"float-nan", Float(math.NaN()), "f97e00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Encode(tc.v)
			want := mustHex(t, tc.hex)
			if !bytes.Equal(got, want) {
				t.Fatalf("Encode mismatch: got %s want %s",
					hex.EncodeToString(got), hex.EncodeToString(want))
			}
		})
	}
}

// TestEncodeReduction verifies that integer-valued floats take the
// integer encodings, bit for bit.
func TestEncodeReduction(t *testing.T) {
	cases := []struct {
		name string
		f    float64
		hex  string
	}{
		{"zero", 0.0, "00"},
		{"neg-zero", math.Copysign(0, -1), "00"},
		{"one", 1.0, "01"},
		{"minus-one", -1.0, "20"},
		{"2-24", 16777216.0, "1a01000000"},
		{"2-63", 9223372036854775808.0, "1b8000000000000000"},
		{"minus-2-63", -9223372036854775808.0, "3b7fffffffffffffff"},
		{"minus-2-64", -18446744073709551616.0, "3bffffffffffffffff"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Encode(Float(tc.f))
			want := mustHex(t, tc.hex)
			if !bytes.Equal(got, want) {
				t.Fatalf("Encode(Float(%v)) = %s, want %s",
					tc.f, hex.EncodeToString(got), hex.EncodeToString(want))
			}
		})
	}

	// The band is half-open: 2^64 itself does not reduce. Being a
	// power of two it lands on single precision.
	if got := Encode(Float(18446744073709551616.0)); !bytes.Equal(got, mustHex(t, "fa5f800000")) {
		t.Fatalf("Float(2^64) should stay a float, got %s", hex.EncodeToString(got))
	}
	// One ulp past -2^64 stays a float too.
	if got := Encode(Float(math.Nextafter(-18446744073709551616.0, math.Inf(-1)))); got[0] != 0xfb {
		t.Fatalf("Float below -2^64 should stay a float, got %s", hex.EncodeToString(got))
	}
}

// TestEncodeNaNCanonicalization verifies that every NaN payload
// collapses onto f97e00.
func TestEncodeNaNCanonicalization(t *testing.T) {
	payloads := []uint64{
		0x7ff8000000000000, // quiet NaN
		0x7ff8000000000001,
		0x7ff0000000000001, // signaling NaN
		0xfff8000000000000, // negative quiet NaN
		0xffffffffffffffff,
	}
	want := mustHex(t, "f97e00")
	for _, bits := range payloads {
		got := Encode(Float(math.Float64frombits(bits)))
		if !bytes.Equal(got, want) {
			t.Fatalf("NaN %016x encoded as %s, want f97e00", bits, hex.EncodeToString(got))
		}
	}
}

func TestAppendEncoded(t *testing.T) {
	b := []byte{0xde, 0xad}
	b = AppendEncoded(b, Uint(1))
	b = AppendEncoded(b, Str("a"))
	want := mustHex(t, "dead016161")
	if !bytes.Equal(b, want) {
		t.Fatalf("AppendEncoded: got %s want %s", hex.EncodeToString(b), hex.EncodeToString(want))
	}
}
