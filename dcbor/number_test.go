package dcbor

import (
	"errors"
	"math"
	"testing"
)

func TestReduceFloat(t *testing.T) {
	cases := []struct {
		f        float64
		u        uint64
		negative bool
		ok       bool
	}{
		{0, 0, false, true},
		{math.Copysign(0, -1), 0, false, true},
		{1, 1, false, true},
		{-1, 0, true, true},
		{16777216, 16777216, false, true},
		{18446744073709549568, 18446744073709549568, false, true}, // largest reducible double < 2^64
		{18446744073709551616, 0, false, false},                   // 2^64
		{-18446744073709551616, math.MaxUint64, true, true},       // -2^64
		{1.5, 0, false, false},
		{math.Inf(1), 0, false, false},
		{math.NaN(), 0, false, false},
		{1e300, 0, false, false}, // integral but out of band
	}
	for _, tc := range cases {
		u, negative, ok := reduceFloat(tc.f)
		if u != tc.u || negative != tc.negative || ok != tc.ok {
			t.Fatalf("reduceFloat(%v) = (%d, %v, %v), want (%d, %v, %v)",
				tc.f, u, negative, ok, tc.u, tc.negative, tc.ok)
		}
	}
}

func TestCheckFloatWidths(t *testing.T) {
	// Accepted halves round-trip through the checker unchanged.
	f, err := checkFloat16(0x3e00)
	if err != nil || f != 1.5 {
		t.Fatalf("checkFloat16(0x3e00) = %v, %v", f, err)
	}
	if _, err := checkFloat16(0x3c00); !errors.Is(err, ErrUnreducedFloat) {
		t.Fatalf("half 1.0: got %v", err)
	}
	if _, err := checkFloat16(0x8000); !errors.Is(err, ErrNegativeZero) {
		t.Fatalf("half -0.0: got %v", err)
	}
	if _, err := checkFloat16(0x7e00); err != nil {
		t.Fatalf("canonical NaN rejected: %v", err)
	}
	if _, err := checkFloat16(0x7e01); !errors.Is(err, ErrNonCanonicalNaN) {
		t.Fatalf("payload NaN: got %v", err)
	}

	// Subnormal halves are already shortest-width.
	if _, err := checkFloat16(0x0001); err != nil {
		t.Fatalf("min subnormal half rejected: %v", err)
	}
	// The same value widened to single is non-canonical.
	if _, err := checkFloat32(math.Float32bits(5.960464477539063e-8)); !errors.Is(err, ErrNonCanonicalFloat) {
		t.Fatalf("widened subnormal: got %v", err)
	}

	// Values needing single precision pass at single, fail at double.
	maxF32 := float32(math.MaxFloat32)
	if _, err := checkFloat32(math.Float32bits(maxF32)); err != nil {
		t.Fatalf("max float32 rejected: %v", err)
	}
	if _, err := checkFloat64(math.Float64bits(float64(maxF32))); !errors.Is(err, ErrNonCanonicalFloat) {
		t.Fatalf("max float32 as double: got %v", err)
	}

	// A genuine double passes.
	if f, err := checkFloat64(math.Float64bits(1.1)); err != nil || f != 1.1 {
		t.Fatalf("checkFloat64(1.1) = %v, %v", f, err)
	}
}
