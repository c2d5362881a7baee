package dcbor

import (
	"math"

	"github.com/x448/float16"
)

// reduceFloat reports whether f is an integer this profile stores on
// the integer major types, and returns the integer payload. For
// negative results the payload is the n of the -1-n form, so -2^64 is
// representable as n = 2^64-1.
func reduceFloat(f float64) (u uint64, negative bool, ok bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, false
	}
	if f != math.Trunc(f) {
		return 0, false, false
	}
	if f >= 0 { // covers -0.0, which compares equal to 0
		if f >= maxMagnitude {
			return 0, false, false
		}
		return uint64(f), false, true
	}
	if f < -maxMagnitude {
		return 0, false, false
	}
	if f == -maxMagnitude {
		return math.MaxUint64, true, true
	}
	// -f is an exact integer in [1, 2^64), so the conversion is exact.
	return uint64(-f) - 1, true, true
}

// canonicalNaN is the double value of the half-precision quiet NaN,
// the only NaN this profile stores or emits.
func canonicalNaN() float64 {
	return float64(float16.Frombits(canonicalNaNBits).Float32())
}

// appendFloat emits f at the smallest width (half/single/double) that
// round-trips to the identical double. The caller guarantees f is not
// reducible, not negative zero, and carries only the canonical NaN.
func appendFloat(b []byte, f float64) []byte {
	if math.IsNaN(f) {
		o, n := ensure(b, 3)
		o[n] = makeByte(majorTypeSimple, simpleFloat16)
		be.PutUint16(o[n+1:], canonicalNaNBits)
		return o
	}
	if f32 := float32(f); float64(f32) == f {
		if f16 := float16.Fromfloat32(f32); f16.Float32() == f32 {
			o, n := ensure(b, 3)
			o[n] = makeByte(majorTypeSimple, simpleFloat16)
			be.PutUint16(o[n+1:], f16.Bits())
			return o
		}
		o, n := ensure(b, 5)
		o[n] = makeByte(majorTypeSimple, simpleFloat32)
		be.PutUint32(o[n+1:], math.Float32bits(f32))
		return o
	}
	o, n := ensure(b, 9)
	o[n] = makeByte(majorTypeSimple, simpleFloat64)
	be.PutUint64(o[n+1:], math.Float64bits(f))
	return o
}

// checkFloat16 validates a decoded half-precision payload and returns
// its double value.
func checkFloat16(bits uint16) (float64, error) {
	h := float16.Frombits(bits)
	if h.IsNaN() {
		if bits != canonicalNaNBits {
			return 0, ErrNonCanonicalNaN
		}
		return canonicalNaN(), nil
	}
	f := float64(h.Float32())
	if f == 0 && math.Signbit(f) {
		return 0, ErrNegativeZero
	}
	if _, _, ok := reduceFloat(f); ok {
		return 0, ErrUnreducedFloat
	}
	return f, nil
}

// checkFloat32 validates a decoded single-precision payload and
// returns its double value.
func checkFloat32(bits uint32) (float64, error) {
	f32 := math.Float32frombits(bits)
	if math.IsNaN(float64(f32)) {
		return 0, ErrNonCanonicalNaN
	}
	if f16 := float16.Fromfloat32(f32); f16.Float32() == f32 {
		return 0, ErrNonCanonicalFloat
	}
	f := float64(f32)
	if _, _, ok := reduceFloat(f); ok {
		return 0, ErrUnreducedFloat
	}
	return f, nil
}

// checkFloat64 validates a decoded double-precision payload.
func checkFloat64(bits uint64) (float64, error) {
	f := math.Float64frombits(bits)
	if math.IsNaN(f) {
		return 0, ErrNonCanonicalNaN
	}
	if f32 := float32(f); float64(f32) == f {
		return 0, ErrNonCanonicalFloat
	}
	if _, _, ok := reduceFloat(f); ok {
		return 0, ErrUnreducedFloat
	}
	return f, nil
}
