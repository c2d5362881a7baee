package dcbor

import (
	"bytes"
	"math"
	"math/big"
	"strconv"
)

// Type represents the kind of item a Value holds.
type Type byte

// Value kinds
const (
	InvalidType Type = iota

	UintType   // unsigned integer
	NegIntType // negative integer, stored as -1-n
	BinType    // byte string
	StrType    // text string (NFC)
	ArrayType  // array
	MapType    // map
	TagType    // tagged value
	BoolType   // bool
	NilType    // null
	FloatType  // float64 (never integer-valued in the reducible band)
)

// String implements fmt.Stringer
func (t Type) String() string {
	switch t {
	case UintType:
		return "uint"
	case NegIntType:
		return "negint"
	case BinType:
		return "bin"
	case StrType:
		return "str"
	case ArrayType:
		return "array"
	case MapType:
		return "map"
	case TagType:
		return "tag"
	case BoolType:
		return "bool"
	case NilType:
		return "null"
	case FloatType:
		return "float"
	default:
		return "<invalid>"
	}
}

// Value is an immutable dCBOR item. The zero Value is null. Copying a
// Value is cheap: composite payloads are shared, never duplicated, and
// no Value is mutated after construction, so Values may be freely
// shared across goroutines.
type Value struct {
	it *item
}

type item struct {
	typ   Type
	num   uint64 // uint payload, negint n, float bits, or bool
	str   string
	bin   []byte
	arr   []Value
	m     *Map
	tag   uint64
	inner Value // tagged content
}

var (
	nullItem  = item{typ: NilType}
	trueItem  = item{typ: BoolType, num: 1}
	falseItem = item{typ: BoolType}
)

func (v Value) itemOrNull() *item {
	if v.it == nil {
		return &nullItem
	}
	return v.it
}

// Type returns the kind of item v holds.
func (v Value) Type() Type { return v.itemOrNull().typ }

// Null returns the null value.
func Null() Value { return Value{it: &nullItem} }

// Bool returns a boolean value.
func Bool(b bool) Value {
	if b {
		return Value{it: &trueItem}
	}
	return Value{it: &falseItem}
}

// Uint returns an unsigned integer value.
func Uint(u uint64) Value {
	return Value{it: &item{typ: UintType, num: u}}
}

// Int returns an integer value. Negative inputs use the negative
// integer kind; everything else is unsigned.
func Int(i int64) Value {
	if i >= 0 {
		return Uint(uint64(i))
	}
	return Value{it: &item{typ: NegIntType, num: uint64(-1 - i)}}
}

// NegUint64 returns the negative integer -1-n. Unlike Int, it reaches
// values in [-2^64, -2^63-1], which no host signed type can hold.
func NegUint64(n uint64) Value {
	return Value{it: &item{typ: NegIntType, num: n}}
}

// BigInt returns an integer value for x, or ErrIntegerOutOfRange when x
// lies outside [-2^64, 2^64-1].
func BigInt(x *big.Int) (Value, error) {
	if x.Sign() >= 0 {
		if !x.IsUint64() {
			return Value{}, ErrIntegerOutOfRange
		}
		return Uint(x.Uint64()), nil
	}
	// n = -x - 1
	var n big.Int
	n.Neg(x)
	n.Sub(&n, big.NewInt(1))
	if !n.IsUint64() {
		return Value{}, ErrIntegerOutOfRange
	}
	return NegUint64(n.Uint64()), nil
}

// Float returns a numeric value for f. Integer-valued floats in
// [-2^64, 2^64-1] reduce to the integer kinds, -0.0 reduces to 0, and
// every NaN payload collapses onto the canonical NaN.
func Float(f float64) Value {
	if math.IsNaN(f) {
		return Value{it: &item{typ: FloatType, num: math.Float64bits(canonicalNaN())}}
	}
	if u, negative, ok := reduceFloat(f); ok {
		if negative {
			return NegUint64(u)
		}
		return Uint(u)
	}
	return Value{it: &item{typ: FloatType, num: math.Float64bits(f)}}
}

// Str returns a text string value. The input is NFC-normalized; callers
// own their inputs, so silent normalization here is safe, unlike on
// decode where it would break bit-exactness.
func Str(s string) Value {
	return Value{it: &item{typ: StrType, str: normalizeNFC(s)}}
}

// Bin returns a byte string value. The input slice is copied so later
// caller mutations cannot reach the Value.
func Bin(b []byte) Value {
	return Value{it: &item{typ: BinType, bin: bytes.Clone(b)}}
}

// Array returns an array value over the given elements. The slice is
// copied; the element Values are shared.
func Array(elems ...Value) Value {
	arr := make([]Value, len(elems))
	copy(arr, elems)
	return Value{it: &item{typ: ArrayType, arr: arr}}
}

// FromMap returns a map value over a finalized Map.
func FromMap(m *Map) Value {
	if m == nil {
		m = &Map{}
	}
	return Value{it: &item{typ: MapType, m: m}}
}

// Tag wraps content in semantic tag number t. Tag 55799 (self-describe
// CBOR) is never valid in this profile and is rejected here so that no
// constructable Value can carry it.
func Tag(t uint64, content Value) (Value, error) {
	if t == tagSelfDescribeCBOR {
		return Value{}, ErrForbiddenTag
	}
	return Value{it: &item{typ: TagType, tag: t, inner: content}}, nil
}

// Uint64 returns the unsigned integer payload.
func (v Value) Uint64() (uint64, error) {
	it := v.itemOrNull()
	if it.typ != UintType {
		return 0, TypeError{Method: UintType, Present: it.typ}
	}
	return it.num, nil
}

// NegUint64 returns the n of a negative integer -1-n.
func (v Value) NegUint64() (uint64, error) {
	it := v.itemOrNull()
	if it.typ != NegIntType {
		return 0, TypeError{Method: NegIntType, Present: it.typ}
	}
	return it.num, nil
}

// Int64 returns the integer payload as an int64. Unsigned values above
// 2^63-1 and negative values below -2^63 report overflow.
func (v Value) Int64() (int64, error) {
	it := v.itemOrNull()
	switch it.typ {
	case UintType:
		if it.num > math.MaxInt64 {
			return 0, UintOverflow{Value: it.num, FailedBitsize: 64}
		}
		return int64(it.num), nil
	case NegIntType:
		if it.num > math.MaxInt64 {
			return 0, IntOverflow{Value: v.decimal(), FailedBitsize: 64}
		}
		return -1 - int64(it.num), nil
	default:
		return 0, TypeError{Method: NegIntType, Present: it.typ}
	}
}

// BigInt returns the integer payload as a big.Int, covering the full
// [-2^64, 2^64-1] band.
func (v Value) BigInt() (*big.Int, error) {
	it := v.itemOrNull()
	switch it.typ {
	case UintType:
		return new(big.Int).SetUint64(it.num), nil
	case NegIntType:
		x := new(big.Int).SetUint64(it.num)
		x.Add(x, big.NewInt(1))
		return x.Neg(x), nil
	default:
		return nil, TypeError{Method: NegIntType, Present: it.typ}
	}
}

// Float64 returns the float payload.
func (v Value) Float64() (float64, error) {
	it := v.itemOrNull()
	if it.typ != FloatType {
		return 0, TypeError{Method: FloatType, Present: it.typ}
	}
	return math.Float64frombits(it.num), nil
}

// Bool returns the boolean payload.
func (v Value) Bool() (bool, error) {
	it := v.itemOrNull()
	if it.typ != BoolType {
		return false, TypeError{Method: BoolType, Present: it.typ}
	}
	return it.num != 0, nil
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.itemOrNull().typ == NilType }

// Str returns the text string payload.
func (v Value) Str() (string, error) {
	it := v.itemOrNull()
	if it.typ != StrType {
		return "", TypeError{Method: StrType, Present: it.typ}
	}
	return it.str, nil
}

// Bin returns the byte string payload. The returned slice is shared
// with the Value and must not be modified.
func (v Value) Bin() ([]byte, error) {
	it := v.itemOrNull()
	if it.typ != BinType {
		return nil, TypeError{Method: BinType, Present: it.typ}
	}
	return it.bin, nil
}

// Array returns the array elements. The returned slice is shared with
// the Value and must not be modified.
func (v Value) Array() ([]Value, error) {
	it := v.itemOrNull()
	if it.typ != ArrayType {
		return nil, TypeError{Method: ArrayType, Present: it.typ}
	}
	return it.arr, nil
}

// Map returns the map payload.
func (v Value) Map() (*Map, error) {
	it := v.itemOrNull()
	if it.typ != MapType {
		return nil, TypeError{Method: MapType, Present: it.typ}
	}
	return it.m, nil
}

// Tag returns the tag number and content of a tagged value.
func (v Value) Tag() (uint64, Value, error) {
	it := v.itemOrNull()
	if it.typ != TagType {
		return 0, Value{}, TypeError{Method: TagType, Present: it.typ}
	}
	return it.tag, it.inner, nil
}

// Equal reports structural equality, defined as byte-equality of the
// canonical encodings. Equal values always serialize identically.
func (v Value) Equal(o Value) bool {
	if v.it == o.it {
		return true
	}
	return bytes.Equal(Encode(v), Encode(o))
}

// decimal renders an integer value for error messages.
func (v Value) decimal() string {
	it := v.itemOrNull()
	switch it.typ {
	case UintType:
		return strconv.FormatUint(it.num, 10)
	case NegIntType:
		x, _ := v.BigInt()
		return x.String()
	default:
		return "0"
	}
}
