package dcbor

import "math"

// Encode returns the canonical encoding of v. Encoding is total: any
// constructable Value has exactly one byte form, and equal Values
// produce identical bytes.
func Encode(v Value) []byte {
	bb := GetByteBuffer()
	defer PutByteBuffer(bb)
	bb.AppendValue(v)
	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return out
}

// AppendEncoded appends the canonical encoding of v to b and returns
// the extended slice.
func AppendEncoded(b []byte, v Value) []byte {
	return appendValue(b, v)
}

func appendValue(b []byte, v Value) []byte {
	it := v.itemOrNull()
	switch it.typ {
	case UintType:
		return appendHead(b, majorTypeUint, it.num)
	case NegIntType:
		return appendHead(b, majorTypeNegInt, it.num)
	case BinType:
		b = appendHead(b, majorTypeBytes, uint64(len(it.bin)))
		return append(b, it.bin...)
	case StrType:
		b = appendHead(b, majorTypeText, uint64(len(it.str)))
		return append(b, it.str...)
	case ArrayType:
		b = appendHead(b, majorTypeArray, uint64(len(it.arr)))
		for _, e := range it.arr {
			b = appendValue(b, e)
		}
		return b
	case MapType:
		b = appendHead(b, majorTypeMap, uint64(len(it.m.entries)))
		for _, e := range it.m.entries {
			b = append(b, e.enc...)
			b = appendValue(b, e.val)
		}
		return b
	case TagType:
		b = appendHead(b, majorTypeTag, it.tag)
		return appendValue(b, it.inner)
	case BoolType:
		if it.num != 0 {
			return append(b, makeByte(majorTypeSimple, simpleTrue))
		}
		return append(b, makeByte(majorTypeSimple, simpleFalse))
	case FloatType:
		return appendFloat(b, math.Float64frombits(it.num))
	default: // NilType and the zero Value
		return append(b, makeByte(majorTypeSimple, simpleNull))
	}
}
