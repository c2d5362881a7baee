package dcbor

import (
	"encoding/hex"
	"math"
	"strconv"
)

// TagNameFunc resolves a tag number to a display name for diagnostic
// output. The second result reports whether a name is known.
type TagNameFunc func(tag uint64) (string, bool)

// Diagnostic renders v in RFC 8949 diagnostic notation, consulting the
// process-wide tag-name registry for tag names.
func Diagnostic(v Value) string {
	return DiagnosticWith(v, LookupTagName)
}

// DiagnosticWith renders v in diagnostic notation using the supplied
// tag-name lookup. A nil lookup renders all tags numerically.
func DiagnosticWith(v Value, lookup TagNameFunc) string {
	bb := GetByteBuffer()
	defer PutByteBuffer(bb)
	bb.b = appendDiag(bb.b, v, lookup)
	return string(bb.b)
}

func appendDiag(b []byte, v Value, lookup TagNameFunc) []byte {
	it := v.itemOrNull()
	switch it.typ {
	case UintType:
		return strconv.AppendUint(b, it.num, 10)
	case NegIntType:
		return append(b, v.decimal()...)
	case BinType:
		b = append(b, "h'"...)
		n := len(b)
		b = append(b, make([]byte, hex.EncodedLen(len(it.bin)))...)
		hex.Encode(b[n:], it.bin)
		return append(b, '\'')
	case StrType:
		return strconv.AppendQuote(b, it.str)
	case ArrayType:
		b = append(b, '[')
		for i, e := range it.arr {
			if i > 0 {
				b = append(b, ", "...)
			}
			b = appendDiag(b, e, lookup)
		}
		return append(b, ']')
	case MapType:
		b = append(b, '{')
		for i, e := range it.m.entries {
			if i > 0 {
				b = append(b, ", "...)
			}
			b = appendDiag(b, e.key, lookup)
			b = append(b, ": "...)
			b = appendDiag(b, e.val, lookup)
		}
		return append(b, '}')
	case TagType:
		if lookup != nil {
			if name, ok := lookup(it.tag); ok {
				b = append(b, name...)
				b = append(b, '(')
				b = appendDiag(b, it.inner, lookup)
				return append(b, ')')
			}
		}
		b = strconv.AppendUint(b, it.tag, 10)
		b = append(b, '(')
		b = appendDiag(b, it.inner, lookup)
		return append(b, ')')
	case BoolType:
		if it.num != 0 {
			return append(b, "true"...)
		}
		return append(b, "false"...)
	case FloatType:
		return append(b, formatFloatDiag(math.Float64frombits(it.num))...)
	default:
		return append(b, "null"...)
	}
}

// formatFloatDiag returns a diagnostic string for a float matching RFC examples
func formatFloatDiag(f float64) string {
	if math.IsInf(f, +1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if math.IsNaN(f) {
		return "NaN"
	}
	af := math.Abs(f)
	// Prefer fixed-point for reasonable magnitudes
	if af == 0 || af < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
