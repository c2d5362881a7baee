package dcbor

import (
	"encoding/binary"
	"math"
)

var be = binary.BigEndian

// ensure 'sz' extra bytes in 'b' btw len(b) and cap(b)
func ensure(b []byte, sz int) ([]byte, int) {
	l := len(b)
	c := cap(b)
	if c-l < sz {
		o := make([]byte, (2*c)+sz) // exponential growth
		n := copy(o, b)
		return o[:n+sz], n
	}
	return b[:l+sz], l
}

// appendHead encodes a major type and argument using the shortest form.
func appendHead(b []byte, majorType uint8, u uint64) []byte {
	switch {
	case u <= addInfoDirect:
		return append(b, makeByte(majorType, uint8(u)))
	case u <= math.MaxUint8:
		o, n := ensure(b, 2)
		o[n] = makeByte(majorType, addInfoUint8)
		o[n+1] = uint8(u)
		return o
	case u <= math.MaxUint16:
		o, n := ensure(b, 3)
		o[n] = makeByte(majorType, addInfoUint16)
		be.PutUint16(o[n+1:], uint16(u))
		return o
	case u <= math.MaxUint32:
		o, n := ensure(b, 5)
		o[n] = makeByte(majorType, addInfoUint32)
		be.PutUint32(o[n+1:], uint32(u))
		return o
	default:
		o, n := ensure(b, 9)
		o[n] = makeByte(majorType, addInfoUint64)
		be.PutUint64(o[n+1:], u)
		return o
	}
}

// readHead reads one head from b, enforcing minimal argument encoding.
// It returns the major type, the argument and the number of bytes
// consumed. Indefinite lengths and the reserved additional info values
// are rejected unconditionally; callers handle major type 7 themselves
// because its additional info selects simple values and float widths
// rather than an integer argument.
func readHead(b []byte) (major uint8, arg uint64, n int, err error) {
	if len(b) < 1 {
		return 0, 0, 0, ErrTruncated
	}
	major = getMajorType(b[0])
	addInfo := getAddInfo(b[0])

	switch {
	case addInfo <= addInfoDirect:
		return major, uint64(addInfo), 1, nil
	case addInfo == addInfoUint8:
		if len(b) < 2 {
			return 0, 0, 0, ErrTruncated
		}
		arg = uint64(b[1])
		if arg < 24 {
			return 0, 0, 0, ErrNonMinimalHead
		}
		return major, arg, 2, nil
	case addInfo == addInfoUint16:
		if len(b) < 3 {
			return 0, 0, 0, ErrTruncated
		}
		arg = uint64(be.Uint16(b[1:]))
		if arg <= math.MaxUint8 {
			return 0, 0, 0, ErrNonMinimalHead
		}
		return major, arg, 3, nil
	case addInfo == addInfoUint32:
		if len(b) < 5 {
			return 0, 0, 0, ErrTruncated
		}
		arg = uint64(be.Uint32(b[1:]))
		if arg <= math.MaxUint16 {
			return 0, 0, 0, ErrNonMinimalHead
		}
		return major, arg, 5, nil
	case addInfo == addInfoUint64:
		if len(b) < 9 {
			return 0, 0, 0, ErrTruncated
		}
		arg = be.Uint64(b[1:])
		if arg <= math.MaxUint32 {
			return 0, 0, 0, ErrNonMinimalHead
		}
		return major, arg, 9, nil
	case addInfo == addInfoIndefinite:
		return 0, 0, 0, ErrIndefiniteLength
	default: // 28, 29, 30
		return 0, 0, 0, ErrReservedAdditionalInfo
	}
}
