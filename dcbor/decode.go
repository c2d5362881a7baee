package dcbor

import (
	"bytes"
	"math"
)

// defaultMaxDepth bounds structural nesting. Deep enough for any sane
// document, shallow enough that adversarial nesting cannot exhaust the
// stack.
const defaultMaxDepth = 1024

// Decode parses exactly one item from b. Bytes remaining after the
// top-level item are an error; use DecodePrefix to decode a leading
// item from a larger buffer.
func Decode(b []byte) (Value, error) {
	d := NewDecoder(b)
	v, err := d.Decode()
	if err != nil {
		return Value{}, err
	}
	if d.pos != len(b) {
		return Value{}, &DecodeError{Offset: d.pos, err: ErrTrailingData}
	}
	return v, nil
}

// DecodePrefix parses one item from the front of b and returns it along
// with the number of bytes consumed.
func DecodePrefix(b []byte) (Value, int, error) {
	d := NewDecoder(b)
	v, err := d.Decode()
	if err != nil {
		return Value{}, 0, err
	}
	return v, d.pos, nil
}

// Valid reports whether b holds exactly one conforming item. It runs
// the full rule set; there is no cheaper well-formedness tier because
// the profile's guarantees only hold for fully validated input.
func Valid(b []byte) error {
	_, err := Decode(b)
	return err
}

// Decoder parses a sequence of items from an in-memory buffer. Each
// Decode call consumes one item; Rest returns whatever follows.
type Decoder struct {
	buf          []byte
	pos          int
	maxDepth     int
	maxContainer uint64
}

// NewDecoder constructs a Decoder over the provided buffer.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{buf: b, maxDepth: defaultMaxDepth}
}

// SetMaxDepth configures the nesting bound. Zero restores the default.
func (d *Decoder) SetMaxDepth(n int) {
	if n <= 0 {
		n = defaultMaxDepth
	}
	d.maxDepth = n
}

// SetMaxContainerLen configures an upper bound on container lengths
// (arrays, maps, byte strings, text strings). A value of zero disables
// the limit. When exceeded, ErrContainerTooLarge is returned.
func (d *Decoder) SetMaxContainerLen(max uint64) { d.maxContainer = max }

// Rest returns the unread portion of the underlying buffer.
func (d *Decoder) Rest() []byte { return d.buf[d.pos:] }

// Decode parses the next item. On error the Decoder position is left at
// the start of the failed item and no partial Value is exposed.
func (d *Decoder) Decode() (Value, error) {
	start := d.pos
	v, err := d.decodeValue(0)
	if err != nil {
		d.pos = start
		return Value{}, err
	}
	return v, nil
}

func (d *Decoder) fail(offset int, err error) error {
	return &DecodeError{Offset: offset, err: err}
}

func (d *Decoder) decodeValue(depth int) (Value, error) {
	if depth > d.maxDepth {
		return Value{}, d.fail(d.pos, ErrMaxDepthExceeded)
	}
	if d.pos >= len(d.buf) {
		return Value{}, d.fail(d.pos, ErrTruncated)
	}

	// Major type 7 carries simple values and float widths in its
	// additional info, not an integer argument, so it bypasses the
	// generic head reader.
	if getMajorType(d.buf[d.pos]) == majorTypeSimple {
		return d.decodeSimple()
	}

	headOff := d.pos
	major, arg, n, err := readHead(d.buf[d.pos:])
	if err != nil {
		return Value{}, d.fail(headOff, err)
	}
	d.pos += n

	switch major {
	case majorTypeUint:
		return Uint(arg), nil
	case majorTypeNegInt:
		return NegUint64(arg), nil
	case majorTypeBytes:
		p, err := d.take(headOff, arg)
		if err != nil {
			return Value{}, err
		}
		return Value{it: &item{typ: BinType, bin: bytes.Clone(p)}}, nil
	case majorTypeText:
		p, err := d.take(headOff, arg)
		if err != nil {
			return Value{}, err
		}
		if !isUTF8Valid(p) {
			return Value{}, d.fail(headOff, ErrInvalidUTF8)
		}
		if !isNFC(p) {
			return Value{}, d.fail(headOff, ErrNonNFCText)
		}
		return Value{it: &item{typ: StrType, str: string(p)}}, nil
	case majorTypeArray:
		if err := d.checkContainer(headOff, arg); err != nil {
			return Value{}, err
		}
		arr := make([]Value, 0, arg)
		for i := uint64(0); i < arg; i++ {
			e, err := d.decodeValue(depth + 1)
			if err != nil {
				return Value{}, err
			}
			arr = append(arr, e)
		}
		return Value{it: &item{typ: ArrayType, arr: arr}}, nil
	case majorTypeMap:
		return d.decodeMap(headOff, arg, depth)
	default: // majorTypeTag
		if arg == tagSelfDescribeCBOR {
			return Value{}, d.fail(headOff, ErrForbiddenTag)
		}
		content, err := d.decodeValue(depth + 1)
		if err != nil {
			return Value{}, err
		}
		return Value{it: &item{typ: TagType, tag: arg, inner: content}}, nil
	}
}

// take consumes n payload bytes, verifying they exist first so a head
// claiming 2^64 bytes fails before any allocation.
func (d *Decoder) take(headOff int, n uint64) ([]byte, error) {
	if d.maxContainer > 0 && n > d.maxContainer {
		return nil, d.fail(headOff, ErrContainerTooLarge)
	}
	if n > uint64(len(d.buf)-d.pos) {
		return nil, d.fail(headOff, ErrLengthExceedsInput)
	}
	p := d.buf[d.pos : d.pos+int(n)]
	d.pos += int(n)
	return p, nil
}

// checkContainer verifies that a claimed element count can possibly fit
// in the remaining input (every element takes at least one byte) before
// any count-sized allocation happens.
func (d *Decoder) checkContainer(headOff int, count uint64) error {
	if d.maxContainer > 0 && count > d.maxContainer {
		return d.fail(headOff, ErrContainerTooLarge)
	}
	if count > uint64(len(d.buf)-d.pos) {
		return d.fail(headOff, ErrLengthExceedsInput)
	}
	return nil
}

func (d *Decoder) decodeMap(headOff int, count uint64, depth int) (Value, error) {
	if d.maxContainer > 0 && count > d.maxContainer {
		return Value{}, d.fail(headOff, ErrContainerTooLarge)
	}
	// Every pair needs at least two bytes of input.
	if count > uint64(len(d.buf)-d.pos)/2 {
		return Value{}, d.fail(headOff, ErrLengthExceedsInput)
	}
	m := &Map{entries: make([]mapEntry, 0, count)}
	var prev []byte
	for i := uint64(0); i < count; i++ {
		keyStart := d.pos
		k, err := d.decodeValue(depth + 1)
		if err != nil {
			return Value{}, err
		}
		// The key's canonical form is its own input span: the decoder
		// only accepts canonical bytes, so re-encoding is redundant.
		span := d.buf[keyStart:d.pos]
		if i > 0 {
			switch c := bytes.Compare(prev, span); {
			case c == 0:
				return Value{}, d.fail(keyStart, ErrDuplicateMapKey)
			case c > 0:
				return Value{}, d.fail(keyStart, ErrMapKeysOutOfOrder)
			}
		}
		prev = span
		v, err := d.decodeValue(depth + 1)
		if err != nil {
			return Value{}, err
		}
		m.appendSorted(k, v, bytes.Clone(span))
	}
	return FromMap(m), nil
}

func (d *Decoder) decodeSimple() (Value, error) {
	headOff := d.pos
	addInfo := getAddInfo(d.buf[d.pos])
	switch addInfo {
	case simpleFalse:
		d.pos++
		return Bool(false), nil
	case simpleTrue:
		d.pos++
		return Bool(true), nil
	case simpleNull:
		d.pos++
		return Null(), nil
	case simpleFloat16:
		if len(d.buf)-d.pos < 3 {
			return Value{}, d.fail(headOff, ErrTruncated)
		}
		f, err := checkFloat16(be.Uint16(d.buf[d.pos+1:]))
		if err != nil {
			return Value{}, d.fail(headOff, err)
		}
		d.pos += 3
		return floatValue(f), nil
	case simpleFloat32:
		if len(d.buf)-d.pos < 5 {
			return Value{}, d.fail(headOff, ErrTruncated)
		}
		f, err := checkFloat32(be.Uint32(d.buf[d.pos+1:]))
		if err != nil {
			return Value{}, d.fail(headOff, err)
		}
		d.pos += 5
		return floatValue(f), nil
	case simpleFloat64:
		if len(d.buf)-d.pos < 9 {
			return Value{}, d.fail(headOff, ErrTruncated)
		}
		f, err := checkFloat64(be.Uint64(d.buf[d.pos+1:]))
		if err != nil {
			return Value{}, d.fail(headOff, err)
		}
		d.pos += 9
		return floatValue(f), nil
	case 28, 29, 30:
		return Value{}, d.fail(headOff, ErrReservedAdditionalInfo)
	case addInfoIndefinite: // a bare break byte
		return Value{}, d.fail(headOff, ErrIndefiniteLength)
	default:
		// undefined (23), unassigned simple values and the two-byte
		// simple form (24) are all outside the profile.
		return Value{}, d.fail(headOff, ErrDisallowedSimpleValue)
	}
}

// floatValue wraps an already-validated float payload without rerouting
// it through the reducer.
func floatValue(f float64) Value {
	return Value{it: &item{typ: FloatType, num: math.Float64bits(f)}}
}
