package dcbor

import (
	"errors"
	"strconv"
)

var (
	// ErrTruncated is returned when the input ends in the middle of a
	// data item.
	ErrTruncated error = errors.New("dcbor: too few bytes left to read item")

	// ErrNonMinimalHead is returned when a head uses more argument
	// bytes than its value requires.
	ErrNonMinimalHead error = errors.New("dcbor: non-minimal head encoding")

	// ErrIndefiniteLength is returned when an indefinite-length item
	// (additional info 31) is present.
	ErrIndefiniteLength error = errors.New("dcbor: indefinite-length item not allowed")

	// ErrReservedAdditionalInfo is returned when additional info 28, 29
	// or 30 is observed.
	ErrReservedAdditionalInfo error = errors.New("dcbor: reserved additional info")

	// ErrNonCanonicalFloat is returned when a float is not encoded at
	// its shortest round-trip width.
	ErrNonCanonicalFloat error = errors.New("dcbor: non-canonical float encoding")

	// ErrNonCanonicalNaN is returned for any NaN other than the
	// half-precision quiet NaN 0x7e00.
	ErrNonCanonicalNaN error = errors.New("dcbor: non-canonical NaN encoding")

	// ErrUnreducedFloat is returned when a float encodes an integer in
	// [-2^64, 2^64-1]; such values must use the integer major types.
	ErrUnreducedFloat error = errors.New("dcbor: integer-valued float must be encoded as integer")

	// ErrNegativeZero is returned when a float payload is -0.0, which
	// must be encoded as the integer 0.
	ErrNegativeZero error = errors.New("dcbor: negative zero must be encoded as integer zero")

	// ErrInvalidUTF8 is returned when a text string contains invalid UTF-8.
	ErrInvalidUTF8 error = errors.New("dcbor: invalid UTF-8 in text string")

	// ErrNonNFCText is returned when a text string is not in Unicode
	// Normalization Form C.
	ErrNonNFCText error = errors.New("dcbor: text string is not NFC")

	// ErrDuplicateMapKey is returned when a map contains two entries
	// with byte-equal encoded keys.
	ErrDuplicateMapKey error = errors.New("dcbor: duplicate map key")

	// ErrMapKeysOutOfOrder is returned when a decoded map key is not
	// strictly greater (bytewise, over its encoded form) than the
	// previous key.
	ErrMapKeysOutOfOrder error = errors.New("dcbor: map keys not in canonical order")

	// ErrDisallowedSimpleValue is returned for any simple value other
	// than false, true and null.
	ErrDisallowedSimpleValue error = errors.New("dcbor: disallowed simple value")

	// ErrForbiddenTag is returned when tag 55799 (self-describe CBOR)
	// is observed.
	ErrForbiddenTag error = errors.New("dcbor: forbidden tag")

	// ErrTrailingData is returned by whole-input decoding when bytes
	// remain after the top-level item.
	ErrTrailingData error = errors.New("dcbor: trailing data after top-level item")

	// ErrMaxDepthExceeded is returned when structural nesting exceeds
	// the configured recursion limit. This should only realistically be
	// seen on adversarial data trying to exhaust the stack.
	ErrMaxDepthExceeded error = errors.New("dcbor: max nesting depth exceeded")

	// ErrLengthExceedsInput is returned when a head claims more payload
	// than the input holds.
	ErrLengthExceedsInput error = errors.New("dcbor: length exceeds remaining input")

	// ErrContainerTooLarge is returned when a container length exceeds
	// configured Decoder limits.
	ErrContainerTooLarge error = errors.New("dcbor: container too large")

	// ErrIntegerOutOfRange is returned when an integer cannot be
	// represented in the [-2^64, 2^64-1] band.
	ErrIntegerOutOfRange error = errors.New("dcbor: integer out of representable range")
)

// DecodeError wraps a decode failure with the byte offset at which it
// was detected. Unwrap exposes the underlying kind so callers can match
// with errors.Is; the offset is diagnostic only and never part of
// error identity.
type DecodeError struct {
	Offset int
	err    error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return e.err.Error() + " at offset " + strconv.Itoa(e.Offset)
}

// Unwrap returns the error kind.
func (e *DecodeError) Unwrap() error { return e.err }

// TypeError is returned when an extraction accessor is applied to a
// Value of a different kind.
type TypeError struct {
	Method  Type // Type expected by the accessor
	Present Type // Type actually held
}

// Error implements the error interface
func (t TypeError) Error() string {
	return "dcbor: attempted to extract type " + quoteStr(t.Present.String()) + " with accessor for " + quoteStr(t.Method.String())
}

// IntOverflow is returned when a value does not fit the requested
// signed integer width.
type IntOverflow struct {
	Value         string // decimal rendering of the value
	FailedBitsize int    // the bit size that could not hold it
}

// Error implements the error interface
func (i IntOverflow) Error() string {
	return "dcbor: " + i.Value + " overflows int" + strconv.Itoa(i.FailedBitsize)
}

// UintOverflow is returned when a value does not fit the requested
// unsigned integer width.
type UintOverflow struct {
	Value         uint64 // value of the uint
	FailedBitsize int    // the bit size that couldn't fit the value
}

// Error implements the error interface
func (u UintOverflow) Error() string {
	return "dcbor: " + strconv.FormatUint(u.Value, 10) + " overflows uint" + strconv.Itoa(u.FailedBitsize)
}

// ConflictingRegistrationError is returned when a tag number is
// registered twice with different names.
type ConflictingRegistrationError struct {
	Tag      uint64
	Existing string
	Proposed string
}

// Error implements the error interface
func (c ConflictingRegistrationError) Error() string {
	return "dcbor: tag " + strconv.FormatUint(c.Tag, 10) + " already registered as " +
		quoteStr(c.Existing) + ", cannot register " + quoteStr(c.Proposed)
}

func quoteStr(s string) string { return strconv.Quote(s) }
