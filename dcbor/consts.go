package dcbor

// CBOR major types (3 bits)
const (
	majorTypeUint   = 0 // unsigned integer
	majorTypeNegInt = 1 // negative integer
	majorTypeBytes  = 2 // byte string
	majorTypeText   = 3 // text string (UTF-8, NFC)
	majorTypeArray  = 4 // array
	majorTypeMap    = 5 // map
	majorTypeTag    = 6 // semantic tag
	majorTypeSimple = 7 // float, simple values
)

// Additional info values (5 bits)
const (
	// 0-23: literal value
	addInfoDirect     = 23 // max direct value
	addInfoUint8      = 24 // 1-byte uint8 follows
	addInfoUint16     = 25 // 2-byte uint16 follows
	addInfoUint32     = 26 // 4-byte uint32 follows
	addInfoUint64     = 27 // 8-byte uint64 follows
	addInfoIndefinite = 31 // indefinite length (never valid here)
)

// Simple values in major type 7. Only false, true and null are
// admitted by this profile; everything else is rejected on decode.
const (
	simpleFalse     = 20
	simpleTrue      = 21
	simpleNull      = 22
	simpleUndefined = 23
	simpleFloat16   = 25
	simpleFloat32   = 26
	simpleFloat64   = 27
	simpleBreak     = 31
)

// tagSelfDescribeCBOR (0xd9d9f7) defeats the bit-exact guarantee and is
// rejected on decode and unconstructable on the encode side.
const tagSelfDescribeCBOR = 55799

// canonicalNaNBits is the sole admissible NaN: the half-precision
// quiet NaN.
const canonicalNaNBits uint16 = 0x7e00

// maxMagnitude is 2^64 as a float64. Finite integer-valued floats in
// [-maxMagnitude, maxMagnitude) reduce to the integer major types.
const maxMagnitude = 18446744073709551616.0

// makeByte creates a CBOR initial byte from major type and additional info
func makeByte(majorType, addInfo uint8) byte {
	return byte((majorType << 5) | addInfo)
}

// getMajorType extracts the major type from a CBOR initial byte
func getMajorType(b byte) uint8 {
	return (b >> 5) & 0x07
}

// getAddInfo extracts the additional info from a CBOR initial byte
func getAddInfo(b byte) uint8 {
	return b & 0x1f
}
