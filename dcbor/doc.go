// Package dcbor implements deterministic CBOR: the dCBOR application
// profile layered on CBOR Common Deterministic Encoding.
//
// The codec is bit-exact in both directions. Every conforming byte
// sequence decodes to exactly one Value and every Value encodes to
// exactly one byte sequence, so Decode(Encode(v)) == v and
// Encode(Decode(b)) == b over their valid domains. Anything outside the
// profile (indefinite lengths, non-minimal heads, unordered or
// duplicate map keys, non-shortest floats, non-canonical NaNs,
// unreduced integer-valued floats, negative zero, non-NFC text, extra
// simple values, tag 55799) is rejected on decode, never normalized.
//
// The package exposes three layers:
//
//   - Value construction and extraction: Uint, Int, Float, Str, Bin,
//     Array, FromMap, Tag and the matching accessors. Constructors
//     canonicalize (floats reduce to integers, text normalizes to NFC);
//     a Value that exists always satisfies the profile's invariants.
//   - Encode / Decode / DecodePrefix over []byte, plus a Decoder for
//     item sequences with configurable depth and container limits.
//   - Diagnostic, the RFC 8949 §8 textual rendering, with an optional
//     process-wide tag-name registry for readable tag output.
package dcbor
