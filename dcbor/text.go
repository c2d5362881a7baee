package dcbor

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// isUTF8Valid validates UTF-8 for a byte slice. It can be overridden by
// architecture-specific, SIMD-accelerated implementations via build tags.
var isUTF8Valid = func(b []byte) bool { return utf8.Valid(b) }

// normalizeNFC returns s in Unicode Normalization Form C. Input that is
// already NFC is returned unchanged without allocation.
func normalizeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// isNFC reports whether the byte slice is NFC-normalized UTF-8. The
// decoder only ever validates; it never rewrites text.
func isNFC(b []byte) bool {
	return norm.NFC.IsNormal(b)
}
