package dcbor

import (
	"bytes"
	"slices"
	"sort"
)

type mapEntry struct {
	key Value
	val Value
	enc []byte // canonical encoding of key; the sort key
}

// Map is a finalized deterministic map. Entries are held sorted by the
// bytewise lexicographic order of their encoded keys, which is exactly
// the order the encoder emits. A Map is immutable; build one with a
// MapBuilder.
type Map struct {
	entries []mapEntry
}

// MapBuilder accumulates key/value pairs for a Map. Each key is
// serialized on insertion and the encoded form is the identity used for
// duplicate detection and ordering, so insertion order never leaks into
// the wire form.
type MapBuilder struct {
	entries []mapEntry
}

// NewMapBuilder returns an empty builder.
func NewMapBuilder() *MapBuilder { return &MapBuilder{} }

// search locates the slot for an encoded key within sorted entries.
func search(entries []mapEntry, enc []byte) (int, bool) {
	i := sort.Search(len(entries), func(i int) bool {
		return bytes.Compare(entries[i].enc, enc) >= 0
	})
	if i < len(entries) && bytes.Equal(entries[i].enc, enc) {
		return i, true
	}
	return i, false
}

// Insert adds a key/value pair. A key whose encoded form is already
// present yields ErrDuplicateMapKey.
func (b *MapBuilder) Insert(k, v Value) error {
	enc := Encode(k)
	i, found := search(b.entries, enc)
	if found {
		return ErrDuplicateMapKey
	}
	b.entries = slices.Insert(b.entries, i, mapEntry{key: k, val: v, enc: enc})
	return nil
}

// Build finalizes the accumulated entries into an immutable Map. The
// builder must not be used afterwards.
func (b *MapBuilder) Build() *Map {
	m := &Map{entries: b.entries}
	b.entries = nil
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.entries) }

// Get returns the value stored under k.
func (m *Map) Get(k Value) (Value, bool) {
	i, found := search(m.entries, Encode(k))
	if !found {
		return Value{}, false
	}
	return m.entries[i].val, true
}

// Range calls f for each entry in canonical key order until f returns
// false.
func (m *Map) Range(f func(k, v Value) bool) {
	for _, e := range m.entries {
		if !f(e.key, e.val) {
			return
		}
	}
}

// appendSorted appends an entry that is known to sort strictly after
// every existing entry. The decoder uses this after verifying key order
// against the input spans.
func (m *Map) appendSorted(k, v Value, enc []byte) {
	m.entries = append(m.entries, mapEntry{key: k, val: v, enc: enc})
}
