// Package fixedid - id.go provides the 512-bit ID, stored as eight 64-bit
// words instead of bytes.

package fixedid

import (
	"cmp"
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math/bits"
)

const (
	// IDBits is the width of an ID.
	IDBits = 512

	// IDWords is the number of 64-bit words backing an ID.
	IDWords = IDBits / 64

	// IDSize is the raw binary size of an ID in bytes.
	IDSize = IDBits / 8
)

// ID is a 512-bit identifier stored as eight uint64 words.
//
// # Word Order
//
// Word 0 is the most significant. Comparison walks the words from index 0,
// comparing each as an unsigned integer. Every serialized form (Bytes,
// Base64, MarshalBinary, Value) writes the words in index order, each
// big-endian, so the order of IDs equals the byte-wise order of their
// serialized forms, and equals the order of GUID and UUID over their bytes.
//
// Word-at-a-time comparison and nil checks touch 8 values instead of 64.
//
// The zero value is the nil ID.
type ID [IDWords]uint64

// NilID is the all-zero sentinel.
var NilID ID

// ParseIDBase64 parses the 88-character padded base64 form.
//
// Returns *ParseError wrapping ErrInvalidLength or ErrInvalidBase64.
func ParseIDBase64(s string) (ID, error) {
	var buf [IDSize]byte
	if err := decodeBase64(buf[:], s); err != nil {
		return NilID, err
	}
	return IDFromBytes(buf[:]), nil
}

// IDFromBase64 is ParseIDBase64 with the error collapsed into the nil ID.
func IDFromBase64(s string) ID {
	id, _ := ParseIDBase64(s)
	return id
}

// IDFromBytes reads the first 64 bytes of b as eight big-endian words.
// The caller guarantees len(b) >= 64; shorter input panics.
func IDFromBytes(b []byte) ID {
	_ = b[IDSize-1] // bounds check hint
	var id ID
	for i := range id {
		id[i] = binary.BigEndian.Uint64(b[i*8:])
	}
	return id
}

// ParseIDBytes reads b, which must be exactly 64 bytes.
func ParseIDBytes(b []byte) (ID, error) {
	if err := checkRawLength(b, IDSize); err != nil {
		return NilID, err
	}
	return IDFromBytes(b), nil
}

// IDFromWords builds an ID from its words, most significant first.
func IDFromWords(words [IDWords]uint64) ID {
	return ID(words)
}

// Words returns the backing words, most significant first.
func (id ID) Words() [IDWords]uint64 {
	return [IDWords]uint64(id)
}

// String returns the base64 form.
func (id ID) String() string {
	return id.Base64()
}

// Base64 returns the 88-character padded standard base64 form of Bytes.
func (id ID) Base64() string {
	var buf [IDSize]byte
	id.putBytes(buf[:])
	return encodeBase64(buf[:])
}

// Bytes returns the 64-byte big-endian serialization.
func (id ID) Bytes() []byte {
	b := make([]byte, IDSize)
	id.putBytes(b)
	return b
}

func (id ID) putBytes(b []byte) {
	for i, w := range id {
		binary.BigEndian.PutUint64(b[i*8:], w)
	}
}

// IsNil reports whether every word is zero.
func (id ID) IsNil() bool {
	for _, w := range id {
		if w != 0 {
			return false
		}
	}
	return true
}

// Clear resets id to the nil ID.
func (id *ID) Clear() {
	*id = NilID
}

// Compare returns -1, 0 or +1, deciding on the first differing word.
func (id ID) Compare(other ID) int {
	for i := range id {
		if id[i] != other[i] {
			return cmp.Compare(id[i], other[i])
		}
	}
	return 0
}

// Less reports whether id sorts before other.
func (id ID) Less(other ID) bool {
	return id.Compare(other) < 0
}

// Equal reports whether id and other hold the same words.
func (id ID) Equal(other ID) bool {
	return id == other
}

// Hash returns the same value as hashing Bytes() byte by byte: a big-endian
// word's bytes land at shifts 56..0, which is the word byte-reversed.
func (id ID) Hash() uint64 {
	var h uint64
	for _, w := range id {
		h ^= bits.ReverseBytes64(w)
	}
	return h
}

// Layout returns LayoutID.
func (ID) Layout() Layout {
	return LayoutID
}

// MarshalText implements encoding.TextMarshaler using base64.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.Base64()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text yields the
// nil ID.
func (id *ID) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*id = NilID
		return nil
	}
	parsed, err := ParseIDBase64(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID) UnmarshalBinary(data []byte) error {
	parsed, err := ParseIDBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Scan implements sql.Scanner. It accepts 64 raw bytes, base64 text as
// string or []byte, and nil.
func (id *ID) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*id = NilID
		return nil
	case []byte:
		if len(v) == IDSize {
			*id = IDFromBytes(v)
			return nil
		}
		return id.UnmarshalText(v)
	case string:
		return id.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("%w: cannot scan %T into ID", ErrUnsupportedScan, value)
	}
}

// Value implements driver.Valuer, storing the 64-byte serialization.
func (id ID) Value() (driver.Value, error) {
	return id.Bytes(), nil
}
