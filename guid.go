// Package fixedid - guid.go provides the 128-bit GUID with its canonical
// hyphenated hex form on top of the shared base64 and byte operations.

package fixedid

import (
	"database/sql/driver"
	"fmt"
)

const (
	// GUIDBits is the width of a GUID.
	GUIDBits = 128

	// GUIDSize is the raw binary size of a GUID in bytes.
	GUIDSize = GUIDBits / 8

	// GUIDStringLen is the length of the canonical 8-4-4-4-12 form.
	GUIDStringLen = 36
)

// GUID is a 128-bit identifier stored as 16 bytes, most significant first.
//
// # Encodings
//
//   - Canonical: "550e8400-e29b-41d4-a716-446655440000" (String, ParseGUID)
//   - Base64:    "VQ6EAOKbQdSnFkRmVUQAAA==" (Base64, ParseGUIDBase64)
//   - Binary:    16 raw bytes (Bytes, GUIDFromBytes)
//
// # Interface Implementations
//
//   - fmt.Stringer: canonical form
//   - encoding.TextMarshaler/Unmarshaler: canonical form (used by JSON)
//   - encoding.BinaryMarshaler/Unmarshaler: 16 raw bytes
//   - sql.Scanner/driver.Valuer: 16 raw bytes (BLOB/BINARY(16) columns)
//
// The zero value is the nil GUID.
type GUID [GUIDSize]byte

// NilGUID is the all-zero sentinel.
var NilGUID GUID

// ============================================================================
// Parsing
// ============================================================================

// ParseGUID parses the canonical 36-character form. Hex digits may be in
// either case; the hyphens must sit at offsets 8, 13, 18 and 23.
//
// Returns *ParseError wrapping ErrInvalidLength, ErrInvalidCharacter or
// ErrInvalidSeparator. The returned GUID is the nil GUID on any error.
func ParseGUID(s string) (GUID, error) {
	b, err := decodeGUID(s)
	if err != nil {
		return NilGUID, err
	}
	return GUID(b), nil
}

// GUIDFromString is ParseGUID with the error collapsed into the nil GUID.
// Callers must check IsNil on the result.
func GUIDFromString(s string) GUID {
	g, _ := ParseGUID(s)
	return g
}

// ParseGUIDBase64 parses the 24-character padded base64 form.
func ParseGUIDBase64(s string) (GUID, error) {
	var g GUID
	if err := decodeBase64(g[:], s); err != nil {
		return NilGUID, err
	}
	return g, nil
}

// GUIDFromBase64 is ParseGUIDBase64 with the error collapsed into the nil GUID.
func GUIDFromBase64(s string) GUID {
	g, _ := ParseGUIDBase64(s)
	return g
}

// GUIDFromBytes copies the first 16 bytes of b verbatim.
//
// The caller guarantees len(b) >= 16; shorter input panics with an index
// out of range. Use ParseGUIDBytes for untrusted input.
func GUIDFromBytes(b []byte) GUID {
	return GUID(b[:GUIDSize])
}

// ParseGUIDBytes copies b, which must be exactly 16 bytes.
func ParseGUIDBytes(b []byte) (GUID, error) {
	if err := checkRawLength(b, GUIDSize); err != nil {
		return NilGUID, err
	}
	return GUID(b), nil
}

// ============================================================================
// Encodings
// ============================================================================

// String returns the lowercase canonical form.
//
// Example:
//
//	g.String() // "550e8400-e29b-41d4-a716-446655440000"
func (g GUID) String() string {
	return encodeGUID((*[GUIDSize]byte)(&g))
}

// Base64 returns the 24-character padded standard base64 form.
func (g GUID) Base64() string {
	return encodeBase64(g[:])
}

// Bytes returns a copy of the 16 raw bytes.
func (g GUID) Bytes() []byte {
	b := make([]byte, GUIDSize)
	copy(b, g[:])
	return b
}

// ============================================================================
// Sentinel, Ordering and Hashing
// ============================================================================

// IsNil reports whether g is the all-zero sentinel.
func (g GUID) IsNil() bool {
	return isZero(g[:])
}

// Clear resets g to the nil GUID.
func (g *GUID) Clear() {
	*g = NilGUID
}

// Compare returns -1, 0 or +1 comparing g and other as big-endian
// unsigned integers.
func (g GUID) Compare(other GUID) int {
	return compareBytes(g[:], other[:])
}

// Less reports whether g sorts before other.
func (g GUID) Less(other GUID) bool {
	return g.Compare(other) < 0
}

// Equal reports whether g and other hold the same bytes. Same as ==.
func (g GUID) Equal(other GUID) bool {
	return g == other
}

// Hash returns a non-cryptographic 64-bit hash of the bytes.
// Equal GUIDs hash equally.
func (g GUID) Hash() uint64 {
	return hashBytes(g[:])
}

// Layout returns LayoutGUID.
func (GUID) Layout() Layout {
	return LayoutGUID
}

// ============================================================================
// Marshaling
// ============================================================================

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text yields the
// nil GUID, so an empty JSON string round-trips to the zero value.
func (g *GUID) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*g = NilGUID
		return nil
	}
	parsed, err := ParseGUID(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (g GUID) MarshalBinary() ([]byte, error) {
	return g.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// Returns an error if data is not exactly 16 bytes.
func (g *GUID) UnmarshalBinary(data []byte) error {
	parsed, err := ParseGUIDBytes(data)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Scan implements sql.Scanner.
//
// Supported types:
//   - []byte of length 16: raw bytes from BLOB/BINARY(16) columns
//   - []byte or string of length 36: canonical text from CHAR(36) columns
//   - nil: the nil GUID
func (g *GUID) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*g = NilGUID
		return nil
	case []byte:
		if len(v) == GUIDSize {
			copy(g[:], v)
			return nil
		}
		return g.UnmarshalText(v)
	case string:
		return g.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("%w: cannot scan %T into GUID", ErrUnsupportedScan, value)
	}
}

// Value implements driver.Valuer, storing the 16 raw bytes. Byte-wise BLOB
// comparison in the database then agrees with Compare.
func (g GUID) Value() (driver.Value, error) {
	return g.Bytes(), nil
}
