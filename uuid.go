// Package fixedid - uuid.go provides the 256-bit byte-backed UUID.

package fixedid

import (
	"database/sql/driver"
	"fmt"
)

const (
	// UUIDBits is the width of a UUID.
	UUIDBits = 256

	// UUIDSize is the raw binary size of a UUID in bytes.
	UUIDSize = UUIDBits / 8
)

// UUID is a 256-bit identifier stored as 32 bytes, most significant first.
//
// Unlike the RFC 4122 UUID it carries no version or variant bits: all 256
// bits are random. Its only text form is 44-character padded base64, which is
// also what String, MarshalText and JSON use.
//
// The zero value is the nil UUID.
type UUID [UUIDSize]byte

// NilUUID is the all-zero sentinel.
var NilUUID UUID

// ParseUUIDBase64 parses the 44-character padded base64 form.
//
// Returns *ParseError wrapping ErrInvalidLength or ErrInvalidBase64.
func ParseUUIDBase64(s string) (UUID, error) {
	var u UUID
	if err := decodeBase64(u[:], s); err != nil {
		return NilUUID, err
	}
	return u, nil
}

// UUIDFromBase64 is ParseUUIDBase64 with the error collapsed into the nil UUID.
func UUIDFromBase64(s string) UUID {
	u, _ := ParseUUIDBase64(s)
	return u
}

// UUIDFromBytes copies the first 32 bytes of b verbatim.
// The caller guarantees len(b) >= 32; shorter input panics.
func UUIDFromBytes(b []byte) UUID {
	return UUID(b[:UUIDSize])
}

// ParseUUIDBytes copies b, which must be exactly 32 bytes.
func ParseUUIDBytes(b []byte) (UUID, error) {
	if err := checkRawLength(b, UUIDSize); err != nil {
		return NilUUID, err
	}
	return UUID(b), nil
}

// String returns the base64 form.
func (u UUID) String() string {
	return u.Base64()
}

// Base64 returns the 44-character padded standard base64 form.
func (u UUID) Base64() string {
	return encodeBase64(u[:])
}

// Bytes returns a copy of the 32 raw bytes.
func (u UUID) Bytes() []byte {
	b := make([]byte, UUIDSize)
	copy(b, u[:])
	return b
}

// IsNil reports whether u is the all-zero sentinel.
func (u UUID) IsNil() bool {
	return isZero(u[:])
}

// Clear resets u to the nil UUID.
func (u *UUID) Clear() {
	*u = NilUUID
}

// Compare returns -1, 0 or +1 comparing u and other as big-endian
// unsigned integers.
func (u UUID) Compare(other UUID) int {
	return compareBytes(u[:], other[:])
}

// Less reports whether u sorts before other.
func (u UUID) Less(other UUID) bool {
	return u.Compare(other) < 0
}

// Equal reports whether u and other hold the same bytes.
func (u UUID) Equal(other UUID) bool {
	return u == other
}

// Hash returns a non-cryptographic 64-bit hash of the bytes.
func (u UUID) Hash() uint64 {
	return hashBytes(u[:])
}

// Layout returns LayoutUUID.
func (UUID) Layout() Layout {
	return LayoutUUID
}

// MarshalText implements encoding.TextMarshaler using base64.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.Base64()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text yields the
// nil UUID.
func (u *UUID) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*u = NilUUID
		return nil
	}
	parsed, err := ParseUUIDBase64(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (u UUID) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *UUID) UnmarshalBinary(data []byte) error {
	parsed, err := ParseUUIDBytes(data)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Scan implements sql.Scanner. It accepts 32 raw bytes, base64 text as
// string or []byte, and nil.
func (u *UUID) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*u = NilUUID
		return nil
	case []byte:
		if len(v) == UUIDSize {
			copy(u[:], v)
			return nil
		}
		return u.UnmarshalText(v)
	case string:
		return u.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("%w: cannot scan %T into UUID", ErrUnsupportedScan, value)
	}
}

// Value implements driver.Valuer, storing the 32 raw bytes.
func (u UUID) Value() (driver.Value, error) {
	return u.Bytes(), nil
}
