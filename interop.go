// Package fixedid - interop.go converts between GUID and github.com/google/uuid.

package fixedid

import (
	"github.com/google/uuid"
)

// GUIDFromUUID converts an RFC 4122 UUID from github.com/google/uuid.
// Both are 16 bytes in the same order, so the conversion is a copy.
func GUIDFromUUID(u uuid.UUID) GUID {
	return GUID(u)
}

// RFC4122 returns g as a github.com/google/uuid UUID.
func (g GUID) RFC4122() uuid.UUID {
	return uuid.UUID(g)
}

// Version returns the RFC 4122 version nibble. Plain random GUIDs carry
// arbitrary values here; GUIDs from NewGUIDv4 report 4.
func (g GUID) Version() uuid.Version {
	return uuid.UUID(g).Version()
}

// ParseGUIDLenient accepts every form github.com/google/uuid understands:
// the canonical form, "urn:uuid:" prefixed, brace-wrapped, and 32 bare hex
// digits. Use ParseGUID when only the canonical form is acceptable.
func ParseGUIDLenient(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		sentinel := ErrInvalidCharacter
		if uuid.IsInvalidLengthError(err) {
			sentinel = ErrInvalidLength
		}
		return NilGUID, newParseError("guid", s, -1, sentinel, err.Error())
	}
	return GUID(u), nil
}
