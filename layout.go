// Package fixedid - layout.go describes the storage width of each identifier
// type: how many bits it carries, what unit it stores them in, and how long
// its encoded forms are.

package fixedid

import (
	"fmt"
	"strings"
)

// Layout describes a fixed-width identifier.
//
// The identifier types in this package are concrete arrays, so a Layout never
// drives storage. It exists to state the width contract in one place, to let
// tooling (the CLI, tests) reason about widths generically, and to reject
// widths that cannot be stored whole in the chosen unit.
//
//	┌──────────┬──────┬───────────┬───────┬────────┬────────┐
//	│ Layout   │ Bits │ Unit      │ Bytes │ Units  │ Base64 │
//	├──────────┼──────┼───────────┼───────┼────────┼────────┤
//	│ GUID     │  128 │ byte      │    16 │     16 │     24 │
//	│ UUID     │  256 │ byte      │    32 │     32 │     44 │
//	│ ID       │  512 │ 64-bit    │    64 │      8 │     88 │
//	└──────────┴──────┴───────────┴───────┴────────┴────────┘
type Layout struct {
	// Name is a short lowercase label, e.g. "guid".
	Name string

	// Bits is the identifier width.
	Bits int

	// WordBytes is the size of one storage unit: 1 for byte-backed types,
	// 8 for the word-backed ID.
	WordBytes int
}

// Pre-defined layouts for the types in this package.
var (
	LayoutGUID = Layout{Name: "guid", Bits: GUIDBits, WordBytes: 1}
	LayoutUUID = Layout{Name: "uuid", Bits: UUIDBits, WordBytes: 1}
	LayoutID   = Layout{Name: "id", Bits: IDBits, WordBytes: 8}
)

// Layouts lists the pre-defined layouts from narrowest to widest.
func Layouts() []Layout {
	return []Layout{LayoutGUID, LayoutUUID, LayoutID}
}

// Validate checks that the layout describes a storable fixed-width ID.
//
// A valid layout must:
//   - Have a positive bit length
//   - Use a storage unit of 1, 2, 4 or 8 bytes
//   - Have a bit length that is a whole number of storage units
func (l Layout) Validate() error {
	if l.Bits <= 0 {
		return fmt.Errorf("%w: bits must be positive, got %d", ErrInvalidLayout, l.Bits)
	}
	switch l.WordBytes {
	case 1, 2, 4, 8:
	default:
		return fmt.Errorf("%w: word size must be 1, 2, 4 or 8 bytes, got %d", ErrInvalidLayout, l.WordBytes)
	}
	if l.Bits%(8*l.WordBytes) != 0 {
		return fmt.Errorf("%w: %d bits is not a multiple of the %d-bit word",
			ErrInvalidLayout, l.Bits, 8*l.WordBytes)
	}
	return nil
}

// ByteLength returns the raw binary size in bytes.
func (l Layout) ByteLength() int {
	return l.Bits / 8
}

// ArrayLength returns the number of storage units.
func (l Layout) ArrayLength() int {
	return l.ByteLength() / l.WordBytes
}

// EncodedLength returns the exact base64 length, 4*ceil(bytes/3).
func (l Layout) EncodedLength() int {
	return base64Len(l.ByteLength())
}

// String returns a one-line summary, e.g. "guid: 128 bits, 16 x 1-byte units, base64 24".
func (l Layout) String() string {
	return fmt.Sprintf("%s: %d bits, %d x %d-byte units, base64 %d",
		l.Name, l.Bits, l.ArrayLength(), l.WordBytes, l.EncodedLength())
}

// LayoutByName finds a pre-defined layout by name, case-insensitively.
func LayoutByName(name string) (Layout, bool) {
	for _, l := range Layouts() {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return Layout{}, false
}

// layoutForEncodedLength finds the layout whose base64 form has length n.
func layoutForEncodedLength(n int) (Layout, bool) {
	for _, l := range Layouts() {
		if l.EncodedLength() == n {
			return l, true
		}
	}
	return Layout{}, false
}
