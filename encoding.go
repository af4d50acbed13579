// Package fixedid - encoding.go provides the hex tables behind the canonical
// GUID string form.
//
// # Performance Optimizations
//
//   - Pre-computed 256-entry lookup table for O(1) character-to-nibble mapping
//   - Fixed-size stack buffers for formatting; one allocation per String()
//
// # Thread Safety
//
// The lookup table is initialized once at package init time and is read-only
// afterwards, making it safe for concurrent access without synchronization.
package fixedid

// Hex uses lowercase hexadecimal characters on output.
const encodeHexMap = "0123456789abcdef"

// invalidNibble marks characters that are not hex digits.
const invalidNibble = 0xFF

// decodeHexMap maps a character to its nibble value, or invalidNibble.
var decodeHexMap [256]byte

// init builds the decode map. Both cases are accepted on input.
func init() {
	for i := 0; i < 256; i++ {
		decodeHexMap[i] = invalidNibble
	}
	for i := 0; i < len(encodeHexMap); i++ {
		decodeHexMap[encodeHexMap[i]] = byte(i)
		if encodeHexMap[i] >= 'a' && encodeHexMap[i] <= 'f' {
			decodeHexMap[encodeHexMap[i]-32] = byte(i)
		}
	}
}

// putHex writes the lowercase hex form of src into dst, which must hold
// 2*len(src) bytes.
func putHex(dst, src []byte) {
	for i, b := range src {
		dst[2*i] = encodeHexMap[b>>4]
		dst[2*i+1] = encodeHexMap[b&0x0F]
	}
}

// guidHyphens are the separator offsets of the canonical 8-4-4-4-12 form.
var guidHyphens = [4]int{8, 13, 18, 23}

func isGUIDHyphen(i int) bool {
	return i == guidHyphens[0] || i == guidHyphens[1] || i == guidHyphens[2] || i == guidHyphens[3]
}

// encodeGUID formats 16 bytes as xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func encodeGUID(g *[GUIDSize]byte) string {
	var buf [GUIDStringLen]byte
	putHex(buf[0:8], g[0:4])
	buf[8] = '-'
	putHex(buf[9:13], g[4:6])
	buf[13] = '-'
	putHex(buf[14:18], g[6:8])
	buf[18] = '-'
	putHex(buf[19:23], g[8:10])
	buf[23] = '-'
	putHex(buf[24:36], g[10:16])
	return string(buf[:])
}

// decodeGUID parses the canonical form into a fresh array. Nothing is
// returned on failure, so a rejected input never leaks partially decoded
// bytes into the caller's value.
func decodeGUID(s string) ([GUIDSize]byte, error) {
	var out [GUIDSize]byte
	if len(s) != GUIDStringLen {
		return [GUIDSize]byte{}, newLengthError("guid", s, GUIDStringLen)
	}

	j := 0
	for i := 0; i < GUIDStringLen; {
		if isGUIDHyphen(i) {
			if s[i] != '-' {
				return [GUIDSize]byte{}, newParseError("guid", s, i, ErrInvalidSeparator, "expected '-'")
			}
			i++
			continue
		}

		hi := decodeHexMap[s[i]]
		if hi == invalidNibble {
			return [GUIDSize]byte{}, newParseError("guid", s, i, ErrInvalidCharacter, "not a hex digit")
		}
		lo := decodeHexMap[s[i+1]]
		if lo == invalidNibble {
			return [GUIDSize]byte{}, newParseError("guid", s, i+1, ErrInvalidCharacter, "not a hex digit")
		}
		out[j] = hi<<4 | lo
		j++
		i += 2
	}
	return out, nil
}
