// Package fixedid - fixed.go holds the width-independent core shared by every
// identifier type: ordering, the all-zero sentinel, hashing and the base64
// codec. Each concrete type hands its backing array to these helpers as a
// byte slice.

package fixedid

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
)

// b64 is the one encoding used for every identifier: standard alphabet,
// padded, and strict about non-zero trailing bits so each ID has exactly
// one accepted base64 spelling.
var b64 = base64.StdEncoding.Strict()

// base64Len returns the padded base64 length for n raw bytes.
func base64Len(n int) int {
	return 4 * ((n + 2) / 3)
}

// compareBytes orders two equal-length buffers as big-endian unsigned
// integers: the first differing byte decides.
func compareBytes(a, b []byte) int {
	return bytes.Compare(a, b)
}

// isZero reports whether every byte is zero.
func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// hashBytes XOR-folds each byte into a 64-bit accumulator at a shift derived
// from its index. Not cryptographic; for in-memory hash placement only.
func hashBytes(b []byte) uint64 {
	var h uint64
	for i, c := range b {
		h ^= uint64(c) << (8 * (i % 8))
	}
	return h
}

// encodeBase64 returns the padded base64 form of b.
func encodeBase64(b []byte) string {
	return b64.EncodeToString(b)
}

// decodeBase64 decodes s into dst, which must have the identifier's raw size.
// s must be exactly base64Len(len(dst)) characters. On error dst may hold
// partial output; callers decode into a scratch array and only copy it out on
// success.
func decodeBase64(dst []byte, s string) error {
	want := base64Len(len(dst))
	if len(s) != want {
		return newLengthError("base64", s, want)
	}
	// The stdlib decoder silently skips CR and LF; the wire form never has them.
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return newParseError("base64", s, i, ErrInvalidBase64, "line breaks are not allowed")
	}

	buf := make([]byte, b64.DecodedLen(len(s)))
	n, err := b64.Decode(buf, []byte(s))
	if err != nil {
		offset := -1
		if ce, ok := err.(base64.CorruptInputError); ok {
			offset = int(ce)
		}
		return newParseError("base64", s, offset, ErrInvalidBase64, err.Error())
	}
	if n != len(dst) {
		return newParseError("base64", s, -1, ErrInvalidLength, "decoded size does not match identifier width")
	}
	copy(dst, buf[:n])
	return nil
}

// checkRawLength validates an exact-length binary payload.
func checkRawLength(b []byte, want int) error {
	if len(b) != want {
		return newParseError("binary", "", -1, ErrInvalidLength,
			fmt.Sprintf("want %d bytes, got %d", want, len(b)))
	}
	return nil
}
