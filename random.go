// Package fixedid - random.go provides the random byte sources behind the
// New* constructors.

package fixedid

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"time"
)

// Source selects where a Generator draws its random bytes from.
type Source int

const (
	// SourceCrypto reads from crypto/rand. This is the default.
	SourceCrypto Source = iota

	// SourceTimeSeeded builds a fresh PCG generator for every read, seeded
	// from the wall clock's nanoseconds and a process-wide call counter.
	// It needs no lock, but gives no cryptographic guarantee: two processes
	// started in the same nanosecond can produce the same stream.
	SourceTimeSeeded

	// SourceReader reads from the io.Reader supplied in Config.Reader.
	// Reads are serialised because arbitrary readers are not assumed to be
	// safe for concurrent use.
	SourceReader
)

// String returns the flag spelling of the source.
func (s Source) String() string {
	switch s {
	case SourceCrypto:
		return "crypto"
	case SourceTimeSeeded:
		return "time"
	case SourceReader:
		return "reader"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// ParseSource parses "crypto" or "time". The reader source cannot be
// selected by name because it needs a Config.Reader.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(s) {
	case "crypto", "":
		return SourceCrypto, nil
	case "time", "time-seeded":
		return SourceTimeSeeded, nil
	default:
		return 0, newConfigError("Source", s, "must be crypto or time")
	}
}

// seedCounter separates seeds of reads that land in the same clock tick.
var seedCounter atomic.Uint64

// timeSeededReader fills buffers from a per-call PCG generator.
type timeSeededReader struct{}

func (timeSeededReader) Read(p []byte) (int, error) {
	r := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), seedCounter.Add(1)))

	var word [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(word[:], r.Uint64())
		copy(p[i:], word[:])
	}
	return len(p), nil
}

// readerFor returns the reader backing a source. SourceReader is resolved by
// the caller from Config.Reader.
func readerFor(s Source) io.Reader {
	if s == SourceTimeSeeded {
		return timeSeededReader{}
	}
	return crand.Reader
}
