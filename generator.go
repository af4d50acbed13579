// Package fixedid provides fixed-width, array-backed identifiers: random
// 128-bit GUIDs, 256-bit UUIDs and 512-bit word-backed IDs.
//
// # Overview
//
// Every identifier is a plain value type:
//   - Comparable with == and usable as a map key
//   - Totally ordered by Compare (big-endian unsigned integer order)
//   - The all-zero value is the reserved "nil" sentinel (IsNil)
//   - Encodable as padded standard base64; GUIDs also as the canonical
//     xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx string
//
// # Parsing
//
// Each encoding has two parse entry points:
//
//	g, err := fixedid.ParseGUID(s)    // explicit error with context
//	g := fixedid.GUIDFromString(s)    // nil GUID on any failure
//	if g.IsNil() { ... }
//
// The sentinel form suits storage defaults and callers that only need
// "valid or not"; the error form says what was wrong and where.
//
// # Generation
//
//	// Package-level functions use a lazily created default Generator
//	g, err := fixedid.NewGUID()
//
//	// Custom source
//	cfg := fixedid.DefaultConfig()
//	cfg.Source = fixedid.SourceTimeSeeded
//	gen, err := fixedid.NewWithConfig(cfg)
//	id, err := gen.NewID()
package fixedid

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Config holds configuration options for a Generator.
type Config struct {
	// Source selects the random byte source.
	// Default: SourceCrypto
	Source Source

	// Reader supplies random bytes when Source is SourceReader.
	// It must be nil for the other sources.
	Reader io.Reader

	// EnableMetrics determines whether to collect generation counters.
	// Default: true
	EnableMetrics bool
}

// DefaultConfig returns a Config reading from crypto/rand with metrics on.
func DefaultConfig() Config {
	return Config{
		Source:        SourceCrypto,
		EnableMetrics: true,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
//
// Validation rules:
//   - Source must be one of the declared sources
//   - Reader must be set exactly when Source is SourceReader
func (c *Config) Validate() error {
	switch c.Source {
	case SourceCrypto, SourceTimeSeeded:
		if c.Reader != nil {
			return newConfigError("Reader", fmt.Sprintf("%T", c.Reader), "only allowed with SourceReader")
		}
	case SourceReader:
		if c.Reader == nil {
			return newConfigError("Reader", "nil", "required with SourceReader")
		}
	default:
		return newConfigError("Source", c.Source.String(), "unknown source")
	}
	return nil
}

// Metrics holds runtime counters for monitoring.
//
// All counters are monotonically increasing and updated atomically.
type Metrics struct {
	Generated    int64 // Identifiers successfully generated
	BytesRead    int64 // Random bytes consumed from the source
	SourceErrors int64 // Failed or short reads
}

// Generator creates random identifiers from a configured source.
//
// # Thread Safety
//
// Generator is safe for concurrent use. crypto/rand and the time-seeded
// source need no locking; a caller-supplied reader is guarded by a mutex
// held only for the duration of one read.
type Generator struct {
	mu      sync.Mutex // Serialises reads when lock is set
	lock    bool
	source  Source
	reader  io.Reader
	metrics bool

	generated    atomic.Int64
	bytesRead    atomic.Int64
	sourceErrors atomic.Int64
}

// New creates a Generator with DefaultConfig.
func New() *Generator {
	g, _ := NewWithConfig(DefaultConfig())
	return g
}

// NewWithConfig creates a Generator with custom configuration.
//
// Returns *ConfigError (wrapping ErrInvalidConfig) if cfg is invalid.
func NewWithConfig(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		source:  cfg.Source,
		metrics: cfg.EnableMetrics,
	}
	if cfg.Source == SourceReader {
		g.reader = cfg.Reader
		g.lock = true
	} else {
		g.reader = readerFor(cfg.Source)
	}
	return g, nil
}

// Source returns the configured source kind.
func (g *Generator) Source() Source {
	return g.source
}

// fill reads exactly len(p) random bytes.
func (g *Generator) fill(p []byte) error {
	if g.lock {
		g.mu.Lock()
		defer g.mu.Unlock()
	}

	n, err := io.ReadFull(g.reader, p)
	if g.metrics {
		g.bytesRead.Add(int64(n))
	}
	if err != nil {
		if g.metrics {
			g.sourceErrors.Add(1)
		}
		return &SourceError{Source: g.source, Want: len(p), Got: n, Err: err}
	}
	return nil
}

func (g *Generator) count(n int) {
	if g.metrics {
		g.generated.Add(int64(n))
	}
}

// NewGUID returns a GUID with all 128 bits drawn from the source.
func (g *Generator) NewGUID() (GUID, error) {
	var id GUID
	if err := g.fill(id[:]); err != nil {
		return GUID{}, err
	}
	g.count(1)
	return id, nil
}

// NewGUIDv4 returns a random GUID with the RFC 4122 version 4 and variant
// bits set, for consumers that validate them.
func (g *Generator) NewGUIDv4() (GUID, error) {
	id, err := g.NewGUID()
	if err != nil {
		return GUID{}, err
	}
	id[6] = (id[6] & 0x0f) | 0x40
	id[8] = (id[8] & 0x3f) | 0x80
	return id, nil
}

// NewUUID returns a UUID with all 256 bits drawn from the source.
func (g *Generator) NewUUID() (UUID, error) {
	var id UUID
	if err := g.fill(id[:]); err != nil {
		return UUID{}, err
	}
	g.count(1)
	return id, nil
}

// NewID returns an ID whose eight words are each drawn from the source.
func (g *Generator) NewID() (ID, error) {
	var buf [IDSize]byte
	if err := g.fill(buf[:]); err != nil {
		return ID{}, err
	}
	var id ID
	for i := range id {
		id[i] = binary.BigEndian.Uint64(buf[i*8:])
	}
	g.count(1)
	return id, nil
}

// NewGUIDBatch generates count GUIDs with a single read from the source.
//
// Example:
//
//	ids, err := gen.NewGUIDBatch(1000)
func (g *Generator) NewGUIDBatch(count int) ([]GUID, error) {
	if count <= 0 {
		return []GUID{}, nil
	}

	buf := make([]byte, count*GUIDSize)
	if err := g.fill(buf); err != nil {
		return nil, err
	}

	ids := make([]GUID, count)
	for i := range ids {
		copy(ids[i][:], buf[i*GUIDSize:])
	}
	g.count(count)
	return ids, nil
}

// GetMetrics returns a snapshot of the counters.
func (g *Generator) GetMetrics() Metrics {
	return Metrics{
		Generated:    g.generated.Load(),
		BytesRead:    g.bytesRead.Load(),
		SourceErrors: g.sourceErrors.Load(),
	}
}

// ResetMetrics zeroes all counters.
func (g *Generator) ResetMetrics() {
	g.generated.Store(0)
	g.bytesRead.Store(0)
	g.sourceErrors.Store(0)
}

// ============================================================================
// Default Generator
// ============================================================================

// The default generator reads from crypto/rand and is created on first use.
var (
	defaultGenerator     *Generator
	defaultGeneratorOnce sync.Once
)

// Default returns the process-wide Generator used by the package-level
// New* functions.
func Default() *Generator {
	defaultGeneratorOnce.Do(func() {
		defaultGenerator = New()
	})
	return defaultGenerator
}

// NewGUID generates a random GUID using the default generator.
//
// Example:
//
//	g, err := fixedid.NewGUID()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g) // 550e8400-e29b-41d4-a716-446655440000
func NewGUID() (GUID, error) {
	return Default().NewGUID()
}

// NewGUIDv4 generates an RFC 4122 version 4 GUID using the default generator.
func NewGUIDv4() (GUID, error) {
	return Default().NewGUIDv4()
}

// NewUUID generates a random 256-bit UUID using the default generator.
func NewUUID() (UUID, error) {
	return Default().NewUUID()
}

// NewID generates a random 512-bit ID using the default generator.
func NewID() (ID, error) {
	return Default().NewID()
}

// MustNewGUID is like NewGUID but panics if the source fails.
func MustNewGUID() GUID {
	g, err := NewGUID()
	if err != nil {
		panic(err)
	}
	return g
}

// MustNewUUID is like NewUUID but panics if the source fails.
func MustNewUUID() UUID {
	u, err := NewUUID()
	if err != nil {
		panic(err)
	}
	return u
}

// MustNewID is like NewID but panics if the source fails.
func MustNewID() ID {
	id, err := NewID()
	if err != nil {
		panic(err)
	}
	return id
}

// GetDefaultMetrics returns metrics from the default generator.
func GetDefaultMetrics() Metrics {
	return Default().GetMetrics()
}
