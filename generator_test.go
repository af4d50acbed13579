package fixedid

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
)

// TestNewWithConfig tests configuration validation
func TestNewWithConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"Default", DefaultConfig(), false},
		{"Time seeded", Config{Source: SourceTimeSeeded}, false},
		{"Reader", Config{Source: SourceReader, Reader: strings.NewReader("x")}, false},
		{"Reader missing", Config{Source: SourceReader}, true},
		{"Reader with crypto", Config{Source: SourceCrypto, Reader: strings.NewReader("x")}, true},
		{"Unknown source", Config{Source: Source(42)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewWithConfig(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewWithConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("error %v does not wrap ErrInvalidConfig", err)
				}
				var cerr *ConfigError
				if !errors.As(err, &cerr) {
					t.Errorf("error %T is not *ConfigError", err)
				}
				return
			}
			if gen.Source() != tt.cfg.Source {
				t.Errorf("Source() = %v, want %v", gen.Source(), tt.cfg.Source)
			}
		})
	}
}

// TestGeneratorSources tests that every source yields distinct, non-nil IDs
func TestGeneratorSources(t *testing.T) {
	for _, src := range []Source{SourceCrypto, SourceTimeSeeded} {
		t.Run(src.String(), func(t *testing.T) {
			gen, err := NewWithConfig(Config{Source: src})
			if err != nil {
				t.Fatalf("NewWithConfig() error = %v", err)
			}

			seen := make(map[GUID]bool, 10000)
			for i := 0; i < 10000; i++ {
				g, err := gen.NewGUID()
				if err != nil {
					t.Fatalf("NewGUID() error = %v", err)
				}
				if seen[g] {
					t.Fatalf("duplicate GUID %s at iteration %d", g, i)
				}
				seen[g] = true
			}

			u, err := gen.NewUUID()
			if err != nil || u.IsNil() {
				t.Errorf("NewUUID() = %s, %v", u, err)
			}
			id, err := gen.NewID()
			if err != nil || id.IsNil() {
				t.Errorf("NewID() = %s, %v", id, err)
			}
		})
	}
}

// TestGeneratorReader tests that a supplied reader is used verbatim
func TestGeneratorReader(t *testing.T) {
	src := sequentialBytes()
	gen, err := NewWithConfig(Config{Source: SourceReader, Reader: bytes.NewReader(src), EnableMetrics: true})
	if err != nil {
		t.Fatalf("NewWithConfig() error = %v", err)
	}

	g, err := gen.NewGUID()
	if err != nil {
		t.Fatalf("NewGUID() error = %v", err)
	}
	if g != GUID(src[:16]) {
		t.Errorf("NewGUID() = %x, want %x", g[:], src[:16])
	}

	u, err := gen.NewUUID()
	if err != nil {
		t.Fatalf("NewUUID() error = %v", err)
	}
	if u != UUID(src[16:48]) {
		t.Errorf("NewUUID() = %x, want %x", u[:], src[16:48])
	}

	// 16 bytes remain; an ID needs 64.
	_, err = gen.NewID()
	if !errors.Is(err, ErrRandomSource) {
		t.Fatalf("NewID() error = %v, want ErrRandomSource", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("NewID() error = %v, want io.ErrUnexpectedEOF in chain", err)
	}
	var serr *SourceError
	if !errors.As(err, &serr) || serr.Want != IDSize || serr.Got != 16 {
		t.Errorf("SourceError = %+v, want Want=64 Got=16", serr)
	}

	m := gen.GetMetrics()
	if m.Generated != 2 || m.BytesRead != 64 || m.SourceErrors != 1 {
		t.Errorf("GetMetrics() = %+v, want Generated=2 BytesRead=64 SourceErrors=1", m)
	}

	gen.ResetMetrics()
	if m := gen.GetMetrics(); m != (Metrics{}) {
		t.Errorf("after ResetMetrics() = %+v", m)
	}
}

// TestGeneratorNewID tests that words are filled big-endian in order
func TestGeneratorNewID(t *testing.T) {
	gen, _ := NewWithConfig(Config{Source: SourceReader, Reader: bytes.NewReader(sequentialBytes())})

	id, err := gen.NewID()
	if err != nil {
		t.Fatalf("NewID() error = %v", err)
	}
	if id != IDFromBytes(sequentialBytes()) {
		t.Errorf("NewID() = %v, want words of 0x00..0x3f", id)
	}
}

// TestGeneratorMetricsDisabled tests that counters stay at zero
func TestGeneratorMetricsDisabled(t *testing.T) {
	gen, _ := NewWithConfig(Config{Source: SourceCrypto, EnableMetrics: false})
	for i := 0; i < 10; i++ {
		gen.NewGUID()
	}
	if m := gen.GetMetrics(); m != (Metrics{}) {
		t.Errorf("GetMetrics() = %+v, want zero", m)
	}
}

// TestNewGUIDBatch tests batch generation
func TestNewGUIDBatch(t *testing.T) {
	gen := New()

	tests := []struct {
		name  string
		count int
	}{
		{"Zero", 0},
		{"Negative", -5},
		{"Single", 1},
		{"Large batch", 5000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := gen.NewGUIDBatch(tt.count)
			if err != nil {
				t.Fatalf("NewGUIDBatch() error = %v", err)
			}
			want := tt.count
			if want < 0 {
				want = 0
			}
			if len(ids) != want {
				t.Fatalf("NewGUIDBatch() returned %d IDs, want %d", len(ids), want)
			}
			if got := len(Dedupe(ids)); got != want {
				t.Errorf("batch has %d unique IDs, want %d", got, want)
			}
		})
	}
}

// TestGeneratorConcurrency tests concurrent generation from a shared reader
func TestGeneratorConcurrency(t *testing.T) {
	gen, _ := NewWithConfig(Config{Source: SourceReader, Reader: Default().reader, EnableMetrics: true})

	const workers, perWorker = 8, 1000
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		all = make(map[GUID]bool, workers*perWorker)
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]GUID, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				g, err := gen.NewGUID()
				if err != nil {
					t.Errorf("NewGUID() error = %v", err)
					return
				}
				local = append(local, g)
			}
			mu.Lock()
			for _, g := range local {
				all[g] = true
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(all) != workers*perWorker {
		t.Errorf("got %d unique GUIDs, want %d", len(all), workers*perWorker)
	}
	if m := gen.GetMetrics(); m.Generated != workers*perWorker {
		t.Errorf("Generated = %d, want %d", m.Generated, workers*perWorker)
	}
}

// TestDefaultGenerator tests the package-level functions
func TestDefaultGenerator(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default() must return the same generator")
	}

	before := GetDefaultMetrics().Generated
	a := MustNewGUID()
	b := MustNewGUID()
	if a == b || a.IsNil() {
		t.Errorf("MustNewGUID() gave %s and %s", a, b)
	}
	if u := MustNewUUID(); u.IsNil() {
		t.Error("MustNewUUID() returned nil UUID")
	}
	if id := MustNewID(); id.IsNil() {
		t.Error("MustNewID() returned nil ID")
	}
	if got := GetDefaultMetrics().Generated - before; got < 4 {
		t.Errorf("default Generated grew by %d, want at least 4", got)
	}
}

// TestParseSource tests source names
func TestParseSource(t *testing.T) {
	tests := []struct {
		in      string
		want    Source
		wantErr bool
	}{
		{"crypto", SourceCrypto, false},
		{"", SourceCrypto, false},
		{"TIME", SourceTimeSeeded, false},
		{"time-seeded", SourceTimeSeeded, false},
		{"reader", 0, true},
		{"dice", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSource(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSource(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSource(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestTimeSeededReader tests that consecutive reads differ
func TestTimeSeededReader(t *testing.T) {
	var r timeSeededReader
	a := make([]byte, 13) // not a multiple of 8
	b := make([]byte, 13)
	if n, err := r.Read(a); n != 13 || err != nil {
		t.Fatalf("Read() = %d, %v", n, err)
	}
	r.Read(b)
	if bytes.Equal(a, b) {
		t.Error("two reads returned the same bytes")
	}
}

func BenchmarkNewGUID(b *testing.B) {
	gen := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := gen.NewGUID(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewGUID_TimeSeeded(b *testing.B) {
	gen, _ := NewWithConfig(Config{Source: SourceTimeSeeded})
	for i := 0; i < b.N; i++ {
		if _, err := gen.NewGUID(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewGUIDBatch_1000(b *testing.B) {
	gen := New()
	for i := 0; i < b.N; i++ {
		if _, err := gen.NewGUIDBatch(1000); err != nil {
			b.Fatal(err)
		}
	}
}
