package fixedid

import (
	"math/big"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func drawGUID(t *rapid.T, label string) GUID {
	return GUID(rapid.SliceOfN(rapid.Byte(), GUIDSize, GUIDSize).Draw(t, label))
}

func drawUUID(t *rapid.T, label string) UUID {
	return UUID(rapid.SliceOfN(rapid.Byte(), UUIDSize, UUIDSize).Draw(t, label))
}

func drawID(t *rapid.T, label string) ID {
	return IDFromWords([IDWords]uint64(rapid.SliceOfN(rapid.Uint64(), IDWords, IDWords).Draw(t, label)))
}

func TestProperty_GUIDRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := drawGUID(t, "guid")

		if got := GUIDFromString(g.String()); got != g {
			t.Fatalf("canonical round trip: %s -> %s", g, got)
		}
		if got := GUIDFromBase64(g.Base64()); got != g {
			t.Fatalf("base64 round trip: %s -> %s", g, got)
		}
		if got := GUIDFromString(strings.ToUpper(g.String())); got != g {
			t.Fatalf("uppercase round trip: %s -> %s", g, got)
		}
		if len(g.String()) != GUIDStringLen || len(g.Base64()) != LayoutGUID.EncodedLength() {
			t.Fatalf("encoded lengths %d/%d", len(g.String()), len(g.Base64()))
		}
	})
}

func TestProperty_UUIDAndIDRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		u := drawUUID(t, "uuid")
		if got := UUIDFromBase64(u.Base64()); got != u {
			t.Fatalf("uuid base64 round trip: %s -> %s", u, got)
		}

		id := drawID(t, "id")
		if got := IDFromBase64(id.Base64()); got != id {
			t.Fatalf("id base64 round trip: %s -> %s", id, got)
		}
		if got := IDFromBytes(id.Bytes()); got != id {
			t.Fatalf("id bytes round trip: %s -> %s", id, got)
		}
	})
}

// Byte order is big-endian unsigned integer order.
func TestProperty_OrderMatchesBigInt(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b := drawGUID(t, "a"), drawGUID(t, "b")
		if rapid.Bool().Draw(t, "shared prefix") {
			n := rapid.IntRange(0, GUIDSize).Draw(t, "prefix")
			copy(b[:n], a[:n])
		}

		want := new(big.Int).SetBytes(a[:]).Cmp(new(big.Int).SetBytes(b[:]))
		if got := a.Compare(b); got != want {
			t.Fatalf("Compare(%s, %s) = %d, big.Int says %d", a, b, got, want)
		}
		if a.Compare(b) != -b.Compare(a) {
			t.Fatal("Compare is not antisymmetric")
		}
		if (a == b) != (a.Compare(b) == 0) {
			t.Fatal("== disagrees with Compare")
		}
	})
}

func TestProperty_IDOrderMatchesBytes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b := drawID(t, "a"), drawID(t, "b")
		if rapid.Bool().Draw(t, "shared prefix") {
			n := rapid.IntRange(0, IDWords).Draw(t, "prefix")
			copy(b[:n], a[:n])
		}

		if got, want := a.Compare(b), compareBytes(a.Bytes(), b.Bytes()); got != want {
			t.Fatalf("word order %d != byte order %d", got, want)
		}
	})
}

func TestProperty_Transitive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ids := []UUID{drawUUID(t, "a"), drawUUID(t, "b"), drawUUID(t, "c")}
		Sort(ids)
		if !IsSorted(ids) {
			t.Fatal("Sort left slice unsorted")
		}
		if ids[0].Compare(ids[1]) > 0 || ids[1].Compare(ids[2]) > 0 || ids[0].Compare(ids[2]) > 0 {
			t.Fatalf("order not transitive: %v", ids)
		}
	})
}

func TestProperty_HashConsistent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := drawGUID(t, "guid")
		copyOf := GUIDFromBytes(g.Bytes())
		if g.Hash() != copyOf.Hash() {
			t.Fatal("equal GUIDs hash differently")
		}

		id := drawID(t, "id")
		if id.Hash() != IDFromBase64(id.Base64()).Hash() {
			t.Fatal("equal IDs hash differently")
		}
	})
}

func TestProperty_ClearIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := drawGUID(t, "guid")
		g.Clear()
		once := g
		g.Clear()
		if g != once || !g.IsNil() {
			t.Fatalf("Clear not idempotent: %x then %x", once[:], g[:])
		}

		id := drawID(t, "id")
		id.Clear()
		if !id.IsNil() {
			t.Fatalf("cleared ID not nil: %v", id)
		}
	})
}

// Arbitrary input never panics, and a failed parse is always the sentinel.
func TestProperty_ParseTotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "input")

		if g, err := ParseGUID(s); err != nil && !g.IsNil() {
			t.Fatalf("ParseGUID(%q) failed but returned %s", s, g)
		}
		if g, err := ParseGUIDBase64(s); err != nil && !g.IsNil() {
			t.Fatalf("ParseGUIDBase64(%q) failed but returned %s", s, g)
		}
		if u, err := ParseUUIDBase64(s); err != nil && !u.IsNil() {
			t.Fatalf("ParseUUIDBase64(%q) failed but returned %s", s, u)
		}
		if id, err := ParseIDBase64(s); err != nil && !id.IsNil() {
			t.Fatalf("ParseIDBase64(%q) failed but returned %s", s, id)
		}
	})
}

// Corrupting any single position of a valid canonical string is rejected.
func TestProperty_GUIDCorruption(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := drawGUID(t, "guid")
		s := []byte(g.String())
		i := rapid.IntRange(0, GUIDStringLen-1).Draw(t, "position")
		s[i] = rapid.SampledFrom([]byte("gGzZ-_ {}x")).Filter(func(c byte) bool {
			return c != s[i]
		}).Draw(t, "replacement")

		if got := GUIDFromString(string(s)); !got.IsNil() {
			t.Fatalf("GUIDFromString(%q) = %s, want nil", s, got)
		}
	})
}
