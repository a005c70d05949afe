package bls12381

import (
	"bytes"
	"testing"

	"github.com/eth2030/bls12381-core/internal/detrand"
)

// TestCompressedIdentityIsCanonicalSentinel checks the compressed
// identity is 0xc0 followed by 47 zero bytes.
func TestCompressedIdentityIsCanonicalSentinel(t *testing.T) {
	enc := G1AffineIdentity().ToCompressed()
	if enc[0] != 0xc0 {
		t.Fatalf("expected flag byte 0xc0, got %#x", enc[0])
	}
	for _, b := range enc[1:] {
		if b != 0 {
			t.Fatal("expected 47 trailing zero bytes")
		}
	}
	back, err := G1AffineFromCompressed(enc)
	if err != nil {
		t.Fatalf("decoding the identity failed: %v", err)
	}
	if !back.IsIdentity() {
		t.Fatal("decoded point is not the identity")
	}
}

// TestUncompressedIdentityIsCanonicalSentinel mirrors scenario 2 for
// the uncompressed form: 0x40 followed by 95 zero bytes.
func TestUncompressedIdentityIsCanonicalSentinel(t *testing.T) {
	enc := G1AffineIdentity().ToUncompressed()
	if enc[0] != 0x40 {
		t.Fatalf("expected flag byte 0x40, got %#x", enc[0])
	}
	for _, b := range enc[1:] {
		if b != 0 {
			t.Fatal("expected 95 trailing zero bytes")
		}
	}
	back, err := G1AffineFromUncompressed(enc)
	if err != nil {
		t.Fatalf("decoding the identity failed: %v", err)
	}
	if !back.IsIdentity() {
		t.Fatal("decoded point is not the identity")
	}
}

// TestGeneratorCompressedFlags checks the generator's compressed
// encoding round-trips and has bit 7 set, bit 6 clear.
func TestGeneratorCompressedFlags(t *testing.T) {
	g := G1AffineGenerator()
	enc := g.ToCompressed()
	if enc[0]&0x80 == 0 {
		t.Fatal("expected compression bit set")
	}
	if enc[0]&0x40 != 0 {
		t.Fatal("expected infinity bit clear")
	}
	back, err := G1AffineFromCompressed(enc)
	if err != nil {
		t.Fatalf("decoding the generator failed: %v", err)
	}
	if !back.Equal(g) {
		t.Fatal("decoded generator does not match")
	}
}

// TestSortInfinityComboRejected checks 0xe0 followed by zeros (sort
// set together with infinity) is rejected.
func TestSortInfinityComboRejected(t *testing.T) {
	var data [48]byte
	data[0] = 0xe0
	if _, err := G1AffineFromCompressed(data); err == nil {
		t.Fatal("expected rejection of sort-with-infinity")
	}
}

func TestCompressedRoundTripRandomPoints(t *testing.T) {
	src := detrand.New(40)
	for i := 0; i < 6; i++ {
		p, err := G1ProjectiveRandom(src)
		if err != nil {
			t.Fatalf("G1ProjectiveRandom: %v", err)
		}
		a := p.ClearCofactor().ToAffine()
		enc := a.ToCompressed()
		back, err := G1AffineFromCompressed(enc)
		if err != nil {
			t.Fatalf("round trip decode failed: %v", err)
		}
		if !back.Equal(a) {
			t.Fatal("compressed round trip diverged")
		}
	}
}

func TestUncompressedRoundTripRandomPoints(t *testing.T) {
	src := detrand.New(41)
	for i := 0; i < 6; i++ {
		p, err := G1ProjectiveRandom(src)
		if err != nil {
			t.Fatalf("G1ProjectiveRandom: %v", err)
		}
		a := p.ClearCofactor().ToAffine()
		enc := a.ToUncompressed()
		back, err := G1AffineFromUncompressed(enc)
		if err != nil {
			t.Fatalf("round trip decode failed: %v", err)
		}
		if !back.Equal(a) {
			t.Fatal("uncompressed round trip diverged")
		}
	}
}

func TestFromCompressedRejectsOutOfRangeX(t *testing.T) {
	var data [48]byte
	for i := range data {
		data[i] = 0xff
	}
	data[0] = 0x80 | (data[0] &^ 0xe0) // compression set, infinity/sort clear, x all-ones
	if _, err := G1AffineFromCompressed(data); err == nil {
		t.Fatal("expected rejection of an x coordinate >= p")
	}
}

func TestFromCompressedRejectsNonResidueX(t *testing.T) {
	// x = 1 is essentially never on the curve (1 + 4 = 5 would need to
	// be a square), giving a reliable non-residue probe.
	var data [48]byte
	data[0] = 0x80
	data[47] = 1
	if _, err := G1AffineFromCompressed(data); err == nil {
		t.Fatal("expected rejection of an x with no curve solution")
	}
}

func TestFromUncompressedRejectsSortBit(t *testing.T) {
	var data [96]byte
	data[0] = 0x20 // sort bit set alone is invalid in uncompressed form
	if _, err := G1AffineFromUncompressed(data); err == nil {
		t.Fatal("expected rejection of a set sort bit in uncompressed form")
	}
}

func TestFromCompressedRejectsMalformedInfinity(t *testing.T) {
	var data [48]byte
	data[0] = 0xc0
	data[47] = 1 // nonzero payload alongside the infinity flag
	if _, err := G1AffineFromCompressed(data); err == nil {
		t.Fatal("expected rejection of infinity with nonzero payload")
	}
}

func TestCompressedVsUncompressedAgreeOnCoordinates(t *testing.T) {
	g := G1AffineGenerator()
	c := g.ToCompressed()
	u := g.ToUncompressed()
	if !bytes.Equal(c[1:], u[1:48]) {
		t.Fatal("compressed and uncompressed x bodies diverged (modulo flag bits)")
	}
}
