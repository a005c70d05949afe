// Package detrand provides a deterministic, seed-keyed byte source for
// property-based tests that need reproducible "randomness": the same
// seed always drains the same byte stream, so a failing test case can
// be pinned down and replayed.
package detrand

import (
	"golang.org/x/crypto/chacha20"
)

// Source is a deterministic RandSource (in the sense expected by
// bls12381.RandSource: a FillBytes(p []byte) error method) backed by a
// ChaCha20 keystream seeded from a single byte.
type Source struct {
	cipher *chacha20.Cipher
}

// New returns a Source whose keystream is fully determined by seed.
func New(seed byte) *Source {
	key := make([]byte, chacha20.KeySize)
	key[0] = seed
	nonce := make([]byte, chacha20.NonceSize)
	cipher, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		// chacha20.NewUnauthenticatedCipher only fails on malformed
		// key/nonce lengths, which are fixed constants here.
		panic("detrand: " + err.Error())
	}
	return &Source{cipher: cipher}
}

// FillBytes overwrites p with the next len(p) bytes of keystream.
func (s *Source) FillBytes(p []byte) error {
	zero := make([]byte, len(p))
	s.cipher.XORKeyStream(p, zero)
	return nil
}
