package bls12381

// RandSource is the "fill the given byte buffer with uniform random
// bytes" capability the core consumes for its two Random constructors.
// The core never seeds or otherwise retains the source beyond the
// duration of a single call.
type RandSource interface {
	FillBytes(p []byte) error
}
