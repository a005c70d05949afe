// Package bls12381 implements the arithmetic core of the BLS12-381
// pairing-friendly elliptic curve: the base field Fp, the scalar field
// Scalar, and the G1 group in affine and projective coordinates,
// together with the compressed and uncompressed point encodings
// standardized for BLS12-381.
//
// The second group G2 (defined over the quadratic extension Fp2) and
// the pairing engine are deliberately not part of this package; they
// are a peer concern with analogous structure, built on top of this
// core rather than inside it. PairingFriendly below documents that
// seam; it has no field-extension arithmetic of its own.
//
// Every exported type is an immutable value: arithmetic methods return
// a new value rather than mutating the receiver, so values may be
// freely copied and shared across goroutines. The only exception to
// "every operation is a pure function of its inputs" is the two
// Random constructors, which consume entropy from a caller-supplied
// RandSource.
package bls12381

// PairingFriendly documents the seam where a G2/pairing package would
// plug into this core. It intentionally has no field-extension
// arithmetic; G1Affine already satisfies it.
type PairingFriendly interface {
	IsOnCurve() bool
	IsTorsionFree() bool
}
