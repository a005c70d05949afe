//go:build blst

// G1 cross-validation adapter against the supranational/blst library.
//
// This file exists only to let tests built with -tags blst check this
// package's G1 arithmetic and encodings against an independent,
// assembly-optimized implementation of the same curve. It is never
// linked into a production build without that tag, and it never
// touches G2 or pairings, which are out of this core's scope.
//
// Build with: go build -tags blst
// Test with:  go test -tags blst ./bls12381/ -run Blst
package bls12381

import blst "github.com/supranational/blst/bindings/go"

// BlstReencodeCompressed decodes a 48-byte compressed G1 point with
// blst and re-serializes it with blst, so a caller can compare the
// result byte-for-byte against this package's own ToCompressed.
func BlstReencodeCompressed(data [48]byte) ([]byte, bool) {
	p := new(blst.P1Affine).Uncompress(data[:])
	if p == nil {
		return nil, false
	}
	return p.Compress(), true
}

// BlstReencodeUncompressed is BlstReencodeCompressed's 96-byte
// counterpart.
func BlstReencodeUncompressed(data [96]byte) ([]byte, bool) {
	p := new(blst.P1Affine).Deserialize(data[:])
	if p == nil {
		return nil, false
	}
	return p.Serialize(), true
}

// BlstScalarMulGenerator multiplies blst's G1 generator by s's
// canonical little-endian bytes, returning the compressed result for
// comparison against G1ProjectiveGenerator().Mul(s).
func BlstScalarMulGenerator(s Scalar) []byte {
	scalarBytes := s.Bytes()
	p := blst.P1Generator().Mult(scalarBytes[:])
	return p.ToAffine().Compress()
}

// BlstIsInSubgroup reports blst's verdict on whether the compressed
// point is in the r-torsion subgroup, for cross-validation against
// G1Affine.IsTorsionFree.
func BlstIsInSubgroup(data [48]byte) (inSubgroup bool, ok bool) {
	p := new(blst.P1Affine).Uncompress(data[:])
	if p == nil {
		return false, false
	}
	return p.InG1(), true
}
