package bls12381

import "github.com/holiman/uint256"

// Uint256 returns the canonical non-Montgomery representative of a as
// a github.com/holiman/uint256.Int, for interop with callers (e.g.
// EVM-adjacent code) that already standardize on that type for 256-bit
// integers.
func (a Scalar) Uint256() *uint256.Int {
	le := a.Bytes()
	var be [32]byte
	for i, b := range le {
		be[31-i] = b
	}
	return uint256.NewInt(0).SetBytes32(be[:])
}

// ScalarFromUint256 converts u into a Scalar. It reports false if u's
// value is not strictly less than r.
func ScalarFromUint256(u *uint256.Int) (Scalar, bool) {
	be := u.Bytes32()
	var le [32]byte
	for i, b := range be {
		le[31-i] = b
	}
	return ScalarFromBytes(le)
}
