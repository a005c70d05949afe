package bls12381

import "encoding/hex"

// curveB is the curve equation's constant term: y^2 = x^3 + 4.
var curveB = FpFromUint64(4)

// curveBeta is a non-trivial cube root of unity in Fp, used by the GLV
// endomorphism phi(x, y) = (beta*x, y).
var curveBeta = mustFpFromHex("00000000000000005f19672fdf76ce51ba69c6076a0f77eaddb3a93be6f89688de17d813620a00022e01fffffffefffe")

// seedAbs is |x|, the absolute value of the curve seed. The seed
// itself is negative; callers that need x*P compute seedAbs*P via
// MulByX and negate the result themselves, keeping the ladder over a
// fixed, public, non-negative bit pattern.
var seedAbs = [4]uint64{0xd201000000010000, 0, 0, 0}

// generatorX, generatorY are the standardized BLS12-381 G1 generator
// coordinates.
var (
	generatorX = mustFpFromHex("17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb")
	generatorY = mustFpFromHex("08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1")
)

// mustFpFromHex decodes a 96-hex-digit (48-byte) big-endian string into
// an Fp. It is used only for the package's fixed curve constants, all
// of which are known-good values fixed at compile time; a decode
// failure here is a programmer error, not a runtime condition.
func mustFpFromHex(s string) Fp {
	raw, err := hex.DecodeString(s)
	if err != nil {
		panic("bls12381: invalid constant hex literal: " + err.Error())
	}
	if len(raw) != 48 {
		panic("bls12381: curve constant must be exactly 48 bytes")
	}
	var buf [48]byte
	copy(buf[:], raw)
	v, ok := FpFromBytes(buf)
	if !ok {
		panic("bls12381: curve constant is not canonical mod p")
	}
	return v
}
