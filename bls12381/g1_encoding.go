package bls12381

const (
	flagCompression byte = 0x80
	flagInfinity    byte = 0x40
	flagSort        byte = 0x20
	flagMask        byte = flagCompression | flagInfinity | flagSort
)

// ToCompressed encodes a in the 48-byte compressed form: the top three
// bits of byte 0 carry the compression, infinity, and sort flags, and
// the remaining 381 bits hold x big-endian. The body is zero when a is
// the identity and x otherwise, the standard-conformant direction.
func (a G1Affine) ToCompressed() [48]byte {
	x := fpSelect(boolToMask64(a.infinity), a.x, FpZero())
	out := x.Bytes()

	flags := flagCompression
	if a.infinity {
		flags |= flagInfinity
	} else if a.y.LexicographicallyLargest() {
		flags |= flagSort
	}
	out[0] |= flags
	return out
}

// ToUncompressed encodes a in the 96-byte uncompressed form: byte 0's
// infinity bit is the only flag that may be set, bytes 0..48 hold x and
// 48..96 hold y, both big-endian. The body is zero when a is the
// identity.
func (a G1Affine) ToUncompressed() [96]byte {
	mask := boolToMask64(a.infinity)
	x := fpSelect(mask, a.x, FpZero())
	y := fpSelect(mask, a.y, FpZero())

	var out [96]byte
	xb := x.Bytes()
	yb := y.Bytes()
	copy(out[:48], xb[:])
	copy(out[48:], yb[:])
	if a.infinity {
		out[0] |= flagInfinity
	}
	return out
}

// G1AffineFromCompressedUnchecked decodes the 48-byte compressed form
// without verifying subgroup membership. It still rejects: a clear
// compression bit, a malformed infinity encoding (sort set, or a
// nonzero body, alongside the infinity flag), a coordinate >= p, or a
// coordinate whose curve equation has no solution.
func G1AffineFromCompressedUnchecked(data [48]byte) (G1Affine, error) {
	flags := data[0] & flagMask
	if flags&flagCompression == 0 {
		return G1Affine{}, ErrG1Decode
	}
	infinity := flags&flagInfinity != 0
	sort := flags&flagSort != 0

	body := data
	body[0] &^= flagMask
	x, ok := FpFromBytes(body)
	if !ok {
		return G1Affine{}, ErrG1Decode
	}

	if infinity {
		if sort || !x.IsZero() {
			return G1Affine{}, ErrG1Decode
		}
		return G1AffineIdentity(), nil
	}

	rhs := x.Square().Mul(x).Add(curveB)
	y, ok := rhs.Sqrt()
	if !ok {
		return G1Affine{}, ErrG1NotOnCurve
	}
	useNeg := y.LexicographicallyLargest() != sort
	y = fpSelect(boolToMask64(useNeg), y, y.Neg())
	return G1Affine{x: x, y: y}, nil
}

// G1AffineFromCompressed decodes the 48-byte compressed form and
// additionally verifies the point lies in the r-torsion subgroup.
func G1AffineFromCompressed(data [48]byte) (G1Affine, error) {
	p, err := G1AffineFromCompressedUnchecked(data)
	if err != nil {
		return G1Affine{}, err
	}
	if !p.infinity && !p.IsTorsionFree() {
		return G1Affine{}, ErrG1NotInSubgroup
	}
	return p, nil
}

// G1AffineFromUncompressedUnchecked decodes the 96-byte uncompressed
// form without verifying subgroup membership. It still rejects a set
// compression or sort bit, a malformed infinity encoding, a coordinate
// >= p, and a coordinate pair off the curve.
func G1AffineFromUncompressedUnchecked(data [96]byte) (G1Affine, error) {
	flags := data[0] & flagMask
	if flags&(flagCompression|flagSort) != 0 {
		return G1Affine{}, ErrG1Decode
	}
	infinity := flags&flagInfinity != 0

	var xBytes [48]byte
	copy(xBytes[:], data[:48])
	xBytes[0] &^= flagMask
	var yBytes [48]byte
	copy(yBytes[:], data[48:])

	x, ok := FpFromBytes(xBytes)
	if !ok {
		return G1Affine{}, ErrG1Decode
	}
	y, ok := FpFromBytes(yBytes)
	if !ok {
		return G1Affine{}, ErrG1Decode
	}

	if infinity {
		if !x.IsZero() || !y.IsZero() {
			return G1Affine{}, ErrG1Decode
		}
		return G1AffineIdentity(), nil
	}

	p := G1Affine{x: x, y: y}
	if !p.IsOnCurve() {
		return G1Affine{}, ErrG1NotOnCurve
	}
	return p, nil
}

// G1AffineFromUncompressed decodes the 96-byte uncompressed form and
// additionally verifies the point lies in the r-torsion subgroup.
func G1AffineFromUncompressed(data [96]byte) (G1Affine, error) {
	p, err := G1AffineFromUncompressedUnchecked(data)
	if err != nil {
		return G1Affine{}, err
	}
	if !p.infinity && !p.IsTorsionFree() {
		return G1Affine{}, ErrG1NotInSubgroup
	}
	return p, nil
}
