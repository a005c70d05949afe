package bls12381

// G1Affine is a point on the BLS12-381 G1 curve in affine coordinates.
// The identity is represented by the canonical sentinel (x=0, y=1,
// infinity=true); the infinity flag is authoritative over the
// coordinates wherever the two could disagree.
type G1Affine struct {
	x, y     Fp
	infinity bool
}

// G1AffineIdentity returns the point at infinity.
func G1AffineIdentity() G1Affine {
	return G1Affine{x: FpZero(), y: FpOne(), infinity: true}
}

// G1AffineGenerator returns the standardized BLS12-381 G1 generator.
func G1AffineGenerator() G1Affine {
	return G1Affine{x: generatorX, y: generatorY}
}

// G1AffineRandom draws a uniformly random curve point (not necessarily
// in the r-torsion subgroup) and converts it to affine form.
func G1AffineRandom(src RandSource) (G1Affine, error) {
	p, err := G1ProjectiveRandom(src)
	if err != nil {
		return G1Affine{}, err
	}
	return p.ToAffine(), nil
}

// X returns the affine x coordinate. For the identity this is 0.
func (a G1Affine) X() Fp { return a.x }

// Y returns the affine y coordinate. For the identity this is 1.
func (a G1Affine) Y() Fp { return a.y }

// IsIdentity reports whether a is the point at infinity.
func (a G1Affine) IsIdentity() bool { return a.infinity }

// ToProjective converts a to Z-coordinate projective form.
func (a G1Affine) ToProjective() G1Projective {
	mask := boolToMask64(a.infinity)
	return G1Projective{
		X: fpSelect(mask, a.x, FpZero()),
		Y: fpSelect(mask, a.y, FpOne()),
		Z: fpSelect(mask, FpOne(), FpZero()),
	}
}

// IsOnCurve reports whether a satisfies y^2 = x^3 + 4, or is the
// identity.
func (a G1Affine) IsOnCurve() bool {
	if a.infinity {
		return true
	}
	lhs := a.y.Square()
	rhs := a.x.Square().Mul(a.x).Add(curveB)
	return lhs.Equal(rhs)
}

// Neg returns -a.
func (a G1Affine) Neg() G1Affine {
	if a.infinity {
		return a
	}
	return G1Affine{x: a.x, y: a.y.Neg()}
}

// Equal reports whether a and b represent the same point. The
// identity/non-identity cases and the coordinate comparison are
// combined with mask arithmetic rather than short-circuit booleans, so
// the result is independent of which branch would otherwise have
// decided it.
func (a G1Affine) Equal(b G1Affine) bool {
	aIdentityMask := boolToMask64(a.infinity)
	bIdentityMask := boolToMask64(b.infinity)
	bothIdentityMask := aIdentityMask & bIdentityMask
	neitherIdentityMask := ^aIdentityMask & ^bIdentityMask
	sameCoordsMask := boolToMask64(a.x.Equal(b.x)) & boolToMask64(a.y.Equal(b.y))

	result := bothIdentityMask | (neitherIdentityMask & sameCoordsMask)
	return result != 0
}

// Endomorphism returns phi(a) = (beta*x, y), the image of a under the
// GLV endomorphism used by the subgroup check. The identity maps to
// itself: its x is 0 and the infinity flag is carried over.
func (a G1Affine) Endomorphism() G1Affine {
	return G1Affine{x: curveBeta.Mul(a.x), y: a.y, infinity: a.infinity}
}

// IsTorsionFree reports whether a lies in the prime-order r-torsion
// subgroup, using the endomorphism identity phi(P) = -x^2*P that holds
// exactly on the subgroup (x the curve seed): P is r-torsion iff
// -(mul_by_x(mul_by_x(P))) == phi(P).
func (a G1Affine) IsTorsionFree() bool {
	p := a.ToProjective()
	lhs := p.MulByX().MulByX().Neg()
	rhs := a.Endomorphism().ToProjective()
	return lhs.Equal(rhs)
}
