package bls12381

// G1Projective is a point on the BLS12-381 G1 curve in Z-coordinate
// projective (Jacobian-like) form. The curve equation in this
// representation is Y^2*Z = X^3 + 4*Z^3. Z=0 denotes the identity; any
// other Z makes the affine point (X/Z, Y/Z).
//
// The zero value (0,0,0) is not a usable identity: IsIdentity reports
// true for it because Z=0, but it carries X=Y=0 rather than the
// conventional X=0,Y=1, and Add with it returns (0,0,0) instead of the
// other operand. Use G1ProjectiveIdentity for the identity.
type G1Projective struct {
	X, Y, Z Fp
}

// G1ProjectiveIdentity returns the point at infinity.
func G1ProjectiveIdentity() G1Projective {
	return G1Projective{X: FpZero(), Y: FpOne(), Z: FpZero()}
}

// G1ProjectiveGenerator returns the standardized BLS12-381 G1 generator.
func G1ProjectiveGenerator() G1Projective {
	return G1Projective{X: generatorX, Y: generatorY, Z: FpOne()}
}

// G1ProjectiveRandom draws a uniformly random point on the curve (not
// necessarily in the r-torsion subgroup) by sampling random x
// coordinates until x^3+4 is a square, then choosing the sign of y
// from one more random byte. This loop's length depends on how many
// candidate x values are non-residues, which is public information
// about the sampling process, not about any secret the caller holds.
func G1ProjectiveRandom(src RandSource) (G1Projective, error) {
	for {
		x, err := FpRandom(src)
		if err != nil {
			return G1Projective{}, err
		}
		var signByte [1]byte
		if err := src.FillBytes(signByte[:]); err != nil {
			return G1Projective{}, err
		}
		rhs := x.Square().Mul(x).Add(curveB)
		y, ok := rhs.Sqrt()
		if !ok {
			continue
		}
		if signByte[0]&1 == 1 {
			y = y.Neg()
		}
		return G1Affine{x: x, y: y}.ToProjective(), nil
	}
}

// IsIdentity reports whether p is the point at infinity.
func (p G1Projective) IsIdentity() bool { return p.Z.IsZero() }

// IsOnCurve reports whether p satisfies Y^2*Z = X^3 + 4*Z^3, or is the
// identity.
func (p G1Projective) IsOnCurve() bool {
	lhs := p.Y.Square().Mul(p.Z)
	z2 := p.Z.Square()
	rhs := p.X.Square().Mul(p.X).Add(curveB.Mul(z2.Mul(p.Z)))
	return lhs.Equal(rhs) || p.IsIdentity()
}

// Neg returns -p.
func (p G1Projective) Neg() G1Projective {
	return G1Projective{X: p.X, Y: p.Y.Neg(), Z: p.Z}
}

// g1Select returns b if mask is all-ones, a if mask is all-zero,
// applied coordinate-wise.
func g1Select(mask uint64, a, b G1Projective) G1Projective {
	return G1Projective{
		X: fpSelect(mask, a.X, b.X),
		Y: fpSelect(mask, a.Y, b.Y),
		Z: fpSelect(mask, a.Z, b.Z),
	}
}

// Double returns 2*p via the Renes-Costello-Batina complete doubling
// formula for curves with a=0.
func (p G1Projective) Double() G1Projective {
	t0 := p.Y.Square()
	z3 := t0.Add(t0)
	z3 = z3.Add(z3)
	z3 = z3.Add(z3)
	t1 := p.Y.Mul(p.Z)
	t2 := p.Z.Square()
	bt2 := curveB.Mul(t2)
	t2 = bt2.Add(bt2).Add(bt2)
	x3 := t2.Mul(z3)
	y3 := t0.Add(t2)
	z3 = t1.Mul(z3)
	t1 = t2.Add(t2)
	t2 = t1.Add(t2)
	t0 = t0.Sub(t2)
	y3 = t0.Mul(y3)
	y3 = x3.Add(y3)
	t1 = p.X.Mul(p.Y)
	x3 = t0.Mul(t1)
	x3 = x3.Add(x3)
	return G1Projective{X: x3, Y: y3, Z: z3}
}

// Add returns p+q via the Renes-Costello-Batina complete addition
// formula for curves with a=0. The formula is branchless and valid for
// every input pair, including equal, opposite, and identity operands.
func (p G1Projective) Add(q G1Projective) G1Projective {
	b3 := curveB.Add(curveB).Add(curveB)

	t0 := p.X.Mul(q.X)
	t1 := p.Y.Mul(q.Y)
	t2 := p.Z.Mul(q.Z)
	t3 := p.X.Add(p.Y)
	t4 := q.X.Add(q.Y)
	t3 = t3.Mul(t4)
	t4 = t0.Add(t1)
	t3 = t3.Sub(t4)
	t4 = p.Y.Add(p.Z)
	x3 := q.Y.Add(q.Z)
	t4 = t4.Mul(x3)
	x3 = t1.Add(t2)
	t4 = t4.Sub(x3)
	x3 = p.X.Add(p.Z)
	y3 := q.X.Add(q.Z)
	x3 = x3.Mul(y3)
	y3 = t0.Add(t2)
	y3 = x3.Sub(y3)
	x3 = t0.Add(t0)
	t0 = x3.Add(t0)
	t2 = b3.Mul(t2)
	z3 := t1.Add(t2)
	t1 = t1.Sub(t2)
	y3 = b3.Mul(y3)
	x3 = t4.Mul(y3)
	t2 = t3.Mul(t1)
	x3 = t2.Sub(x3)
	y3 = y3.Mul(t0)
	t1 = t1.Mul(z3)
	y3 = t1.Add(y3)
	t0 = t0.Mul(t3)
	z3 = z3.Mul(t4)
	z3 = z3.Add(t0)

	return G1Projective{X: x3, Y: y3, Z: z3}
}

// AddMixed returns p+q, where q is affine (Z implicitly 1). This is
// the Renes-Costello-Batina mixed-addition formula with q's identity
// handled by a branchless select against the unmodified p: plugging
// the identity's canonical (x=0, y=1) sentinel directly into the
// formula would not otherwise recover p, since (0,1) is not itself a
// point on the curve.
func (p G1Projective) AddMixed(q G1Affine) G1Projective {
	b3 := curveB.Add(curveB).Add(curveB)

	t0 := p.X.Mul(q.x)
	t1 := p.Y.Mul(q.y)
	t3 := q.x.Add(q.y)
	t4 := p.X.Add(p.Y)
	t3 = t3.Mul(t4)
	t4 = t0.Add(t1)
	t3 = t3.Sub(t4)
	t4 = q.y.Mul(p.Z)
	t4 = t4.Add(p.Y)
	y3 := q.x.Mul(p.Z)
	y3 = y3.Add(p.X)
	x3 := t0.Add(t0)
	t0 = x3.Add(t0)
	t2 := b3.Mul(p.Z)
	z3 := t1.Add(t2)
	t1 = t1.Sub(t2)
	y3 = b3.Mul(y3)
	x3 = t4.Mul(y3)
	t2 = t3.Mul(t1)
	x3 = t2.Sub(x3)
	y3 = y3.Mul(t0)
	t1 = t1.Mul(z3)
	y3 = t1.Add(y3)
	t0 = t0.Mul(t3)
	z3 = z3.Mul(t4)
	z3 = z3.Add(t0)

	formula := G1Projective{X: x3, Y: y3, Z: z3}
	return g1Select(boolToMask64(q.infinity), formula, p)
}

// Sub returns p-q.
func (p G1Projective) Sub(q G1Projective) G1Projective { return p.Add(q.Neg()) }

// Mul returns s*p via a fixed 256-iteration, most-significant-bit
// first double-and-add ladder. Every iteration doubles and then
// branchlessly selects between the doubled accumulator and the
// doubled-plus-p accumulator, so the timing depends only on the ladder
// length, never on the scalar's value.
func (p G1Projective) Mul(s Scalar) G1Projective {
	acc := G1ProjectiveIdentity()
	bytes := s.Bytes()
	for i := len(bytes) - 1; i >= 0; i-- {
		byteVal := bytes[i]
		for b := 7; b >= 0; b-- {
			acc = acc.Double()
			bit := uint64((byteVal >> uint(b)) & 1)
			added := acc.Add(p)
			acc = g1Select(ctMask64(bit), acc, added)
		}
	}
	return acc
}

// MulByX returns |x|*p, where x is the curve seed, via the same ladder
// as Mul but over the fixed 64-bit public exponent |x|. Since x itself
// is negative, callers needing x*p must negate this result themselves;
// the ladder only ever runs over the public, non-negative magnitude.
func (p G1Projective) MulByX() G1Projective {
	acc := G1ProjectiveIdentity()
	word := seedAbs[0]
	for b := 63; b >= 0; b-- {
		acc = acc.Double()
		bit := (word >> uint(b)) & 1
		added := acc.Add(p)
		acc = g1Select(ctMask64(bit), acc, added)
	}
	return acc
}

// ClearCofactor returns (1-x)*p, which lands any on-curve point in the
// r-torsion subgroup. Since x = -|x|, (1-x)*p = p + |x|*p.
func (p G1Projective) ClearCofactor() G1Projective {
	return p.Add(p.MulByX())
}

// Equal reports whether p and q represent the same point, via
// cross-multiplication rather than first normalizing to affine. The
// identity/non-identity cases and the coordinate comparison are
// combined with mask arithmetic rather than short-circuit booleans, so
// the result is independent of which branch would otherwise have
// decided it.
func (p G1Projective) Equal(q G1Projective) bool {
	x1z2 := p.X.Mul(q.Z)
	x2z1 := q.X.Mul(p.Z)
	y1z2 := p.Y.Mul(q.Z)
	y2z1 := q.Y.Mul(p.Z)

	pIdentityMask := boolToMask64(p.IsIdentity())
	qIdentityMask := boolToMask64(q.IsIdentity())
	bothIdentityMask := pIdentityMask & qIdentityMask
	neitherIdentityMask := ^pIdentityMask & ^qIdentityMask
	sameCoordsMask := boolToMask64(x1z2.Equal(x2z1)) & boolToMask64(y1z2.Equal(y2z1))

	result := bothIdentityMask | (neitherIdentityMask & sameCoordsMask)
	return result != 0
}

// ToAffine converts p to affine coordinates, returning the identity
// when p.Z is zero.
func (p G1Projective) ToAffine() G1Affine {
	zinv, ok := p.Z.Invert()
	if !ok {
		return G1AffineIdentity()
	}
	return G1Affine{x: p.X.Mul(zinv), y: p.Y.Mul(zinv)}
}

// BatchNormalize converts a slice of projective points to affine with
// a single field inversion plus 3(n-1) multiplications, via Montgomery's
// trick: accumulate running products of the Z coordinates, invert the
// total once, then back-substitute to recover each point's 1/Z. Points
// with Z=0 are skipped in the accumulation and emitted directly as the
// affine identity.
func BatchNormalize(points []G1Projective) []G1Affine {
	n := len(points)
	out := make([]G1Affine, n)
	prefix := make([]Fp, n)

	acc := FpOne()
	for i, p := range points {
		prefix[i] = acc
		if !p.Z.IsZero() {
			acc = acc.Mul(p.Z)
		}
	}

	accInv, ok := acc.Invert()
	if !ok {
		// Every point was the identity; accInv is never consulted below
		// since the loop takes the IsZero branch for all of them.
		accInv = FpZero()
	}

	for i := n - 1; i >= 0; i-- {
		p := points[i]
		if p.Z.IsZero() {
			out[i] = G1AffineIdentity()
			continue
		}
		zinv := accInv.Mul(prefix[i])
		accInv = accInv.Mul(p.Z)
		out[i] = G1Affine{x: p.X.Mul(zinv), y: p.Y.Mul(zinv)}
	}
	return out
}
