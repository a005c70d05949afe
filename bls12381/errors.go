package bls12381

import "errors"

// Sentinel errors for G1 decode failures: a flat family of one error
// per failure mode rather than a bespoke error type per call site. Fp
// and Scalar's fallible constructors use the plain
// (value, ok bool) idiom instead: they have exactly one failure mode
// each (non-canonical input), so there is no distinct error condition
// worth naming, unlike G1 decode's three-way malformed/off-curve/
// off-subgroup split.
var (
	// ErrG1Decode is returned for malformed G1 point encodings:
	// reserved flag bits set incorrectly, a non-canonical
	// coordinate, or an infinity flag set together with a nonzero
	// payload.
	ErrG1Decode = errors.New("bls12381: malformed G1 encoding")

	// ErrG1NotOnCurve is returned when a decoded (x, y) pair does not
	// satisfy the curve equation.
	ErrG1NotOnCurve = errors.New("bls12381: point not on curve")

	// ErrG1NotInSubgroup is returned by the checked decoders when a
	// point is on the curve but not in the prime-order subgroup.
	ErrG1NotInSubgroup = errors.New("bls12381: point not in r-torsion subgroup")
)
