package bls12381

// Scalar is an element of the scalar field of order r, where
//
//	r = 0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001
//
// Like Fp, the value is always held in Montgomery form with radix
// R = 2^256, and the zero value of Scalar is the field element 0.
type Scalar struct {
	limbs [4]uint64
}

var scalarModulus = [4]uint64{
	0xffffffff00000001,
	0x53bda402fffe5bfe,
	0x3339d80809a1d805,
	0x73eda753299d7d48,
}

const scalarInv uint64 = 0xfffffffeffffffff

var scalarR = [4]uint64{
	0x00000001fffffffe,
	0x5884b7fa00034802,
	0x998c4fefecbc4ff5,
	0x1824b159acc5056f,
}

var scalarR2 = [4]uint64{
	0xc999e990f3f29c6d,
	0x2b6cedcb87925c23,
	0x05d31496_7254398f,
	0x0748d9d99f59ff11,
}

var scalarR3 = [4]uint64{
	0xc62c1807439b73af,
	0x1b3e0d188cf06990,
	0x73d13c71c7b5f418,
	0x6e2a5bb9c8db33e9,
}

var scalarZeroLimbs [4]uint64
var scalarOneVal = Scalar{limbs: scalarR}

// scalarRMinus2, scalarHalfRMinus1 (Euler-criterion exponent), the
// odd-part decomposition (scalarS, scalarT) of r-1, a quadratic
// nonresidue's t-th power scalarRootOfUnity, and (t+1)/2 are all
// derived at init time from scalarModulus itself -- see Fp's init for
// the same rationale.
var (
	scalarRMinus2      [4]uint64
	scalarHalfRMinus1  [4]uint64
	scalarS            int
	scalarT            [4]uint64
	scalarTPlus1Over2  [4]uint64
	scalarRootOfUnity  Scalar
	scalarNegOneCached Scalar
)

func init() {
	scalarRMinus2, _ = sub4(scalarModulus, [4]uint64{2, 0, 0, 0})

	rMinus1, _ := sub4(scalarModulus, [4]uint64{1, 0, 0, 0})
	scalarHalfRMinus1 = shiftRight4(rMinus1)

	e := rMinus1
	s := 0
	for e[0]&1 == 0 {
		e = shiftRight4(e)
		s++
	}
	scalarS = s
	scalarT = e
	tPlus1, _ := add4(e, [4]uint64{1, 0, 0, 0})
	scalarTPlus1Over2 = shiftRight4(tPlus1)

	scalarNegOneCached = scalarOneVal.Neg()

	g := scalarFindNonResidue()
	scalarRootOfUnity = g.Pow(scalarT)
}

// scalarFindNonResidue returns the smallest n >= 2 whose image in
// Scalar is a quadratic nonresidue, by direct application of Euler's
// criterion. This runs once at package init over public, non-secret
// data (the modulus itself), so there is no constant-time requirement
// here: the search never touches a secret value.
func scalarFindNonResidue() Scalar {
	for n := uint64(2); ; n++ {
		cand := ScalarFromUint64(n)
		if cand.Pow(scalarHalfRMinus1).Equal(scalarNegOneCached) {
			return cand
		}
	}
}

// --- limb-level primitives (4-limb analogues of the Fp helpers) ---

func add4(a, b [4]uint64) (sum [4]uint64, carry uint64) {
	var c uint64
	for i := 0; i < 4; i++ {
		sum[i], c = addWithCarry(a[i], b[i], c)
	}
	return sum, c
}

func sub4(a, b [4]uint64) (diff [4]uint64, borrow uint64) {
	var bw uint64
	for i := 0; i < 4; i++ {
		diff[i], bw = subWithBorrow(a[i], b[i], bw)
	}
	return diff, bw
}

func shiftRight4(a [4]uint64) [4]uint64 {
	var out [4]uint64
	var carryIn uint64
	for i := 3; i >= 0; i-- {
		out[i] = (a[i] >> 1) | (carryIn << 63)
		carryIn = a[i] & 1
	}
	return out
}

func isZero4(a [4]uint64) bool {
	var acc uint64
	for _, w := range a {
		acc |= w
	}
	return acc == 0
}

func eq4(a, b [4]uint64) bool {
	var acc uint64
	for i := range a {
		acc |= a[i] ^ b[i]
	}
	return acc == 0
}

func geq4(a, b [4]uint64) bool {
	_, borrow := sub4(a, b)
	return borrow == 0
}

func select4(mask uint64, a, b [4]uint64) [4]uint64 {
	var out [4]uint64
	for i := range a {
		out[i] = ctSelect64(mask, a[i], b[i])
	}
	return out
}

func scalarSubtractModulus(a [4]uint64) [4]uint64 {
	reduced, borrow := sub4(a, scalarModulus)
	mask := ctMask64(borrow)
	return select4(mask, reduced, a)
}

func scalarAddRaw(a, b [4]uint64) [4]uint64 {
	sum, _ := add4(a, b)
	return scalarSubtractModulus(sum)
}

func scalarSubRaw(a, b [4]uint64) [4]uint64 {
	diff, borrow := sub4(a, b)
	corrected, _ := add4(diff, scalarModulus)
	mask := ctMask64(borrow)
	return select4(mask, diff, corrected)
}

func scalarNegRaw(a [4]uint64) [4]uint64 {
	return scalarSubRaw(scalarZeroLimbs, a)
}

func scalarMulWide(a, b [4]uint64) [8]uint64 {
	var t [8]uint64
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			t[i+j], carry = madd(a[i], b[j], t[i+j], carry)
		}
		t[i+4] = carry
	}
	return t
}

func scalarMontgomeryReduce(t [8]uint64) [4]uint64 {
	for i := 0; i < 4; i++ {
		m := t[i] * scalarInv
		var carry uint64
		for j := 0; j < 4; j++ {
			t[i+j], carry = madd(m, scalarModulus[j], t[i+j], carry)
		}
		k := i + 4
		for carry != 0 {
			var c uint64
			t[k], c = addc(t[k], carry)
			carry = c
			k++
		}
	}
	var out [4]uint64
	copy(out[:], t[4:])
	return scalarSubtractModulus(out)
}

func scalarMulRaw(a, b [4]uint64) [4]uint64 {
	return scalarMontgomeryReduce(scalarMulWide(a, b))
}

func scalarToMontgomery(raw [4]uint64) [4]uint64 {
	return scalarMulRaw(raw, scalarR2)
}

func scalarFromMontgomery(m [4]uint64) [4]uint64 {
	var wide [8]uint64
	copy(wide[:4], m[:])
	return scalarMontgomeryReduce(wide)
}

// --- exported constructors ---

// ScalarZero returns the additive identity.
func ScalarZero() Scalar { return Scalar{} }

// ScalarOne returns the multiplicative identity.
func ScalarOne() Scalar { return scalarOneVal }

// ScalarFromUint64 returns the scalar corresponding to the given small
// integer.
func ScalarFromUint64(v uint64) Scalar {
	return Scalar{limbs: scalarToMontgomery([4]uint64{v, 0, 0, 0})}
}

// ScalarFromRaw converts a non-Montgomery little-endian 256-bit integer
// (already reduced mod r) into its Montgomery-form Scalar.
func ScalarFromRaw(limbs [4]uint64) Scalar {
	return Scalar{limbs: scalarToMontgomery(limbs)}
}

// ScalarFromBytes decodes a 32-byte little-endian canonical integer. It
// reports false if the encoded integer is not strictly less than r.
func ScalarFromBytes(data [32]byte) (Scalar, bool) {
	var raw [4]uint64
	for i := 0; i < 4; i++ {
		raw[i] = leUint64(data[i*8 : i*8+8])
	}
	if geq4(raw, scalarModulus) {
		return Scalar{}, false
	}
	return Scalar{limbs: scalarToMontgomery(raw)}, true
}

// ScalarFromBytesWide reduces a 64-byte little-endian integer modulo r,
// suitable for producing a uniform scalar from a wide hash output.
func ScalarFromBytesWide(data [64]byte) Scalar {
	var wide [8]uint64
	for i := 0; i < 8; i++ {
		wide[i] = leUint64(data[i*8 : i*8+8])
	}
	var d0, d1 [4]uint64
	copy(d0[:], wide[:4])
	copy(d1[:], wide[4:])
	limbs := scalarAddRaw(scalarMulRaw(d0, scalarR2), scalarMulRaw(d1, scalarR3))
	return Scalar{limbs: limbs}
}

// ScalarRandom draws a uniform scalar by filling 64 bytes of entropy
// from src and reducing via ScalarFromBytesWide.
func ScalarRandom(src RandSource) (Scalar, error) {
	var buf [64]byte
	if err := src.FillBytes(buf[:]); err != nil {
		return Scalar{}, err
	}
	return ScalarFromBytesWide(buf), nil
}

// Bytes encodes the scalar as 32 little-endian bytes, the canonical
// non-Montgomery representative.
func (a Scalar) Bytes() [32]byte {
	raw := scalarFromMontgomery(a.limbs)
	var out [32]byte
	for i := 0; i < 4; i++ {
		putLeUint64(out[i*8:i*8+8], raw[i])
	}
	return out
}

func leUint64(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

func putLeUint64(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

// --- arithmetic ---

func (a Scalar) Add(b Scalar) Scalar { return Scalar{limbs: scalarAddRaw(a.limbs, b.limbs)} }
func (a Scalar) Sub(b Scalar) Scalar { return Scalar{limbs: scalarSubRaw(a.limbs, b.limbs)} }
func (a Scalar) Neg() Scalar         { return Scalar{limbs: scalarNegRaw(a.limbs)} }
func (a Scalar) Mul(b Scalar) Scalar { return Scalar{limbs: scalarMulRaw(a.limbs, b.limbs)} }
func (a Scalar) Square() Scalar      { return Scalar{limbs: scalarMulRaw(a.limbs, a.limbs)} }

// Doubles returns a + a.
func (a Scalar) Doubles() Scalar { return a.Add(a) }

func (a Scalar) IsZero() bool       { return isZero4(a.limbs) }
func (a Scalar) Equal(b Scalar) bool { return eq4(a.limbs, b.limbs) }

func (a Scalar) SubtractModulus() Scalar { return Scalar{limbs: scalarSubtractModulus(a.limbs)} }

// Pow raises a to the power described by exp, a 256-bit little-endian
// exponent given as four 64-bit words, via a constant-time
// square-and-multiply ladder.
func (a Scalar) Pow(exp [4]uint64) Scalar {
	result := scalarOneVal
	for i := 3; i >= 0; i-- {
		word := exp[i]
		for b := 63; b >= 0; b-- {
			result = result.Square()
			bit := (word >> uint(b)) & 1
			multiplied := result.Mul(a)
			result = Scalar{limbs: select4(ctMask64(bit), result.limbs, multiplied.limbs)}
		}
	}
	return result
}

// Invert returns a^-1, or (Scalar{}, false) if a is zero.
func (a Scalar) Invert() (Scalar, bool) {
	// 0^(r-2) = 0, so a zero input yields Scalar{} without a branch.
	return a.Pow(scalarRMinus2), !a.IsZero()
}

// Sqrt returns a square root of a, or (Scalar{}, false) if a is not a
// quadratic residue. Unlike Fp.Sqrt, r = 1 (mod 4), so there is no
// single-exponentiation shortcut; this uses the classical
// Tonelli-Shanks algorithm. Its inner loop runs a number of iterations
// that depends on the multiplicative order of intermediate values
// (bounded by the scalar field's 2-adicity), which is a narrow,
// explicitly accepted timing variation on an operation that BLS12-381
// protocols never invoke on secret scalars.
func (a Scalar) Sqrt() (Scalar, bool) {
	if a.IsZero() {
		return Scalar{}, true
	}
	if !a.Pow(scalarHalfRMinus1).Equal(scalarOneVal) {
		return Scalar{}, false
	}

	m := scalarS
	c := scalarRootOfUnity
	t := a.Pow(scalarT)
	r := a.Pow(scalarTPlus1Over2)

	for {
		if t.Equal(scalarOneVal) {
			return r, true
		}
		i := 0
		temp := t
		for !temp.Equal(scalarOneVal) {
			temp = temp.Square()
			i++
		}
		b := c
		for j := 0; j < m-i-1; j++ {
			b = b.Square()
		}
		m = i
		c = b.Square()
		t = t.Mul(c)
		r = r.Mul(b)
	}
}
