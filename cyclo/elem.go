package cyclo

import "math/big"

// Elem is an immutable element of a Field: the coefficient vector of
// 1, ζ, …, ζ^{deg-1}. All operations return fresh elements.
type Elem struct {
	f *Field
	c []*big.Rat
}

// Field returns the owning field.
func (e *Elem) Field() *Field { return e.f }

func (e *Elem) sameField(b *Elem) {
	if e.f != b.f {
		panic("cyclo: mixing elements of different fields")
	}
}

// IsZero reports exact equality with zero. The representation is
// canonical (Φ_N is irreducible over Q), so this is a coefficient scan.
func (e *Elem) IsZero() bool {
	for _, c := range e.c {
		if c.Sign() != 0 {
			return false
		}
	}
	return true
}

// Equal reports exact equality.
func (e *Elem) Equal(b *Elem) bool {
	e.sameField(b)
	for i, c := range e.c {
		if c.Cmp(b.c[i]) != 0 {
			return false
		}
	}
	return true
}

// Add returns e + b.
func (e *Elem) Add(b *Elem) *Elem {
	e.sameField(b)
	out := e.f.Zero()
	for i := range out.c {
		out.c[i].Add(e.c[i], b.c[i])
	}
	return out
}

// Sub returns e - b.
func (e *Elem) Sub(b *Elem) *Elem {
	e.sameField(b)
	out := e.f.Zero()
	for i := range out.c {
		out.c[i].Sub(e.c[i], b.c[i])
	}
	return out
}

// Neg returns -e.
func (e *Elem) Neg() *Elem {
	out := e.f.Zero()
	for i := range out.c {
		out.c[i].Neg(e.c[i])
	}
	return out
}

// MulRat returns e scaled by the rational q.
func (e *Elem) MulRat(q *big.Rat) *Elem {
	out := e.f.Zero()
	for i := range out.c {
		out.c[i].Mul(e.c[i], q)
	}
	return out
}

// Mul returns e · b: coefficient convolution reduced mod Φ_N.
func (e *Elem) Mul(b *Elem) *Elem {
	e.sameField(b)
	prod := polyMul(polyTrim(polyClone(e.c)), polyTrim(polyClone(b.c)))
	return &Elem{f: e.f, c: e.f.reduce(prod)}
}

// Inv returns e⁻¹ via the extended Euclidean algorithm over Q[x]:
// s·e + t·Φ_N = g with g a nonzero constant, so e⁻¹ = s/g. Panics on
// zero — callers decide zero exactly (IsZero) before dividing.
func (e *Elem) Inv() *Elem {
	if e.IsZero() {
		panic("cyclo: inverse of zero")
	}

	r0 := polyClone(e.f.phi)
	r1 := polyTrim(polyClone(e.c))
	s0 := []*big.Rat{}               // coefficient of e in r0's combination
	s1 := []*big.Rat{big.NewRat(1, 1)} // and in r1's

	for len(r1) > 0 {
		q, r := polyDivMod(r0, r1)
		r0, r1 = r1, r
		s0, s1 = s1, polySub(s0, polyMul(q, s1))
	}
	// r0 = gcd(Φ_N, e); Φ_N is irreducible and e nonzero, so deg r0 = 0.
	if len(r0) != 1 {
		panic("cyclo: element shares a factor with the modulus")
	}
	inv := new(big.Rat).Inv(r0[0])
	for i := range s0 {
		s0[i].Mul(s0[i], inv)
	}
	return &Elem{f: e.f, c: e.f.reduce(s0)}
}

// Div returns e / b.
func (e *Elem) Div(b *Elem) *Elem {
	return e.Mul(b.Inv())
}
