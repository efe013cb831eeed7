package cyclo

import (
	"fmt"
	"math/big"
)

// Field is the cyclotomic field Q(ζ_N) realised as Q[x]/Φ_N(x).
type Field struct {
	n   int        // order of the root of unity
	deg int        // φ(N) = deg Φ_N
	phi []*big.Rat // Φ_N, monic, ascending coefficients

	trig map[uint]*trigTable // cos/sin(2πj/N) tables keyed by precision
}

// NewField constructs Q(ζ_n). n must be positive.
func NewField(n int) *Field {
	if n < 1 {
		panic(fmt.Sprintf("cyclo: invalid field order %d", n))
	}
	phi := cyclotomic(n)

	return &Field{
		n:    n,
		deg:  len(phi) - 1,
		phi:  phi,
		trig: make(map[uint]*trigTable),
	}
}

// N returns the order of the root of unity.
func (f *Field) N() int { return f.n }

// Degree returns φ(N), the dimension of the field over Q.
func (f *Field) Degree() int { return f.deg }

// reduce maps an arbitrary polynomial in ζ onto the canonical
// coefficient vector of length deg.
func (f *Field) reduce(p []*big.Rat) []*big.Rat {
	_, r := polyDivMod(p, f.phi)
	out := make([]*big.Rat, f.deg)
	for i := range out {
		out[i] = ratZero()
		if i < len(r) {
			out[i].Set(r[i])
		}
	}
	return out
}

// Zero returns the additive identity.
func (f *Field) Zero() *Elem {
	c := make([]*big.Rat, f.deg)
	for i := range c {
		c[i] = ratZero()
	}
	return &Elem{f: f, c: c}
}

// FromRat embeds a rational number.
func (f *Field) FromRat(q *big.Rat) *Elem {
	e := f.Zero()
	e.c[0].Set(q)
	return e
}

// FromInt embeds an integer.
func (f *Field) FromInt(v int64) *Elem {
	return f.FromRat(new(big.Rat).SetInt64(v))
}

// One returns the multiplicative identity.
func (f *Field) One() *Elem { return f.FromInt(1) }

// Root returns ζ^k (k taken modulo N).
func (f *Field) Root(k int) *Elem {
	k %= f.n
	if k < 0 {
		k += f.n
	}
	p := make([]*big.Rat, k+1)
	for i := range p {
		p[i] = ratZero()
	}
	p[k].SetInt64(1)
	return &Elem{f: f, c: f.reduce(p)}
}

// CosPi returns cos(num·π/den) as a field element. The field must
// contain the 2·den-th roots of unity: N % (2·den) == 0.
func (f *Field) CosPi(num, den int) (*Elem, error) {
	if den <= 0 || f.n%(2*den) != 0 {
		return nil, fmt.Errorf("cyclo: cos(%dπ/%d) does not lie in Q(ζ_%d)", num, den, f.n)
	}
	k := num * (f.n / (2 * den))
	// cos θ = (ζ^k + ζ^{-k}) / 2
	half := big.NewRat(1, 2)
	return f.Root(k).Add(f.Root(-k)).MulRat(half), nil
}

// SinPi returns sin(num·π/den) as a field element. Requires N divisible
// by 4 (so that i = ζ^{N/4} is available) and by 2·den.
func (f *Field) SinPi(num, den int) (*Elem, error) {
	if f.n%4 != 0 {
		return nil, fmt.Errorf("cyclo: sin needs 4 | N, have N=%d", f.n)
	}
	if den <= 0 || f.n%(2*den) != 0 {
		return nil, fmt.Errorf("cyclo: sin(%dπ/%d) does not lie in Q(ζ_%d)", num, den, f.n)
	}
	k := num * (f.n / (2 * den))
	// sin θ = (ζ^k - ζ^{-k}) / (2i) = (ζ^k - ζ^{-k}) · (-ζ^{N/4}) / 2
	minusHalf := big.NewRat(-1, 2)
	return f.Root(k).Sub(f.Root(-k)).Mul(f.Root(f.n / 4)).MulRat(minusHalf), nil
}
