package cyclo

import (
	"fmt"
	"math/big"
)

// trigTable caches cos/sin(2πj/N) for j in [0, N) at one working precision.
type trigTable struct {
	cos []*big.Float
	sin []*big.Float
}

// guardBits pad every working precision; the error analysis below leans
// on them.
const guardBits = 64

// maxSignPrec bounds the interval refinement in Sign. Reaching it means
// the engine failed to decide a comparison, which the pipeline treats as
// a fatal defect, never a silent skip.
const maxSignPrec = 1 << 22

// cmpAbs compares the absolute values of x and y, returning -1, 0, or +1
// as |x| is less than, equal to, or greater than |y|.
func cmpAbs(x, y *big.Float) int {
	ax := new(big.Float).SetPrec(x.Prec()).Abs(x)
	ay := new(big.Float).SetPrec(y.Prec()).Abs(y)
	return ax.Cmp(ay)
}

// atanInvInt returns atan(1/x) at the given precision by the Taylor
// series Σ (-1)^k / ((2k+1) x^{2k+1}).
func atanInvInt(x int64, prec uint) *big.Float {
	sum := new(big.Float).SetPrec(prec)
	term := new(big.Float).SetPrec(prec).Quo(
		new(big.Float).SetPrec(prec).SetInt64(1),
		new(big.Float).SetPrec(prec).SetInt64(x),
	)
	x2 := new(big.Float).SetPrec(prec).SetInt64(x * x)
	tmp := new(big.Float).SetPrec(prec)
	limit := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), -int(prec))

	for k := int64(0); ; k++ {
		tmp.Quo(term, new(big.Float).SetPrec(prec).SetInt64(2*k+1))
		if k%2 == 0 {
			sum.Add(sum, tmp)
		} else {
			sum.Sub(sum, tmp)
		}
		term.Quo(term, x2)
		if term.Cmp(limit) < 0 {
			break
		}
	}
	return sum
}

// pi returns π at the given precision (Machin's formula).
func pi(prec uint) *big.Float {
	wp := prec + guardBits
	a := atanInvInt(5, wp)
	b := atanInvInt(239, wp)
	a.Mul(a, new(big.Float).SetPrec(wp).SetInt64(16))
	b.Mul(b, new(big.Float).SetPrec(wp).SetInt64(4))
	return new(big.Float).SetPrec(prec).Sub(a, b)
}

// sincos evaluates sin θ and cos θ by Taylor series; |θ| must be ≤ π.
func sincos(theta *big.Float, prec uint) (sin, cos *big.Float) {
	wp := prec + guardBits
	sin = new(big.Float).SetPrec(wp)
	cos = new(big.Float).SetPrec(wp).SetInt64(1)

	t2 := new(big.Float).SetPrec(wp).Mul(theta, theta)
	term := new(big.Float).SetPrec(wp).Set(theta) // θ^(2k+1) / (2k+1)!
	cterm := new(big.Float).SetPrec(wp).SetInt64(1)
	sin.Set(theta)

	limit := new(big.Float).SetPrec(wp).SetMantExp(big.NewFloat(1), -int(wp))
	tmp := new(big.Float).SetPrec(wp)

	for k := int64(1); ; k++ {
		// cos term: θ^{2k} / (2k)!
		cterm.Mul(cterm, t2)
		cterm.Quo(cterm, tmp.SetInt64(2*k*(2*k-1)))
		if k%2 == 0 {
			cos.Add(cos, cterm)
		} else {
			cos.Sub(cos, cterm)
		}
		// sin term: θ^{2k+1} / (2k+1)!
		term.Mul(term, t2)
		term.Quo(term, tmp.SetInt64(2*k*(2*k+1)))
		if k%2 == 0 {
			sin.Add(sin, term)
		} else {
			sin.Sub(sin, term)
		}
		if cmpAbs(term, limit) < 0 && cmpAbs(cterm, limit) < 0 {
			break
		}
	}
	return sin, cos
}

// trigAt returns (building if needed) the root table at precision prec.
func (f *Field) trigAt(prec uint) *trigTable {
	if t, ok := f.trig[prec]; ok {
		return t
	}
	wp := prec + guardBits
	p := pi(wp)
	twoPi := new(big.Float).SetPrec(wp).Mul(p, big.NewFloat(2))

	t := &trigTable{
		cos: make([]*big.Float, f.n),
		sin: make([]*big.Float, f.n),
	}
	for j := 0; j < f.n; j++ {
		// θ = 2πj/N reduced into [-π, π] for fast Taylor convergence.
		jj := j
		if jj > f.n/2 {
			jj -= f.n
		}
		theta := new(big.Float).SetPrec(wp).Mul(twoPi, new(big.Float).SetPrec(wp).SetInt64(int64(jj)))
		theta.Quo(theta, new(big.Float).SetPrec(wp).SetInt64(int64(f.n)))
		s, c := sincos(theta, prec)
		t.sin[j], t.cos[j] = s, c
	}
	f.trig[prec] = t
	return t
}

// realApprox evaluates the real part Σ c_j cos(2πj/N) of e at precision
// prec, returning the value and a rigorous-enough error bound
// (Σ|c_j|+1) · 2^{-prec}: every term is computed with guardBits spare
// bits, so per-term rounding stays far below 2^{-prec}.
func (e *Elem) realApprox(prec uint) (val, bound *big.Float) {
	wp := prec + guardBits
	t := e.f.trigAt(prec)

	val = new(big.Float).SetPrec(wp)
	mag := new(big.Float).SetPrec(wp)
	tmp := new(big.Float).SetPrec(wp)
	for j, c := range e.c {
		if c.Sign() == 0 {
			continue
		}
		cf := new(big.Float).SetPrec(wp).SetRat(c)
		val.Add(val, tmp.Mul(cf, t.cos[j]))
		mag.Add(mag, tmp.Abs(cf))
	}
	mag.Add(mag, big.NewFloat(1))
	scale := new(big.Float).SetMantExp(big.NewFloat(1), -int(prec))
	bound = mag.Mul(mag, scale)
	return val, bound
}

// Sign decides the sign of a real-valued element: exact zero test first,
// then numeric evaluation at doubling precision until the value clears
// its error bound. Panics (fatal engine defect) if the refinement limit
// is reached — by construction that cannot happen for nonzero reals.
func (e *Elem) Sign() int {
	if e.IsZero() {
		return 0
	}
	for prec := uint(128); prec <= maxSignPrec; prec <<= 1 {
		v, b := e.realApprox(prec)
		if cmpAbs(v, b) > 0 {
			return v.Sign()
		}
	}
	panic(fmt.Sprintf("cyclo: sign undecided at %d bits", maxSignPrec))
}

// Float evaluates the real part of e to at least the given number of
// correct decimal digits.
func (e *Elem) Float(digits int) *big.Float {
	// 10 digits ≈ 33.3 bits; round up generously.
	prec := uint(digits*4) + guardBits
	v, _ := e.realApprox(prec)
	return v
}
