package cyclo

import "math/big"

// Polynomials are dense []*big.Rat coefficient slices, ascending degree,
// normalised so the last coefficient is nonzero (or the slice is empty,
// the zero polynomial).

func ratZero() *big.Rat { return new(big.Rat) }

func polyTrim(p []*big.Rat) []*big.Rat {
	for len(p) > 0 && p[len(p)-1].Sign() == 0 {
		p = p[:len(p)-1]
	}
	return p
}

func polyClone(p []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(p))
	for i, c := range p {
		out[i] = new(big.Rat).Set(c)
	}
	return out
}

func polySub(a, b []*big.Rat) []*big.Rat {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]*big.Rat, n)
	for i := range out {
		out[i] = ratZero()
		if i < len(a) {
			out[i].Set(a[i])
		}
		if i < len(b) {
			out[i].Sub(out[i], b[i])
		}
	}
	return polyTrim(out)
}

func polyMul(a, b []*big.Rat) []*big.Rat {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]*big.Rat, len(a)+len(b)-1)
	for i := range out {
		out[i] = ratZero()
	}
	tmp := new(big.Rat)
	for i, ai := range a {
		if ai.Sign() == 0 {
			continue
		}
		for j, bj := range b {
			if bj.Sign() == 0 {
				continue
			}
			out[i+j].Add(out[i+j], tmp.Mul(ai, bj))
		}
	}
	return polyTrim(out)
}

// polyDivMod returns quotient and remainder of a by b (b nonzero).
func polyDivMod(a, b []*big.Rat) (q, r []*big.Rat) {
	r = polyClone(a)
	r = polyTrim(r)
	db := len(b) - 1
	lead := b[db]

	if len(r)-1 < db {
		return nil, r
	}
	q = make([]*big.Rat, len(r)-db)
	for i := range q {
		q[i] = ratZero()
	}
	tmp := new(big.Rat)
	for len(r)-1 >= db {
		dr := len(r) - 1
		// coefficient of the next quotient term
		c := new(big.Rat).Quo(r[dr], lead)
		q[dr-db].Set(c)
		// r -= c * x^(dr-db) * b
		for j := 0; j <= db; j++ {
			if b[j].Sign() == 0 {
				continue
			}
			r[dr-db+j].Sub(r[dr-db+j], tmp.Mul(c, b[j]))
		}
		r = polyTrim(r)
		if len(r) == 0 {
			break
		}
	}
	return q, r
}

// cyclotomic returns the coefficients of Φ_n, computed as
// (x^n - 1) / Π_{d|n, d<n} Φ_d. Coefficients are integers represented
// as rationals.
func cyclotomic(n int) []*big.Rat {
	phis := make(map[int][]*big.Rat)
	for d := 1; d <= n; d++ {
		if n%d != 0 {
			continue
		}
		// x^d - 1
		p := make([]*big.Rat, d+1)
		for i := range p {
			p[i] = ratZero()
		}
		p[0].SetInt64(-1)
		p[d].SetInt64(1)

		for e := 1; e < d; e++ {
			if d%e != 0 {
				continue
			}
			q, r := polyDivMod(p, phis[e])
			if len(r) != 0 {
				panic("cyclo: cyclotomic division left a remainder")
			}
			p = q
		}
		phis[d] = p
	}
	return phis[n]
}
