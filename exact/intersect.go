package exact

import (
	"math/big"

	"github.com/unfoldlab/rotunfold/record"
)

// ---------------------------------------------------------------------------
// Stage 1: high-precision numeric filter
// ---------------------------------------------------------------------------

// numPt is a point evaluated to numDigits decimal digits.
type numPt struct {
	x, y *big.Float
}

type stage1Result int

const (
	s1Reject   stage1Result = iota // provably no intersection
	s1FaceFace                     // provably a proper interior crossing
	s1Escalate                     // ambiguous: decide exactly
)

func numEval(p point) numPt {
	return numPt{x: p.x.Float(numDigits), y: p.y.Float(numDigits)}
}

func fmin(a, b *big.Float) *big.Float {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func fmax(a, b *big.Float) *big.Float {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// orient returns the doubled signed area of the triangle (a, b, c).
func orient(a, b, c numPt) *big.Float {
	abx := new(big.Float).SetPrec(numPrec).Sub(b.x, a.x)
	aby := new(big.Float).SetPrec(numPrec).Sub(b.y, a.y)
	acx := new(big.Float).SetPrec(numPrec).Sub(c.x, a.x)
	acy := new(big.Float).SetPrec(numPrec).Sub(c.y, a.y)
	l := new(big.Float).SetPrec(numPrec).Mul(abx, acy)
	r := new(big.Float).SetPrec(numPrec).Mul(aby, acx)
	return l.Sub(l, r)
}

// aabbDisjoint reports boxes separated by more than eps on some axis.
func aabbDisjoint(a1, a2, b1, b2 numPt, eps *big.Float) bool {
	sep := func(maxA, minB *big.Float) bool {
		gap := new(big.Float).SetPrec(numPrec).Sub(minB, maxA)
		return gap.Cmp(eps) > 0
	}
	return sep(fmax(a1.x, a2.x), fmin(b1.x, b2.x)) ||
		sep(fmax(b1.x, b2.x), fmin(a1.x, a2.x)) ||
		sep(fmax(a1.y, a2.y), fmin(b1.y, b2.y)) ||
		sep(fmax(b1.y, b2.y), fmin(a1.y, a2.y))
}

// stage1 filters one edge pair numerically. Every decision it makes is
// backed by an eps margin at 80 digits; anything closer escalates.
func stage1(a1, a2, b1, b2 numPt, eps *big.Float) stage1Result {
	if aabbDisjoint(a1, a2, b1, b2, eps) {
		return s1Reject
	}

	// Signed orientations of each endpoint against the other line.
	for _, d := range []*big.Float{
		orient(a1, a2, b1), orient(a1, a2, b2),
		orient(b1, b2, a1), orient(b1, b2, a2),
	} {
		if new(big.Float).SetPrec(numPrec).Abs(d).Cmp(eps) < 0 {
			return s1Escalate
		}
	}

	// Parametric solve: a1 + t·(a2-a1) = b1 + s·(b2-b1).
	dx1 := new(big.Float).SetPrec(numPrec).Sub(a2.x, a1.x)
	dy1 := new(big.Float).SetPrec(numPrec).Sub(a2.y, a1.y)
	dx2 := new(big.Float).SetPrec(numPrec).Sub(b2.x, b1.x)
	dy2 := new(big.Float).SetPrec(numPrec).Sub(b2.y, b1.y)
	ex := new(big.Float).SetPrec(numPrec).Sub(b1.x, a1.x)
	ey := new(big.Float).SetPrec(numPrec).Sub(b1.y, a1.y)

	det := new(big.Float).SetPrec(numPrec).Mul(dx1, dy2)
	det.Sub(det, new(big.Float).SetPrec(numPrec).Mul(dy1, dx2))
	if new(big.Float).SetPrec(numPrec).Abs(det).Cmp(eps) < 0 {
		return s1Escalate // near-parallel with touching boxes
	}

	t := new(big.Float).SetPrec(numPrec).Mul(ex, dy2)
	t.Sub(t, new(big.Float).SetPrec(numPrec).Mul(ey, dx2))
	t.Quo(t, det)
	s := new(big.Float).SetPrec(numPrec).Mul(ex, dy1)
	s.Sub(s, new(big.Float).SetPrec(numPrec).Mul(ey, dx1))
	s.Quo(s, det)

	one := big.NewFloat(1).SetPrec(numPrec)
	inside := func(p *big.Float) stage1Result {
		hi := new(big.Float).SetPrec(numPrec).Sub(one, p)
		switch {
		case p.Cmp(eps) > 0 && hi.Cmp(eps) > 0:
			return s1FaceFace // strictly interior with margin
		case p.Cmp(new(big.Float).SetPrec(numPrec).Neg(eps)) < 0,
			hi.Cmp(new(big.Float).SetPrec(numPrec).Neg(eps)) < 0:
			return s1Reject // clearly outside [0, 1]
		default:
			return s1Escalate // within eps of a boundary
		}
	}

	rt, rs := inside(t), inside(s)
	if rt == s1Reject || rs == s1Reject {
		return s1Reject
	}
	if rt == s1FaceFace && rs == s1FaceFace {
		return s1FaceFace
	}
	return s1Escalate
}

// ---------------------------------------------------------------------------
// Stage 2: exact symbolic intersection
// ---------------------------------------------------------------------------

func ptEqual(p, q point) bool {
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// pointOnSegment classifies a degenerate segment (the single point p)
// against the segment b1-b2: coincidence with an endpoint is
// vertex-vertex, lying in the interior is edge-vertex.
func pointOnSegment(p, b1, b2 point) (record.Kind, bool) {
	if ptEqual(p, b1) || ptEqual(p, b2) {
		return record.KindVertexVertex, true
	}
	dx := b2.x.Sub(b1.x)
	dy := b2.y.Sub(b1.y)
	if dx.IsZero() && dy.IsZero() {
		return "", false // both degenerate, distinct points
	}
	ex := p.x.Sub(b1.x)
	ey := p.y.Sub(b1.y)
	cross := ex.Mul(dy).Sub(ey.Mul(dx))
	if !cross.IsZero() {
		return "", false
	}
	u := dx.Mul(dx).Add(dy.Mul(dy))
	t := ex.Mul(dx).Add(ey.Mul(dy)).Div(u)
	one := p.x.Field().One()
	if t.Sign() > 0 && t.Sub(one).Sign() < 0 {
		return record.KindEdgeVertex, true
	}
	return "", false
}

// classifyExact decides one edge pair with no tolerance: parametric
// solve over the cyclotomic field, closed-interval membership, and exact
// endpoint tests. det = 0 is decided by canonical reduction, and the
// collinear case measures overlap by projection onto the line direction.
func classifyExact(a1, a2, b1, b2 point) (record.Kind, bool) {
	f := a1.x.Field()

	dx1 := a2.x.Sub(a1.x)
	dy1 := a2.y.Sub(a1.y)
	dx2 := b2.x.Sub(b1.x)
	dy2 := b2.y.Sub(b1.y)

	degA := dx1.IsZero() && dy1.IsZero()
	degB := dx2.IsZero() && dy2.IsZero()
	switch {
	case degA && degB:
		if ptEqual(a1, b1) {
			return record.KindVertexVertex, true
		}
		return "", false
	case degA:
		return pointOnSegment(a1, b1, b2)
	case degB:
		return pointOnSegment(b1, a1, a2)
	}

	ex := b1.x.Sub(a1.x)
	ey := b1.y.Sub(a1.y)

	det := dx1.Mul(dy2).Sub(dy1.Mul(dx2))
	if det.IsZero() {
		// Parallel. Collinear iff b1 lies on the line through a1-a2.
		cross := ex.Mul(dy1).Sub(ey.Mul(dx1))
		if !cross.IsZero() {
			return "", false
		}
		// Project both endpoints of B onto A's parameter line.
		u := dx1.Mul(dx1).Add(dy1.Mul(dy1))
		t1 := ex.Mul(dx1).Add(ey.Mul(dy1)).Div(u)
		t2 := b2.x.Sub(a1.x).Mul(dx1).Add(b2.y.Sub(a1.y).Mul(dy1)).Div(u)

		lo, hi := t1, t2
		if lo.Sub(hi).Sign() > 0 {
			lo, hi = hi, lo
		}
		if lo.Sign() < 0 {
			lo = f.Zero()
		}
		one := f.One()
		if hi.Sub(one).Sign() > 0 {
			hi = one
		}
		switch span := hi.Sub(lo).Sign(); {
		case span < 0:
			return "", false
		case span == 0:
			return record.KindVertexVertex, true // single shared endpoint
		default:
			return record.KindEdgeEdge, true // positive-length sub-segment
		}
	}

	// Non-parallel: Cramer solve, then closed-interval membership.
	t := ex.Mul(dy2).Sub(ey.Mul(dx2)).Div(det)
	s := ex.Mul(dy1).Sub(ey.Mul(dx1)).Div(det)

	one := f.One()
	if t.Sign() < 0 || t.Sub(one).Sign() > 0 || s.Sign() < 0 || s.Sub(one).Sign() > 0 {
		return "", false
	}

	tEnd := t.IsZero() || t.Equal(one)
	sEnd := s.IsZero() || s.Equal(one)
	switch {
	case tEnd && sEnd:
		return record.KindVertexVertex, true
	case tEnd || sEnd:
		return record.KindEdgeVertex, true
	default:
		return record.KindFaceFace, true
	}
}
