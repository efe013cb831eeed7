package exact

import (
	"fmt"

	"github.com/unfoldlab/rotunfold/cyclo"
	"github.com/unfoldlab/rotunfold/polyhedron"
	"github.com/unfoldlab/rotunfold/record"
)

// point is an exact planar point.
type point struct {
	x, y *cyclo.Elem
}

// placement is one face laid out exactly: centre coordinates plus the
// orientation angle as an integer multiple of π/L.
type placement struct {
	faceID int
	gon    int
	cx, cy *cyclo.Elem
	angK   int // orientation = angK · π/L
}

// geometryContext bundles the field and per-gon constants for one record.
type geometryContext struct {
	fld *cyclo.Field
	l   int // L: all angles are integer multiples of π/L

	inr  map[int]*cyclo.Elem // inradius by gon
	circ map[int]*cyclo.Elem // circumradius by gon
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }

// contextFor builds (or reuses) the geometry context covering every gon
// on the path. L is the lcm of the gons; the field Q(ζ_4L) contains
// cos and sin of every multiple of π/L and of the π/gon offsets.
func (v *Verifier) contextFor(faces []record.UnfoldedFace) (*geometryContext, error) {
	l := 1
	for _, f := range faces {
		l = lcm(l, f.Gon)
	}
	n := 4 * l

	ctx, ok := v.contexts[n]
	if !ok {
		ctx = &geometryContext{
			fld:  cyclo.NewField(n),
			l:    l,
			inr:  make(map[int]*cyclo.Elem),
			circ: make(map[int]*cyclo.Elem),
		}
		v.contexts[n] = ctx
	}
	for _, f := range faces {
		if err := ctx.radii(f.Gon); err != nil {
			return nil, err
		}
	}
	return ctx, nil
}

// radii memoises the exact inradius cos(π/n)/(2 sin(π/n)) and
// circumradius 1/(2 sin(π/n)) of the regular n-gon with unit side.
func (g *geometryContext) radii(gon int) error {
	if _, ok := g.inr[gon]; ok {
		return nil
	}
	c, err := g.fld.CosPi(1, gon)
	if err != nil {
		return fmt.Errorf("exact: inradius(%d): %w", gon, err)
	}
	s, err := g.fld.SinPi(1, gon)
	if err != nil {
		return fmt.Errorf("exact: inradius(%d): %w", gon, err)
	}
	twoSin := s.MulRat(two)
	g.circ[gon] = g.fld.One().Div(twoSin)
	g.inr[gon] = c.Div(twoSin)
	return nil
}

// cosK, sinK evaluate cos/sin(k·π/L) in the field.
func (g *geometryContext) cosK(k int) *cyclo.Elem {
	e, err := g.fld.CosPi(k, g.l)
	if err != nil {
		panic(err) // L divides the field order by construction
	}
	return e
}

func (g *geometryContext) sinK(k int) *cyclo.Elem {
	e, err := g.fld.SinPi(k, g.l)
	if err != nil {
		panic(err)
	}
	return e
}

// ccwSteps counts counter-clockwise steps from the entry edge to the
// exit edge within the face's edge cycle, or -1 when absent.
func ccwSteps(p *polyhedron.Polyhedron, face, entryEdge, exitEdge int) int {
	edges := p.Edges[face]
	gon := len(edges)
	pos := p.EdgeIndex(face, entryEdge)
	if pos < 0 {
		return -1
	}
	for step := 1; step <= gon; step++ {
		if edges[(pos+step)%gon] == exitEdge {
			return step
		}
	}
	return -1
}

// reconstruct recomputes every face placement of the path in exact form.
// The base face sits at the origin with orientation 0; the second face
// is displaced along the x-axis by the sum of the two inradii with
// orientation -π; each further face is displaced from its predecessor by
// the inradius sum along the exact angle θ = prev - cnt·(2π/gon_prev),
// taking orientation θ - π.
func (v *Verifier) reconstruct(g *geometryContext, faces []record.UnfoldedFace) ([]placement, error) {
	out := make([]placement, 0, len(faces))

	f0 := faces[0]
	out = append(out, placement{
		faceID: f0.FaceID, gon: f0.Gon,
		cx: g.fld.Zero(), cy: g.fld.Zero(), angK: 0,
	})
	if len(faces) < 2 {
		return out, nil
	}

	f1 := faces[1]
	out = append(out, placement{
		faceID: f1.FaceID, gon: f1.Gon,
		cx:   g.inr[f0.Gon].Add(g.inr[f1.Gon]),
		cy:   g.fld.Zero(),
		angK: -g.l, // -π
	})

	for idx := 2; idx < len(faces); idx++ {
		prev := out[idx-1]
		prevEdge := faces[idx-1].EdgeID
		cur := faces[idx]

		cnt := ccwSteps(v.poly, prev.faceID, prevEdge, cur.EdgeID)
		if cnt < 0 {
			return nil, fmt.Errorf("%w: face %d edges %d -> %d",
				ErrBrokenPath, prev.faceID, prevEdge, cur.EdgeID)
		}

		// θ_centre = ang_prev - cnt·(2π/gon_prev), in units of π/L.
		thetaK := prev.angK - cnt*(2*g.l/prev.gon)

		delta := g.inr[prev.gon].Add(g.inr[cur.Gon])
		out = append(out, placement{
			faceID: cur.FaceID, gon: cur.Gon,
			cx:   prev.cx.Add(delta.Mul(g.cosK(thetaK))),
			cy:   prev.cy.Add(delta.Mul(g.sinK(thetaK))),
			angK: thetaK - g.l,
		})
	}
	return out, nil
}

// vertices returns the exact corners of a placed face: vertex k sits at
// centre + circumradius · (cos, sin)(ang + π/gon + 2πk/gon).
func (g *geometryContext) vertices(pl placement) []point {
	out := make([]point, pl.gon)
	r := g.circ[pl.gon]
	for k := 0; k < pl.gon; k++ {
		// angle in units of π/L: ang + L/gon + 2kL/gon
		vk := pl.angK + g.l/pl.gon + 2*k*g.l/pl.gon
		out[k] = point{
			x: pl.cx.Add(r.Mul(g.cosK(vk))),
			y: pl.cy.Add(r.Mul(g.sinK(vk))),
		}
	}
	return out
}
