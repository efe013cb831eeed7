package unfold

import (
	"fmt"
	"io"
	"math"

	"github.com/unfoldlab/rotunfold/geom"
	"github.com/unfoldlab/rotunfold/polyhedron"
	"github.com/unfoldlab/rotunfold/record"
)

// searcher encapsulates the state of one root-pair exploration.
type searcher struct {
	poly     *polyhedron.Polyhedron
	baseFace int
	baseEdge int
	opts     Options

	used    []bool                // faces on the current path
	path    []record.UnfoldedFace // the current partial unfolding
	rec     record.Record         // reused emission envelope
	emitted int
}

// faceState carries the placement of the face about to be added, plus
// the pruning bookkeeping, between recursive calls.
type faceState struct {
	face int // face being placed
	edge int // edge shared with the predecessor

	x, y  float64 // centre
	angle float64 // degrees, from this centre back towards the predecessor

	// remaining is the sum of circumcircle diameters over faces not yet
	// used, excluding this one once placed; the distance pruning bound.
	remaining float64

	// yOnAxis is true while no face centre has left y = 0. Used only
	// when symmetry pruning is active.
	yOnAxis bool
}

// Search explores every path starting at root and reports the number of
// records emitted. The polyhedron must already be validated; root
// consistency is checked here.
func Search(p *polyhedron.Polyhedron, root polyhedron.RootPair, opts ...Option) (int, error) {
	// 1. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Validate the root pair.
	if root.BaseFace < 0 || root.BaseFace >= p.NumFaces {
		return 0, fmt.Errorf("%w: face %d", ErrBaseFaceRange, root.BaseFace)
	}
	basePos := p.EdgeIndex(root.BaseFace, root.BaseEdge)
	if basePos < 0 {
		return 0, fmt.Errorf("%w: edge %d on face %d", ErrBaseEdgeNotOnFace, root.BaseEdge, root.BaseFace)
	}

	// 3. Initialise the per-search scratch. The base face starts marked
	//    used and laid at the origin; its angle is arbitrary.
	s := &searcher{
		poly:     p,
		baseFace: root.BaseFace,
		baseEdge: root.BaseEdge,
		opts:     o,
		used:     make([]bool, p.NumFaces),
		path:     make([]record.UnfoldedFace, 0, p.NumFaces),
	}
	s.used[root.BaseFace] = true
	s.path = append(s.path, record.UnfoldedFace{
		FaceID: root.BaseFace,
		Gon:    p.Gons[root.BaseFace],
		EdgeID: root.BaseEdge,
	})

	// 4. The second face is derived directly from the initial placement;
	//    faces beyond it are computed recursively.
	if err := s.walk(s.secondFaceState(basePos)); err != nil {
		return s.emitted, err
	}

	return s.emitted, nil
}

// secondFaceState places the face across the base edge. With the base
// edge perpendicular to the positive x-axis, the second centre lies on
// y = 0 at the sum of the two inradii, and the vector back to the base
// centre points along -x, so the back-angle starts at -180°.
func (s *searcher) secondFaceState(basePos int) faceState {
	p := s.poly

	// Sum of circumcircle diameters over every face except the base:
	// the budget for the distance pruning rule.
	remaining := 0.0
	for f := 0; f < p.NumFaces; f++ {
		if f != s.baseFace {
			remaining += 2.0 * geom.Circumradius(p.Gons[f])
		}
	}

	second := p.Neighbors[s.baseFace][basePos]

	return faceState{
		face:      second,
		edge:      s.baseEdge,
		x:         geom.Inradius(p.Gons[s.baseFace]) + geom.Inradius(p.Gons[second]),
		y:         0.0,
		angle:     -180.0,
		remaining: remaining,
		yOnAxis:   true,
	}
}

// walk adds the face described by st to the path, applies the pruning
// rules, emits a candidate when the circumcircle gate passes, and
// recurses into the unused neighbours in counter-clockwise order. The
// scratch state is restored before returning.
func (s *searcher) walk(st faceState) error {
	p := s.poly
	f := st.face
	gon := p.Gons[f]

	s.used[f] = true
	st.remaining -= 2.0 * geom.Circumradius(gon)
	st.angle = geom.NormalizeAngle(st.angle)
	st.x, st.y = geom.SnapZero(st.x), geom.SnapZero(st.y)

	s.path = append(s.path, record.UnfoldedFace{
		FaceID:   f,
		Gon:      gon,
		EdgeID:   st.edge,
		X:        st.x,
		Y:        st.y,
		AngleDeg: st.angle,
	})

	rho := geom.DistanceFromOrigin(st.x, st.y)
	r0 := geom.Circumradius(p.Gons[s.baseFace])
	rc := geom.Circumradius(gon)

	// Distance pruning: even spending every remaining face, the path
	// cannot re-approach the base circumcircle.
	if rho > st.remaining+r0+rc+geom.Buffer {
		s.backtrack(f)
		return nil
	}

	// Symmetry pruning: a subtree that dips below the x-axis before ever
	// rising above it is the mirror image of one found on the positive side.
	if s.opts.Symmetric {
		if st.y > 0.0 {
			st.yOnAxis = false
		}
		if st.yOnAxis && st.y < 0.0 {
			s.backtrack(f)
			return nil
		}
	}

	// Output gate: the circumcircles of the base and current face are
	// close enough that a genuine overlap is possible. Over-emission is
	// fine; the verifier decides exactly.
	if rho < r0+rc+geom.Buffer {
		if err := s.emit(); err != nil {
			return err
		}
	}

	// Expand children: the gon-1 outgoing edges in counter-clockwise
	// order from the incoming edge, rotating by 360°/gon per step.
	pos := p.EdgeIndex(f, st.edge)
	angle := st.angle
	for i := pos + 1; i < pos+gon; i++ {
		angle = geom.NormalizeAngle(angle - 360.0/float64(gon))

		next := p.Neighbors[f][i%gon]
		if s.used[next] {
			continue
		}

		d := geom.Inradius(gon) + geom.Inradius(p.Gons[next])
		rad := angle * math.Pi / 180.0
		child := faceState{
			face:      next,
			edge:      p.Edges[f][i%gon],
			x:         st.x + d*math.Cos(rad),
			y:         st.y + d*math.Sin(rad),
			angle:     angle - 180.0,
			remaining: st.remaining,
			yOnAxis:   st.yOnAxis,
		}
		if err := s.walk(child); err != nil {
			return err
		}
	}

	s.backtrack(f)
	return nil
}

// backtrack removes the face added last and releases it for other branches.
func (s *searcher) backtrack(face int) {
	s.path = s.path[:len(s.path)-1]
	s.used[face] = false
}

// emit hands the current path to the sink. The envelope and its faces
// slice are reused; sinks must copy what they keep.
func (s *searcher) emit() error {
	s.rec = record.Record{
		SchemaVersion: record.SchemaVersion,
		RecordType:    record.TypePartialUnfolding,
		BasePair:      polyhedron.RootPair{BaseFace: s.baseFace, BaseEdge: s.baseEdge},
		SymmetricUsed: s.opts.Symmetric,
		Faces:         s.path,
	}
	if err := s.opts.Emit(&s.rec); err != nil {
		return err
	}
	s.emitted++

	return nil
}

// Run validates p, then searches every root pair in input order and
// writes the emitted records to w in deterministic traversal order.
// Returns the total number of records written.
func Run(p *polyhedron.Polyhedron, roots []polyhedron.RootPair, w io.Writer, symmetric bool) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	var buf []byte
	total := 0
	for _, root := range roots {
		n, err := Search(p, root,
			WithSymmetry(symmetric),
			WithEmit(func(rec *record.Record) error {
				buf = record.Append(buf[:0], rec)
				if _, werr := w.Write(buf); werr != nil {
					return fmt.Errorf("unfold: write record: %w", werr)
				}
				return nil
			}),
		)
		total += n
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// ResolveSymmetry resolves the symmetry-mode option to the pruning flag.
// The returned basis string records how the decision was made, for the
// provenance document: "mode:on", "mode:off", or "auto:poly_name=<name>".
func ResolveSymmetry(mode, polyName string) (bool, string, error) {
	switch mode {
	case "on":
		return true, "mode:on", nil
	case "off":
		return false, "mode:off", nil
	case "auto":
		return polyhedron.Symmetric(polyName), "auto:poly_name=" + polyName, nil
	default:
		return false, "", fmt.Errorf("%w: %q", ErrSymmetryMode, mode)
	}
}
