package exact

import (
	"fmt"
	"io"
	"math/big"

	"github.com/unfoldlab/rotunfold/polyhedron"
	"github.com/unfoldlab/rotunfold/record"
)

// Verifier decides exact endpoint overlap for partial-unfolding records
// over one polyhedron. It owns the per-process caches: vertex incidence,
// cyclotomic fields, and simplified radius constants per gon.
type Verifier struct {
	poly     *polyhedron.Polyhedron
	vi       *polyhedron.VertexIncidence
	contexts map[int]*geometryContext
	eps      *big.Float
}

// NewVerifier builds a Verifier, reconstructing the vertex incidence the
// chain-skipping rules rely on.
func NewVerifier(p *polyhedron.Polyhedron) (*Verifier, error) {
	vi, err := p.VertexIncidence()
	if err != nil {
		return nil, err
	}
	return &Verifier{
		poly:     p,
		vi:       vi,
		contexts: make(map[int]*geometryContext),
		eps:      stageEps(),
	}, nil
}

// Check decides whether rec's endpoint faces genuinely overlap, and with
// what kind. A skipped pair (endpoint faces that are neighbours or share
// a polyhedron vertex) is no overlap. The scan classifies by the
// strongest kind across all edge pairs; only face-face short-circuits.
func (v *Verifier) Check(rec *record.Record) (record.Kind, bool, error) {
	faces := rec.Faces
	n := len(faces)
	if n < 2 {
		return "", false, nil
	}
	base, last := faces[0].FaceID, faces[n-1].FaceID

	// Shared-edge skip: the trivial two-face unfolding cannot overlap.
	if v.poly.AreNeighbors(base, last) {
		return "", false, nil
	}
	// Vertex-chain skip: faces around a common vertex only ever touch at
	// that vertex (angle defect), legitimate contact rather than overlap.
	if v.vi.SharedVertex(base, last) {
		return "", false, nil
	}

	// Exact reconstruction; the record's float coordinates are ignored.
	g, err := v.contextFor(faces)
	if err != nil {
		return "", false, err
	}
	placed, err := v.reconstruct(g, faces)
	if err != nil {
		return "", false, err
	}
	pa := g.vertices(placed[0])
	pb := g.vertices(placed[n-1])

	kind, hit := scanPolygons(pa, pb, v.eps)
	return kind, hit, nil
}

// scanPolygons runs the two-stage test over the full cross-product of
// edge pairs and returns the strongest kind found. Only face-face may
// cut the scan short, so the result is independent of enumeration order.
func scanPolygons(pa, pb []point, eps *big.Float) (record.Kind, bool) {
	// One numeric evaluation per vertex serves every stage-1 test.
	na := make([]numPt, len(pa))
	for i, p := range pa {
		na[i] = numEval(p)
	}
	nb := make([]numPt, len(pb))
	for i, p := range pb {
		nb[i] = numEval(p)
	}

	best := record.Kind("")
	for i := range pa {
		a1, a2 := i, (i+1)%len(pa)
		for j := range pb {
			b1, b2 := j, (j+1)%len(pb)

			var kind record.Kind
			var hit bool
			switch stage1(na[a1], na[a2], nb[b1], nb[b2], eps) {
			case s1Reject:
				continue
			case s1FaceFace:
				kind, hit = record.KindFaceFace, true
			case s1Escalate:
				kind, hit = classifyExact(pa[a1], pa[a2], pb[b1], pb[b2])
			}
			if !hit {
				continue
			}
			if kind == record.KindFaceFace {
				return kind, true // maximum priority: short-circuit
			}
			if kind.Priority() > best.Priority() {
				best = kind
			}
		}
	}

	return best, best != ""
}

// checkLine wraps Check with a panic barrier: an undecidable comparison
// inside the exact engine surfaces as a fatal error naming the line.
func (v *Verifier) checkLine(lineNum int, rec *record.Record) (kind record.Kind, keep bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: line %d: %v", ErrEngine, lineNum, r)
		}
	}()
	kind, keep, err = v.Check(rec)
	if err != nil {
		err = fmt.Errorf("line %d: %w", lineNum, err)
	}
	return kind, keep, err
}

// Filter streams the deduplicated record stream r, writing to w only the
// records whose endpoints truly overlap, augmented with the
// exact_overlap.kind field. All other bytes of a kept line are copied
// verbatim; a record already carrying the field is re-emitted unchanged
// when the decision agrees, so the stage is idempotent.
func Filter(p *polyhedron.Polyhedron, r io.Reader, w io.Writer) (in, out int, err error) {
	v, err := NewVerifier(p)
	if err != nil {
		return 0, 0, err
	}

	err = record.EachLine(r, func(lineNum int, line []byte) error {
		rec, perr := record.Parse(line)
		if perr != nil {
			return fmt.Errorf("line %d: %w", lineNum, perr)
		}
		if berr := rec.CheckBounds(p); berr != nil {
			return fmt.Errorf("line %d: %w", lineNum, berr)
		}
		in++

		kind, keep, cerr := v.checkLine(lineNum, rec)
		if cerr != nil {
			return cerr
		}
		if !keep {
			return nil
		}

		var buf []byte
		if rec.ExactOverlap == nil {
			// Verbatim copy plus the one new field, spliced in before
			// the closing brace.
			buf = make([]byte, 0, len(line)+48)
			buf = append(buf, line[:len(line)-1]...)
			buf = append(buf, `,"exact_overlap":{"kind":"`...)
			buf = append(buf, string(kind)...)
			buf = append(buf, '"', '}', '}', '\n')
		} else {
			rec.ExactOverlap = &record.Overlap{Kind: kind}
			buf = record.Append(nil, rec)
		}
		if _, werr := w.Write(buf); werr != nil {
			return fmt.Errorf("exact: write line %d: %w", lineNum, werr)
		}
		out++

		return nil
	})
	return in, out, err
}
