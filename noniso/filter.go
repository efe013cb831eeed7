package noniso

import (
	"fmt"
	"io"

	"github.com/unfoldlab/rotunfold/polyhedron"
	"github.com/unfoldlab/rotunfold/record"
)

// Deduper is the order-preserving isomorphism filter. It remembers the
// canonical signatures of every record it has kept; a record is kept
// iff its signature is new.
type Deduper struct {
	poly *polyhedron.Polyhedron
	seen map[string]struct{}
}

// NewDeduper returns a Deduper over p's combinatorial structure.
func NewDeduper(p *polyhedron.Polyhedron) *Deduper {
	return &Deduper{poly: p, seen: make(map[string]struct{})}
}

// Keep decides whether rec is the first of its isomorphism class.
func (d *Deduper) Keep(rec *record.Record) bool {
	sig := Signature(CanonicalKey(Sequence(d.poly, rec.Faces)))
	if _, dup := d.seen[sig]; dup {
		return false
	}
	d.seen[sig] = struct{}{}

	return true
}

// Filter streams the raw record stream r, writing kept lines to w
// verbatim. Records are parsed only to validate them and compute their
// signature; output bytes equal input bytes for every kept line, so the
// stage is idempotent. Returns the input and output record counts.
func Filter(p *polyhedron.Polyhedron, r io.Reader, w io.Writer) (in, out int, err error) {
	d := NewDeduper(p)

	err = record.EachLine(r, func(lineNum int, line []byte) error {
		rec, perr := record.Parse(line)
		if perr != nil {
			return fmt.Errorf("line %d: %w", lineNum, perr)
		}
		if berr := rec.CheckBounds(p); berr != nil {
			return fmt.Errorf("line %d: %w", lineNum, berr)
		}
		in++

		if !d.Keep(rec) {
			return nil
		}
		if _, werr := w.Write(line); werr != nil {
			return fmt.Errorf("noniso: write line %d: %w", lineNum, werr)
		}
		if _, werr := w.Write([]byte{'\n'}); werr != nil {
			return fmt.Errorf("noniso: write line %d: %w", lineNum, werr)
		}
		out++

		return nil
	})
	if err != nil {
		return in, out, err
	}

	return in, out, nil
}
