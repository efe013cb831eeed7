package record

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/unfoldlab/rotunfold/geom"
	"github.com/unfoldlab/rotunfold/polyhedron"
)

// Append serialises rec onto dst as one '\n'-terminated line in the
// pinned byte format: stable field order, fixed-point six-fractional-digit
// x, y, angle_deg. Angles are normalised to [-180, 180] and all three
// numeric fields rounded half-away-from-zero before formatting, so the
// same record always produces the same bytes.
func Append(dst []byte, rec *Record) []byte {
	dst = append(dst, `{"schema_version":`...)
	dst = strconv.AppendInt(dst, int64(rec.SchemaVersion), 10)
	dst = append(dst, `,"record_type":"`...)
	dst = append(dst, rec.RecordType...)
	dst = append(dst, `","base_pair":{"base_face":`...)
	dst = strconv.AppendInt(dst, int64(rec.BasePair.BaseFace), 10)
	dst = append(dst, `,"base_edge":`...)
	dst = strconv.AppendInt(dst, int64(rec.BasePair.BaseEdge), 10)
	dst = append(dst, `},"symmetric_used":`...)
	dst = strconv.AppendBool(dst, rec.SymmetricUsed)
	dst = append(dst, `,"faces":[`...)
	for i := range rec.Faces {
		if i > 0 {
			dst = append(dst, ',')
		}
		f := &rec.Faces[i]
		dst = append(dst, `{"face_id":`...)
		dst = strconv.AppendInt(dst, int64(f.FaceID), 10)
		dst = append(dst, `,"gon":`...)
		dst = strconv.AppendInt(dst, int64(f.Gon), 10)
		dst = append(dst, `,"edge_id":`...)
		dst = strconv.AppendInt(dst, int64(f.EdgeID), 10)
		dst = append(dst, `,"x":`...)
		dst = appendFixed6(dst, f.X)
		dst = append(dst, `,"y":`...)
		dst = appendFixed6(dst, f.Y)
		dst = append(dst, `,"angle_deg":`...)
		dst = appendFixed6(dst, geom.NormalizeAngle(f.AngleDeg))
		dst = append(dst, '}')
	}
	dst = append(dst, ']')
	if rec.ExactOverlap != nil {
		dst = append(dst, `,"exact_overlap":{"kind":"`...)
		dst = append(dst, string(rec.ExactOverlap.Kind)...)
		dst = append(dst, `"}`...)
	}
	dst = append(dst, '}', '\n')

	return dst
}

// appendFixed6 rounds v half away from zero and formats it with exactly
// six fractional digits.
func appendFixed6(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, geom.Round6(v), 'f', 6, 64)
}

// Write serialises rec to w as one line.
func Write(w io.Writer, rec *Record) error {
	line := Append(nil, rec)
	if _, err := w.Write(line); err != nil {
		return fmt.Errorf("record: write: %w", err)
	}

	return nil
}

// Parse decodes one stream line into a Record and checks the schema
// tags and record shape. Any failure is fatal to the reading stage.
func Parse(line []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(line, &rec); err != nil {
		return nil, fmt.Errorf("record: parse: %w", err)
	}
	if rec.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchemaVersion, rec.SchemaVersion, SchemaVersion)
	}
	if rec.RecordType != TypePartialUnfolding {
		return nil, fmt.Errorf("%w: %q", ErrRecordType, rec.RecordType)
	}
	if len(rec.Faces) == 0 {
		return nil, ErrNoFaces
	}
	seen := make(map[int]bool, len(rec.Faces))
	for _, f := range rec.Faces {
		if seen[f.FaceID] {
			return nil, fmt.Errorf("%w: face %d", ErrDuplicateFace, f.FaceID)
		}
		seen[f.FaceID] = true
	}

	return &rec, nil
}

// CheckBounds verifies that every face and edge referenced by rec exists
// on p: each face_id is a face, its gon matches, and each edge_id bounds
// its face.
func (rec *Record) CheckBounds(p *polyhedron.Polyhedron) error {
	for _, f := range rec.Faces {
		if f.FaceID < 0 || f.FaceID >= p.NumFaces {
			return fmt.Errorf("%w: face %d", ErrFaceRange, f.FaceID)
		}
		if p.Gons[f.FaceID] != f.Gon {
			return fmt.Errorf("%w: face %d has gon %d, record says %d",
				ErrFaceRange, f.FaceID, p.Gons[f.FaceID], f.Gon)
		}
		if p.EdgeIndex(f.FaceID, f.EdgeID) < 0 {
			return fmt.Errorf("%w: edge %d on face %d", ErrEdgeRange, f.EdgeID, f.FaceID)
		}
	}

	return nil
}
