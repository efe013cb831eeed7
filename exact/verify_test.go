package exact_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unfoldlab/rotunfold/exact"
	"github.com/unfoldlab/rotunfold/noniso"
	"github.com/unfoldlab/rotunfold/polyhedron"
	"github.com/unfoldlab/rotunfold/record"
	"github.com/unfoldlab/rotunfold/unfold"
)

func rec(base polyhedron.RootPair, faces ...record.UnfoldedFace) *record.Record {
	return &record.Record{
		SchemaVersion: record.SchemaVersion,
		RecordType:    record.TypePartialUnfolding,
		BasePair:      base,
		Faces:         faces,
	}
}

func TestCheck_SharedEdgeSkip(t *testing.T) {
	p := polyhedron.Tetrahedron()
	v, err := exact.NewVerifier(p)
	require.NoError(t, err)

	// The trivial two-face unfolding: endpoints are polyhedron
	// neighbours, so no overlap can exist.
	r := rec(polyhedron.RootPair{BaseFace: 0, BaseEdge: 0},
		record.UnfoldedFace{FaceID: 0, Gon: 3, EdgeID: 0},
		record.UnfoldedFace{FaceID: 1, Gon: 3, EdgeID: 0},
	)
	_, keep, err := v.Check(r)
	require.NoError(t, err)
	assert.False(t, keep)
}

func TestCheck_SharedVertexSkip(t *testing.T) {
	p := polyhedron.SquarePyramid()
	v, err := exact.NewVerifier(p)
	require.NoError(t, err)

	// Faces 1 and 3 share no edge but meet at the apex; the angle-defect
	// argument makes their contact legitimate, never an overlap.
	r := rec(polyhedron.RootPair{BaseFace: 1, BaseEdge: 0},
		record.UnfoldedFace{FaceID: 1, Gon: 3, EdgeID: 0},
		record.UnfoldedFace{FaceID: 0, Gon: 4, EdgeID: 0},
		record.UnfoldedFace{FaceID: 3, Gon: 3, EdgeID: 2},
	)
	_, keep, err := v.Check(r)
	require.NoError(t, err)
	assert.False(t, keep)
}

// On the square pyramid every pair of faces shares at least a vertex, so
// the full pipeline must reject every candidate exactly.
func TestFilter_PyramidPipelineRejectsAll(t *testing.T) {
	p := polyhedron.SquarePyramid()

	roots := []polyhedron.RootPair{
		{BaseFace: 0, BaseEdge: 3},
		{BaseFace: 1, BaseEdge: 0},
		{BaseFace: 1, BaseEdge: 5},
	}
	var raw bytes.Buffer
	_, err := unfold.Run(p, roots, &raw, false)
	require.NoError(t, err)

	var dedup bytes.Buffer
	_, kept, err := noniso.Filter(p, bytes.NewReader(raw.Bytes()), &dedup)
	require.NoError(t, err)
	require.Greater(t, kept, 0)

	var out bytes.Buffer
	in, exactKept, err := exact.Filter(p, bytes.NewReader(dedup.Bytes()), &out)
	require.NoError(t, err)
	assert.Equal(t, kept, in)
	assert.Zero(t, exactKept)
	assert.Zero(t, out.Len())
}

func TestFilter_MalformedInputIsFatal(t *testing.T) {
	p := polyhedron.Tetrahedron()
	var out bytes.Buffer
	_, _, err := exact.Filter(p, bytes.NewReader([]byte("{\"schema_version\":3}\n")), &out)
	assert.ErrorIs(t, err, record.ErrSchemaVersion)
}

func TestFilter_BoundsErrorIsFatal(t *testing.T) {
	p := polyhedron.Tetrahedron()
	line := record.Append(nil, rec(polyhedron.RootPair{BaseFace: 0, BaseEdge: 0},
		record.UnfoldedFace{FaceID: 0, Gon: 3, EdgeID: 0},
		record.UnfoldedFace{FaceID: 42, Gon: 3, EdgeID: 0},
	))
	var out bytes.Buffer
	_, _, err := exact.Filter(p, bytes.NewReader(line), &out)
	assert.ErrorIs(t, err, record.ErrFaceRange)
}
