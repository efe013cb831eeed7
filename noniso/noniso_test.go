package noniso_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unfoldlab/rotunfold/noniso"
	"github.com/unfoldlab/rotunfold/polyhedron"
	"github.com/unfoldlab/rotunfold/record"
	"github.com/unfoldlab/rotunfold/unfold"
)

// pathFaces builds the face entries of a tetrahedron path from
// (face, edge) hops; coordinates are irrelevant to canonical forms.
func pathFaces(p *polyhedron.Polyhedron, hops ...[2]int) []record.UnfoldedFace {
	faces := make([]record.UnfoldedFace, len(hops))
	for i, h := range hops {
		faces[i] = record.UnfoldedFace{FaceID: h[0], Gon: p.Gons[h[0]], EdgeID: h[1]}
	}
	return faces
}

func TestSequence_Tetrahedron(t *testing.T) {
	p := polyhedron.Tetrahedron()

	// 0 -(edge 0)-> 1 -(edge 2)-> 2: within face 1 the exit edge 2 sits
	// two clockwise steps from the entry edge 0.
	seq := noniso.Sequence(p, pathFaces(p, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 2}))
	assert.Equal(t, []int{3, 0, 3, 2, 3, -1}, seq)

	// The mirror path 0 -(edge 0)-> 1 -(edge 4)-> 3 steps once.
	mirror := noniso.Sequence(p, pathFaces(p, [2]int{0, 0}, [2]int{1, 0}, [2]int{3, 4}))
	assert.Equal(t, []int{3, 0, 3, 1, 3, -1}, mirror)
}

func TestFlipReverse(t *testing.T) {
	seq := []int{3, 0, 3, 2, 3, -1}

	assert.Equal(t, []int{3, 0, 3, 1, 3, -1}, noniso.Flip(seq))
	assert.Equal(t, []int{3, 0, 3, 1, 3, -1}, noniso.Reverse(seq))

	// Flip and Reverse are involutions.
	assert.Equal(t, seq, noniso.Flip(noniso.Flip(seq)))
	assert.Equal(t, seq, noniso.Reverse(noniso.Reverse(seq)))
}

func TestCanonicalKey_MirrorPathsCoincide(t *testing.T) {
	p := polyhedron.Tetrahedron()
	a := noniso.Sequence(p, pathFaces(p, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 2}))
	b := noniso.Sequence(p, pathFaces(p, [2]int{0, 0}, [2]int{1, 0}, [2]int{3, 4}))

	ka := noniso.CanonicalKey(a)
	kb := noniso.CanonicalKey(b)
	assert.Equal(t, noniso.Signature(ka), noniso.Signature(kb))
	assert.Equal(t, []int{3, 0, 3, 1, 3, -1}, ka)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, noniso.Compare([]int{1, 2}, []int{1, 2}))
	assert.Equal(t, -1, noniso.Compare([]int{1, 1}, []int{1, 2}))
	assert.Equal(t, 1, noniso.Compare([]int{2, 0}, []int{1, 9}))
	assert.Equal(t, -1, noniso.Compare([]int{-1, 0}, []int{0, 0}))
}

// rawTetrahedron captures the enumerator's output for one root of the
// tetrahedron: five records in two isomorphism classes plus the
// two-face prefix.
func rawTetrahedron(t *testing.T) []byte {
	t.Helper()
	p := polyhedron.Tetrahedron()
	var buf bytes.Buffer
	_, err := unfold.Run(p, []polyhedron.RootPair{{BaseFace: 0, BaseEdge: 0}}, &buf, false)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestFilter_DropsIsomorphicDuplicates(t *testing.T) {
	p := polyhedron.Tetrahedron()
	raw := rawTetrahedron(t)

	var out bytes.Buffer
	in, kept, err := noniso.Filter(p, bytes.NewReader(raw), &out)
	require.NoError(t, err)
	assert.Equal(t, 3, in)
	assert.Equal(t, 2, kept)

	// Kept lines are the first two input lines, byte for byte.
	rawLines := bytes.SplitAfter(raw, []byte("\n"))
	want := bytes.Join(rawLines[:2], nil)
	assert.Equal(t, want, out.Bytes())
}

func TestFilter_Idempotent(t *testing.T) {
	p := polyhedron.Tetrahedron()
	raw := rawTetrahedron(t)

	var once bytes.Buffer
	_, _, err := noniso.Filter(p, bytes.NewReader(raw), &once)
	require.NoError(t, err)

	var twice bytes.Buffer
	in, kept, err := noniso.Filter(p, bytes.NewReader(once.Bytes()), &twice)
	require.NoError(t, err)
	assert.Equal(t, in, kept, "already-deduplicated input passes through whole")
	assert.Equal(t, once.Bytes(), twice.Bytes())
}

func TestFilter_MalformedRecordIsFatal(t *testing.T) {
	p := polyhedron.Tetrahedron()
	raw := append(rawTetrahedron(t), []byte("{\"schema_version\":9}\n")...)

	var out bytes.Buffer
	_, _, err := noniso.Filter(p, bytes.NewReader(raw), &out)
	assert.ErrorIs(t, err, record.ErrSchemaVersion)
}
