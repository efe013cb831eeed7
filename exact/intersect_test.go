package exact

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unfoldlab/rotunfold/cyclo"
	"github.com/unfoldlab/rotunfold/record"
)

// pt builds an exact point with rational coordinates a/b, c/d.
func pt(f *cyclo.Field, a, b, c, d int64) point {
	return point{
		x: f.FromRat(big.NewRat(a, b)),
		y: f.FromRat(big.NewRat(c, d)),
	}
}

func TestClassifyExact_ProperCrossing(t *testing.T) {
	f := cyclo.NewField(8)
	kind, hit := classifyExact(
		pt(f, 0, 1, -1, 1), pt(f, 0, 1, 1, 1),
		pt(f, -1, 1, 0, 1), pt(f, 1, 1, 0, 1),
	)
	require.True(t, hit)
	assert.Equal(t, record.KindFaceFace, kind)
}

func TestClassifyExact_SharedEndpoint(t *testing.T) {
	f := cyclo.NewField(8)
	kind, hit := classifyExact(
		pt(f, 0, 1, 0, 1), pt(f, 1, 1, 0, 1),
		pt(f, 0, 1, 0, 1), pt(f, 0, 1, 1, 1),
	)
	require.True(t, hit)
	assert.Equal(t, record.KindVertexVertex, kind)
}

func TestClassifyExact_EndpointOnInterior(t *testing.T) {
	f := cyclo.NewField(8)
	// B starts in the middle of A and leaves it sideways.
	kind, hit := classifyExact(
		pt(f, 0, 1, 0, 1), pt(f, 2, 1, 0, 1),
		pt(f, 1, 1, 0, 1), pt(f, 1, 1, 1, 1),
	)
	require.True(t, hit)
	assert.Equal(t, record.KindEdgeVertex, kind)
}

func TestClassifyExact_Collinear(t *testing.T) {
	f := cyclo.NewField(8)

	// Positive-length collinear overlap.
	kind, hit := classifyExact(
		pt(f, 0, 1, 0, 1), pt(f, 2, 1, 0, 1),
		pt(f, 1, 1, 0, 1), pt(f, 3, 1, 0, 1),
	)
	require.True(t, hit)
	assert.Equal(t, record.KindEdgeEdge, kind)

	// Collinear, touching only at one shared endpoint.
	kind, hit = classifyExact(
		pt(f, 0, 1, 0, 1), pt(f, 1, 1, 0, 1),
		pt(f, 1, 1, 0, 1), pt(f, 2, 1, 0, 1),
	)
	require.True(t, hit)
	assert.Equal(t, record.KindVertexVertex, kind)

	// Collinear but disjoint.
	_, hit = classifyExact(
		pt(f, 0, 1, 0, 1), pt(f, 1, 1, 0, 1),
		pt(f, 2, 1, 0, 1), pt(f, 3, 1, 0, 1),
	)
	assert.False(t, hit)

	// Parallel on distinct lines.
	_, hit = classifyExact(
		pt(f, 0, 1, 0, 1), pt(f, 1, 1, 0, 1),
		pt(f, 0, 1, 1, 1), pt(f, 1, 1, 1, 1),
	)
	assert.False(t, hit)
}

func TestClassifyExact_Degenerate(t *testing.T) {
	f := cyclo.NewField(8)

	// Point on the interior of a segment.
	kind, hit := classifyExact(
		pt(f, 1, 1, 0, 1), pt(f, 1, 1, 0, 1),
		pt(f, 0, 1, 0, 1), pt(f, 2, 1, 0, 1),
	)
	require.True(t, hit)
	assert.Equal(t, record.KindEdgeVertex, kind)

	// Point coinciding with a vertex of the segment.
	kind, hit = classifyExact(
		pt(f, 0, 1, 0, 1), pt(f, 0, 1, 0, 1),
		pt(f, 0, 1, 0, 1), pt(f, 2, 1, 0, 1),
	)
	require.True(t, hit)
	assert.Equal(t, record.KindVertexVertex, kind)

	// Two distinct degenerate segments.
	_, hit = classifyExact(
		pt(f, 0, 1, 0, 1), pt(f, 0, 1, 0, 1),
		pt(f, 1, 1, 0, 1), pt(f, 1, 1, 0, 1),
	)
	assert.False(t, hit)
}

func nf(s string) *big.Float {
	v, _, err := big.ParseFloat(s, 10, numPrec, big.ToNearestEven)
	if err != nil {
		panic(err)
	}
	return v
}

func np(x, y string) numPt { return numPt{x: nf(x), y: nf(y)} }

func TestStage1_ClearCases(t *testing.T) {
	eps := stageEps()

	// Clean proper crossing decides immediately.
	got := stage1(np("0", "-1"), np("0", "1"), np("-1", "0"), np("1", "0"), eps)
	assert.Equal(t, s1FaceFace, got)

	// Far apart: bounding boxes reject.
	got = stage1(np("0", "0"), np("1", "0"), np("5", "5"), np("6", "6"), eps)
	assert.Equal(t, s1Reject, got)

	// Boxes overlap and the lines cross, but the crossing lies beyond
	// the end of the first segment (t > 1).
	got = stage1(np("0", "0"), np("1", "0"), np("0.9", "-0.5"), np("1.4", "0.5"), eps)
	assert.Equal(t, s1Reject, got)
}

func TestStage1_BoundaryEscalates(t *testing.T) {
	eps := stageEps()

	// Shared endpoint: an orientation is exactly zero.
	got := stage1(np("0", "0"), np("1", "0"), np("0", "0"), np("0", "1"), eps)
	assert.Equal(t, s1Escalate, got)

	// Crossing within 1e-31 of an endpoint: inside the ε band.
	got = stage1(np("0", "0"), np("1", "0"), np("1e-31", "-1"), np("1e-31", "1"), eps)
	assert.Equal(t, s1Escalate, got)

	// Near-parallel with touching boxes.
	got = stage1(np("0", "0"), np("1", "0"), np("0", "1e-31"), np("1", "2e-31"), eps)
	assert.Equal(t, s1Escalate, got)
}

// square returns the CCW vertices of an axis-aligned unit square with
// lower-left corner (ax/b, ay/b).
func square(f *cyclo.Field, ax, ay, b int64) []point {
	return []point{
		pt(f, ax, b, ay, b),
		pt(f, ax+b, b, ay, b),
		pt(f, ax+b, b, ay+b, b),
		pt(f, ax, b, ay+b, b),
	}
}

func TestScanPolygons(t *testing.T) {
	f := cyclo.NewField(8)
	eps := stageEps()
	unit := square(f, 0, 0, 2) // [0,1]² with denominator 2

	cases := []struct {
		name string
		b    []point
		kind record.Kind
		hit  bool
	}{
		{"offset overlap", square(f, 1, 1, 2), record.KindFaceFace, true},
		{"identical", square(f, 0, 0, 2), record.KindEdgeEdge, true},
		{"shared corner", square(f, 2, 2, 2), record.KindVertexVertex, true},
		{"shared side", square(f, 2, 0, 2), record.KindEdgeEdge, true},
		{"disjoint", square(f, 6, 6, 2), "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, hit := scanPolygons(unit, tc.b, eps)
			assert.Equal(t, tc.hit, hit)
			assert.Equal(t, tc.kind, kind)
		})
	}
}
