package polyhedron_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unfoldlab/rotunfold/polyhedron"
)

func TestCatalog_Valid(t *testing.T) {
	assert.NoError(t, polyhedron.Tetrahedron().Validate())
	assert.NoError(t, polyhedron.SquarePyramid().Validate())
}

func TestEdgeIndex(t *testing.T) {
	p := polyhedron.Tetrahedron()
	assert.Equal(t, 0, p.EdgeIndex(0, 0))
	assert.Equal(t, 1, p.EdgeIndex(0, 3))
	assert.Equal(t, 2, p.EdgeIndex(0, 1))
	assert.Equal(t, -1, p.EdgeIndex(0, 5), "CD does not bound ABC")
}

func TestAreNeighbors(t *testing.T) {
	p := polyhedron.SquarePyramid()
	assert.True(t, p.AreNeighbors(0, 1))
	assert.True(t, p.AreNeighbors(1, 2))
	assert.False(t, p.AreNeighbors(1, 3), "opposite slant triangles share only the apex")
}

func TestValidate_Reciprocity(t *testing.T) {
	p := polyhedron.Tetrahedron()
	p.Neighbors[0][0] = 2 // break: ABC now claims ACD across edge AB
	err := p.Validate()
	assert.ErrorIs(t, err, polyhedron.ErrNotReciprocal)
}

func TestValidate_EdgeCoverage(t *testing.T) {
	p := polyhedron.Tetrahedron()
	// Relabel one side of edge 0 so that edge 0 appears once and edge 9 once.
	p.Edges[0][0] = 9
	err := p.Validate()
	// Either reciprocity or coverage may trip first; both identify the breakage.
	assert.Error(t, err)
}

func TestVertexIncidence_Tetrahedron(t *testing.T) {
	p := polyhedron.Tetrahedron()
	vi, err := p.VertexIncidence()
	require.NoError(t, err)
	assert.Equal(t, 4, vi.NumVertices)
	require.NoError(t, vi.ValidateDegrees())

	// Sum of corner incidences equals the total corner count.
	corners := 0
	for f := 0; f < p.NumFaces; f++ {
		corners += p.Gons[f]
	}
	assert.Equal(t, 12, corners)

	// On a tetrahedron any two faces share an edge, hence a vertex.
	for f := 0; f < p.NumFaces; f++ {
		for g := 0; g < p.NumFaces; g++ {
			assert.True(t, vi.SharedVertex(f, g), "faces %d,%d", f, g)
		}
	}
}

func TestVertexIncidence_SquarePyramid(t *testing.T) {
	p := polyhedron.SquarePyramid()
	vi, err := p.VertexIncidence()
	require.NoError(t, err)
	assert.Equal(t, 5, vi.NumVertices)
	require.NoError(t, vi.ValidateDegrees())

	// The apex joins all four slant triangles: faces 1 and 3 share no
	// edge but must share the apex vertex.
	assert.True(t, vi.SharedVertex(1, 3))
	assert.True(t, vi.SharedVertex(2, 4))
}

const pyramidDoc = `{
  "schema_version": 1,
  "polyhedron": {"class": "johnson", "name": "n01"},
  "faces": [
    {"face_id": 0, "gon": 4, "neighbors": [
      {"edge_id": 3, "face_id": 4}, {"edge_id": 2, "face_id": 3},
      {"edge_id": 1, "face_id": 2}, {"edge_id": 0, "face_id": 1}]},
    {"face_id": 1, "gon": 3, "neighbors": [
      {"edge_id": 0, "face_id": 0}, {"edge_id": 5, "face_id": 2}, {"edge_id": 4, "face_id": 4}]},
    {"face_id": 2, "gon": 3, "neighbors": [
      {"edge_id": 1, "face_id": 0}, {"edge_id": 6, "face_id": 3}, {"edge_id": 5, "face_id": 1}]},
    {"face_id": 3, "gon": 3, "neighbors": [
      {"edge_id": 2, "face_id": 0}, {"edge_id": 7, "face_id": 4}, {"edge_id": 6, "face_id": 2}]},
    {"face_id": 4, "gon": 3, "neighbors": [
      {"edge_id": 3, "face_id": 0}, {"edge_id": 4, "face_id": 1}, {"edge_id": 7, "face_id": 3}]}
  ]
}`

func TestDecode_Document(t *testing.T) {
	p, err := polyhedron.Decode(strings.NewReader(pyramidDoc))
	require.NoError(t, err)
	assert.Equal(t, "johnson", p.Class)
	assert.Equal(t, "n01", p.Name)
	assert.Equal(t, polyhedron.SquarePyramid(), p)
}

func TestDecode_SchemaMismatch(t *testing.T) {
	doc := strings.Replace(pyramidDoc, `"schema_version": 1`, `"schema_version": 2`, 1)
	_, err := polyhedron.Decode(strings.NewReader(doc))
	assert.ErrorIs(t, err, polyhedron.ErrSchemaVersion)
}

func TestDecode_FaceOrder(t *testing.T) {
	doc := strings.Replace(pyramidDoc, `"face_id": 1, "gon": 3`, `"face_id": 9, "gon": 3`, 1)
	_, err := polyhedron.Decode(strings.NewReader(doc))
	assert.ErrorIs(t, err, polyhedron.ErrFaceOrder)
}

func TestDecodeRootPairs(t *testing.T) {
	doc := `{"schema_version": 1, "root_pairs": [
	  {"base_face": 0, "base_edge": 3}, {"base_face": 1, "base_edge": 5}]}`
	pairs, err := polyhedron.DecodeRootPairs(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []polyhedron.RootPair{{BaseFace: 0, BaseEdge: 3}, {BaseFace: 1, BaseEdge: 5}}, pairs)
}

func TestSymmetric_Names(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"a18", true},
		{"p06", true},
		{"r01", true},
		{"s01", true},
		{"s07", true},
		{"s11", true},
		{"s12", false},
		{"s00", false},
		{"n20", false},
		{"n66", false},
		{"", false},
		{"s1", false},
		{"sxx", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, polyhedron.Symmetric(tc.name), "name %q", tc.name)
	}
}
