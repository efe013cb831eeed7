// Package polyhedron defines the combinatorial polyhedron structure and
// its sentinel errors.
package polyhedron

import "errors"

// SchemaVersion is the only document schema version this package accepts.
const SchemaVersion = 1

var (
	// ErrSchemaVersion is returned when the document schema_version is not 1.
	ErrSchemaVersion = errors.New("polyhedron: unsupported schema_version")

	// ErrNoFaces is returned when the document carries an empty face list.
	ErrNoFaces = errors.New("polyhedron: no faces")

	// ErrFaceOrder is returned when a face_id does not equal its position
	// in the faces array. Face identifiers must be dense and in order.
	ErrFaceOrder = errors.New("polyhedron: face_id out of order")

	// ErrBadGon is returned when a face has gon < 3 or the neighbor list
	// length disagrees with gon.
	ErrBadGon = errors.New("polyhedron: invalid gon")

	// ErrNotReciprocal is returned when face adjacency is not mutual:
	// f lists g across edge e, but g does not list f across e.
	ErrNotReciprocal = errors.New("polyhedron: adjacency not reciprocal")

	// ErrEdgeCoverage is returned when an edge id does not appear in
	// exactly two face cycles.
	ErrEdgeCoverage = errors.New("polyhedron: edge not shared by exactly two faces")

	// ErrFaceBounds is returned when a neighbor face id is out of range.
	ErrFaceBounds = errors.New("polyhedron: neighbor face out of range")

	// ErrVertexDegree is returned when the corner union-find yields a
	// vertex of degree < 3, which cannot occur on a convex polyhedron.
	ErrVertexDegree = errors.New("polyhedron: vertex degree below 3")
)

// Polyhedron is the immutable combinatorial description of a convex
// regular-faced polyhedron. All slices are indexed by face id.
type Polyhedron struct {
	// Class is the polyhedron family from the input document
	// (e.g. "archimedean", "johnson", "antiprism").
	Class string

	// Name identifies the polyhedron within its class (e.g. "s07", "n20").
	Name string

	// NumFaces is the face count F.
	NumFaces int

	// Gons[f] is the number of edges of face f (a regular Gons[f]-gon of
	// unit side length). Always >= 3.
	Gons []int

	// Edges[f] is the cycle of edge identifiers around face f, listed
	// counter-clockwise as seen from outside the polyhedron. Edge
	// identifiers are stable labels; they are not assumed consecutive.
	Edges [][]int

	// Neighbors[f] is aligned one-to-one with Edges[f]: Neighbors[f][k]
	// is the face sharing edge Edges[f][k] with f.
	Neighbors [][]int
}

// RootPair seeds one unfolding search: the base face placed at the
// origin and the base edge across which the second face is unfolded.
type RootPair struct {
	BaseFace int `json:"base_face"`
	BaseEdge int `json:"base_edge"`
}
