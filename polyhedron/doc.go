// Package polyhedron models the combinatorial structure of a convex
// regular-faced polyhedron: faces, their edge cycles, and face adjacency.
//
// What:
//
//   - Polyhedron: immutable arena of flat integer arrays — per-face gon,
//     the edge-id cycle of each face (counter-clockwise as seen from
//     outside), and the aligned neighbor-face cycle
//   - Decode / Load: read the structured JSON document (schema_version 1)
//     and validate it
//   - Validate: adjacency reciprocity, edge two-coverage, bounds
//   - VertexIncidence: reconstructs global vertex identifiers by a
//     union-find over face corners
//   - Symmetric: resolves the naming convention used by the symmetry
//     pruning "auto" mode
//
// Why:
//
//	Every pipeline stage shares this one read-only structure. Faces and
//	edges are referenced by integer identifiers into flat slices; there
//	are no cross-referenced heap objects, so the structure is linear,
//	copy-free, and trivially shareable within a stage.
//
// Invariants (checked by Validate; face-id order by Decode):
//
//   - every edge identifier appears in exactly two face cycles
//   - if Edges[f][k] = e and Neighbors[f][k] = g, then e appears in
//     Edges[g] and the neighbor back-entry at that position is f
//   - face identifiers in the document are dense and in order
//
// Errors:
//
//   - ErrSchemaVersion     document schema_version is not 1
//   - ErrNoFaces           document contains no faces
//   - ErrFaceOrder         face_id does not match its array position
//   - ErrBadGon            gon < 3 or gon != len(neighbors)
//   - ErrNotReciprocal     adjacency back-entry missing or mismatched
//   - ErrEdgeCoverage      an edge id does not appear in exactly two faces
//   - ErrFaceBounds        a neighbor face id is out of range
//   - ErrVertexDegree      a reconstructed vertex has degree < 3
package polyhedron
