// Package rotunfold is the umbrella for a three-stage pipeline that,
// given a convex regular-faced polyhedron, enumerates its path-shaped
// partial edge unfoldings and decides which of them exhibit a genuine
// planar overlap between the first and last face of the path.
//
// 🚀 What is rotunfold?
//
//	A research pipeline organised as a strict filter chain:
//		• unfold     — rotational-unfolding search: pruned DFS over the
//		               face-adjacency graph with planar placement
//		• noniso     — canonical-form deduplication of isomorphic paths
//		• exact      — exact-arithmetic overlap verification and
//		               classification (face-face, edge-edge, edge-vertex,
//		               vertex-vertex)
//
// ✨ Design highlights
//
//   - Arena data model — faces, edges, and vertices are integer ids into
//     flat slices; no cross-referenced heap objects
//   - Byte-identical reruns — deterministic traversal, fixed-point
//     serialisation, canonical forms, symbolic arithmetic
//   - Exactness where it matters — the verifier works in cyclotomic
//     fields (package cyclo); the only floating point it touches is an
//     80-digit pre-filter whose ambiguous cases always escalate
//
// Everything is organised under flat subpackages:
//
//	polyhedron/ — combinatorial structure, validation, vertex incidence
//	geom/       — float64 regular-polygon primitives for the search
//	record/     — the JSON-line stream codec shared by all stages
//	unfold/     — stage 1: the search engine
//	noniso/     — stage 2: the isomorphism filter
//	cyclo/      — exact cyclotomic-field arithmetic
//	exact/      — stage 3: the overlap verifier
//	provenance/ — run-metadata document for stage 1
//	pipeline/   — deterministic output locations
//	cmd/        — the rotunfold CLI
package rotunfold
