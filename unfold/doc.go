// Package unfold implements the rotational-unfolding search: a pruned
// depth-first exploration of path-shaped partial unfoldings on the
// polyhedron's face-adjacency graph, maintaining planar coordinates of
// each laid-out face.
//
// What:
//
//   - Search(p, root, opts...): explore every path starting at the root
//     pair, emitting a record for each prefix whose last face might
//     overlap the base face (circumradius gate)
//   - Run(p, roots, w, symmetric): all roots in input order, records
//     written to w in deterministic traversal order
//   - ResolveSymmetry(mode, name): resolve "on"/"off"/"auto" to the
//     pruning flag, reporting the basis of resolution for provenance
//
// Placement: the base face's centre sits at the origin with the base
// edge perpendicular to the positive x-axis; the second face unfolds
// across the base edge to (inradius+inradius, 0) with back-angle -180°.
// Each further face is displaced from its predecessor by the sum of
// their inradii along an outgoing angle stepped counter-clockwise in
// increments of 360°/gon.
//
// Pruning:
//
//   - distance: once the remaining faces cannot bridge the gap back to
//     the base circumcircle, the subtree is abandoned
//   - symmetry: when enabled, subtrees that enter the negative-y half
//     plane before ever visiting positive y are abandoned; their mirror
//     images are found on the positive side
//
// The search owns a face-usage array and the current path; both are
// restored on every backtrack, so a searcher is re-entrant across root
// pairs. Given identical inputs the output is byte-identical: traversal
// order is fixed and coordinates are rounded half-away-from-zero to six
// decimals by the record codec.
//
// Errors:
//
//   - ErrBaseFaceRange   the root's base face is out of range
//   - ErrBaseEdgeNotOnFace  the root's base edge does not bound the base face
//   - ErrSymmetryMode    unknown symmetry mode string
//   - any structural error from Polyhedron.Validate, surfaced before
//     the search starts
package unfold
