// Package exact decides, with exact arithmetic, whether the endpoints of
// a path-shaped partial unfolding genuinely overlap on the plane, and
// classifies the overlap.
//
// What:
//
//   - Verifier: reconstructs every face position symbolically (the
//     floating-point coordinates in the record are ignored), then runs a
//     two-stage intersection test over the edge pairs of the base and
//     last face
//   - Stage 1: an 80-decimal-digit numeric filter — bounding boxes,
//     signed orientations, and parametric intersection parameters with
//     ε = 10⁻³⁰; clear cases are decided here, anything near a boundary
//     escalates
//   - Stage 2: the exact solve in a cyclotomic field (package cyclo) —
//     zero tests and sign decisions with no tolerance at all
//   - Filter: the stream stage — records whose endpoints overlap are
//     written with an exact_overlap.kind field, all other bytes verbatim
//
// Chain skipping: endpoint faces that are polyhedron neighbours, or that
// share a polyhedron vertex, are skipped outright. Neighbouring faces
// form the trivial two-face unfolding; vertex-sharing faces can only
// touch at the shared vertex in any unfolding of a convex polyhedron
// (the angle-defect theorem), which is legitimate contact, not overlap.
// That theorem is where this package assumes convexity; behaviour on
// non-convex structures is undefined. Neither the loader nor this
// package checks convexity; the rotunfold command's exact stage refuses
// a structure with a vertex of degree below 3 before verifying.
//
// Containment without an edge crossing cannot occur: faces are laid
// along a simple edge-sharing path, and enclosing the last face would
// require the enclosing boundary to cross the path's entry edge, which
// surfaces as an edge intersection.
//
// Classification is by the strongest kind found across all edge pairs:
// face-face > edge-edge > edge-vertex = vertex-vertex. Only face-face
// short-circuits the scan, so the result does not depend on enumeration
// order.
//
// A comparison the engine cannot decide is a defect, surfaced as a fatal
// error naming the record — never a silent skip.
package exact
