// Package noniso removes partial-unfolding records that are isomorphic
// to an earlier kept record, preserving the order of first appearance.
//
// What:
//
//   - Sequence: reduce a record's face path to a tagged integer sequence
//     of (gon, crossing-step) pairs
//   - Flip, Reverse: the mirror and direction symmetries of a path
//   - CanonicalKey: the lexicographic minimum over the four variants —
//     the equality witness under isomorphism
//   - Deduper / Filter: the order-preserving stream filter
//
// Why:
//
//	Two partial unfoldings are isomorphic when one maps onto the other by
//	reversing the path and/or applying a combinatorial symmetry of the
//	polyhedron. The enumerator produces such duplicates freely (it
//	searches every root pair); this stage keeps exactly one per class.
//
// The crossing step of an interior face counts how many positions the
// exit edge sits clockwise of the entry edge within the face's edge
// cycle; the first face is tagged 0 and the last -1. A mirror symmetry
// turns a step c of a gon-g face into g-c, and reversing the path walks
// the pairs backwards with the complementary steps — the four variants
// cover both generators.
//
// The filter never alters record bytes: a kept input line is written out
// verbatim, so running the stage twice is the identity.
//
// Errors:
//
//   - any parse or bounds error from package record, fatal at the
//     offending line
package noniso
