// Package record implements the line-oriented record stream shared by
// all pipeline stages: one JSON record per line, UTF-8, '\n'-terminated.
//
// What:
//
//   - Record / UnfoldedFace: the partial-unfolding record and its laid-out
//     face entries
//   - Append / Write: serialisation with the pinned byte format — stable
//     field order and fixed-point six-fractional-digit x, y, angle_deg —
//     so identical inputs produce byte-identical streams
//   - Parse: strict decoding with schema, record-type, and shape checks
//   - Kind: the overlap classification vocabulary with its priority order
//
// Why:
//
//	The enumerator, the deduplicator, and the verifier communicate only
//	through this stream. Downstream stages copy records verbatim (the
//	verifier adds exactly one field), so the codec is the contract that
//	keeps re-runs reproducible byte for byte.
//
// Errors:
//
//   - ErrSchemaVersion   record schema_version is not 1
//   - ErrRecordType      record_type is not "partial_unfolding"
//   - ErrNoFaces         the faces array is empty
//   - ErrDuplicateFace   a face_id repeats within one record
//   - ErrFaceRange       a face_id is absent from the polyhedron
//   - ErrEdgeRange       an edge_id does not bound its face
package record
