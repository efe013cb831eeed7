// Package record defines the stream record types and sentinel errors.
package record

import (
	"errors"

	"github.com/unfoldlab/rotunfold/polyhedron"
)

// SchemaVersion is the only record schema version this package accepts.
const SchemaVersion = 1

// TypePartialUnfolding is the record_type tag carried by every stream record.
const TypePartialUnfolding = "partial_unfolding"

var (
	// ErrSchemaVersion is returned when a record's schema_version is not 1.
	ErrSchemaVersion = errors.New("record: unsupported schema_version")

	// ErrRecordType is returned when record_type is not "partial_unfolding".
	ErrRecordType = errors.New("record: unexpected record_type")

	// ErrNoFaces is returned when the faces array is empty.
	ErrNoFaces = errors.New("record: empty faces")

	// ErrDuplicateFace is returned when a face_id repeats within a record;
	// a path uses each face at most once.
	ErrDuplicateFace = errors.New("record: duplicate face in path")

	// ErrFaceRange is returned when a face_id is not a face of the polyhedron.
	ErrFaceRange = errors.New("record: face out of range")

	// ErrEdgeRange is returned when an edge_id does not bound its face.
	ErrEdgeRange = errors.New("record: edge not on face")
)

// Kind classifies the strongest contact found between the two endpoint
// polygons of a path.
type Kind string

const (
	KindFaceFace     Kind = "face-face"
	KindEdgeEdge     Kind = "edge-edge"
	KindEdgeVertex   Kind = "edge-vertex"
	KindVertexVertex Kind = "vertex-vertex"
)

// Priority orders kinds by strength: face-face > edge-edge >
// edge-vertex = vertex-vertex. Zero for unknown kinds.
func (k Kind) Priority() int {
	switch k {
	case KindFaceFace:
		return 3
	case KindEdgeEdge:
		return 2
	case KindEdgeVertex, KindVertexVertex:
		return 1
	default:
		return 0
	}
}

// UnfoldedFace is the laid-out image of one face on the plane.
type UnfoldedFace struct {
	FaceID int `json:"face_id"`
	Gon    int `json:"gon"`

	// EdgeID is the edge across which this face was unfolded from its
	// predecessor. For the first face of the path it records the base
	// edge and is otherwise ignored.
	EdgeID int `json:"edge_id"`

	// X, Y are the centre coordinates, rounded to six decimal places
	// (half away from zero) at serialisation time.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// AngleDeg points from this face's centre back towards its
	// predecessor's centre, normalised to [-180, 180].
	AngleDeg float64 `json:"angle_deg"`
}

// Overlap is the verifier's classification of the endpoint contact.
type Overlap struct {
	Kind Kind `json:"kind"`
}

// Record is one partial-unfolding stream record.
type Record struct {
	SchemaVersion int                 `json:"schema_version"`
	RecordType    string              `json:"record_type"`
	BasePair      polyhedron.RootPair `json:"base_pair"`
	SymmetricUsed bool                `json:"symmetric_used"`
	Faces         []UnfoldedFace      `json:"faces"`

	// ExactOverlap is present only in verifier output.
	ExactOverlap *Overlap `json:"exact_overlap,omitempty"`
}
