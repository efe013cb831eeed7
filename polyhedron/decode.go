package polyhedron

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// document mirrors the polyhedron input file (schema_version 1).
type document struct {
	SchemaVersion int `json:"schema_version"`
	Polyhedron    struct {
		Class string `json:"class"`
		Name  string `json:"name"`
	} `json:"polyhedron"`
	Faces []faceDoc `json:"faces"`
}

type faceDoc struct {
	FaceID    int           `json:"face_id"`
	Gon       int           `json:"gon"`
	Neighbors []neighborDoc `json:"neighbors"`
}

type neighborDoc struct {
	EdgeID int `json:"edge_id"`
	FaceID int `json:"face_id"`
}

// rootPairsDocument mirrors the root-pair input file (schema_version 1).
type rootPairsDocument struct {
	SchemaVersion int        `json:"schema_version"`
	RootPairs     []RootPair `json:"root_pairs"`
}

// Decode reads a polyhedron document from r, builds the flat structure,
// and validates it. Any structural inconsistency is fatal here, before a
// single record can be produced downstream.
func Decode(r io.Reader) (*Polyhedron, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("polyhedron: parse document: %w", err)
	}
	if doc.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchemaVersion, doc.SchemaVersion, SchemaVersion)
	}
	if len(doc.Faces) == 0 {
		return nil, ErrNoFaces
	}

	p := &Polyhedron{
		Class:     doc.Polyhedron.Class,
		Name:      doc.Polyhedron.Name,
		NumFaces:  len(doc.Faces),
		Gons:      make([]int, len(doc.Faces)),
		Edges:     make([][]int, len(doc.Faces)),
		Neighbors: make([][]int, len(doc.Faces)),
	}
	for i, face := range doc.Faces {
		// Face ids must be dense and in order; the flat arrays are
		// indexed by them.
		if face.FaceID != i {
			return nil, fmt.Errorf("%w: position %d carries face_id %d", ErrFaceOrder, i, face.FaceID)
		}
		if face.Gon < 3 || face.Gon != len(face.Neighbors) {
			return nil, fmt.Errorf("%w: face %d", ErrBadGon, i)
		}
		p.Gons[i] = face.Gon
		p.Edges[i] = make([]int, face.Gon)
		p.Neighbors[i] = make([]int, face.Gon)
		for k, n := range face.Neighbors {
			p.Edges[i][k] = n.EdgeID
			p.Neighbors[i][k] = n.FaceID
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Load reads and decodes the polyhedron document at path.
func Load(path string) (*Polyhedron, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("polyhedron: open %s: %w", path, err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// DecodeRootPairs reads a root-pair document from r.
func DecodeRootPairs(r io.Reader) ([]RootPair, error) {
	var doc rootPairsDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("polyhedron: parse root pairs: %w", err)
	}
	if doc.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchemaVersion, doc.SchemaVersion, SchemaVersion)
	}

	return doc.RootPairs, nil
}

// LoadRootPairs reads and decodes the root-pair document at path.
func LoadRootPairs(path string) ([]RootPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("polyhedron: open %s: %w", path, err)
	}
	defer f.Close()

	pairs, err := DecodeRootPairs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pairs, nil
}
