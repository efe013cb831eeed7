package provenance

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// SchemaVersion of the run-metadata document.
const SchemaVersion = 1

// Document is the run-metadata file (one JSON document, not a stream).
type Document struct {
	SchemaVersion int     `json:"schema_version"`
	RecordType    string  `json:"record_type"`
	Run           Run     `json:"run"`
	Command       Command `json:"command"`
	Inputs        Inputs  `json:"inputs"`
	Options       Options `json:"options"`
	Outputs       Outputs `json:"outputs"`
}

// Run identifies one invocation.
type Run struct {
	RunID      string `json:"run_id"`
	StartedAt  string `json:"started_at_utc"`
	FinishedAt string `json:"finished_at_utc"`
	ExitCode   int    `json:"exit_code"`
}

// Command captures how the process was invoked.
type Command struct {
	ExecutablePath string   `json:"executable_path"`
	Argv           []string `json:"argv"`
	Cwd            string   `json:"cwd"`
}

// Inputs records the absolute paths and identity of the input documents.
type Inputs struct {
	Polyhedron InputPolyhedron `json:"polyhedron"`
	RootPairs  InputRootPairs  `json:"root_pairs"`
}

type InputPolyhedron struct {
	Path          string `json:"path"`
	SchemaVersion int    `json:"schema_version"`
	Class         string `json:"poly_class"`
	Name          string `json:"poly_name"`
	NumFaces      int    `json:"num_faces"`
}

type InputRootPairs struct {
	Path          string `json:"path"`
	SchemaVersion int    `json:"schema_version"`
	NumRootPairs  int    `json:"num_root_pairs"`
}

// Options records the symmetry resolution: the mode requested, the flag
// actually used, and — for auto — the basis of the decision.
type Options struct {
	Symmetric Symmetric `json:"symmetric"`
}

type Symmetric struct {
	ModeRequested string `json:"mode_requested"`
	SymmetricUsed bool   `json:"symmetric_used"`
	Basis         string `json:"basis"`
}

// Outputs records where the raw stream went and how many records it holds.
type Outputs struct {
	RawPath    string `json:"raw_path"`
	NumRecords int    `json:"num_records"`
}

// NewRunID returns a sortable run identifier: the UTC second stamp the
// pipeline has always used, made collision-free with a UUID suffix.
func NewRunID(now time.Time) string {
	return now.UTC().Format("2006-01-02T150405Z") + "-" + uuid.NewString()
}

// Stamp formats a timestamp the way the document expects.
func Stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Write marshals doc to path, overwriting any previous run's document.
func Write(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("provenance: marshal: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("provenance: write %s: %w", path, err)
	}
	return nil
}
