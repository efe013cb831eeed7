package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/unfoldlab/rotunfold/polyhedron"
)

// Standard file names inside a polyhedron's output directory.
const (
	RawFile    = "raw.jsonl"
	NonisoFile = "noniso.jsonl"
	ExactFile  = "exact.jsonl"
	RunFile    = "run.json"
)

// OutputDir is <root>/<class>/<name>, created on demand.
func OutputDir(root string, p *polyhedron.Polyhedron) (string, error) {
	dir := filepath.Join(root, p.Class, p.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("pipeline: create %s: %w", dir, err)
	}
	return dir, nil
}

// RawPath returns the enumerator output location.
func RawPath(dir string) string { return filepath.Join(dir, RawFile) }

// NonisoPath returns the deduplicator output location.
func NonisoPath(dir string) string { return filepath.Join(dir, NonisoFile) }

// ExactPath returns the verifier output location.
func ExactPath(dir string) string { return filepath.Join(dir, ExactFile) }

// RunPath returns the provenance document location.
func RunPath(dir string) string { return filepath.Join(dir, RunFile) }
