package pipeline_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unfoldlab/rotunfold/pipeline"
	"github.com/unfoldlab/rotunfold/polyhedron"
)

func TestOutputDir_Deterministic(t *testing.T) {
	root := t.TempDir()
	p := polyhedron.SquarePyramid()

	dir, err := pipeline.OutputDir(root, p)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "johnson", "n01"), dir)

	// Re-deriving yields the same location; nothing is timestamped.
	again, err := pipeline.OutputDir(root, p)
	require.NoError(t, err)
	assert.Equal(t, dir, again)

	assert.Equal(t, filepath.Join(dir, "raw.jsonl"), pipeline.RawPath(dir))
	assert.Equal(t, filepath.Join(dir, "noniso.jsonl"), pipeline.NonisoPath(dir))
	assert.Equal(t, filepath.Join(dir, "exact.jsonl"), pipeline.ExactPath(dir))
	assert.Equal(t, filepath.Join(dir, "run.json"), pipeline.RunPath(dir))
}
