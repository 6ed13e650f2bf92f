package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveJob_FromFlags builds a job straight from command flags.
func TestResolveJob_FromFlags(t *testing.T) {
	job, err := resolveJob(&sliceFlags{
		input:       "model.stl",
		output:      "model.gcode",
		layerHeight: 0.2,
	})
	require.NoError(t, err)

	assert.Equal(t, "model.stl", job.Input)
	assert.Equal(t, "model.gcode", job.Output)
	assert.Equal(t, 0.2, job.LayerHeight)
}

// TestResolveJob_FromJobFile loads the parameters from a job file.
func TestResolveJob_FromJobFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yaml")
	require.NoError(t, os.WriteFile(path,
		[]byte("input: m.stl\noutput: m.gcode\nlayerHeight: 0.1\n"), 0o644))

	job, err := resolveJob(&sliceFlags{job: path, layerHeight: 0.2})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "m.stl"), job.Input)
	assert.Equal(t, 0.1, job.LayerHeight)
}

// TestResolveJob_Conflicts rejects mixing --job with explicit paths and
// incomplete flag sets.
func TestResolveJob_Conflicts(t *testing.T) {
	_, err := resolveJob(&sliceFlags{job: "job.yaml", input: "m.stl"})
	assert.ErrorContains(t, err, "cannot be combined")

	_, err = resolveJob(&sliceFlags{output: "m.gcode", layerHeight: 0.2})
	assert.ErrorContains(t, err, "missing the input")

	_, err = resolveJob(&sliceFlags{input: "m.stl", layerHeight: 0.2})
	assert.ErrorContains(t, err, "missing the output")
}
