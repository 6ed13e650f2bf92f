package slicer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/strata/internal/model"
)

// rampMesh returns a single-triangle mesh spanning z in [0, 1]: one
// edge on the floor and the third vertex raised to z = 1.
func rampMesh() *model.Mesh {
	return model.NewMesh("ramp", []model.Triangle{
		{
			mgl64.Vec3{0, 0, 0},
			mgl64.Vec3{1, 0, 0},
			mgl64.Vec3{0, 1, 1},
		},
	})
}

// TestSlice_LayerHeights verifies the height schedule: z_min + i*h while
// z <= z_max. For bounds [0, 1] and h = 0.5 that is exactly three layers
// at 0, 0.5, and 1.0 — the next step (1.5) exceeds z_max.
func TestSlice_LayerHeights(t *testing.T) {
	layers := Slice(rampMesh(), 0.5)

	require.Len(t, layers, 3)
	assert.Equal(t, 0.0, layers[0].Z)
	assert.Equal(t, 0.5, layers[1].Z)
	assert.Equal(t, 1.0, layers[2].Z)
}

// TestSlice_SegmentsPerLayer checks that every clean two-point crossing
// becomes a segment, including the floor edge at z = 0 and the grazed
// apex at z = 1 (two crossing edges meet there, so it still counts two
// points).
func TestSlice_SegmentsPerLayer(t *testing.T) {
	layers := Slice(rampMesh(), 0.5)
	require.Len(t, layers, 3)

	for i, layer := range layers {
		assert.Len(t, layer.Segments, 1, "layer %d", i)
	}

	// The midplane crossing is exact: the two rising edges cross z=0.5
	// at their midpoints.
	mid := layers[1].Segments[0]
	assert.Equal(t, model.Segment{{0.5, 0.5}, {0, 0.5}}, mid)
}

// TestSlice_EmptyLayersPreserved verifies that a layer with no segments
// still occupies its slot, keeping the index/height correspondence for
// downstream stages.
func TestSlice_EmptyLayersPreserved(t *testing.T) {
	// Two triangles far apart in z: [0, 0.2] and [0.8, 1.0]. Heights in
	// between produce layers with no segments.
	mesh := model.NewMesh("gapped", []model.Triangle{
		{
			mgl64.Vec3{0, 0, 0},
			mgl64.Vec3{1, 0, 0},
			mgl64.Vec3{0, 1, 0.2},
		},
		{
			mgl64.Vec3{0, 0, 0.8},
			mgl64.Vec3{1, 0, 0.8},
			mgl64.Vec3{0, 1, 1.0},
		},
	})

	layers := Slice(mesh, 0.25)
	require.Len(t, layers, 5) // 0, 0.25, 0.5, 0.75, 1.0

	assert.NotEmpty(t, layers[0].Segments)
	assert.Empty(t, layers[1].Segments)
	assert.Empty(t, layers[2].Segments)
	assert.Empty(t, layers[3].Segments)
	assert.NotEmpty(t, layers[4].Segments)
}

// TestSlice_InvalidInput checks the guard rails: nil mesh or
// non-positive layer height produce no layers instead of looping.
func TestSlice_InvalidInput(t *testing.T) {
	assert.Nil(t, Slice(nil, 0.2))
	assert.Nil(t, Slice(rampMesh(), 0))
	assert.Nil(t, Slice(rampMesh(), -0.1))
}

// TestLayerCount agrees with Slice on the number of layers it would
// produce, over a range of heights.
func TestLayerCount(t *testing.T) {
	mesh := rampMesh()

	tests := []struct {
		name        string
		layerHeight float64
		expected    int
	}{
		{"half", 0.5, 3},
		{"tenth", 0.1, 11},
		{"taller than mesh", 2.0, 1},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LayerCount(mesh, tt.layerHeight))
			if tt.expected > 0 {
				assert.Len(t, Slice(mesh, tt.layerHeight), tt.expected)
			}
		})
	}
}
