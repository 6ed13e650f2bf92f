package model

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTriangle_ZBounds verifies the per-triangle min/max z helpers.
func TestTriangle_ZBounds(t *testing.T) {
	tri := Triangle{
		mgl64.Vec3{0, 0, 1.5},
		mgl64.Vec3{1, 0, -0.5},
		mgl64.Vec3{0, 1, 3},
	}
	assert.Equal(t, -0.5, tri.MinZ())
	assert.Equal(t, 3.0, tri.MaxZ())
}

// TestTriangle_Normal checks the face normal direction and that a
// degenerate triangle yields the zero vector.
func TestTriangle_Normal(t *testing.T) {
	// Counter-clockwise in the xy plane: normal points up (+z).
	tri := Triangle{
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{1, 0, 0},
		mgl64.Vec3{0, 1, 0},
	}
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, tri.Normal())

	degenerate := Triangle{
		mgl64.Vec3{1, 1, 1},
		mgl64.Vec3{1, 1, 1},
		mgl64.Vec3{2, 2, 2},
	}
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, degenerate.Normal())
}

// TestNewMesh_Bounds verifies that mesh z bounds are derived from all
// vertices, not just the first triangle.
func TestNewMesh_Bounds(t *testing.T) {
	mesh := NewMesh("two-tris", []Triangle{
		{
			mgl64.Vec3{0, 0, 0.25},
			mgl64.Vec3{1, 0, 1},
			mgl64.Vec3{0, 1, 0.5},
		},
		{
			mgl64.Vec3{0, 0, -2},
			mgl64.Vec3{1, 0, 0},
			mgl64.Vec3{0, 1, 4},
		},
	})

	require.Equal(t, 2, mesh.TriangleCount())
	assert.False(t, mesh.IsEmpty())
	assert.Equal(t, -2.0, mesh.ZMin)
	assert.Equal(t, 4.0, mesh.ZMax)
	assert.Equal(t, 6.0, mesh.Height())
}

// TestNewMesh_Empty checks the degenerate no-triangle mesh: empty, with
// zeroed bounds rather than infinities.
func TestNewMesh_Empty(t *testing.T) {
	mesh := NewMesh("empty", nil)
	assert.True(t, mesh.IsEmpty())
	assert.Equal(t, 0, mesh.TriangleCount())
	assert.Equal(t, 0.0, mesh.ZMin)
	assert.Equal(t, 0.0, mesh.ZMax)
	assert.Equal(t, 0.0, mesh.Height())
}

// TestToolpath_IsEmpty covers the empty/non-empty toolpath distinction
// the G-code emitter relies on.
func TestToolpath_IsEmpty(t *testing.T) {
	assert.True(t, Toolpath{}.IsEmpty())
	assert.False(t, Toolpath{Points: []mgl64.Vec2{{1, 2}}}.IsEmpty())
}
