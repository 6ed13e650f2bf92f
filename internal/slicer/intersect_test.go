package slicer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/strata/internal/model"
)

// TestIntersectTriangle_EdgeInPlane checks that an edge lying exactly in
// the plane returns both endpoints unchanged in (x, y).
func TestIntersectTriangle_EdgeInPlane(t *testing.T) {
	tri := model.Triangle{
		mgl64.Vec3{0, 0, 1},
		mgl64.Vec3{2, 3, 1},
		mgl64.Vec3{1, 1, 5},
	}

	points := IntersectTriangle(tri, 1)
	require.Len(t, points, 2)
	assert.Equal(t, mgl64.Vec2{0, 0}, points[0])
	assert.Equal(t, mgl64.Vec2{2, 3}, points[1])
}

// TestIntersectTriangle_Midplane verifies that a plane strictly between
// the triangle's extremes returns exactly two points, and that the
// midplane crossing of an edge is the exact midpoint of that edge.
func TestIntersectTriangle_Midplane(t *testing.T) {
	tri := model.Triangle{
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{4, 0, 0},
		mgl64.Vec3{0, 6, 2},
	}

	// z = 1 is the midplane of both edges that reach the apex.
	points := IntersectTriangle(tri, 1)
	require.Len(t, points, 2)
	// Edge (4,0,0)-(0,6,2) crosses at its midpoint (2,3).
	assert.Equal(t, mgl64.Vec2{2, 3}, points[0])
	// Edge (0,6,2)-(0,0,0) crosses at its midpoint (0,3).
	assert.Equal(t, mgl64.Vec2{0, 3}, points[1])
}

// TestIntersectTriangle_OutOfRange checks that planes entirely above or
// below the triangle produce no points.
func TestIntersectTriangle_OutOfRange(t *testing.T) {
	tri := model.Triangle{
		mgl64.Vec3{0, 0, 1},
		mgl64.Vec3{1, 0, 2},
		mgl64.Vec3{0, 1, 3},
	}

	assert.Empty(t, IntersectTriangle(tri, 0.5))
	assert.Empty(t, IntersectTriangle(tri, 3.5))
}

// TestIntersectTriangle_VertexTouch exercises the half-open predicate:
// a plane through a single vertex yields that vertex once per crossing
// edge, and a plane through the triangle's lowest vertex yields nothing
// (both incident edges approach it from above).
func TestIntersectTriangle_VertexTouch(t *testing.T) {
	tri := model.Triangle{
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{2, 0, 0},
		mgl64.Vec3{1, 1, 2},
	}

	// Plane at the apex: both rising edges satisfy z1 < z <= z2 at the
	// apex itself, so the apex point appears twice.
	apex := IntersectTriangle(tri, 2)
	require.Len(t, apex, 2)
	assert.Equal(t, mgl64.Vec2{1, 1}, apex[0])
	assert.Equal(t, mgl64.Vec2{1, 1}, apex[1])

	// Plane at the base: the bottom edge lies in the plane and emits
	// both endpoints. The side edges contribute nothing at z = 0.
	base := IntersectTriangle(tri, 0)
	require.Len(t, base, 2)
	assert.Equal(t, mgl64.Vec2{0, 0}, base[0])
	assert.Equal(t, mgl64.Vec2{2, 0}, base[1])
}

// TestIntersectTriangle_CoplanarTriangle checks that a triangle lying
// entirely in the plane emits all three edges' endpoints — six points,
// duplicates included. The slicer drops this result (length != 2).
func TestIntersectTriangle_CoplanarTriangle(t *testing.T) {
	tri := model.Triangle{
		mgl64.Vec3{0, 0, 1},
		mgl64.Vec3{1, 0, 1},
		mgl64.Vec3{0, 1, 1},
	}

	points := IntersectTriangle(tri, 1)
	assert.Len(t, points, 6)
}
