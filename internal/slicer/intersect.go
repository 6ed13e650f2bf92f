package slicer

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/mmr-tortoise/strata/internal/model"
)

// IntersectTriangle returns the 2D points where the triangle's three
// edges cross or lie on the horizontal plane at height z. The result has
// between 0 and 6 points, projected to (x, y).
//
// For each edge (p1, p2) with endpoint heights z1 and z2:
//   - If both endpoints sit exactly on the plane, the edge lies in the
//     plane and both endpoints are emitted verbatim. Shared vertices of
//     adjacent in-plane edges are emitted once per edge — duplicates are
//     expected and not removed here.
//   - If the plane falls across the edge (z1 < z <= z2 or z2 < z <= z1),
//     the crossing point is linearly interpolated along the edge.
//   - Otherwise the edge contributes nothing.
//
// The half-open predicate means an edge endpoint exactly at z belongs to
// the edge approaching it from below, so a vertex shared by two crossing
// edges is not counted twice. It also makes the interpolation safe: the
// only way z1 == z2 can occur lands in the both-in-plane branch or in
// neither branch, never at the division.
func IntersectTriangle(tri model.Triangle, z float64) []mgl64.Vec2 {
	var points []mgl64.Vec2
	for i := 0; i < 3; i++ {
		p1 := tri[i]
		p2 := tri[(i+1)%3]
		z1, z2 := p1.Z(), p2.Z()

		switch {
		case z1 == z && z2 == z:
			points = append(points, p1.Vec2(), p2.Vec2())
		case (z1 < z && z <= z2) || (z2 < z && z <= z1):
			t := (z - z1) / (z2 - z1)
			crossing := p1.Add(p2.Sub(p1).Mul(t))
			points = append(points, crossing.Vec2())
		}
	}
	return points
}
