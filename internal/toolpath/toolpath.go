package toolpath

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mmr-tortoise/strata/internal/model"
)

// Orderer decides the order in which a layer's points are visited.
// Implementations must not mutate the input slice.
type Orderer interface {
	// Order returns the points in visiting order.
	Order(points []mgl64.Vec2) []mgl64.Vec2
}

// LexicographicOrderer sorts points by x ascending, then y ascending.
//
// This is not path planning: it ignores which segment a point came from,
// does not chain segments into polylines, and does not minimize travel.
// It exists as a deterministic baseline that downstream consumers can
// rely on until a real planner replaces it.
type LexicographicOrderer struct{}

// Order returns a sorted copy of points, keyed by (x, y). The sort is
// stable, so points equal under the key keep their input order.
func (LexicographicOrderer) Order(points []mgl64.Vec2) []mgl64.Vec2 {
	ordered := make([]mgl64.Vec2, len(points))
	copy(ordered, points)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].X() != ordered[j].X() {
			return ordered[i].X() < ordered[j].X()
		}
		return ordered[i].Y() < ordered[j].Y()
	})
	return ordered
}

// Build produces one Toolpath per Layer, preserving layer order. Each
// layer's segment endpoints are concatenated — both endpoints of every
// segment, in segment order — and handed to the orderer. A nil orderer
// defaults to LexicographicOrderer.
func Build(layers []model.Layer, orderer Orderer) []model.Toolpath {
	if orderer == nil {
		orderer = LexicographicOrderer{}
	}

	paths := make([]model.Toolpath, 0, len(layers))
	for _, layer := range layers {
		points := make([]mgl64.Vec2, 0, len(layer.Segments)*2)
		for _, seg := range layer.Segments {
			points = append(points, seg[0], seg[1])
		}
		paths = append(paths, model.Toolpath{Points: orderer.Order(points)})
	}
	return paths
}
