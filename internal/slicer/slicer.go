package slicer

import (
	"github.com/mmr-tortoise/strata/internal/model"
)

// Slice sweeps horizontal planes across the mesh and returns one Layer
// per plane height. Heights are z = ZMin + i*layerHeight for i = 0, 1,
// 2, ... while z <= ZMax; deriving each height from the integer index
// rather than accumulating z += layerHeight keeps the final layer from
// drifting past (or short of) ZMax over many iterations.
//
// Every triangle is tested against every plane — O(layers × triangles).
// A production slicer would bucket triangles by their z extent to skip
// the ones clearly outside the current plane; at the mesh sizes this
// tool targets the linear scan is fast enough and much simpler.
//
// Layers with no segments are still emitted so that a layer's position
// in the slice always corresponds to its height. The caller is expected
// to have validated layerHeight; a non-positive value returns nil.
func Slice(mesh *model.Mesh, layerHeight float64) []model.Layer {
	if mesh == nil || layerHeight <= 0 {
		return nil
	}

	var layers []model.Layer
	for i := 0; ; i++ {
		z := mesh.ZMin + float64(i)*layerHeight
		if z > mesh.ZMax {
			break
		}

		layer := model.Layer{Z: z}
		for _, tri := range mesh.Triangles {
			points := IntersectTriangle(tri, z)
			// Keep only clean two-point crossings. Grazed vertices
			// (1 point) and coplanar triangles (4+ points) are dropped.
			if len(points) == 2 {
				layer.Segments = append(layer.Segments, model.Segment{points[0], points[1]})
			}
		}
		layers = append(layers, layer)
	}
	return layers
}

// LayerCount returns the number of layers Slice would produce for the
// given mesh and layer height, without doing any intersection work.
func LayerCount(mesh *model.Mesh, layerHeight float64) int {
	if mesh == nil || mesh.IsEmpty() || layerHeight <= 0 {
		return 0
	}
	count := 0
	for i := 0; ; i++ {
		if mesh.ZMin+float64(i)*layerHeight > mesh.ZMax {
			break
		}
		count++
	}
	return count
}
