package kernel

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/mmr-tortoise/strata/internal/model"
)

// DefaultMeshCells controls marching cubes resolution when the caller
// does not specify one. Higher values produce smoother surfaces and
// more triangles.
const DefaultMeshCells = 100

// Solid wraps an sdfx signed distance field.
type Solid struct {
	s sdf.SDF3
}

// Box returns an axis-aligned box of the given dimensions, centered on
// the origin so its z extent is [-z/2, z/2].
func Box(x, y, z float64) (Solid, error) {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return Solid{}, fmt.Errorf("box: %w", err)
	}
	return Solid{s: s}, nil
}

// Cylinder returns a z-aligned cylinder centered on the origin.
func Cylinder(height, radius float64) (Solid, error) {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return Solid{}, fmt.Errorf("cylinder: %w", err)
	}
	return Solid{s: s}, nil
}

// Sphere returns a sphere of the given radius centered on the origin.
func Sphere(radius float64) (Solid, error) {
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		return Solid{}, fmt.Errorf("sphere: %w", err)
	}
	return Solid{s: s}, nil
}

// BoundingBox returns the solid's axis-aligned bounds.
func (s Solid) BoundingBox() (min, max mgl64.Vec3) {
	bb := s.s.BoundingBox()
	min = mgl64.Vec3{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = mgl64.Vec3{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// Mesh tessellates the solid into a triangle mesh using marching cubes
// at the given cell resolution. A non-positive cells value falls back
// to DefaultMeshCells.
func (s Solid) Mesh(name string, cells int) *model.Mesh {
	if cells <= 0 {
		cells = DefaultMeshCells
	}
	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(s.s, renderer)

	out := make([]model.Triangle, 0, len(triangles))
	for _, tri := range triangles {
		var t model.Triangle
		for j := 0; j < 3; j++ {
			t[j] = mgl64.Vec3{tri[j].X, tri[j].Y, tri[j].Z}
		}
		out = append(out, t)
	}
	return model.NewMesh(name, out)
}
