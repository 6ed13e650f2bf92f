package model

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Triangle is a single mesh facet: exactly three vertices in 3D space.
// Triangles are immutable value types — they are loaded once as part of
// a Mesh and never modified.
type Triangle [3]mgl64.Vec3

// MinZ returns the lowest z coordinate of the triangle's vertices.
func (t Triangle) MinZ() float64 {
	return math.Min(t[0].Z(), math.Min(t[1].Z(), t[2].Z()))
}

// MaxZ returns the highest z coordinate of the triangle's vertices.
func (t Triangle) MaxZ() float64 {
	return math.Max(t[0].Z(), math.Max(t[1].Z(), t[2].Z()))
}

// Normal returns the (unnormalized) face normal, the cross product of
// the triangle's two edge vectors. Degenerate triangles yield the zero
// vector; callers that need a unit normal must check for that.
func (t Triangle) Normal() mgl64.Vec3 {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
}

// Mesh is an ordered collection of triangles plus the derived vertical
// bounds ZMin and ZMax. A Mesh is built once by a loader (or generator)
// and treated as read-only by every downstream stage.
type Mesh struct {
	// Name is a human-readable label, typically the solid name from an
	// ASCII STL file or the file's base name. Informational only.
	Name string

	// Triangles is the facet list in file order.
	Triangles []Triangle

	// ZMin and ZMax are the minimum and maximum z over all vertices.
	// They define the height range swept by the layer slicer.
	ZMin float64
	ZMax float64
}

// NewMesh builds a Mesh from a triangle list and computes its z bounds.
// An empty triangle list yields ZMin == ZMax == 0.
func NewMesh(name string, triangles []Triangle) *Mesh {
	m := &Mesh{Name: name, Triangles: triangles}
	if len(triangles) == 0 {
		return m
	}
	m.ZMin = math.Inf(1)
	m.ZMax = math.Inf(-1)
	for _, tri := range triangles {
		m.ZMin = math.Min(m.ZMin, tri.MinZ())
		m.ZMax = math.Max(m.ZMax, tri.MaxZ())
	}
	return m
}

// TriangleCount returns the number of facets in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Triangles) == 0
}

// Height returns the vertical extent of the mesh (ZMax - ZMin).
func (m *Mesh) Height() float64 {
	return m.ZMax - m.ZMin
}

// Segment is one plane/triangle intersection result: a pair of 2D
// points. Only intersections that produced exactly two points are kept
// as segments; the pair is unordered.
type Segment [2]mgl64.Vec2

// Layer is one horizontal cross-section of a mesh: the plane height Z
// plus the segments collected at that height. The segment collection is
// unordered and may be empty — an empty layer still occupies its slot so
// the layer index always corresponds to its height.
type Layer struct {
	Z        float64
	Segments []Segment
}

// Toolpath is the ordered 2D point sequence a fabrication tool is
// commanded to visit for one layer.
type Toolpath struct {
	Points []mgl64.Vec2
}

// IsEmpty reports whether the toolpath has no points.
func (t Toolpath) IsEmpty() bool {
	return len(t.Points) == 0
}
