package pipeline

import (
	"github.com/mmr-tortoise/strata/internal/gcode"
	"github.com/mmr-tortoise/strata/internal/model"
	"github.com/mmr-tortoise/strata/internal/slicer"
	"github.com/mmr-tortoise/strata/internal/toolpath"
)

// Options configures one slicing run.
type Options struct {
	// LayerHeight is the vertical distance between layers, in the same
	// units as the mesh coordinates. Must be > 0.
	LayerHeight float64

	// Orderer decides point visiting order within each layer. Nil
	// selects the lexicographic baseline.
	Orderer toolpath.Orderer
}

// Result carries the generated program along with the intermediate
// counts commands report to the user.
type Result struct {
	Program    gcode.Program
	LayerCount int
	PointCount int
}

// Validate checks the mesh and options against the error taxonomy:
// *model.InvalidParameterError for a non-positive layer height,
// *model.InvalidMeshError for a mesh with no triangles or no vertical
// extent. A flat mesh is rejected rather than sliced into a single
// plane because nothing printable can come out of it.
func Validate(mesh *model.Mesh, opts Options) error {
	if opts.LayerHeight <= 0 {
		return &model.InvalidParameterError{
			Name:       "layer-height",
			Value:      opts.LayerHeight,
			Constraint: "must be > 0",
		}
	}
	if mesh == nil || mesh.IsEmpty() {
		return &model.InvalidMeshError{Reason: "mesh contains no triangles"}
	}
	if mesh.Height() <= 0 {
		return &model.InvalidMeshError{Reason: "mesh bounding box has zero height"}
	}
	return nil
}

// Run slices the mesh and generates its G-code program.
//
// The stages run strictly in sequence, each consuming the previous
// stage's output exactly once: layers from the slicer, toolpaths from
// the builder, commands from the emitter. All collections are
// materialized in memory; there is no streaming between stages.
func Run(mesh *model.Mesh, opts Options) (*Result, error) {
	if err := Validate(mesh, opts); err != nil {
		return nil, err
	}

	layers := slicer.Slice(mesh, opts.LayerHeight)
	paths := toolpath.Build(layers, opts.Orderer)
	program := gcode.Generate(paths, opts.LayerHeight)

	points := 0
	for _, p := range paths {
		points += len(p.Points)
	}
	return &Result{
		Program:    program,
		LayerCount: len(layers),
		PointCount: points,
	}, nil
}
