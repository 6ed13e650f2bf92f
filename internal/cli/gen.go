// Package cli — gen.go implements the "strata gen" command.
//
// The gen command produces primitive STL test models (box, cylinder,
// sphere) from signed distance fields, so the slicer can be exercised
// without hunting for model files. The mesh comes out of marching
// cubes, which makes it a realistic input: lots of triangles, none of
// them axis-aligned.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/strata/internal/kernel"
	"github.com/mmr-tortoise/strata/internal/model"
	"github.com/mmr-tortoise/strata/internal/stl"
)

// genFlags holds the flag values for the gen command.
type genFlags struct {
	// output is the STL destination path.
	output string

	// size is the box edge length.
	size float64

	// height and radius shape the cylinder; radius alone shapes the sphere.
	height float64
	radius float64

	// cells is the marching cubes resolution.
	cells int
}

// NewGenCommand creates the "gen" cobra command.
func NewGenCommand() *cobra.Command {
	flags := &genFlags{}

	cmd := &cobra.Command{
		Use:   "gen <box|cylinder|sphere>",
		Short: "Generate a primitive STL test model",
		Long: `Generate a primitive solid, tessellate it, and write it as binary STL.

Examples:
  strata gen box --size 20 -o box.stl
  strata gen cylinder --height 30 --radius 8 -o cyl.stl
  strata gen sphere --radius 10 -o sphere.stl`,

		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"box", "cylinder", "sphere"},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output STL path (required)")
	cmd.Flags().Float64Var(&flags.size, "size", 20, "Box edge length")
	cmd.Flags().Float64Var(&flags.height, "height", 30, "Cylinder height")
	cmd.Flags().Float64Var(&flags.radius, "radius", 10, "Cylinder/sphere radius")
	cmd.Flags().IntVar(&flags.cells, "cells", kernel.DefaultMeshCells, "Marching cubes resolution")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// buildSolid constructs the requested primitive from the flag values.
func buildSolid(shape string, flags *genFlags) (kernel.Solid, error) {
	switch shape {
	case "box":
		if flags.size <= 0 {
			return kernel.Solid{}, &model.InvalidParameterError{Name: "size", Value: flags.size, Constraint: "must be > 0"}
		}
		return kernel.Box(flags.size, flags.size, flags.size)
	case "cylinder":
		if flags.height <= 0 {
			return kernel.Solid{}, &model.InvalidParameterError{Name: "height", Value: flags.height, Constraint: "must be > 0"}
		}
		if flags.radius <= 0 {
			return kernel.Solid{}, &model.InvalidParameterError{Name: "radius", Value: flags.radius, Constraint: "must be > 0"}
		}
		return kernel.Cylinder(flags.height, flags.radius)
	case "sphere":
		if flags.radius <= 0 {
			return kernel.Solid{}, &model.InvalidParameterError{Name: "radius", Value: flags.radius, Constraint: "must be > 0"}
		}
		return kernel.Sphere(flags.radius)
	default:
		return kernel.Solid{}, fmt.Errorf("unknown shape %q (valid: box, cylinder, sphere)", shape)
	}
}

// runGen is the main logic function for the gen command.
func runGen(shape string, flags *genFlags) error {
	solid, err := buildSolid(shape, flags)
	if err != nil {
		return err
	}

	VerboseLog("Tessellating %s at %d cells", shape, flags.cells)
	mesh := solid.Mesh(shape, flags.cells)
	VerboseLog("Tessellated %d triangles", mesh.TriangleCount())

	if err := stl.WriteFile(flags.output, mesh); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d triangles) to %s\n", shape, mesh.TriangleCount(), flags.output)
	return nil
}
