// Package cli — info.go implements the "strata info" command.
//
// The info command loads an STL mesh and reports its geometry without
// slicing anything: triangle count, z bounds, and — for a given layer
// height — the number of layers a slice run would produce.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/strata/internal/slicer"
	"github.com/mmr-tortoise/strata/internal/stl"
)

// infoFlags holds the flag values for the info command.
type infoFlags struct {
	// layerHeight is used only to compute the prospective layer count.
	layerHeight float64
}

// NewInfoCommand creates the "info" cobra command.
func NewInfoCommand() *cobra.Command {
	flags := &infoFlags{}

	cmd := &cobra.Command{
		Use:   "info <mesh.stl>",
		Short: "Show mesh statistics",
		Long: `Show triangle count, vertical bounds, and prospective layer count
for an STL mesh.

Examples:
  strata info model.stl
  strata info model.stl --layer-height 0.1 --json`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0], flags)
		},
	}

	cmd.Flags().Float64Var(&flags.layerHeight, "layer-height", 0.2, "Layer height used for the layer count")

	return cmd
}

// infoJSON is the JSON output structure for the info command.
type infoJSON struct {
	Name        string  `json:"name"`
	Path        string  `json:"path"`
	Triangles   int     `json:"triangles"`
	ZMin        float64 `json:"zMin"`
	ZMax        float64 `json:"zMax"`
	Height      float64 `json:"height"`
	LayerHeight float64 `json:"layerHeight"`
	Layers      int     `json:"layers"`
}

// runInfo is the main logic function for the info command.
func runInfo(path string, flags *infoFlags) error {
	mesh, err := stl.ReadFile(path)
	if err != nil {
		return err
	}

	layers := slicer.LayerCount(mesh, flags.layerHeight)

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(infoJSON{
			Name:        mesh.Name,
			Path:        path,
			Triangles:   mesh.TriangleCount(),
			ZMin:        mesh.ZMin,
			ZMax:        mesh.ZMax,
			Height:      mesh.Height(),
			LayerHeight: flags.layerHeight,
			Layers:      layers,
		}, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Name:       %s\n", mesh.Name)
	fmt.Printf("Triangles:  %d\n", mesh.TriangleCount())
	fmt.Printf("Z range:    [%g, %g] (height %g)\n", mesh.ZMin, mesh.ZMax, mesh.Height())
	fmt.Printf("Layers:     %d at layer height %g\n", layers, flags.layerHeight)
	return nil
}
