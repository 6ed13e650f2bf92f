// Package cli — slice.go implements the "strata slice" command.
//
// The slice command runs the full pipeline: load an STL mesh, sweep it
// into layers, order each layer's points into a toolpath, and write the
// G-code program. Parameters come either from flags or from a job file
// (--job), never both.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/strata/internal/config"
	"github.com/mmr-tortoise/strata/internal/gcode"
	"github.com/mmr-tortoise/strata/internal/pipeline"
	"github.com/mmr-tortoise/strata/internal/stl"
)

// sliceFlags holds the flag values for the slice command.
type sliceFlags struct {
	// input is the STL mesh path.
	input string

	// output is the G-code destination path.
	output string

	// layerHeight is the slice spacing in mesh units.
	layerHeight float64

	// job is an optional job file that supplies the three parameters
	// above instead of flags.
	job string
}

// NewSliceCommand creates the "slice" cobra command.
func NewSliceCommand() *cobra.Command {
	flags := &sliceFlags{}

	cmd := &cobra.Command{
		Use:   "slice",
		Short: "Slice an STL mesh into G-code",
		Long: `Slice an STL mesh into horizontal layers and write the G-code program.

Examples:
  strata slice -i model.stl -o model.gcode --layer-height 0.2
  strata slice --job print-job.yaml
  strata slice --job print-job.jsonc --verbose`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlice(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "Input STL mesh path")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output G-code path")
	cmd.Flags().Float64Var(&flags.layerHeight, "layer-height", 0.2, "Layer height in mesh units")
	cmd.Flags().StringVar(&flags.job, "job", "", "Job file (.yaml/.json) supplying input, output, and layer height")

	return cmd
}

// resolveJob turns the command flags into a concrete job, either by
// loading the --job file or by validating the individual flags.
func resolveJob(flags *sliceFlags) (*config.Job, error) {
	if flags.job != "" {
		if flags.input != "" || flags.output != "" {
			return nil, fmt.Errorf("--job cannot be combined with --input/--output")
		}
		return config.Load(flags.job)
	}

	job := &config.Job{
		Input:       flags.input,
		Output:      flags.output,
		LayerHeight: flags.layerHeight,
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}

// runSlice is the main logic function for the slice command.
func runSlice(flags *sliceFlags) error {
	// Step 1: Resolve the job parameters (flags or job file).
	job, err := resolveJob(flags)
	if err != nil {
		return err
	}
	VerboseLog("Slicing %s at layer height %g", job.Input, job.LayerHeight)

	// Step 2: Load the mesh. The mesh is read once and treated as
	// read-only by every following stage.
	mesh, err := stl.ReadFile(job.Input)
	if err != nil {
		return err
	}
	VerboseLog("Loaded %d triangles, z range [%g, %g]", mesh.TriangleCount(), mesh.ZMin, mesh.ZMax)

	// Step 3: Run the pipeline: validate, slice, order, generate.
	result, err := pipeline.Run(mesh, pipeline.Options{LayerHeight: job.LayerHeight})
	if err != nil {
		return err
	}
	VerboseLog("Generated %d layers, %d points, %d commands",
		result.LayerCount, result.PointCount, len(result.Program))

	// Step 4: Write the program to the output sink. The sink is opened
	// here, immediately before writing, and released inside WriteFile
	// on every exit path.
	if err := gcode.WriteFile(job.Output, result.Program); err != nil {
		return err
	}

	// Step 5: Report the outcome.
	printSliceResult(job, mesh.TriangleCount(), result)
	return nil
}

// sliceResultJSON is the JSON output structure for the slice command.
type sliceResultJSON struct {
	Input       string  `json:"input"`
	Output      string  `json:"output"`
	LayerHeight float64 `json:"layerHeight"`
	Triangles   int     `json:"triangles"`
	Layers      int     `json:"layers"`
	Points      int     `json:"points"`
	Commands    int     `json:"commands"`
}

// printSliceResult outputs the slicing summary in text or JSON format,
// depending on the global --json flag.
func printSliceResult(job *config.Job, triangles int, result *pipeline.Result) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(sliceResultJSON{
			Input:       job.Input,
			Output:      job.Output,
			LayerHeight: job.LayerHeight,
			Triangles:   triangles,
			Layers:      result.LayerCount,
			Points:      result.PointCount,
			Commands:    len(result.Program),
		}, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Sliced %s (%d triangles) into %d layers\n", job.Input, triangles, result.LayerCount)
	fmt.Printf("Wrote %d commands to %s\n", len(result.Program), job.Output)
}
