package gcode

import (
	"fmt"
	"strings"

	"github.com/mmr-tortoise/strata/internal/model"
)

// Fixed machine profile. These are the literals of the target printer
// setup and are intentionally not configurable.
const (
	// extruderTemp is the hotend temperature in °C.
	extruderTemp = 200

	// bedTemp is the heated-bed temperature in °C.
	bedTemp = 60

	// zFeedRate is the feed rate for layer-change Z moves, mm/min.
	zFeedRate = 300

	// xyFeedRate is the feed rate for in-layer XY moves, mm/min.
	xyFeedRate = 1500
)

// Command is a single G-code line: the command text plus an inline
// comment describing it.
type Command struct {
	Code    string
	Comment string
}

// String renders the command as it appears in the output stream,
// without the trailing newline.
func (c Command) String() string {
	if c.Comment == "" {
		return c.Code
	}
	return c.Code + " ; " + c.Comment
}

// Program is an ordered sequence of G-code commands. The sequence itself
// is the emitter's contract; where it is written is incidental.
type Program []Command

// Preamble returns the fixed program header: units, positioning mode,
// and the heat-up/wait sequence.
func Preamble() []Command {
	return []Command{
		{"G21", "Set units to mm"},
		{"G90", "Absolute positioning"},
		{fmt.Sprintf("M104 S%d", extruderTemp), "Set extruder temperature"},
		{fmt.Sprintf("M140 S%d", bedTemp), "Set bed temperature"},
		{fmt.Sprintf("M190 S%d", bedTemp), "Wait for bed temperature"},
		{fmt.Sprintf("M109 S%d", extruderTemp), "Wait for extruder temperature"},
	}
}

// Postamble returns the fixed program trailer: heaters off, motors off.
func Postamble() []Command {
	return []Command{
		{"M104 S0", "Turn off extruder"},
		{"M140 S0", "Turn off bed"},
		{"M84", "Disable motors"},
	}
}

// Generate serializes the toolpaths into a complete program: preamble,
// one Z move plus the XY moves for each toolpath, postamble.
//
// The Z height for toolpath i is (i+1) * layerHeight, derived from the
// toolpath's position in the sequence. Note this is bookkeeping separate
// from the plane height stored on the corresponding Layer: the two agree
// exactly when the layer height is constant and no layer is skipped,
// which is the only mode this pipeline produces. Coordinates are
// formatted with exactly two decimal digits.
func Generate(paths []model.Toolpath, layerHeight float64) Program {
	prog := make(Program, 0, len(paths)+16)
	prog = append(prog, Preamble()...)

	for i, path := range paths {
		z := float64(i+1) * layerHeight
		prog = append(prog, Command{
			Code:    fmt.Sprintf("G1 Z%.2f F%d", z, zFeedRate),
			Comment: "Move to layer height",
		})
		for _, p := range path.Points {
			prog = append(prog, Command{
				Code:    fmt.Sprintf("G1 X%.2f Y%.2f F%d", p.X(), p.Y(), xyFeedRate),
				Comment: "Move",
			})
		}
	}

	prog = append(prog, Postamble()...)
	return prog
}

// String renders the whole program as newline-terminated text.
func (p Program) String() string {
	var b strings.Builder
	for _, cmd := range p {
		b.WriteString(cmd.String())
		b.WriteByte('\n')
	}
	return b.String()
}
