// Package gcode serializes toolpaths into a G-code command stream.
//
// The emitted vocabulary is fixed and small: G21, G90, M104, M140, M190,
// M109, G1 Z/XY moves, and M84. Temperatures and feed rates are literals
// of the target profile, not configuration. Every line carries an inline
// human-readable comment. No checksums, line numbers, or multi-axis
// moves are produced, and no machine-specific syntax validation is
// attempted beyond this vocabulary.
//
// Generate builds the full command sequence in memory; writing it out is
// the only side effect in the package and is confined to WriteFile.
package gcode
