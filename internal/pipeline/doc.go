// Package pipeline wires the slicing stages together: validation, layer
// slicing, toolpath building, and G-code generation.
//
// Run is a pure function of its inputs — given the same mesh and options
// it produces byte-identical output, with no randomness or clock
// dependence. File I/O stays with the callers (CLI commands); the
// pipeline only transforms in-memory values.
package pipeline
