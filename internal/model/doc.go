// Package model defines the domain types and value objects for the
// strata slicer.
//
// This package contains pure data structures with no behavior beyond
// derived-value helpers: triangles, meshes, cross-section segments,
// layers, and toolpaths. Every entity is produced once by a pipeline
// stage and only read afterwards — nothing is mutated in place.
//
// The package also defines exit codes (ExitCode) and the typed errors
// (InvalidMeshError, InvalidParameterError, IoError) that the CLI layer
// translates into OS process exit codes.
package model
