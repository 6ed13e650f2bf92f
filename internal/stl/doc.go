// Package stl reads and writes STL triangle mesh files.
//
// Both on-disk variants are supported when reading: the 50-byte-record
// little-endian binary format and the "solid / facet / vertex" ASCII
// grammar. The variant is detected from the file contents, not the
// extension — a binary file is recognized by its record-count/size
// arithmetic, since binary files are allowed to begin with the bytes
// "solid" too. Writing always produces binary STL.
//
// The reader performs no mesh validation beyond structural parsing:
// degenerate or non-manifold geometry is passed through untouched.
package stl
