// Package slicer converts a triangle mesh into horizontal cross-sections.
//
// The package has two pure functions: IntersectTriangle computes where a
// single triangle crosses one horizontal plane, and Slice sweeps a range
// of plane heights over a whole mesh, producing one Layer per height.
//
// Only intersections that yield exactly two points are collected into
// layers. Results with 0, 1, or more than 2 points — a plane grazing a
// vertex, or a triangle lying flat in the plane — are discarded. This is
// a documented simplification, not a correctness guarantee: it keeps the
// segment model clean at the cost of dropping some coplanar geometry.
package slicer
