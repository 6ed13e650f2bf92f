// Package toolpath flattens sliced layers into ordered point sequences.
//
// Point ordering is deliberately pluggable: the Orderer interface is the
// seam where a real path planner (segment chaining, travel minimization)
// can be substituted. The shipped LexicographicOrderer is an honest
// placeholder — it sorts all segment endpoints by (x, y) and makes no
// attempt to trace connected outlines.
package toolpath
