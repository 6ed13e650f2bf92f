// Package kernel generates primitive triangle meshes for test models.
//
// Solids are modeled as signed distance fields with github.com/deadsy/sdfx
// and converted to triangles by marching cubes. The gen command uses this
// to produce STL fixtures (box, cylinder, sphere) without needing any
// external model files, and the integration tests use it for realistic
// slicing input.
package kernel
