// Package mesh holds the tessellator's output data structures: a
// wavefront-obj-style PolygonMesh (positions/uv-coords/normals held
// separately, faces addressing them by index triple) and PolylineCurve, the
// discretized edge curve that stands in for analytic geometry once a shell
// has been tessellated.
package mesh
