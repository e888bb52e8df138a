// Package tessellate turns a shell of analytic curves and surfaces into a
// shell of polylines and polygon meshes: a vertex pass clones topology by
// identity, an edge pass discretizes each curve once (shared across every
// face that references it, for watertightness), and a face pass projects
// each boundary into the surface's parameter space and triangulates the
// interior with a constrained Delaunay triangulation (cdt.go: a Bowyer-
// Watson incremental triangulation plus a Lawson-flip constraint recovery
// pass, built on the standard library).
package tessellate
