// Package brep is a boundary-representation geometry kernel: a topology
// graph of vertices, edges, wires, faces, shells, and solids (package
// topo), sweep operators that lift one dimension along a trajectory
// (package sweep), and a tessellator that turns analytic curves and
// surfaces into polylines and triangle meshes (packages tessellate and
// mesh). Curve, surface, and point types are supplied by the caller
// through the geom package's collaborator interfaces; the kernel itself
// never constructs geometry, only topology around it.
package brep
