// Package geom declares the capability interfaces the topology, sweep, and
// tessellate packages are generic over, plus the concrete point/vector types
// and a parameter-space bounding box used by the tessellator.
//
// No geometric value is hardcoded here: callers plug in concrete curves and
// surfaces by implementing these interfaces. The package owns no topology
// and no triangulation logic — it is the glue layer between user geometry
// and the rest of the kernel.
package geom
