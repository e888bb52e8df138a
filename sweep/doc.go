// Package sweep lifts a topological entity by one dimension along a
// trajectory described by five caller-supplied functions (sweep.Callbacks):
// a vertex sweeps to an edge, an edge to a face, a wire or face to a shell
// or solid. Go generics have no way for one method to return a different
// result type per instantiation, so sweep is a set of free generic
// functions (OpenVertex, ClosedEdge, ...) rather than methods on topo's
// types.
//
// Sweep never fails: its output's validity rests entirely on the caller's
// callbacks producing geometrically consistent results. If they don't,
// a later topo.TryNewSolid/TryNewFace call downstream will reject it.
//
// Reentrancy hazard: a callback must not read or write the payload of the
// entity currently being mapped (a caller contract, not checked at run
// time; see topo's package doc).
package sweep
