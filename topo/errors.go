package topo

import "errors"

// Construction errors: returned by TryNew/the checked constructors when an
// entity's structural invariant does not hold.
var (
	// ErrSameVertex indicates Edge construction was given identical front
	// and back vertices with a curve that is not closed.
	ErrSameVertex = errors.New("topo: front and back vertex are the same but curve is not closed")

	// ErrNotClosedWire indicates a Face boundary wire does not return to
	// its starting vertex.
	ErrNotClosedWire = errors.New("topo: wire is not closed")

	// ErrNotSimpleWire indicates a Face boundary wire visits some vertex
	// more than once.
	ErrNotSimpleWire = errors.New("topo: wire is not simple")

	// ErrEmptyShell indicates a Solid boundary shell has no faces.
	ErrEmptyShell = errors.New("topo: shell is empty")

	// ErrNotConnected indicates a Solid boundary shell's faces do not form
	// a single connected component.
	ErrNotConnected = errors.New("topo: shell is not connected")

	// ErrNotClosedShell indicates a Solid boundary shell has a free edge
	// (an edge not shared by exactly two oriented face appearances).
	ErrNotClosedShell = errors.New("topo: shell is not closed")

	// ErrNotManifold indicates a Solid boundary shell has a singular
	// vertex (disconnected face-fan).
	ErrNotManifold = errors.New("topo: shell has a singular vertex")
)

// Geometric errors: returned when an operation's geometric collaborator
// (curve Cut/Concat/SearchParameter) could not satisfy a topology edit.
var (
	// ErrCurveNotCuttable indicates cut_edge's curve does not support Cut
	// at the recovered parameter, or the vertex's point does not lie on
	// the curve within the search budget.
	ErrCurveNotCuttable = errors.New("topo: curve cannot be cut at the given vertex")

	// ErrConcatFailed indicates remove_vertex_by_concat_edges's two curves
	// refused concatenation.
	ErrConcatFailed = errors.New("topo: curves could not be concatenated")

	// ErrDegreeMismatch indicates remove_vertex_by_concat_edges was asked
	// to remove a vertex that does not have exactly 2 distinct incident
	// edges in the solid.
	ErrDegreeMismatch = errors.New("topo: vertex degree is not 2")

	// ErrEdgeNotFound indicates an operation referenced an edge ID absent
	// from the graph it was applied to.
	ErrEdgeNotFound = errors.New("topo: edge not found")

	// ErrVertexNotFound indicates an operation referenced a vertex ID
	// absent from the graph it was applied to.
	ErrVertexNotFound = errors.New("topo: vertex not found")
)
