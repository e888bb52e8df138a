package topo

import "sync/atomic"

// ID is an opaque, globally unique identity assigned to a Vertex, Edge, or
// Face at construction time. Two handles refer to the same entity iff their
// ID values are equal. The numeric value carries no meaning beyond
// equality and is not guaranteed stable across process runs.
type ID uint64

// nextID is a process-wide atomic counter.
var nextID uint64

// newID allocates a fresh, never-before-returned ID.
func newID() ID {
	return ID(atomic.AddUint64(&nextID, 1))
}
