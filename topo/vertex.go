package topo

import "sync"

// vertexData is the shared, reference-counted-by-GC payload behind every
// Vertex handle carrying the same identity.
type vertexData[P any] struct {
	id    ID
	mu    sync.RWMutex
	point P
}

// Vertex is a handle to a point in space. Cloning a Vertex (an ordinary Go
// value copy) yields another handle to the same entity: both observe
// SetPoint through the shared lock.
//
// Complexity: all methods are O(1).
type Vertex[P any] struct {
	data *vertexData[P]
}

// NewVertex always succeeds, allocating a fresh identity for point.
func NewVertex[P any](point P) Vertex[P] {
	return Vertex[P]{data: &vertexData[P]{id: newID(), point: point}}
}

// ID returns this vertex's identity.
func (v Vertex[P]) ID() ID { return v.data.id }

// Point returns a copy of the vertex's current geometric payload under a
// shared read lock.
func (v Vertex[P]) Point() P {
	v.data.mu.RLock()
	defer v.data.mu.RUnlock()

	return v.data.point
}

// SetPoint replaces the vertex's geometric payload under an exclusive
// lock. Every handle sharing this vertex's identity observes the change.
func (v Vertex[P]) SetPoint(point P) {
	v.data.mu.Lock()
	defer v.data.mu.Unlock()
	v.data.point = point
}

// Same reports whether v and other are handles to the same entity.
func (v Vertex[P]) Same(other Vertex[P]) bool {
	return v.data.id == other.data.id
}

// mapped returns a fresh Vertex with a new identity, whose point is
// fp(v.Point()). Used by Edge/Wire/Face/Shell/Solid.mapped via an
// identity→handle memo so a vertex shared across many edges maps to a
// single new vertex, preserving sharing across the mapped result.
func (v Vertex[P]) mapped(fp func(P) P) Vertex[P] {
	return NewVertex(fp(v.Point()))
}

// tryMapped is mapped's fallible counterpart: ok is false if fp reports
// failure, and the caller must abort the whole mapped walk.
func (v Vertex[P]) tryMapped(fp func(P) (P, bool)) (Vertex[P], bool) {
	p, ok := fp(v.Point())
	if !ok {
		return Vertex[P]{}, false
	}

	return NewVertex(p), true
}

// Mapped returns a vertex with a fresh identity whose point is fp(v.Point()).
func (v Vertex[P]) Mapped(fp func(P) P) Vertex[P] { return v.mapped(fp) }

// TryMapped is Mapped's fallible counterpart.
func (v Vertex[P]) TryMapped(fp func(P) (P, bool)) (Vertex[P], bool) { return v.tryMapped(fp) }
