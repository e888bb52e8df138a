package topo

import "sync"

// ClosedCurve is an optional capability a curve payload may implement to
// allow Edge construction with identical front and back vertices (a
// full loop, e.g. a complete circle). Edge.New only consults this when
// front.ID() == back.ID(); curves that don't implement it are simply
// never asked.
type ClosedCurve interface {
	IsClosed() bool
}

func curveIsClosed(curve any) bool {
	cc, ok := curve.(ClosedCurve)

	return ok && cc.IsClosed()
}

// edgeData is the shared payload behind every Edge handle carrying the
// same identity, independent of orientation.
type edgeData[P any, C any] struct {
	id    ID
	front Vertex[P]
	back  Vertex[P]
	mu    sync.RWMutex
	curve C
}

// Edge is a handle to a curve between two vertices. The orientation bit
// lives on the handle, not the shared data: Inverse() returns a new handle
// sharing identity and curve but reporting swapped endpoints.
//
// Complexity: all methods are O(1).
type Edge[P any, C any] struct {
	data        *edgeData[P, C]
	orientation bool // true = front/back as stored; false = swapped
}

// NewEdge constructs an edge from front to back carrying curve.
// Panics with ErrSameVertex if front and back are the same vertex and
// curve does not implement ClosedCurve with IsClosed() true.
func NewEdge[P any, C any](front, back Vertex[P], curve C) Edge[P, C] {
	e, err := TryNewEdge(front, back, curve)
	if err != nil {
		panic(err)
	}

	return e
}

// TryNewEdge is NewEdge's fallible counterpart.
func TryNewEdge[P any, C any](front, back Vertex[P], curve C) (Edge[P, C], error) {
	if front.Same(back) && !curveIsClosed(curve) {
		return Edge[P, C]{}, ErrSameVertex
	}

	return NewUncheckedEdge(front, back, curve), nil
}

// NewUncheckedEdge constructs an edge without validating the same-vertex
// invariant. The caller must guarantee it holds.
func NewUncheckedEdge[P any, C any](front, back Vertex[P], curve C) Edge[P, C] {
	return Edge[P, C]{
		data:        &edgeData[P, C]{id: newID(), front: front, back: back, curve: curve},
		orientation: true,
	}
}

// DebugNewEdge validates unconditionally; see package doc for why this
// tier always checks rather than compiling the check out in release
// builds.
func DebugNewEdge[P any, C any](front, back Vertex[P], curve C) Edge[P, C] {
	return NewEdge(front, back, curve)
}

// ID returns this edge's identity, shared by Inverse().
func (e Edge[P, C]) ID() ID { return e.data.id }

// Orientation returns the edge's current orientation bit.
func (e Edge[P, C]) Orientation() bool { return e.orientation }

// Front returns the edge's current front vertex, honoring orientation.
func (e Edge[P, C]) Front() Vertex[P] {
	if e.orientation {
		return e.data.front
	}

	return e.data.back
}

// Back returns the edge's current back vertex, honoring orientation.
func (e Edge[P, C]) Back() Vertex[P] {
	if e.orientation {
		return e.data.back
	}

	return e.data.front
}

// AbsoluteFront returns the edge's front vertex in the canonical
// (construction-time) orientation, ignoring the handle's bit.
func (e Edge[P, C]) AbsoluteFront() Vertex[P] { return e.data.front }

// AbsoluteBack returns the edge's back vertex in the canonical
// (construction-time) orientation, ignoring the handle's bit.
func (e Edge[P, C]) AbsoluteBack() Vertex[P] { return e.data.back }

// Inverse returns a handle sharing this edge's identity and curve, with
// front/back swapped and the orientation bit flipped.
func (e Edge[P, C]) Inverse() Edge[P, C] {
	return Edge[P, C]{data: e.data, orientation: !e.orientation}
}

// Same reports whether e and other are handles to the same entity
// (orientation-independent).
func (e Edge[P, C]) Same(other Edge[P, C]) bool {
	return e.data.id == other.data.id
}

// Curve returns a copy of the edge's current curve payload. The curve is
// always returned in its canonical (construction-time) direction; callers
// needing an orientation-aware curve should consult Orientation().
func (e Edge[P, C]) Curve() C {
	e.data.mu.RLock()
	defer e.data.mu.RUnlock()

	return e.data.curve
}

// SetCurve replaces the edge's curve payload under an exclusive lock.
func (e Edge[P, C]) SetCurve(curve C) {
	e.data.mu.Lock()
	defer e.data.mu.Unlock()
	e.data.curve = curve
}

// mapped returns a fresh Edge with a new identity sharing no state with e,
// whose canonical endpoints are the given already-mapped (or memoized)
// images of e's AbsoluteFront/AbsoluteBack and whose curve is
// fc(e.Curve()). The orientation bit is preserved.
func (e Edge[P, C]) mapped(newFront, newBack Vertex[P], fc func(C) C) Edge[P, C] {
	ne := NewUncheckedEdge(newFront, newBack, fc(e.data.curve))
	ne.orientation = e.orientation

	return ne
}

func (e Edge[P, C]) tryMapped(newFront, newBack Vertex[P], fc func(C) (C, bool)) (Edge[P, C], bool) {
	c, ok := fc(e.data.curve)
	if !ok {
		return Edge[P, C]{}, false
	}
	ne := NewUncheckedEdge(newFront, newBack, c)
	ne.orientation = e.orientation

	return ne, true
}

// Mapped returns a fresh edge with a new identity, independently mapping
// this edge's own endpoints through fp (no sharing with any other edge —
// callers needing shared-vertex mapping across many edges should go
// through Wire/Face/Shell/Solid.Mapped instead, which memoize by
// identity).
func (e Edge[P, C]) Mapped(fp func(P) P, fc func(C) C) Edge[P, C] {
	return e.mapped(e.AbsoluteFront().Mapped(fp), e.AbsoluteBack().Mapped(fp), fc)
}

// TryMapped is Mapped's fallible counterpart.
func (e Edge[P, C]) TryMapped(fp func(P) (P, bool), fc func(C) (C, bool)) (Edge[P, C], bool) {
	newFront, ok := e.AbsoluteFront().TryMapped(fp)
	if !ok {
		return Edge[P, C]{}, false
	}
	newBack, ok := e.AbsoluteBack().TryMapped(fp)
	if !ok {
		return Edge[P, C]{}, false
	}

	return e.tryMapped(newFront, newBack, fc)
}
