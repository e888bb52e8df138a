package topo

import "sync"

// faceData is the shared payload behind every Face handle carrying the
// same identity, independent of orientation. boundaries are stored in
// their canonical (construction-time, orientation bit true) form; the
// handle's orientation bit decides whether callers see them as-is or
// reversed. mu guards surface; it also guards boundaries, but only for the
// two documented structural mutations (CutEdge, RemoveVertexByConcatEdges)
// — boundaries are otherwise immutable after construction.
type faceData[P any, C any, S any] struct {
	id         ID
	boundaries []Wire[P, C]
	mu         sync.RWMutex
	surface    S
}

// Face is a handle to a trimmed surface bounded by one outer wire and zero
// or more hole wires, each closed and simple.
//
// Complexity: Boundaries/AbsoluteBoundaries are O(total wire length);
// other accessors are O(1).
type Face[P any, C any, S any] struct {
	data        *faceData[P, C, S]
	orientation bool
}

// NewFace constructs a face from boundaries and surface. Panics with
// ErrNotClosedWire/ErrNotSimpleWire if any boundary wire is not closed
// and simple.
func NewFace[P any, C any, S any](boundaries []Wire[P, C], surface S) Face[P, C, S] {
	f, err := TryNewFace(boundaries, surface)
	if err != nil {
		panic(err)
	}

	return f
}

// TryNewFace is NewFace's fallible counterpart.
func TryNewFace[P any, C any, S any](boundaries []Wire[P, C], surface S) (Face[P, C, S], error) {
	for _, w := range boundaries {
		if !w.IsClosed() {
			return Face[P, C, S]{}, ErrNotClosedWire
		}
		if !w.IsSimple() {
			return Face[P, C, S]{}, ErrNotSimpleWire
		}
	}

	return NewUncheckedFace(boundaries, surface), nil
}

// NewUncheckedFace constructs a face without validating that its
// boundaries are closed and simple. The caller must guarantee it holds.
func NewUncheckedFace[P any, C any, S any](boundaries []Wire[P, C], surface S) Face[P, C, S] {
	cp := make([]Wire[P, C], len(boundaries))
	copy(cp, boundaries)

	return Face[P, C, S]{
		data:        &faceData[P, C, S]{id: newID(), boundaries: cp, surface: surface},
		orientation: true,
	}
}

// DebugNewFace validates unconditionally; see package doc.
func DebugNewFace[P any, C any, S any](boundaries []Wire[P, C], surface S) Face[P, C, S] {
	return NewFace(boundaries, surface)
}

// ID returns this face's identity, shared by Invert().
func (f Face[P, C, S]) ID() ID { return f.data.id }

// Orientation returns the face's current orientation bit.
func (f Face[P, C, S]) Orientation() bool { return f.orientation }

// Boundaries returns the face's boundary wires honoring the current
// orientation bit: each wire is reversed when Orientation() is false.
func (f Face[P, C, S]) Boundaries() []Wire[P, C] {
	if f.orientation {
		out := make([]Wire[P, C], len(f.data.boundaries))
		copy(out, f.data.boundaries)

		return out
	}
	out := make([]Wire[P, C], len(f.data.boundaries))
	for i, w := range f.data.boundaries {
		out[i] = w.Inverse()
	}

	return out
}

// AbsoluteBoundaries returns the face's boundary wires in their canonical
// (construction-time) orientation, regardless of the face's current bit.
func (f Face[P, C, S]) AbsoluteBoundaries() []Wire[P, C] {
	out := make([]Wire[P, C], len(f.data.boundaries))
	copy(out, f.data.boundaries)

	return out
}

// Invert returns a handle sharing this face's identity, boundaries, and
// surface, with the orientation bit flipped.
func (f Face[P, C, S]) Invert() Face[P, C, S] {
	return Face[P, C, S]{data: f.data, orientation: !f.orientation}
}

// Same reports whether f and other are handles to the same entity.
func (f Face[P, C, S]) Same(other Face[P, C, S]) bool {
	return f.data.id == other.data.id
}

// Surface returns a copy of the face's current surface payload.
func (f Face[P, C, S]) Surface() S {
	f.data.mu.RLock()
	defer f.data.mu.RUnlock()

	return f.data.surface
}

// SetSurface replaces the face's surface payload under an exclusive lock.
func (f Face[P, C, S]) SetSurface(surface S) {
	f.data.mu.Lock()
	defer f.data.mu.Unlock()
	f.data.surface = surface
}

// replaceBoundaries swaps the face's canonical boundary wires in place,
// preserving the face's identity. Used only by CutEdge and
// RemoveVertexByConcatEdges.
func (f Face[P, C, S]) replaceBoundaries(newBoundaries []Wire[P, C]) {
	f.data.mu.Lock()
	defer f.data.mu.Unlock()
	f.data.boundaries = newBoundaries
}

// EdgeIter returns every oriented edge appearance across all boundaries,
// in AbsoluteBoundaries order.
func (f Face[P, C, S]) EdgeIter() []Edge[P, C] {
	var out []Edge[P, C]
	for _, w := range f.AbsoluteBoundaries() {
		out = append(out, w.Edges()...)
	}

	return out
}

// mapped returns a fresh face with a new identity, whose boundaries are
// mapped through memo and whose surface is fs(f.Surface()). The
// orientation bit is preserved.
func mappedFace[P any, C any, S any](f Face[P, C, S], memo *mapMemo[P, C, S], fp func(P) P, fc func(C) C, fs func(S) S) Face[P, C, S] {
	newBoundaries := make([]Wire[P, C], len(f.data.boundaries))
	for i, w := range f.data.boundaries {
		newBoundaries[i] = mappedWire(w, memo, fp, fc)
	}
	nf := NewUncheckedFace(newBoundaries, fs(f.data.surface))
	nf.orientation = f.orientation

	return nf
}

func tryMappedFace[P any, C any, S any](
	f Face[P, C, S],
	memo *mapMemo[P, C, S],
	fp func(P) (P, bool),
	fc func(C) (C, bool),
	fs func(S) (S, bool),
) (Face[P, C, S], bool) {
	newBoundaries := make([]Wire[P, C], len(f.data.boundaries))
	for i, w := range f.data.boundaries {
		nw, ok := tryMappedWire(w, memo, fp, fc)
		if !ok {
			return Face[P, C, S]{}, false
		}
		newBoundaries[i] = nw
	}
	ns, ok := fs(f.data.surface)
	if !ok {
		return Face[P, C, S]{}, false
	}
	nf := NewUncheckedFace(newBoundaries, ns)
	nf.orientation = f.orientation

	return nf, true
}

// Mapped deep-copies the face, assigning fresh identities to every vertex,
// edge, and wire while preserving sharing within this face's own
// boundaries. Callers mapping a face as part of a larger shell/solid
// should go through Shell/Solid.Mapped instead, which share one memo
// across every face.
func (f Face[P, C, S]) Mapped(fp func(P) P, fc func(C) C, fs func(S) S) Face[P, C, S] {
	return mappedFace(f, newMapMemo[P, C, S](), fp, fc, fs)
}

// TryMapped is Mapped's fallible counterpart.
func (f Face[P, C, S]) TryMapped(fp func(P) (P, bool), fc func(C) (C, bool), fs func(S) (S, bool)) (Face[P, C, S], bool) {
	return tryMappedFace(f, newMapMemo[P, C, S](), fp, fc, fs)
}
