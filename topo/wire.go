package topo

// Wire is an ordered sequence of oriented edges. Adjacent edges must share
// a vertex at their join; PushBack/PushFront reject edges that would break
// that adjacency.
//
// Complexity: PushBack (amortized) and Len are O(1); PushFront,
// IsClosed/IsSimple are O(len(wire)).
type Wire[P any, C any] struct {
	edges []Edge[P, C]
}

// NewWire returns an empty wire.
func NewWire[P any, C any]() Wire[P, C] {
	return Wire[P, C]{}
}

// WireFromEdges builds a wire from a pre-validated edge sequence, checking
// adjacency between every consecutive pair; ok is false if any pair does
// not join front-to-back. Closedness and simplicity are separate queries
// (IsClosed/IsSimple), not construction-time checks: a wire need not be
// closed to exist, only to become a face boundary.
func WireFromEdges[P any, C any](edges []Edge[P, C]) (Wire[P, C], bool) {
	w := NewWire[P, C]()
	for _, e := range edges {
		if !w.canPushBack(e) {
			return Wire[P, C]{}, false
		}
		w.edges = append(w.edges, e)
	}

	return w, true
}

// wireFromEdgesUnchecked builds a wire from an edge slice without
// re-validating adjacency, for callers (CutEdge, RemoveVertexByConcatEdges)
// that construct the replacement sequence themselves and already know it
// is adjacency-consistent.
func wireFromEdgesUnchecked[P any, C any](edges []Edge[P, C]) Wire[P, C] {
	return Wire[P, C]{edges: edges}
}

// Len returns the number of edges in the wire.
func (w Wire[P, C]) Len() int { return len(w.edges) }

// Edges returns the wire's edges in order. The returned slice is owned by
// the caller (a defensive copy), safe to mutate without affecting w.
func (w Wire[P, C]) Edges() []Edge[P, C] {
	out := make([]Edge[P, C], len(w.edges))
	copy(out, w.edges)

	return out
}

func (w Wire[P, C]) canPushBack(e Edge[P, C]) bool {
	if len(w.edges) == 0 {
		return true
	}

	return w.edges[len(w.edges)-1].Back().Same(e.Front())
}

func (w Wire[P, C]) canPushFront(e Edge[P, C]) bool {
	if len(w.edges) == 0 {
		return true
	}

	return e.Back().Same(w.edges[0].Front())
}

// PushBack appends e to the wire. It reports false and leaves the wire
// unchanged if e's front does not match the current last edge's back.
func (w *Wire[P, C]) PushBack(e Edge[P, C]) bool {
	if !w.canPushBack(e) {
		return false
	}
	w.edges = append(w.edges, e)

	return true
}

// PushFront prepends e to the wire. It reports false and leaves the wire
// unchanged if e's back does not match the current first edge's front.
func (w *Wire[P, C]) PushFront(e Edge[P, C]) bool {
	if !w.canPushFront(e) {
		return false
	}
	w.edges = append([]Edge[P, C]{e}, w.edges...)

	return true
}

// FrontVertex returns the front vertex of the wire's first edge.
func (w Wire[P, C]) FrontVertex() (Vertex[P], bool) {
	if len(w.edges) == 0 {
		return Vertex[P]{}, false
	}

	return w.edges[0].Front(), true
}

// BackVertex returns the back vertex of the wire's last edge.
func (w Wire[P, C]) BackVertex() (Vertex[P], bool) {
	if len(w.edges) == 0 {
		return Vertex[P]{}, false
	}

	return w.edges[len(w.edges)-1].Back(), true
}

// IsClosed reports whether the last edge's back vertex equals the first
// edge's front vertex. An empty wire is not closed.
func (w Wire[P, C]) IsClosed() bool {
	front, ok := w.FrontVertex()
	if !ok {
		return false
	}
	back, _ := w.BackVertex()

	return front.Same(back)
}

// IsSimple reports whether the wire visits each vertex at most once. For a
// closed wire the shared front==back join is not itself counted twice; for
// an open wire the final edge's back vertex is checked too, since nothing
// else in the loop ever inspects it.
func (w Wire[P, C]) IsSimple() bool {
	if len(w.edges) == 0 {
		return true
	}

	seen := make(map[ID]struct{}, len(w.edges))
	closed := w.IsClosed()
	for i, e := range w.edges {
		v := e.Front()
		if closed && i == 0 {
			seen[v.ID()] = struct{}{}

			continue
		}
		if _, dup := seen[v.ID()]; dup {
			return false
		}
		seen[v.ID()] = struct{}{}
	}

	if !closed {
		back := w.edges[len(w.edges)-1].Back()
		if _, dup := seen[back.ID()]; dup {
			return false
		}
	}

	return true
}

// Inverse returns a new wire traversing the same edges in reverse order,
// each individually inverted.
func (w Wire[P, C]) Inverse() Wire[P, C] {
	out := make([]Edge[P, C], len(w.edges))
	for i, e := range w.edges {
		out[len(w.edges)-1-i] = e.Inverse()
	}

	return Wire[P, C]{edges: out}
}

// mapped returns a fresh wire whose edges are obtained by looking each
// original edge's identity up in memo (inserting a freshly mapped edge on
// first sight), preserving per-edge orientation. S is the face-surface
// payload type threaded through mapMemo; it is not otherwise used here.
func mappedWire[P any, C any, S any](w Wire[P, C], memo *mapMemo[P, C, S], fp func(P) P, fc func(C) C) Wire[P, C] {
	out := make([]Edge[P, C], len(w.edges))
	for i, e := range w.edges {
		out[i] = memo.mapEdge(e, fp, fc)
	}

	return Wire[P, C]{edges: out}
}

// tryMappedWire is mappedWire's fallible counterpart; ok is false and the
// whole walk must abort if any edge fails to map.
func tryMappedWire[P any, C any, S any](w Wire[P, C], memo *mapMemo[P, C, S], fp func(P) (P, bool), fc func(C) (C, bool)) (Wire[P, C], bool) {
	out := make([]Edge[P, C], len(w.edges))
	for i, e := range w.edges {
		ne, ok := memo.tryMapEdge(e, fp, fc)
		if !ok {
			return Wire[P, C]{}, false
		}
		out[i] = ne
	}

	return Wire[P, C]{edges: out}, true
}

// Mapped deep-copies the wire, assigning fresh identities to every vertex
// and edge while preserving sharing (an edge seen twice maps once).
func (w Wire[P, C]) Mapped(fp func(P) P, fc func(C) C) Wire[P, C] {
	return mappedWire[P, C, struct{}](w, newMapMemo[P, C, struct{}](), fp, fc)
}

// TryMapped is Mapped's fallible counterpart.
func (w Wire[P, C]) TryMapped(fp func(P) (P, bool), fc func(C) (C, bool)) (Wire[P, C], bool) {
	return tryMappedWire[P, C, struct{}](w, newMapMemo[P, C, struct{}](), fp, fc)
}
