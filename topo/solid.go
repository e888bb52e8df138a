package topo

// Solid is a list of boundary shells. New/TryNew enforce, for every shell:
// non-empty, connected, closed, and free of singular vertices.
//
// Complexity: TryNewSolid costs the Shell queries it runs (see Shell);
// other accessors are O(1) or delegate to Shell.
type Solid[P any, C any, S any] struct {
	boundaries []Shell[P, C, S]
}

// NewSolid constructs a solid from boundaries, panicking if any shell
// fails a boundary requirement.
func NewSolid[P any, C any, S any](boundaries []Shell[P, C, S]) Solid[P, C, S] {
	sol, err := TryNewSolid(boundaries)
	if err != nil {
		panic(err)
	}

	return sol
}

// TryNewSolid is NewSolid's fallible counterpart.
func TryNewSolid[P any, C any, S any](boundaries []Shell[P, C, S]) (Solid[P, C, S], error) {
	for _, shell := range boundaries {
		switch {
		case shell.IsEmpty():
			return Solid[P, C, S]{}, ErrEmptyShell
		case !shell.IsConnected():
			return Solid[P, C, S]{}, ErrNotConnected
		case shell.ShellCondition() != Closed:
			return Solid[P, C, S]{}, ErrNotClosedShell
		case len(shell.SingularVertices()) > 0:
			return Solid[P, C, S]{}, ErrNotManifold
		}
	}

	return NewUncheckedSolid(boundaries), nil
}

// NewUncheckedSolid constructs a solid without validating shell
// requirements. The caller must guarantee they hold.
func NewUncheckedSolid[P any, C any, S any](boundaries []Shell[P, C, S]) Solid[P, C, S] {
	cp := make([]Shell[P, C, S], len(boundaries))
	copy(cp, boundaries)

	return Solid[P, C, S]{boundaries: cp}
}

// DebugNewSolid validates unconditionally; see package doc.
func DebugNewSolid[P any, C any, S any](boundaries []Shell[P, C, S]) Solid[P, C, S] {
	return NewSolid(boundaries)
}

// Boundaries returns the solid's boundary shells.
func (sol Solid[P, C, S]) Boundaries() []Shell[P, C, S] {
	out := make([]Shell[P, C, S], len(sol.boundaries))
	copy(out, sol.boundaries)

	return out
}

// FaceIter returns every face across every boundary shell.
func (sol Solid[P, C, S]) FaceIter() []Face[P, C, S] {
	var out []Face[P, C, S]
	for _, shell := range sol.boundaries {
		out = append(out, shell.Faces()...)
	}

	return out
}

// EdgeIter returns every oriented edge appearance across every boundary
// shell.
func (sol Solid[P, C, S]) EdgeIter() []Edge[P, C] {
	var out []Edge[P, C]
	for _, shell := range sol.boundaries {
		out = append(out, shell.EdgeIter()...)
	}

	return out
}

// VertexIter returns the front vertex of every edge appearance (see
// EdgeIter).
func (sol Solid[P, C, S]) VertexIter() []Vertex[P] {
	edges := sol.EdgeIter()
	out := make([]Vertex[P], len(edges))
	for i, e := range edges {
		out[i] = e.Front()
	}

	return out
}

// Mapped deep-copies the solid, assigning fresh identities to every
// entity, with geometric payloads transformed by fp/fc/fs. Sharing is
// preserved across shells: an edge referenced from two different
// boundary shells maps to a single new edge.
//
// The callbacks must not access the payload of the entity being mapped
// (a caller contract; see package doc).
func (sol Solid[P, C, S]) Mapped(fp func(P) P, fc func(C) C, fs func(S) S) Solid[P, C, S] {
	memo := newMapMemo[P, C, S]()
	out := make([]Shell[P, C, S], len(sol.boundaries))
	for i, shell := range sol.boundaries {
		out[i] = mappedShell(shell, memo, fp, fc, fs)
	}

	return NewUncheckedSolid(out)
}

// TryMapped is Mapped's fallible counterpart: any callback failure aborts
// the whole walk and returns ok=false.
func (sol Solid[P, C, S]) TryMapped(
	fp func(P) (P, bool),
	fc func(C) (C, bool),
	fs func(S) (S, bool),
) (Solid[P, C, S], bool) {
	memo := newMapMemo[P, C, S]()
	out := make([]Shell[P, C, S], len(sol.boundaries))
	for i, shell := range sol.boundaries {
		ns, ok := tryMappedShell(shell, memo, fp, fc, fs)
		if !ok {
			return Solid[P, C, S]{}, false
		}
		out[i] = ns
	}

	return NewUncheckedSolid(out), true
}
