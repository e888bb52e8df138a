package sweep

import "github.com/solidkit/brep/topo"

// ClosedVertex applies OpenVertex division-1 times through fresh mapped
// copies, then connects the final copy back to v itself instead of
// another fresh copy, producing a closed wire. division must be ≥ 1;
// division=1 connects v directly to itself.
func ClosedVertex[P any, C any, S any](v topo.Vertex[P], cb Callbacks[P, C, S], division int) topo.Wire[P, C] {
	w := topo.NewWire[P, C]()
	cur := v
	for i := 1; i < division; i++ {
		next := cur.Mapped(cb.PointMapping)
		w.PushBack(connectVertices[P, C](cur, next, cb.ConnectPoints))
		cur = next
	}
	w.PushBack(connectVertices[P, C](cur, v, cb.ConnectPoints))

	return w
}

// ClosedEdge is ClosedVertex's edge analogue, producing a closed shell of
// quad faces.
func ClosedEdge[P any, C any, S any](e topo.Edge[P, C], cb Callbacks[P, C, S], division int) topo.Shell[P, C, S] {
	shell := topo.NewShell[P, C, S]()
	cur := e
	for i := 1; i < division; i++ {
		next := cur.Mapped(cb.PointMapping, cb.CurveMapping)
		shell.Push(connectEdges(cur, next, cb.ConnectPoints, cb.ConnectCurves))
		cur = next
	}
	shell.Push(connectEdges(cur, e, cb.ConnectPoints, cb.ConnectCurves))

	return shell
}

// ClosedWire is ClosedVertex's wire analogue, producing a closed shell.
func ClosedWire[P any, C any, S any](w topo.Wire[P, C], cb Callbacks[P, C, S], division int) topo.Shell[P, C, S] {
	var faces []topo.Face[P, C, S]
	cur := w
	for i := 1; i < division; i++ {
		next := cur.Mapped(cb.PointMapping, cb.CurveMapping)
		faces = append(faces, connectWires(cur, next, cb.ConnectPoints, cb.ConnectCurves)...)
		cur = next
	}
	faces = append(faces, connectWires(cur, w, cb.ConnectPoints, cb.ConnectCurves)...)

	return topo.ShellFromFaces(faces)
}

// ClosedFace sweeps each of f's boundary wires into a closed shell via
// ClosedWire, inverting every face of a boundary's shell when f's
// orientation bit is false, and collects the resulting shells as one
// solid's boundaries.
func ClosedFace[P any, C any, S any](f topo.Face[P, C, S], cb Callbacks[P, C, S], division int) topo.Solid[P, C, S] {
	boundaries := make([]topo.Shell[P, C, S], 0, len(f.Boundaries()))
	for _, w := range f.Boundaries() {
		shell := ClosedWire(w, cb, division)
		if !f.Orientation() {
			faces := shell.Faces()
			inverted := make([]topo.Face[P, C, S], len(faces))
			for i, sf := range faces {
				inverted[i] = sf.Invert()
			}
			shell = topo.ShellFromFaces(inverted)
		}
		boundaries = append(boundaries, shell)
	}

	return topo.NewUncheckedSolid(boundaries)
}

// ClosedShell sweeps each connected component of s into its own solid, by
// closed-sweeping each of that component's free boundary wires.
func ClosedShell[P any, C any, S any](s topo.Shell[P, C, S], cb Callbacks[P, C, S], division int) []topo.Solid[P, C, S] {
	components := s.ConnectedComponents()
	out := make([]topo.Solid[P, C, S], len(components))
	for i, comp := range components {
		var boundaries []topo.Shell[P, C, S]
		for _, w := range comp.ExtractBoundaries() {
			boundaries = append(boundaries, ClosedWire(w, cb, division))
		}
		out[i] = topo.NewUncheckedSolid(boundaries)
	}

	return out
}
