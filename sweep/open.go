package sweep

import "github.com/solidkit/brep/topo"

// connectVertices builds the edge joining a to b via cb.ConnectPoints. The
// edge is built unchecked, so a == b (a division=1 closed sweep) yields a
// self-loop edge rather than a panic.
func connectVertices[P any, C any](a, b topo.Vertex[P], cp func(P, P) C) topo.Edge[P, C] {
	return topo.NewUncheckedEdge(a, b, cp(a.Point(), b.Point()))
}

// connectEdges builds the quad face bridging e1 to e2: side edges at
// e1/e2's shared front and back vertices, e2 and e1.Inverse() completing
// the loop.
func connectEdges[P any, C any, S any](e1, e2 topo.Edge[P, C], cp func(P, P) C, ce func(C, C) S) topo.Face[P, C, S] {
	side1 := connectVertices[P, C](e1.Front(), e2.Front(), cp)
	side2 := connectVertices[P, C](e1.Back(), e2.Back(), cp)
	surface := ce(e1.Curve(), e2.Curve())
	w := topo.NewWire[P, C]()
	w.PushBack(side1)
	w.PushBack(e2)
	w.PushBack(side2.Inverse())
	w.PushBack(e1.Inverse())

	return topo.NewUncheckedFace([]topo.Wire[P, C]{w}, surface)
}

// connectWires bridges w1 to w2 edge-by-edge, producing one quad face per
// corresponding edge pair. Side edges are cached by w1's vertex identity
// so adjacent quads share the same side edge at a shared vertex, keeping
// the swept shell watertight.
func connectWires[P any, C any, S any](w1, w2 topo.Wire[P, C], cp func(P, P) C, ce func(C, C) S) []topo.Face[P, C, S] {
	e1s, e2s := w1.Edges(), w2.Edges()
	n := len(e1s)
	faces := make([]topo.Face[P, C, S], n)
	sideCache := make(map[topo.ID]topo.Edge[P, C], n)
	getSide := func(a, b topo.Vertex[P]) topo.Edge[P, C] {
		if e, ok := sideCache[a.ID()]; ok {
			return e
		}
		e := connectVertices[P, C](a, b, cp)
		sideCache[a.ID()] = e

		return e
	}
	for i := 0; i < n; i++ {
		e1, e2 := e1s[i], e2s[i]
		side1 := getSide(e1.Front(), e2.Front())
		side2 := getSide(e1.Back(), e2.Back())
		surface := ce(e1.Curve(), e2.Curve())
		w := topo.NewWire[P, C]()
		w.PushBack(side1)
		w.PushBack(e2)
		w.PushBack(side2.Inverse())
		w.PushBack(e1.Inverse())
		faces[i] = topo.NewUncheckedFace([]topo.Wire[P, C]{w}, surface)
	}

	return faces
}

// OpenVertex connects v to cb.PointMapping(v) via cb.ConnectPoints.
func OpenVertex[P any, C any, S any](v topo.Vertex[P], cb Callbacks[P, C, S]) topo.Edge[P, C] {
	return connectVertices[P, C](v, v.Mapped(cb.PointMapping), cb.ConnectPoints)
}

// OpenEdge sweeps e into a quad face: e as bottom, e.Mapped as top, two
// side edges via cp, a surface via ce.
func OpenEdge[P any, C any, S any](e topo.Edge[P, C], cb Callbacks[P, C, S]) topo.Face[P, C, S] {
	top := e.Mapped(cb.PointMapping, cb.CurveMapping)

	return connectEdges(e, top, cb.ConnectPoints, cb.ConnectCurves)
}

// OpenWire sweeps w into a shell, one quad per edge, sharing side edges
// between adjacent edges of w.
func OpenWire[P any, C any, S any](w topo.Wire[P, C], cb Callbacks[P, C, S]) topo.Shell[P, C, S] {
	top := w.Mapped(cb.PointMapping, cb.CurveMapping)
	faces := connectWires(w, top, cb.ConnectPoints, cb.ConnectCurves)

	return topo.ShellFromFaces(faces)
}

// OpenFace sweeps f into a solid: f as the bottom boundary, f.Mapped
// inverted as the top, and a side shell swept from each boundary wire
// (inverted when f's orientation bit is false).
func OpenFace[P any, C any, S any](f topo.Face[P, C, S], cb Callbacks[P, C, S]) topo.Solid[P, C, S] {
	top := f.Mapped(cb.PointMapping, cb.CurveMapping, cb.SurfaceMapping).Invert()

	boundary := topo.NewShell[P, C, S]()
	boundary.Push(f)
	boundary.Push(top)
	for _, w := range f.Boundaries() {
		side := OpenWire(w, cb)
		for _, sf := range side.Faces() {
			if !f.Orientation() {
				sf = sf.Invert()
			}
			boundary.Push(sf)
		}
	}

	return topo.NewUncheckedSolid([]topo.Shell[P, C, S]{boundary})
}

// OpenShell sweeps each connected component of s into its own solid,
// built from a side shell swept from each of that component's free
// boundary wires.
func OpenShell[P any, C any, S any](s topo.Shell[P, C, S], cb Callbacks[P, C, S]) []topo.Solid[P, C, S] {
	components := s.ConnectedComponents()
	out := make([]topo.Solid[P, C, S], len(components))
	for i, comp := range components {
		var boundaries []topo.Shell[P, C, S]
		for _, w := range comp.ExtractBoundaries() {
			boundaries = append(boundaries, OpenWire(w, cb))
		}
		out[i] = topo.NewUncheckedSolid(boundaries)
	}

	return out
}
