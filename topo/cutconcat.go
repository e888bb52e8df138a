package topo

import "github.com/solidkit/brep/geom"

// findEdge returns the first occurrence of edgeID found while walking
// sol's faces, in face-then-boundary-then-wire order.
func findEdge[P any, S any](sol Solid[P, geom.Curve, S], edgeID ID) (Edge[P, geom.Curve], bool) {
	for _, e := range sol.EdgeIter() {
		if e.ID() == edgeID {
			return e, true
		}
	}

	return Edge[P, geom.Curve]{}, false
}

// incidentEdges returns the distinct edges (by identity) touching vertex v
// anywhere in sol.
func incidentEdges[P any, S any](sol Solid[P, geom.Curve, S], v Vertex[P]) []Edge[P, geom.Curve] {
	seen := make(map[ID]Edge[P, geom.Curve])
	for _, e := range sol.EdgeIter() {
		if e.Front().Same(v) || e.Back().Same(v) {
			seen[e.ID()] = e
		}
	}
	out := make([]Edge[P, geom.Curve], 0, len(seen))
	for _, e := range seen {
		out = append(out, e)
	}

	return out
}

// CutEdge replaces every occurrence of edgeID, across every wire of every
// face of every boundary shell of sol, with two new edges joined at v. The
// curve is split at the parameter recovered by searching v's point; budget
// bounds that search. Both new edges get fresh identities shared across
// every occurrence (wire/face/shell identity is otherwise untouched, since
// faces mutate their boundary list in place via replaceBoundaries).
func CutEdge[P any, S any](sol Solid[P, geom.Curve, S], edgeID ID, v Vertex[P], budget int) (Solid[P, geom.Curve, S], error) {
	target, found := findEdge(sol, edgeID)
	if !found {
		return Solid[P, geom.Curve, S]{}, ErrEdgeNotFound
	}

	curve := target.Curve()
	t, ok := curve.SearchParameter(v.Point(), nil, budget)
	if !ok {
		return Solid[P, geom.Curve, S]{}, ErrCurveNotCuttable
	}

	before, after := curve.Cut(t)
	beforeC, ok := before.(geom.Curve)
	if !ok {
		return Solid[P, geom.Curve, S]{}, ErrCurveNotCuttable
	}
	afterC, ok := after.(geom.Curve)
	if !ok {
		return Solid[P, geom.Curve, S]{}, ErrCurveNotCuttable
	}

	front := target.AbsoluteFront()
	back := target.AbsoluteBack()
	e1 := NewUncheckedEdge(front, v, beforeC)
	e2 := NewUncheckedEdge(v, back, afterC)

	for _, shell := range sol.boundaries {
		for _, f := range shell.faces {
			replaceEdgeInFace(f, edgeID, e1, e2)
		}
	}

	return sol, nil
}

// replaceEdgeInFace rewrites every boundary wire of f that contains
// edgeID, splicing in e1 then e2 (or their inverses, to match that wire's
// traversal direction) in place of the single occurrence.
func replaceEdgeInFace[P any, S any](f Face[P, geom.Curve, S], edgeID ID, e1, e2 Edge[P, geom.Curve]) {
	boundaries := f.AbsoluteBoundaries()
	changed := false
	out := make([]Wire[P, geom.Curve], len(boundaries))
	for i, w := range boundaries {
		nw, did := replaceEdgeInWire(w, edgeID, e1, e2)
		out[i] = nw
		changed = changed || did
	}
	if changed {
		f.replaceBoundaries(out)
	}
}

func replaceEdgeInWire[P any](w Wire[P, geom.Curve], edgeID ID, e1, e2 Edge[P, geom.Curve]) (Wire[P, geom.Curve], bool) {
	edges := w.Edges()
	var out []Edge[P, geom.Curve]
	changed := false
	for _, e := range edges {
		if e.ID() != edgeID {
			out = append(out, e)

			continue
		}
		changed = true
		if e.Orientation() {
			out = append(out, e1, e2)
		} else {
			out = append(out, e2.Inverse(), e1.Inverse())
		}
	}
	if !changed {
		return w, false
	}

	return wireFromEdgesUnchecked(out), true
}

// otherVertex returns the endpoint of e that is not v.
func otherVertex[P any](e Edge[P, geom.Curve], v Vertex[P]) Vertex[P] {
	if e.AbsoluteFront().Same(v) {
		return e.AbsoluteBack()
	}

	return e.AbsoluteFront()
}

// curveEndingAt returns e's curve oriented so that it ends at v, inverting
// if e's canonical direction starts at v instead.
func curveEndingAt[P any](e Edge[P, geom.Curve], v Vertex[P]) (geom.Curve, bool) {
	if e.AbsoluteBack().Same(v) {
		return e.Curve(), true
	}
	inv, ok := e.Curve().Invert().(geom.Curve)

	return inv, ok
}

// curveStartingAt is curveEndingAt's mirror.
func curveStartingAt[P any](e Edge[P, geom.Curve], v Vertex[P]) (geom.Curve, bool) {
	if e.AbsoluteFront().Same(v) {
		return e.Curve(), true
	}
	inv, ok := e.Curve().Invert().(geom.Curve)

	return inv, ok
}

// RemoveVertexByConcatEdges fuses the two edges meeting at vertexID into
// one, using Concat on their curves, and replaces every occurrence of the
// pair (in every wire of every face of every boundary shell of sol) with
// the single fused edge. Fails with ErrVertexNotFound if vertexID does not
// occur, ErrDegreeMismatch if it does not have exactly two distinct
// incident edges, or ErrConcatFailed if the curves refuse to concatenate.
func RemoveVertexByConcatEdges[P any, S any](sol Solid[P, geom.Curve, S], vertexID ID) (Solid[P, geom.Curve, S], error) {
	v, found := findVertex(sol, vertexID)
	if !found {
		return Solid[P, geom.Curve, S]{}, ErrVertexNotFound
	}

	incident := incidentEdges(sol, v)
	if len(incident) != 2 {
		return Solid[P, geom.Curve, S]{}, ErrDegreeMismatch
	}
	a, b := incident[0], incident[1]

	into, ok := curveEndingAt(a, v)
	if !ok {
		return Solid[P, geom.Curve, S]{}, ErrConcatFailed
	}
	outOf, ok := curveStartingAt(b, v)
	if !ok {
		return Solid[P, geom.Curve, S]{}, ErrConcatFailed
	}
	joined, ok := into.Concat(outOf)
	if !ok {
		return Solid[P, geom.Curve, S]{}, ErrConcatFailed
	}
	joinedC, ok := joined.(geom.Curve)
	if !ok {
		return Solid[P, geom.Curve, S]{}, ErrConcatFailed
	}

	other1 := otherVertex(a, v)
	other2 := otherVertex(b, v)
	newEdge := NewUncheckedEdge(other1, other2, joinedC)

	for _, shell := range sol.boundaries {
		for _, f := range shell.faces {
			mergeVertexInFace(f, vertexID, a.ID(), b.ID(), newEdge)
		}
	}

	return sol, nil
}

func findVertex[P any, S any](sol Solid[P, geom.Curve, S], vertexID ID) (Vertex[P], bool) {
	for _, e := range sol.EdgeIter() {
		if e.Front().ID() == vertexID {
			return e.Front(), true
		}
		if e.Back().ID() == vertexID {
			return e.Back(), true
		}
	}

	return Vertex[P]{}, false
}

func mergeVertexInFace[P any, S any](f Face[P, geom.Curve, S], vertexID, edgeAID, edgeBID ID, newEdge Edge[P, geom.Curve]) {
	boundaries := f.AbsoluteBoundaries()
	changed := false
	out := make([]Wire[P, geom.Curve], len(boundaries))
	for i, w := range boundaries {
		nw, did := mergeVertexInWire(w, vertexID, edgeAID, edgeBID, newEdge)
		out[i] = nw
		changed = changed || did
	}
	if changed {
		f.replaceBoundaries(out)
	}
}

// mergeVertexInWire finds the adjacent pair {edgeAID, edgeBID} joined at
// vertexID in w and splices in newEdge (or its inverse, to match the
// wire's traversal direction) in their place.
func mergeVertexInWire[P any](w Wire[P, geom.Curve], vertexID, edgeAID, edgeBID ID, newEdge Edge[P, geom.Curve]) (Wire[P, geom.Curve], bool) {
	edges := w.Edges()
	n := len(edges)
	if n < 2 {
		return w, false
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := edges[i], edges[j]
		if a.Back().ID() != vertexID || b.Front().ID() != vertexID {
			continue
		}
		matches := (a.ID() == edgeAID && b.ID() == edgeBID) || (a.ID() == edgeBID && b.ID() == edgeAID)
		if !matches {
			continue
		}

		var use Edge[P, geom.Curve]
		if a.Front().ID() == newEdge.AbsoluteFront().ID() {
			use = newEdge
		} else {
			use = newEdge.Inverse()
		}

		rest := make([]Edge[P, geom.Curve], 0, n-2)
		for k := 1; k <= n-2; k++ {
			rest = append(rest, edges[(j+k)%n])
		}
		out := append(rest, use)

		return wireFromEdgesUnchecked(out), true
	}

	return w, false
}
