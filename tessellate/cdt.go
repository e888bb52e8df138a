package tessellate

import "math"

// point2 is a 2D point used internally by the triangulator. It is distinct
// from geom.Point2 to keep this file free of parameter-space semantics; the
// face pass converts at its boundary.
type point2 struct{ x, y float64 }

// triangle3 is a triangle as indices into a shared point slice, always
// stored counter-clockwise.
type triangle3 struct{ a, b, c int }

// triangulate returns a constrained Delaunay triangulation of points:
// an unconstrained Bowyer-Watson triangulation of every point, followed by
// a Lawson-flip pass recovering each constraint edge that the unconstrained
// triangulation didn't already produce.
func triangulate(points []point2, constraints [][2]int) []triangle3 {
	tris := bowyerWatson(points)
	for _, c := range constraints {
		tris = recoverEdge(tris, points, c[0], c[1])
	}

	return tris
}

// bowyerWatson triangulates points by incremental insertion into a
// super-triangle enclosing all of them, which is discarded at the end.
func bowyerWatson(points []point2) []triangle3 {
	n := len(points)
	if n < 3 {
		return nil
	}

	minX, minY, maxX, maxY := points[0].x, points[0].y, points[0].x, points[0].y
	for _, p := range points[1:] {
		minX, maxX = math.Min(minX, p.x), math.Max(maxX, p.x)
		minY, maxY = math.Min(minY, p.y), math.Max(maxY, p.y)
	}
	delta := math.Max(maxX-minX, maxY-minY)
	if delta == 0 {
		delta = 1
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	pts := make([]point2, n+3)
	copy(pts, points)
	pts[n] = point2{midX - 20*delta, midY - delta}
	pts[n+1] = point2{midX, midY + 20*delta}
	pts[n+2] = point2{midX + 20*delta, midY - delta}

	tris := []triangle3{makeCCW(pts, triangle3{n, n + 1, n + 2})}
	for i := 0; i < n; i++ {
		tris = bowyerWatsonInsert(tris, pts, i)
	}

	out := make([]triangle3, 0, len(tris))
	for _, tr := range tris {
		if tr.a < n && tr.b < n && tr.c < n {
			out = append(out, tr)
		}
	}

	return out
}

// bowyerWatsonInsert inserts point p (an index into pts) into tris: every
// triangle whose circumcircle contains p is removed, and the resulting
// polygonal cavity is re-triangulated by connecting p to each boundary edge.
func bowyerWatsonInsert(tris []triangle3, pts []point2, p int) []triangle3 {
	type edge struct{ u, v int }

	bad := make(map[int]bool, len(tris))
	for i, tr := range tris {
		if inCircumcircle(pts[tr.a], pts[tr.b], pts[tr.c], pts[p]) {
			bad[i] = true
		}
	}

	edgeCount := map[edge]int{}
	addEdge := func(u, v int) {
		if u > v {
			u, v = v, u
		}
		edgeCount[edge{u, v}]++
	}
	for i := range bad {
		tr := tris[i]
		addEdge(tr.a, tr.b)
		addEdge(tr.b, tr.c)
		addEdge(tr.c, tr.a)
	}

	var boundary []edge
	for e, count := range edgeCount {
		if count == 1 {
			boundary = append(boundary, e)
		}
	}

	next := make([]triangle3, 0, len(tris)-len(bad)+len(boundary))
	for i, tr := range tris {
		if !bad[i] {
			next = append(next, tr)
		}
	}
	for _, e := range boundary {
		next = append(next, makeCCW(pts, triangle3{e.u, e.v, p}))
	}

	return next
}

// recoverEdge repeatedly flips triangle-edges crossing the segment (u,v)
// until that segment is itself a triangle edge, or until no further
// crossing edge can be legally flipped (a best-effort bound for degenerate
// inputs; the output remains a valid triangulation either way).
func recoverEdge(tris []triangle3, pts []point2, u, v int) []triangle3 {
	const maxIter = 500
	for iter := 0; iter < maxIter; iter++ {
		if edgeExists(tris, u, v) {
			return tris
		}

		flippedAny := false
		for i, tr := range tris {
			edges := [3][2]int{{tr.a, tr.b}, {tr.b, tr.c}, {tr.c, tr.a}}
			for _, e := range edges {
				if e[0] == u || e[0] == v || e[1] == u || e[1] == v {
					continue
				}
				if !segmentsCross(pts[u], pts[v], pts[e[0]], pts[e[1]]) {
					continue
				}
				j, s, ok := findOpposite(tris, i, e[0], e[1])
				if !ok {
					continue
				}
				if flipped, ok := flipEdge(tris, i, j, e[0], e[1], s, pts); ok {
					tris = flipped
					flippedAny = true
				}
				break
			}
			if flippedAny {
				break
			}
		}
		if !flippedAny {
			return tris
		}
	}

	return tris
}

// findOpposite finds the triangle other than tris[i] that shares edge
// (p,q), returning its index and its vertex not on that edge.
func findOpposite(tris []triangle3, i, p, q int) (j, apex int, ok bool) {
	for k, tr := range tris {
		if k == i {
			continue
		}
		verts := [3]int{tr.a, tr.b, tr.c}
		hasP, hasQ, third := false, false, -1
		for _, v := range verts {
			switch v {
			case p:
				hasP = true
			case q:
				hasQ = true
			default:
				third = v
			}
		}
		if hasP && hasQ {
			return k, third, true
		}
	}

	return 0, 0, false
}

// flipEdge replaces the diagonal (p,q) shared by tris[i] and tris[j] (whose
// apexes off that diagonal are r and s respectively) with diagonal (r,s),
// provided the quadrilateral r-p-s-q is convex.
func flipEdge(tris []triangle3, i, j, p, q, s int, pts []point2) ([]triangle3, bool) {
	tr := tris[i]
	verts := [3]int{tr.a, tr.b, tr.c}
	r := -1
	for _, v := range verts {
		if v != p && v != q {
			r = v
		}
	}
	if r < 0 {
		return tris, false
	}
	if orient2d(pts[p], pts[q], pts[r])*orient2d(pts[p], pts[q], pts[s]) >= 0 {
		return tris, false
	}
	if orient2d(pts[r], pts[s], pts[p])*orient2d(pts[r], pts[s], pts[q]) >= 0 {
		return tris, false
	}

	out := make([]triangle3, len(tris))
	copy(out, tris)
	out[i] = makeCCW(pts, triangle3{r, p, s})
	out[j] = makeCCW(pts, triangle3{r, q, s})

	return out, true
}

func edgeExists(tris []triangle3, u, v int) bool {
	for _, tr := range tris {
		edges := [3][2]int{{tr.a, tr.b}, {tr.b, tr.c}, {tr.c, tr.a}}
		for _, e := range edges {
			if (e[0] == u && e[1] == v) || (e[0] == v && e[1] == u) {
				return true
			}
		}
	}

	return false
}

// makeCCW reorders tr's vertices (swapping b and c) if they're currently
// clockwise, so every stored triangle has a consistent winding.
func makeCCW(pts []point2, tr triangle3) triangle3 {
	if orient2d(pts[tr.a], pts[tr.b], pts[tr.c]) < 0 {
		tr.b, tr.c = tr.c, tr.b
	}

	return tr
}

// orient2d is twice the signed area of triangle a,b,c: positive if
// counter-clockwise, negative if clockwise, zero if collinear.
func orient2d(a, b, c point2) float64 {
	return (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
}

// inCircumcircle reports whether p lies inside the circumcircle of the
// counter-clockwise triangle a,b,c.
func inCircumcircle(a, b, c, p point2) bool {
	ax, ay := a.x-p.x, a.y-p.y
	bx, by := b.x-p.x, b.y-p.y
	cx, cy := c.x-p.x, c.y-p.y
	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)

	return det > 0
}

// segmentsCross reports whether open segments a-b and c-d properly cross
// (endpoints not considered part of either segment).
func segmentsCross(a, b, c, d point2) bool {
	d1 := orient2d(c, d, a)
	d2 := orient2d(c, d, b)
	d3 := orient2d(a, b, c)
	d4 := orient2d(a, b, d)

	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// triangleCentroid returns the arithmetic mean of a triangle's vertices.
func triangleCentroid(a, b, c point2) point2 {
	return point2{(a.x + b.x + c.x) / 3, (a.y + b.y + c.y) / 3}
}
