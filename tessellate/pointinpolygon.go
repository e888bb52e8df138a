package tessellate

import "math"

// pointInPolygon implements the tolerance-aware ray-casting rule: for each
// polygon edge a->b, translated so q is the origin, let
// x = (a.x*b.y - a.y*b.x) * (b.y - a.y). If |x| < tol and a.y*b.y < 0, q
// lies on that edge within tolerance and the whole test reports false
// (on-boundary is not inside). Otherwise the crossing counter is
// incremented when x > tol && a.y <= -tol && b.y > tol, decremented when
// x > tol && a.y >= tol && b.y < -tol, and left unchanged otherwise. q is
// inside iff the final counter is > 0.
func pointInPolygon(poly []point2, q point2, tol float64) bool {
	counter := 0
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		ax, ay := a.x-q.x, a.y-q.y
		bx, by := b.x-q.x, b.y-q.y
		x := (ax*by - ay*bx) * (by - ay)

		if math.Abs(x) < tol && ay*by < 0 {
			return false
		}

		switch {
		case x > tol && ay <= -tol && by > tol:
			counter++
		case x > tol && ay >= tol && by < -tol:
			counter--
		}
	}

	return counter > 0
}
