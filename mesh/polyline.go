package mesh

import "github.com/solidkit/brep/geom"

// PolylineCurve is a piecewise-linear curve through an ordered point
// sequence, the edge payload tessellate produces in place of an analytic
// curve. Its parameter range is [0, len(points)-1]; Subs interpolates
// linearly between the two points bracketing t. Concrete over geom.Point3
// rather than generic, since the tessellator only ever discretizes into
// one point type.
type PolylineCurve struct {
	points []geom.Point3
}

// NewPolylineCurve builds a PolylineCurve from an ordered point sequence.
// points must have at least 2 elements.
func NewPolylineCurve(points []geom.Point3) PolylineCurve {
	cp := make([]geom.Point3, len(points))
	copy(cp, points)

	return PolylineCurve{points: cp}
}

// Points returns the curve's control points in order.
func (p PolylineCurve) Points() []geom.Point3 {
	out := make([]geom.Point3, len(p.points))
	copy(out, p.points)

	return out
}

// Len returns the number of control points.
func (p PolylineCurve) Len() int { return len(p.points) }

// ParameterRange implements geom.ParametricCurve3D.
func (p PolylineCurve) ParameterRange() (t0, t1 float64) {
	return 0, float64(len(p.points) - 1)
}

// Subs implements geom.ParametricCurve3D, linearly interpolating between the
// two points bracketing t.
func (p PolylineCurve) Subs(t float64) geom.Point3 {
	n := len(p.points)
	if n == 0 {
		return geom.Point3{}
	}
	if t <= 0 {
		return p.points[0]
	}
	if t >= float64(n-1) {
		return p.points[n-1]
	}
	i := int(t)
	frac := t - float64(i)
	a, b := p.points[i], p.points[i+1]

	return geom.Point3{
		X: a.X + (b.X-a.X)*frac,
		Y: a.Y + (b.Y-a.Y)*frac,
		Z: a.Z + (b.Z-a.Z)*frac,
	}
}

// Invert reverses the point order without changing the image, satisfying
// geom.Invertible.
func (p PolylineCurve) Invert() geom.ParametricCurve3D {
	n := len(p.points)
	rev := make([]geom.Point3, n)
	for i, pt := range p.points {
		rev[n-1-i] = pt
	}

	return PolylineCurve{points: rev}
}
