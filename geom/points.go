package geom

import "math"

// Point2 is a point in a surface's 2D parameter domain.
type Point2 struct {
	U, V float64
}

// Vector2 is a free vector in a surface's 2D parameter domain (a
// displacement between two Point2, or a bounding box's extent).
type Vector2 struct {
	U, V float64
}

// Sub returns p-q.
func (p Point2) Sub(q Point2) Vector2 {
	return Vector2{p.U - q.U, p.V - q.V}
}

// Point3 is a point in 3D model space.
type Point3 struct {
	X, Y, Z float64
}

// Vector3 is a free vector in 3D model space (used for surface normals).
type Vector3 struct {
	X, Y, Z float64
}

// Sub returns p-q.
func (p Point3) Sub(q Point3) Vector3 {
	return Vector3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Distance returns the Euclidean distance between p and q.
func (p Point3) Distance(q Point3) float64 {
	d := p.Sub(q)

	return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}

// Near reports whether p and q are within tol of each other.
func (p Point3) Near(q Point3, tol float64) bool {
	return p.Distance(q) <= tol
}

// Norm returns the Euclidean length of v.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}
