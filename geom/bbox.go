package geom

import (
	"github.com/golang/geo/r2"
)

// BoundingBox2 is the axis-aligned bounding box of a set of Point2, used by
// the tessellator to size its u/v sample grid over a face's boundary.
type BoundingBox2 struct {
	rect r2.Rect
}

// EmptyBoundingBox2 returns a bounding box containing no points.
func EmptyBoundingBox2() BoundingBox2 {
	return BoundingBox2{rect: r2.EmptyRect()}
}

// BoundingBox2FromPoints computes the bounding box of pts.
func BoundingBox2FromPoints(pts []Point2) BoundingBox2 {
	bb := EmptyBoundingBox2()
	for _, p := range pts {
		bb = bb.AddPoint(p)
	}

	return bb
}

// AddPoint returns the bounding box enlarged to also contain p.
func (bb BoundingBox2) AddPoint(p Point2) BoundingBox2 {
	return BoundingBox2{rect: bb.rect.AddPoint(r2.Point{X: p.U, Y: p.V})}
}

// URange returns the box's extent along U as (min, max).
func (bb BoundingBox2) URange() [2]float64 {
	return [2]float64{bb.rect.X.Lo, bb.rect.X.Hi}
}

// VRange returns the box's extent along V as (min, max).
func (bb BoundingBox2) VRange() [2]float64 {
	return [2]float64{bb.rect.Y.Lo, bb.rect.Y.Hi}
}

// Size returns the box's extent along U and V, zero in either axis if the
// box is empty.
func (bb BoundingBox2) Size() Vector2 {
	if bb.rect.IsEmpty() {
		return Vector2{}
	}
	size := bb.rect.Size()

	return Vector2{U: size.X, V: size.Y}
}

// IsEmpty reports whether the bounding box contains no points.
func (bb BoundingBox2) IsEmpty() bool {
	return bb.rect.IsEmpty()
}

// ContainsPoint reports whether p lies within the box (inclusive).
func (bb BoundingBox2) ContainsPoint(p Point2) bool {
	return bb.rect.ContainsPoint(r2.Point{X: p.U, Y: p.V})
}
