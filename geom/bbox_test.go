package geom_test

import (
	"testing"

	"github.com/solidkit/brep/geom"
	"github.com/stretchr/testify/require"
)

func TestBoundingBox2_EmptyHasNoSize(t *testing.T) {
	bb := geom.EmptyBoundingBox2()
	require.True(t, bb.IsEmpty())
	require.Equal(t, geom.Vector2{}, bb.Size())
}

func TestBoundingBox2_FromPointsTracksExtentAndContainment(t *testing.T) {
	bb := geom.BoundingBox2FromPoints([]geom.Point2{
		{U: -1, V: 2},
		{U: 3, V: -4},
	})
	require.False(t, bb.IsEmpty())
	require.Equal(t, [2]float64{-1, 3}, bb.URange())
	require.Equal(t, [2]float64{-4, 2}, bb.VRange())
	require.Equal(t, geom.Vector2{U: 4, V: 6}, bb.Size())
	require.True(t, bb.ContainsPoint(geom.Point2{U: 0, V: 0}))
	require.False(t, bb.ContainsPoint(geom.Point2{U: 10, V: 10}))
}

func TestPoint2_SubReturnsDisplacementVector(t *testing.T) {
	a := geom.Point2{U: 5, V: 7}
	b := geom.Point2{U: 2, V: 1}
	require.Equal(t, geom.Vector2{U: 3, V: 6}, a.Sub(b))
}
