package topo_test

import (
	"testing"

	"github.com/solidkit/brep/geom"
	"github.com/solidkit/brep/topo"
	"github.com/stretchr/testify/require"
)

// segment is the minimal curve payload used across topo's own tests: the
// two endpoints of a straight line, with no curve math. It reports itself
// as not closed; the cut/concat tests use lineCurve instead.
type segment struct {
	a, b geom.Point3
}

func (s segment) IsClosed() bool { return false }

func TestEdge_ConstructionRejectsSameVertexOpenCurve(t *testing.T) {
	v := topo.NewVertex(geom.Point3{})

	require.Panics(t, func() {
		topo.NewEdge(v, v, segment{})
	})

	_, err := topo.TryNewEdge(v, v, segment{})
	require.ErrorIs(t, err, topo.ErrSameVertex)
}

type loopCurve struct{}

func (loopCurve) IsClosed() bool { return true }

func TestEdge_ConstructionAllowsSameVertexClosedCurve(t *testing.T) {
	v := topo.NewVertex(geom.Point3{})

	e := topo.NewEdge(v, v, loopCurve{})
	require.True(t, e.Front().Same(v))
	require.True(t, e.Back().Same(v))
}

func TestEdge_InverseRoundTrip(t *testing.T) {
	front := topo.NewVertex(geom.Point3{X: 0})
	back := topo.NewVertex(geom.Point3{X: 1})
	e := topo.NewEdge(front, back, segment{})

	inv := e.Inverse()
	require.True(t, inv.Same(e))
	require.True(t, inv.Front().Same(back))
	require.True(t, inv.Back().Same(front))
	require.False(t, inv.Orientation())

	roundTrip := inv.Inverse()
	require.True(t, roundTrip.Orientation())
	require.True(t, roundTrip.Front().Same(front))
	require.True(t, roundTrip.Back().Same(back))

	// AbsoluteFront/AbsoluteBack never change with orientation.
	require.True(t, inv.AbsoluteFront().Same(front))
	require.True(t, inv.AbsoluteBack().Same(back))
}

func TestEdge_SetCurveVisibleThroughInverse(t *testing.T) {
	front := topo.NewVertex(geom.Point3{})
	back := topo.NewVertex(geom.Point3{X: 1})
	e := topo.NewEdge(front, back, segment{a: front.Point(), b: back.Point()})

	inv := e.Inverse()
	e.SetCurve(segment{a: geom.Point3{X: 5}, b: geom.Point3{X: 6}})

	require.Equal(t, e.Curve(), inv.Curve())
}

func TestEdge_Mapped(t *testing.T) {
	front := topo.NewVertex(geom.Point3{X: 0})
	back := topo.NewVertex(geom.Point3{X: 1})
	e := topo.NewEdge(front, back, segment{a: front.Point(), b: back.Point()})

	mapped := e.Mapped(
		func(p geom.Point3) geom.Point3 { p.Y = 1; return p },
		func(c segment) segment { return c },
	)

	require.False(t, mapped.Same(e))
	require.False(t, mapped.Front().Same(front))
	require.Equal(t, 1.0, mapped.Front().Point().Y)
}
