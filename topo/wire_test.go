package topo_test

import (
	"testing"

	"github.com/solidkit/brep/geom"
	"github.com/solidkit/brep/topo"
	"github.com/stretchr/testify/require"
)

func square(t *testing.T) (topo.Wire[geom.Point3, segment], []topo.Vertex[geom.Point3]) {
	t.Helper()
	v := []topo.Vertex[geom.Point3]{
		topo.NewVertex(geom.Point3{X: 0, Y: 0}),
		topo.NewVertex(geom.Point3{X: 1, Y: 0}),
		topo.NewVertex(geom.Point3{X: 1, Y: 1}),
		topo.NewVertex(geom.Point3{X: 0, Y: 1}),
	}
	edges := []topo.Edge[geom.Point3, segment]{
		topo.NewEdge(v[0], v[1], segment{v[0].Point(), v[1].Point()}),
		topo.NewEdge(v[1], v[2], segment{v[1].Point(), v[2].Point()}),
		topo.NewEdge(v[2], v[3], segment{v[2].Point(), v[3].Point()}),
		topo.NewEdge(v[3], v[0], segment{v[3].Point(), v[0].Point()}),
	}
	w, ok := topo.WireFromEdges(edges)
	require.True(t, ok)

	return w, v
}

func TestWire_ClosedAndSimple(t *testing.T) {
	w, _ := square(t)

	require.Equal(t, 4, w.Len())
	require.True(t, w.IsClosed())
	require.True(t, w.IsSimple())
}

func TestWire_FromEdgesRejectsBrokenAdjacency(t *testing.T) {
	a := topo.NewVertex(geom.Point3{})
	b := topo.NewVertex(geom.Point3{X: 1})
	c := topo.NewVertex(geom.Point3{X: 2})
	d := topo.NewVertex(geom.Point3{X: 3})

	e1 := topo.NewEdge(a, b, segment{})
	e2 := topo.NewEdge(c, d, segment{}) // does not continue from b

	_, ok := topo.WireFromEdges([]topo.Edge[geom.Point3, segment]{e1, e2})
	require.False(t, ok)
}

func TestWire_Inverse(t *testing.T) {
	w, v := square(t)
	inv := w.Inverse()

	require.Equal(t, w.Len(), inv.Len())
	front, ok := inv.FrontVertex()
	require.True(t, ok)
	require.True(t, front.Same(v[0]))

	// Walking the inverse visits the square the other way around.
	back, ok := inv.BackVertex()
	require.True(t, ok)
	require.True(t, back.Same(v[0]))
	require.True(t, inv.IsClosed())
}

func TestWire_NotSimpleWhenVertexRepeats(t *testing.T) {
	a := topo.NewVertex(geom.Point3{})
	b := topo.NewVertex(geom.Point3{X: 1})
	c := topo.NewVertex(geom.Point3{X: 2})

	e1 := topo.NewEdge(a, b, segment{})
	e2 := topo.NewEdge(b, c, segment{})
	e3 := topo.NewEdge(c, b, segment{}) // revisits b before closing

	w, ok := topo.WireFromEdges([]topo.Edge[geom.Point3, segment]{e1, e2, e3})
	require.True(t, ok)
	require.False(t, w.IsClosed())
	require.False(t, w.IsSimple())
}

func TestWire_Mapped(t *testing.T) {
	w, _ := square(t)
	mapped := w.Mapped(
		func(p geom.Point3) geom.Point3 { p.Z = 1; return p },
		func(c segment) segment { return c },
	)

	require.Equal(t, w.Len(), mapped.Len())
	for _, e := range mapped.Edges() {
		require.Equal(t, 1.0, e.Front().Point().Z)
	}
}
