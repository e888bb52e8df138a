package topo_test

import (
	"testing"

	"github.com/solidkit/brep/geom"
	"github.com/solidkit/brep/topo"
	"github.com/stretchr/testify/require"
)

type plane struct{}

func TestFace_ConstructionRequiresClosedSimpleWires(t *testing.T) {
	w, _ := square(t)
	f := topo.NewFace([]topo.Wire[geom.Point3, segment]{w}, plane{})

	require.Len(t, f.Boundaries(), 1)
	require.True(t, f.Orientation())
}

func TestFace_ConstructionRejectsOpenWire(t *testing.T) {
	a := topo.NewVertex(geom.Point3{})
	b := topo.NewVertex(geom.Point3{X: 1})
	e := topo.NewEdge(a, b, segment{})
	open, ok := topo.WireFromEdges([]topo.Edge[geom.Point3, segment]{e})
	require.True(t, ok)

	_, err := topo.TryNewFace([]topo.Wire[geom.Point3, segment]{open}, plane{})
	require.ErrorIs(t, err, topo.ErrNotClosedWire)
}

func TestFace_Invert(t *testing.T) {
	w, v := square(t)
	f := topo.NewFace([]topo.Wire[geom.Point3, segment]{w}, plane{})

	inv := f.Invert()
	require.True(t, inv.Same(f))
	require.False(t, inv.Orientation())

	front, ok := inv.Boundaries()[0].FrontVertex()
	require.True(t, ok)
	// The inverted face's boundary starts at the same vertex the original
	// wire closed on, since Inverse() reverses traversal order.
	require.True(t, front.Same(v[0]))
}

func TestFace_SetSurfaceSharedAcrossOrientations(t *testing.T) {
	w, _ := square(t)
	f := topo.NewFace([]topo.Wire[geom.Point3, segment]{w}, plane{})
	inv := f.Invert()

	f.SetSurface(plane{})
	require.Equal(t, f.Surface(), inv.Surface())
}

func TestFace_EdgeIterCoversAllBoundaries(t *testing.T) {
	w, _ := square(t)
	f := topo.NewFace([]topo.Wire[geom.Point3, segment]{w}, plane{})

	require.Len(t, f.EdgeIter(), 4)
}
