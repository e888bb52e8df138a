package sweep_test

import (
	"testing"

	"github.com/solidkit/brep/sweep"
	"github.com/solidkit/brep/topo"
	"github.com/stretchr/testify/require"
)

// point is the trivial payload used across sweep's tests: an offset along
// one axis, just enough for PointMapping to do something observable.
type point struct{ x float64 }

type curve struct{ a, b point }

type surface struct{ a, b curve }

// loopCurve implements topo.ClosedCurve, used only when a sweep step
// connects an entity directly to itself (division=1 closed sweep).
type loopCurve struct{}

func (loopCurve) IsClosed() bool { return true }

func translateBy(d float64) func(point) point {
	return func(p point) point { p.x += d; return p }
}

func stdCallbacks(d float64) sweep.Callbacks[point, curve, surface] {
	return sweep.Callbacks[point, curve, surface]{
		PointMapping:   translateBy(d),
		CurveMapping:   func(c curve) curve { return c },
		SurfaceMapping: func(s surface) surface { return s },
		ConnectPoints:  func(a, b point) curve { return curve{a, b} },
		ConnectCurves:  func(a, b curve) surface { return surface{a, b} },
	}
}

func TestOpenVertex_ConnectsToTrajectory(t *testing.T) {
	v := topo.NewVertex(point{x: 0})
	cb := stdCallbacks(1)

	e := sweep.OpenVertex(v, cb)

	require.True(t, e.Front().Same(v))
	require.Equal(t, 1.0, e.Back().Point().x)
}

func TestOpenEdge_ProducesQuadFace(t *testing.T) {
	front := topo.NewVertex(point{x: 0})
	back := topo.NewVertex(point{x: 1})
	e := topo.NewEdge(front, back, curve{point{0}, point{1}})
	cb := stdCallbacks(1)

	f := sweep.OpenEdge(e, cb)

	require.Len(t, f.EdgeIter(), 4)
}

func TestOpenVertexThenOpenEdge_FourBoundaryEdges(t *testing.T) {
	v := topo.NewVertex(point{x: 0})
	cb := stdCallbacks(1)

	e := sweep.OpenVertex(v, cb)
	f := sweep.OpenEdge(e, cb)

	require.Len(t, f.EdgeIter(), 4)
	ids := make(map[topo.ID]bool)
	for _, be := range f.EdgeIter() {
		ids[be.ID()] = true
	}
	require.True(t, ids[e.ID()], "the swept face must reuse the original sweep edge, not a copy")
}

func TestClosedVertex_DivisionOneConnectsToSelf(t *testing.T) {
	v := topo.NewVertex(point{x: 0})
	cb := sweep.Callbacks[point, loopCurve, surface]{
		PointMapping:  func(p point) point { return p },
		ConnectPoints: func(a, b point) loopCurve { return loopCurve{} },
	}

	w := sweep.ClosedVertex(v, cb, 1)

	require.Equal(t, 1, w.Len())
	e := w.Edges()[0]
	require.True(t, e.Front().Same(v))
	require.True(t, e.Back().Same(v))
}

func TestClosedWire_DivisionOneProducesSideShell(t *testing.T) {
	// A square wire: four vertices, four edges, closed.
	v := [4]topo.Vertex[point]{
		topo.NewVertex(point{0}), topo.NewVertex(point{1}),
		topo.NewVertex(point{2}), topo.NewVertex(point{3}),
	}
	e := []topo.Edge[point, curve]{
		topo.NewEdge(v[0], v[1], curve{}),
		topo.NewEdge(v[1], v[2], curve{}),
		topo.NewEdge(v[2], v[3], curve{}),
		topo.NewEdge(v[3], v[0], curve{}),
	}
	w, ok := topo.WireFromEdges(e)
	require.True(t, ok)
	require.True(t, w.IsClosed())

	cb := stdCallbacks(1)
	shell := sweep.ClosedWire(w, cb, 1)

	require.Equal(t, 4, shell.Len())
	for _, f := range shell.Faces() {
		require.Len(t, f.EdgeIter(), 4)
	}
}

func TestOpenShell_SweepsPerConnectedComponent(t *testing.T) {
	v := [4]topo.Vertex[point]{
		topo.NewVertex(point{0}), topo.NewVertex(point{1}),
		topo.NewVertex(point{2}), topo.NewVertex(point{3}),
	}
	e := []topo.Edge[point, curve]{
		topo.NewEdge(v[0], v[1], curve{}),
		topo.NewEdge(v[1], v[2], curve{}),
		topo.NewEdge(v[2], v[3], curve{}),
		topo.NewEdge(v[3], v[0], curve{}),
	}
	w, ok := topo.WireFromEdges(e)
	require.True(t, ok)
	f := topo.NewFace([]topo.Wire[point, curve]{w}, surface{})

	shell := topo.NewShell[point, curve, surface]()
	shell.Push(f)

	cb := stdCallbacks(1)
	solids := sweep.OpenShell(shell, cb)

	require.Len(t, solids, 1)
	require.Len(t, solids[0].Boundaries(), 1)
	// The boundary wire of the single face sweeps into 4 side faces.
	require.Len(t, solids[0].FaceIter(), 4)
}
