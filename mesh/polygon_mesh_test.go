package mesh_test

import (
	"testing"

	"github.com/solidkit/brep/geom"
	"github.com/solidkit/brep/mesh"
	"github.com/stretchr/testify/require"
)

func TestPolylineCurve_SubsInterpolates(t *testing.T) {
	p := mesh.NewPolylineCurve([]geom.Point3{{X: 0}, {X: 2}, {X: 4}})

	require.Equal(t, geom.Point3{X: 0}, p.Subs(0))
	require.Equal(t, geom.Point3{X: 1}, p.Subs(0.5))
	require.Equal(t, geom.Point3{X: 3}, p.Subs(1.5))
	require.Equal(t, geom.Point3{X: 4}, p.Subs(2))

	t0, t1 := p.ParameterRange()
	require.Equal(t, 0.0, t0)
	require.Equal(t, 2.0, t1)
}

func TestPolylineCurve_InvertReversesPoints(t *testing.T) {
	p := mesh.NewPolylineCurve([]geom.Point3{{X: 0}, {X: 1}, {X: 2}})
	inv := p.Invert().(mesh.PolylineCurve)

	require.Equal(t, []geom.Point3{{X: 2}, {X: 1}, {X: 0}}, inv.Points())
}

func TestEditor_EndEditMergesNearbyPositionsAndRemapsFaces(t *testing.T) {
	e := mesh.NewEditor()
	a := e.PushPosition(geom.Point3{X: 0, Y: 0, Z: 0})
	b := e.PushPosition(geom.Point3{X: 1, Y: 0, Z: 0})
	c := e.PushPosition(geom.Point3{X: 0, Y: 1, Z: 0})
	// d is a near-duplicate of a, within tolerance.
	d := e.PushPosition(geom.Point3{X: 1e-9, Y: 0, Z: 0})
	e.AddTriangle([3]mesh.FaceVertex{{Pos: a}, {Pos: b}, {Pos: c}})
	e.AddTriangle([3]mesh.FaceVertex{{Pos: d}, {Pos: b}, {Pos: c}})

	out := e.EndEdit(1e-6, false)

	require.Len(t, out.Positions(), 3, "the near-duplicate position must merge into the first")
	tris := out.Faces().TriFaces()
	require.Len(t, tris, 2)
	require.Equal(t, tris[0][0].Pos, tris[1][0].Pos, "both triangles' first vertex must now resolve to the same merged position")
}

func TestEditor_EndEditRecomputesNormals(t *testing.T) {
	e := mesh.NewEditor()
	a := e.PushPosition(geom.Point3{X: 0, Y: 0, Z: 0})
	b := e.PushPosition(geom.Point3{X: 1, Y: 0, Z: 0})
	c := e.PushPosition(geom.Point3{X: 0, Y: 1, Z: 0})
	e.AddTriangle([3]mesh.FaceVertex{{Pos: a}, {Pos: b}, {Pos: c}})

	out := e.EndEdit(1e-6, true)

	require.Len(t, out.Normals(), 3)
	for _, n := range out.Normals() {
		require.InDelta(t, 1.0, n.Norm(), 1e-9)
	}
}

func TestFaces_LenAndIsEmpty(t *testing.T) {
	var f mesh.Faces
	require.True(t, f.IsEmpty())

	f.AddQuad([4]mesh.FaceVertex{{Pos: 0}, {Pos: 1}, {Pos: 2}, {Pos: 3}})
	require.Equal(t, 1, f.Len())
	require.False(t, f.IsEmpty())
}
