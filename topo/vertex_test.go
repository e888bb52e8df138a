package topo_test

import (
	"testing"

	"github.com/solidkit/brep/geom"
	"github.com/solidkit/brep/topo"
	"github.com/stretchr/testify/require"
)

func TestVertex_IdentitySharing(t *testing.T) {
	v := topo.NewVertex(geom.Point3{X: 1, Y: 2, Z: 3})
	alias := v // plain value copy; shares the same identity

	require.True(t, v.Same(alias))
	require.Equal(t, v.ID(), alias.ID())

	alias.SetPoint(geom.Point3{X: 9, Y: 9, Z: 9})
	require.Equal(t, geom.Point3{X: 9, Y: 9, Z: 9}, v.Point())
}

func TestVertex_DistinctIdentity(t *testing.T) {
	a := topo.NewVertex(geom.Point3{})
	b := topo.NewVertex(geom.Point3{})

	require.False(t, a.Same(b))
	require.NotEqual(t, a.ID(), b.ID())
}

func TestVertex_Mapped(t *testing.T) {
	v := topo.NewVertex(geom.Point3{X: 1})
	mapped := v.Mapped(func(p geom.Point3) geom.Point3 {
		p.X *= 2

		return p
	})

	require.False(t, v.Same(mapped))
	require.Equal(t, 2.0, mapped.Point().X)
	require.Equal(t, 1.0, v.Point().X)
}
