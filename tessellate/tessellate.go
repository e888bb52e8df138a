package tessellate

import (
	"github.com/solidkit/brep/geom"
	"github.com/solidkit/brep/mesh"
	"github.com/solidkit/brep/topo"
)

// Tessellate discretizes shell's analytic curves and surfaces into
// polylines and polygon meshes, preserving topological structure exactly:
// same faces, same wire adjacency, same orientation bits. ok is false if
// any face's boundary fails to project into its surface's parameter space,
// in which case no partial result is returned.
func Tessellate[C geom.TessellableCurve, S geom.TessellableSurface](
	shell topo.Shell[geom.Point3, C, S],
	tol float64,
) (*topo.Shell[geom.Point3, mesh.PolylineCurve, mesh.PolygonMesh], bool) {
	newVertices := make(map[topo.ID]topo.Vertex[geom.Point3])
	for _, v := range shell.VertexIter() {
		if _, ok := newVertices[v.ID()]; !ok {
			newVertices[v.ID()] = topo.NewVertex(v.Point())
		}
	}

	edgePolylines := make(map[topo.ID]mesh.PolylineCurve)
	newEdges := make(map[topo.ID]topo.Edge[geom.Point3, mesh.PolylineCurve])
	for _, e := range shell.EdgeIter() {
		if _, ok := newEdges[e.ID()]; ok {
			continue
		}
		curve := e.Curve()
		t0, t1 := curve.ParameterRange()
		ts := curve.ParameterDivision([2]float64{t0, t1}, tol)
		pts := make([]geom.Point3, len(ts))
		for i, t := range ts {
			pts[i] = curve.Subs(t)
		}
		poly := mesh.NewPolylineCurve(pts)
		edgePolylines[e.ID()] = poly
		newEdges[e.ID()] = topo.NewUncheckedEdge(
			newVertices[e.AbsoluteFront().ID()],
			newVertices[e.AbsoluteBack().ID()],
			poly,
		)
	}

	newFaces := make([]topo.Face[geom.Point3, mesh.PolylineCurve, mesh.PolygonMesh], 0, len(shell.Faces()))
	for _, f := range shell.Faces() {
		fb, ok := buildFaceBoundary[C, S](f, edgePolylines)
		if !ok {
			return nil, false
		}

		faceMesh := triangulateFace(fb, f.Surface(), tol)

		newWires := make([]topo.Wire[geom.Point3, mesh.PolylineCurve], 0, len(f.AbsoluteBoundaries()))
		for _, w := range f.AbsoluteBoundaries() {
			edges := make([]topo.Edge[geom.Point3, mesh.PolylineCurve], 0, w.Len())
			for _, e := range w.Edges() {
				ne := newEdges[e.ID()]
				if !e.Orientation() {
					ne = ne.Inverse()
				}
				edges = append(edges, ne)
			}
			nw, ok := topo.WireFromEdges(edges)
			if !ok {
				return nil, false
			}
			newWires = append(newWires, nw)
		}

		nf := topo.NewUncheckedFace(newWires, faceMesh)
		if !f.Orientation() {
			nf = nf.Invert()
		}
		newFaces = append(newFaces, nf)
	}

	out := topo.ShellFromFaces(newFaces)

	return &out, true
}

// triangulateFace builds fb's interior: a constrained Delaunay
// triangulation seeded with the boundary points plus every strictly-inside
// grid sample from surface.ParameterDivision, keeping only the triangles
// whose centroid lies inside the boundary, and flipping any triangle whose
// geometric normal disagrees with the surface's analytic normal.
func triangulateFace[S geom.TessellableSurface](fb faceBoundary, surface S, tol float64) mesh.PolygonMesh {
	bbox := geom.EmptyBoundingBox2()
	for _, p := range fb.points {
		bbox = bbox.AddPoint(geom.Point2{U: p.x, V: p.y})
	}

	points := make([]point2, len(fb.points))
	copy(points, fb.points)

	if !bbox.IsEmpty() {
		uRange, vRange := bbox.URange(), bbox.VRange()
		us, vs := surface.ParameterDivision(uRange, vRange, tol)
		for _, u := range us {
			for _, v := range vs {
				q := point2{u, v}
				if pointInPolygon(fb.points, q, tol) {
					points = append(points, q)
				}
			}
		}
	}

	tris := triangulate(points, fb.constraints)

	positions := make([]geom.Point3, len(points))
	uvCoords := make([]geom.Point2, len(points))
	normals := make([]geom.Vector3, len(points))
	for i, p := range points {
		positions[i] = surface.Subs(p.x, p.y)
		uvCoords[i] = geom.Point2{U: p.x, V: p.y}
		normals[i] = surface.Normal(p.x, p.y)
	}

	var faces mesh.Faces
	for _, tr := range tris {
		c := triangleCentroid(points[tr.a], points[tr.b], points[tr.c])
		if !pointInPolygon(fb.points, c, tol) {
			continue
		}

		a, b, cc := tr.a, tr.b, tr.c
		geoNormal := triangleGeomNormal(positions[a], positions[b], positions[cc])
		avgNormal := averageVector3(normals[a], normals[b], normals[cc])
		if dotVector3(geoNormal, avgNormal) < 0 {
			b, cc = cc, b
		}
		faces.AddTriangle([3]mesh.FaceVertex{vertexAt(a), vertexAt(b), vertexAt(cc)})
	}

	return mesh.NewPolygonMesh(positions, uvCoords, normals, faces)
}

// vertexAt builds a FaceVertex whose position, uv, and normal all resolve
// to index i (tessellate always emits them in lockstep).
func vertexAt(i int) mesh.FaceVertex {
	uv, nor := i, i

	return mesh.FaceVertex{Pos: i, UV: &uv, Nor: &nor}
}

func triangleGeomNormal(a, b, c geom.Point3) geom.Vector3 {
	ab := b.Sub(a)
	ac := c.Sub(a)

	return geom.Vector3{
		X: ab.Y*ac.Z - ab.Z*ac.Y,
		Y: ab.Z*ac.X - ab.X*ac.Z,
		Z: ab.X*ac.Y - ab.Y*ac.X,
	}
}

func averageVector3(a, b, c geom.Vector3) geom.Vector3 {
	return geom.Vector3{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3, Z: (a.Z + b.Z + c.Z) / 3}
}

func dotVector3(a, b geom.Vector3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}
