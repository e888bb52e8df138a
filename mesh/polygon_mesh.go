package mesh

import "github.com/solidkit/brep/geom"

// PolygonMesh stores a wavefront-obj-style mesh: positions, uv-coords, and
// normals held in separate arrays, with each face vertex addressing them by
// an index triple.
type PolygonMesh struct {
	positions []geom.Point3
	uvCoords  []geom.Point2
	normals   []geom.Vector3
	faces     Faces
}

// NewPolygonMesh assembles a PolygonMesh from its constituent arrays. No
// validation is performed here; Editor.EndEdit is the place index
// consistency gets enforced by construction.
func NewPolygonMesh(positions []geom.Point3, uvCoords []geom.Point2, normals []geom.Vector3, faces Faces) PolygonMesh {
	return PolygonMesh{positions: positions, uvCoords: uvCoords, normals: normals, faces: faces}
}

// Positions returns the mesh's position array.
func (m PolygonMesh) Positions() []geom.Point3 { return m.positions }

// UVCoords returns the mesh's texture-coordinate array.
func (m PolygonMesh) UVCoords() []geom.Point2 { return m.uvCoords }

// Normals returns the mesh's normal array.
func (m PolygonMesh) Normals() []geom.Vector3 { return m.normals }

// Faces returns the mesh's face list.
func (m PolygonMesh) Faces() Faces { return m.faces }

// Editor opens to append positions/uv-coords/normals/faces into a mesh
// under construction. EndEdit finalizes it.
type Editor struct {
	mesh PolygonMesh
}

// NewEditor opens an editor over an empty mesh.
func NewEditor() *Editor {
	return &Editor{}
}

// PushPosition appends a position, returning its index.
func (e *Editor) PushPosition(p geom.Point3) int {
	e.mesh.positions = append(e.mesh.positions, p)

	return len(e.mesh.positions) - 1
}

// PushUV appends a uv-coordinate, returning its index.
func (e *Editor) PushUV(uv geom.Point2) int {
	e.mesh.uvCoords = append(e.mesh.uvCoords, uv)

	return len(e.mesh.uvCoords) - 1
}

// PushNormal appends a normal, returning its index.
func (e *Editor) PushNormal(n geom.Vector3) int {
	e.mesh.normals = append(e.mesh.normals, n)

	return len(e.mesh.normals) - 1
}

// AddTriangle appends a triangular face.
func (e *Editor) AddTriangle(v [3]FaceVertex) {
	e.mesh.faces.AddTriangle(v)
}

// AddQuad appends a quadrilateral face.
func (e *Editor) AddQuad(v [4]FaceVertex) {
	e.mesh.faces.AddQuad(v)
}

// EndEdit finalizes the mesh under construction: positions within tol of
// each other are merged into one, every face's indices are remapped
// accordingly, and, if recomputeNormals is set, the normals are replaced by
// one per position: the average of the geometric normals of the faces
// touching it (unit-normalized; positions touched by no face, or only by
// degenerate faces, get a zero vector). Rather than mutate in place,
// EndEdit builds fresh positions/faces slices; the uv-coordinates, and the
// normals when recomputeNormals is false, are carried over unchanged.
func (e *Editor) EndEdit(tol float64, recomputeNormals bool) PolygonMesh {
	remap := make([]int, len(e.mesh.positions))
	newPositions := make([]geom.Point3, 0, len(e.mesh.positions))
	for i, p := range e.mesh.positions {
		merged := -1
		for j, q := range newPositions {
			if p.Near(q, tol) {
				merged = j

				break
			}
		}
		if merged >= 0 {
			remap[i] = merged
		} else {
			remap[i] = len(newPositions)
			newPositions = append(newPositions, p)
		}
	}

	remapVertex := func(v FaceVertex) FaceVertex {
		v.Pos = remap[v.Pos]

		return v
	}

	var newFaces Faces
	for _, tri := range e.mesh.faces.triFaces {
		newFaces.AddTriangle([3]FaceVertex{remapVertex(tri[0]), remapVertex(tri[1]), remapVertex(tri[2])})
	}
	for _, quad := range e.mesh.faces.quadFaces {
		newFaces.AddQuad([4]FaceVertex{remapVertex(quad[0]), remapVertex(quad[1]), remapVertex(quad[2]), remapVertex(quad[3])})
	}
	for _, poly := range e.mesh.faces.otherFaces {
		remapped := make([]FaceVertex, len(poly))
		for i, v := range poly {
			remapped[i] = remapVertex(v)
		}
		newFaces.AddPolygon(remapped)
	}

	out := PolygonMesh{
		positions: newPositions,
		uvCoords:  e.mesh.uvCoords,
		normals:   e.mesh.normals,
		faces:     newFaces,
	}

	if recomputeNormals {
		out.normals = recomputeVertexNormals(newPositions, newFaces)
	}

	return out
}

// recomputeVertexNormals averages the geometric normal of every face
// touching each position (taken from the face's first three corners),
// normalizing the result. Positions
// touched by no face (or whose incident faces are degenerate) get a zero
// vector.
func recomputeVertexNormals(positions []geom.Point3, faces Faces) []geom.Vector3 {
	sums := make([]geom.Vector3, len(positions))
	addFaceNormal := func(idx []int) {
		if len(idx) < 3 {
			return
		}
		n := triangleNormal(positions[idx[0]], positions[idx[1]], positions[idx[2]])
		for _, i := range idx {
			sums[i] = geom.Vector3{X: sums[i].X + n.X, Y: sums[i].Y + n.Y, Z: sums[i].Z + n.Z}
		}
	}
	for _, tri := range faces.triFaces {
		addFaceNormal([]int{tri[0].Pos, tri[1].Pos, tri[2].Pos})
	}
	for _, quad := range faces.quadFaces {
		addFaceNormal([]int{quad[0].Pos, quad[1].Pos, quad[2].Pos})
	}
	for _, poly := range faces.otherFaces {
		idx := make([]int, len(poly))
		for i, v := range poly {
			idx[i] = v.Pos
		}
		addFaceNormal(idx)
	}

	out := make([]geom.Vector3, len(sums))
	for i, s := range sums {
		if norm := s.Norm(); norm > 0 {
			out[i] = geom.Vector3{X: s.X / norm, Y: s.Y / norm, Z: s.Z / norm}
		}
	}

	return out
}

// triangleNormal returns the unnormalized cross product (b-a)x(c-a).
func triangleNormal(a, b, c geom.Point3) geom.Vector3 {
	ab := b.Sub(a)
	ac := c.Sub(a)

	return geom.Vector3{
		X: ab.Y*ac.Z - ab.Z*ac.Y,
		Y: ab.Z*ac.X - ab.X*ac.Z,
		Z: ab.X*ac.Y - ab.Y*ac.X,
	}
}
