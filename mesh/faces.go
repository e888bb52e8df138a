package mesh

// FaceVertex is one corner of a polygon-mesh face: an index into the mesh's
// position array, and optional indices into its uv and normal arrays.
type FaceVertex struct {
	Pos int
	UV  *int
	Nor *int
}

// Faces splits a polygon mesh's faces by arity into triangles,
// quadrilaterals, and everything else, avoiding a slice-of-slices for the
// overwhelmingly common triangle/quad cases.
type Faces struct {
	triFaces   [][3]FaceVertex
	quadFaces  [][4]FaceVertex
	otherFaces [][]FaceVertex
}

// AddTriangle appends a triangular face.
func (f *Faces) AddTriangle(v [3]FaceVertex) {
	f.triFaces = append(f.triFaces, v)
}

// AddQuad appends a quadrilateral face.
func (f *Faces) AddQuad(v [4]FaceVertex) {
	f.quadFaces = append(f.quadFaces, v)
}

// AddPolygon appends a face of arbitrary arity (len(v) >= 5, by convention;
// smaller polygons should use AddTriangle/AddQuad).
func (f *Faces) AddPolygon(v []FaceVertex) {
	cp := make([]FaceVertex, len(v))
	copy(cp, v)
	f.otherFaces = append(f.otherFaces, cp)
}

// TriFaces returns the mesh's triangular faces.
func (f Faces) TriFaces() [][3]FaceVertex { return f.triFaces }

// QuadFaces returns the mesh's quadrilateral faces.
func (f Faces) QuadFaces() [][4]FaceVertex { return f.quadFaces }

// OtherFaces returns the mesh's faces of arity other than 3 or 4.
func (f Faces) OtherFaces() [][]FaceVertex { return f.otherFaces }

// Len returns the total face count across all arities.
func (f Faces) Len() int {
	return len(f.triFaces) + len(f.quadFaces) + len(f.otherFaces)
}

// IsEmpty reports whether the mesh has no faces at all.
func (f Faces) IsEmpty() bool { return f.Len() == 0 }
