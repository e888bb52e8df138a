package tessellate

import "testing"

func TestTriangulate_UnitSquareProducesTwoTriangles(t *testing.T) {
	pts := []point2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	constraints := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}

	tris := triangulate(pts, constraints)
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles triangulating a unit square, got %d", len(tris))
	}
	for _, c := range constraints {
		if !edgeExists(tris, c[0], c[1]) {
			t.Fatalf("constraint edge %v not recovered in triangulation", c)
		}
	}
}

func TestOrient2D_SignMatchesWinding(t *testing.T) {
	a, b, c := point2{0, 0}, point2{1, 0}, point2{0, 1}
	if orient2d(a, b, c) <= 0 {
		t.Fatal("a,b,c counter-clockwise must have positive orientation")
	}
	if orient2d(a, c, b) >= 0 {
		t.Fatal("a,c,b clockwise must have negative orientation")
	}
}

func TestInCircumcircle_CenterPointIsInside(t *testing.T) {
	a, b, c := point2{0, 0}, point2{4, 0}, point2{0, 4}
	if !inCircumcircle(a, b, c, point2{1, 1}) {
		t.Fatal("a point near the triangle's incenter must lie inside its circumcircle")
	}
	if inCircumcircle(a, b, c, point2{100, 100}) {
		t.Fatal("a far point must lie outside the circumcircle")
	}
}
