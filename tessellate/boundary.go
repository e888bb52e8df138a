package tessellate

import (
	"github.com/solidkit/brep/geom"
	"github.com/solidkit/brep/mesh"
	"github.com/solidkit/brep/topo"
)

// searchBudget bounds the iterative root-finding SearchParameter performs
// when projecting a boundary point into a surface's parameter space.
const searchBudget = 32

// wireBoundary records where one boundary wire's points live within a
// faceBoundary's shared point buffer.
type wireBoundary struct {
	start, count int
}

// faceBoundary is a face's parameter-space boundary: every boundary wire's
// projected points concatenated into one buffer, and the constraint-edge
// index pairs (cyclic within each wire's own range) the triangulator must
// preserve.
type faceBoundary struct {
	points      []point2
	constraints [][2]int
	wires       []wireBoundary
}

// buildFaceBoundary projects every boundary wire of f into surface's
// parameter space. edgePolylines holds each original edge's shared 3D
// discretization, keyed by edge ID in the edge's canonical (AbsoluteFront
// to AbsoluteBack) direction; occurrences with the inverse orientation bit
// get their point order reversed. Each edge's last point is dropped to
// avoid duplicating the join with the next edge. ok is false if any point's
// parameter search fails even after the no-hint fallback.
func buildFaceBoundary[C any, S geom.TessellableSurface](
	f topo.Face[geom.Point3, C, S],
	edgePolylines map[topo.ID]mesh.PolylineCurve,
) (faceBoundary, bool) {
	surface := f.Surface()
	var fb faceBoundary

	for _, w := range f.AbsoluteBoundaries() {
		wireStart := len(fb.points)
		var hint *geom.Point2

		for _, e := range w.Edges() {
			pts := edgePolylines[e.ID()].Points()
			if !e.Orientation() {
				pts = reversePoints(pts)
			}
			if len(pts) > 0 {
				pts = pts[:len(pts)-1]
			}

			for _, p3 := range pts {
				param, ok := surface.SearchParameter(p3, hint, searchBudget)
				if !ok {
					param, ok = surface.SearchParameter(p3, nil, searchBudget)
				}
				if !ok {
					return faceBoundary{}, false
				}
				fb.points = append(fb.points, point2{param.U, param.V})
				h := param
				hint = &h
			}
		}

		wireCount := len(fb.points) - wireStart
		for i := 0; i < wireCount; i++ {
			fb.constraints = append(fb.constraints, [2]int{wireStart + i, wireStart + (i+1)%wireCount})
		}
		fb.wires = append(fb.wires, wireBoundary{start: wireStart, count: wireCount})
	}

	return fb, true
}

func reversePoints(pts []geom.Point3) []geom.Point3 {
	out := make([]geom.Point3, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}

	return out
}
