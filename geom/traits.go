package geom

// ParametricCurve3D is a curve C: [t0,t1] -> Point3, the payload type a
// topo.Edge carries. Implementations are supplied by callers; the kernel
// never constructs one directly.
type ParametricCurve3D interface {
	// Subs evaluates the curve at parameter t.
	Subs(t float64) Point3
	// ParameterRange returns the curve's domain (t0, t1).
	ParameterRange() (t0, t1 float64)
}

// ParametricSurface3D is a surface S: (u,v) -> Point3 with an analytic
// normal field, the payload type a topo.Face carries.
type ParametricSurface3D interface {
	Subs(u, v float64) Point3
	Normal(u, v float64) Vector3
}

// BoundedSurface restricts a ParametricSurface3D to a rectangular domain.
type BoundedSurface interface {
	ParametricSurface3D
	ParameterRange() (uRange, vRange [2]float64)
}

// SearchParameter finds the 2D parameter of a surface nearest a given 3D
// point, optionally guided by a hint from a previous nearby search. budget
// bounds the iterations of whatever root-finding scheme the implementation
// uses. ok is false if the search failed to converge within that budget.
type SearchParameter interface {
	SearchParameter(point Point3, hint *Point2, budget int) (param Point2, ok bool)
}

// ParameterDivision divides a curve's parameter range into a sequence of
// parameters such that successive curve evaluations differ by at most tol.
// The returned slice always starts at range[0] and ends at range[1].
type ParameterDivision interface {
	ParameterDivision(paramRange [2]float64, tol float64) []float64
}

// ParameterDivision2D is the surface analogue of ParameterDivision: it
// returns independent u- and v-sample grids whose cross product is dense
// enough that neighboring surface evaluations differ by at most tol.
type ParameterDivision2D interface {
	ParameterDivision(uRange, vRange [2]float64, tol float64) (us, vs []float64)
}

// Cut splits a curve at the parameter recovered by searching for a given
// point, returning the two resulting curves in curve order.
type Cut interface {
	Cut(t float64) (before, after ParametricCurve3D)
}

// Concat fuses this curve with another, continuing from this curve's back
// to the other's front. ok is false if the two curves are not compatible
// for concatenation (e.g. discontinuous, or a degree/parameterization
// mismatch the implementation refuses to bridge).
type Concat interface {
	Concat(other ParametricCurve3D) (joined ParametricCurve3D, ok bool)
}

// Invertible reverses a curve's parameterization without changing its
// image, such that Invert().Subs(t) == Subs(t1-(t-t0)).
type Invertible interface {
	Invert() ParametricCurve3D
}

// IncludeCurve reports whether a 3D curve lies on a surface, used by
// geometric-consistency checks that are not exercised by the core
// topology/sweep/tessellate path but are part of the collaborator contract
// surfaces may be asked to satisfy.
type IncludeCurve interface {
	IncludeCurve(curve ParametricCurve3D, tol float64) bool
}

// CurveSearchParameter is SearchParameter's curve-domain analogue: it finds
// the 1D parameter on a curve nearest a given 3D point, used by CutEdge to
// recover the split parameter from a vertex's point.
type CurveSearchParameter interface {
	SearchParameter(point Point3, hint *float64, budget int) (t float64, ok bool)
}

// Curve is the capability set a curve payload must satisfy to support
// topo.CutEdge and topo.RemoveVertexByConcatEdges. Curves that only need to
// be evaluated and tessellated (the common case) need not satisfy it;
// instantiate topo.Edge[P, Curve] only when those two operations are
// needed.
type Curve interface {
	ParametricCurve3D
	Cut
	Concat
	Invertible
	CurveSearchParameter
}

// TessellableCurve is the capability set a curve payload must satisfy to be
// discretized by the tessellator's edge pass.
type TessellableCurve interface {
	ParametricCurve3D
	ParameterDivision
}

// TessellableSurface is the capability set a surface payload must satisfy
// to be discretized by the tessellator's face pass: evaluation and normal,
// a u/v sample grid, and a 3D-point-to-parameter search for projecting
// boundary polylines into parameter space.
type TessellableSurface interface {
	ParametricSurface3D
	ParameterDivision2D
	SearchParameter
}
