package geom

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// quadForm returns e^T M e for a symmetric d*d matrix M stored
// row-major and a displacement vector e of length d, using gonum's
// dense matrix/vector types so the metric contraction is an actual
// linear-algebra operation rather than a hand-unrolled dot product.
func quadForm(mFlat []float64, e []float64) float64 {
	d := len(e)
	M := mat.NewDense(d, d, append([]float64(nil), mFlat...))
	ev := mat.NewVecDense(d, e)
	var tmp mat.VecDense
	tmp.MulVec(M, ev)
	return mat.Dot(ev, &tmp)
}

// MetricLength computes the Riemannian length of the straight segment
// from x0 to x1 under a metric that interpolates linearly from m0 at
// x0 to m1 at x1 (glossary "Metric length"). Because m(t) is affine
// in t, the quadratic form e^T m(t) e is itself affine in t (not
// quadratic), which gives the closed-form integral below instead of
// requiring numerical quadrature. Passing m1==m0 gives the length
// under a constant metric field, used by the edge-selection weight
// formula (§4.2) to measure the same segment under each endpoint's
// metric alone.
func MetricLength(x0, x1, m0, m1 []float64) float64 {
	d := len(x0)
	e := make([]float64, d)
	for i := range e {
		e[i] = x1[i] - x0[i]
	}
	a := quadForm(m0, e)
	dm := make([]float64, len(m0))
	for i := range dm {
		dm[i] = m1[i] - m0[i]
	}
	b := quadForm(dm, e)

	if b == 0 {
		return math.Sqrt(a)
	}
	return (2.0 / (3.0 * b)) * (math.Pow(a+b, 1.5) - math.Pow(a, 1.5))
}

// InterpolateMetric returns m0 + w*(m1-m0) component-wise, the new
// vertex's metric per §4.2.
func InterpolateMetric(m0, m1 []float64, w float64) []float64 {
	out := make([]float64, len(m0))
	for i := range out {
		out[i] = m0[i] + w*(m1[i]-m0[i])
	}
	return out
}

// InterpolatePoint returns x0 + w*(x1-x0), the new vertex's position.
func InterpolatePoint(x0, x1 []float64, w float64) []float64 {
	out := make([]float64, len(x0))
	for i := range out {
		out[i] = x0[i] + w*(x1[i]-x0[i])
	}
	return out
}

// EdgeWeight computes the §4.2 asymmetric split weight
//
//	w = 1 / (1 + sqrt(L(x0,x1,m0) / L(x0,x1,m1)))
//
// which places the new vertex closer to whichever endpoint's metric
// judges the edge longer, so that the two child edges end up with
// comparable metric length.
func EdgeWeight(x0, x1, m0, m1 []float64) float64 {
	l0 := MetricLength(x0, x1, m0, m0)
	l1 := MetricLength(x0, x1, m1, m1)
	return 1.0 / (1.0 + math.Sqrt(l0/l1))
}
