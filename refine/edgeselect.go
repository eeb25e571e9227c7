package refine

import (
	"math"

	"github.com/notargets/gorefine/geom"
	"github.com/notargets/gorefine/types"
	"github.com/notargets/gorefine/utils"
)

// newStagedVertex computes the §4.2 tentative new vertex on edge
// (lo,hi), where lo is required to be the lower-GID endpoint: its
// position is x0 + w(x1-x0) and its metric m0 + w(m1-m0) for the
// asymmetric weight w that biases the vertex toward whichever endpoint
// judges the edge longer.
func newStagedVertex(m MeshAccessor, lo, hi int) (StagedVertex, error) {
	x0, x1 := m.Coords(lo), m.Coords(hi)
	m0, m1 := m.Metric(lo), m.Metric(hi)

	w := geom.EdgeWeight(x0, x1, m0, m1)
	coord := geom.InterpolatePoint(x0, x1, w)
	metric := geom.InterpolateMetric(m0, m1, w)

	corrupt := utils.IsNan(coord) || utils.IsNan(metric)
	for _, v := range metric {
		if math.IsInf(v, 0) {
			corrupt = true
		}
	}
	if corrupt {
		return StagedVertex{}, &MetricCorruptionError{
			A: lo, B: hi, X0: x0, X1: x1, M0: m0, M1: m1, Interp: metric, Weight: w,
		}
	}
	return StagedVertex{
		Coord: coord, Metric: metric,
		OwnerLo: m.OwnerOf(lo), OwnerHi: m.OwnerOf(hi),
	}, nil
}

// EdgeSelect implements C2 (§4.2): for every edge owned at its
// lower-GID endpoint, compute its metric length; edges longer than
// lmax are staged into the producer's buffers and the owning slot in
// re is marked with a producer-local offset and tag. refined_edges
// must already be allocated (§4.2 "must be done unconditionally before
// any marking").
func EdgeSelect(m MeshAccessor, re *types.RefinedEdges, lmax float64, pool *WorkerPool, staging *StagingArea) error {
	n := m.VertexCount()
	ranges := pool.Split(n)
	errs := make([]error, pool.W)

	pool.Run(func(w int) {
		lo, hi := ranges[w][0], ranges[w][1]
		for i := lo; i < hi; i++ {
			nb := m.Neighbours(i)
			for t, u := range nb {
				if lo, _ := canonicalOrder(m, i, u); lo != i {
					continue // only the lower-GID endpoint evaluates this edge
				}
				length := m.EdgeLengthMetric(i, u)
				if length <= lmax {
					continue
				}
				sv, err := newStagedVertex(m, i, u)
				if err != nil {
					errs[w] = err
					return
				}
				sv.VertexI, sv.Pos = i, t
				re.Stage(i, t, int32(len(staging.buffers[w])), int32(w))
				staging.Append(w, sv)
			}
		}
	})
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}
