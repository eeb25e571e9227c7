package refine

import "github.com/notargets/gorefine/types"

// RefineTriangles2D implements the 2D half of C4 (§4.4): every
// non-erased element is tested against its three edges' split state,
// and the matching template replaces it with 1-4 children. A triangle
// with no split edges is left untouched. The case table itself lives
// in types.TriangleChildren, shared with the boundary mesh's own
// triangular facets (mesh/surface.go).
func RefineTriangles2D(m MeshAccessor, re *types.RefinedEdges, pool *WorkerPool, staging *ElementStagingArea) error {
	if m.Dims() != 2 {
		return nil
	}
	lnn2gnn := m.LNN2GNNSlice()
	ne := m.ElementCount()
	ranges := pool.Split(ne)

	pool.Run(func(w int) {
		lo, hi := ranges[w][0], ranges[w][1]
		for e := lo; e < hi; e++ {
			if m.IsErased(e) {
				continue
			}
			lids := m.Element(e)
			n := [3]int{lids[0], lids[1], lids[2]}
			v := [3]int{
				types.GetNewVertex(m, n[1], n[2], re, lnn2gnn), // opposite n0
				types.GetNewVertex(m, n[0], n[2], re, lnn2gnn), // opposite n1
				types.GetNewVertex(m, n[0], n[1], re, lnn2gnn), // opposite n2
			}
			children := types.TriangleChildren(n, v, m.EdgeLengthMetric)
			if len(children) <= 1 {
				continue
			}
			m.SetElement(e, children[0])
			for _, c := range children[1:] {
				staging.Append(w, StagedElement{LIDs: c})
			}
		}
	})
	return nil
}
