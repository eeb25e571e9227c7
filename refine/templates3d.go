package refine

import "github.com/notargets/gorefine/types"

// axisCycle gives, for each of the three opposite-edge axis choices
// (index pairs into tetEdges), the remaining four edge indices in the
// cyclic order that fans a valid tetrahedron around that axis (§4.4 3D
// c=6). Each consecutive pair in the cycle, together with the
// axis, bounds one child.
var axisCycle = map[[2]int][4]int{
	{0, 5}: {1, 2, 4, 3},
	{1, 4}: {0, 3, 5, 2},
	{2, 3}: {0, 4, 5, 1},
}

var diagonalAxes = [3][2]int{{0, 5}, {1, 4}, {2, 3}}

func edgeIndex(p, q int) int {
	if p > q {
		p, q = q, p
	}
	for idx, pr := range tetEdges {
		if pr[0] == p && pr[1] == q {
			return idx
		}
	}
	return -1
}

func distinctVertSet(splitIdx []int) [4]bool {
	var out [4]bool
	for _, idx := range splitIdx {
		out[tetEdges[idx][0]] = true
		out[tetEdges[idx][1]] = true
	}
	return out
}

// RefineTetrahedra3D implements the 3D half of C4 (§4.4). By the time
// this runs, conforming propagation (C3) has already escalated every
// split configuration to one of 0, 1, 2 (opposite edges), 3 (one
// face), or 6 (all edges) split edges; no other count can survive a
// converged propagation pass.
func RefineTetrahedra3D(m MeshAccessor, re *types.RefinedEdges, pool *WorkerPool, staging *ElementStagingArea) error {
	if m.Dims() != 3 {
		return nil
	}
	lnn2gnn := m.LNN2GNNSlice()
	ne := m.ElementCount()
	ranges := pool.Split(ne)
	errs := make([]error, pool.W)

	pool.Run(func(w int) {
		lo, hi := ranges[w][0], ranges[w][1]
		for e := lo; e < hi; e++ {
			if m.IsErased(e) {
				continue
			}
			lids := m.Element(e)
			children, err := tetChildren(m, re, lnn2gnn, lids)
			if err != nil {
				ive := err.(*InvariantViolationError)
				ive.Element = e
				errs[w] = ive
				return
			}
			if len(children) <= 1 {
				continue
			}
			m.SetElement(e, children[0])
			for _, c := range children[1:] {
				staging.Append(w, StagedElement{LIDs: c})
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

func tetChildren(m MeshAccessor, re *types.RefinedEdges, lnn2gnn []int, lids []int) ([][]int, error) {
	n := [4]int{lids[0], lids[1], lids[2], lids[3]}
	var mv [6]int
	var splitIdx []int
	for idx, pr := range tetEdges {
		mv[idx] = types.GetNewVertex(m, n[pr[0]], n[pr[1]], re, lnn2gnn)
		if mv[idx] >= 0 {
			splitIdx = append(splitIdx, idx)
		}
	}

	switch len(splitIdx) {
	case 0:
		return [][]int{{n[0], n[1], n[2], n[3]}}, nil

	case 1:
		idx := splitIdx[0]
		a, b := tetEdges[idx][0], tetEdges[idx][1]
		var other []int
		for k := 0; k < 4; k++ {
			if k != a && k != b {
				other = append(other, k)
			}
		}
		v := mv[idx]
		return [][]int{
			{n[a], v, n[other[0]], n[other[1]]},
			{n[b], v, n[other[0]], n[other[1]]},
		}, nil

	case 2:
		// Only the opposite-edge pair reaches this template; an
		// adjacent pair is escalated by conforming propagation before
		// templates ever run. a,b are edge0's endpoints, c,d are
		// edge1's endpoints, v0,v1 their midpoints (§4.4 c=2).
		idx0, idx1 := splitIdx[0], splitIdx[1]
		a, b := n[tetEdges[idx0][0]], n[tetEdges[idx0][1]]
		c, d := n[tetEdges[idx1][0]], n[tetEdges[idx1][1]]
		v0, v1 := mv[idx0], mv[idx1]
		return [][]int{
			{a, v0, c, v1},
			{a, v0, d, v1},
			{b, v0, c, v1},
			{b, v0, d, v1},
		}, nil

	case 3:
		// The three split edges form a face; a non-face triple is
		// escalated to 6 by conforming propagation before templates run.
		verts := distinctVertSet(splitIdx)
		var onFace []int
		apex := -1
		for k := 0; k < 4; k++ {
			if verts[k] {
				onFace = append(onFace, k)
			} else {
				apex = k
			}
		}
		p, q, r := onFace[0], onFace[1], onFace[2]
		vpq, vpr, vqr := mv[edgeIndex(p, q)], mv[edgeIndex(p, r)], mv[edgeIndex(q, r)]
		return [][]int{
			{n[apex], n[p], vpq, vpr},
			{n[apex], n[q], vpq, vqr},
			{n[apex], n[r], vpr, vqr},
			{n[apex], vpq, vqr, vpr},
		}, nil

	case 6:
		corners := [][]int{
			{n[0], mv[0], mv[1], mv[2]},
			{n[1], mv[0], mv[3], mv[4]},
			{n[2], mv[1], mv[3], mv[5]},
			{n[3], mv[2], mv[4], mv[5]},
		}
		bestAxis := diagonalAxes[0]
		bestLen := m.EdgeLengthMetric(mv[bestAxis[0]], mv[bestAxis[1]])
		for _, cand := range diagonalAxes[1:] {
			l := m.EdgeLengthMetric(mv[cand[0]], mv[cand[1]])
			if l < bestLen {
				bestAxis, bestLen = cand, l
			}
		}
		return append(corners, fanOctahedron(mv, bestAxis)...), nil

	default:
		// 4 or 5 split edges can only reach here if propagation failed
		// to escalate them to 6, which is a bug in propagateElementScan
		// (§4.3), not a legal configuration for templates to render.
		return nil, &InvariantViolationError{SplitCount: len(splitIdx)}
	}
}

// fanOctahedron splits the octahedron formed by a tetrahedron's six
// edge midpoints into four children around the given diagonal axis.
func fanOctahedron(mv [6]int, axis [2]int) [][]int {
	cyc := axisCycle[axis]
	a, b := mv[axis[0]], mv[axis[1]]
	out := make([][]int, 0, 4)
	for k := 0; k < 4; k++ {
		c1, c2 := cyc[k], cyc[(k+1)%4]
		out = append(out, []int{a, b, mv[c1], mv[c2]})
	}
	return out
}
