package refine

import (
	"github.com/notargets/gorefine/partition"
	"github.com/notargets/gorefine/types"
)

// tetEdges enumerates a tetrahedron's six edges by local vertex index.
var tetEdges = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// oppositeTetEdge maps each tetEdges index to the index of its
// opposite edge (the unique pair of edges sharing no vertex).
var oppositeTetEdge = map[int]int{0: 5, 5: 0, 1: 4, 4: 1, 2: 3, 3: 2}

// canonicalOrder returns n0,n1 in the order the §3 directed edge
// (gid_lo,gid_hi) canonicalization picks, so the same edge is always
// keyed at the same endpoint no matter which of n0,n1 the caller
// happens to pass first.
func canonicalOrder(m MeshAccessor, n0, n1 int) (lo, hi int) {
	de := partition.NewDirectedEdge(m.GID(n0), m.GID(n1), -1)
	gidLo, _ := de.GIDs()
	if m.GID(n0) == gidLo {
		return n0, n1
	}
	return n1, n0
}

// MarkEdge implements the §4.3 mark primitive: order (n0,n1) by GID,
// locate n1 in N(n0), and set that slot to the pending sentinel. Two
// workers racing to mark the same edge write the identical sentinel,
// so the race is benign (§9); RefinedEdges.MarkPending performs the
// write as an atomic store rather than a compare-and-swap.
func MarkEdge(m MeshAccessor, n0, n1 int, re *types.RefinedEdges) {
	lo, hi := canonicalOrder(m, n0, n1)
	pos := types.FindNeighbourPos(m, lo, hi)
	if pos < 0 {
		return
	}
	re.MarkPending(lo, pos)
}

func isEdgeSplit(m MeshAccessor, re *types.RefinedEdges, a, b int) bool {
	lo, hi := canonicalOrder(m, a, b)
	pos := types.FindNeighbourPos(m, lo, hi)
	if pos < 0 {
		return false
	}
	return re.IsSplit(lo, pos)
}

func sharedVertex(e1, e2 [2]int) (other1, other2 int) {
	shared := -1
	for _, v1 := range e1 {
		for _, v2 := range e2 {
			if v1 == v2 {
				shared = v1
			}
		}
	}
	if e1[0] == shared {
		other1 = e1[1]
	} else {
		other1 = e1[0]
	}
	if e2[0] == shared {
		other2 = e2[1]
	} else {
		other2 = e2[0]
	}
	return
}

func distinctVertCount(idxs []int) int {
	seen := map[int]bool{}
	for _, idx := range idxs {
		seen[tetEdges[idx][0]] = true
		seen[tetEdges[idx][1]] = true
	}
	return len(seen)
}

func markUnsplitEdges(m MeshAccessor, re *types.RefinedEdges, lids []int, splitIdx []int) {
	split := map[int]bool{}
	for _, idx := range splitIdx {
		split[idx] = true
	}
	for idx, pr := range tetEdges {
		if split[idx] {
			continue
		}
		MarkEdge(m, lids[pr[0]], lids[pr[1]], re)
	}
}

// propagateElementScan implements §4.3 step 1-2: for every non-erased
// element, compute its split set and apply the case table, marking
// additional edges where required.
func propagateElementScan(m MeshAccessor, re *types.RefinedEdges) {
	ne := m.ElementCount()
	for e := 0; e < ne; e++ {
		if m.IsErased(e) {
			continue
		}
		lids := m.Element(e)
		var splitIdx []int
		for idx, pr := range tetEdges {
			if isEdgeSplit(m, re, lids[pr[0]], lids[pr[1]]) {
				splitIdx = append(splitIdx, idx)
			}
		}
		switch len(splitIdx) {
		case 2:
			i1, i2 := splitIdx[0], splitIdx[1]
			if oppositeTetEdge[i1] == i2 {
				continue // opposite edges: legal 1:4 template, leave
			}
			o1, o2 := sharedVertex(tetEdges[i1], tetEdges[i2])
			MarkEdge(m, lids[o1], lids[o2], re)
		case 3:
			if distinctVertCount(splitIdx) == 3 {
				continue // the three split edges form a face: legal 1:4 template
			}
			markUnsplitEdges(m, re, lids, splitIdx)
		case 4, 5:
			markUnsplitEdges(m, re, lids, splitIdx)
		default:
			// 0, 1, 6: already legal, nothing to do
		}
	}
}

// stagePendingEdges implements §4.3 step 3's realise scan: every slot
// left at the pending sentinel by this iteration's mark calls is
// assigned a producer offset/tag and its new vertex generated exactly
// as in §4.2. Pending slots are always found at the lower-GID
// endpoint because MarkEdge only ever writes there.
func stagePendingEdges(m MeshAccessor, re *types.RefinedEdges, pool *WorkerPool, staging *StagingArea) (int, error) {
	n := m.VertexCount()
	ranges := pool.Split(n)
	counts := make([]int, pool.W)
	errs := make([]error, pool.W)

	pool.Run(func(w int) {
		lo, hi := ranges[w][0], ranges[w][1]
		for i := lo; i < hi; i++ {
			nb := m.Neighbours(i)
			for t, u := range nb {
				if !re.IsPending(i, t) {
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
				counts[w]++
			}
		}
	})
	for _, e := range errs {
		if e != nil {
			return 0, e
		}
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	return total, nil
}

// Propagate implements C3 (§4.3): for 3D meshes, repeat the element
// scan and realise scan until no rank marks a new edge; 2D needs no
// propagation because all split counts 1..3 are handled directly by
// subdivision templates.
func Propagate(m MeshAccessor, re *types.RefinedEdges, pool *WorkerPool, staging *StagingArea) error {
	if m.Dims() != 3 {
		return nil
	}
	for {
		propagateElementScan(m, re)

		marked, err := stagePendingEdges(m, re, pool, staging)
		if err != nil {
			return err
		}

		total, err := m.Communicator().AllReduceSum(marked)
		if err != nil {
			return &partition.CommunicatorError{Op: "AllReduceSum", Err: err}
		}
		if total == 0 {
			return nil
		}
	}
}
