package refine

import "github.com/notargets/gorefine/types"

// StagedVertex is a producer-local record of a new vertex discovered
// either by edge selection (§4.2) or by conforming propagation (§4.3):
// it carries everything needed to materialise the vertex later and to
// finalise the refined-edges slot it came from.
type StagedVertex struct {
	VertexI, Pos     int // the refined_edges[VertexI] slot this vertex belongs to
	Coord, Metric    []float64
	OwnerLo, OwnerHi int
}

// StagingArea holds one append-only buffer per worker; workers write
// to their own slice without synchronisation during edge selection
// and every propagation iteration, and Materialize performs the single
// prefix-sum append into the mesh described by §5 "Coord/metric
// append".
type StagingArea struct {
	buffers [][]StagedVertex
}

func NewStagingArea(workers int) *StagingArea {
	return &StagingArea{buffers: make([][]StagedVertex, workers)}
}

func (s *StagingArea) Append(w int, sv StagedVertex) {
	s.buffers[w] = append(s.buffers[w], sv)
}

// Total reports how many vertices are currently staged across all
// workers.
func (s *StagingArea) Total() int {
	n := 0
	for _, b := range s.buffers {
		n += len(b)
	}
	return n
}

// Materialize appends every staged vertex to the mesh via a prefix sum
// over per-worker counts, then finalises every RefinedEdges slot the
// staged vertices came from with the vertex's absolute LID. It resets
// the staging area afterwards. Driver.Refine calls it once, after
// conforming propagation has staged every vertex, in 2D and 3D alike.
func (s *StagingArea) Materialize(m MeshAccessor, re *types.RefinedEdges) (int, error) {
	counts := make([]int, len(s.buffers))
	for w, b := range s.buffers {
		counts[w] = len(b)
	}
	offsets, total := PrefixSum(counts)
	if total == 0 {
		return 0, nil
	}

	base := m.VertexCount()
	m.ResizeVertices(base + total)
	for w, b := range s.buffers {
		for k, sv := range b {
			lid := base + offsets[w] + k
			owner := sv.OwnerLo
			if sv.OwnerHi < owner {
				owner = sv.OwnerHi
			}
			m.SetVertex(lid, sv.Coord, sv.Metric, owner)
			re.Finalize(sv.VertexI, sv.Pos, int32(lid))
		}
	}
	for w := range s.buffers {
		s.buffers[w] = nil
	}
	return total, nil
}
