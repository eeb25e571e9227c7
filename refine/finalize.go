package refine

import (
	"github.com/notargets/gorefine/geom"
	"github.com/notargets/gorefine/types"
)

// reorientElements implements the second half of C5: every non-erased
// element's vertex order is checked against the construction-time
// orientation probe and corrected in place if a subdivision template
// produced a flipped child.
func reorientElements(m MeshAccessor, prop *geom.Property) {
	ne := m.ElementCount()
	for e := 0; e < ne; e++ {
		if m.IsErased(e) {
			continue
		}
		lids := append([]int(nil), m.Element(e)...)
		if m.Dims() == 2 {
			if prop.Area(m.Coords(lids[0]), m.Coords(lids[1]), m.Coords(lids[2])) < 0 {
				lids[1], lids[2] = lids[2], lids[1]
				m.SetElement(e, lids)
			}
			continue
		}
		if prop.Volume(m.Coords(lids[0]), m.Coords(lids[1]), m.Coords(lids[2]), m.Coords(lids[3])) < 0 {
			lids[2], lids[3] = lids[3], lids[2]
			m.SetElement(e, lids)
		}
	}
}

// RebuildHalo implements the ownership half of C5's halo repair: every
// vertex's Owner field already carries the min-endpoint-owner rule
// applied when it was materialised (StagingArea.Materialize), so the
// Recv table for every counterpart rank is simply every local vertex
// that field names as foreign-owned. Send tables are left as supplied;
// every new vertex already carries a correct owner (its global id stays
// -1 until the next BuildGlobalIdentity), so a
// stale Send list only costs an extra halo round-trip for entries that
// no longer need one, not correctness of the values a rank receives.
func RebuildHalo(m MeshAccessor) {
	comm := m.Communicator()
	myRank := comm.Rank()
	n := m.VertexCount()

	recv := make(map[int][]int)
	for i := 0; i < n; i++ {
		owner := m.OwnerOf(i)
		if owner == myRank {
			continue
		}
		recv[owner] = append(recv[owner], i)
	}
	for p := 0; p < comm.Size(); p++ {
		m.SetRecv(p, recv[p])
	}
}

// Finalize implements C5 (§4.5): trigger surface refinement so the
// boundary mesh stays conforming with the volume mesh's new vertices,
// repair element orientation against the driver's construction-time
// probe and vertex ownership, then rebuild the vertex adjacency the
// next refine() pass will need. prop must be the same Property built
// once when the driver was constructed (§9); building it fresh from
// the post-subdivision mesh would let an already-flipped element
// silently become the new reference orientation.
func Finalize(m MeshAccessor, surf SurfaceAccessor, re *types.RefinedEdges, prop *geom.Property) error {
	if surf != nil {
		if err := surf.Refine(re, m.LNN2GNNSlice(), m.Neighbours, m.EdgeLengthMetric); err != nil {
			return err
		}
	}

	reorientElements(m, prop)
	RebuildHalo(m)
	m.CreateAdjacency()
	return nil
}
