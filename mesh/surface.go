package mesh

import "github.com/notargets/gorefine/types"

// Facet is a boundary sub-simplex: an edge (len 2) in 2D or a triangle
// (len 3) in 3D, given as vertex LIDs of the volume mesh it bounds,
// plus a boundary tag carried through subdivision unchanged.
type Facet struct {
	LIDs []int
	Tag  int
}

// Surface is the boundary-mesh collaborator consumed through
// refine.SurfaceAccessor (§6 "surface collaborator"): it owns its own
// facet list and refines it using the same new-vertex identities the
// volume mesh produced, so boundary and interior stay conforming.
type Surface struct {
	Dim    int
	Facets []Facet
}

func NewSurface(dim int) *Surface {
	return &Surface{Dim: dim}
}

func (s *Surface) AddFacet(lids []int, tag int) {
	s.Facets = append(s.Facets, Facet{LIDs: append([]int(nil), lids...), Tag: tag})
}

type neighbourListerFunc func(int) []int

func (n neighbourListerFunc) Neighbours(i int) []int { return n(i) }

// Refine subdivides every facet whose edges were split during the
// volume refinement pass, looking up new-vertex identities through the
// same RefinedEdges index the core built (§4.5 "trigger surface
// refinement"). A 2D facet (an edge) either splits in two at its
// single new vertex or is left alone; a 3D facet (a triangle) is a
// boundary face of the tetrahedral mesh and uses the same c=1/2/3
// templates §4.4 gives interior 2D triangles, since a face's own
// subdivision only depends on which of its three edges split.
func (s *Surface) Refine(re *types.RefinedEdges, lnn2gnn []int, neighboursOf func(v int) []int, edgeLength func(a, b int) float64) error {
	adapter := neighbourListerFunc(neighboursOf)

	var out []Facet
	for _, f := range s.Facets {
		switch len(f.LIDs) {
		case 2:
			out = append(out, s.refineEdgeFacet(f, re, lnn2gnn, adapter)...)
		case 3:
			out = append(out, s.refineTriFacet(f, re, lnn2gnn, adapter, edgeLength)...)
		default:
			out = append(out, f)
		}
	}
	s.Facets = out
	return nil
}

func (s *Surface) refineEdgeFacet(f Facet, re *types.RefinedEdges, lnn2gnn []int, nl types.NeighbourLister) []Facet {
	a, b := f.LIDs[0], f.LIDs[1]
	v := types.GetNewVertex(nl, a, b, re, lnn2gnn)
	if v < 0 {
		return []Facet{f}
	}
	return []Facet{
		{LIDs: []int{a, v}, Tag: f.Tag},
		{LIDs: []int{v, b}, Tag: f.Tag},
	}
}

// refineTriFacet applies the §4.4 2D triangle templates to a boundary
// face, using n[k]/v[k] as "vertex k" / "new vertex opposite vertex k"
// the way §4.4 names them. The case table itself is types.TriangleChildren,
// shared with the volume mesh's interior triangles (refine/templates2d.go),
// so a face's diagonal choice on a c=2 split always agrees with how the
// interior element on the other side of it would have split the same edges.
func (s *Surface) refineTriFacet(f Facet, re *types.RefinedEdges, lnn2gnn []int, nl types.NeighbourLister, edgeLength func(a, b int) float64) []Facet {
	n := [3]int{f.LIDs[0], f.LIDs[1], f.LIDs[2]}
	v := [3]int{
		types.GetNewVertex(nl, n[1], n[2], re, lnn2gnn), // opposite n0
		types.GetNewVertex(nl, n[0], n[2], re, lnn2gnn), // opposite n1
		types.GetNewVertex(nl, n[0], n[1], re, lnn2gnn), // opposite n2
	}

	children := types.TriangleChildren(n, v, edgeLength)
	if len(children) == 1 {
		return []Facet{f}
	}
	out := make([]Facet, len(children))
	for i, c := range children {
		out[i] = Facet{LIDs: c, Tag: f.Tag}
	}
	return out
}
