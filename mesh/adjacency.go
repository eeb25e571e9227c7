package mesh

import (
	"sort"

	"github.com/james-bowman/sparse"
)

// CreateAdjacency rebuilds the vertex-to-vertex and vertex-to-element
// adjacency described by §4.5's "Rebuild adjacency" step. The
// vertex-vertex graph is assembled as a symmetric sparse DOK matrix
// (two nonzeros per undirected edge, (a,b) and (b,a)) and converted to
// CSR, matching the teacher's DOK-to-CSR pipeline in utils/sparse.go.
// Neighbours(i) does not read the CSR matrix: it returns a per-vertex
// list sorted by ascending LID, so neighbour order is stable for the
// lifetime of the following refine() pass.
func (m *Mesh) CreateAdjacency() {
	n := m.VertexCount()
	dok := sparse.NewDOK(n, n)
	neighbourSets := make([]map[int]bool, n)
	for i := range neighbourSets {
		neighbourSets[i] = make(map[int]bool)
	}
	for e := 0; e < len(m.Elements); e++ {
		if m.IsErased(e) {
			continue
		}
		lids := m.Elements[e]
		for a := 0; a < len(lids); a++ {
			for b := a + 1; b < len(lids); b++ {
				dok.Set(lids[a], lids[b], 1)
				dok.Set(lids[b], lids[a], 1)
				neighbourSets[lids[a]][lids[b]] = true
				neighbourSets[lids[b]][lids[a]] = true
			}
		}
	}
	// Stored as CSR for compactness and to exercise the same DOK->CSR
	// conversion pipeline the teacher's sparse matrices go through;
	// Neighbours() itself reads the ordered lists built above rather
	// than iterating the sparse matrix, since stable iteration order
	// of an unordered backing map cannot be relied upon across calls.
	m.Adjacency = dok.ToCSR()

	neighbours := make([][]int, n)
	for i := 0; i < n; i++ {
		nb := make([]int, 0, len(neighbourSets[i]))
		for j := range neighbourSets[i] {
			nb = append(nb, j)
		}
		sort.Ints(nb)
		neighbours[i] = nb
	}
	m.neighbours = neighbours

	vertToElem := make([][]int, n)
	for e := 0; e < len(m.Elements); e++ {
		if m.IsErased(e) {
			continue
		}
		for _, lid := range m.Elements[e] {
			vertToElem[lid] = append(vertToElem[lid], e)
		}
	}
	m.vertToElem = vertToElem
}

// VertexElements returns the elements incident on vertex i, as of the
// last CreateAdjacency call.
func (m *Mesh) VertexElements(i int) []int { return m.vertToElem[i] }
