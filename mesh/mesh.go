// Package mesh is the mesh container collaborator the refinement core
// consumes through the refine.MeshAccessor interface (§6): vertex
// coordinate/metric/owner storage, element connectivity, the
// neighbour-list adjacency the refined-edges index is keyed on, and
// the send/recv halo sets a partition exchanges with its neighbours.
package mesh

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/notargets/gorefine/partition"
)

// ErasedSentinel marks an element's first LID once EraseElement has
// been called on it (§3 "Erased element"). Refinement does not erase
// elements: a subdivided parent's slot is reused for its first child,
// and the halo rebuild does not remove elements that have no local
// vertex.
const ErasedSentinel = -1

// Mesh is a concrete simplicial mesh: triangles when Dim==2, tetrahedra
// when Dim==3. Vertices and elements are append-only during
// refinement; LIDs below OrigNNodes/OrigNElements are the vertices and
// elements the mesh was constructed with, used to distinguish
// originals from newly appended entries (§3).
type Mesh struct {
	Dim  int
	Nloc int

	OrigNNodes    int
	OrigNElements int

	coords  [][]float64
	metric  [][]float64
	Owner   []int
	LNN2GNN []int
	GNN2LNN map[int]int

	Elements [][]int

	neighbours [][]int
	vertToElem [][]int
	Adjacency  *sparse.CSR

	Send map[int][]int
	Recv map[int][]int

	Comm partition.Communicator
}

// NewMesh returns an empty mesh of the given dimensionality (2 or 3)
// bound to comm. Vertices and elements are added with AddVertex and
// AddElement before the mesh is handed to a refine.Driver.
func NewMesh(dim int, comm partition.Communicator) *Mesh {
	if dim != 2 && dim != 3 {
		panic(fmt.Errorf("mesh: dimensionality must be 2 or 3, got %d", dim))
	}
	return &Mesh{
		Dim:     dim,
		Nloc:    dim + 1,
		GNN2LNN: make(map[int]int),
		Send:    make(map[int][]int),
		Recv:    make(map[int][]int),
		Comm:    comm,
	}
}

// AddVertex appends a vertex and returns its LID. coord must have
// length Dim, metric length Dim*Dim (row-major symmetric).
func (m *Mesh) AddVertex(coord, metric []float64, owner int) int {
	lid := len(m.coords)
	m.coords = append(m.coords, append([]float64(nil), coord...))
	m.metric = append(m.metric, append([]float64(nil), metric...))
	m.Owner = append(m.Owner, owner)
	m.LNN2GNN = append(m.LNN2GNN, lid)
	m.GNN2LNN[lid] = lid
	return lid
}

// AddElement appends an element given Nloc LIDs and returns its index.
func (m *Mesh) AddElement(lids []int) int {
	if len(lids) != m.Nloc {
		panic(fmt.Errorf("mesh: element needs %d vertices, got %d", m.Nloc, len(lids)))
	}
	idx := len(m.Elements)
	m.Elements = append(m.Elements, append([]int(nil), lids...))
	return idx
}

// Freeze records the current vertex/element counts as the "original"
// boundary; called once after initial construction/loading, before
// the first refine() call.
func (m *Mesh) Freeze() {
	m.OrigNNodes = len(m.coords)
	m.OrigNElements = len(m.Elements)
}

func (m *Mesh) VertexCount() int  { return len(m.coords) }
func (m *Mesh) ElementCount() int { return len(m.Elements) }
func (m *Mesh) Dims() int         { return m.Dim }

func (m *Mesh) Element(i int) []int    { return m.Elements[i] }
func (m *Mesh) Coords(i int) []float64 { return m.coords[i] }
func (m *Mesh) Metric(i int) []float64 { return m.metric[i] }

// Neighbours returns vertex i's adjacency list as of the last
// CreateAdjacency call. Positions are stable for the duration of one
// refine() pass because nothing calls CreateAdjacency again until
// finalisation.
func (m *Mesh) Neighbours(i int) []int { return m.neighbours[i] }

func (m *Mesh) EraseElement(i int) {
	if len(m.Elements[i]) > 0 {
		m.Elements[i][0] = ErasedSentinel
	}
}

func (m *Mesh) IsErased(i int) bool {
	return len(m.Elements[i]) == 0 || m.Elements[i][0] < 0
}

// ResizeVertices grows (never shrinks) the vertex arrays to newCount,
// zero-filling new entries; used by the coord/metric append phase
// after the prefix sum over producer buffers fixes final offsets.
func (m *Mesh) ResizeVertices(newCount int) {
	for len(m.coords) < newCount {
		m.coords = append(m.coords, make([]float64, m.Dim))
		m.metric = append(m.metric, make([]float64, m.Dim*m.Dim))
		m.Owner = append(m.Owner, -1)
		m.LNN2GNN = append(m.LNN2GNN, -1)
	}
}

// ResizeElements grows the element array to newCount, zero-filling new
// entries with Nloc-length placeholder rows.
func (m *Mesh) ResizeElements(newCount int) {
	for len(m.Elements) < newCount {
		m.Elements = append(m.Elements, make([]int, m.Nloc))
	}
}

func (m *Mesh) SetVertex(i int, coord, metric []float64, owner int) {
	copy(m.coords[i], coord)
	copy(m.metric[i], metric)
	m.Owner[i] = owner
}

func (m *Mesh) SetElement(i int, lids []int) {
	copy(m.Elements[i], lids)
}

// AppendElement appends past the current length and returns the new
// index; used when the final element count was not pre-sized by
// ResizeElements (e.g. ad hoc test construction).
func (m *Mesh) AppendElement(lids []int) int {
	return m.AddElement(lids)
}

func (m *Mesh) GetSend(p int) []int { return m.Send[p] }
func (m *Mesh) GetRecv(p int) []int { return m.Recv[p] }

func (m *Mesh) SetSend(p int, ids []int) { m.Send[p] = ids }
func (m *Mesh) SetRecv(p int, ids []int) { m.Recv[p] = ids }

func (m *Mesh) Communicator() partition.Communicator { return m.Comm }

func (m *Mesh) HaloUpdate(buf []int, stride int) error {
	return m.Comm.HaloUpdate(buf, stride, m.Send, m.Recv)
}

func (m *Mesh) GID(i int) int      { return m.LNN2GNN[i] }
func (m *Mesh) SetGID(i, gid int)  { m.LNN2GNN[i] = gid }
func (m *Mesh) OwnerOf(i int) int  { return m.Owner[i] }
func (m *Mesh) SetOwnerOf(i, owner int) { m.Owner[i] = owner }

// LNN2GNNSlice exposes the whole local-to-global map, e.g. for C1's
// halo exchange of ghost GIDs or for GetNewVertex's GID comparisons.
func (m *Mesh) LNN2GNNSlice() []int { return m.LNN2GNN }
