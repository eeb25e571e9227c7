package refine

import (
	"github.com/notargets/gorefine/partition"
	"github.com/notargets/gorefine/types"
)

// MeshAccessor is the mesh collaborator consumed by the refinement
// core (§6). A concrete mesh implementation (package mesh) satisfies
// this without the refine package ever importing it back, keeping the
// driver's handle to its mesh non-owning per §9.
type MeshAccessor interface {
	VertexCount() int
	ElementCount() int
	Dims() int

	Element(i int) []int
	Coords(i int) []float64
	Metric(i int) []float64
	Neighbours(i int) []int
	EdgeLengthMetric(a, b int) float64

	EraseElement(i int)
	IsErased(i int) bool

	ResizeVertices(n int)
	ResizeElements(n int)
	SetVertex(i int, coord, metric []float64, owner int)
	SetElement(i int, lids []int)
	AppendElement(lids []int) int

	GetSend(p int) []int
	GetRecv(p int) []int
	SetSend(p int, ids []int)
	SetRecv(p int, ids []int)

	Communicator() partition.Communicator
	CreateAdjacency()

	GID(i int) int
	SetGID(i, gid int)
	OwnerOf(i int) int
	SetOwnerOf(i, owner int)
	LNN2GNNSlice() []int
}

// SurfaceAccessor is the boundary-mesh collaborator refined once the
// core's new vertices are final (§6 "surface collaborator").
type SurfaceAccessor interface {
	Refine(re *types.RefinedEdges, lnn2gnn []int, neighboursOf func(v int) []int, edgeLength func(a, b int) float64) error
}
