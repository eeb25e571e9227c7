package mesh

import (
	"testing"

	"github.com/notargets/gorefine/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitTriangle builds the A=(0,0) B=(1,0) C=(0,1) fixture from §8's
// concrete scenarios with an identity metric at every vertex.
func unitTriangle(t *testing.T) *Mesh {
	m := NewMesh(2, partition.Local{})
	id := []float64{1, 0, 0, 1}
	a := m.AddVertex([]float64{0, 0}, id, 0)
	b := m.AddVertex([]float64{1, 0}, id, 0)
	c := m.AddVertex([]float64{0, 1}, id, 0)
	m.AddElement([]int{a, b, c})
	m.Freeze()
	m.CreateAdjacency()
	require.Equal(t, 3, m.VertexCount())
	return m
}

func TestMesh_BasicAccessors(t *testing.T) {
	m := unitTriangle(t)
	assert.Equal(t, 2, m.Dims())
	assert.Equal(t, 1, m.ElementCount())
	assert.Len(t, m.Neighbours(0), 2)
	assert.False(t, m.IsErased(0))
	m.EraseElement(0)
	assert.True(t, m.IsErased(0))
}

func TestMesh_ResizeAndSet(t *testing.T) {
	m := unitTriangle(t)
	m.ResizeVertices(5)
	assert.Equal(t, 5, m.VertexCount())
	m.SetVertex(3, []float64{0.5, 0.5}, []float64{1, 0, 0, 1}, 0)
	assert.Equal(t, []float64{0.5, 0.5}, m.Coords(3))

	m.ResizeElements(2)
	assert.Equal(t, 2, m.ElementCount())
	m.SetElement(1, []int{0, 1, 3})
	assert.Equal(t, []int{0, 1, 3}, m.Element(1))
}

func TestMesh_CreateAdjacencyBuildsSymmetricNeighbours(t *testing.T) {
	m := unitTriangle(t)
	for i := 0; i < 3; i++ {
		for _, j := range m.Neighbours(i) {
			found := false
			for _, k := range m.Neighbours(j) {
				if k == i {
					found = true
				}
			}
			assert.True(t, found, "neighbour relation must be symmetric")
		}
	}
	assert.NotNil(t, m.Adjacency)
}
