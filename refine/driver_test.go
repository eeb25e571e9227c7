package refine

import (
	"testing"

	"github.com/notargets/gorefine/mesh"
	"github.com/notargets/gorefine/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity2D() []float64 { return []float64{1, 0, 0, 1} }
func identity3D() []float64 { return []float64{1, 0, 0, 0, 1, 0, 0, 0, 1} }

func newTriangleMesh(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh(2, partition.Local{})
	m.AddVertex([]float64{0, 0}, identity2D(), 0)
	m.AddVertex([]float64{1, 0}, identity2D(), 0)
	m.AddVertex([]float64{0, 1}, identity2D(), 0)
	m.AddElement([]int{0, 1, 2})
	m.Freeze()
	m.CreateAdjacency()
	return m
}

func TestDriver_Triangle_AllEdgesSplit(t *testing.T) {
	m := newTriangleMesh(t)
	d, err := NewDriver(m, nil, 2)
	require.NoError(t, err)
	require.NoError(t, d.Refine(0.9))

	assert.Equal(t, 6, m.VertexCount())
	assert.Equal(t, 4, m.ElementCount())
}

func TestDriver_Triangle_OnlyLongestEdgeSplits(t *testing.T) {
	m := newTriangleMesh(t)
	d, err := NewDriver(m, nil, 2)
	require.NoError(t, err)
	require.NoError(t, d.Refine(1.2))

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 2, m.ElementCount())
}

func newTetMesh(t *testing.T, coords [4][]float64) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh(3, partition.Local{})
	for _, c := range coords {
		m.AddVertex(c, identity3D(), 0)
	}
	m.AddElement([]int{0, 1, 2, 3})
	m.Freeze()
	m.CreateAdjacency()
	return m
}

func TestDriver_Tetrahedron_AllEdgesSplit(t *testing.T) {
	m := newTetMesh(t, [4][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	d, err := NewDriver(m, nil, 2)
	require.NoError(t, err)
	require.NoError(t, d.Refine(0.9))

	assert.Equal(t, 10, m.VertexCount(), "4 original + 6 edge midpoints")
	assert.Equal(t, 8, m.ElementCount(), "4 corner tets + 4 octahedron tets")
}

func TestDriver_Tetrahedron_OppositeEdgePairSplitsDirectly(t *testing.T) {
	m := newTetMesh(t, [4][]float64{{-5, 0, 0}, {5, 0, 0}, {0, -5, 1}, {0, 5, 1}})
	d, err := NewDriver(m, nil, 1)
	require.NoError(t, err)
	require.NoError(t, d.Refine(8))

	assert.Equal(t, 6, m.VertexCount(), "only edges (0,1) and (2,3) split")
	assert.Equal(t, 4, m.ElementCount())
}

func TestDriver_Tetrahedron_SharedVertexPairPropagatesToFace(t *testing.T) {
	m := newTetMesh(t, [4][]float64{{0, 0, 0}, {2, 0, 0}, {1, 1, 4.5}, {1, 0, 8}})
	d, err := NewDriver(m, nil, 1)
	require.NoError(t, err)
	require.NoError(t, d.Refine(5))

	assert.Equal(t, 7, m.VertexCount(), "edges (0,3),(1,3) selected plus (0,1) escalated by propagation")
	assert.Equal(t, 4, m.ElementCount(), "the face template on face (0,1,3) with apex 2")
}
