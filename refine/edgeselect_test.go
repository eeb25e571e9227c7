package refine

import (
	"testing"

	"github.com/notargets/gorefine/mesh"
	"github.com/notargets/gorefine/partition"
	"github.com/notargets/gorefine/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitTriangle builds A=(0,0), B=(1,0), C=(0,1) with an identity
// metric, matching the worked example in the specification's C2
// scenario.
func unitTriangle(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh(2, partition.Local{})
	id := []float64{1, 0, 0, 1}
	m.AddVertex([]float64{0, 0}, id, 0)
	m.AddVertex([]float64{1, 0}, id, 0)
	m.AddVertex([]float64{0, 1}, id, 0)
	m.AddElement([]int{0, 1, 2})
	m.Freeze()
	m.CreateAdjacency()
	require.NoError(t, BuildGlobalIdentity(m))
	return m
}

func TestEdgeSelect_AllThreeEdgesSplit(t *testing.T) {
	m := unitTriangle(t)
	re := types.NewRefinedEdges(m, m.VertexCount())
	pool := NewWorkerPool(2)
	staging := NewStagingArea(pool.W)

	require.NoError(t, EdgeSelect(m, re, 0.9, pool, staging))
	assert.Equal(t, 3, staging.Total(), "AB, AC and BC all exceed 0.9 under the identity metric")
}

func TestEdgeSelect_OnlyLongestEdgeSplits(t *testing.T) {
	m := unitTriangle(t)
	re := types.NewRefinedEdges(m, m.VertexCount())
	pool := NewWorkerPool(2)
	staging := NewStagingArea(pool.W)

	require.NoError(t, EdgeSelect(m, re, 1.2, pool, staging))
	assert.Equal(t, 1, staging.Total(), "only BC (length sqrt(2)) exceeds 1.2")
}

func TestEdgeSelect_MaterializePlacesVertexAtMidpoint(t *testing.T) {
	m := unitTriangle(t)
	re := types.NewRefinedEdges(m, m.VertexCount())
	pool := NewWorkerPool(1)
	staging := NewStagingArea(pool.W)

	require.NoError(t, EdgeSelect(m, re, 1.2, pool, staging))
	n, err := staging.Materialize(m, re)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 4, m.VertexCount())
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, m.Coords(3), 1e-9)
}
