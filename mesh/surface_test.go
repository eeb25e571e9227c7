package mesh

import (
	"testing"

	"github.com/notargets/gorefine/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurface_RefineEdgeFacet(t *testing.T) {
	nl := fakeNL{0: {1}, 1: {0}}
	re := types.NewRefinedEdges(nl, 3)
	pos := types.FindNeighbourPos(nl, 0, 1)
	re.Stage(0, pos, 0, 0)
	re.Finalize(0, pos, 2)
	lnn2gnn := []int{0, 1, 2}

	s := NewSurface(2)
	s.AddFacet([]int{0, 1}, 7)
	require.NoError(t, s.Refine(re, lnn2gnn, nl.Neighbours, nil))
	require.Len(t, s.Facets, 2)
	assert.Equal(t, []int{0, 2}, s.Facets[0].LIDs)
	assert.Equal(t, []int{2, 1}, s.Facets[1].LIDs)
	assert.Equal(t, 7, s.Facets[0].Tag)
}

type fakeNL map[int][]int

func (f fakeNL) Neighbours(i int) []int { return f[i] }

func TestSurface_RefineTriFacet_OneSplit(t *testing.T) {
	// Triangle (0,1,2); new vertex 3 opposite n0, i.e. on edge (1,2).
	nl := fakeNL{
		0: {1, 2},
		1: {0, 2},
		2: {0, 1},
	}
	re := types.NewRefinedEdges(nl, 3)
	pos := types.FindNeighbourPos(nl, 1, 2)
	re.Stage(1, pos, 0, 0)
	re.Finalize(1, pos, 3)
	lnn2gnn := []int{0, 1, 2, 3}

	s := NewSurface(3)
	s.AddFacet([]int{0, 1, 2}, 1)
	require.NoError(t, s.Refine(re, lnn2gnn, nl.Neighbours, nil))
	require.Len(t, s.Facets, 2)
	assert.Equal(t, []int{0, 1, 3}, s.Facets[0].LIDs)
	assert.Equal(t, []int{0, 3, 2}, s.Facets[1].LIDs)
}
