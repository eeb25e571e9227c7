package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeNeighbours map[int][]int

func (f fakeNeighbours) Neighbours(i int) []int { return f[i] }

func TestRefinedEdges_StageFinalizeLookup(t *testing.T) {
	nl := fakeNeighbours{
		0: {1, 2},
		1: {0, 2},
		2: {0, 1},
	}
	lnn2gnn := []int{0, 1, 2}
	re := NewRefinedEdges(nl, 3)

	assert.Equal(t, -1, GetNewVertex(nl, 0, 1, re, lnn2gnn))

	pos := FindNeighbourPos(nl, 0, 1)
	assert.Equal(t, 0, pos)
	re.Stage(0, pos, 5, 2)
	assert.True(t, re.IsSplit(0, pos))
	re.Finalize(0, pos, 9)
	assert.Equal(t, 9, GetNewVertex(nl, 1, 0, re, lnn2gnn))
	assert.Equal(t, 9, GetNewVertex(nl, 0, 1, re, lnn2gnn))
}

func TestRefinedEdges_MarkPendingIsBenign(t *testing.T) {
	nl := fakeNeighbours{0: {1}, 1: {0}}
	re := NewRefinedEdges(nl, 2)
	pos := FindNeighbourPos(nl, 0, 1)
	re.MarkPending(0, pos)
	re.MarkPending(0, pos)
	assert.True(t, re.IsPending(0, pos))
}
