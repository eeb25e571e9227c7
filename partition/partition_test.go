package partition

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal(t *testing.T) {
	var c Communicator = Local{}
	assert.Equal(t, 0, c.Rank())
	assert.Equal(t, 1, c.Size())
	off, err := c.ScanSum(7)
	require.NoError(t, err)
	assert.Equal(t, 0, off)
	sum, err := c.AllReduceSum(7)
	require.NoError(t, err)
	assert.Equal(t, 7, sum)
}

func TestGroup_ScanSumAndAllReduce(t *testing.T) {
	comms := NewGroup(3)
	counts := []int{2, 3, 5}
	offsets := make([]int, 3)
	sums := make([]int, 3)

	var wg sync.WaitGroup
	for r := 0; r < 3; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			off, err := comms[r].ScanSum(counts[r])
			require.NoError(t, err)
			offsets[r] = off
			sum, err := comms[r].AllReduceSum(counts[r])
			require.NoError(t, err)
			sums[r] = sum
		}(r)
	}
	wg.Wait()

	assert.Equal(t, []int{0, 2, 5}, offsets)
	assert.Equal(t, []int{10, 10, 10}, sums)
}

func TestGroup_HaloUpdate(t *testing.T) {
	comms := NewGroup(2)
	buf0 := []int{100, 0}
	buf1 := []int{0, 200}
	send0 := map[int][]int{1: {0}}
	recv0 := map[int][]int{1: {1}}
	send1 := map[int][]int{0: {1}}
	recv1 := map[int][]int{0: {0}}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		require.NoError(t, comms[0].HaloUpdate(buf0, 1, send0, recv0))
	}()
	go func() {
		defer wg.Done()
		require.NoError(t, comms[1].HaloUpdate(buf1, 1, send1, recv1))
	}()
	wg.Wait()

	assert.Equal(t, 200, buf0[1])
	assert.Equal(t, 100, buf1[0])
}

func TestNaivePartition(t *testing.T) {
	part := NaivePartition(10, 3)
	assert.Len(t, part, 10)
	seen := map[int]bool{}
	for _, p := range part {
		seen[p] = true
	}
	assert.Len(t, seen, 3)
}

func TestBuildElementGraph(t *testing.T) {
	ete := [][]int{{-1, 1}, {0, -1}}
	xadj, adjncy := BuildElementGraph(ete)
	assert.Equal(t, []int32{0, 1, 2}, xadj)
	assert.Equal(t, []int32{1, 0}, adjncy)
}

func TestDirectedEdge(t *testing.T) {
	e := NewDirectedEdge(5, 2, 17)
	lo, hi := e.GIDs()
	assert.Equal(t, 2, lo)
	assert.Equal(t, 5, hi)
	assert.Equal(t, 17, e.NewLID)
}
