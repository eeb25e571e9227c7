package refine

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool_Split(t *testing.T) {
	p := NewWorkerPool(3)
	ranges := p.Split(10)
	total := 0
	for _, r := range ranges {
		total += r[1] - r[0]
	}
	assert.Equal(t, 10, total)
	assert.Equal(t, [2]int{0, 4}, ranges[0])
}

func TestWorkerPool_RunAndPanic(t *testing.T) {
	p := NewWorkerPool(4)
	var sum int64
	p.Run(func(w int) {
		atomic.AddInt64(&sum, int64(w))
	})
	assert.EqualValues(t, 6, sum)

	assert.Panics(t, func() {
		p.Run(func(w int) {
			if w == 2 {
				panic("boom")
			}
		})
	})
}

func TestPrefixSum(t *testing.T) {
	offsets, total := PrefixSum([]int{3, 0, 2, 5})
	assert.Equal(t, []int{0, 3, 3, 5}, offsets)
	assert.Equal(t, 10, total)
}
