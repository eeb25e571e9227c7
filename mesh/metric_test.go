package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func identity2() []float64 { return []float64{1, 0, 0, 1} }

func TestMesh_EdgeLengthMetric_IdentityMatchesEuclidean(t *testing.T) {
	m := NewMesh(2, nil)
	m.AddVertex([]float64{0, 0}, identity2(), 0)
	m.AddVertex([]float64{3, 4}, identity2(), 0)
	assert.InDelta(t, 5.0, m.EdgeLengthMetric(0, 1), 1e-9)
}

func TestInterpolateMetricAndPoint(t *testing.T) {
	m0 := []float64{1, 0, 0, 1}
	m1 := []float64{3, 0, 0, 5}
	mid := InterpolateMetric(m0, m1, 0.5)
	assert.InDeltaSlice(t, []float64{2, 0, 0, 3}, mid, 1e-12)

	x0 := []float64{0, 0}
	x1 := []float64{4, 2}
	p := InterpolatePoint(x0, x1, 0.25)
	assert.InDeltaSlice(t, []float64{1, 0.5}, p, 1e-12)
}
