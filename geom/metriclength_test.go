package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricLength_IdentityMatchesEuclidean(t *testing.T) {
	id := []float64{1, 0, 0, 1}
	l := MetricLength([]float64{0, 0}, []float64{3, 4}, id, id)
	assert.InDelta(t, 5.0, l, 1e-9)
}

func TestMetricLength_SymmetricUnderEndpointSwap(t *testing.T) {
	x0 := []float64{0, 0}
	x1 := []float64{2, 1}
	m0 := []float64{1, 0, 0, 1}
	m1 := []float64{4, 0, 0, 9}
	l1 := MetricLength(x0, x1, m0, m1)
	l2 := MetricLength(x1, x0, m1, m0)
	assert.InDelta(t, l1, l2, 1e-9)
}

func TestEdgeWeight_FavoursLongerMetricEndpoint(t *testing.T) {
	x0 := []float64{0, 0}
	x1 := []float64{1, 0}
	m0 := []float64{1, 0, 0, 1}
	m1 := []float64{4, 0, 0, 4} // m1 judges the edge twice as long
	w := EdgeWeight(x0, x1, m0, m1)
	assert.Greater(t, w, 0.5, "vertex should land closer to the endpoint with the larger metric")
}

func TestEdgeWeight_EqualMetricsGivesMidpoint(t *testing.T) {
	x0 := []float64{0, 0}
	x1 := []float64{1, 0}
	id := []float64{1, 0, 0, 1}
	w := EdgeWeight(x0, x1, id, id)
	assert.InDelta(t, 0.5, w, 1e-9)
}
