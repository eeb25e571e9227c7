package mesh

import "github.com/notargets/gorefine/geom"

// EdgeLengthMetric implements the mesh collaborator's edge_length_metric
// primitive (§6): the metric length between vertices a and b under the
// metric interpolated between their two endpoint metrics. The closed
// form in geom.MetricLength is symmetric under swapping (x0,m0) and
// (x1,m1), so every partition computes the same numeric value
// regardless of which endpoint it names first.
func (m *Mesh) EdgeLengthMetric(a, b int) float64 {
	return geom.MetricLength(m.coords[a], m.coords[b], m.metric[a], m.metric[b])
}

// InterpolateMetric and InterpolatePoint are re-exported for callers
// that only import package mesh.
func InterpolateMetric(m0, m1 []float64, w float64) []float64 { return geom.InterpolateMetric(m0, m1, w) }
func InterpolatePoint(x0, x1 []float64, w float64) []float64  { return geom.InterpolatePoint(x0, x1, w) }
