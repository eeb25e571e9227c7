package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProperty2D(t *testing.T) {
	x0 := []float64{0, 0}
	x1 := []float64{1, 0}
	x2 := []float64{0, 1}
	p := NewProperty2D(x0, x1, x2)
	assert.InDelta(t, 0.5, p.Area(x0, x1, x2), 1e-12)

	// Reversed winding still reports positive area because the probe
	// captured the reversed handedness at construction.
	pRev := NewProperty2D(x0, x2, x1)
	assert.InDelta(t, 0.5, pRev.Area(x0, x2, x1), 1e-12)
}

func TestProperty2D_PanicsOn3D(t *testing.T) {
	x0 := []float64{0, 0}
	x1 := []float64{1, 0}
	x2 := []float64{0, 1}
	p := NewProperty2D(x0, x1, x2)
	assert.Panics(t, func() { p.Volume(x0, x1, x2, x2) })
}

func TestProperty3D(t *testing.T) {
	x0 := []float64{0, 0, 0}
	x1 := []float64{1, 0, 0}
	x2 := []float64{0, 1, 0}
	x3 := []float64{0, 0, 1}
	p := NewProperty3D(x0, x1, x2, x3)
	assert.InDelta(t, 1.0/6.0, p.Volume(x0, x1, x2, x3), 1e-12)
}
