package refine

import "fmt"

// BadInputError reports an invalid call to Driver.Refine: L_max not
// strictly positive, or mesh dimensionality outside {2,3} (§7).
type BadInputError struct {
	Msg string
}

func (e *BadInputError) Error() string { return fmt.Sprintf("refine: bad input: %s", e.Msg) }

// MetricCorruptionError reports a non-finite interpolated metric
// component (§7). The mesh is left internally consistent: nothing has
// been appended past the last barrier when this is raised.
type MetricCorruptionError struct {
	A, B           int
	X0, X1         []float64
	M0, M1, Interp []float64
	Weight         float64
}

func (e *MetricCorruptionError) Error() string {
	return fmt.Sprintf(
		"refine: metric corruption on edge (%d,%d): weight=%v m0=%v m1=%v interpolated=%v",
		e.A, e.B, e.Weight, e.M0, e.M1, e.Interp,
	)
}

// InvariantViolationError reports a 3D element whose split pattern
// fell outside the legal template set after propagation converged
// (§7). This can only arise from a bug in propagation and must be
// reported, never silently skipped.
type InvariantViolationError struct {
	Element    int
	SplitCount int
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf(
		"refine: element %d has illegal split count %d after propagation converged",
		e.Element, e.SplitCount,
	)
}
