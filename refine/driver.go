// Package refine is the anisotropic refinement core. It never imports
// the mesh package directly: a Driver holds only non-owning handles to
// a MeshAccessor and, optionally, a SurfaceAccessor, and drives them
// through the fixed sequence of phases the specification lays out --
// global identity, edge selection, conforming propagation, subdivision
// templates, and halo/orientation repair.
package refine

import (
	"math"
	"runtime"

	"github.com/notargets/gorefine/geom"
	"github.com/notargets/gorefine/types"
)

// Driver orchestrates one or more refine() passes against a mesh and
// its (optional) boundary surface. The orientation probe is captured
// once at construction time from the mesh's first non-erased element
// (§9) and reused, unchanged, by every subsequent Refine call.
type Driver struct {
	Mesh    MeshAccessor
	Surface SurfaceAccessor
	Workers int

	prop *geom.Property
}

// NewDriver builds a Driver bound to m (and, optionally, surf) with a
// fixed worker count. workers <= 0 defaults to GOMAXPROCS.
func NewDriver(m MeshAccessor, surf SurfaceAccessor, workers int) (*Driver, error) {
	if m.Dims() != 2 && m.Dims() != 3 {
		return nil, &BadInputError{Msg: "mesh dimensionality must be 2 or 3"}
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	prop, err := buildOrientationProbe(m)
	if err != nil {
		return nil, err
	}

	return &Driver{Mesh: m, Surface: surf, Workers: workers, prop: prop}, nil
}

func buildOrientationProbe(m MeshAccessor) (*geom.Property, error) {
	ne := m.ElementCount()
	for e := 0; e < ne; e++ {
		if m.IsErased(e) {
			continue
		}
		lids := m.Element(e)
		if m.Dims() == 2 {
			return geom.NewProperty2D(m.Coords(lids[0]), m.Coords(lids[1]), m.Coords(lids[2])), nil
		}
		return geom.NewProperty3D(m.Coords(lids[0]), m.Coords(lids[1]), m.Coords(lids[2]), m.Coords(lids[3])), nil
	}
	return nil, &BadInputError{Msg: "mesh has no non-erased elements to orient from"}
}

// Refine runs one complete pass: C1 (global identity), C2 (edge
// selection), C3 (3D-only conforming propagation), C4 (subdivision
// templates, both volume and boundary), and C5 (halo/orientation
// repair). lmax must be strictly positive and finite (§7).
func (d *Driver) Refine(lmax float64) error {
	if !(lmax > 0) || math.IsInf(lmax, 0) || math.IsNaN(lmax) {
		return &BadInputError{Msg: "Lmax must be a finite, strictly positive length"}
	}

	m := d.Mesh
	if err := BuildGlobalIdentity(m); err != nil {
		return err
	}

	pool := NewWorkerPool(d.Workers)
	re := types.NewRefinedEdges(m, m.VertexCount())
	staging := NewStagingArea(pool.W)

	if err := EdgeSelect(m, re, lmax, pool, staging); err != nil {
		return err
	}

	if err := Propagate(m, re, pool, staging); err != nil {
		return err
	}

	if _, err := staging.Materialize(m, re); err != nil {
		return err
	}

	elemStaging := NewElementStagingArea(pool.W)
	if m.Dims() == 2 {
		if err := RefineTriangles2D(m, re, pool, elemStaging); err != nil {
			return err
		}
	} else {
		if err := RefineTetrahedra3D(m, re, pool, elemStaging); err != nil {
			return err
		}
	}
	elemStaging.Materialize(m)

	return Finalize(m, d.Surface, re, d.prop)
}
