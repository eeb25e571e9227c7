package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/notargets/gorefine/partition"
)

// gmf.go is a supplemented feature (not part of the refinement core):
// a restricted ASCII reader/writer for the "Gamma Mesh Format" this
// engine's algorithm was originally distilled alongside, grounded on
// original_source/include/GMFTools.h. Only the keyword blocks this
// engine's data model needs are supported: Dimension, Vertices,
// Triangles, Tetrahedra, SolAtVertices. The binary .meshb variant and
// the rest of GMF's keyword set are out of scope.
const (
	kwDimension     = "Dimension"
	kwVertices      = "Vertices"
	kwTriangles     = "Triangles"
	kwTetrahedra    = "Tetrahedra"
	kwSolAtVertices = "SolAtVertices"
	kwEnd           = "End"
)

// ReadGMF parses a restricted-ASCII GMF mesh plus its companion
// SolAtVertices block (symmetric metric tensors, one per vertex, d*(d+1)/2
// entries each in GMF's packed symmetric order) into a fresh Mesh.
func ReadGMF(r io.Reader, comm partition.Communicator) (*Mesh, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)

	var dim int
	var coords [][]float64
	var tris, tets [][]int
	var sols [][]float64

	nextFields := func() ([]string, bool) {
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			return strings.Fields(line), true
		}
		return nil, false
	}

	for {
		fields, ok := nextFields()
		if !ok {
			break
		}
		kw := fields[0]
		switch kw {
		case kwEnd:
			goto done
		case kwDimension:
			f, _ := nextFields()
			dim, _ = strconv.Atoi(f[0])
		case kwVertices:
			f, _ := nextFields()
			n, _ := strconv.Atoi(f[0])
			coords = make([][]float64, n)
			for i := 0; i < n; i++ {
				f, _ = nextFields()
				c := make([]float64, dim)
				for d := 0; d < dim; d++ {
					c[d], _ = strconv.ParseFloat(f[d], 64)
				}
				coords[i] = c
			}
		case kwTriangles:
			f, _ := nextFields()
			n, _ := strconv.Atoi(f[0])
			tris = make([][]int, n)
			for i := 0; i < n; i++ {
				f, _ = nextFields()
				tris[i] = parseInts(f[:3])
			}
		case kwTetrahedra:
			f, _ := nextFields()
			n, _ := strconv.Atoi(f[0])
			tets = make([][]int, n)
			for i := 0; i < n; i++ {
				f, _ = nextFields()
				tets[i] = parseInts(f[:4])
			}
		case kwSolAtVertices:
			f, _ := nextFields()
			n, _ := strconv.Atoi(f[0])
			_, _ = nextFields() // solution type/size line, format fixed by this engine's use case
			sols = make([][]float64, n)
			npacked := dim * (dim + 1) / 2
			for i := 0; i < n; i++ {
				f, _ = nextFields()
				packed := make([]float64, npacked)
				for k := 0; k < npacked; k++ {
					packed[k], _ = strconv.ParseFloat(f[k], 64)
				}
				sols[i] = unpackSymmetric(dim, packed)
			}
		}
	}
done:
	if dim != 2 && dim != 3 {
		return nil, fmt.Errorf("mesh: gmf: unsupported or missing Dimension %d", dim)
	}

	m := NewMesh(dim, comm)
	for i, c := range coords {
		metric := []float64{}
		if i < len(sols) {
			metric = sols[i]
		} else {
			metric = identityMetric(dim)
		}
		m.AddVertex(c, metric, 0)
	}
	elems := tris
	if dim == 3 {
		elems = tets
	}
	for _, e := range elems {
		lids := make([]int, len(e))
		for k, v := range e {
			lids[k] = v - 1 // GMF vertex indices are 1-based
		}
		m.AddElement(lids)
	}
	m.Freeze()
	m.CreateAdjacency()
	return m, nil
}

// WriteGMF serialises m back to the same restricted ASCII subset.
func WriteGMF(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	fmt.Fprintf(bw, "%s\n%d\n\n", kwDimension, m.Dim)

	fmt.Fprintf(bw, "%s\n%d\n", kwVertices, m.VertexCount())
	for i := 0; i < m.VertexCount(); i++ {
		for _, c := range m.coords[i] {
			fmt.Fprintf(bw, "%g ", c)
		}
		fmt.Fprintf(bw, "0\n")
	}
	fmt.Fprintln(bw)

	kw := kwTriangles
	if m.Dim == 3 {
		kw = kwTetrahedra
	}
	nValid := 0
	for e := 0; e < m.ElementCount(); e++ {
		if !m.IsErased(e) {
			nValid++
		}
	}
	fmt.Fprintf(bw, "%s\n%d\n", kw, nValid)
	for e := 0; e < m.ElementCount(); e++ {
		if m.IsErased(e) {
			continue
		}
		for _, lid := range m.Elements[e] {
			fmt.Fprintf(bw, "%d ", lid+1)
		}
		fmt.Fprintf(bw, "0\n")
	}
	fmt.Fprintln(bw)

	fmt.Fprintf(bw, "%s\n%d\n1 3\n", kwSolAtVertices, m.VertexCount())
	for i := 0; i < m.VertexCount(); i++ {
		for _, v := range packSymmetric(m.Dim, m.metric[i]) {
			fmt.Fprintf(bw, "%g ", v)
		}
		fmt.Fprintf(bw, "\n")
	}
	fmt.Fprintln(bw)

	fmt.Fprintf(bw, "%s\n", kwEnd)
	return nil
}

func parseInts(fields []string) []int {
	out := make([]int, len(fields))
	for i, f := range fields {
		out[i], _ = strconv.Atoi(f)
	}
	return out
}

func identityMetric(dim int) []float64 {
	m := make([]float64, dim*dim)
	for i := 0; i < dim; i++ {
		m[i*dim+i] = 1
	}
	return m
}

// packSymmetric flattens a row-major d*d symmetric matrix into GMF's
// packed upper-triangular order (m11, m12, m22[, m13, m23, m33]).
func packSymmetric(dim int, m []float64) []float64 {
	if dim == 2 {
		return []float64{m[0], m[1], m[3]}
	}
	return []float64{m[0], m[1], m[4], m[2], m[5], m[8]}
}

func unpackSymmetric(dim int, packed []float64) []float64 {
	m := make([]float64, dim*dim)
	if dim == 2 {
		m[0], m[1], m[2], m[3] = packed[0], packed[1], packed[1], packed[2]
		return m
	}
	m11, m12, m22, m13, m23, m33 := packed[0], packed[1], packed[2], packed[3], packed[4], packed[5]
	m[0], m[1], m[2] = m11, m12, m13
	m[3], m[4], m[5] = m12, m22, m23
	m[6], m[7], m[8] = m13, m23, m33
	return m
}
