package types

// TriangleChildren applies the §4.4 2D case table to a triangle with
// corner LIDs n and new-vertex LIDs v, where v[k] is the new vertex on
// the edge opposite n[k], or -1 if that edge did not split. Both the
// refinement core's interior triangles and a boundary mesh's boundary
// faces share this table, since a face's own subdivision only depends
// on which of its three edges split, not on which package is asking.
func TriangleChildren(n, v [3]int, edgeLength func(a, b int) float64) [][]int {
	c := 0
	for _, vk := range v {
		if vk >= 0 {
			c++
		}
	}

	switch c {
	case 0:
		return [][]int{{n[0], n[1], n[2]}}
	case 1:
		k := 0
		for ; v[k] < 0; k++ {
		}
		p, q := (k+1)%3, (k+2)%3
		return [][]int{
			{n[k], n[p], v[k]},
			{n[k], v[k], n[q]},
		}
	case 2:
		k := 0
		for ; v[k] >= 0; k++ {
		}
		p, q := (k+1)%3, (k+2)%3
		n0p, n1p, n2p := n[k], n[p], n[q]
		v1p, v2p := v[p], v[q] // v1p on edge (n0p,n2p), v2p on edge (n0p,n1p)

		len1 := edgeLength(v1p, n1p)
		len2 := edgeLength(v2p, n2p)
		corner := []int{n0p, v2p, v1p}
		if len1 <= len2 {
			return [][]int{corner, {v2p, n1p, v1p}, {v1p, n1p, n2p}}
		}
		return [][]int{corner, {v2p, n1p, n2p}, {v2p, n2p, v1p}}
	default: // c == 3
		return [][]int{
			{n[0], v[2], v[1]},
			{n[1], v[0], v[2]},
			{n[2], v[1], v[0]},
			{v[0], v[1], v[2]},
		}
	}
}
