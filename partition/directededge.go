package partition

import "github.com/notargets/gorefine/types"

// DirectedEdge identifies an edge by its two global ids, ordered low to
// high so the same edge compares equal no matter which rank or which
// element observed it first (§3 "Directed edge"), together with the
// local id of whatever vertex was inserted on it, if any.
type DirectedEdge struct {
	Key    types.EdgeKey
	NewLID int
}

// NewDirectedEdge canonicalises (gidA,gidB) and records newLID, or -1
// if the edge has not (yet) had a vertex inserted on it.
func NewDirectedEdge(gidA, gidB, newLID int) DirectedEdge {
	return DirectedEdge{Key: types.NewEdgeKey([2]int{gidA, gidB}), NewLID: newLID}
}

// GIDs returns the canonical (lo, hi) endpoints.
func (e DirectedEdge) GIDs() (lo, hi int) {
	v := e.Key.GetVertices(false)
	return v[0], v[1]
}
