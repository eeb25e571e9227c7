package refine

import "github.com/notargets/gorefine/partition"

// BuildGlobalIdentity implements C1 (§4.1): a prefix sum over ranks
// gives the local-vertex offset O so LID i maps to GID O+i; a halo
// exchange then overwrites ghost vertices' GIDs with the authoritative
// values their owners hold, and ownership is set to rank by default,
// overridden to p for every vertex that appears in the recv list from
// rank p.
func BuildGlobalIdentity(m MeshAccessor) error {
	comm := m.Communicator()
	n := m.VertexCount()

	offset, err := comm.ScanSum(n)
	if err != nil {
		return &partition.CommunicatorError{Op: "ScanSum", Err: err}
	}
	for i := 0; i < n; i++ {
		m.SetGID(i, offset+i)
		m.SetOwnerOf(i, comm.Rank())
	}

	buf := append([]int(nil), m.LNN2GNNSlice()...)
	if err := comm.HaloUpdate(buf, 1, sendMap(m), recvMap(m)); err != nil {
		return &partition.CommunicatorError{Op: "HaloUpdate", Err: err}
	}
	for i := 0; i < n; i++ {
		m.SetGID(i, buf[i])
	}

	for p := 0; p < comm.Size(); p++ {
		for _, lid := range m.GetRecv(p) {
			m.SetOwnerOf(lid, p)
		}
	}
	return nil
}

// sendMap/recvMap assemble the full per-rank send/recv tables the
// Communicator interface expects from a MeshAccessor's per-rank
// accessors.
func sendMap(m MeshAccessor) map[int][]int {
	out := make(map[int][]int)
	comm := m.Communicator()
	for p := 0; p < comm.Size(); p++ {
		if p == comm.Rank() {
			continue
		}
		if ids := m.GetSend(p); len(ids) > 0 {
			out[p] = ids
		}
	}
	return out
}

func recvMap(m MeshAccessor) map[int][]int {
	out := make(map[int][]int)
	comm := m.Communicator()
	for p := 0; p < comm.Size(); p++ {
		if p == comm.Rank() {
			continue
		}
		if ids := m.GetRecv(p); len(ids) > 0 {
			out[p] = ids
		}
	}
	return out
}
