package partition

// Local is the single-rank Communicator: every collective is a no-op
// and HaloUpdate never has anything to exchange. It grounds the
// degenerate case of §5's "message passing group of partitions" when
// the engine runs on one rank.
type Local struct{}

func (Local) Rank() int { return 0 }
func (Local) Size() int { return 1 }

func (Local) ScanSum(v int) (int, error) { return 0, nil }

func (Local) AllReduceSum(v int) (int, error) { return v, nil }

func (Local) HaloUpdate(buf []int, stride int, send, recv map[int][]int) error {
	return nil
}
