package partition

import (
	"sync"

	"github.com/notargets/gorefine/utils"
)

// team is the shared state behind one in-process simulated partition
// group: a barrier and a per-rank value slot for collectives, plus a
// utils.HaloExchanger for ghost-vertex exchange. All Group handles
// returned by NewGroup share one team.
type team struct {
	n int

	mu      sync.Mutex
	cond    *sync.Cond
	arrived int
	gen     int
	values  []int

	he *utils.HaloExchanger
}

func (t *team) barrier() {
	t.mu.Lock()
	myGen := t.gen
	t.arrived++
	if t.arrived == t.n {
		t.arrived = 0
		t.gen++
		t.cond.Broadcast()
	} else {
		for t.gen == myGen {
			t.cond.Wait()
		}
	}
	t.mu.Unlock()
}

// Group is a Communicator backed by an in-process simulation of n
// ranks over goroutines and channels: no real MPI runtime is used, but
// every rank's view of a collective is computed from every other
// rank's contribution; halo exchange goes through
// utils.MailBox/HaloExchanger.
type Group struct {
	t    *team
	rank int
}

// NewGroup returns n Communicator handles sharing one simulated group.
// Every returned handle must be driven from its own goroutine: the
// collectives block until all n ranks have called in.
func NewGroup(n int) []Communicator {
	t := &team{n: n, values: make([]int, n), he: utils.NewHaloExchanger(n)}
	t.cond = sync.NewCond(&t.mu)
	comms := make([]Communicator, n)
	for r := 0; r < n; r++ {
		comms[r] = &Group{t: t, rank: r}
	}
	return comms
}

func (g *Group) Rank() int { return g.rank }
func (g *Group) Size() int { return g.t.n }

func (g *Group) ScanSum(v int) (int, error) {
	t := g.t
	t.mu.Lock()
	t.values[g.rank] = v
	t.mu.Unlock()
	t.barrier()

	offset := 0
	for r := 0; r < g.rank; r++ {
		offset += t.values[r]
	}
	t.barrier()
	return offset, nil
}

func (g *Group) AllReduceSum(v int) (int, error) {
	t := g.t
	t.mu.Lock()
	t.values[g.rank] = v
	t.mu.Unlock()
	t.barrier()

	sum := 0
	for _, x := range t.values {
		sum += x
	}
	t.barrier()
	return sum, nil
}

// HaloUpdate exchanges values by positional correspondence: the i-th
// local id in this rank's send[p] carries the value that must land at
// the i-th local id in rank p's recv[g.rank] (§5 "Halo slots are
// always appended in a deterministic order"). No shared index space
// between ranks is assumed, matching a real distributed mesh where
// each rank's LIDs are private.
func (g *Group) HaloUpdate(buf []int, stride int, send, recv map[int][]int) error {
	t := g.t
	for p, ids := range send {
		for _, id := range ids {
			for s := 0; s < stride; s++ {
				t.he.Post(g.rank, p, buf[id*stride+s])
			}
		}
	}
	t.he.Deliver(g.rank)
	t.barrier()

	msgs := t.he.Receive(g.rank)
	bySrc := make(map[int][]int, g.t.n)
	for _, m := range msgs {
		bySrc[m.Src] = append(bySrc[m.Src], m.Value)
	}
	for src, ids := range recv {
		vals := bySrc[src]
		for k, id := range ids {
			for s := 0; s < stride; s++ {
				if k*stride+s >= len(vals) {
					break
				}
				buf[id*stride+s] = vals[k*stride+s]
			}
		}
	}
	t.barrier()
	return nil
}
