package scheduler

import (
	"sort"

	"github.com/vivi/ray/pkg/types"
)

// FunctionSnapshot is one function-table entry in an introspection snapshot.
type FunctionSnapshot struct {
	Arity   uint64
	Workers []types.WorkerID
}

// Snapshot is a read-only copy of the scheduler state for introspection.
type Snapshot struct {
	ClusterID   string
	Queued      []types.OperationID
	IdleWorkers []types.WorkerID
	Targets     map[types.ObjRef]types.ObjRef
	Counts      map[types.ObjRef]uint64
	Locations   map[types.ObjRef][]types.ObjStoreID
	Functions   map[string]FunctionSnapshot
}

// Info captures the current registry state. Retired refs are omitted.
func (s *Scheduler) Info() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ClusterID: s.clusterID,
		Targets:   make(map[types.ObjRef]types.ObjRef),
		Counts:    make(map[types.ObjRef]uint64),
		Locations: make(map[types.ObjRef][]types.ObjStoreID),
		Functions: make(map[string]FunctionSnapshot),
	}

	// Reading the queue rotates it through one full cycle, preserving order.
	n := s.queue.Len()
	for i := 0; i < n; i++ {
		op := s.queue.Dequeue().(types.OperationID)
		snap.Queued = append(snap.Queued, op)
		s.queue.Enqueue(op)
	}

	for id, w := range s.workers {
		if w.State == types.WorkerIdle {
			snap.IdleWorkers = append(snap.IdleWorkers, id)
		}
	}
	sort.Slice(snap.IdleWorkers, func(i, j int) bool { return snap.IdleWorkers[i] < snap.IdleWorkers[j] })

	for id, ri := range s.refs {
		if ri.retired {
			continue
		}
		snap.Targets[id] = ri.target
		c := s.canonicalLocked(id)
		if c != id {
			continue
		}
		snap.Counts[id] = uint64(ri.count)
		locs := make([]types.ObjStoreID, 0, len(ri.locations))
		for st := range ri.locations {
			locs = append(locs, st)
		}
		sort.Slice(locs, func(i, j int) bool { return locs[i] < locs[j] })
		snap.Locations[id] = locs
	}

	for name, fn := range s.functions {
		workers := make([]types.WorkerID, 0, len(fn.workers))
		for id := range fn.workers {
			workers = append(workers, id)
		}
		sort.Slice(workers, func(i, j int) bool { return workers[i] < workers[j] })
		snap.Functions[name] = FunctionSnapshot{Arity: fn.arity, Workers: workers}
	}
	return snap
}

// Tasks returns a copy of every task record, ordered by operation id.
func (s *Scheduler) Tasks() []types.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Operation < out[j].Operation })
	return out
}
