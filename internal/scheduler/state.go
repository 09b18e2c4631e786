package scheduler

import (
	"github.com/vivi/ray/pkg/types"
)

// refInfo is the scheduler's record of one object reference. Location,
// containment and count state live on canonical refs only; a non-canonical
// ref keeps just its target pointer.
type refInfo struct {
	id     types.ObjRef
	target types.ObjRef // alias target; == id while canonical

	contained    []types.ObjRef
	hasContained bool // contained is set at most once

	locations map[types.ObjStoreID]struct{}
	count     int64
	ready     bool
	retired   bool

	// failure carries the error message of the producing task when it
	// failed; readers of this ref fail with it.
	failure string

	// producer is the operation whose result this ref is, 0 for refs
	// reserved via PushObj.
	producer types.OperationID
}

// functionInfo tracks one registered function: its return arity and the set
// of workers able to execute it.
type functionInfo struct {
	arity   uint64
	workers map[types.WorkerID]struct{}
}

// pendingDispatch is a matched task whose worker is reserved while argument
// payloads are still being delivered to the worker's store. The task is not
// re-matched in this state.
type pendingDispatch struct {
	op      types.OperationID
	worker  types.WorkerID
	store   types.ObjStoreID
	missing map[types.ObjRef]struct{} // canonical refs not yet local
}

// deliveryKey identifies one in-flight transfer: a canonical ref headed to a
// destination store. A second request for the same key attaches to the
// existing transfer.
type deliveryKey struct {
	ref types.ObjRef
	dst types.ObjStoreID
}

// delivery tracks retry state for one transfer.
type delivery struct {
	attempts int
	tried    map[types.ObjStoreID]struct{}
}

func (s *Scheduler) newWorkerIDLocked() types.WorkerID {
	s.nextWorkerID++
	return types.WorkerID(s.nextWorkerID)
}

func (s *Scheduler) newObjStoreIDLocked() types.ObjStoreID {
	s.nextObjStoreID++
	return types.ObjStoreID(s.nextObjStoreID)
}

func (s *Scheduler) newObjRefLocked(producer types.OperationID) types.ObjRef {
	s.nextObjRef++
	ref := types.ObjRef(s.nextObjRef)
	s.refs[ref] = &refInfo{
		id:        ref,
		target:    ref,
		locations: make(map[types.ObjStoreID]struct{}),
		producer:  producer,
	}
	return ref
}

func (s *Scheduler) newOperationIDLocked() types.OperationID {
	s.nextOperationID++
	return types.OperationID(s.nextOperationID)
}

// lookupRefLocked resolves a ref id to its record, rejecting unknown and
// retired refs.
func (s *Scheduler) lookupRefLocked(r types.ObjRef) (*refInfo, error) {
	ri, ok := s.refs[r]
	if !ok {
		return nil, ErrUnknownObjRef
	}
	if ri.retired || s.refs[s.canonicalLocked(r)].retired {
		return nil, ErrRetiredObjRef
	}
	return ri, nil
}
