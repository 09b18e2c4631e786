package scheduler

import (
	"github.com/vivi/ray/pkg/types"
)

// incrementLocked bumps the count of the canonical of r.
func (s *Scheduler) incrementLocked(r types.ObjRef) error {
	if _, err := s.lookupRefLocked(r); err != nil {
		return err
	}
	s.refs[s.canonicalLocked(r)].count++
	return nil
}

// decrementLocked drops the count of the canonical of r and returns the
// deallocation actions if it reached zero.
func (s *Scheduler) decrementLocked(r types.ObjRef) ([]action, error) {
	if _, err := s.lookupRefLocked(r); err != nil {
		return nil, err
	}
	c := s.canonicalLocked(r)
	ci := s.refs[c]
	if ci.count == 0 {
		return nil, ErrProtocolViolation
	}
	ci.count--
	if ci.count == 0 {
		return s.maybeDeallocateLocked(c), nil
	}
	return nil, nil
}

// maybeDeallocateLocked retires a zero-count canonical ref if it is safe to
// do so. A ref that is not yet ready is held until it becomes ready or its
// producing task has failed (there is then provably nothing to free).
// Contained refs are released afterwards, which
// may cascade.
func (s *Scheduler) maybeDeallocateLocked(c types.ObjRef) []action {
	ci := s.refs[c]
	if ci.retired || ci.count != 0 {
		return nil
	}
	if !ci.ready {
		terminal := ci.failure != ""
		if ci.producer != 0 {
			if t, ok := s.tasks[ci.producer]; ok {
				terminal = terminal || t.Status == types.TaskFailed
			}
		}
		if !terminal {
			return nil // deferred until readiness
		}
	}

	var acts []action
	for st := range ci.locations {
		if store, ok := s.stores[st]; ok {
			acts = append(acts, deallocateAction{addr: store.Address, ref: c})
		}
	}
	ci.retired = true
	ci.ready = false
	ci.locations = make(map[types.ObjStoreID]struct{})
	s.metrics.RecordObjectRetired()

	for _, contained := range ci.contained {
		if _, err := s.lookupRefLocked(contained); err != nil {
			log.Warn("contained ref unreleasable", "objref", uint64(contained), "error", err)
			continue
		}
		more, err := s.decrementLocked(contained)
		if err != nil {
			log.Warn("contained ref decrement failed", "objref", uint64(contained), "error", err)
			continue
		}
		acts = append(acts, more...)
	}
	return acts
}

// releaseTaskHoldsLocked drops the per-argument holds a task acquired at
// submission; duplicates act per occurrence.
func (s *Scheduler) releaseTaskHoldsLocked(t *types.Task) []action {
	var acts []action
	for _, arg := range t.Args {
		if !arg.IsRef {
			continue
		}
		more, err := s.decrementLocked(arg.Ref)
		if err != nil {
			log.Warn("task argument hold release failed",
				"operation", uint64(t.Operation), "objref", uint64(arg.Ref), "error", err)
			continue
		}
		acts = append(acts, more...)
	}
	return acts
}
