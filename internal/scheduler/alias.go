package scheduler

import (
	"github.com/vivi/ray/pkg/types"
)

// canonicalLocked follows the alias chain from r to its terminal ref and
// compresses the path so every visited node points at the terminal directly.
// Chains are acyclic by construction (cycle check on insertion), so this
// always terminates.
func (s *Scheduler) canonicalLocked(r types.ObjRef) types.ObjRef {
	root := r
	for {
		ri := s.refs[root]
		if ri == nil || ri.target == root {
			break
		}
		root = ri.target
	}
	for r != root {
		ri := s.refs[r]
		next := ri.target
		ri.target = root
		r = next
	}
	return root
}

// aliasLocked records alias -> target and returns the actions needed to
// propagate the aliasing to object stores.
func (s *Scheduler) aliasLocked(alias, target types.ObjRef) ([]action, error) {
	ai, ok := s.refs[alias]
	if !ok {
		return nil, ErrUnknownObjRef
	}
	if _, ok := s.refs[target]; !ok {
		return nil, ErrUnknownObjRef
	}
	if ai.retired {
		return nil, ErrRetiredObjRef
	}

	canonical := s.canonicalLocked(target)
	ci := s.refs[canonical]
	if ci.retired {
		return nil, ErrRetiredObjRef
	}

	if ai.target != alias {
		// Already aliased. Re-asserting the same relation is a no-op;
		// re-targeting is rejected.
		if s.canonicalLocked(alias) == canonical {
			return nil, nil
		}
		return nil, ErrProtocolViolation
	}
	if canonical == alias {
		return nil, ErrAliasCycle
	}

	ai.target = canonical

	// The alias holds no independent count after the call.
	ci.count += ai.count
	ai.count = 0

	// A store may have reported the payload under the alias name before the
	// aliasing was recorded; fold those locations into the canonical.
	for st := range ai.locations {
		ci.locations[st] = struct{}{}
		if ai.ready {
			ci.ready = true
		}
	}
	ai.locations = nil

	// Notify every store holding either name (locations(alias) was just
	// merged, so the canonical's set covers the union).
	var acts []action
	for st := range ci.locations {
		if store, ok := s.stores[st]; ok {
			acts = append(acts, notifyAliasAction{addr: store.Address, alias: alias, canonical: canonical})
		}
	}

	// Readiness is inherited from the canonical: anything blocked on the
	// alias may now be schedulable, and deferred requests can be served.
	if ci.ready {
		acts = append(acts, s.serveDeferredRequestsLocked(alias)...)
		if ci.count == 0 {
			acts = append(acts, s.maybeDeallocateLocked(canonical)...)
		}
	}
	return acts, nil
}
