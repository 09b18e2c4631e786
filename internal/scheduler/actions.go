package scheduler

import (
	"context"
	"time"

	rayv1 "github.com/vivi/ray/api/proto/v1"
	"github.com/vivi/ray/pkg/types"
)

// controlRPCTimeout bounds fire-and-forget control RPCs to stores. Delivery
// RPCs carry payloads and run without a deadline; the retry budget bounds
// them instead.
const controlRPCTimeout = 10 * time.Second

// An action is an outbound RPC decided under the scheduler lock and executed
// off it. Completions re-enter the scheduler as events.
type action interface {
	run(s *Scheduler)
}

func (s *Scheduler) runActions(acts []action) {
	for _, a := range acts {
		if s.ctx.Err() != nil {
			return // shutting down
		}
		s.wg.Add(1)
		go func(a action) {
			defer s.wg.Done()
			a.run(s)
		}(a)
	}
}

// deliverAction asks the destination store to pull one payload from a source
// store. The RPC returns once the transfer finished (or failed); the store
// reports readiness to the scheduler on its own.
type deliverAction struct {
	key     deliveryKey
	src     types.ObjStoreID
	dstAddr string
	srcAddr string
}

func (a deliverAction) run(s *Scheduler) {
	err := s.storeCtl.StartDelivery(s.ctx, a.dstAddr, a.srcAddr, a.key.ref)
	s.deliveryDone(a.key, a.src, err)
}

// dispatchAction sends ExecuteTask to a worker.
type dispatchAction struct {
	addr string
	op   types.OperationID
	task *rayv1.Task
}

func (a dispatchAction) run(s *Scheduler) {
	ctx, cancel := context.WithTimeout(s.ctx, controlRPCTimeout)
	defer cancel()
	if err := s.workerCtl.ExecuteTask(ctx, a.addr, a.task); err != nil {
		s.dispatchFailed(a.op, err)
	}
}

// notifyAliasAction tells one store that alias resolves to canonical.
type notifyAliasAction struct {
	addr      string
	alias     types.ObjRef
	canonical types.ObjRef
}

func (a notifyAliasAction) run(s *Scheduler) {
	ctx, cancel := context.WithTimeout(s.ctx, controlRPCTimeout)
	defer cancel()
	if err := s.storeCtl.NotifyAlias(ctx, a.addr, a.alias, a.canonical); err != nil {
		log.Warn("alias notification failed",
			"store", a.addr, "alias", uint64(a.alias), "error", err)
	}
}

// notifyFailureAction tells one store that readers of ref must fail.
type notifyFailureAction struct {
	addr string
	ref  types.ObjRef
	msg  string
}

func (a notifyFailureAction) run(s *Scheduler) {
	ctx, cancel := context.WithTimeout(s.ctx, controlRPCTimeout)
	defer cancel()
	if err := s.storeCtl.NotifyFailure(ctx, a.addr, a.ref, a.msg); err != nil {
		log.Warn("failure notification failed",
			"store", a.addr, "objref", uint64(a.ref), "error", err)
	}
}

// deallocateAction frees one payload on one store. Stores treat it
// idempotently, so delivery is fire-and-forget.
type deallocateAction struct {
	addr string
	ref  types.ObjRef
}

func (a deallocateAction) run(s *Scheduler) {
	ctx, cancel := context.WithTimeout(s.ctx, controlRPCTimeout)
	defer cancel()
	if err := s.storeCtl.DeallocateObject(ctx, a.addr, a.ref); err != nil {
		log.Warn("deallocation failed",
			"store", a.addr, "objref", uint64(a.ref), "error", err)
	}
}
