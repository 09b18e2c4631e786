// Package scheduler implements the central scheduler: the authoritative
// registry of workers, object stores, functions, object references, aliases,
// reference counts and the task queue.
//
// The scheduler is logically single-threaded over its state: every
// state-mutating operation runs under one coarse mutex. RPCs to peer
// processes are never issued under the lock; locked sections return a list
// of actions which are executed on their own goroutines, and their
// completions re-enter as fresh events. This yields a serializable event
// order and deterministic placement given a fixed event ordering.
package scheduler

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/golang-collections/collections/queue"
	"github.com/google/uuid"

	"github.com/vivi/ray/internal/metrics"
	"github.com/vivi/ray/pkg/types"
)

var log = slog.Default()

// Config carries the scheduler's tunables.
type Config struct {
	// DeliveryRetryLimit bounds the number of StartDelivery attempts per
	// (objref, destination) before dependent tasks fail with a transport
	// error. Each retry picks the next candidate source store.
	DeliveryRetryLimit int
}

const defaultDeliveryRetryLimit = 3

// Scheduler is the singleton control-plane authority.
type Scheduler struct {
	mu sync.Mutex

	clusterID string
	cfg       Config

	nextWorkerID    uint64
	nextObjStoreID  uint64
	nextObjRef      uint64
	nextOperationID uint64

	workers   map[types.WorkerID]*types.Worker
	stores    map[types.ObjStoreID]*types.Store
	functions map[string]*functionInfo
	refs      map[types.ObjRef]*refInfo
	tasks     map[types.OperationID]*types.Task

	queue       *queue.Queue // FIFO of types.OperationID
	pending     map[types.OperationID]*pendingDispatch
	deliveries  map[deliveryKey]*delivery
	deferredReq map[types.ObjRef][]types.ObjStoreID
	submittedAt map[types.OperationID]time.Time

	storeCtl  StoreControl
	workerCtl WorkerControl
	metrics   *metrics.Collector

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New builds a scheduler. storeCtl and workerCtl carry the outbound RPC
// surface; tests substitute fakes.
func New(cfg Config, storeCtl StoreControl, workerCtl WorkerControl, m *metrics.Collector) *Scheduler {
	if cfg.DeliveryRetryLimit <= 0 {
		cfg.DeliveryRetryLimit = defaultDeliveryRetryLimit
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		clusterID:   uuid.NewString(),
		cfg:         cfg,
		workers:     make(map[types.WorkerID]*types.Worker),
		stores:      make(map[types.ObjStoreID]*types.Store),
		functions:   make(map[string]*functionInfo),
		refs:        make(map[types.ObjRef]*refInfo),
		tasks:       make(map[types.OperationID]*types.Task),
		queue:       queue.New(),
		pending:     make(map[types.OperationID]*pendingDispatch),
		deliveries:  make(map[deliveryKey]*delivery),
		deferredReq: make(map[types.ObjRef][]types.ObjStoreID),
		submittedAt: make(map[types.OperationID]time.Time),
		storeCtl:    storeCtl,
		workerCtl:   workerCtl,
		metrics:     m,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// ClusterID returns the instance id minted at startup.
func (s *Scheduler) ClusterID() string { return s.clusterID }

// Stop cancels outbound RPCs and waits for in-flight actions to drain.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

// ---------------------------------------------------------------------------
// Registration
// ---------------------------------------------------------------------------

// RegisterObjStore records a new object store and assigns it a fresh id.
func (s *Scheduler) RegisterObjStore(addr string) types.ObjStoreID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newObjStoreIDLocked()
	s.stores[id] = &types.Store{ID: id, Address: addr}
	log.Info("objstore registered", "objstore_id", uint64(id), "address", addr)
	return id
}

// RegisterWorker records a new worker. The worker's co-located object store
// must already be registered.
func (s *Scheduler) RegisterWorker(workerAddr, storeAddr string) (types.WorkerID, types.ObjStoreID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var storeID types.ObjStoreID
	found := false
	for id, st := range s.stores {
		if st.Address == storeAddr {
			storeID, found = id, true
			break
		}
	}
	if !found {
		return 0, 0, ErrUnknownObjStore
	}

	id := s.newWorkerIDLocked()
	s.workers[id] = &types.Worker{
		ID:      id,
		Address: workerAddr,
		Store:   storeID,
		State:   types.WorkerRegistering,
	}
	log.Info("worker registered",
		"worker_id", uint64(id), "address", workerAddr, "objstore_id", uint64(storeID))
	return id, storeID, nil
}

// RegisterFunction adds a worker to a function's eligible set. The first
// registration fixes the return arity; later registrations must agree.
func (s *Scheduler) RegisterFunction(workerID types.WorkerID, name string, arity uint64) error {
	s.mu.Lock()
	acts, err := func() ([]action, error) {
		if _, ok := s.workers[workerID]; !ok {
			return nil, ErrUnknownWorker
		}
		fn, ok := s.functions[name]
		if !ok {
			fn = &functionInfo{arity: arity, workers: make(map[types.WorkerID]struct{})}
			s.functions[name] = fn
		} else if fn.arity != arity {
			log.Warn("function arity mismatch",
				"function", name, "registered", fn.arity, "got", arity, "worker_id", uint64(workerID))
			return nil, ErrArityMismatch
		}
		fn.workers[workerID] = struct{}{}
		log.Debug("function registered", "function", name, "worker_id", uint64(workerID))
		return s.schedulePassLocked(), nil
	}()
	s.mu.Unlock()
	s.runActions(acts)
	return err
}

// ---------------------------------------------------------------------------
// Task submission and the worker protocol
// ---------------------------------------------------------------------------

// SubmitTask allocates result refs and enqueues the task. If the function is
// unknown it reports registered=false and does not enqueue; the caller may
// re-submit later. Returns immediately; execution is asynchronous.
func (s *Scheduler) SubmitTask(t *types.Task) (results []types.ObjRef, registered bool, err error) {
	s.mu.Lock()
	acts, results, registered, err := func() ([]action, []types.ObjRef, bool, error) {
		for _, arg := range t.Args {
			if !arg.IsRef {
				continue
			}
			if _, err := s.lookupRefLocked(arg.Ref); err != nil {
				return nil, nil, false, err
			}
		}
		fn, ok := s.functions[t.Function]
		if !ok {
			return nil, nil, false, nil
		}

		op := s.newOperationIDLocked()
		t.Operation = op
		t.Status = types.TaskQueued
		t.Results = make([]types.ObjRef, 0, fn.arity)
		for i := uint64(0); i < fn.arity; i++ {
			r := s.newObjRefLocked(op)
			s.refs[r].count = 1 // held by the submitter
			t.Results = append(t.Results, r)
		}
		for _, arg := range t.Args {
			if arg.IsRef {
				s.refs[s.canonicalLocked(arg.Ref)].count++ // held for the task's lifetime
			}
		}
		s.tasks[op] = t
		s.submittedAt[op] = time.Now()
		s.queue.Enqueue(op)
		s.metrics.RecordTaskSubmitted()
		log.Debug("task submitted",
			"operation", uint64(op), "function", t.Function, "results", len(t.Results))
		return s.schedulePassLocked(), t.Results, true, nil
	}()
	s.updateStatsLocked()
	s.mu.Unlock()
	s.runActions(acts)
	return results, registered, err
}

// PushObj reserves a fresh canonical ref for an object a worker or driver
// will imminently upload to its local store.
func (s *Scheduler) PushObj(workerID types.WorkerID) (types.ObjRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.workers[workerID]; !ok {
		return 0, ErrUnknownWorker
	}
	r := s.newObjRefLocked(0)
	s.refs[r].count = 1
	return r, nil
}

// RequestObj ensures the canonical of objref is (or becomes) present on the
// worker's local store. Completion is signaled asynchronously by ObjReady.
func (s *Scheduler) RequestObj(workerID types.WorkerID, ref types.ObjRef) error {
	s.mu.Lock()
	acts, err := func() ([]action, error) {
		w, ok := s.workers[workerID]
		if !ok {
			return nil, ErrUnknownWorker
		}
		if _, err := s.lookupRefLocked(ref); err != nil {
			return nil, err
		}
		c := s.canonicalLocked(ref)
		ci := s.refs[c]
		if ci.failure != "" {
			return nil, ErrTaskFailed
		}
		if !ci.ready {
			// Deferred until the payload exists somewhere.
			s.deferredReq[c] = append(s.deferredReq[c], w.Store)
			return nil, nil
		}
		return s.startDeliveryLocked(c, w.Store), nil
	}()
	s.mu.Unlock()
	s.runActions(acts)
	return err
}

// AliasObjRefs records alias -> target, transferring the alias's count to
// the effective canonical and notifying stores.
func (s *Scheduler) AliasObjRefs(alias, target types.ObjRef) error {
	s.mu.Lock()
	acts, err := s.aliasLocked(alias, target)
	if err == nil {
		acts = append(acts, s.schedulePassLocked()...)
	}
	s.mu.Unlock()
	s.runActions(acts)
	return err
}

// ObjReady marks the canonical of objref finalized on the given store and
// unblocks anything waiting on it.
func (s *Scheduler) ObjReady(ref types.ObjRef, storeID types.ObjStoreID) error {
	s.mu.Lock()
	acts, err := s.objReadyLocked(ref, storeID)
	s.updateStatsLocked()
	s.mu.Unlock()
	s.runActions(acts)
	return err
}

func (s *Scheduler) objReadyLocked(ref types.ObjRef, storeID types.ObjStoreID) ([]action, error) {
	ri, ok := s.refs[ref]
	if !ok {
		return nil, ErrUnknownObjRef
	}
	if ri.retired {
		return nil, ErrProtocolViolation
	}
	if _, ok := s.stores[storeID]; !ok {
		return nil, ErrUnknownObjStore
	}
	c := s.canonicalLocked(ref)
	ci := s.refs[c]
	if ci.retired {
		return nil, ErrProtocolViolation
	}
	ci.ready = true
	ci.locations[storeID] = struct{}{}
	s.metrics.RecordObjectReady()
	log.Debug("object ready", "objref", uint64(ref), "objstore_id", uint64(storeID))

	var acts []action
	acts = append(acts, s.serveDeferredRequestsLocked(c)...)
	acts = append(acts, s.serveDeferredRequestsLocked(ref)...)

	// A matched task waiting on this payload at this store may now be
	// dispatchable.
	for op, p := range s.pending {
		if p.store != storeID {
			continue
		}
		if _, waiting := p.missing[c]; waiting {
			delete(p.missing, c)
			if len(p.missing) == 0 {
				acts = append(acts, s.dispatchLocked(op)...)
			}
		}
	}

	if ci.count == 0 {
		acts = append(acts, s.maybeDeallocateLocked(c)...)
	}
	acts = append(acts, s.schedulePassLocked()...)
	return acts, nil
}

// IncrementRefCount adjusts counts upward, one per occurrence.
func (s *Scheduler) IncrementRefCount(refs []types.ObjRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range refs {
		if err := s.incrementLocked(r); err != nil {
			return err
		}
	}
	return nil
}

// DecrementRefCount adjusts counts downward, one per occurrence. A count
// reaching zero schedules deallocation, which may cascade through contained
// refs.
func (s *Scheduler) DecrementRefCount(refs []types.ObjRef) error {
	s.mu.Lock()
	var acts []action
	var err error
	for _, r := range refs {
		var more []action
		more, err = s.decrementLocked(r)
		acts = append(acts, more...)
		if err != nil {
			break
		}
	}
	s.mu.Unlock()
	s.runActions(acts)
	return err
}

// AddContainedObjRefs records the refs nested inside a container payload and
// takes one hold per contained ref on the container's behalf. Containment is
// set at most once.
func (s *Scheduler) AddContainedObjRefs(ref types.ObjRef, contained []types.ObjRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookupRefLocked(ref); err != nil {
		return err
	}
	ci := s.refs[s.canonicalLocked(ref)]
	if ci.hasContained {
		return ErrProtocolViolation
	}
	for _, r := range contained {
		if _, err := s.lookupRefLocked(r); err != nil {
			return err
		}
	}
	ci.contained = append([]types.ObjRef(nil), contained...)
	ci.hasContained = true
	for _, r := range contained {
		s.refs[s.canonicalLocked(r)].count++
	}
	return nil
}

// ReadyForNewTask records the previous task's outcome (if any) and marks the
// worker idle, triggering a scheduling pass.
func (s *Scheduler) ReadyForNewTask(workerID types.WorkerID, prev *types.PreviousTaskInfo) error {
	s.mu.Lock()
	acts, err := func() ([]action, error) {
		w, ok := s.workers[workerID]
		if !ok {
			return nil, ErrUnknownWorker
		}

		var acts []action
		if prev != nil {
			t, ok := s.tasks[prev.Operation]
			if !ok || t.Worker != workerID || t.Status != types.TaskRunning {
				return nil, ErrProtocolViolation
			}
			if prev.Succeeded {
				t.Status = types.TaskSucceeded
				if at, ok := s.submittedAt[t.Operation]; ok {
					s.metrics.RecordTaskCompleted(time.Since(at).Seconds())
				}
				log.Debug("task succeeded", "operation", uint64(t.Operation))
			} else {
				t.Status = types.TaskFailed
				t.Error = prev.Error
				s.metrics.RecordTaskFailed()
				acts = append(acts, s.failResultsLocked(t, prev.Error)...)
				log.Warn("task failed",
					"operation", uint64(t.Operation), "error", prev.Error)
			}
			delete(s.submittedAt, t.Operation)
			acts = append(acts, s.releaseTaskHoldsLocked(t)...)
		}

		w.State = types.WorkerIdle
		w.Current = 0
		return append(acts, s.schedulePassLocked()...), nil
	}()
	s.updateStatsLocked()
	s.mu.Unlock()
	s.runActions(acts)
	return err
}

// ---------------------------------------------------------------------------
// Matching and dispatch
// ---------------------------------------------------------------------------

// schedulePassLocked scans the queue in FIFO order and matches runnable
// tasks to idle eligible workers. Matching reserves the worker and starts
// argument deliveries; dispatch fires only once every argument is local.
func (s *Scheduler) schedulePassLocked() []action {
	var acts []action
	n := s.queue.Len()
	for i := 0; i < n; i++ {
		op := s.queue.Dequeue().(types.OperationID)
		t := s.tasks[op]
		w, ok := s.matchLocked(t)
		if !ok {
			s.queue.Enqueue(op)
			continue
		}

		w.State = types.WorkerBusy
		w.Current = op
		t.Worker = w.ID

		missing := make(map[types.ObjRef]struct{})
		for _, arg := range t.Args {
			if !arg.IsRef {
				continue
			}
			c := s.canonicalLocked(arg.Ref)
			if _, local := s.refs[c].locations[w.Store]; !local {
				missing[c] = struct{}{}
			}
		}
		if len(missing) == 0 {
			s.pending[op] = &pendingDispatch{op: op, worker: w.ID, store: w.Store}
			acts = append(acts, s.dispatchLocked(op)...)
			continue
		}
		s.pending[op] = &pendingDispatch{op: op, worker: w.ID, store: w.Store, missing: missing}
		for c := range missing {
			acts = append(acts, s.startDeliveryLocked(c, w.Store)...)
		}
	}
	return acts
}

// matchLocked finds the best idle eligible worker for a queued task, or
// reports no match. Tie-break: most argument payloads already co-located,
// then lowest worker id.
func (s *Scheduler) matchLocked(t *types.Task) (*types.Worker, bool) {
	fn, ok := s.functions[t.Function]
	if !ok {
		return nil, false
	}
	for _, arg := range t.Args {
		if !arg.IsRef {
			continue
		}
		c := s.canonicalLocked(arg.Ref)
		if !s.refs[c].ready {
			return nil, false
		}
	}

	var best *types.Worker
	bestLocal := -1
	for wid := range fn.workers {
		w := s.workers[wid]
		if w == nil || w.State != types.WorkerIdle {
			continue
		}
		local := 0
		for _, arg := range t.Args {
			if !arg.IsRef {
				continue
			}
			c := s.canonicalLocked(arg.Ref)
			if _, ok := s.refs[c].locations[w.Store]; ok {
				local++
			}
		}
		if local > bestLocal || (local == bestLocal && best != nil && w.ID < best.ID) {
			best, bestLocal = w, local
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// dispatchLocked moves a matched task with all arguments local to running
// and emits the ExecuteTask action.
func (s *Scheduler) dispatchLocked(op types.OperationID) []action {
	p := s.pending[op]
	if p == nil {
		return nil
	}
	delete(s.pending, op)

	t := s.tasks[op]
	w := s.workers[p.worker]
	t.Status = types.TaskRunning
	s.metrics.RecordTaskDispatched()
	log.Debug("task dispatched",
		"operation", uint64(op), "function", t.Function, "worker_id", uint64(w.ID))
	return []action{dispatchAction{addr: w.Address, op: op, task: taskToWire(t)}}
}

// dispatchFailed is the completion event for an ExecuteTask RPC that could
// not be delivered.
func (s *Scheduler) dispatchFailed(op types.OperationID, rpcErr error) {
	s.mu.Lock()
	acts := func() []action {
		t, ok := s.tasks[op]
		if !ok || t.Status != types.TaskRunning {
			return nil
		}
		msg := "task dispatch failed: " + rpcErr.Error()
		return s.failTaskLocked(t, msg)
	}()
	s.updateStatsLocked()
	s.mu.Unlock()
	s.runActions(acts)
}

// failTaskLocked transitions an assigned task to failed, frees its worker
// and propagates the failure to its result refs.
func (s *Scheduler) failTaskLocked(t *types.Task, msg string) []action {
	t.Status = types.TaskFailed
	t.Error = msg
	delete(s.pending, t.Operation)
	delete(s.submittedAt, t.Operation)
	s.metrics.RecordTaskFailed()

	if w, ok := s.workers[t.Worker]; ok && w.Current == t.Operation {
		w.State = types.WorkerIdle
		w.Current = 0
	}
	acts := s.failResultsLocked(t, msg)
	acts = append(acts, s.releaseTaskHoldsLocked(t)...)
	return append(acts, s.schedulePassLocked()...)
}

// failResultsLocked records a task failure on every not-yet-ready result ref
// and broadcasts it to the stores so readers fail with the captured message.
func (s *Scheduler) failResultsLocked(t *types.Task, msg string) []action {
	var acts []action
	for _, r := range t.Results {
		ci := s.refs[s.canonicalLocked(r)]
		if ci.ready || ci.retired {
			continue
		}
		ci.failure = msg
		for _, st := range s.stores {
			acts = append(acts, notifyFailureAction{addr: st.Address, ref: r, msg: msg})
		}
		if ci.count == 0 {
			acts = append(acts, s.maybeDeallocateLocked(ci.id)...)
		}
	}
	return acts
}

// ---------------------------------------------------------------------------
// Deliveries
// ---------------------------------------------------------------------------

// startDeliveryLocked arranges a transfer of canonical ref c to dst. A
// transfer already in flight for the same pair absorbs the request.
func (s *Scheduler) startDeliveryLocked(c types.ObjRef, dst types.ObjStoreID) []action {
	ci := s.refs[c]
	if _, local := ci.locations[dst]; local {
		return nil
	}
	key := deliveryKey{ref: c, dst: dst}
	if _, inflight := s.deliveries[key]; inflight {
		return nil
	}
	d := &delivery{tried: make(map[types.ObjStoreID]struct{})}
	src, ok := s.pickSourceLocked(c, d)
	if !ok {
		log.Warn("no source store for delivery", "objref", uint64(c), "dst", uint64(dst))
		return nil
	}
	s.deliveries[key] = d
	s.metrics.RecordDeliveryStarted()
	return []action{deliverAction{
		key:     key,
		src:     src,
		dstAddr: s.stores[dst].Address,
		srcAddr: s.stores[src].Address,
	}}
}

// pickSourceLocked chooses the lowest-id location not yet tried.
func (s *Scheduler) pickSourceLocked(c types.ObjRef, d *delivery) (types.ObjStoreID, bool) {
	ids := make([]types.ObjStoreID, 0, len(s.refs[c].locations))
	for id := range s.refs[c].locations {
		if _, tried := d.tried[id]; !tried {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return 0, false
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids[0], true
}

// deliveryDone is the completion event for a StartDelivery RPC.
func (s *Scheduler) deliveryDone(key deliveryKey, src types.ObjStoreID, rpcErr error) {
	s.mu.Lock()
	acts := func() []action {
		d, ok := s.deliveries[key]
		if !ok {
			return nil
		}
		if rpcErr == nil {
			delete(s.deliveries, key)
			s.metrics.RecordDeliveryCompleted()
			return nil
		}

		d.attempts++
		d.tried[src] = struct{}{}
		log.Warn("delivery attempt failed",
			"objref", uint64(key.ref), "dst", uint64(key.dst),
			"src", uint64(src), "attempt", d.attempts, "error", rpcErr)

		if d.attempts < s.cfg.DeliveryRetryLimit {
			if next, ok := s.pickSourceLocked(key.ref, d); ok {
				return []action{deliverAction{
					key:     key,
					src:     next,
					dstAddr: s.stores[key.dst].Address,
					srcAddr: s.stores[next].Address,
				}}
			}
		}

		// Out of sources or attempts: the transfer failed for good.
		delete(s.deliveries, key)
		s.metrics.RecordDeliveryFailed()
		var acts []action
		for op, p := range s.pending {
			if p.store != key.dst {
				continue
			}
			if _, waiting := p.missing[key.ref]; waiting {
				msg := "object transfer failed: " + rpcErr.Error()
				acts = append(acts, s.failTaskLocked(s.tasks[op], msg)...)
			}
		}
		return acts
	}()
	s.updateStatsLocked()
	s.mu.Unlock()
	s.runActions(acts)
}

// serveDeferredRequestsLocked starts deliveries recorded by RequestObj calls
// that arrived before the payload existed.
func (s *Scheduler) serveDeferredRequestsLocked(r types.ObjRef) []action {
	dsts, ok := s.deferredReq[r]
	if !ok {
		return nil
	}
	delete(s.deferredReq, r)
	c := s.canonicalLocked(r)
	var acts []action
	for _, dst := range dsts {
		acts = append(acts, s.startDeliveryLocked(c, dst)...)
	}
	return acts
}

func (s *Scheduler) updateStatsLocked() {
	idle := 0
	for _, w := range s.workers {
		if w.State == types.WorkerIdle {
			idle++
		}
	}
	s.metrics.UpdateSchedulerStats(s.queue.Len(), idle)
}
