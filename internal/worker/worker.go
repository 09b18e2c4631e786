// Package worker implements the worker process: it registers with the
// scheduler, receives task dispatches, pulls inputs through its co-located
// object store, executes registered functions one at a time and writes
// outputs back to the local store.
package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	rayv1 "github.com/vivi/ray/api/proto/v1"
	"github.com/vivi/ray/pkg/types"
)

var log = slog.Default()

// ErrBusy is returned to the scheduler when a dispatch arrives while the
// previous task is still executing. The scheduler never does this for a
// well-behaved worker; it indicates a protocol bug.
var ErrBusy = errors.New("worker is busy")

// Worker is one task executor.
type Worker struct {
	id        types.WorkerID
	storeID   types.ObjStoreID
	addr      string
	storeAddr string

	scheduler rayv1.SchedulerClient
	store     rayv1.ObjStoreClient
	registry  *Registry

	taskCh chan *rayv1.Task
}

// New builds a worker around established clients to the scheduler and the
// co-located object store.
func New(addr, storeAddr string, scheduler rayv1.SchedulerClient, store rayv1.ObjStoreClient, registry *Registry) *Worker {
	return &Worker{
		addr:      addr,
		storeAddr: storeAddr,
		scheduler: scheduler,
		store:     store,
		registry:  registry,
		taskCh:    make(chan *rayv1.Task, 1),
	}
}

// ID returns the scheduler-assigned worker id, valid after Register.
func (w *Worker) ID() types.WorkerID { return w.id }

// Register announces the worker and its functions to the scheduler. The
// co-located store must already be registered.
func (w *Worker) Register(ctx context.Context) error {
	reply, err := w.scheduler.RegisterWorker(ctx, &rayv1.RegisterWorkerRequest{
		WorkerAddress:   w.addr,
		ObjstoreAddress: w.storeAddr,
	})
	if err != nil {
		return fmt.Errorf("worker registration failed: %w", err)
	}
	w.id = types.WorkerID(reply.WorkerId)
	w.storeID = types.ObjStoreID(reply.ObjstoreId)

	for _, name := range w.registry.Names() {
		arity, _ := w.registry.Arity(name)
		_, err := w.scheduler.RegisterFunction(ctx, &rayv1.RegisterFunctionRequest{
			WorkerId:      uint64(w.id),
			FunctionName:  name,
			NumReturnVals: arity,
		})
		if err != nil {
			return fmt.Errorf("function registration failed for %q: %w", name, err)
		}
	}
	log.Info("worker registered",
		"worker_id", uint64(w.id), "functions", len(w.registry.Names()))
	return nil
}

// enqueue hands a dispatched task to the loop. The channel holds one task;
// the scheduler dispatches at most one per idle report.
func (w *Worker) enqueue(task *rayv1.Task) error {
	select {
	case w.taskCh <- task:
		return nil
	default:
		return ErrBusy
	}
}

// Run is the worker loop: report readiness (with the previous task's
// outcome), await a dispatch, execute, repeat. It returns when ctx is done.
func (w *Worker) Run(ctx context.Context) error {
	var prev *rayv1.PreviousTaskInfo
	for {
		_, err := w.scheduler.ReadyForNewTask(ctx, &rayv1.ReadyForNewTaskRequest{
			WorkerId:     uint64(w.id),
			PreviousTask: prev,
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("readiness report failed: %w", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case task := <-w.taskCh:
			prev = w.execute(ctx, task)
		}
	}
}

// execute runs one task and reports the outcome. Panics in user functions
// are captured as task failures.
func (w *Worker) execute(ctx context.Context, task *rayv1.Task) *rayv1.PreviousTaskInfo {
	outcome := &rayv1.PreviousTaskInfo{OperationId: task.OperationId}
	if err := w.runTask(ctx, task); err != nil {
		outcome.ErrorMessage = err.Error()
		log.Warn("task execution failed",
			"operation", task.OperationId, "function", task.Name, "error", err)
		return outcome
	}
	outcome.TaskSucceeded = true
	return outcome
}

func (w *Worker) runTask(ctx context.Context, task *rayv1.Task) (err error) {
	fn, _, ok := w.registry.lookup(task.Name)
	if !ok {
		return fmt.Errorf("function %q not registered on this worker", task.Name)
	}

	args := make([][]byte, 0, len(task.Arg))
	for _, arg := range task.Arg {
		if !arg.IsRef {
			args = append(args, arg.Data)
			continue
		}
		data, _, gerr := w.fetch(ctx, types.ObjRef(arg.ObjRef))
		if gerr != nil {
			return fmt.Errorf("argument %d unavailable: %w", arg.ObjRef, gerr)
		}
		args = append(args, data)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	outputs, err := fn(ctx, &TaskContext{worker: w}, args)
	if err != nil {
		return err
	}
	if len(outputs) != len(task.Result) {
		return fmt.Errorf("function %q returned %d values, %d expected",
			task.Name, len(outputs), len(task.Result))
	}

	for i, out := range outputs {
		ref := types.ObjRef(task.Result[i])
		if err := w.putPayload(ctx, ref, out.Data, out.MetadataOffset); err != nil {
			return fmt.Errorf("storing result %d: %w", ref, err)
		}
		if len(out.Contained) > 0 {
			req := &rayv1.AddContainedObjRefsRequest{Objref: uint64(ref)}
			for _, c := range out.Contained {
				req.ContainedObjref = append(req.ContainedObjref, uint64(c))
			}
			if _, err := w.scheduler.AddContainedObjRefs(ctx, req); err != nil {
				return fmt.Errorf("recording contained refs of %d: %w", ref, err)
			}
		}
	}
	return nil
}

// fetch materializes a ref argument through the local store, letting the
// scheduler arrange a transfer when the payload lives elsewhere.
func (w *Worker) fetch(ctx context.Context, ref types.ObjRef) ([]byte, uint64, error) {
	_, err := w.scheduler.RequestObj(ctx, &rayv1.RequestObjRequest{
		WorkerId: uint64(w.id),
		Objref:   uint64(ref),
	})
	if err != nil {
		return nil, 0, err
	}
	stream, err := w.store.GetObj(ctx, &rayv1.GetObjRequest{Objref: uint64(ref)})
	if err != nil {
		return nil, 0, err
	}
	return recvPayload(stream)
}

func (w *Worker) putPayload(ctx context.Context, ref types.ObjRef, data []byte, metadataOffset uint64) error {
	_, err := w.store.PutObj(ctx, &rayv1.PutObjRequest{
		Objref:         uint64(ref),
		TotalSize:      uint64(len(data)),
		MetadataOffset: metadataOffset,
		Data:           data,
	})
	return err
}

// recvPayload reassembles a chunk stream, validating the shared header.
func recvPayload(stream rayv1.ObjStore_GetObjClient) ([]byte, uint64, error) {
	first, err := stream.Recv()
	if err != nil {
		return nil, 0, err
	}
	buf := make([]byte, 0, first.TotalSize)
	buf = append(buf, first.Data...)
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		if chunk.TotalSize != first.TotalSize || chunk.MetadataOffset != first.MetadataOffset {
			return nil, 0, errors.New("inconsistent chunk stream")
		}
		buf = append(buf, chunk.Data...)
	}
	if uint64(len(buf)) != first.TotalSize {
		return nil, 0, fmt.Errorf("received %d of %d bytes", len(buf), first.TotalSize)
	}
	return buf, first.MetadataOffset, nil
}

// TaskContext is handed to executing functions for interactions with the
// runtime beyond plain argument/result passing.
type TaskContext struct {
	worker *Worker
}

// Put uploads an extra object from inside a task and returns its fresh ref,
// typically to be reported as contained in a result.
func (tc *TaskContext) Put(ctx context.Context, data []byte, metadataOffset uint64) (types.ObjRef, error) {
	reply, err := tc.worker.scheduler.PushObj(ctx, &rayv1.PushObjRequest{
		WorkerId: uint64(tc.worker.id),
	})
	if err != nil {
		return 0, err
	}
	ref := types.ObjRef(reply.Objref)
	if err := tc.worker.putPayload(ctx, ref, data, metadataOffset); err != nil {
		return 0, err
	}
	return ref, nil
}

// Alias declares the first ref equal to the second, e.g. when a task's
// result is discovered to be a pre-existing object.
func (tc *TaskContext) Alias(ctx context.Context, alias, target types.ObjRef) error {
	_, err := tc.worker.scheduler.AliasObjRefs(ctx, &rayv1.AliasObjRefsRequest{
		AliasObjref:  uint64(alias),
		TargetObjref: uint64(target),
	})
	return err
}

// Server exposes the WorkerService gRPC surface backed by a Worker.
type Server struct {
	rayv1.UnimplementedWorkerServiceServer

	worker *Worker
}

func NewServer(w *Worker) *Server {
	return &Server{worker: w}
}

// ExecuteTask accepts one dispatched task. Execution is asynchronous: the
// RPC acks as soon as the task is handed to the loop.
func (s *Server) ExecuteTask(ctx context.Context, req *rayv1.ExecuteTaskRequest) (*rayv1.AckReply, error) {
	if req.Task == nil {
		return nil, status.Error(codes.InvalidArgument, "missing task")
	}
	if err := s.worker.enqueue(req.Task); err != nil {
		return nil, status.Error(codes.ResourceExhausted, err.Error())
	}
	return &rayv1.AckReply{}, nil
}
