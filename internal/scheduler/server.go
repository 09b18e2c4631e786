package scheduler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	rayv1 "github.com/vivi/ray/api/proto/v1"
	"github.com/vivi/ray/pkg/types"
)

// Server exposes the Scheduler gRPC service backed by a Scheduler instance.
type Server struct {
	rayv1.UnimplementedSchedulerServer

	sched *Scheduler
}

func NewServer(sched *Scheduler) *Server {
	return &Server{sched: sched}
}

// rpcError maps domain errors onto gRPC status codes.
func rpcError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUnknownWorker),
		errors.Is(err, ErrUnknownObjStore),
		errors.Is(err, ErrUnknownObjRef):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrRetiredObjRef),
		errors.Is(err, ErrArityMismatch),
		errors.Is(err, ErrTaskFailed):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ErrAliasCycle),
		errors.Is(err, ErrProtocolViolation):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func (s *Server) RegisterWorker(ctx context.Context, req *rayv1.RegisterWorkerRequest) (*rayv1.RegisterWorkerReply, error) {
	workerID, storeID, err := s.sched.RegisterWorker(req.WorkerAddress, req.ObjstoreAddress)
	if err != nil {
		return nil, rpcError(err)
	}
	return &rayv1.RegisterWorkerReply{
		WorkerId:   uint64(workerID),
		ObjstoreId: uint64(storeID),
	}, nil
}

func (s *Server) RegisterObjStore(ctx context.Context, req *rayv1.RegisterObjStoreRequest) (*rayv1.RegisterObjStoreReply, error) {
	id := s.sched.RegisterObjStore(req.ObjstoreAddress)
	return &rayv1.RegisterObjStoreReply{ObjstoreId: uint64(id)}, nil
}

func (s *Server) RegisterFunction(ctx context.Context, req *rayv1.RegisterFunctionRequest) (*rayv1.AckReply, error) {
	err := s.sched.RegisterFunction(types.WorkerID(req.WorkerId), req.FunctionName, req.NumReturnVals)
	if err != nil {
		return nil, rpcError(err)
	}
	return &rayv1.AckReply{}, nil
}

func (s *Server) SubmitTask(ctx context.Context, req *rayv1.SubmitTaskRequest) (*rayv1.SubmitTaskReply, error) {
	if req.Task == nil {
		return nil, status.Error(codes.InvalidArgument, "missing task")
	}
	results, registered, err := s.sched.SubmitTask(taskFromWire(req.Task))
	if err != nil {
		return nil, rpcError(err)
	}
	reply := &rayv1.SubmitTaskReply{FunctionRegistered: registered}
	for _, r := range results {
		reply.Result = append(reply.Result, uint64(r))
	}
	return reply, nil
}

func (s *Server) PushObj(ctx context.Context, req *rayv1.PushObjRequest) (*rayv1.PushObjReply, error) {
	ref, err := s.sched.PushObj(types.WorkerID(req.WorkerId))
	if err != nil {
		return nil, rpcError(err)
	}
	return &rayv1.PushObjReply{Objref: uint64(ref)}, nil
}

func (s *Server) RequestObj(ctx context.Context, req *rayv1.RequestObjRequest) (*rayv1.AckReply, error) {
	err := s.sched.RequestObj(types.WorkerID(req.WorkerId), types.ObjRef(req.Objref))
	if err != nil {
		return nil, rpcError(err)
	}
	return &rayv1.AckReply{}, nil
}

func (s *Server) AliasObjRefs(ctx context.Context, req *rayv1.AliasObjRefsRequest) (*rayv1.AckReply, error) {
	err := s.sched.AliasObjRefs(types.ObjRef(req.AliasObjref), types.ObjRef(req.TargetObjref))
	if err != nil {
		return nil, rpcError(err)
	}
	return &rayv1.AckReply{}, nil
}

func (s *Server) ObjReady(ctx context.Context, req *rayv1.ObjReadyRequest) (*rayv1.AckReply, error) {
	err := s.sched.ObjReady(types.ObjRef(req.Objref), types.ObjStoreID(req.ObjstoreId))
	if err != nil {
		return nil, rpcError(err)
	}
	return &rayv1.AckReply{}, nil
}

func (s *Server) IncrementCount(ctx context.Context, req *rayv1.ChangeCountRequest) (*rayv1.AckReply, error) {
	err := s.sched.IncrementRefCount([]types.ObjRef{types.ObjRef(req.Objref)})
	if err != nil {
		return nil, rpcError(err)
	}
	return &rayv1.AckReply{}, nil
}

func (s *Server) DecrementCount(ctx context.Context, req *rayv1.ChangeCountRequest) (*rayv1.AckReply, error) {
	err := s.sched.DecrementRefCount([]types.ObjRef{types.ObjRef(req.Objref)})
	if err != nil {
		return nil, rpcError(err)
	}
	return &rayv1.AckReply{}, nil
}

func (s *Server) IncrementRefCount(ctx context.Context, req *rayv1.ChangeRefCountRequest) (*rayv1.AckReply, error) {
	err := s.sched.IncrementRefCount(refsFromWire(req.Objref))
	if err != nil {
		return nil, rpcError(err)
	}
	return &rayv1.AckReply{}, nil
}

func (s *Server) DecrementRefCount(ctx context.Context, req *rayv1.ChangeRefCountRequest) (*rayv1.AckReply, error) {
	err := s.sched.DecrementRefCount(refsFromWire(req.Objref))
	if err != nil {
		return nil, rpcError(err)
	}
	return &rayv1.AckReply{}, nil
}

func (s *Server) AddContainedObjRefs(ctx context.Context, req *rayv1.AddContainedObjRefsRequest) (*rayv1.AckReply, error) {
	err := s.sched.AddContainedObjRefs(types.ObjRef(req.Objref), refsFromWire(req.ContainedObjref))
	if err != nil {
		return nil, rpcError(err)
	}
	return &rayv1.AckReply{}, nil
}

func (s *Server) ReadyForNewTask(ctx context.Context, req *rayv1.ReadyForNewTaskRequest) (*rayv1.AckReply, error) {
	var prev *types.PreviousTaskInfo
	if req.PreviousTask != nil {
		prev = &types.PreviousTaskInfo{
			Operation: types.OperationID(req.PreviousTask.OperationId),
			Succeeded: req.PreviousTask.TaskSucceeded,
			Error:     req.PreviousTask.ErrorMessage,
		}
	}
	err := s.sched.ReadyForNewTask(types.WorkerID(req.WorkerId), prev)
	if err != nil {
		return nil, rpcError(err)
	}
	return &rayv1.AckReply{}, nil
}

func (s *Server) SchedulerInfo(ctx context.Context, req *rayv1.SchedulerInfoRequest) (*rayv1.SchedulerInfoReply, error) {
	snap := s.sched.Info()
	reply := &rayv1.SchedulerInfoReply{ClusterId: snap.ClusterID}
	for _, op := range snap.Queued {
		reply.Operationid = append(reply.Operationid, uint64(op))
	}
	for _, w := range snap.IdleWorkers {
		reply.AvailWorker = append(reply.AvailWorker, uint64(w))
	}
	for ref, target := range snap.Targets {
		reply.Target = append(reply.Target, &rayv1.TargetEntry{
			Objref: uint64(ref), Target: uint64(target),
		})
	}
	for ref, count := range snap.Counts {
		reply.ReferenceCount = append(reply.ReferenceCount, &rayv1.RefCountEntry{
			Objref: uint64(ref), Count: count,
		})
	}
	for ref, locs := range snap.Locations {
		entry := &rayv1.LocationEntry{Objref: uint64(ref)}
		for _, st := range locs {
			entry.ObjstoreId = append(entry.ObjstoreId, uint64(st))
		}
		reply.Location = append(reply.Location, entry)
	}
	for name, fn := range snap.Functions {
		entry := &rayv1.FunctionEntry{Name: name, NumReturnVals: fn.Arity}
		for _, w := range fn.Workers {
			entry.WorkerId = append(entry.WorkerId, uint64(w))
		}
		reply.Function = append(reply.Function, entry)
	}
	return reply, nil
}

func (s *Server) TaskInfo(ctx context.Context, req *rayv1.TaskInfoRequest) (*rayv1.TaskInfoReply, error) {
	reply := &rayv1.TaskInfoReply{}
	for _, t := range s.sched.Tasks() {
		reply.Task = append(reply.Task, &rayv1.TaskStatusEntry{
			OperationId:  uint64(t.Operation),
			FunctionName: t.Function,
			Status:       string(t.Status),
			WorkerId:     uint64(t.Worker),
			ErrorMessage: t.Error,
		})
	}
	return reply, nil
}

func refsFromWire(in []uint64) []types.ObjRef {
	out := make([]types.ObjRef, 0, len(in))
	for _, r := range in {
		out = append(out, types.ObjRef(r))
	}
	return out
}
