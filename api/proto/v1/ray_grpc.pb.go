package rayv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	Scheduler_RegisterWorker_FullMethodName      = "/ray.v1.Scheduler/RegisterWorker"
	Scheduler_RegisterObjStore_FullMethodName    = "/ray.v1.Scheduler/RegisterObjStore"
	Scheduler_RegisterFunction_FullMethodName    = "/ray.v1.Scheduler/RegisterFunction"
	Scheduler_SubmitTask_FullMethodName          = "/ray.v1.Scheduler/SubmitTask"
	Scheduler_PushObj_FullMethodName             = "/ray.v1.Scheduler/PushObj"
	Scheduler_RequestObj_FullMethodName          = "/ray.v1.Scheduler/RequestObj"
	Scheduler_AliasObjRefs_FullMethodName        = "/ray.v1.Scheduler/AliasObjRefs"
	Scheduler_ObjReady_FullMethodName            = "/ray.v1.Scheduler/ObjReady"
	Scheduler_IncrementCount_FullMethodName      = "/ray.v1.Scheduler/IncrementCount"
	Scheduler_DecrementCount_FullMethodName      = "/ray.v1.Scheduler/DecrementCount"
	Scheduler_IncrementRefCount_FullMethodName   = "/ray.v1.Scheduler/IncrementRefCount"
	Scheduler_DecrementRefCount_FullMethodName   = "/ray.v1.Scheduler/DecrementRefCount"
	Scheduler_AddContainedObjRefs_FullMethodName = "/ray.v1.Scheduler/AddContainedObjRefs"
	Scheduler_ReadyForNewTask_FullMethodName     = "/ray.v1.Scheduler/ReadyForNewTask"
	Scheduler_SchedulerInfo_FullMethodName       = "/ray.v1.Scheduler/SchedulerInfo"
	Scheduler_TaskInfo_FullMethodName            = "/ray.v1.Scheduler/TaskInfo"

	ObjStore_StartDelivery_FullMethodName    = "/ray.v1.ObjStore/StartDelivery"
	ObjStore_StreamObjTo_FullMethodName      = "/ray.v1.ObjStore/StreamObjTo"
	ObjStore_NotifyAlias_FullMethodName      = "/ray.v1.ObjStore/NotifyAlias"
	ObjStore_NotifyFailure_FullMethodName    = "/ray.v1.ObjStore/NotifyFailure"
	ObjStore_DeallocateObject_FullMethodName = "/ray.v1.ObjStore/DeallocateObject"
	ObjStore_PutObj_FullMethodName           = "/ray.v1.ObjStore/PutObj"
	ObjStore_GetObj_FullMethodName           = "/ray.v1.ObjStore/GetObj"
	ObjStore_ObjStoreInfo_FullMethodName     = "/ray.v1.ObjStore/ObjStoreInfo"

	WorkerService_ExecuteTask_FullMethodName = "/ray.v1.WorkerService/ExecuteTask"
)

// ---------------------------------------------------------------------------
// Scheduler service
// ---------------------------------------------------------------------------

// SchedulerClient is the client API for the Scheduler service.
type SchedulerClient interface {
	RegisterWorker(ctx context.Context, in *RegisterWorkerRequest, opts ...grpc.CallOption) (*RegisterWorkerReply, error)
	RegisterObjStore(ctx context.Context, in *RegisterObjStoreRequest, opts ...grpc.CallOption) (*RegisterObjStoreReply, error)
	RegisterFunction(ctx context.Context, in *RegisterFunctionRequest, opts ...grpc.CallOption) (*AckReply, error)
	SubmitTask(ctx context.Context, in *SubmitTaskRequest, opts ...grpc.CallOption) (*SubmitTaskReply, error)
	PushObj(ctx context.Context, in *PushObjRequest, opts ...grpc.CallOption) (*PushObjReply, error)
	RequestObj(ctx context.Context, in *RequestObjRequest, opts ...grpc.CallOption) (*AckReply, error)
	AliasObjRefs(ctx context.Context, in *AliasObjRefsRequest, opts ...grpc.CallOption) (*AckReply, error)
	ObjReady(ctx context.Context, in *ObjReadyRequest, opts ...grpc.CallOption) (*AckReply, error)
	IncrementCount(ctx context.Context, in *ChangeCountRequest, opts ...grpc.CallOption) (*AckReply, error)
	DecrementCount(ctx context.Context, in *ChangeCountRequest, opts ...grpc.CallOption) (*AckReply, error)
	IncrementRefCount(ctx context.Context, in *ChangeRefCountRequest, opts ...grpc.CallOption) (*AckReply, error)
	DecrementRefCount(ctx context.Context, in *ChangeRefCountRequest, opts ...grpc.CallOption) (*AckReply, error)
	AddContainedObjRefs(ctx context.Context, in *AddContainedObjRefsRequest, opts ...grpc.CallOption) (*AckReply, error)
	ReadyForNewTask(ctx context.Context, in *ReadyForNewTaskRequest, opts ...grpc.CallOption) (*AckReply, error)
	SchedulerInfo(ctx context.Context, in *SchedulerInfoRequest, opts ...grpc.CallOption) (*SchedulerInfoReply, error)
	TaskInfo(ctx context.Context, in *TaskInfoRequest, opts ...grpc.CallOption) (*TaskInfoReply, error)
}

type schedulerClient struct {
	cc grpc.ClientConnInterface
}

func NewSchedulerClient(cc grpc.ClientConnInterface) SchedulerClient {
	return &schedulerClient{cc}
}

func (c *schedulerClient) RegisterWorker(ctx context.Context, in *RegisterWorkerRequest, opts ...grpc.CallOption) (*RegisterWorkerReply, error) {
	out := new(RegisterWorkerReply)
	if err := c.cc.Invoke(ctx, Scheduler_RegisterWorker_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schedulerClient) RegisterObjStore(ctx context.Context, in *RegisterObjStoreRequest, opts ...grpc.CallOption) (*RegisterObjStoreReply, error) {
	out := new(RegisterObjStoreReply)
	if err := c.cc.Invoke(ctx, Scheduler_RegisterObjStore_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schedulerClient) RegisterFunction(ctx context.Context, in *RegisterFunctionRequest, opts ...grpc.CallOption) (*AckReply, error) {
	out := new(AckReply)
	if err := c.cc.Invoke(ctx, Scheduler_RegisterFunction_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schedulerClient) SubmitTask(ctx context.Context, in *SubmitTaskRequest, opts ...grpc.CallOption) (*SubmitTaskReply, error) {
	out := new(SubmitTaskReply)
	if err := c.cc.Invoke(ctx, Scheduler_SubmitTask_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schedulerClient) PushObj(ctx context.Context, in *PushObjRequest, opts ...grpc.CallOption) (*PushObjReply, error) {
	out := new(PushObjReply)
	if err := c.cc.Invoke(ctx, Scheduler_PushObj_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schedulerClient) RequestObj(ctx context.Context, in *RequestObjRequest, opts ...grpc.CallOption) (*AckReply, error) {
	out := new(AckReply)
	if err := c.cc.Invoke(ctx, Scheduler_RequestObj_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schedulerClient) AliasObjRefs(ctx context.Context, in *AliasObjRefsRequest, opts ...grpc.CallOption) (*AckReply, error) {
	out := new(AckReply)
	if err := c.cc.Invoke(ctx, Scheduler_AliasObjRefs_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schedulerClient) ObjReady(ctx context.Context, in *ObjReadyRequest, opts ...grpc.CallOption) (*AckReply, error) {
	out := new(AckReply)
	if err := c.cc.Invoke(ctx, Scheduler_ObjReady_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schedulerClient) IncrementCount(ctx context.Context, in *ChangeCountRequest, opts ...grpc.CallOption) (*AckReply, error) {
	out := new(AckReply)
	if err := c.cc.Invoke(ctx, Scheduler_IncrementCount_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schedulerClient) DecrementCount(ctx context.Context, in *ChangeCountRequest, opts ...grpc.CallOption) (*AckReply, error) {
	out := new(AckReply)
	if err := c.cc.Invoke(ctx, Scheduler_DecrementCount_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schedulerClient) IncrementRefCount(ctx context.Context, in *ChangeRefCountRequest, opts ...grpc.CallOption) (*AckReply, error) {
	out := new(AckReply)
	if err := c.cc.Invoke(ctx, Scheduler_IncrementRefCount_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schedulerClient) DecrementRefCount(ctx context.Context, in *ChangeRefCountRequest, opts ...grpc.CallOption) (*AckReply, error) {
	out := new(AckReply)
	if err := c.cc.Invoke(ctx, Scheduler_DecrementRefCount_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schedulerClient) AddContainedObjRefs(ctx context.Context, in *AddContainedObjRefsRequest, opts ...grpc.CallOption) (*AckReply, error) {
	out := new(AckReply)
	if err := c.cc.Invoke(ctx, Scheduler_AddContainedObjRefs_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schedulerClient) ReadyForNewTask(ctx context.Context, in *ReadyForNewTaskRequest, opts ...grpc.CallOption) (*AckReply, error) {
	out := new(AckReply)
	if err := c.cc.Invoke(ctx, Scheduler_ReadyForNewTask_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schedulerClient) SchedulerInfo(ctx context.Context, in *SchedulerInfoRequest, opts ...grpc.CallOption) (*SchedulerInfoReply, error) {
	out := new(SchedulerInfoReply)
	if err := c.cc.Invoke(ctx, Scheduler_SchedulerInfo_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *schedulerClient) TaskInfo(ctx context.Context, in *TaskInfoRequest, opts ...grpc.CallOption) (*TaskInfoReply, error) {
	out := new(TaskInfoReply)
	if err := c.cc.Invoke(ctx, Scheduler_TaskInfo_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// SchedulerServer is the server API for the Scheduler service.
type SchedulerServer interface {
	RegisterWorker(context.Context, *RegisterWorkerRequest) (*RegisterWorkerReply, error)
	RegisterObjStore(context.Context, *RegisterObjStoreRequest) (*RegisterObjStoreReply, error)
	RegisterFunction(context.Context, *RegisterFunctionRequest) (*AckReply, error)
	SubmitTask(context.Context, *SubmitTaskRequest) (*SubmitTaskReply, error)
	PushObj(context.Context, *PushObjRequest) (*PushObjReply, error)
	RequestObj(context.Context, *RequestObjRequest) (*AckReply, error)
	AliasObjRefs(context.Context, *AliasObjRefsRequest) (*AckReply, error)
	ObjReady(context.Context, *ObjReadyRequest) (*AckReply, error)
	IncrementCount(context.Context, *ChangeCountRequest) (*AckReply, error)
	DecrementCount(context.Context, *ChangeCountRequest) (*AckReply, error)
	IncrementRefCount(context.Context, *ChangeRefCountRequest) (*AckReply, error)
	DecrementRefCount(context.Context, *ChangeRefCountRequest) (*AckReply, error)
	AddContainedObjRefs(context.Context, *AddContainedObjRefsRequest) (*AckReply, error)
	ReadyForNewTask(context.Context, *ReadyForNewTaskRequest) (*AckReply, error)
	SchedulerInfo(context.Context, *SchedulerInfoRequest) (*SchedulerInfoReply, error)
	TaskInfo(context.Context, *TaskInfoRequest) (*TaskInfoReply, error)
}

// UnimplementedSchedulerServer can be embedded for forward compatibility.
type UnimplementedSchedulerServer struct{}

func (UnimplementedSchedulerServer) RegisterWorker(context.Context, *RegisterWorkerRequest) (*RegisterWorkerReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterWorker not implemented")
}
func (UnimplementedSchedulerServer) RegisterObjStore(context.Context, *RegisterObjStoreRequest) (*RegisterObjStoreReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterObjStore not implemented")
}
func (UnimplementedSchedulerServer) RegisterFunction(context.Context, *RegisterFunctionRequest) (*AckReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterFunction not implemented")
}
func (UnimplementedSchedulerServer) SubmitTask(context.Context, *SubmitTaskRequest) (*SubmitTaskReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitTask not implemented")
}
func (UnimplementedSchedulerServer) PushObj(context.Context, *PushObjRequest) (*PushObjReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PushObj not implemented")
}
func (UnimplementedSchedulerServer) RequestObj(context.Context, *RequestObjRequest) (*AckReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RequestObj not implemented")
}
func (UnimplementedSchedulerServer) AliasObjRefs(context.Context, *AliasObjRefsRequest) (*AckReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AliasObjRefs not implemented")
}
func (UnimplementedSchedulerServer) ObjReady(context.Context, *ObjReadyRequest) (*AckReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ObjReady not implemented")
}
func (UnimplementedSchedulerServer) IncrementCount(context.Context, *ChangeCountRequest) (*AckReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IncrementCount not implemented")
}
func (UnimplementedSchedulerServer) DecrementCount(context.Context, *ChangeCountRequest) (*AckReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DecrementCount not implemented")
}
func (UnimplementedSchedulerServer) IncrementRefCount(context.Context, *ChangeRefCountRequest) (*AckReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IncrementRefCount not implemented")
}
func (UnimplementedSchedulerServer) DecrementRefCount(context.Context, *ChangeRefCountRequest) (*AckReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DecrementRefCount not implemented")
}
func (UnimplementedSchedulerServer) AddContainedObjRefs(context.Context, *AddContainedObjRefsRequest) (*AckReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddContainedObjRefs not implemented")
}
func (UnimplementedSchedulerServer) ReadyForNewTask(context.Context, *ReadyForNewTaskRequest) (*AckReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReadyForNewTask not implemented")
}
func (UnimplementedSchedulerServer) SchedulerInfo(context.Context, *SchedulerInfoRequest) (*SchedulerInfoReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SchedulerInfo not implemented")
}
func (UnimplementedSchedulerServer) TaskInfo(context.Context, *TaskInfoRequest) (*TaskInfoReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TaskInfo not implemented")
}

func RegisterSchedulerServer(s grpc.ServiceRegistrar, srv SchedulerServer) {
	s.RegisterService(&Scheduler_ServiceDesc, srv)
}

func _Scheduler_RegisterWorker_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterWorkerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchedulerServer).RegisterWorker(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Scheduler_RegisterWorker_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchedulerServer).RegisterWorker(ctx, req.(*RegisterWorkerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Scheduler_RegisterObjStore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterObjStoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchedulerServer).RegisterObjStore(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Scheduler_RegisterObjStore_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchedulerServer).RegisterObjStore(ctx, req.(*RegisterObjStoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Scheduler_RegisterFunction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterFunctionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchedulerServer).RegisterFunction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Scheduler_RegisterFunction_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchedulerServer).RegisterFunction(ctx, req.(*RegisterFunctionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Scheduler_SubmitTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchedulerServer).SubmitTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Scheduler_SubmitTask_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchedulerServer).SubmitTask(ctx, req.(*SubmitTaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Scheduler_PushObj_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PushObjRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchedulerServer).PushObj(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Scheduler_PushObj_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchedulerServer).PushObj(ctx, req.(*PushObjRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Scheduler_RequestObj_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RequestObjRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchedulerServer).RequestObj(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Scheduler_RequestObj_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchedulerServer).RequestObj(ctx, req.(*RequestObjRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Scheduler_AliasObjRefs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AliasObjRefsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchedulerServer).AliasObjRefs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Scheduler_AliasObjRefs_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchedulerServer).AliasObjRefs(ctx, req.(*AliasObjRefsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Scheduler_ObjReady_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ObjReadyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchedulerServer).ObjReady(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Scheduler_ObjReady_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchedulerServer).ObjReady(ctx, req.(*ObjReadyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Scheduler_IncrementCount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ChangeCountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchedulerServer).IncrementCount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Scheduler_IncrementCount_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchedulerServer).IncrementCount(ctx, req.(*ChangeCountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Scheduler_DecrementCount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ChangeCountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchedulerServer).DecrementCount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Scheduler_DecrementCount_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchedulerServer).DecrementCount(ctx, req.(*ChangeCountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Scheduler_IncrementRefCount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ChangeRefCountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchedulerServer).IncrementRefCount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Scheduler_IncrementRefCount_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchedulerServer).IncrementRefCount(ctx, req.(*ChangeRefCountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Scheduler_DecrementRefCount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ChangeRefCountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchedulerServer).DecrementRefCount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Scheduler_DecrementRefCount_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchedulerServer).DecrementRefCount(ctx, req.(*ChangeRefCountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Scheduler_AddContainedObjRefs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddContainedObjRefsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchedulerServer).AddContainedObjRefs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Scheduler_AddContainedObjRefs_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchedulerServer).AddContainedObjRefs(ctx, req.(*AddContainedObjRefsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Scheduler_ReadyForNewTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReadyForNewTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchedulerServer).ReadyForNewTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Scheduler_ReadyForNewTask_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchedulerServer).ReadyForNewTask(ctx, req.(*ReadyForNewTaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Scheduler_SchedulerInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SchedulerInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchedulerServer).SchedulerInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Scheduler_SchedulerInfo_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchedulerServer).SchedulerInfo(ctx, req.(*SchedulerInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Scheduler_TaskInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TaskInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SchedulerServer).TaskInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Scheduler_TaskInfo_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SchedulerServer).TaskInfo(ctx, req.(*TaskInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var Scheduler_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ray.v1.Scheduler",
	HandlerType: (*SchedulerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RegisterWorker", Handler: _Scheduler_RegisterWorker_Handler},
		{MethodName: "RegisterObjStore", Handler: _Scheduler_RegisterObjStore_Handler},
		{MethodName: "RegisterFunction", Handler: _Scheduler_RegisterFunction_Handler},
		{MethodName: "SubmitTask", Handler: _Scheduler_SubmitTask_Handler},
		{MethodName: "PushObj", Handler: _Scheduler_PushObj_Handler},
		{MethodName: "RequestObj", Handler: _Scheduler_RequestObj_Handler},
		{MethodName: "AliasObjRefs", Handler: _Scheduler_AliasObjRefs_Handler},
		{MethodName: "ObjReady", Handler: _Scheduler_ObjReady_Handler},
		{MethodName: "IncrementCount", Handler: _Scheduler_IncrementCount_Handler},
		{MethodName: "DecrementCount", Handler: _Scheduler_DecrementCount_Handler},
		{MethodName: "IncrementRefCount", Handler: _Scheduler_IncrementRefCount_Handler},
		{MethodName: "DecrementRefCount", Handler: _Scheduler_DecrementRefCount_Handler},
		{MethodName: "AddContainedObjRefs", Handler: _Scheduler_AddContainedObjRefs_Handler},
		{MethodName: "ReadyForNewTask", Handler: _Scheduler_ReadyForNewTask_Handler},
		{MethodName: "SchedulerInfo", Handler: _Scheduler_SchedulerInfo_Handler},
		{MethodName: "TaskInfo", Handler: _Scheduler_TaskInfo_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ray.proto",
}

// ---------------------------------------------------------------------------
// ObjStore service
// ---------------------------------------------------------------------------

// ObjStoreClient is the client API for the ObjStore service.
type ObjStoreClient interface {
	StartDelivery(ctx context.Context, in *StartDeliveryRequest, opts ...grpc.CallOption) (*AckReply, error)
	StreamObjTo(ctx context.Context, in *StreamObjToRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ObjChunk], error)
	NotifyAlias(ctx context.Context, in *NotifyAliasRequest, opts ...grpc.CallOption) (*AckReply, error)
	NotifyFailure(ctx context.Context, in *NotifyFailureRequest, opts ...grpc.CallOption) (*AckReply, error)
	DeallocateObject(ctx context.Context, in *DeallocateObjectRequest, opts ...grpc.CallOption) (*AckReply, error)
	PutObj(ctx context.Context, in *PutObjRequest, opts ...grpc.CallOption) (*AckReply, error)
	GetObj(ctx context.Context, in *GetObjRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ObjChunk], error)
	ObjStoreInfo(ctx context.Context, in *ObjStoreInfoRequest, opts ...grpc.CallOption) (*ObjStoreInfoReply, error)
}

type objStoreClient struct {
	cc grpc.ClientConnInterface
}

func NewObjStoreClient(cc grpc.ClientConnInterface) ObjStoreClient {
	return &objStoreClient{cc}
}

func (c *objStoreClient) StartDelivery(ctx context.Context, in *StartDeliveryRequest, opts ...grpc.CallOption) (*AckReply, error) {
	out := new(AckReply)
	if err := c.cc.Invoke(ctx, ObjStore_StartDelivery_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ObjStore_StreamObjToClient is the stream handle returned by StreamObjTo.
type ObjStore_StreamObjToClient = grpc.ServerStreamingClient[ObjChunk]

func (c *objStoreClient) StreamObjTo(ctx context.Context, in *StreamObjToRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ObjChunk], error) {
	stream, err := c.cc.NewStream(ctx, &ObjStore_ServiceDesc.Streams[0], ObjStore_StreamObjTo_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[StreamObjToRequest, ObjChunk]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *objStoreClient) NotifyAlias(ctx context.Context, in *NotifyAliasRequest, opts ...grpc.CallOption) (*AckReply, error) {
	out := new(AckReply)
	if err := c.cc.Invoke(ctx, ObjStore_NotifyAlias_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *objStoreClient) NotifyFailure(ctx context.Context, in *NotifyFailureRequest, opts ...grpc.CallOption) (*AckReply, error) {
	out := new(AckReply)
	if err := c.cc.Invoke(ctx, ObjStore_NotifyFailure_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *objStoreClient) DeallocateObject(ctx context.Context, in *DeallocateObjectRequest, opts ...grpc.CallOption) (*AckReply, error) {
	out := new(AckReply)
	if err := c.cc.Invoke(ctx, ObjStore_DeallocateObject_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *objStoreClient) PutObj(ctx context.Context, in *PutObjRequest, opts ...grpc.CallOption) (*AckReply, error) {
	out := new(AckReply)
	if err := c.cc.Invoke(ctx, ObjStore_PutObj_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ObjStore_GetObjClient is the stream handle returned by GetObj.
type ObjStore_GetObjClient = grpc.ServerStreamingClient[ObjChunk]

func (c *objStoreClient) GetObj(ctx context.Context, in *GetObjRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ObjChunk], error) {
	stream, err := c.cc.NewStream(ctx, &ObjStore_ServiceDesc.Streams[1], ObjStore_GetObj_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[GetObjRequest, ObjChunk]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *objStoreClient) ObjStoreInfo(ctx context.Context, in *ObjStoreInfoRequest, opts ...grpc.CallOption) (*ObjStoreInfoReply, error) {
	out := new(ObjStoreInfoReply)
	if err := c.cc.Invoke(ctx, ObjStore_ObjStoreInfo_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ObjStoreServer is the server API for the ObjStore service.
type ObjStoreServer interface {
	StartDelivery(context.Context, *StartDeliveryRequest) (*AckReply, error)
	StreamObjTo(*StreamObjToRequest, grpc.ServerStreamingServer[ObjChunk]) error
	NotifyAlias(context.Context, *NotifyAliasRequest) (*AckReply, error)
	NotifyFailure(context.Context, *NotifyFailureRequest) (*AckReply, error)
	DeallocateObject(context.Context, *DeallocateObjectRequest) (*AckReply, error)
	PutObj(context.Context, *PutObjRequest) (*AckReply, error)
	GetObj(*GetObjRequest, grpc.ServerStreamingServer[ObjChunk]) error
	ObjStoreInfo(context.Context, *ObjStoreInfoRequest) (*ObjStoreInfoReply, error)
}

// ObjStore_StreamObjToServer is the server side of the StreamObjTo stream.
type ObjStore_StreamObjToServer = grpc.ServerStreamingServer[ObjChunk]

// ObjStore_GetObjServer is the server side of the GetObj stream.
type ObjStore_GetObjServer = grpc.ServerStreamingServer[ObjChunk]

// UnimplementedObjStoreServer can be embedded for forward compatibility.
type UnimplementedObjStoreServer struct{}

func (UnimplementedObjStoreServer) StartDelivery(context.Context, *StartDeliveryRequest) (*AckReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartDelivery not implemented")
}
func (UnimplementedObjStoreServer) StreamObjTo(*StreamObjToRequest, grpc.ServerStreamingServer[ObjChunk]) error {
	return status.Errorf(codes.Unimplemented, "method StreamObjTo not implemented")
}
func (UnimplementedObjStoreServer) NotifyAlias(context.Context, *NotifyAliasRequest) (*AckReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method NotifyAlias not implemented")
}
func (UnimplementedObjStoreServer) NotifyFailure(context.Context, *NotifyFailureRequest) (*AckReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method NotifyFailure not implemented")
}
func (UnimplementedObjStoreServer) DeallocateObject(context.Context, *DeallocateObjectRequest) (*AckReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeallocateObject not implemented")
}
func (UnimplementedObjStoreServer) PutObj(context.Context, *PutObjRequest) (*AckReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PutObj not implemented")
}
func (UnimplementedObjStoreServer) GetObj(*GetObjRequest, grpc.ServerStreamingServer[ObjChunk]) error {
	return status.Errorf(codes.Unimplemented, "method GetObj not implemented")
}
func (UnimplementedObjStoreServer) ObjStoreInfo(context.Context, *ObjStoreInfoRequest) (*ObjStoreInfoReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ObjStoreInfo not implemented")
}

func RegisterObjStoreServer(s grpc.ServiceRegistrar, srv ObjStoreServer) {
	s.RegisterService(&ObjStore_ServiceDesc, srv)
}

func _ObjStore_StartDelivery_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartDeliveryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ObjStoreServer).StartDelivery(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ObjStore_StartDelivery_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ObjStoreServer).StartDelivery(ctx, req.(*StartDeliveryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ObjStore_StreamObjTo_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(StreamObjToRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ObjStoreServer).StreamObjTo(m, &grpc.GenericServerStream[StreamObjToRequest, ObjChunk]{ServerStream: stream})
}

func _ObjStore_NotifyAlias_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NotifyAliasRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ObjStoreServer).NotifyAlias(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ObjStore_NotifyAlias_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ObjStoreServer).NotifyAlias(ctx, req.(*NotifyAliasRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ObjStore_NotifyFailure_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NotifyFailureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ObjStoreServer).NotifyFailure(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ObjStore_NotifyFailure_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ObjStoreServer).NotifyFailure(ctx, req.(*NotifyFailureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ObjStore_DeallocateObject_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeallocateObjectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ObjStoreServer).DeallocateObject(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ObjStore_DeallocateObject_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ObjStoreServer).DeallocateObject(ctx, req.(*DeallocateObjectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ObjStore_PutObj_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PutObjRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ObjStoreServer).PutObj(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ObjStore_PutObj_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ObjStoreServer).PutObj(ctx, req.(*PutObjRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ObjStore_GetObj_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(GetObjRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ObjStoreServer).GetObj(m, &grpc.GenericServerStream[GetObjRequest, ObjChunk]{ServerStream: stream})
}

func _ObjStore_ObjStoreInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ObjStoreInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ObjStoreServer).ObjStoreInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ObjStore_ObjStoreInfo_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ObjStoreServer).ObjStoreInfo(ctx, req.(*ObjStoreInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var ObjStore_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ray.v1.ObjStore",
	HandlerType: (*ObjStoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "StartDelivery", Handler: _ObjStore_StartDelivery_Handler},
		{MethodName: "NotifyAlias", Handler: _ObjStore_NotifyAlias_Handler},
		{MethodName: "NotifyFailure", Handler: _ObjStore_NotifyFailure_Handler},
		{MethodName: "DeallocateObject", Handler: _ObjStore_DeallocateObject_Handler},
		{MethodName: "PutObj", Handler: _ObjStore_PutObj_Handler},
		{MethodName: "ObjStoreInfo", Handler: _ObjStore_ObjStoreInfo_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamObjTo",
			Handler:       _ObjStore_StreamObjTo_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "GetObj",
			Handler:       _ObjStore_GetObj_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "ray.proto",
}

// ---------------------------------------------------------------------------
// WorkerService
// ---------------------------------------------------------------------------

// WorkerServiceClient is the client API for the WorkerService service.
type WorkerServiceClient interface {
	ExecuteTask(ctx context.Context, in *ExecuteTaskRequest, opts ...grpc.CallOption) (*AckReply, error)
}

type workerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewWorkerServiceClient(cc grpc.ClientConnInterface) WorkerServiceClient {
	return &workerServiceClient{cc}
}

func (c *workerServiceClient) ExecuteTask(ctx context.Context, in *ExecuteTaskRequest, opts ...grpc.CallOption) (*AckReply, error) {
	out := new(AckReply)
	if err := c.cc.Invoke(ctx, WorkerService_ExecuteTask_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// WorkerServiceServer is the server API for the WorkerService service.
type WorkerServiceServer interface {
	ExecuteTask(context.Context, *ExecuteTaskRequest) (*AckReply, error)
}

// UnimplementedWorkerServiceServer can be embedded for forward compatibility.
type UnimplementedWorkerServiceServer struct{}

func (UnimplementedWorkerServiceServer) ExecuteTask(context.Context, *ExecuteTaskRequest) (*AckReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExecuteTask not implemented")
}

func RegisterWorkerServiceServer(s grpc.ServiceRegistrar, srv WorkerServiceServer) {
	s.RegisterService(&WorkerService_ServiceDesc, srv)
}

func _WorkerService_ExecuteTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExecuteTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkerServiceServer).ExecuteTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: WorkerService_ExecuteTask_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WorkerServiceServer).ExecuteTask(ctx, req.(*ExecuteTaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var WorkerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ray.v1.WorkerService",
	HandlerType: (*WorkerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ExecuteTask", Handler: _WorkerService_ExecuteTask_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ray.proto",
}
