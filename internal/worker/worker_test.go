package worker

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	rayv1 "github.com/vivi/ray/api/proto/v1"
	"github.com/vivi/ray/pkg/types"
)

// fakeScheduler records the worker's control traffic.
type fakeScheduler struct {
	mu        sync.Mutex
	requests  []uint64
	contained map[uint64][]uint64
	pushed    uint64
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{contained: make(map[uint64][]uint64), pushed: 100}
}

func (f *fakeScheduler) RegisterWorker(ctx context.Context, in *rayv1.RegisterWorkerRequest, opts ...grpc.CallOption) (*rayv1.RegisterWorkerReply, error) {
	return &rayv1.RegisterWorkerReply{WorkerId: 1, ObjstoreId: 1}, nil
}

func (f *fakeScheduler) RegisterObjStore(ctx context.Context, in *rayv1.RegisterObjStoreRequest, opts ...grpc.CallOption) (*rayv1.RegisterObjStoreReply, error) {
	return &rayv1.RegisterObjStoreReply{ObjstoreId: 1}, nil
}

func (f *fakeScheduler) RegisterFunction(ctx context.Context, in *rayv1.RegisterFunctionRequest, opts ...grpc.CallOption) (*rayv1.AckReply, error) {
	return &rayv1.AckReply{}, nil
}

func (f *fakeScheduler) SubmitTask(ctx context.Context, in *rayv1.SubmitTaskRequest, opts ...grpc.CallOption) (*rayv1.SubmitTaskReply, error) {
	return &rayv1.SubmitTaskReply{}, nil
}

func (f *fakeScheduler) PushObj(ctx context.Context, in *rayv1.PushObjRequest, opts ...grpc.CallOption) (*rayv1.PushObjReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushed++
	return &rayv1.PushObjReply{Objref: f.pushed}, nil
}

func (f *fakeScheduler) RequestObj(ctx context.Context, in *rayv1.RequestObjRequest, opts ...grpc.CallOption) (*rayv1.AckReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, in.Objref)
	return &rayv1.AckReply{}, nil
}

func (f *fakeScheduler) AliasObjRefs(ctx context.Context, in *rayv1.AliasObjRefsRequest, opts ...grpc.CallOption) (*rayv1.AckReply, error) {
	return &rayv1.AckReply{}, nil
}

func (f *fakeScheduler) ObjReady(ctx context.Context, in *rayv1.ObjReadyRequest, opts ...grpc.CallOption) (*rayv1.AckReply, error) {
	return &rayv1.AckReply{}, nil
}

func (f *fakeScheduler) IncrementCount(ctx context.Context, in *rayv1.ChangeCountRequest, opts ...grpc.CallOption) (*rayv1.AckReply, error) {
	return &rayv1.AckReply{}, nil
}

func (f *fakeScheduler) DecrementCount(ctx context.Context, in *rayv1.ChangeCountRequest, opts ...grpc.CallOption) (*rayv1.AckReply, error) {
	return &rayv1.AckReply{}, nil
}

func (f *fakeScheduler) IncrementRefCount(ctx context.Context, in *rayv1.ChangeRefCountRequest, opts ...grpc.CallOption) (*rayv1.AckReply, error) {
	return &rayv1.AckReply{}, nil
}

func (f *fakeScheduler) DecrementRefCount(ctx context.Context, in *rayv1.ChangeRefCountRequest, opts ...grpc.CallOption) (*rayv1.AckReply, error) {
	return &rayv1.AckReply{}, nil
}

func (f *fakeScheduler) AddContainedObjRefs(ctx context.Context, in *rayv1.AddContainedObjRefsRequest, opts ...grpc.CallOption) (*rayv1.AckReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contained[in.Objref] = append([]uint64(nil), in.ContainedObjref...)
	return &rayv1.AckReply{}, nil
}

func (f *fakeScheduler) ReadyForNewTask(ctx context.Context, in *rayv1.ReadyForNewTaskRequest, opts ...grpc.CallOption) (*rayv1.AckReply, error) {
	return &rayv1.AckReply{}, nil
}

func (f *fakeScheduler) SchedulerInfo(ctx context.Context, in *rayv1.SchedulerInfoRequest, opts ...grpc.CallOption) (*rayv1.SchedulerInfoReply, error) {
	return &rayv1.SchedulerInfoReply{}, nil
}

func (f *fakeScheduler) TaskInfo(ctx context.Context, in *rayv1.TaskInfoRequest, opts ...grpc.CallOption) (*rayv1.TaskInfoReply, error) {
	return &rayv1.TaskInfoReply{}, nil
}

// fakeChunkStream satisfies the generated server-streaming client surface.
type fakeChunkStream struct {
	grpc.ClientStream
	chunks []*rayv1.ObjChunk
	i      int
}

func (f *fakeChunkStream) Recv() (*rayv1.ObjChunk, error) {
	if f.i >= len(f.chunks) {
		return nil, io.EOF
	}
	c := f.chunks[f.i]
	f.i++
	return c, nil
}

// fakeObjStore serves payloads from a map and records puts.
type fakeObjStore struct {
	mu      sync.Mutex
	objects map[uint64][]byte
	puts    map[uint64][]byte
}

func newFakeObjStore() *fakeObjStore {
	return &fakeObjStore{objects: make(map[uint64][]byte), puts: make(map[uint64][]byte)}
}

func (f *fakeObjStore) StartDelivery(ctx context.Context, in *rayv1.StartDeliveryRequest, opts ...grpc.CallOption) (*rayv1.AckReply, error) {
	return &rayv1.AckReply{}, nil
}

func (f *fakeObjStore) StreamObjTo(ctx context.Context, in *rayv1.StreamObjToRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[rayv1.ObjChunk], error) {
	return f.GetObj(ctx, &rayv1.GetObjRequest{Objref: in.Objref}, opts...)
}

func (f *fakeObjStore) NotifyAlias(ctx context.Context, in *rayv1.NotifyAliasRequest, opts ...grpc.CallOption) (*rayv1.AckReply, error) {
	return &rayv1.AckReply{}, nil
}

func (f *fakeObjStore) NotifyFailure(ctx context.Context, in *rayv1.NotifyFailureRequest, opts ...grpc.CallOption) (*rayv1.AckReply, error) {
	return &rayv1.AckReply{}, nil
}

func (f *fakeObjStore) DeallocateObject(ctx context.Context, in *rayv1.DeallocateObjectRequest, opts ...grpc.CallOption) (*rayv1.AckReply, error) {
	return &rayv1.AckReply{}, nil
}

func (f *fakeObjStore) PutObj(ctx context.Context, in *rayv1.PutObjRequest, opts ...grpc.CallOption) (*rayv1.AckReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts[in.Objref] = append([]byte(nil), in.Data...)
	f.objects[in.Objref] = f.puts[in.Objref]
	return &rayv1.AckReply{}, nil
}

func (f *fakeObjStore) GetObj(ctx context.Context, in *rayv1.GetObjRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[rayv1.ObjChunk], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[in.Objref]
	if !ok {
		return nil, errors.New("object not found")
	}
	// Two chunks to exercise reassembly.
	mid := len(data) / 2
	return &fakeChunkStream{chunks: []*rayv1.ObjChunk{
		{TotalSize: uint64(len(data)), Data: data[:mid]},
		{TotalSize: uint64(len(data)), Data: data[mid:]},
	}}, nil
}

func (f *fakeObjStore) ObjStoreInfo(ctx context.Context, in *rayv1.ObjStoreInfoRequest, opts ...grpc.CallOption) (*rayv1.ObjStoreInfoReply, error) {
	return &rayv1.ObjStoreInfoReply{}, nil
}

func newTestWorker(t *testing.T, registry *Registry) (*Worker, *fakeScheduler, *fakeObjStore) {
	t.Helper()
	sched := newFakeScheduler()
	store := newFakeObjStore()
	w := New("w:1", "s:1", sched, store, registry)
	require.NoError(t, w.Register(context.Background()))
	return w, sched, store
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	fn := func(ctx context.Context, tc *TaskContext, args [][]byte) ([]Output, error) { return nil, nil }
	require.NoError(t, r.Register("f", 1, fn))
	assert.Error(t, r.Register("f", 1, fn))

	assert.Equal(t, []string{"f"}, r.Names())
	arity, ok := r.Arity("f")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), arity)
}

func TestExecuteMaterializesArguments(t *testing.T) {
	registry := NewRegistry()
	var got [][]byte
	require.NoError(t, registry.Register("record", 1, func(ctx context.Context, tc *TaskContext, args [][]byte) ([]Output, error) {
		got = args
		return []Output{{Data: []byte("out")}}, nil
	}))
	w, sched, store := newTestWorker(t, registry)
	store.objects[3] = []byte("payload")

	outcome := w.execute(context.Background(), &rayv1.Task{
		OperationId: 9,
		Name:        "record",
		Arg: []*rayv1.Value{
			{IsRef: true, ObjRef: 3},
			{Data: []byte("inline")},
		},
		Result: []uint64{10},
	})

	assert.True(t, outcome.TaskSucceeded)
	assert.Equal(t, uint64(9), outcome.OperationId)
	require.Len(t, got, 2)
	assert.Equal(t, []byte("payload"), got[0])
	assert.Equal(t, []byte("inline"), got[1])

	assert.Equal(t, []uint64{3}, sched.requests, "ref arguments go through RequestObj")
	assert.Equal(t, []byte("out"), store.puts[10], "result written under the allocated ref")
}

func TestExecuteUnknownFunctionFails(t *testing.T) {
	w, _, _ := newTestWorker(t, NewRegistry())
	outcome := w.execute(context.Background(), &rayv1.Task{OperationId: 1, Name: "nope"})
	assert.False(t, outcome.TaskSucceeded)
	assert.Contains(t, outcome.ErrorMessage, "not registered")
}

func TestExecuteCapturesError(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("boom", 1, func(ctx context.Context, tc *TaskContext, args [][]byte) ([]Output, error) {
		return nil, errors.New("E")
	}))
	w, _, _ := newTestWorker(t, registry)

	outcome := w.execute(context.Background(), &rayv1.Task{OperationId: 1, Name: "boom", Result: []uint64{10}})
	assert.False(t, outcome.TaskSucceeded)
	assert.Equal(t, "E", outcome.ErrorMessage)
}

func TestExecuteCapturesPanic(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("panic", 1, func(ctx context.Context, tc *TaskContext, args [][]byte) ([]Output, error) {
		panic("kaboom")
	}))
	w, _, _ := newTestWorker(t, registry)

	outcome := w.execute(context.Background(), &rayv1.Task{OperationId: 1, Name: "panic", Result: []uint64{10}})
	assert.False(t, outcome.TaskSucceeded)
	assert.Contains(t, outcome.ErrorMessage, "kaboom")
}

func TestExecuteChecksOutputArity(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("one", 1, func(ctx context.Context, tc *TaskContext, args [][]byte) ([]Output, error) {
		return []Output{{Data: nil}, {Data: nil}}, nil
	}))
	w, _, _ := newTestWorker(t, registry)

	outcome := w.execute(context.Background(), &rayv1.Task{OperationId: 1, Name: "one", Result: []uint64{10}})
	assert.False(t, outcome.TaskSucceeded)
	assert.Contains(t, outcome.ErrorMessage, "1 expected")
}

func TestExecuteReportsContainedRefs(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("container", 1, func(ctx context.Context, tc *TaskContext, args [][]byte) ([]Output, error) {
		inner, err := tc.Put(ctx, []byte("inner"), 0)
		if err != nil {
			return nil, err
		}
		return []Output{{Data: []byte("outer"), Contained: []types.ObjRef{inner}}}, nil
	}))
	w, sched, store := newTestWorker(t, registry)

	outcome := w.execute(context.Background(), &rayv1.Task{OperationId: 1, Name: "container", Result: []uint64{10}})
	require.True(t, outcome.TaskSucceeded, outcome.ErrorMessage)

	assert.Equal(t, []byte("inner"), store.puts[101], "pushed object stored under the fresh ref")
	assert.Equal(t, []uint64{101}, sched.contained[10])
}

func TestEnqueueRejectsSecondTask(t *testing.T) {
	w, _, _ := newTestWorker(t, NewRegistry())
	require.NoError(t, w.enqueue(&rayv1.Task{OperationId: 1}))
	assert.ErrorIs(t, w.enqueue(&rayv1.Task{OperationId: 2}), ErrBusy)
}
