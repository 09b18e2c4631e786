// Demo starts a complete single-process cluster - scheduler, two object
// stores, one worker - submits one task and prints its result. It
// mirrors how the processes are wired on a real deployment, only with every
// role sharing one binary.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	rayv1 "github.com/vivi/ray/api/proto/v1"
	"github.com/vivi/ray/internal/metrics"
	"github.com/vivi/ray/internal/objstore"
	"github.com/vivi/ray/internal/scheduler"
	"github.com/vivi/ray/internal/worker"
	"github.com/vivi/ray/pkg/types"
)

var log = slog.Default()

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	collector := metrics.NewCollector()

	// Scheduler.
	ctl := scheduler.NewGrpcControl()
	defer ctl.Close()
	sched := scheduler.New(scheduler.Config{}, ctl, ctl, collector)
	schedAddr, stopSched, err := serve(func(s *grpc.Server) {
		rayv1.RegisterSchedulerServer(s, scheduler.NewServer(sched))
	})
	if err != nil {
		return err
	}
	defer stopSched()
	log.Info("scheduler up", "address", schedAddr, "cluster_id", sched.ClusterID())

	schedConn, err := dial(schedAddr)
	if err != nil {
		return err
	}
	defer schedConn.Close()
	schedClient := rayv1.NewSchedulerClient(schedConn)

	// Two object stores, as on a two-node cluster.
	store1Addr, stopStore1, err := startStore(ctx, schedClient, schedConn, collector)
	if err != nil {
		return err
	}
	defer stopStore1()
	store2Addr, stopStore2, err := startStore(ctx, schedClient, schedConn, collector)
	if err != nil {
		return err
	}
	defer stopStore2()

	// One worker, co-located with the second store.
	registry := worker.NewRegistry()
	_ = registry.Register("identity", 1, func(ctx context.Context, tc *worker.TaskContext, args [][]byte) ([]worker.Output, error) {
		return []worker.Output{{Data: args[0]}}, nil
	})
	_ = registry.Register("concat", 1, func(ctx context.Context, tc *worker.TaskContext, args [][]byte) ([]worker.Output, error) {
		return []worker.Output{{Data: bytes.Join(args, nil)}}, nil
	})

	store2Conn, err := dial(store2Addr)
	if err != nil {
		return err
	}
	defer store2Conn.Close()
	workerLis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return err
	}
	w := worker.New(workerLis.Addr().String(), store2Addr, schedClient, rayv1.NewObjStoreClient(store2Conn), registry)
	workerSrv := grpc.NewServer()
	rayv1.RegisterWorkerServiceServer(workerSrv, worker.NewServer(w))
	go func() { _ = workerSrv.Serve(workerLis) }()
	defer workerSrv.Stop()
	if err := w.Register(ctx); err != nil {
		return err
	}
	go func() { _ = w.Run(ctx) }()

	// The driver connects as a worker on the first store, like a client
	// process joining the cluster.
	store1Conn, err := dial(store1Addr)
	if err != nil {
		return err
	}
	defer store1Conn.Close()
	store1Client := rayv1.NewObjStoreClient(store1Conn)
	driver, err := schedClient.RegisterWorker(ctx, &rayv1.RegisterWorkerRequest{
		WorkerAddress:   "driver",
		ObjstoreAddress: store1Addr,
	})
	if err != nil {
		return err
	}

	// Push two payloads on store 1, then run concat on the worker at
	// store 2; the scheduler moves both payloads across.
	r1, err := push(ctx, schedClient, store1Client, driver.WorkerId, []byte("hello, "))
	if err != nil {
		return err
	}
	r2, err := push(ctx, schedClient, store1Client, driver.WorkerId, []byte("ray"))
	if err != nil {
		return err
	}

	reply, err := schedClient.SubmitTask(ctx, &rayv1.SubmitTaskRequest{Task: &rayv1.Task{
		Name: "concat",
		Arg: []*rayv1.Value{
			{IsRef: true, ObjRef: r1},
			{IsRef: true, ObjRef: r2},
			{Data: []byte("!")},
		},
	}})
	if err != nil {
		return err
	}
	if !reply.FunctionRegistered {
		return fmt.Errorf("concat not registered")
	}
	result := reply.Result[0]
	log.Info("task submitted", "result_objref", result)

	// Read the result through the driver's local store; the scheduler
	// delivers it once the worker has produced it.
	if _, err := schedClient.RequestObj(ctx, &rayv1.RequestObjRequest{
		WorkerId: driver.WorkerId, Objref: result,
	}); err != nil {
		return err
	}
	data, err := fetch(ctx, store1Client, result)
	if err != nil {
		return err
	}
	fmt.Printf("concat result: %q\n", data)
	return nil
}

func serve(register func(*grpc.Server)) (string, func(), error) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, err
	}
	s := grpc.NewServer()
	register(s)
	go func() { _ = s.Serve(lis) }()
	return lis.Addr().String(), s.Stop, nil
}

func dial(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

func startStore(ctx context.Context, schedClient rayv1.SchedulerClient, schedConn *grpc.ClientConn, collector *metrics.Collector) (string, func(), error) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, err
	}
	addr := lis.Addr().String()
	reply, err := schedClient.RegisterObjStore(ctx, &rayv1.RegisterObjStoreRequest{ObjstoreAddress: addr})
	if err != nil {
		return "", nil, err
	}
	peers := objstore.NewGrpcPeers()
	store := objstore.New(
		types.ObjStoreID(reply.ObjstoreId), addr,
		objstore.Config{},
		objstore.NewGrpcReporter(schedConn),
		peers,
		collector,
	)
	s := grpc.NewServer()
	rayv1.RegisterObjStoreServer(s, objstore.NewServer(store))
	go func() { _ = s.Serve(lis) }()
	stop := func() {
		s.Stop()
		peers.Close()
	}
	return addr, stop, nil
}

func push(ctx context.Context, sched rayv1.SchedulerClient, store rayv1.ObjStoreClient, workerID uint64, data []byte) (uint64, error) {
	reply, err := sched.PushObj(ctx, &rayv1.PushObjRequest{WorkerId: workerID})
	if err != nil {
		return 0, err
	}
	_, err = store.PutObj(ctx, &rayv1.PutObjRequest{
		Objref:    reply.Objref,
		TotalSize: uint64(len(data)),
		Data:      data,
	})
	if err != nil {
		return 0, err
	}
	return reply.Objref, nil
}

func fetch(ctx context.Context, store rayv1.ObjStoreClient, ref uint64) ([]byte, error) {
	stream, err := store.GetObj(ctx, &rayv1.GetObjRequest{Objref: ref})
	if err != nil {
		return nil, err
	}
	var buf []byte
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if buf == nil {
			buf = make([]byte, 0, chunk.TotalSize)
		}
		buf = append(buf, chunk.Data...)
	}
	return buf, nil
}
