package scheduler

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	rayv1 "github.com/vivi/ray/api/proto/v1"
	"github.com/vivi/ray/pkg/types"
)

// StoreControl is the scheduler's outbound surface towards object stores.
// Tests substitute a fake.
type StoreControl interface {
	StartDelivery(ctx context.Context, storeAddr, srcAddr string, ref types.ObjRef) error
	NotifyAlias(ctx context.Context, storeAddr string, alias, canonical types.ObjRef) error
	NotifyFailure(ctx context.Context, storeAddr string, ref types.ObjRef, msg string) error
	DeallocateObject(ctx context.Context, storeAddr string, ref types.ObjRef) error
}

// WorkerControl is the scheduler's outbound surface towards workers.
type WorkerControl interface {
	ExecuteTask(ctx context.Context, workerAddr string, task *rayv1.Task) error
}

// GrpcControl implements both control surfaces over gRPC, caching one
// connection per peer address.
type GrpcControl struct {
	mu    sync.Mutex
	conns map[string]*grpc.ClientConn
}

func NewGrpcControl() *GrpcControl {
	return &GrpcControl{conns: make(map[string]*grpc.ClientConn)}
}

func (g *GrpcControl) conn(addr string) (*grpc.ClientConn, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if conn, ok := g.conns[addr]; ok {
		return conn, nil
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to dial peer %s: %w", addr, err)
	}
	g.conns[addr] = conn
	return conn, nil
}

// Close tears down every cached connection.
func (g *GrpcControl) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for addr, conn := range g.conns {
		_ = conn.Close()
		delete(g.conns, addr)
	}
}

func (g *GrpcControl) store(addr string) (rayv1.ObjStoreClient, error) {
	conn, err := g.conn(addr)
	if err != nil {
		return nil, err
	}
	return rayv1.NewObjStoreClient(conn), nil
}

func (g *GrpcControl) StartDelivery(ctx context.Context, storeAddr, srcAddr string, ref types.ObjRef) error {
	client, err := g.store(storeAddr)
	if err != nil {
		return err
	}
	_, err = client.StartDelivery(ctx, &rayv1.StartDeliveryRequest{
		ObjstoreAddress: srcAddr,
		Objref:          uint64(ref),
	})
	return err
}

func (g *GrpcControl) NotifyAlias(ctx context.Context, storeAddr string, alias, canonical types.ObjRef) error {
	client, err := g.store(storeAddr)
	if err != nil {
		return err
	}
	_, err = client.NotifyAlias(ctx, &rayv1.NotifyAliasRequest{
		AliasObjref:     uint64(alias),
		CanonicalObjref: uint64(canonical),
	})
	return err
}

func (g *GrpcControl) NotifyFailure(ctx context.Context, storeAddr string, ref types.ObjRef, msg string) error {
	client, err := g.store(storeAddr)
	if err != nil {
		return err
	}
	_, err = client.NotifyFailure(ctx, &rayv1.NotifyFailureRequest{
		Objref:       uint64(ref),
		ErrorMessage: msg,
	})
	return err
}

func (g *GrpcControl) DeallocateObject(ctx context.Context, storeAddr string, ref types.ObjRef) error {
	client, err := g.store(storeAddr)
	if err != nil {
		return err
	}
	_, err = client.DeallocateObject(ctx, &rayv1.DeallocateObjectRequest{
		CanonicalObjref: uint64(ref),
	})
	return err
}

func (g *GrpcControl) ExecuteTask(ctx context.Context, workerAddr string, task *rayv1.Task) error {
	conn, err := g.conn(workerAddr)
	if err != nil {
		return err
	}
	_, err = rayv1.NewWorkerServiceClient(conn).ExecuteTask(ctx, &rayv1.ExecuteTaskRequest{Task: task})
	return err
}
