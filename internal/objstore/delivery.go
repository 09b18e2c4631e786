package objstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	rayv1 "github.com/vivi/ray/api/proto/v1"
	"github.com/vivi/ray/pkg/types"
)

// ChunkStream is the receive side of one payload transfer.
type ChunkStream interface {
	Recv() (*rayv1.ObjChunk, error)
}

// Peers opens streamed pulls from other object stores. Tests substitute a
// fake.
type Peers interface {
	StreamObjFrom(ctx context.Context, srcAddr string, ref types.ObjRef) (ChunkStream, error)
}

// transfer tracks one in-flight inbound delivery so a second StartDelivery
// for the same ref attaches instead of pulling twice.
type transfer struct {
	done chan struct{}
	err  error
}

// StartDelivery pulls the payload for ref from the store at srcAddr. It
// returns once the payload is finalized locally (reporting readiness to the
// scheduler) or the transfer failed. Concurrent calls for the same ref share
// one transfer; a call for an already-finalized ref is a no-op.
func (s *Store) StartDelivery(ctx context.Context, srcAddr string, ref types.ObjRef) error {
	s.mu.Lock()
	c := s.resolveLocked(ref)
	if _, ok := s.freed[c]; ok {
		s.mu.Unlock()
		return ErrDeallocated
	}
	if p, ok := s.objects[c]; ok && p.finalized {
		s.mu.Unlock()
		return nil
	}
	if t, ok := s.inflight[c]; ok {
		s.mu.Unlock()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.done:
			return t.err
		}
	}
	t := &transfer{done: make(chan struct{})}
	s.inflight[c] = t
	s.mu.Unlock()

	data, metadataOffset, err := s.pull(ctx, srcAddr, c)

	s.mu.Lock()
	delete(s.inflight, c)
	if err == nil {
		s.objects[c] = &payload{data: data, metadataOffset: metadataOffset, finalized: true}
		s.bytes += int64(len(data))
		s.metrics.UpdateStoreStats(len(s.objects), s.bytes)
		s.wakeLocked(c)
	}
	s.mu.Unlock()

	t.err = err
	close(t.done)
	if err != nil {
		log.Warn("delivery failed",
			"objref", uint64(c), "source", srcAddr, "error", err)
		return err
	}

	log.Debug("delivery completed",
		"objref", uint64(c), "source", srcAddr, "size", len(data))
	if rerr := s.reporter.ObjReady(ctx, c, s.id); rerr != nil {
		return fmt.Errorf("readiness report failed: %w", rerr)
	}
	return nil
}

// pull drains one chunk stream into a fully assembled payload. The first
// chunk's total_size and metadata_offset are authoritative; every later
// chunk must repeat them, and the assembled bytes must cover total_size
// exactly.
func (s *Store) pull(ctx context.Context, srcAddr string, ref types.ObjRef) ([]byte, uint64, error) {
	stream, err := s.peers.StreamObjFrom(ctx, srcAddr, ref)
	if err != nil {
		return nil, 0, fmt.Errorf("open stream from %s: %w", srcAddr, err)
	}

	first, err := stream.Recv()
	if err != nil {
		return nil, 0, fmt.Errorf("receive first chunk: %w", err)
	}
	totalSize := first.TotalSize
	metadataOffset := first.MetadataOffset
	if metadataOffset > totalSize {
		return nil, 0, fmt.Errorf("%w: metadata offset %d beyond size %d", ErrChunkMismatch, metadataOffset, totalSize)
	}
	buf := make([]byte, totalSize)
	offset := uint64(0)

	chunk := first
	for {
		if chunk.TotalSize != totalSize || chunk.MetadataOffset != metadataOffset {
			return nil, 0, fmt.Errorf("%w: header changed mid-stream", ErrChunkMismatch)
		}
		if offset+uint64(len(chunk.Data)) > totalSize {
			return nil, 0, fmt.Errorf("%w: stream overruns announced size %d", ErrChunkMismatch, totalSize)
		}
		copy(buf[offset:], chunk.Data)
		offset += uint64(len(chunk.Data))

		chunk, err = stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("receive chunk: %w", err)
		}
	}
	if offset != totalSize {
		return nil, 0, fmt.Errorf("%w: received %d of %d bytes", ErrChunkMismatch, offset, totalSize)
	}
	return buf, metadataOffset, nil
}

// SendChunks writes a finalized payload to the given sink in ChunkSize
// frames, repeating the shared header on every chunk. A zero-length payload
// still produces one (empty) chunk so the receiver learns the header.
func (s *Store) SendChunks(ref types.ObjRef, send func(*rayv1.ObjChunk) error) error {
	data, metadataOffset, err := s.Lookup(ref)
	if err != nil {
		return err
	}
	total := uint64(len(data))
	for offset := 0; ; offset += s.cfg.ChunkSize {
		end := offset + s.cfg.ChunkSize
		if end > len(data) {
			end = len(data)
		}
		if err := send(&rayv1.ObjChunk{
			TotalSize:      total,
			MetadataOffset: metadataOffset,
			Data:           data[offset:end],
		}); err != nil {
			return err
		}
		if end == len(data) {
			return nil
		}
	}
}

// GrpcPeers implements Peers over gRPC with one cached connection per peer.
type GrpcPeers struct {
	mu    sync.Mutex
	conns map[string]*grpc.ClientConn
}

func NewGrpcPeers() *GrpcPeers {
	return &GrpcPeers{conns: make(map[string]*grpc.ClientConn)}
}

func (g *GrpcPeers) conn(addr string) (*grpc.ClientConn, error) {
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
func (g *GrpcPeers) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for addr, conn := range g.conns {
		_ = conn.Close()
		delete(g.conns, addr)
	}
}

func (g *GrpcPeers) StreamObjFrom(ctx context.Context, srcAddr string, ref types.ObjRef) (ChunkStream, error) {
	conn, err := g.conn(srcAddr)
	if err != nil {
		return nil, err
	}
	return rayv1.NewObjStoreClient(conn).StreamObjTo(ctx, &rayv1.StreamObjToRequest{Objref: uint64(ref)})
}

// GrpcReporter implements Reporter against the scheduler service.
type GrpcReporter struct {
	client rayv1.SchedulerClient
}

func NewGrpcReporter(conn grpc.ClientConnInterface) *GrpcReporter {
	return &GrpcReporter{client: rayv1.NewSchedulerClient(conn)}
}

func (r *GrpcReporter) ObjReady(ctx context.Context, ref types.ObjRef, store types.ObjStoreID) error {
	_, err := r.client.ObjReady(ctx, &rayv1.ObjReadyRequest{
		Objref:     uint64(ref),
		ObjstoreId: uint64(store),
	})
	return err
}
