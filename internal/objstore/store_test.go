package objstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rayv1 "github.com/vivi/ray/api/proto/v1"
	"github.com/vivi/ray/internal/metrics"
	"github.com/vivi/ray/pkg/types"
)

type readyCall struct {
	ref   types.ObjRef
	store types.ObjStoreID
}

type fakeReporter struct {
	mu    sync.Mutex
	calls []readyCall
}

func (f *fakeReporter) ObjReady(ctx context.Context, ref types.ObjRef, store types.ObjStoreID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, readyCall{ref: ref, store: store})
	return nil
}

func (f *fakeReporter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeStream struct {
	chunks []*rayv1.ObjChunk
	err    error
	i      int
}

func (f *fakeStream) Recv() (*rayv1.ObjChunk, error) {
	if f.i < len(f.chunks) {
		c := f.chunks[f.i]
		f.i++
		return c, nil
	}
	if f.err != nil {
		return nil, f.err
	}
	return nil, io.EOF
}

type fakePeers struct {
	mu      sync.Mutex
	pulls   int
	streams func(srcAddr string, ref types.ObjRef) ChunkStream
}

func (f *fakePeers) StreamObjFrom(ctx context.Context, srcAddr string, ref types.ObjRef) (ChunkStream, error) {
	f.mu.Lock()
	f.pulls++
	f.mu.Unlock()
	if f.streams == nil {
		return nil, errors.New("no stream configured")
	}
	return f.streams(srcAddr, ref), nil
}

func (f *fakePeers) pullCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pulls
}

func newTestStore(t *testing.T, chunkSize int) (*Store, *fakeReporter, *fakePeers) {
	t.Helper()
	// Reset Prometheus registry to avoid duplicate registration
	prometheus.DefaultRegisterer = prometheus.NewRegistry()
	reporter := &fakeReporter{}
	peers := &fakePeers{}
	s := New(1, "s:1", Config{ChunkSize: chunkSize}, reporter, peers, metrics.NewCollector())
	return s, reporter, peers
}

func TestPutGetRoundTrip(t *testing.T) {
	s, reporter, _ := newTestStore(t, 0)
	ctx := context.Background()

	payload := []byte{0xAB, 0x01, 0x02}
	require.NoError(t, s.Put(ctx, 1, payload, 1))

	data, metadataOffset, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, uint64(1), metadataOffset)

	require.Equal(t, 1, reporter.count())
	assert.Equal(t, readyCall{ref: 1, store: 1}, reporter.calls[0])
}

func TestFinalizedPayloadImmutable(t *testing.T) {
	s, _, _ := newTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, 1, []byte("x"), 0))
	assert.ErrorIs(t, s.Put(ctx, 1, []byte("y"), 0), ErrFinalized)

	data, _, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), data)
}

func TestGetBlocksUntilPut(t *testing.T) {
	s, _, _ := newTestStore(t, 0)
	ctx := context.Background()

	done := make(chan []byte, 1)
	go func() {
		data, _, err := s.Get(ctx, 1)
		if err != nil {
			done <- nil
			return
		}
		done <- data
	}()

	select {
	case <-done:
		t.Fatal("Get returned before the payload existed")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, s.Put(ctx, 1, []byte("late"), 0))
	select {
	case data := <-done:
		assert.Equal(t, []byte("late"), data)
	case <-time.After(2 * time.Second):
		t.Fatal("Get did not observe the put")
	}
}

func TestGetHonorsContext(t *testing.T) {
	s, _, _ := newTestStore(t, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err := s.Get(ctx, 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSendChunksSplitsAndRepeatsHeader(t *testing.T) {
	s, _, _ := newTestStore(t, 4)
	ctx := context.Background()

	payload := []byte("0123456789") // 10 bytes -> 3 chunks of <=4
	require.NoError(t, s.Put(ctx, 1, payload, 6))

	var chunks []*rayv1.ObjChunk
	require.NoError(t, s.SendChunks(1, func(c *rayv1.ObjChunk) error {
		chunks = append(chunks, c)
		return nil
	}))
	require.Len(t, chunks, 3)

	var assembled []byte
	for _, c := range chunks {
		assert.Equal(t, uint64(10), c.TotalSize)
		assert.Equal(t, uint64(6), c.MetadataOffset)
		assembled = append(assembled, c.Data...)
	}
	assert.Equal(t, payload, assembled)
}

func TestSendChunksEmptyPayload(t *testing.T) {
	s, _, _ := newTestStore(t, 4)
	require.NoError(t, s.Put(context.Background(), 1, nil, 0))

	var chunks []*rayv1.ObjChunk
	require.NoError(t, s.SendChunks(1, func(c *rayv1.ObjChunk) error {
		chunks = append(chunks, c)
		return nil
	}))
	require.Len(t, chunks, 1, "empty payloads still carry one header chunk")
	assert.Equal(t, uint64(0), chunks[0].TotalSize)
}

func TestSendChunksUnknownRef(t *testing.T) {
	s, _, _ := newTestStore(t, 0)
	err := s.SendChunks(9, func(*rayv1.ObjChunk) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAliasResolvesToCanonical(t *testing.T) {
	s, _, _ := newTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, 3, []byte("payload"), 0))
	s.NotifyAlias(5, 3)

	data, _, err := s.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	// One canonical = one buffer: the snapshot holds a single object.
	assert.Len(t, s.Snapshot(nil), 1)
}

func TestPendingAliasUnblocksOnCanonical(t *testing.T) {
	s, _, _ := newTestStore(t, 0)
	ctx := context.Background()

	// Alias known before the canonical payload exists.
	s.NotifyAlias(5, 3)
	done := make(chan []byte, 1)
	go func() {
		data, _, _ := s.Get(ctx, 5)
		done <- data
	}()

	select {
	case <-done:
		t.Fatal("Get(alias) returned before the canonical was finalized")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, s.Put(ctx, 3, []byte("p"), 0))
	select {
	case data := <-done:
		assert.Equal(t, []byte("p"), data)
	case <-time.After(2 * time.Second):
		t.Fatal("pending alias never satisfied")
	}
}

func TestNotifyFailureFailsReaders(t *testing.T) {
	s, _, _ := newTestStore(t, 0)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, _, err := s.Get(ctx, 20)
		done <- err
	}()
	time.Sleep(10 * time.Millisecond)

	s.NotifyFailure(20, "E")
	select {
	case err := <-done:
		require.ErrorIs(t, err, ErrTaskFailed)
		assert.Contains(t, err.Error(), "E")
	case <-time.After(2 * time.Second):
		t.Fatal("blocked reader not failed")
	}

	// Later readers fail immediately.
	_, _, err := s.Get(ctx, 20)
	assert.ErrorIs(t, err, ErrTaskFailed)
}

func TestDeallocateIdempotent(t *testing.T) {
	s, _, _ := newTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, 1, []byte("x"), 0))
	s.Deallocate(1)
	s.Deallocate(1)

	_, _, err := s.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrDeallocated)
	err = s.SendChunks(1, func(*rayv1.ObjChunk) error { return nil })
	assert.ErrorIs(t, err, ErrDeallocated)
	assert.Empty(t, s.Snapshot(nil))
}

func chunked(data []byte, metadataOffset uint64, size int) []*rayv1.ObjChunk {
	total := uint64(len(data))
	var out []*rayv1.ObjChunk
	for off := 0; ; off += size {
		end := off + size
		if end > len(data) {
			end = len(data)
		}
		out = append(out, &rayv1.ObjChunk{
			TotalSize:      total,
			MetadataOffset: metadataOffset,
			Data:           data[off:end],
		})
		if end == len(data) {
			return out
		}
	}
}

func TestStartDeliveryAssemblesStream(t *testing.T) {
	s, reporter, peers := newTestStore(t, 4)
	payload := bytes.Repeat([]byte("ab"), 10)
	peers.streams = func(srcAddr string, ref types.ObjRef) ChunkStream {
		return &fakeStream{chunks: chunked(payload, 3, 4)}
	}

	require.NoError(t, s.StartDelivery(context.Background(), "s:2", 7))

	data, metadataOffset, err := s.Lookup(7)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, uint64(3), metadataOffset)
	assert.Equal(t, 1, reporter.count())
}

func TestStartDeliveryNoOpWhenHeld(t *testing.T) {
	s, _, peers := newTestStore(t, 0)
	require.NoError(t, s.Put(context.Background(), 7, []byte("x"), 0))

	require.NoError(t, s.StartDelivery(context.Background(), "s:2", 7))
	assert.Equal(t, 0, peers.pullCount(), "no pull for an already finalized ref")
}

func TestConcurrentDeliveriesShareOneTransfer(t *testing.T) {
	s, _, peers := newTestStore(t, 0)
	release := make(chan struct{})
	payload := []byte("shared")
	peers.streams = func(srcAddr string, ref types.ObjRef) ChunkStream {
		<-release
		return &fakeStream{chunks: chunked(payload, 0, 8)}
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.StartDelivery(context.Background(), "s:2", 7)
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, 1, peers.pullCount(), "second call must attach, not re-pull")
}

func TestDeliveryRejectsHeaderDrift(t *testing.T) {
	s, _, peers := newTestStore(t, 0)
	peers.streams = func(srcAddr string, ref types.ObjRef) ChunkStream {
		return &fakeStream{chunks: []*rayv1.ObjChunk{
			{TotalSize: 8, MetadataOffset: 0, Data: []byte("1234")},
			{TotalSize: 9, MetadataOffset: 0, Data: []byte("5678")},
		}}
	}
	err := s.StartDelivery(context.Background(), "s:2", 7)
	assert.ErrorIs(t, err, ErrChunkMismatch)

	_, _, err = s.Lookup(7)
	assert.ErrorIs(t, err, ErrNotFound, "failed transfer must not leave a payload")
}

func TestDeliveryRejectsShortStream(t *testing.T) {
	s, _, peers := newTestStore(t, 0)
	peers.streams = func(srcAddr string, ref types.ObjRef) ChunkStream {
		return &fakeStream{chunks: []*rayv1.ObjChunk{
			{TotalSize: 8, MetadataOffset: 0, Data: []byte("1234")},
		}}
	}
	err := s.StartDelivery(context.Background(), "s:2", 7)
	assert.ErrorIs(t, err, ErrChunkMismatch)
}

func TestDeliveryRejectsOverrun(t *testing.T) {
	s, _, peers := newTestStore(t, 0)
	peers.streams = func(srcAddr string, ref types.ObjRef) ChunkStream {
		return &fakeStream{chunks: []*rayv1.ObjChunk{
			{TotalSize: 2, MetadataOffset: 0, Data: []byte("1234")},
		}}
	}
	err := s.StartDelivery(context.Background(), "s:2", 7)
	assert.ErrorIs(t, err, ErrChunkMismatch)
}

func TestSnapshotFiltersRequestedRefs(t *testing.T) {
	s, _, _ := newTestStore(t, 0)
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, 1, []byte("a"), 0))
	require.NoError(t, s.Put(ctx, 2, []byte("bb"), 1))

	all := s.Snapshot(nil)
	assert.Len(t, all, 2)

	one := s.Snapshot([]types.ObjRef{2, 99})
	require.Len(t, one, 1)
	assert.Equal(t, types.ObjRef(2), one[0].Ref)
	assert.Equal(t, uint64(2), one[0].TotalSize)
	assert.Equal(t, uint64(1), one[0].MetadataOffset)
	assert.True(t, one[0].Finalized)
}
