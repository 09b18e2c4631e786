// Package objstore implements the per-node object store: a map from
// canonical object references to immutable payloads, a streamed transfer
// engine for pulling payloads from peer stores, and local alias resolution.
package objstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vivi/ray/internal/metrics"
	"github.com/vivi/ray/pkg/types"
)

var log = slog.Default()

var (
	// ErrNotFound is returned for refs this store does not hold.
	ErrNotFound = errors.New("object not found")

	// ErrNotFinalized is returned when streaming is requested for a payload
	// still being written.
	ErrNotFinalized = errors.New("object not finalized")

	// ErrFinalized is returned when a write names an already-finalized
	// payload; finalized payloads are immutable.
	ErrFinalized = errors.New("object already finalized")

	// ErrDeallocated is returned for refs freed on scheduler command.
	ErrDeallocated = errors.New("object deallocated")

	// ErrTaskFailed is returned to readers of a ref whose producing task
	// failed; the captured message is attached.
	ErrTaskFailed = errors.New("producing task failed")

	// ErrChunkMismatch is returned when a stream's chunks disagree on
	// total_size or metadata_offset, or overrun the announced size.
	ErrChunkMismatch = errors.New("inconsistent chunk stream")
)

// Reporter is the store's outbound surface towards the scheduler.
type Reporter interface {
	ObjReady(ctx context.Context, ref types.ObjRef, store types.ObjStoreID) error
}

// payload is one stored object. The blob is partitioned at metadataOffset
// into a serialized-object prefix and a binary-buffer suffix; the store
// treats both opaquely. Once finalized the bytes are immutable.
type payload struct {
	data           []byte
	metadataOffset uint64
	finalized      bool
}

// ObjInfo is one entry of a diagnostic snapshot.
type ObjInfo struct {
	Ref            types.ObjRef
	TotalSize      uint64
	MetadataOffset uint64
	Finalized      bool
}

// Config carries the store's tunables.
type Config struct {
	// ChunkSize bounds the data field of each streamed chunk so frames fit
	// RPC message limits.
	ChunkSize int
}

const defaultChunkSize = 8 << 20

// Store is one node's object store.
type Store struct {
	id       types.ObjStoreID
	addr     string
	reporter Reporter
	peers    Peers
	metrics  *metrics.Collector
	cfg      Config

	mu       sync.RWMutex
	objects  map[types.ObjRef]*payload
	aliases  map[types.ObjRef]types.ObjRef // local alias -> canonical
	failures map[types.ObjRef]string
	freed    map[types.ObjRef]struct{}
	inflight map[types.ObjRef]*transfer
	waiters  map[types.ObjRef][]chan struct{}
	bytes    int64
}

// New builds a store that has already been registered with the scheduler
// under the given id.
func New(id types.ObjStoreID, addr string, cfg Config, reporter Reporter, peers Peers, m *metrics.Collector) *Store {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = defaultChunkSize
	}
	return &Store{
		id:       id,
		addr:     addr,
		reporter: reporter,
		peers:    peers,
		metrics:  m,
		cfg:      cfg,
		objects:  make(map[types.ObjRef]*payload),
		aliases:  make(map[types.ObjRef]types.ObjRef),
		failures: make(map[types.ObjRef]string),
		freed:    make(map[types.ObjRef]struct{}),
		inflight: make(map[types.ObjRef]*transfer),
		waiters:  make(map[types.ObjRef][]chan struct{}),
	}
}

// ID returns the store's scheduler-assigned id.
func (s *Store) ID() types.ObjStoreID { return s.id }

// Address returns the store's listen address.
func (s *Store) Address() string { return s.addr }

// resolveLocked follows locally known aliases to the canonical ref.
func (s *Store) resolveLocked(r types.ObjRef) types.ObjRef {
	for {
		next, ok := s.aliases[r]
		if !ok {
			return r
		}
		r = next
	}
}

// failureLocked reports the recorded task failure for r, if any, checking
// both the requested name and its local canonical.
func (s *Store) failureLocked(r, c types.ObjRef) (string, bool) {
	if msg, ok := s.failures[r]; ok {
		return msg, true
	}
	if msg, ok := s.failures[c]; ok {
		return msg, true
	}
	return "", false
}

// wakeLocked releases everyone blocked on r; they re-check state.
func (s *Store) wakeLocked(r types.ObjRef) {
	for _, ch := range s.waiters[r] {
		close(ch)
	}
	delete(s.waiters, r)
}

// Put stores a payload produced locally, finalizes it and reports readiness
// to the scheduler.
func (s *Store) Put(ctx context.Context, ref types.ObjRef, data []byte, metadataOffset uint64) error {
	s.mu.Lock()
	c := s.resolveLocked(ref)
	if _, ok := s.freed[c]; ok {
		s.mu.Unlock()
		return ErrDeallocated
	}
	if p, ok := s.objects[c]; ok && p.finalized {
		s.mu.Unlock()
		return ErrFinalized
	}
	if metadataOffset > uint64(len(data)) {
		s.mu.Unlock()
		return fmt.Errorf("%w: metadata offset %d beyond size %d", ErrChunkMismatch, metadataOffset, len(data))
	}
	s.objects[c] = &payload{data: data, metadataOffset: metadataOffset, finalized: true}
	s.bytes += int64(len(data))
	s.metrics.UpdateStoreStats(len(s.objects), s.bytes)
	s.wakeLocked(c)
	s.wakeLocked(ref)
	s.mu.Unlock()

	log.Debug("object stored", "objref", uint64(ref), "size", len(data))
	if err := s.reporter.ObjReady(ctx, ref, s.id); err != nil {
		return fmt.Errorf("readiness report failed: %w", err)
	}
	return nil
}

// Get returns the finalized payload for ref, blocking until it is available
// locally, the producing task fails, or ctx is done.
func (s *Store) Get(ctx context.Context, ref types.ObjRef) ([]byte, uint64, error) {
	for {
		s.mu.Lock()
		c := s.resolveLocked(ref)
		if msg, ok := s.failureLocked(ref, c); ok {
			s.mu.Unlock()
			return nil, 0, fmt.Errorf("%w: %s", ErrTaskFailed, msg)
		}
		if _, ok := s.freed[c]; ok {
			s.mu.Unlock()
			return nil, 0, ErrDeallocated
		}
		if p, ok := s.objects[c]; ok && p.finalized {
			s.mu.Unlock()
			return p.data, p.metadataOffset, nil
		}
		// Block under the resolved name only; NotifyAlias wakes waiters of
		// the alias so they re-resolve against the new canonical.
		ch := make(chan struct{})
		s.waiters[c] = append(s.waiters[c], ch)
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		case <-ch:
		}
	}
}

// Lookup returns the payload without blocking. Used by the streaming path,
// which must only serve finalized payloads.
func (s *Store) Lookup(ref types.ObjRef) ([]byte, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.resolveLocked(ref)
	if _, ok := s.freed[c]; ok {
		return nil, 0, ErrDeallocated
	}
	p, ok := s.objects[c]
	if !ok {
		return nil, 0, ErrNotFound
	}
	if !p.finalized {
		return nil, 0, ErrNotFinalized
	}
	return p.data, p.metadataOffset, nil
}

// NotifyAlias installs a local alias. Lookups of alias resolve to canonical
// from here on; anyone blocked on the alias re-checks against the canonical.
func (s *Store) NotifyAlias(alias, canonical types.ObjRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if alias == canonical {
		return
	}
	s.aliases[alias] = canonical
	// Re-chain waiters: if the canonical is already finalized they proceed,
	// otherwise they re-block on the canonical.
	s.wakeLocked(alias)
}

// NotifyFailure records a producing-task failure; readers of ref fail with
// the message from here on.
func (s *Store) NotifyFailure(ref types.ObjRef, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[ref] = msg
	s.wakeLocked(ref)
	if c := s.resolveLocked(ref); c != ref {
		s.wakeLocked(c)
	}
}

// Deallocate frees the payload on scheduler command. Idempotent; subsequent
// reads and streams for the ref fail.
func (s *Store) Deallocate(ref types.ObjRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.resolveLocked(ref)
	if p, ok := s.objects[c]; ok {
		s.bytes -= int64(len(p.data))
		delete(s.objects, c)
		s.metrics.UpdateStoreStats(len(s.objects), s.bytes)
	}
	s.freed[c] = struct{}{}
	s.wakeLocked(c)
	log.Debug("object deallocated", "objref", uint64(c))
}

// Snapshot lists held objects. With refs given, only those are reported
// (missing ones are skipped); with none, everything is listed.
func (s *Store) Snapshot(refs []types.ObjRef) []ObjInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []ObjInfo
	appendInfo := func(r types.ObjRef, p *payload) {
		out = append(out, ObjInfo{
			Ref:            r,
			TotalSize:      uint64(len(p.data)),
			MetadataOffset: p.metadataOffset,
			Finalized:      p.finalized,
		})
	}
	if len(refs) == 0 {
		for r, p := range s.objects {
			appendInfo(r, p)
		}
		return out
	}
	for _, r := range refs {
		if p, ok := s.objects[s.resolveLocked(r)]; ok {
			appendInfo(r, p)
		}
	}
	return out
}
