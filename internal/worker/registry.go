package worker

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vivi/ray/pkg/types"
)

// Output is one result value produced by a task function.
type Output struct {
	Data           []byte
	MetadataOffset uint64
	// Contained lists refs embedded inside the payload; the worker reports
	// them so the scheduler can hold them on the container's behalf.
	Contained []types.ObjRef
}

// Function executes one task invocation. args carries the materialized
// arguments in order: payload bytes for ref arguments, the inline bytes
// otherwise. It must return exactly as many outputs as the registered arity.
type Function func(ctx context.Context, tc *TaskContext, args [][]byte) ([]Output, error)

type registration struct {
	arity uint64
	fn    Function
}

// Registry maps function names to implementations. Functions are registered
// before the worker connects and announced to the scheduler as a batch.
type Registry struct {
	mu  sync.RWMutex
	fns map[string]registration
}

func NewRegistry() *Registry {
	return &Registry{fns: make(map[string]registration)}
}

// Register adds a function under name with the given return arity.
func (r *Registry) Register(name string, arity uint64, fn Function) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fns[name]; ok {
		return fmt.Errorf("function %q already registered", name)
	}
	r.fns[name] = registration{arity: arity, fn: fn}
	return nil
}

func (r *Registry) lookup(name string) (Function, uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.fns[name]
	return reg.fn, reg.arity, ok
}

// Names lists registered functions in stable order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.fns))
	for name := range r.fns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Arity reports the registered return arity for name.
func (r *Registry) Arity(name string) (uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.fns[name]
	return reg.arity, ok
}
