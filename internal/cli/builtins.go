package cli

import (
	"bytes"
	"context"
	"errors"

	"github.com/vivi/ray/internal/worker"
)

// builtinRegistry holds the functions the standalone worker binary offers.
// Embedders building their own worker construct a Registry with real
// application functions instead.
func builtinRegistry() *worker.Registry {
	r := worker.NewRegistry()

	// identity: one value in, the same value out.
	_ = r.Register("identity", 1, func(ctx context.Context, tc *worker.TaskContext, args [][]byte) ([]worker.Output, error) {
		if len(args) != 1 {
			return nil, errors.New("identity expects one argument")
		}
		return []worker.Output{{Data: args[0]}}, nil
	})

	// concat: join every argument payload in order.
	_ = r.Register("concat", 1, func(ctx context.Context, tc *worker.TaskContext, args [][]byte) ([]worker.Output, error) {
		return []worker.Output{{Data: bytes.Join(args, nil)}}, nil
	})

	// split2: break one payload in half, two values out.
	_ = r.Register("split2", 2, func(ctx context.Context, tc *worker.TaskContext, args [][]byte) ([]worker.Output, error) {
		if len(args) != 1 {
			return nil, errors.New("split2 expects one argument")
		}
		mid := len(args[0]) / 2
		return []worker.Output{{Data: args[0][:mid]}, {Data: args[0][mid:]}}, nil
	})

	return r
}
