package scheduler

import (
	rayv1 "github.com/vivi/ray/api/proto/v1"
	"github.com/vivi/ray/pkg/types"
)

func taskToWire(t *types.Task) *rayv1.Task {
	w := &rayv1.Task{
		OperationId: uint64(t.Operation),
		Name:        t.Function,
	}
	for _, arg := range t.Args {
		if arg.IsRef {
			w.Arg = append(w.Arg, &rayv1.Value{IsRef: true, ObjRef: uint64(arg.Ref)})
		} else {
			w.Arg = append(w.Arg, &rayv1.Value{Data: arg.Data})
		}
	}
	for _, r := range t.Results {
		w.Result = append(w.Result, uint64(r))
	}
	return w
}

func taskFromWire(w *rayv1.Task) *types.Task {
	t := &types.Task{
		Operation: types.OperationID(w.OperationId),
		Function:  w.Name,
	}
	for _, arg := range w.Arg {
		if arg.IsRef {
			t.Args = append(t.Args, types.RefArg(types.ObjRef(arg.ObjRef)))
		} else {
			t.Args = append(t.Args, types.DataArg(arg.Data))
		}
	}
	for _, r := range w.Result {
		t.Results = append(t.Results, types.ObjRef(r))
	}
	return t
}
