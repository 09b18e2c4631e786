package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivi/ray/pkg/types"
)

func TestIncrementDecrementRoundTrip(t *testing.T) {
	s, _ := newTestScheduler(t)
	driver, _ := registerNode(t, s, "s:1", "driver")

	r, err := s.PushObj(driver)
	require.NoError(t, err)
	require.NoError(t, s.IncrementRefCount([]types.ObjRef{r}))
	require.NoError(t, s.DecrementRefCount([]types.ObjRef{r}))
	assert.Equal(t, uint64(1), s.Info().Counts[r])
}

func TestDuplicatesActPerOccurrence(t *testing.T) {
	s, _ := newTestScheduler(t)
	driver, _ := registerNode(t, s, "s:1", "driver")

	r, err := s.PushObj(driver)
	require.NoError(t, err)
	require.NoError(t, s.IncrementRefCount([]types.ObjRef{r, r, r}))
	assert.Equal(t, uint64(4), s.Info().Counts[r])
	require.NoError(t, s.DecrementRefCount([]types.ObjRef{r, r}))
	assert.Equal(t, uint64(2), s.Info().Counts[r])
}

func TestZeroCountDeallocatesReadyRef(t *testing.T) {
	s, f := newTestScheduler(t)
	driver, store := registerNode(t, s, "s:1", "driver")

	r := pushReady(t, s, driver, store)
	require.NoError(t, s.DecrementRefCount([]types.ObjRef{r}))

	eventually(t, func() bool { return f.deallocCount() == 1 }, "deallocation not issued")
	f.mu.Lock()
	call := f.deallocs[0]
	f.mu.Unlock()
	assert.Equal(t, "s:1", call.addr)
	assert.Equal(t, r, call.ref)

	// Retired for good: every later operation naming r fails.
	assert.ErrorIs(t, s.IncrementRefCount([]types.ObjRef{r}), ErrRetiredObjRef)
	assert.ErrorIs(t, s.ObjReady(r, store), ErrProtocolViolation)
	assert.ErrorIs(t, s.AliasObjRefs(r, r), ErrRetiredObjRef)
	_, notRetired := s.Info().Counts[r]
	assert.False(t, notRetired)
}

func TestZeroCountHeldUntilReady(t *testing.T) {
	s, f := newTestScheduler(t)
	driver, store := registerNode(t, s, "s:1", "driver")

	r, err := s.PushObj(driver)
	require.NoError(t, err)
	require.NoError(t, s.DecrementRefCount([]types.ObjRef{r}))

	// Not ready: deallocation is deferred, the ref still exists.
	assert.Equal(t, 0, f.deallocCount())
	assert.Equal(t, uint64(0), s.Info().Counts[r])

	// Readiness releases the held deallocation.
	require.NoError(t, s.ObjReady(r, store))
	eventually(t, func() bool { return f.deallocCount() == 1 }, "deferred deallocation not issued")
}

func TestContainedCascade(t *testing.T) {
	s, f := newTestScheduler(t)
	driver, store := registerNode(t, s, "s:1", "driver")

	container := pushReady(t, s, driver, store)
	inner1 := pushReady(t, s, driver, store)
	inner2 := pushReady(t, s, driver, store)

	require.NoError(t, s.AddContainedObjRefs(container, []types.ObjRef{inner1, inner2}))
	info := s.Info()
	assert.Equal(t, uint64(2), info.Counts[inner1], "container holds one count")
	assert.Equal(t, uint64(2), info.Counts[inner2])

	// The submitter drops the container: it is freed and its holds on the
	// contained refs are released.
	require.NoError(t, s.DecrementRefCount([]types.ObjRef{container}))
	eventually(t, func() bool { return f.deallocCount() == 1 }, "container not deallocated")

	info = s.Info()
	assert.Equal(t, uint64(1), info.Counts[inner1])
	assert.Equal(t, uint64(1), info.Counts[inner2])

	// Dropping the last holds cascades all the way.
	require.NoError(t, s.DecrementRefCount([]types.ObjRef{inner1, inner2}))
	eventually(t, func() bool { return f.deallocCount() == 3 }, "contained refs not deallocated")
}

func TestCascadeThroughChain(t *testing.T) {
	s, f := newTestScheduler(t)
	driver, store := registerNode(t, s, "s:1", "driver")

	outer := pushReady(t, s, driver, store)
	middle := pushReady(t, s, driver, store)
	inner := pushReady(t, s, driver, store)
	require.NoError(t, s.AddContainedObjRefs(outer, []types.ObjRef{middle}))
	require.NoError(t, s.AddContainedObjRefs(middle, []types.ObjRef{inner}))

	// Drop the independent holds on middle and inner first; only the
	// container chain keeps them alive.
	require.NoError(t, s.DecrementRefCount([]types.ObjRef{middle, inner}))
	assert.Equal(t, 0, f.deallocCount())

	require.NoError(t, s.DecrementRefCount([]types.ObjRef{outer}))
	eventually(t, func() bool { return f.deallocCount() == 3 }, "cascade did not free the chain")
}

func TestContainedSetAtMostOnce(t *testing.T) {
	s, _ := newTestScheduler(t)
	driver, store := registerNode(t, s, "s:1", "driver")

	container := pushReady(t, s, driver, store)
	inner := pushReady(t, s, driver, store)
	require.NoError(t, s.AddContainedObjRefs(container, []types.ObjRef{inner}))
	assert.ErrorIs(t, s.AddContainedObjRefs(container, []types.ObjRef{inner}), ErrProtocolViolation)
	assert.Equal(t, uint64(2), s.Info().Counts[inner], "rejected call must not take holds")
}

func TestDecrementAfterRetireRejected(t *testing.T) {
	s, _ := newTestScheduler(t)
	driver, store := registerNode(t, s, "s:1", "driver")

	r := pushReady(t, s, driver, store)
	require.NoError(t, s.IncrementRefCount([]types.ObjRef{r}))
	require.NoError(t, s.DecrementRefCount([]types.ObjRef{r}))
	require.NoError(t, s.DecrementRefCount([]types.ObjRef{r}))
	// r is now retired; a further decrement names a retired ref.
	assert.ErrorIs(t, s.DecrementRefCount([]types.ObjRef{r}), ErrRetiredObjRef)
}

// Task argument holds keep refs alive while queued and running.
func TestTaskHoldsKeepArgumentsAlive(t *testing.T) {
	s, f := newTestScheduler(t)
	w, store := registerNode(t, s, "s:1", "w:1")
	require.NoError(t, s.RegisterFunction(w, "identity", 1))

	r := pushReady(t, s, w, store)
	_, _, err := s.SubmitTask(&types.Task{
		Function: "identity",
		Args:     []types.Arg{types.RefArg(r), types.RefArg(r)},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), s.Info().Counts[r], "one hold per argument occurrence")

	// The submitter drops its own hold mid-flight; the task holds keep the
	// payload alive.
	require.NoError(t, s.DecrementRefCount([]types.ObjRef{r}))
	assert.Equal(t, 0, f.deallocCount())

	eventually(t, func() bool { return f.executeCount() == 1 }, "task not dispatched")
	op := s.Tasks()[0].Operation
	require.NoError(t, s.ReadyForNewTask(w, &types.PreviousTaskInfo{Operation: op, Succeeded: true}))

	eventually(t, func() bool { return f.deallocCount() == 1 }, "argument not freed after task finished")
}
