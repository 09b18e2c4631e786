package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivi/ray/pkg/types"
)

func TestAliasCycleRejected(t *testing.T) {
	s, _ := newTestScheduler(t)
	driver, _ := registerNode(t, s, "s:1", "driver")

	a, err := s.PushObj(driver)
	require.NoError(t, err)
	b, err := s.PushObj(driver)
	require.NoError(t, err)

	assert.ErrorIs(t, s.AliasObjRefs(a, a), ErrAliasCycle)

	require.NoError(t, s.AliasObjRefs(a, b))
	assert.ErrorIs(t, s.AliasObjRefs(b, a), ErrAliasCycle)

	// State unchanged: b is still its own canonical.
	info := s.Info()
	assert.Equal(t, b, info.Targets[b])
}

func TestAliasIdempotent(t *testing.T) {
	s, _ := newTestScheduler(t)
	driver, _ := registerNode(t, s, "s:1", "driver")

	a, err := s.PushObj(driver)
	require.NoError(t, err)
	b, err := s.PushObj(driver)
	require.NoError(t, err)

	require.NoError(t, s.AliasObjRefs(a, b))
	require.NoError(t, s.AliasObjRefs(a, b), "re-asserting an alias is a no-op")

	// Retargeting an existing alias is a protocol violation.
	c, err := s.PushObj(driver)
	require.NoError(t, err)
	assert.ErrorIs(t, s.AliasObjRefs(a, c), ErrProtocolViolation)
}

func TestAliasTransfersRefCount(t *testing.T) {
	s, _ := newTestScheduler(t)
	driver, _ := registerNode(t, s, "s:1", "driver")

	a, err := s.PushObj(driver)
	require.NoError(t, err)
	b, err := s.PushObj(driver)
	require.NoError(t, err)
	require.NoError(t, s.IncrementRefCount([]types.ObjRef{a, a}))

	require.NoError(t, s.AliasObjRefs(a, b))

	info := s.Info()
	// a held 3 (push + two increments), b held 1: all 4 land on b.
	assert.Equal(t, uint64(4), info.Counts[b])
	_, aliasStillCounted := info.Counts[a]
	assert.False(t, aliasStillCounted, "alias holds no independent count")
}

func TestAliasNotifiesHoldingStores(t *testing.T) {
	s, f := newTestScheduler(t)
	driver, store := registerNode(t, s, "s:1", "driver")

	target := pushReady(t, s, driver, store)
	alias, err := s.PushObj(driver)
	require.NoError(t, err)

	require.NoError(t, s.AliasObjRefs(alias, target))
	eventually(t, func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		return len(f.aliases) == 1
	}, "store not notified of alias")

	f.mu.Lock()
	call := f.aliases[0]
	f.mu.Unlock()
	assert.Equal(t, "s:1", call.addr)
	assert.Equal(t, alias, call.alias)
	assert.Equal(t, target, call.canonical)
}

// Readiness is inherited through the alias: a task whose argument names the
// alias becomes schedulable once the canonical is ready (scenario: a worker
// declares its result equal to a pre-existing finalized ref).
func TestAliasInheritsReadiness(t *testing.T) {
	s, f := newTestScheduler(t)
	w, store := registerNode(t, s, "s:1", "w:1")
	require.NoError(t, s.RegisterFunction(w, "identity", 1))

	target := pushReady(t, s, w, store)
	alias, err := s.PushObj(w)
	require.NoError(t, err)

	// Not schedulable yet: the alias has no payload anywhere.
	_, _, err = s.SubmitTask(&types.Task{
		Function: "identity",
		Args:     []types.Arg{types.RefArg(alias)},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, f.executeCount())

	require.NoError(t, s.AliasObjRefs(alias, target))
	eventually(t, func() bool { return f.executeCount() == 1 }, "task not unblocked by aliasing")
}

func TestAliasChainsCompress(t *testing.T) {
	s, _ := newTestScheduler(t)
	driver, _ := registerNode(t, s, "s:1", "driver")

	refs := make([]types.ObjRef, 5)
	for i := range refs {
		r, err := s.PushObj(driver)
		require.NoError(t, err)
		refs[i] = r
	}
	for i := 1; i < len(refs); i++ {
		require.NoError(t, s.AliasObjRefs(refs[i], refs[i-1]))
	}

	info := s.Info()
	for _, r := range refs {
		assert.Equal(t, refs[0], info.Targets[r], "chain must resolve to the terminal ref")
	}
}
