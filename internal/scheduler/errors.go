package scheduler

import "errors"

var (
	// ErrArityMismatch is returned by RegisterFunction when a worker
	// registers a function with a different return arity than previously
	// recorded. The offending worker is not added to the eligible set.
	ErrArityMismatch = errors.New("function arity mismatch")

	// ErrAliasCycle is returned by AliasObjRefs when the requested alias
	// would close a cycle in the alias graph. State is unchanged.
	ErrAliasCycle = errors.New("alias would create a cycle")

	// ErrRetiredObjRef is returned by any operation naming a reference
	// whose count reached zero and was deallocated.
	ErrRetiredObjRef = errors.New("object reference retired")

	// ErrUnknownObjRef is returned for references never allocated by this
	// scheduler.
	ErrUnknownObjRef = errors.New("unknown object reference")

	// ErrUnknownWorker is returned for worker ids not registered.
	ErrUnknownWorker = errors.New("unknown worker")

	// ErrUnknownObjStore is returned for store ids or addresses not
	// registered.
	ErrUnknownObjStore = errors.New("unknown object store")

	// ErrTaskFailed is returned when reading through a reference whose
	// producing task failed; the task's captured message travels with it.
	ErrTaskFailed = errors.New("producing task failed")

	// ErrProtocolViolation covers malformed peer traffic: ObjReady for a
	// retired ref, a second AddContainedObjRefs for the same container,
	// ReadyForNewTask for an operation not running on that worker.
	ErrProtocolViolation = errors.New("protocol violation")
)
