// Package types defines the core domain model shared by the scheduler,
// the object stores and the workers.
package types

// Identifiers are allocated by the scheduler, start at 1 and are never
// reused within a cluster lifetime.
type (
	// WorkerID identifies a registered worker process.
	WorkerID uint64
	// ObjStoreID identifies a per-node object store.
	ObjStoreID uint64
	// ObjRef identifies a logical object whose payload may or may not yet
	// exist in any object store.
	ObjRef uint64
	// OperationID identifies a submitted task.
	OperationID uint64
)

// WorkerState tracks the lifecycle of a worker as seen by the scheduler.
type WorkerState string

const (
	// WorkerRegistering: RegisterWorker accepted, no ReadyForNewTask yet.
	WorkerRegistering WorkerState = "registering"
	// WorkerIdle: ready to receive a task.
	WorkerIdle WorkerState = "idle"
	// WorkerBusy: a task has been matched or dispatched to the worker.
	WorkerBusy WorkerState = "busy"
)

// TaskStatus tracks the lifecycle of a submitted task.
type TaskStatus string

const (
	TaskQueued    TaskStatus = "queued"
	TaskRunning   TaskStatus = "running"
	TaskSucceeded TaskStatus = "succeeded"
	TaskFailed    TaskStatus = "failed"
)

// Arg is one task argument: either an object reference or an inline
// serialized value.
type Arg struct {
	IsRef bool
	Ref   ObjRef
	Data  []byte
}

// RefArg builds an object-reference argument.
func RefArg(r ObjRef) Arg { return Arg{IsRef: true, Ref: r} }

// DataArg builds an inline-value argument.
func DataArg(b []byte) Arg { return Arg{Data: b} }

// Task is the scheduler's record of one function invocation.
type Task struct {
	Operation OperationID
	Function  string
	Args      []Arg
	Results   []ObjRef
	Worker    WorkerID // assigned worker, 0 until matched
	Status    TaskStatus
	Error     string // set when Status == TaskFailed
}

// Worker is the scheduler's record of a registered worker.
type Worker struct {
	ID      WorkerID
	Address string
	Store   ObjStoreID
	State   WorkerState
	Current OperationID // running operation, 0 when idle
}

// Store is the scheduler's record of a registered object store.
type Store struct {
	ID      ObjStoreID
	Address string
}

// PreviousTaskInfo is the outcome a worker reports when asking for its
// next task.
type PreviousTaskInfo struct {
	Operation OperationID
	Succeeded bool
	Error     string
}
