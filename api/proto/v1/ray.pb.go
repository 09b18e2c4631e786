package rayv1

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// ---------------------------------------------------------------------------
// Common messages
// ---------------------------------------------------------------------------

// AckReply is the empty acknowledgement returned by most operations.
type AckReply struct{}

func (m *AckReply) MarshalWire() ([]byte, error) { return nil, nil }

func (m *AckReply) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		n, err := skipField(b, num, typ)
		if err != nil {
			return fieldError("AckReply", num, err)
		}
		b = b[n:]
	}
	return nil
}

// Value is one task argument: an object reference or an inline serialized
// value.
type Value struct {
	IsRef  bool
	ObjRef uint64
	Data   []byte
}

func (m *Value) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendBool(b, 1, m.IsRef)
	b = appendUint64(b, 2, m.ObjRef)
	b = appendBytes(b, 3, m.Data)
	return b, nil
}

func (m *Value) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.IsRef, n, err = consumeBool(b)
		case 2:
			m.ObjRef, n, err = consumeUint64(b)
		case 3:
			m.Data, n, err = consumeBytes(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("Value", num, err)
		}
		b = b[n:]
	}
	return nil
}

// Task describes one function invocation.
type Task struct {
	OperationId uint64
	Name        string
	Arg         []*Value
	Result      []uint64
}

func (m *Task) MarshalWire() ([]byte, error) {
	var b []byte
	var err error
	b = appendUint64(b, 1, m.OperationId)
	b = appendString(b, 2, m.Name)
	for _, a := range m.Arg {
		if b, err = appendMessage(b, 3, a); err != nil {
			return nil, err
		}
	}
	b = appendRepeatedUint64(b, 4, m.Result)
	return b, nil
}

func (m *Task) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.OperationId, n, err = consumeUint64(b)
		case 2:
			m.Name, n, err = consumeString(b)
		case 3:
			a := new(Value)
			if n, err = consumeMessage(b, a); err == nil {
				m.Arg = append(m.Arg, a)
			}
		case 4:
			m.Result, n, err = consumeRepeatedUint64(b, typ, m.Result)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("Task", num, err)
		}
		b = b[n:]
	}
	return nil
}

// ObjChunk is one frame of a streamed payload. TotalSize and MetadataOffset
// are repeated on every chunk; the first chunk is authoritative.
type ObjChunk struct {
	TotalSize      uint64
	MetadataOffset uint64
	Data           []byte
}

func (m *ObjChunk) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendUint64(b, 1, m.TotalSize)
	b = appendUint64(b, 2, m.MetadataOffset)
	b = appendBytes(b, 3, m.Data)
	return b, nil
}

func (m *ObjChunk) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.TotalSize, n, err = consumeUint64(b)
		case 2:
			m.MetadataOffset, n, err = consumeUint64(b)
		case 3:
			m.Data, n, err = consumeBytes(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("ObjChunk", num, err)
		}
		b = b[n:]
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scheduler service messages
// ---------------------------------------------------------------------------

type RegisterWorkerRequest struct {
	WorkerAddress   string
	ObjstoreAddress string
}

func (m *RegisterWorkerRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.WorkerAddress)
	b = appendString(b, 2, m.ObjstoreAddress)
	return b, nil
}

func (m *RegisterWorkerRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.WorkerAddress, n, err = consumeString(b)
		case 2:
			m.ObjstoreAddress, n, err = consumeString(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("RegisterWorkerRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type RegisterWorkerReply struct {
	WorkerId   uint64
	ObjstoreId uint64
}

func (m *RegisterWorkerReply) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendUint64(b, 1, m.WorkerId)
	b = appendUint64(b, 2, m.ObjstoreId)
	return b, nil
}

func (m *RegisterWorkerReply) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.WorkerId, n, err = consumeUint64(b)
		case 2:
			m.ObjstoreId, n, err = consumeUint64(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("RegisterWorkerReply", num, err)
		}
		b = b[n:]
	}
	return nil
}

type RegisterObjStoreRequest struct {
	ObjstoreAddress string
}

func (m *RegisterObjStoreRequest) MarshalWire() ([]byte, error) {
	return appendString(nil, 1, m.ObjstoreAddress), nil
}

func (m *RegisterObjStoreRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.ObjstoreAddress, n, err = consumeString(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("RegisterObjStoreRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type RegisterObjStoreReply struct {
	ObjstoreId uint64
}

func (m *RegisterObjStoreReply) MarshalWire() ([]byte, error) {
	return appendUint64(nil, 1, m.ObjstoreId), nil
}

func (m *RegisterObjStoreReply) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.ObjstoreId, n, err = consumeUint64(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("RegisterObjStoreReply", num, err)
		}
		b = b[n:]
	}
	return nil
}

type RegisterFunctionRequest struct {
	WorkerId      uint64
	FunctionName  string
	NumReturnVals uint64
}

func (m *RegisterFunctionRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendUint64(b, 1, m.WorkerId)
	b = appendString(b, 2, m.FunctionName)
	b = appendUint64(b, 3, m.NumReturnVals)
	return b, nil
}

func (m *RegisterFunctionRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.WorkerId, n, err = consumeUint64(b)
		case 2:
			m.FunctionName, n, err = consumeString(b)
		case 3:
			m.NumReturnVals, n, err = consumeUint64(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("RegisterFunctionRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type SubmitTaskRequest struct {
	Task *Task
}

func (m *SubmitTaskRequest) MarshalWire() ([]byte, error) {
	var b []byte
	var err error
	if m.Task != nil {
		if b, err = appendMessage(b, 1, m.Task); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *SubmitTaskRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.Task = new(Task)
			n, err = consumeMessage(b, m.Task)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("SubmitTaskRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type SubmitTaskReply struct {
	Result             []uint64
	FunctionRegistered bool
}

func (m *SubmitTaskReply) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendRepeatedUint64(b, 1, m.Result)
	b = appendBool(b, 2, m.FunctionRegistered)
	return b, nil
}

func (m *SubmitTaskReply) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.Result, n, err = consumeRepeatedUint64(b, typ, m.Result)
		case 2:
			m.FunctionRegistered, n, err = consumeBool(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("SubmitTaskReply", num, err)
		}
		b = b[n:]
	}
	return nil
}

type PushObjRequest struct {
	WorkerId uint64
}

func (m *PushObjRequest) MarshalWire() ([]byte, error) {
	return appendUint64(nil, 1, m.WorkerId), nil
}

func (m *PushObjRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.WorkerId, n, err = consumeUint64(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("PushObjRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type PushObjReply struct {
	Objref uint64
}

func (m *PushObjReply) MarshalWire() ([]byte, error) {
	return appendUint64(nil, 1, m.Objref), nil
}

func (m *PushObjReply) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.Objref, n, err = consumeUint64(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("PushObjReply", num, err)
		}
		b = b[n:]
	}
	return nil
}

type RequestObjRequest struct {
	WorkerId uint64
	Objref   uint64
}

func (m *RequestObjRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendUint64(b, 1, m.WorkerId)
	b = appendUint64(b, 2, m.Objref)
	return b, nil
}

func (m *RequestObjRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.WorkerId, n, err = consumeUint64(b)
		case 2:
			m.Objref, n, err = consumeUint64(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("RequestObjRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type AliasObjRefsRequest struct {
	AliasObjref  uint64
	TargetObjref uint64
}

func (m *AliasObjRefsRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendUint64(b, 1, m.AliasObjref)
	b = appendUint64(b, 2, m.TargetObjref)
	return b, nil
}

func (m *AliasObjRefsRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.AliasObjref, n, err = consumeUint64(b)
		case 2:
			m.TargetObjref, n, err = consumeUint64(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("AliasObjRefsRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type ObjReadyRequest struct {
	Objref     uint64
	ObjstoreId uint64
}

func (m *ObjReadyRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendUint64(b, 1, m.Objref)
	b = appendUint64(b, 2, m.ObjstoreId)
	return b, nil
}

func (m *ObjReadyRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.Objref, n, err = consumeUint64(b)
		case 2:
			m.ObjstoreId, n, err = consumeUint64(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("ObjReadyRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

// ChangeCountRequest is the single-ref count adjustment used by submitters.
type ChangeCountRequest struct {
	Objref uint64
}

func (m *ChangeCountRequest) MarshalWire() ([]byte, error) {
	return appendUint64(nil, 1, m.Objref), nil
}

func (m *ChangeCountRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.Objref, n, err = consumeUint64(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("ChangeCountRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

// ChangeRefCountRequest is the batch count adjustment used by workers.
// Duplicates act per occurrence.
type ChangeRefCountRequest struct {
	Objref []uint64
}

func (m *ChangeRefCountRequest) MarshalWire() ([]byte, error) {
	return appendRepeatedUint64(nil, 1, m.Objref), nil
}

func (m *ChangeRefCountRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.Objref, n, err = consumeRepeatedUint64(b, typ, m.Objref)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("ChangeRefCountRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type AddContainedObjRefsRequest struct {
	Objref          uint64
	ContainedObjref []uint64
}

func (m *AddContainedObjRefsRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendUint64(b, 1, m.Objref)
	b = appendRepeatedUint64(b, 2, m.ContainedObjref)
	return b, nil
}

func (m *AddContainedObjRefsRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.Objref, n, err = consumeUint64(b)
		case 2:
			m.ContainedObjref, n, err = consumeRepeatedUint64(b, typ, m.ContainedObjref)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("AddContainedObjRefsRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type PreviousTaskInfo struct {
	OperationId   uint64
	TaskSucceeded bool
	ErrorMessage  string
}

func (m *PreviousTaskInfo) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendUint64(b, 1, m.OperationId)
	b = appendBool(b, 2, m.TaskSucceeded)
	b = appendString(b, 3, m.ErrorMessage)
	return b, nil
}

func (m *PreviousTaskInfo) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.OperationId, n, err = consumeUint64(b)
		case 2:
			m.TaskSucceeded, n, err = consumeBool(b)
		case 3:
			m.ErrorMessage, n, err = consumeString(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("PreviousTaskInfo", num, err)
		}
		b = b[n:]
	}
	return nil
}

type ReadyForNewTaskRequest struct {
	WorkerId     uint64
	PreviousTask *PreviousTaskInfo
}

func (m *ReadyForNewTaskRequest) MarshalWire() ([]byte, error) {
	var b []byte
	var err error
	b = appendUint64(b, 1, m.WorkerId)
	if m.PreviousTask != nil {
		if b, err = appendMessage(b, 2, m.PreviousTask); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ReadyForNewTaskRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.WorkerId, n, err = consumeUint64(b)
		case 2:
			m.PreviousTask = new(PreviousTaskInfo)
			n, err = consumeMessage(b, m.PreviousTask)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("ReadyForNewTaskRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type SchedulerInfoRequest struct{}

func (m *SchedulerInfoRequest) MarshalWire() ([]byte, error) { return nil, nil }

func (m *SchedulerInfoRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		n, err := skipField(b, num, typ)
		if err != nil {
			return fieldError("SchedulerInfoRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type LocationEntry struct {
	Objref     uint64
	ObjstoreId []uint64
}

func (m *LocationEntry) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendUint64(b, 1, m.Objref)
	b = appendRepeatedUint64(b, 2, m.ObjstoreId)
	return b, nil
}

func (m *LocationEntry) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.Objref, n, err = consumeUint64(b)
		case 2:
			m.ObjstoreId, n, err = consumeRepeatedUint64(b, typ, m.ObjstoreId)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("LocationEntry", num, err)
		}
		b = b[n:]
	}
	return nil
}

type RefCountEntry struct {
	Objref uint64
	Count  uint64
}

func (m *RefCountEntry) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendUint64(b, 1, m.Objref)
	b = appendUint64(b, 2, m.Count)
	return b, nil
}

func (m *RefCountEntry) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.Objref, n, err = consumeUint64(b)
		case 2:
			m.Count, n, err = consumeUint64(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("RefCountEntry", num, err)
		}
		b = b[n:]
	}
	return nil
}

type TargetEntry struct {
	Objref uint64
	Target uint64
}

func (m *TargetEntry) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendUint64(b, 1, m.Objref)
	b = appendUint64(b, 2, m.Target)
	return b, nil
}

func (m *TargetEntry) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.Objref, n, err = consumeUint64(b)
		case 2:
			m.Target, n, err = consumeUint64(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("TargetEntry", num, err)
		}
		b = b[n:]
	}
	return nil
}

type FunctionEntry struct {
	Name          string
	NumReturnVals uint64
	WorkerId      []uint64
}

func (m *FunctionEntry) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.Name)
	b = appendUint64(b, 2, m.NumReturnVals)
	b = appendRepeatedUint64(b, 3, m.WorkerId)
	return b, nil
}

func (m *FunctionEntry) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.Name, n, err = consumeString(b)
		case 2:
			m.NumReturnVals, n, err = consumeUint64(b)
		case 3:
			m.WorkerId, n, err = consumeRepeatedUint64(b, typ, m.WorkerId)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("FunctionEntry", num, err)
		}
		b = b[n:]
	}
	return nil
}

type SchedulerInfoReply struct {
	ClusterId      string
	Operationid    []uint64
	AvailWorker    []uint64
	Target         []*TargetEntry
	ReferenceCount []*RefCountEntry
	Location       []*LocationEntry
	Function       []*FunctionEntry
}

func (m *SchedulerInfoReply) MarshalWire() ([]byte, error) {
	var b []byte
	var err error
	b = appendString(b, 1, m.ClusterId)
	b = appendRepeatedUint64(b, 2, m.Operationid)
	b = appendRepeatedUint64(b, 3, m.AvailWorker)
	for _, e := range m.Target {
		if b, err = appendMessage(b, 4, e); err != nil {
			return nil, err
		}
	}
	for _, e := range m.ReferenceCount {
		if b, err = appendMessage(b, 5, e); err != nil {
			return nil, err
		}
	}
	for _, e := range m.Location {
		if b, err = appendMessage(b, 6, e); err != nil {
			return nil, err
		}
	}
	for _, e := range m.Function {
		if b, err = appendMessage(b, 7, e); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *SchedulerInfoReply) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.ClusterId, n, err = consumeString(b)
		case 2:
			m.Operationid, n, err = consumeRepeatedUint64(b, typ, m.Operationid)
		case 3:
			m.AvailWorker, n, err = consumeRepeatedUint64(b, typ, m.AvailWorker)
		case 4:
			e := new(TargetEntry)
			if n, err = consumeMessage(b, e); err == nil {
				m.Target = append(m.Target, e)
			}
		case 5:
			e := new(RefCountEntry)
			if n, err = consumeMessage(b, e); err == nil {
				m.ReferenceCount = append(m.ReferenceCount, e)
			}
		case 6:
			e := new(LocationEntry)
			if n, err = consumeMessage(b, e); err == nil {
				m.Location = append(m.Location, e)
			}
		case 7:
			e := new(FunctionEntry)
			if n, err = consumeMessage(b, e); err == nil {
				m.Function = append(m.Function, e)
			}
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("SchedulerInfoReply", num, err)
		}
		b = b[n:]
	}
	return nil
}

type TaskInfoRequest struct{}

func (m *TaskInfoRequest) MarshalWire() ([]byte, error) { return nil, nil }

func (m *TaskInfoRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		n, err := skipField(b, num, typ)
		if err != nil {
			return fieldError("TaskInfoRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type TaskStatusEntry struct {
	OperationId  uint64
	FunctionName string
	Status       string
	WorkerId     uint64
	ErrorMessage string
}

func (m *TaskStatusEntry) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendUint64(b, 1, m.OperationId)
	b = appendString(b, 2, m.FunctionName)
	b = appendString(b, 3, m.Status)
	b = appendUint64(b, 4, m.WorkerId)
	b = appendString(b, 5, m.ErrorMessage)
	return b, nil
}

func (m *TaskStatusEntry) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.OperationId, n, err = consumeUint64(b)
		case 2:
			m.FunctionName, n, err = consumeString(b)
		case 3:
			m.Status, n, err = consumeString(b)
		case 4:
			m.WorkerId, n, err = consumeUint64(b)
		case 5:
			m.ErrorMessage, n, err = consumeString(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("TaskStatusEntry", num, err)
		}
		b = b[n:]
	}
	return nil
}

type TaskInfoReply struct {
	Task []*TaskStatusEntry
}

func (m *TaskInfoReply) MarshalWire() ([]byte, error) {
	var b []byte
	var err error
	for _, e := range m.Task {
		if b, err = appendMessage(b, 1, e); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *TaskInfoReply) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			e := new(TaskStatusEntry)
			if n, err = consumeMessage(b, e); err == nil {
				m.Task = append(m.Task, e)
			}
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("TaskInfoReply", num, err)
		}
		b = b[n:]
	}
	return nil
}

// ---------------------------------------------------------------------------
// Object store service messages
// ---------------------------------------------------------------------------

type StartDeliveryRequest struct {
	ObjstoreAddress string
	Objref          uint64
}

func (m *StartDeliveryRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.ObjstoreAddress)
	b = appendUint64(b, 2, m.Objref)
	return b, nil
}

func (m *StartDeliveryRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.ObjstoreAddress, n, err = consumeString(b)
		case 2:
			m.Objref, n, err = consumeUint64(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("StartDeliveryRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type StreamObjToRequest struct {
	Objref uint64
}

func (m *StreamObjToRequest) MarshalWire() ([]byte, error) {
	return appendUint64(nil, 1, m.Objref), nil
}

func (m *StreamObjToRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.Objref, n, err = consumeUint64(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("StreamObjToRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type NotifyAliasRequest struct {
	AliasObjref     uint64
	CanonicalObjref uint64
}

func (m *NotifyAliasRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendUint64(b, 1, m.AliasObjref)
	b = appendUint64(b, 2, m.CanonicalObjref)
	return b, nil
}

func (m *NotifyAliasRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.AliasObjref, n, err = consumeUint64(b)
		case 2:
			m.CanonicalObjref, n, err = consumeUint64(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("NotifyAliasRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type NotifyFailureRequest struct {
	Objref       uint64
	ErrorMessage string
}

func (m *NotifyFailureRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendUint64(b, 1, m.Objref)
	b = appendString(b, 2, m.ErrorMessage)
	return b, nil
}

func (m *NotifyFailureRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.Objref, n, err = consumeUint64(b)
		case 2:
			m.ErrorMessage, n, err = consumeString(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("NotifyFailureRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type DeallocateObjectRequest struct {
	CanonicalObjref uint64
}

func (m *DeallocateObjectRequest) MarshalWire() ([]byte, error) {
	return appendUint64(nil, 1, m.CanonicalObjref), nil
}

func (m *DeallocateObjectRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.CanonicalObjref, n, err = consumeUint64(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("DeallocateObjectRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type PutObjRequest struct {
	Objref         uint64
	TotalSize      uint64
	MetadataOffset uint64
	Data           []byte
}

func (m *PutObjRequest) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendUint64(b, 1, m.Objref)
	b = appendUint64(b, 2, m.TotalSize)
	b = appendUint64(b, 3, m.MetadataOffset)
	b = appendBytes(b, 4, m.Data)
	return b, nil
}

func (m *PutObjRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.Objref, n, err = consumeUint64(b)
		case 2:
			m.TotalSize, n, err = consumeUint64(b)
		case 3:
			m.MetadataOffset, n, err = consumeUint64(b)
		case 4:
			m.Data, n, err = consumeBytes(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("PutObjRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type GetObjRequest struct {
	Objref uint64
}

func (m *GetObjRequest) MarshalWire() ([]byte, error) {
	return appendUint64(nil, 1, m.Objref), nil
}

func (m *GetObjRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.Objref, n, err = consumeUint64(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("GetObjRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type ObjStoreInfoRequest struct {
	Objref []uint64
}

func (m *ObjStoreInfoRequest) MarshalWire() ([]byte, error) {
	return appendRepeatedUint64(nil, 1, m.Objref), nil
}

func (m *ObjStoreInfoRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.Objref, n, err = consumeRepeatedUint64(b, typ, m.Objref)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("ObjStoreInfoRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}

type ObjInfoEntry struct {
	Objref         uint64
	TotalSize      uint64
	MetadataOffset uint64
	Finalized      bool
}

func (m *ObjInfoEntry) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendUint64(b, 1, m.Objref)
	b = appendUint64(b, 2, m.TotalSize)
	b = appendUint64(b, 3, m.MetadataOffset)
	b = appendBool(b, 4, m.Finalized)
	return b, nil
}

func (m *ObjInfoEntry) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.Objref, n, err = consumeUint64(b)
		case 2:
			m.TotalSize, n, err = consumeUint64(b)
		case 3:
			m.MetadataOffset, n, err = consumeUint64(b)
		case 4:
			m.Finalized, n, err = consumeBool(b)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("ObjInfoEntry", num, err)
		}
		b = b[n:]
	}
	return nil
}

type ObjStoreInfoReply struct {
	ObjstoreId uint64
	Obj        []*ObjInfoEntry
}

func (m *ObjStoreInfoReply) MarshalWire() ([]byte, error) {
	var b []byte
	var err error
	b = appendUint64(b, 1, m.ObjstoreId)
	for _, e := range m.Obj {
		if b, err = appendMessage(b, 2, e); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ObjStoreInfoReply) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.ObjstoreId, n, err = consumeUint64(b)
		case 2:
			e := new(ObjInfoEntry)
			if n, err = consumeMessage(b, e); err == nil {
				m.Obj = append(m.Obj, e)
			}
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("ObjStoreInfoReply", num, err)
		}
		b = b[n:]
	}
	return nil
}

// ---------------------------------------------------------------------------
// Worker service messages
// ---------------------------------------------------------------------------

type ExecuteTaskRequest struct {
	Task *Task
}

func (m *ExecuteTaskRequest) MarshalWire() ([]byte, error) {
	var b []byte
	var err error
	if m.Task != nil {
		if b, err = appendMessage(b, 1, m.Task); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ExecuteTaskRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch num {
		case 1:
			m.Task = new(Task)
			n, err = consumeMessage(b, m.Task)
		default:
			n, err = skipField(b, num, typ)
		}
		if err != nil {
			return fieldError("ExecuteTaskRequest", num, err)
		}
		b = b[n:]
	}
	return nil
}
