package rayv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestTaskRoundTrip(t *testing.T) {
	in := &Task{
		OperationId: 7,
		Name:        "concat",
		Arg: []*Value{
			{IsRef: true, ObjRef: 3},
			{Data: []byte{0xAB, 0x00, 0xCD}},
		},
		Result: []uint64{10, 11},
	}
	b, err := in.MarshalWire()
	require.NoError(t, err)

	out := new(Task)
	require.NoError(t, out.UnmarshalWire(b))
	assert.Equal(t, in.OperationId, out.OperationId)
	assert.Equal(t, in.Name, out.Name)
	require.Len(t, out.Arg, 2)
	assert.True(t, out.Arg[0].IsRef)
	assert.Equal(t, uint64(3), out.Arg[0].ObjRef)
	assert.False(t, out.Arg[1].IsRef)
	assert.Equal(t, []byte{0xAB, 0x00, 0xCD}, out.Arg[1].Data)
	assert.Equal(t, in.Result, out.Result)
}

// Field numbers are the wire contract; walk the encoded bytes and check the
// tags actually emitted.
func TestObjChunkFieldNumbers(t *testing.T) {
	b, err := (&ObjChunk{TotalSize: 300, MetadataOffset: 16, Data: []byte("xy")}).MarshalWire()
	require.NoError(t, err)

	fields := map[protowire.Number]protowire.Type{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		require.GreaterOrEqual(t, n, 0)
		b = b[n:]
		fields[num] = typ
		n = protowire.ConsumeFieldValue(num, typ, b)
		require.GreaterOrEqual(t, n, 0)
		b = b[n:]
	}
	assert.Equal(t, map[protowire.Number]protowire.Type{
		1: protowire.VarintType,
		2: protowire.VarintType,
		3: protowire.BytesType,
	}, fields)
}

func TestSchedulerInfoReplyRoundTrip(t *testing.T) {
	in := &SchedulerInfoReply{
		ClusterId:   "c-1",
		Operationid: []uint64{4, 5},
		AvailWorker: []uint64{1},
		Target:      []*TargetEntry{{Objref: 5, Target: 3}},
		ReferenceCount: []*RefCountEntry{
			{Objref: 3, Count: 2},
		},
		Location: []*LocationEntry{{Objref: 3, ObjstoreId: []uint64{1, 2}}},
		Function: []*FunctionEntry{{Name: "id", NumReturnVals: 1, WorkerId: []uint64{1, 2}}},
	}
	b, err := in.MarshalWire()
	require.NoError(t, err)

	out := new(SchedulerInfoReply)
	require.NoError(t, out.UnmarshalWire(b))
	assert.Equal(t, in.ClusterId, out.ClusterId)
	assert.Equal(t, in.Operationid, out.Operationid)
	assert.Equal(t, in.AvailWorker, out.AvailWorker)
	require.Len(t, out.Target, 1)
	assert.Equal(t, *in.Target[0], *out.Target[0])
	require.Len(t, out.Location, 1)
	assert.Equal(t, *in.Location[0], *out.Location[0])
	require.Len(t, out.Function, 1)
	assert.Equal(t, *in.Function[0], *out.Function[0])
}

// Decoders must accept unpacked repeated scalars as well as packed ones.
func TestRepeatedUint64AcceptsUnpacked(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, 9)
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, 12)

	out := new(ChangeRefCountRequest)
	require.NoError(t, out.UnmarshalWire(b))
	assert.Equal(t, []uint64{9, 12}, out.Objref)
}

// Unknown fields are skipped, not fatal.
func TestUnknownFieldSkipped(t *testing.T) {
	b, err := (&PushObjReply{Objref: 4}).MarshalWire()
	require.NoError(t, err)
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte("future"))

	out := new(PushObjReply)
	require.NoError(t, out.UnmarshalWire(b))
	assert.Equal(t, uint64(4), out.Objref)
}

func TestPreviousTaskInfoRoundTrip(t *testing.T) {
	in := &ReadyForNewTaskRequest{
		WorkerId: 2,
		PreviousTask: &PreviousTaskInfo{
			OperationId:  8,
			ErrorMessage: "E",
		},
	}
	b, err := in.MarshalWire()
	require.NoError(t, err)

	out := new(ReadyForNewTaskRequest)
	require.NoError(t, out.UnmarshalWire(b))
	require.NotNil(t, out.PreviousTask)
	assert.Equal(t, uint64(8), out.PreviousTask.OperationId)
	assert.False(t, out.PreviousTask.TaskSucceeded)
	assert.Equal(t, "E", out.PreviousTask.ErrorMessage)
}

// Zero values are elided on the wire (proto3 semantics) and an absent
// message field decodes to nil.
func TestProto3ZeroElision(t *testing.T) {
	b, err := (&SubmitTaskRequest{}).MarshalWire()
	require.NoError(t, err)
	assert.Empty(t, b)

	out := new(SubmitTaskRequest)
	require.NoError(t, out.UnmarshalWire(nil))
	assert.Nil(t, out.Task)
}

func TestCodecRejectsForeignTypes(t *testing.T) {
	var c wireCodec
	_, err := c.Marshal(struct{}{})
	assert.Error(t, err)
	assert.Error(t, c.Unmarshal(nil, struct{}{}))
}
