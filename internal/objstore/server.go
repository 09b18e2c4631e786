package objstore

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	rayv1 "github.com/vivi/ray/api/proto/v1"
	"github.com/vivi/ray/pkg/types"
)

// Server exposes the ObjStore gRPC service backed by a Store.
type Server struct {
	rayv1.UnimplementedObjStoreServer

	store *Store
}

func NewServer(store *Store) *Server {
	return &Server{store: store}
}

// rpcError maps store errors onto gRPC status codes.
func rpcError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrNotFinalized),
		errors.Is(err, ErrFinalized),
		errors.Is(err, ErrChunkMismatch):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ErrDeallocated),
		errors.Is(err, ErrTaskFailed):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func (s *Server) StartDelivery(ctx context.Context, req *rayv1.StartDeliveryRequest) (*rayv1.AckReply, error) {
	err := s.store.StartDelivery(ctx, req.ObjstoreAddress, types.ObjRef(req.Objref))
	if err != nil {
		return nil, rpcError(err)
	}
	return &rayv1.AckReply{}, nil
}

func (s *Server) StreamObjTo(req *rayv1.StreamObjToRequest, stream grpc.ServerStreamingServer[rayv1.ObjChunk]) error {
	err := s.store.SendChunks(types.ObjRef(req.Objref), stream.Send)
	if err != nil {
		return rpcError(err)
	}
	return nil
}

func (s *Server) NotifyAlias(ctx context.Context, req *rayv1.NotifyAliasRequest) (*rayv1.AckReply, error) {
	s.store.NotifyAlias(types.ObjRef(req.AliasObjref), types.ObjRef(req.CanonicalObjref))
	return &rayv1.AckReply{}, nil
}

func (s *Server) NotifyFailure(ctx context.Context, req *rayv1.NotifyFailureRequest) (*rayv1.AckReply, error) {
	s.store.NotifyFailure(types.ObjRef(req.Objref), req.ErrorMessage)
	return &rayv1.AckReply{}, nil
}

func (s *Server) DeallocateObject(ctx context.Context, req *rayv1.DeallocateObjectRequest) (*rayv1.AckReply, error) {
	s.store.Deallocate(types.ObjRef(req.CanonicalObjref))
	return &rayv1.AckReply{}, nil
}

func (s *Server) PutObj(ctx context.Context, req *rayv1.PutObjRequest) (*rayv1.AckReply, error) {
	if req.TotalSize != uint64(len(req.Data)) {
		return nil, status.Errorf(codes.InvalidArgument,
			"total size %d does not match %d payload bytes", req.TotalSize, len(req.Data))
	}
	err := s.store.Put(ctx, types.ObjRef(req.Objref), req.Data, req.MetadataOffset)
	if err != nil {
		return nil, rpcError(err)
	}
	return &rayv1.AckReply{}, nil
}

func (s *Server) GetObj(req *rayv1.GetObjRequest, stream grpc.ServerStreamingServer[rayv1.ObjChunk]) error {
	ref := types.ObjRef(req.Objref)
	if _, _, err := s.store.Get(stream.Context(), ref); err != nil {
		return rpcError(err)
	}
	return s.store.SendChunks(ref, stream.Send)
}

func (s *Server) ObjStoreInfo(ctx context.Context, req *rayv1.ObjStoreInfoRequest) (*rayv1.ObjStoreInfoReply, error) {
	refs := make([]types.ObjRef, 0, len(req.Objref))
	for _, r := range req.Objref {
		refs = append(refs, types.ObjRef(r))
	}
	reply := &rayv1.ObjStoreInfoReply{ObjstoreId: uint64(s.store.ID())}
	for _, info := range s.store.Snapshot(refs) {
		reply.Obj = append(reply.Obj, &rayv1.ObjInfoEntry{
			Objref:         uint64(info.Ref),
			TotalSize:      info.TotalSize,
			MetadataOffset: info.MetadataOffset,
			Finalized:      info.Finalized,
		})
	}
	return reply, nil
}
