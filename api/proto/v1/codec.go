package rayv1

import (
	"fmt"

	"google.golang.org/grpc/encoding"
)

// wireCodec routes gRPC marshaling through the hand-maintained message
// codecs in this package. It registers under the name "proto", replacing the
// default codec for every connection in the process; all services in this
// system exchange rayv1 messages only.
type wireCodec struct{}

func init() {
	encoding.RegisterCodec(wireCodec{})
}

func (wireCodec) Name() string { return "proto" }

func (wireCodec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("rayv1 codec: cannot marshal %T", v)
	}
	return m.MarshalWire()
}

func (wireCodec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("rayv1 codec: cannot unmarshal into %T", v)
	}
	return m.UnmarshalWire(data)
}
