// Package rayv1 holds the wire types for the ray control and data plane.
//
// The message codecs are maintained by hand against ray.proto; field numbers
// and wire types must match the schema exactly. Encoding is standard
// protobuf framing via protowire, so any protoc-generated binding of
// ray.proto interoperates with these types on the wire.
package rayv1

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every wire message in this package.
type Message interface {
	MarshalWire() ([]byte, error)
	UnmarshalWire(b []byte) error
}

// Scalar fields follow proto3 semantics: zero values are elided on encode.

func appendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// appendRepeatedUint64 emits a packed repeated scalar field.
func appendRepeatedUint64(b []byte, num protowire.Number, vs []uint64) []byte {
	if len(vs) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, v)
	}
	return protowire.AppendBytes(b, packed)
}

func appendMessage(b []byte, num protowire.Number, m Message) ([]byte, error) {
	body, err := m.MarshalWire()
	if err != nil {
		return nil, err
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, body), nil
}

func consumeUint64(b []byte) (uint64, int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeBool(b []byte) (bool, int, error) {
	v, n, err := consumeUint64(b)
	return v != 0, n, err
}

func consumeString(b []byte) (string, int, error) {
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeBytes(b []byte) ([]byte, int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, n, nil
}

// consumeRepeatedUint64 accepts both packed and unpacked encodings, as
// required of proto3 decoders.
func consumeRepeatedUint64(b []byte, typ protowire.Type, dst []uint64) ([]uint64, int, error) {
	if typ == protowire.VarintType {
		v, n, err := consumeUint64(b)
		if err != nil {
			return dst, 0, err
		}
		return append(dst, v), n, nil
	}
	packed, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return dst, 0, protowire.ParseError(n)
	}
	for len(packed) > 0 {
		v, m := protowire.ConsumeVarint(packed)
		if m < 0 {
			return dst, 0, protowire.ParseError(m)
		}
		dst = append(dst, v)
		packed = packed[m:]
	}
	return dst, n, nil
}

func consumeMessage(b []byte, m Message) (int, error) {
	body, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if err := m.UnmarshalWire(body); err != nil {
		return 0, err
	}
	return n, nil
}

// skipField discards an unknown field, preserving forward compatibility.
func skipField(b []byte, num protowire.Number, typ protowire.Type) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}

func fieldError(msg string, num protowire.Number, err error) error {
	return fmt.Errorf("%s: field %d: %w", msg, num, err)
}
