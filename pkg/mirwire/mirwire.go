// Package mirwire hand-encodes an internal/mir.Module to the wire format
// the out-of-scope backend would consume (spec.md §1's "backend handoff"
// contract, left unspecified by spec.md itself). Encoding is done directly
// with google.golang.org/protobuf/encoding/protowire's varint and
// length-delimited primitives rather than through a protoc-generated
// message, since mirc has no .proto schema to compile — only a wire shape
// to produce.
package mirwire

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/hhramberg/mirc/internal/mir"
)

// Field numbers for the MIRModule wire message:
//
//	message MIRModule {
//	  string name = 1;
//	  repeated string function_names = 2;
//	  string dump = 3; // full textual MIR, spec.md §6.2's dump format
//	}
const (
	fieldName          = protowire.Number(1)
	fieldFunctionNames = protowire.Number(2)
	fieldDump          = protowire.Number(3)
)

// Encode serializes m to the MIRModule wire format.
func Encode(m *mir.Module) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldName, protowire.BytesType)
	b = protowire.AppendString(b, m.Name)

	for _, fn := range m.Functions {
		b = protowire.AppendTag(b, fieldFunctionNames, protowire.BytesType)
		b = protowire.AppendString(b, fn.Name)
	}

	b = protowire.AppendTag(b, fieldDump, protowire.BytesType)
	b = protowire.AppendString(b, m.Dump())

	return b
}

// Decoded is the wire message's fields, read back without reconstructing a
// full mir.Module (the dump field carries the structural detail; mirc's own
// pipeline never needs to round-trip through the wire form, only to
// produce it for a downstream consumer).
type Decoded struct {
	Name          string
	FunctionNames []string
	Dump          string
}

// Decode parses the MIRModule wire format produced by Encode.
func Decode(b []byte) (*Decoded, error) {
	var d Decoded
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("mirwire: invalid tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		if typ != protowire.BytesType {
			return nil, fmt.Errorf("mirwire: field %d: unexpected wire type %d", num, typ)
		}
		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, fmt.Errorf("mirwire: field %d: invalid bytes: %w", num, protowire.ParseError(n))
		}
		b = b[n:]

		switch num {
		case fieldName:
			d.Name = string(v)
		case fieldFunctionNames:
			d.FunctionNames = append(d.FunctionNames, string(v))
		case fieldDump:
			d.Dump = string(v)
		}
	}
	return &d, nil
}
