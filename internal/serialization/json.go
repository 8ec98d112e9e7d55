package serialization

import (
	"fmt"
	"io"
	"math"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ExportJSON writes a human-readable JSON rendering of ckpt.
//
// The output uses the same field layout as the binary payload. It is meant
// for inspection; Load only accepts the binary format.
//
// JSON has no NaN or infinity, so non-finite numbers (a diverged run) are
// written as the strings "NaN", "Infinity" and "-Infinity".
func ExportJSON(w io.Writer, ckpt *Checkpoint) error {
	s, err := ckpt.toStruct()
	if err != nil {
		return err
	}
	for _, v := range s.GetFields() {
		quoteNonFinite(v)
	}
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

// quoteNonFinite replaces NaN and infinite numbers under v with strings.
func quoteNonFinite(v *structpb.Value) {
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		switch f := k.NumberValue; {
		case math.IsNaN(f):
			v.Kind = &structpb.Value_StringValue{StringValue: "NaN"}
		case math.IsInf(f, 1):
			v.Kind = &structpb.Value_StringValue{StringValue: "Infinity"}
		case math.IsInf(f, -1):
			v.Kind = &structpb.Value_StringValue{StringValue: "-Infinity"}
		}
	case *structpb.Value_StructValue:
		for _, child := range k.StructValue.GetFields() {
			quoteNonFinite(child)
		}
	case *structpb.Value_ListValue:
		for _, child := range k.ListValue.GetValues() {
			quoteNonFinite(child)
		}
	}
}
