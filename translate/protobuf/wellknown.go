package protobuf

import (
	"github.com/veltrix/schemaforge/schema"
	"github.com/veltrix/schemaforge/translate"
)

// wellKnownType implements spec §4.9's "well-known types (Timestamp, Any,
// Duration) mapped or approximated". The wrapper types (google.protobuf
// StringValue and friends) aren't named by the spec but follow the same
// idiom: map to the wrapped primitive with an Approximation, since the
// null-vs-unset distinction a wrapper exists for doesn't transfer.
func wellKnownType(fullName string, ctx translate.Context) (schema.Schema, bool) {
	switch fullName {
	case "google.protobuf.Timestamp":
		ctx.AddApproximation("google.protobuf.Timestamp is approximated as a text Time schema")
		return schema.Time([]schema.TimeConstraint{{Named: "rfc3339"}}), true
	case "google.protobuf.Duration":
		ctx.AddApproximation("google.protobuf.Duration (seconds+nanos) is approximated as a plain Numeric number of seconds")
		return schema.Numeric(schema.NumericConstraints{}, nil), true
	case "google.protobuf.Any":
		ctx.AddExtension("google.protobuf.Any carries no static schema; represented as Any")
		return schema.Any(), true
	case "google.protobuf.StringValue":
		ctx.AddApproximation("google.protobuf.StringValue's null-vs-unset distinction is not preserved")
		return schema.Text(schema.TextConstraints{}, nil), true
	case "google.protobuf.BoolValue":
		ctx.AddApproximation("google.protobuf.BoolValue's null-vs-unset distinction is not preserved")
		return schema.Boolean(nil), true
	case "google.protobuf.Int32Value", "google.protobuf.Int64Value",
		"google.protobuf.UInt32Value", "google.protobuf.UInt64Value":
		ctx.AddApproximation(fullName + "'s null-vs-unset distinction is not preserved")
		return schema.Numeric(schema.NumericConstraints{Integer: true}, nil), true
	case "google.protobuf.FloatValue", "google.protobuf.DoubleValue":
		ctx.AddApproximation(fullName + "'s null-vs-unset distinction is not preserved")
		return schema.Numeric(schema.NumericConstraints{}, nil), true
	case "google.protobuf.BytesValue":
		ctx.AddApproximation("google.protobuf.BytesValue's null-vs-unset distinction is not preserved")
		return schema.Binary(schema.BinaryConstraints{}), true
	case "google.protobuf.Struct", "google.protobuf.Value", "google.protobuf.ListValue":
		ctx.AddExtension(fullName + " has no static schema; represented as Any")
		return schema.Any(), true
	default:
		return nil, false
	}
}
