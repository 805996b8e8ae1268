// Package avro implements the Avro schema importer/exporter named in spec
// §4.9 (design sketch depth): union [null, T] <-> optional field, records
// <-> objects, enums <-> Enum, fixed -> Binary + Loss, logical types <->
// Time/Numeric with friction.
package avro
