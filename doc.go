package arcserde

// Package arcserde converts between captured web-archive records
// (arc.FileItem) and the generic 11-column row an embedding query engine
// consumes, in both directions, against a fixed canonical schema.
//
// - NewCodec validates an engine-declared column list against the canonical
//   schema and compiles the field layout once; the resulting Codec is
//   immutable and safe for concurrent use.
// - Decode maps a wire item to a fresh Row; Encode rebuilds a wire item
//   from a Row, checking every value's category against the schema.
// - SchemaError and TypeError are the only failure modes. Both carry the
//   offending position (column index or field name) plus the expected and
//   actual descriptions. The codec never logs and never returns partial
//   results.
//
// Content text handling: the content column is declared string. Decode
// converts the payload bytes with a plain Go string conversion and Encode
// converts back with []byte(s). Both are byte-preserving, so any payload
// round-trips exactly; the bytes are nominally UTF-8 but no validation or
// transcoding is performed.
//
// Design policy:
// - Keep only public APIs in the root package; the type-descriptor language
//   lives in coltype/, the wire record in arc/.
// - Row cells are tagged variants (Value), not reflection: each column's
//   expected Category is checked explicitly per field.
// - Prefer black-box testing against public APIs.
