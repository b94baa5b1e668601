package teleport

// Package teleport provides:
//
// - Schema-driven, two-way conversion between JSON values and native values
//   (FromJSON/ToJSON) with strict structural validation
// - A self-describing Schema type: every schema serializes to {type, param?}
//   JSON and parses back through the same engine
// - A stable error model via ValidationError (location stack, code, message)
// - An extensible type Registry with immutable, explicitly scoped overrides
//
// Design policy:
// - Keep the engine in the root package; put input drivers under source/.
// - Built-in types form a closed set behind constructor functions; custom
//   types enter only through Registry entries.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := teleport.StructOf(
//		teleport.Required("id", teleport.Integer()),
//		teleport.Optional("tags", teleport.ArrayOf(teleport.String())),
//	)
//	v, err := teleport.ParseFrom(s, gojson.Bytes(data))
//	wire, err := teleport.EncodeTo(s, v)
//
