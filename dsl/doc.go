// Package dsl provides a type-safe schema DSL for tariffwire.
//
// # Overview
//
//   - Primitives: String(), Bool(), Uint32(), plus FormattedString(format) and
//     StringEnum(literals...) which only differ in their JSON Schema.
//   - Codec(c): adapt a Codec[A,B] into a Schema[B] so custom field encodings
//     (timestamps, durations, prefixed strings, enums) slot into objects.
//   - Array(elem): ordered list with optional Min/Max.
//   - Object(Prop(...), ...): typed record binding. Each Prop names a wire key,
//     its schema and a pointer accessor into the record.
//
// # Entry points
//
//   - Object(fields...): every property is required; chain UnknownStrict()/
//     UnknownStrip() to pin unknown-key handling, Title() for JSON Schema.
//   - Prop(name, schema, ref): bind one property.
//
// # File layout
//
//   - primitives.go: string/bool/uint32 schemas.
//   - codec_wrap.go: Codec -> Schema adapter.
//   - array.go: ArraySchema (Parse/Encode/JSONSchema, index rebasing).
//   - object.go: ObjectSchema (required/unknown handling, ordered Encode).
//
// # Quickstart
//
//	type Gift struct {
//		ID          uint32
//		Description string
//	}
//
//	gift := d.Object(
//		d.Prop("id", d.Uint32(), func(g *Gift) *uint32 { return &g.ID }),
//		d.Prop("description", d.String(), func(g *Gift) *string { return &g.Description }),
//	).UnknownStrict()
//
//	g, err := tariffwire.ParseFrom(ctx, gift, tariffwire.FormatJSON, data)
//	// err is tariffwire.Issues: e.g. "required at /id; invalid_type at /description"
//
// # Error paths
//
// Child issues are rebased under the property or index that produced them,
// so a bad price in the second gift of a request reports /gifts/1/price.
package dsl
