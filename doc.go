// Package tariffwire maps structured documents to typed Go records and back.
//
// A Schema[T] turns a format-neutral wire tree into T (Parse) and T into a
// wire tree (Encode). A Codec[A,B] converts a wire value A into a domain
// value B, for example RFC 3339 text into time.Time; dsl.Codec adapts it
// into a Schema[B].
//
// Parsing is atomic: ParseFrom returns either a complete record or the zero
// value plus Issues, one entry per offending field addressed by JSON Pointer.
// errors.Is(err, ErrFormat) holds for every such failure.
//
// JSON, YAML, TOML and CBOR share the same wire tree, so one schema serves
// all four formats:
//
//	req, err := tariffwire.ParseFrom(ctx, schema, tariffwire.FormatJSON, data)
//	out, err := tariffwire.Render(ctx, schema, tariffwire.FormatYAML, req)
//
// Layout: builders live in dsl/, field codecs in codec/, the streaming tariff
// records in tariff/, the CLI in cmd/tariffwire. Token level enforcement of
// duplicate keys and nesting depth lives under internal/engine.
package tariffwire
