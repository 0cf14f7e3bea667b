package tariffwire

import (
	"context"

	js "github.com/reoring/tariffwire/jsonschema"
)

// Schema maps between a format-neutral wire tree and the typed value T.
type Schema[T any] interface {
	// Parse converts a wire value (map[string]any, []any, string, bool,
	// numbers) into T. On failure it returns the zero T and Issues; no
	// partially populated value is ever returned.
	Parse(ctx context.Context, v any) (T, error)
	// Encode converts T back into a wire value. Objects encode as Object so
	// that field order survives rendering.
	Encode(ctx context.Context, v T) (any, error)
	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// Codec performs bidirectional transformation between the wire
// representation A and the domain representation B.
type Codec[A, B any] interface {
	In() Schema[A]                              // Wire schema (input side).
	Decode(ctx context.Context, a A) (B, error) // A (In) -> B.
	Encode(ctx context.Context, b B) (A, error) // B -> A.
}

// SafeParse parses v into T, returning (zero, false) on validation error.
func SafeParse[T any](ctx context.Context, s Schema[T], v any) (T, bool) {
	val, err := s.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// ---- Parse-time context options (exported for subpackages) ----

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
	_ctxKeyUnknown
)

// WithFailFast returns a child context that marks fail-fast parsing behavior.
// ParseFrom sets it from ParseOpt and schema implementations consume it.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current parse should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	b, _ := ctx.Value(_ctxKeyFailFast).(bool)
	return b
}

// WithUnknownPolicy returns a child context carrying the default unknown-key
// policy for object schemas that did not pin one.
func WithUnknownPolicy(ctx context.Context, p UnknownPolicy) context.Context {
	return context.WithValue(ctx, _ctxKeyUnknown, p)
}

// UnknownPolicyFrom returns the unknown-key policy carried by ctx
// (UnknownStrip when unset).
func UnknownPolicyFrom(ctx context.Context) UnknownPolicy {
	p, _ := ctx.Value(_ctxKeyUnknown).(UnknownPolicy)
	return p
}
