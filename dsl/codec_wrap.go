package dsl

import (
	"context"

	tariffwire "github.com/reoring/tariffwire"
	js "github.com/reoring/tariffwire/jsonschema"
)

// Codec adapts a Codec[A,B] into a Schema[B] that accepts wire A and produces domain B.
// Parse: In.Parse -> Decode.
// Encode: Codec.Encode -> In.Encode.
// JSONSchema: delegate to In().JSONSchema().
func Codec[A, B any](c tariffwire.Codec[A, B]) tariffwire.Schema[B] { return codecSchema[A, B]{c: c} }

type codecSchema[A, B any] struct{ c tariffwire.Codec[A, B] }

func (s codecSchema[A, B]) Parse(ctx context.Context, v any) (B, error) {
	var zero B
	a, err := s.c.In().Parse(ctx, v)
	if err != nil {
		return zero, tariffwire.ToIssues("/", err)
	}
	b, err := s.c.Decode(ctx, a)
	if err != nil {
		return zero, tariffwire.ToIssues("/", err)
	}
	return b, nil
}

func (s codecSchema[A, B]) Encode(ctx context.Context, v B) (any, error) {
	a, err := s.c.Encode(ctx, v)
	if err != nil {
		return nil, tariffwire.ToIssues("/", err)
	}
	return s.c.In().Encode(ctx, a)
}

func (s codecSchema[A, B]) JSONSchema() (*js.Schema, error) { return s.c.In().JSONSchema() }
