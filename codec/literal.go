package codec

import (
	"context"
	"fmt"

	tariffwire "github.com/reoring/tariffwire"
	"github.com/reoring/tariffwire/dsl"
	"github.com/reoring/tariffwire/i18n"
)

// Pair binds an in-memory variant to its wire literal.
type Pair[T comparable] struct {
	Value   T
	Literal string
}

// Literal returns a Codec over a closed set of variants, each renamed to a
// fixed wire literal. Decode rejects any other literal with invalid_enum;
// Encode rejects variants missing from the table. It panics when a variant
// or literal appears twice.
func Literal[T comparable](pairs ...Pair[T]) tariffwire.Codec[string, T] {
	c := literalCodec[T]{
		toWire:   make(map[T]string, len(pairs)),
		fromWire: make(map[string]T, len(pairs)),
	}
	for _, p := range pairs {
		if _, dup := c.toWire[p.Value]; dup {
			panic(fmt.Sprintf("codec: variant %v listed twice", p.Value))
		}
		if _, dup := c.fromWire[p.Literal]; dup {
			panic(fmt.Sprintf("codec: literal %q listed twice", p.Literal))
		}
		c.toWire[p.Value] = p.Literal
		c.fromWire[p.Literal] = p.Value
		c.literals = append(c.literals, p.Literal)
	}
	c.in = dsl.StringEnum(c.literals...)
	return c
}

type literalCodec[T comparable] struct {
	toWire   map[T]string
	fromWire map[string]T
	literals []string
	in       tariffwire.Schema[string]
}

func (c literalCodec[T]) In() tariffwire.Schema[string] { return c.in }

func (c literalCodec[T]) Decode(ctx context.Context, a string) (T, error) {
	v, ok := c.fromWire[a]
	if !ok {
		var zero T
		return zero, tariffwire.Issues{{Path: "/", Code: tariffwire.CodeInvalidEnum, Message: i18n.T(tariffwire.CodeInvalidEnum, nil),
			Params: map[string]any{"allowed": append([]string(nil), c.literals...), "got": a}}}
	}
	return v, nil
}

func (c literalCodec[T]) Encode(ctx context.Context, b T) (string, error) {
	l, ok := c.toWire[b]
	if !ok {
		return "", tariffwire.Issues{{Path: "/", Code: tariffwire.CodeInvalidEnum, Message: i18n.T(tariffwire.CodeInvalidEnum, nil),
			Params: map[string]any{"allowed": append([]string(nil), c.literals...), "got": fmt.Sprint(b)}}}
	}
	return l, nil
}
