package dsl

import (
	"context"

	tariffwire "github.com/reoring/tariffwire"
	"github.com/reoring/tariffwire/i18n"
	js "github.com/reoring/tariffwire/jsonschema"
)

// ArrayBuilder exposes chaining methods for array schemas while implementing Schema[[]E].
type ArrayBuilder[E any] interface {
	tariffwire.Schema[[]E]
	Min(n int) ArrayBuilder[E]
	Max(n int) ArrayBuilder[E]
}

// Array returns an array schema with the given element schema. An empty wire
// array parses to a nil slice; nil and empty slices both encode as [].
func Array[E any](elem tariffwire.Schema[E]) ArrayBuilder[E] {
	return &ArraySchema[E]{elem: elem, minLen: -1, maxLen: -1}
}

type ArraySchema[E any] struct {
	elem   tariffwire.Schema[E]
	minLen int
	maxLen int
}

// Min sets the minimum length.
func (a *ArraySchema[E]) Min(n int) ArrayBuilder[E] { a.minLen = n; return a }

// Max sets the maximum length.
func (a *ArraySchema[E]) Max(n int) ArrayBuilder[E] { a.maxLen = n; return a }

func (a *ArraySchema[E]) Parse(ctx context.Context, v any) ([]E, error) {
	src, ok := v.([]any)
	if !ok {
		return nil, tariffwire.Issues{{Path: "/", Code: tariffwire.CodeInvalidType, Message: i18n.Expect(tariffwire.CodeInvalidType, "array")}}
	}
	var iss tariffwire.Issues
	if err := a.checkLen(len(src)); err != nil {
		iss = tariffwire.AppendIssues(iss, err...)
		if tariffwire.IsFailFast(ctx) {
			return nil, iss
		}
	}
	var res []E
	if len(src) > 0 {
		res = make([]E, 0, len(src))
	}
	for i := range src {
		ev, err := a.elem.Parse(ctx, src[i])
		if err != nil {
			iss = tariffwire.AppendIssues(iss, tariffwire.Rebase(tariffwire.Root().Index(i), tariffwire.ToIssues("/", err))...)
			if tariffwire.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		res = append(res, ev)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return res, nil
}

func (a *ArraySchema[E]) checkLen(n int) tariffwire.Issues {
	if a.minLen >= 0 && n < a.minLen {
		return tariffwire.Issues{tariffwire.Root().Issue(tariffwire.CodeTooShort, i18n.T(tariffwire.CodeTooShort, nil), "min", a.minLen, "got", n)}
	}
	if a.maxLen >= 0 && n > a.maxLen {
		return tariffwire.Issues{tariffwire.Root().Issue(tariffwire.CodeTooLong, i18n.T(tariffwire.CodeTooLong, nil), "max", a.maxLen, "got", n)}
	}
	return nil
}

func (a *ArraySchema[E]) Encode(ctx context.Context, v []E) (any, error) {
	out := make([]any, 0, len(v))
	for i := range v {
		ev, err := a.elem.Encode(ctx, v[i])
		if err != nil {
			return nil, tariffwire.Rebase(tariffwire.Root().Index(i), tariffwire.ToIssues("/", err))
		}
		out = append(out, ev)
	}
	return out, nil
}

func (a *ArraySchema[E]) JSONSchema() (*js.Schema, error) {
	items, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	out := &js.Schema{Type: "array", Items: items}
	if a.minLen >= 0 {
		out.MinItems = js.Int(a.minLen)
	}
	if a.maxLen >= 0 {
		out.MaxItems = js.Int(a.maxLen)
	}
	return out, nil
}
