package dsl

import (
	"context"
	"sort"

	tariffwire "github.com/reoring/tariffwire"
	"github.com/reoring/tariffwire/i18n"
	js "github.com/reoring/tariffwire/jsonschema"
)

// Field binds one wire key of an object to a location inside T.
type Field[T any] interface {
	Name() string
	parse(ctx context.Context, v any, dst *T) error
	encode(ctx context.Context, src *T) (any, error)
	jsonSchema() (*js.Schema, error)
}

// Prop declares a required property name whose value is parsed by s and
// stored at the location ref returns.
//
//	d.Prop("price", d.Uint32(), func(g *Gift) *uint32 { return &g.Price })
func Prop[T, F any](name string, s tariffwire.Schema[F], ref func(*T) *F) Field[T] {
	return prop[T, F]{name: name, schema: s, ref: ref}
}

type prop[T, F any] struct {
	name   string
	schema tariffwire.Schema[F]
	ref    func(*T) *F
}

func (p prop[T, F]) Name() string { return p.name }

func (p prop[T, F]) parse(ctx context.Context, v any, dst *T) error {
	fv, err := p.schema.Parse(ctx, v)
	if err != nil {
		return err
	}
	*p.ref(dst) = fv
	return nil
}

func (p prop[T, F]) encode(ctx context.Context, src *T) (any, error) {
	return p.schema.Encode(ctx, *p.ref(src))
}

func (p prop[T, F]) jsonSchema() (*js.Schema, error) { return p.schema.JSONSchema() }

// ObjectSchema parses a wire object into T field by field. Every declared
// property is required; issues from all fields are collected (unless
// fail-fast) and a failed parse never yields a partially filled T.
type ObjectSchema[T any] struct {
	fields  []Field[T]
	known   map[string]struct{}
	unknown *tariffwire.UnknownPolicy
	title   string
}

var _ tariffwire.Schema[struct{}] = (*ObjectSchema[struct{}])(nil)

// Object builds an object schema from its properties, in wire order.
// It panics on duplicate property names.
func Object[T any](fields ...Field[T]) *ObjectSchema[T] {
	o := &ObjectSchema[T]{fields: fields, known: make(map[string]struct{}, len(fields))}
	for _, f := range fields {
		if _, dup := o.known[f.Name()]; dup {
			panic("dsl: duplicate property " + f.Name())
		}
		o.known[f.Name()] = struct{}{}
	}
	return o
}

// UnknownStrict rejects keys that no property declares, regardless of the
// parse options.
func (o *ObjectSchema[T]) UnknownStrict() *ObjectSchema[T] {
	p := tariffwire.UnknownStrict
	o.unknown = &p
	return o
}

// UnknownStrip drops undeclared keys, regardless of the parse options.
func (o *ObjectSchema[T]) UnknownStrip() *ObjectSchema[T] {
	p := tariffwire.UnknownStrip
	o.unknown = &p
	return o
}

// Title names the object in its JSON Schema.
func (o *ObjectSchema[T]) Title(t string) *ObjectSchema[T] { o.title = t; return o }

func (o *ObjectSchema[T]) policy(ctx context.Context) tariffwire.UnknownPolicy {
	if o.unknown != nil {
		return *o.unknown
	}
	return tariffwire.UnknownPolicyFrom(ctx)
}

func (o *ObjectSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	src, ok := v.(map[string]any)
	if !ok {
		return zero, tariffwire.Issues{{Path: "/", Code: tariffwire.CodeInvalidType, Message: i18n.Expect(tariffwire.CodeInvalidType, "object")}}
	}
	root := tariffwire.Root()
	var (
		out T
		iss tariffwire.Issues
	)
	for _, f := range o.fields {
		at := root.Field(f.Name())
		val, exists := src[f.Name()]
		if !exists {
			iss = tariffwire.AppendIssues(iss, tariffwire.Issue{Path: at.Pointer(), Code: tariffwire.CodeRequired, Message: i18n.T(tariffwire.CodeRequired, nil)})
		} else if err := f.parse(ctx, val, &out); err != nil {
			iss = tariffwire.AppendIssues(iss, tariffwire.Rebase(at, tariffwire.ToIssues("/", err))...)
		}
		if len(iss) > 0 && tariffwire.IsFailFast(ctx) {
			return zero, iss
		}
	}
	if o.policy(ctx) == tariffwire.UnknownStrict {
		// unknown keys in key-sorted order
		var uks []string
		for k := range src {
			if _, known := o.known[k]; !known {
				uks = append(uks, k)
			}
		}
		sort.Strings(uks)
		for _, k := range uks {
			iss = tariffwire.AppendIssues(iss, tariffwire.Issue{Path: root.Field(k).Pointer(), Code: tariffwire.CodeUnknownKey, Message: i18n.T(tariffwire.CodeUnknownKey, nil)})
		}
	}
	if len(iss) > 0 {
		return zero, iss
	}
	return out, nil
}

func (o *ObjectSchema[T]) Encode(ctx context.Context, v T) (any, error) {
	obj := tariffwire.Object{Members: make([]tariffwire.Member, 0, len(o.fields))}
	for _, f := range o.fields {
		fv, err := f.encode(ctx, &v)
		if err != nil {
			return nil, tariffwire.Rebase(tariffwire.Root().Field(f.Name()), tariffwire.ToIssues("/", err))
		}
		obj.Members = append(obj.Members, tariffwire.Member{Key: f.Name(), Value: fv})
	}
	return obj, nil
}

func (o *ObjectSchema[T]) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "object", Title: o.title, Properties: make(map[string]*js.Schema, len(o.fields))}
	for _, f := range o.fields {
		ps, err := f.jsonSchema()
		if err != nil {
			return nil, err
		}
		out.Properties[f.Name()] = ps
		out.PropertyOrder = append(out.PropertyOrder, f.Name())
		out.Required = append(out.Required, f.Name())
	}
	if o.unknown != nil && *o.unknown == tariffwire.UnknownStrict {
		out.AdditionalProperties = js.Bool(false)
	}
	return out, nil
}
