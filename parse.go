package tariffwire

import (
	"context"
	"io"
)

// ParseFrom is the primary entry point. It decodes data in the given format
// into a wire tree and delegates validation and conversion to the Schema.
// Without options DefaultParseOpt applies.
func ParseFrom[T any](ctx context.Context, s Schema[T], f Format, data []byte, opts ...ParseOpt) (T, error) {
	var zero T
	if s == nil {
		return zero, singleIssue(CodeParseError, "nil schema")
	}
	opt := lastParseOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return zero, singleIssue(CodeTruncated, "max bytes exceeded")
	}
	v, iss := decodeTree(f, data, opt)
	if len(iss) > 0 {
		return zero, iss
	}
	return ParseTree(ctx, s, v, opt)
}

// ParseTree runs the schema over an already decoded wire tree, applying the
// context-carried options of opt (fail-fast, unknown-key policy).
func ParseTree[T any](ctx context.Context, s Schema[T], v any, opt ParseOpt) (T, error) {
	if opt.FailFast {
		ctx = WithFailFast(ctx, true)
	}
	if opt.UnknownKeys != UnknownStrip {
		ctx = WithUnknownPolicy(ctx, opt.UnknownKeys)
	}
	out, err := s.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, ToIssues("/", err)
	}
	return out, nil
}

// StreamParse reads r fully and parses it. When MaxBytes is set it enforces
// the size cap while reading instead of after.
func StreamParse[T any](ctx context.Context, s Schema[T], f Format, r io.Reader, opts ...ParseOpt) (T, error) {
	var zero T
	opt := lastParseOpt(opts)
	if opt.MaxBytes > 0 {
		r = io.LimitReader(r, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return zero, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return ParseFrom(ctx, s, f, data, opt)
}
