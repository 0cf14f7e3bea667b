package dsl

import (
	"context"
	"math"
	"strconv"

	json "github.com/goccy/go-json"

	tariffwire "github.com/reoring/tariffwire"
	"github.com/reoring/tariffwire/i18n"
	js "github.com/reoring/tariffwire/jsonschema"
)

// String returns the minimal string schema implementation.
func String() tariffwire.Schema[string] { return stringSchema{} }

// FormattedString is a string schema whose JSON Schema carries a format
// annotation (uuid, uri, date-time, ...). It does not check the format
// itself; pair it with a codec for that.
func FormattedString(format string) tariffwire.Schema[string] {
	return stringSchema{format: format}
}

// StringEnum is a string schema advertising a closed set of literals in its
// JSON Schema. Membership is enforced by the codec that consumes it.
func StringEnum(literals ...string) tariffwire.Schema[string] {
	return stringSchema{enum: literals}
}

// PatternString is a string schema advertising a regular expression in its
// JSON Schema.
func PatternString(pattern string) tariffwire.Schema[string] {
	return stringSchema{pattern: pattern}
}

// Bool returns the minimal bool schema implementation.
func Bool() tariffwire.Schema[bool] { return boolSchema{} }

// Uint32 accepts non-negative integral numbers that fit in 32 bits.
func Uint32() tariffwire.Schema[uint32] { return uint32Schema{} }

type stringSchema struct {
	format  string
	pattern string
	enum    []string
}

func (stringSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", tariffwire.Issues{{Path: "/", Code: tariffwire.CodeInvalidType, Message: i18n.Expect(tariffwire.CodeInvalidType, "string")}}
	}
	return s, nil
}

func (stringSchema) Encode(ctx context.Context, v string) (any, error) { return v, nil }

func (s stringSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "string", Format: s.format, Pattern: s.pattern}
	for _, l := range s.enum {
		out.Enum = append(out.Enum, l)
	}
	return out, nil
}

type boolSchema struct{}

func (boolSchema) Parse(ctx context.Context, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, tariffwire.Issues{{Path: "/", Code: tariffwire.CodeInvalidType, Message: i18n.Expect(tariffwire.CodeInvalidType, "boolean")}}
	}
	return b, nil
}

func (boolSchema) Encode(ctx context.Context, v bool) (any, error) { return v, nil }
func (boolSchema) JSONSchema() (*js.Schema, error)                 { return &js.Schema{Type: "boolean"}, nil }

type uint32Schema struct{}

func (uint32Schema) Parse(ctx context.Context, v any) (uint32, error) {
	invalid := func(cause error) (uint32, error) {
		return 0, tariffwire.Issues{{Path: "/", Code: tariffwire.CodeInvalidType, Message: i18n.Expect(tariffwire.CodeInvalidType, "unsigned integer"), Cause: cause}}
	}
	overflow := func(got any) (uint32, error) {
		return 0, tariffwire.Issues{{Path: "/", Code: tariffwire.CodeOverflow, Message: i18n.T(tariffwire.CodeOverflow, nil),
			Params: map[string]any{"max": uint64(math.MaxUint32), "got": got}}}
	}
	var u64 uint64
	// Each format decoder hands numbers over in its own Go type.
	switch t := v.(type) {
	case json.Number:
		n, err := strconv.ParseUint(t.String(), 10, 64)
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
				return overflow(t.String())
			}
			return invalid(err)
		}
		u64 = n
	case int:
		if t < 0 {
			return invalid(nil)
		}
		u64 = uint64(t)
	case int64:
		if t < 0 {
			return invalid(nil)
		}
		u64 = uint64(t)
	case uint64:
		u64 = t
	case uint32:
		return t, nil
	case float64:
		if t < 0 || t != math.Trunc(t) || math.IsInf(t, 0) || math.IsNaN(t) {
			return invalid(nil)
		}
		if t > math.MaxUint32 {
			return overflow(t)
		}
		u64 = uint64(t)
	default:
		return invalid(nil)
	}
	if u64 > math.MaxUint32 {
		return overflow(u64)
	}
	return uint32(u64), nil
}

func (uint32Schema) Encode(ctx context.Context, v uint32) (any, error) { return v, nil }

func (uint32Schema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "integer", Minimum: js.Float(0), Maximum: js.Float(math.MaxUint32)}, nil
}
