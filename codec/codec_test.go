package codec_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	tariffwire "github.com/reoring/tariffwire"
	"github.com/reoring/tariffwire/codec"
	g "github.com/reoring/tariffwire/dsl"
)

func codeOf(t *testing.T, err error) string {
	t.Helper()
	iss, ok := tariffwire.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got %v", err)
	}
	return iss[0].Code
}

func TestHumanDuration_DecodeEncode(t *testing.T) {
	ctx := context.Background()
	c := codec.HumanDuration()
	cases := map[string]time.Duration{
		"1h":    3600 * time.Second,
		"1m":    60 * time.Second,
		"234ms": 234 * time.Millisecond,
		"1M":    2630016 * time.Second,
		"1y":    31557600 * time.Second,
	}
	for wire, want := range cases {
		got, err := c.Decode(ctx, wire)
		if err != nil || got != want {
			t.Fatalf("decode %q: got %v err %v", wire, got, err)
		}
		back, err := c.Encode(ctx, got)
		if err != nil || back != wire {
			t.Fatalf("encode %v: got %q err %v", got, back, err)
		}
	}
	if _, err := c.Decode(ctx, "soon"); codeOf(t, err) != tariffwire.CodeInvalidFormat {
		t.Fatalf("expected invalid_format")
	}
	if _, err := c.Encode(ctx, -time.Second); codeOf(t, err) != tariffwire.CodeInvalidFormat {
		t.Fatalf("expected invalid_format for negative duration")
	}
}

func TestPrefixed_RoundTripAndStrictDecode(t *testing.T) {
	ctx := context.Background()
	c := codec.Prefixed(codec.DatePrefix)

	wire, err := c.Encode(ctx, "2024-11-14")
	if err != nil || wire != "Date: 2024-11-14" {
		t.Fatalf("encode err=%v wire=%q", err, wire)
	}
	raw, err := c.Decode(ctx, wire)
	if err != nil || raw != "2024-11-14" {
		t.Fatalf("decode err=%v raw=%q", err, raw)
	}

	// A marker inside the value is kept; only the leading one is stripped.
	raw, err = c.Decode(ctx, "Date: Date: x")
	if err != nil || raw != "Date: x" {
		t.Fatalf("decode err=%v raw=%q", err, raw)
	}

	_, err = c.Decode(ctx, "2024-11-14")
	if codeOf(t, err) != tariffwire.CodeInvalidFormat {
		t.Fatalf("expected invalid_format for missing prefix")
	}
}

func TestUUID_DecodeEncode(t *testing.T) {
	ctx := context.Background()
	c := codec.UUID()
	id, err := c.Decode(ctx, "8D234120-0BDA-49B2-B7E0-FBD3912F6CBF")
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if id != uuid.MustParse("8d234120-0bda-49b2-b7e0-fbd3912f6cbf") {
		t.Fatalf("unexpected id: %v", id)
	}
	s, _ := c.Encode(ctx, id)
	if s != "8d234120-0bda-49b2-b7e0-fbd3912f6cbf" {
		t.Fatalf("expected canonical lower-case form, got %q", s)
	}
	_, err = c.Decode(ctx, "8d234120-0bda-49b2-b7e0")
	var iss tariffwire.Issues
	if !errors.As(err, &iss) || iss[0].Code != tariffwire.CodeInvalidFormat || iss[0].Cause == nil {
		t.Fatalf("expected invalid_format with cause, got %v", err)
	}
}

func TestURL_DecodeEncode(t *testing.T) {
	ctx := context.Background()
	c := codec.URL()
	u, err := c.Decode(ctx, "https://n3.example.com/sapi")
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if u.Host != "n3.example.com" || u.Path != "/sapi" {
		t.Fatalf("unexpected url: %#v", u)
	}
	s, err := c.Encode(ctx, u)
	if err != nil || s != "https://n3.example.com/sapi" {
		t.Fatalf("encode err=%v s=%q", err, s)
	}
	for _, bad := range []string{"n3.example.com/sapi", "https://", "ht tp://x", "/relative"} {
		if _, err := c.Decode(ctx, bad); codeOf(t, err) != tariffwire.CodeInvalidFormat {
			t.Fatalf("%q: expected invalid_format", bad)
		}
	}
	if _, err := c.Encode(ctx, nil); codeOf(t, err) != tariffwire.CodeRequired {
		t.Fatalf("expected required for nil url")
	}
}

type color int

const (
	red color = iota
	blue
	green
)

func TestLiteral_Table(t *testing.T) {
	ctx := context.Background()
	c := codec.Literal(
		codec.Pair[color]{Value: red, Literal: "RED"},
		codec.Pair[color]{Value: blue, Literal: "blue"},
	)
	v, err := c.Decode(ctx, "RED")
	if err != nil || v != red {
		t.Fatalf("decode err=%v v=%v", err, v)
	}
	l, err := c.Encode(ctx, blue)
	if err != nil || l != "blue" {
		t.Fatalf("encode err=%v l=%q", err, l)
	}

	_, err = c.Decode(ctx, "red")
	iss, _ := tariffwire.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != tariffwire.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum, got %v", err)
	}
	allowed, _ := iss[0].Params["allowed"].([]string)
	if len(allowed) != 2 || allowed[0] != "RED" || allowed[1] != "blue" {
		t.Fatalf("unexpected allowed list: %v", iss[0].Params["allowed"])
	}

	if _, err := c.Encode(ctx, green); codeOf(t, err) != tariffwire.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum for unmapped variant")
	}
}

func TestLiteral_PanicsOnDuplicateLiteral(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	codec.Literal(codec.Pair[color]{Value: red, Literal: "x"}, codec.Pair[color]{Value: blue, Literal: "x"})
}

func TestCodecSchema_ParseThroughIn(t *testing.T) {
	ctx := context.Background()
	s := g.Codec(codec.TimeRFC3339())

	if _, err := s.Parse(ctx, 42); codeOf(t, err) != tariffwire.CodeInvalidType {
		t.Fatalf("non-string wire value must fail the In schema")
	}
	v, err := s.Parse(ctx, "2019-06-28T08:35:46+00:00")
	if err != nil || !v.Equal(time.Date(2019, 6, 28, 8, 35, 46, 0, time.UTC)) {
		t.Fatalf("parse err=%v v=%v", err, v)
	}
	w, err := s.Encode(ctx, v)
	if err != nil || w != "2019-06-28T08:35:46Z" {
		t.Fatalf("encode err=%v w=%v", err, w)
	}
	doc, _ := s.JSONSchema()
	if doc.Type != "string" || doc.Format != "date-time" {
		t.Fatalf("unexpected json schema: %+v", doc)
	}
}
