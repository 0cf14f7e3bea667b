package tariffwire_test

import (
	"bytes"
	"context"
	"testing"

	tariffwire "github.com/reoring/tariffwire"
	js "github.com/reoring/tariffwire/jsonschema"
)

// treeSchema hands the decoded wire tree back unchanged.
type treeSchema struct{}

func (treeSchema) Parse(ctx context.Context, v any) (any, error)  { return v, nil }
func (treeSchema) Encode(ctx context.Context, v any) (any, error) { return v, nil }
func (treeSchema) JSONSchema() (*js.Schema, error)                { return &js.Schema{}, nil }

func mustIssues(t *testing.T, err error) tariffwire.Issues {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error")
	}
	iss, ok := tariffwire.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got: %v", err)
	}
	return iss
}

func TestParseFrom_DuplicateKey_Error(t *testing.T) {
	_, err := tariffwire.ParseFrom[any](context.Background(), treeSchema{}, tariffwire.FormatJSON, []byte(`{"a":1,"a":2}`))
	iss := mustIssues(t, err)
	if iss[0].Code != tariffwire.CodeDuplicateKey || iss[0].Path != "/a" {
		t.Fatalf("expected duplicate_key at /a, got: %v", iss)
	}
}

func TestParseFrom_DuplicateKey_NestedPath(t *testing.T) {
	_, err := tariffwire.ParseFrom[any](context.Background(), treeSchema{}, tariffwire.FormatJSON, []byte(`[{"a":1},{"b":{"c":1,"c":2}}]`))
	iss := mustIssues(t, err)
	if iss[0].Path != "/1/b/c" {
		t.Fatalf("expected path=/1/b/c, got: %s", iss[0].Path)
	}
}

func TestParseFrom_DuplicateKey_WarnAndIgnore(t *testing.T) {
	var sunk []tariffwire.Issue
	opt := tariffwire.DefaultParseOpt()
	opt.Strictness.OnDuplicateKey = tariffwire.Warn
	opt.IssueSink = func(i tariffwire.Issue) { sunk = append(sunk, i) }
	v, err := tariffwire.ParseFrom[any](context.Background(), treeSchema{}, tariffwire.FormatJSON, []byte(`{"a":1,"a":2}`), opt)
	if err != nil {
		t.Fatalf("warn must not fail: %v", err)
	}
	if len(sunk) != 1 || sunk[0].Code != tariffwire.CodeDuplicateKey || sunk[0].Path != "/a" {
		t.Fatalf("expected one sunk duplicate_key, got: %v", sunk)
	}
	if got := v.(map[string]any)["a"]; got == nil || got.(interface{ String() string }).String() != "2" {
		t.Fatalf("expected last value to win, got: %v", got)
	}

	opt = tariffwire.DefaultParseOpt()
	opt.Strictness.OnDuplicateKey = tariffwire.Ignore
	if _, err := tariffwire.ParseFrom[any](context.Background(), treeSchema{}, tariffwire.FormatJSON, []byte(`{"a":1,"a":2}`), opt); err != nil {
		t.Fatalf("ignore must not fail: %v", err)
	}
}

func TestParseFrom_MalformedJSONIsParseErrorNotDuplicate(t *testing.T) {
	var sunk []tariffwire.Issue
	opt := tariffwire.DefaultParseOpt()
	opt.Strictness.OnDuplicateKey = tariffwire.Warn
	opt.IssueSink = func(i tariffwire.Issue) { sunk = append(sunk, i) }
	for _, src := range []string{`{"a":1 "a":2}`, `{"a":1,"a":2,}`} {
		_, err := tariffwire.ParseFrom[any](context.Background(), treeSchema{}, tariffwire.FormatJSON, []byte(src), opt)
		iss := mustIssues(t, err)
		if iss[0].Code != tariffwire.CodeParseError || iss[0].Path != "/" {
			t.Fatalf("%s: expected parse_error at root, got: %v", src, iss)
		}
	}
	if len(sunk) != 0 {
		t.Fatalf("malformed input must not sink duplicate warnings: %v", sunk)
	}
}

func TestParseFrom_MaxDepth(t *testing.T) {
	// depth = 3 for { a: { b: { c: 1 } } }
	opt := tariffwire.ParseOpt{MaxDepth: 2}
	for _, tc := range []struct {
		f    tariffwire.Format
		data string
	}{
		{tariffwire.FormatJSON, `{"a":{"b":{"c":1}}}`},
		{tariffwire.FormatYAML, "a:\n  b:\n    c: 1\n"},
		{tariffwire.FormatTOML, "[a.b]\nc = 1\n"},
	} {
		_, err := tariffwire.ParseFrom[any](context.Background(), treeSchema{}, tc.f, []byte(tc.data), opt)
		iss := mustIssues(t, err)
		if iss[0].Code != tariffwire.CodeParseError || iss[0].Path != "/a/b" {
			t.Fatalf("%s: expected parse_error at /a/b, got: %v", tc.f, iss)
		}
	}
	opt.MaxDepth = 3
	if _, err := tariffwire.ParseFrom[any](context.Background(), treeSchema{}, tariffwire.FormatJSON, []byte(`{"a":{"b":{"c":1}}}`), opt); err != nil {
		t.Fatalf("depth 3 should pass: %v", err)
	}
}

func TestParseFrom_MaxBytes(t *testing.T) {
	data := append([]byte(`{"a":"`), bytes.Repeat([]byte("x"), 1024)...)
	data = append(data, '"', '}')
	opt := tariffwire.ParseOpt{MaxBytes: 64}
	_, err := tariffwire.ParseFrom[any](context.Background(), treeSchema{}, tariffwire.FormatJSON, data, opt)
	iss := mustIssues(t, err)
	if iss[0].Code != tariffwire.CodeTruncated || iss[0].Path != "/" {
		t.Fatalf("expected truncated at root, got: %v", iss)
	}

	_, err = tariffwire.StreamParse[any](context.Background(), treeSchema{}, tariffwire.FormatJSON, bytes.NewReader(data), opt)
	iss = mustIssues(t, err)
	if iss[0].Code != tariffwire.CodeTruncated {
		t.Fatalf("stream: expected truncated, got: %v", iss)
	}
}

func TestParseFrom_Comments(t *testing.T) {
	src := []byte("{\n  // price in cents\n  \"a\": 1, /* trailing */\n}")
	if _, err := tariffwire.ParseFrom[any](context.Background(), treeSchema{}, tariffwire.FormatJSON, src); err == nil {
		t.Fatalf("comments must be rejected by default")
	}
	opt := tariffwire.DefaultParseOpt()
	opt.AllowComments = true
	v, err := tariffwire.ParseFrom[any](context.Background(), treeSchema{}, tariffwire.FormatJSON, src, opt)
	if err != nil {
		t.Fatalf("jsonc parse: %v", err)
	}
	if _, ok := v.(map[string]any)["a"]; !ok {
		t.Fatalf("expected key a, got: %v", v)
	}
}

func TestParseFrom_SyntaxErrors(t *testing.T) {
	cases := []struct {
		f    tariffwire.Format
		data string
	}{
		{tariffwire.FormatJSON, ``},
		{tariffwire.FormatJSON, `{"a":1} {"b":2}`},
		{tariffwire.FormatJSON, `{"a":`},
		{tariffwire.FormatYAML, "a: [1, 2\n"},
		{tariffwire.FormatTOML, "a = \n"},
		{tariffwire.FormatCBOR, "\xa1"},
	}
	for _, tc := range cases {
		_, err := tariffwire.ParseFrom[any](context.Background(), treeSchema{}, tc.f, []byte(tc.data))
		iss := mustIssues(t, err)
		if iss[0].Code != tariffwire.CodeParseError {
			t.Fatalf("%s %q: expected parse_error, got: %v", tc.f, tc.data, iss)
		}
	}
}

func TestParseFrom_DuplicateKeysOtherFormats(t *testing.T) {
	if _, err := tariffwire.ParseFrom[any](context.Background(), treeSchema{}, tariffwire.FormatYAML, []byte("a: 1\na: 2\n")); err == nil {
		t.Fatalf("yaml: expected duplicate key error")
	}
	if _, err := tariffwire.ParseFrom[any](context.Background(), treeSchema{}, tariffwire.FormatTOML, []byte("a = 1\na = 2\n")); err == nil {
		t.Fatalf("toml: expected duplicate key error")
	}
	// {"a": 1, "a": 2}
	cborDup := []byte{0xa2, 0x61, 'a', 0x01, 0x61, 'a', 0x02}
	_, err := tariffwire.ParseFrom[any](context.Background(), treeSchema{}, tariffwire.FormatCBOR, cborDup)
	iss := mustIssues(t, err)
	if iss[0].Code != tariffwire.CodeDuplicateKey {
		t.Fatalf("cbor: expected duplicate_key, got: %v", iss)
	}
}

func TestParseFrom_TreeShapeAcrossFormats(t *testing.T) {
	docs := map[tariffwire.Format]string{
		tariffwire.FormatJSON: `{"name":"x","tags":["a","b"],"n":{"k":true}}`,
		tariffwire.FormatYAML: "name: x\ntags: [a, b]\nn:\n  k: true\n",
		tariffwire.FormatTOML: "name = \"x\"\ntags = [\"a\", \"b\"]\n[n]\nk = true\n",
	}
	for f, src := range docs {
		v, err := tariffwire.ParseFrom[any](context.Background(), treeSchema{}, f, []byte(src))
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		m, ok := v.(map[string]any)
		if !ok {
			t.Fatalf("%s: expected map[string]any, got %T", f, v)
		}
		tags, ok := m["tags"].([]any)
		if !ok || len(tags) != 2 || tags[1] != "b" {
			t.Fatalf("%s: tags: %#v", f, m["tags"])
		}
		n, ok := m["n"].(map[string]any)
		if !ok || n["k"] != true {
			t.Fatalf("%s: n: %#v", f, m["n"])
		}
	}
}

func TestParseFrom_UnsupportedFormat(t *testing.T) {
	_, err := tariffwire.ParseFrom[any](context.Background(), treeSchema{}, tariffwire.Format(99), []byte(`{}`))
	iss := mustIssues(t, err)
	if iss[0].Code != tariffwire.CodeParseError {
		t.Fatalf("expected parse_error, got: %v", iss)
	}
}
