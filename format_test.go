package tariffwire_test

import (
	"context"
	"testing"

	tariffwire "github.com/reoring/tariffwire"
	g "github.com/reoring/tariffwire/dsl"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]tariffwire.Format{
		"json": tariffwire.FormatJSON, "JSONC": tariffwire.FormatJSON,
		"yaml": tariffwire.FormatYAML, " yml ": tariffwire.FormatYAML,
		"toml": tariffwire.FormatTOML, "cbor": tariffwire.FormatCBOR,
	}
	for in, want := range cases {
		got, err := tariffwire.ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("%q: got %v err %v", in, got, err)
		}
	}
	if _, err := tariffwire.ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for xml")
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]tariffwire.Format{
		"req.json": tariffwire.FormatJSON, "dir/req.jsonc": tariffwire.FormatJSON,
		"req.yaml": tariffwire.FormatYAML, "req.YML": tariffwire.FormatYAML,
		"req.toml": tariffwire.FormatTOML, "req.cbor": tariffwire.FormatCBOR,
	}
	for in, want := range cases {
		got, err := tariffwire.FormatFromPath(in)
		if err != nil || got != want {
			t.Fatalf("%q: got %v err %v", in, got, err)
		}
	}
	for _, bad := range []string{"request", "req.txt"} {
		if _, err := tariffwire.FormatFromPath(bad); err == nil {
			t.Fatalf("%q: expected error", bad)
		}
	}
	if tariffwire.FormatCBOR.String() != "cbor" || tariffwire.Format(9).String() != "Format(9)" {
		t.Fatalf("format names")
	}
}

type point struct {
	X, Y uint32
	Tag  string
}

func pointSchema() tariffwire.Schema[point] {
	return g.Object(
		g.Prop("x", g.Uint32(), func(p *point) *uint32 { return &p.X }),
		g.Prop("y", g.Uint32(), func(p *point) *uint32 { return &p.Y }),
		g.Prop("tag", g.String(), func(p *point) *string { return &p.Tag }),
	)
}

func TestSchemaRoundTripEveryFormat(t *testing.T) {
	ctx := context.Background()
	want := point{X: 4294967295, Y: 0, Tag: "corner"}
	for _, f := range []tariffwire.Format{tariffwire.FormatJSON, tariffwire.FormatYAML, tariffwire.FormatTOML, tariffwire.FormatCBOR} {
		b, err := tariffwire.Render(ctx, pointSchema(), f, want)
		if err != nil {
			t.Fatalf("%s render: %v", f, err)
		}
		got, err := tariffwire.ParseFrom(ctx, pointSchema(), f, b)
		if err != nil {
			t.Fatalf("%s parse: %v\n%s", f, err, b)
		}
		if got != want {
			t.Fatalf("%s: got %+v want %+v", f, got, want)
		}
	}
}
