package tariff_test

import (
	"context"
	"os"
	"testing"

	tariffwire "github.com/reoring/tariffwire"
	"github.com/reoring/tariffwire/tariff"
)

func benchFixture(b *testing.B) []byte {
	b.Helper()
	data, err := os.ReadFile("testdata/request.json")
	if err != nil {
		b.Fatalf("read fixture: %v", err)
	}
	return data
}

func Benchmark_ParseRequest_PerFormat(b *testing.B) {
	ctx := context.Background()
	req, err := tariff.ParseRequest(ctx, tariffwire.FormatJSON, benchFixture(b))
	if err != nil {
		b.Fatalf("parse fixture: %v", err)
	}
	for _, f := range []tariffwire.Format{tariffwire.FormatJSON, tariffwire.FormatYAML, tariffwire.FormatTOML, tariffwire.FormatCBOR} {
		data, err := tariff.RenderRequest(ctx, f, req)
		if err != nil {
			b.Fatalf("%s render: %v", f, err)
		}
		b.Run(f.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := tariff.ParseRequest(ctx, f, data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func Benchmark_ParseRequest_JSON_NoEnforcement(b *testing.B) {
	ctx := context.Background()
	data := benchFixture(b)
	opt := tariffwire.ParseOpt{Strictness: tariffwire.Strictness{OnDuplicateKey: tariffwire.Ignore}}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tariff.ParseRequest(ctx, tariffwire.FormatJSON, data, opt); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_RenderRequest_JSON(b *testing.B) {
	ctx := context.Background()
	req, err := tariff.ParseRequest(ctx, tariffwire.FormatJSON, benchFixture(b))
	if err != nil {
		b.Fatalf("parse fixture: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tariff.RenderRequest(ctx, tariffwire.FormatJSON, req); err != nil {
			b.Fatal(err)
		}
	}
}
