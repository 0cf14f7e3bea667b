package codec

import (
	"context"
	"testing"
	"time"

	tariffwire "github.com/reoring/tariffwire"
)

func TestTimeRFC3339_Codec_Basic(t *testing.T) {
	c := TimeRFC3339()
	ctx := context.Background()

	in := "2025-01-01T00:00:00Z"
	got, err := c.Decode(ctx, in)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !got.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", got)
	}

	out, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != in {
		t.Fatalf("roundtrip mismatch: %s != %s", out, in)
	}
}

func TestTimeRFC3339_OffsetNormalizedToUTC(t *testing.T) {
	c := TimeRFC3339()
	ctx := context.Background()

	got, err := c.Decode(ctx, "2019-06-28T10:35:46+02:00")
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !got.Equal(time.Date(2019, 6, 28, 8, 35, 46, 0, time.UTC)) {
		t.Fatalf("unexpected instant: %v", got)
	}
	out, err := c.Encode(ctx, got)
	if err != nil || out != "2019-06-28T08:35:46Z" {
		t.Fatalf("encode err=%v out=%q", err, out)
	}
}

func TestTimeRFC3339_RejectsMissingOffset(t *testing.T) {
	c := TimeRFC3339()
	for _, in := range []string{"2019-06-28T08:35:46", "2019-06-28", "yesterday", ""} {
		_, err := c.Decode(context.Background(), in)
		iss, ok := tariffwire.AsIssues(err)
		if !ok || iss[0].Code != tariffwire.CodeInvalidFormat {
			t.Fatalf("%q: expected invalid_format, got %v", in, err)
		}
	}
}

func TestTimeRFC3339_EncodeOutOfRangeYear(t *testing.T) {
	c := TimeRFC3339()
	if _, err := c.Encode(context.Background(), time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Fatalf("expected error for year 10000")
	}
}
