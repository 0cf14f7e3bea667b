package codec

import (
	"context"
	"time"

	tariffwire "github.com/reoring/tariffwire"
	"github.com/reoring/tariffwire/dsl"
	"github.com/reoring/tariffwire/i18n"
	"github.com/reoring/tariffwire/span"
)

// HumanDuration returns a Codec between span notation ("1h", "234ms",
// "1h 30m") and time.Duration. Negative durations cannot be encoded.
func HumanDuration() tariffwire.Codec[string, time.Duration] {
	return durationCodec{in: dsl.FormattedString("duration")}
}

type durationCodec struct {
	in tariffwire.Schema[string]
}

func (c durationCodec) In() tariffwire.Schema[string] { return c.in }

func (c durationCodec) Decode(ctx context.Context, a string) (time.Duration, error) {
	d, err := span.Parse(a)
	if err != nil {
		return 0, tariffwire.Issues{{Path: "/", Code: tariffwire.CodeInvalidFormat, Message: i18n.Expect(tariffwire.CodeInvalidFormat, "duration such as 1h or 234ms"), Hint: "duration", Cause: err}}
	}
	return d, nil
}

func (c durationCodec) Encode(ctx context.Context, b time.Duration) (string, error) {
	if b < 0 {
		return "", tariffwire.Issues{{Path: "/", Code: tariffwire.CodeInvalidFormat, Message: i18n.Expect(tariffwire.CodeInvalidFormat, "non-negative duration"),
			Params: map[string]any{"got": b.String()}}}
	}
	return span.Format(b), nil
}
