package codec

import (
	"context"
	"time"

	tariffwire "github.com/reoring/tariffwire"
	"github.com/reoring/tariffwire/dsl"
	"github.com/reoring/tariffwire/i18n"
)

// TimeRFC3339 returns a Codec that converts between RFC3339 strings and time.Time.
// The wire form must carry a timezone offset ("Z" or "+hh:mm"); Encode emits
// canonical UTC.
func TimeRFC3339() tariffwire.Codec[string, time.Time] {
	return rfc3339Codec{in: dsl.FormattedString("date-time")}
}

type rfc3339Codec struct {
	in tariffwire.Schema[string]
}

func (c rfc3339Codec) In() tariffwire.Schema[string] { return c.in }

func (c rfc3339Codec) Decode(ctx context.Context, a string) (time.Time, error) {
	t, err := parseRFC3339(a)
	if err != nil {
		return time.Time{}, tariffwire.Issues{{Path: "/", Code: tariffwire.CodeInvalidFormat, Message: i18n.Expect(tariffwire.CodeInvalidFormat, "RFC 3339 date-time"), Hint: "date-time", Cause: err}}
	}
	return t, nil
}

func (c rfc3339Codec) Encode(ctx context.Context, b time.Time) (string, error) {
	s := formatRFC3339Canonical(b)
	// Years outside 0000-9999 format but do not parse back.
	if _, err := parseRFC3339(s); err != nil {
		return "", tariffwire.Issues{{Path: "/", Code: tariffwire.CodeInvalidFormat, Message: i18n.Expect(tariffwire.CodeInvalidFormat, "RFC 3339 date-time"), Cause: err}}
	}
	return s, nil
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
