package codec

import (
	"context"
	"regexp"
	"strings"

	tariffwire "github.com/reoring/tariffwire"
	"github.com/reoring/tariffwire/dsl"
	"github.com/reoring/tariffwire/i18n"
)

// DatePrefix is the marker the event date carries on the wire.
const DatePrefix = "Date: "

// Prefixed returns a Codec that stores a raw string on the wire behind a
// fixed marker. Encode prepends prefix; Decode requires it and strips it, so
// Decode(Encode(s)) == s for every s. Wire text without the marker is
// rejected with invalid_format.
func Prefixed(prefix string) tariffwire.Codec[string, string] {
	return prefixCodec{prefix: prefix, in: dsl.PatternString("^" + regexp.QuoteMeta(prefix))}
}

type prefixCodec struct {
	prefix string
	in     tariffwire.Schema[string]
}

func (c prefixCodec) In() tariffwire.Schema[string] { return c.in }

func (c prefixCodec) Decode(ctx context.Context, a string) (string, error) {
	raw, ok := strings.CutPrefix(a, c.prefix)
	if !ok {
		return "", tariffwire.Issues{{Path: "/", Code: tariffwire.CodeInvalidFormat, Message: i18n.Expect(tariffwire.CodeInvalidFormat, "prefix "+strings.TrimSpace(c.prefix)),
			Params: map[string]any{"prefix": c.prefix, "got": a}}}
	}
	return raw, nil
}

func (c prefixCodec) Encode(ctx context.Context, b string) (string, error) {
	return c.prefix + b, nil
}
