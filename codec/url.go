package codec

import (
	"context"
	"errors"
	"net/url"

	tariffwire "github.com/reoring/tariffwire"
	"github.com/reoring/tariffwire/dsl"
	"github.com/reoring/tariffwire/i18n"
)

var (
	errNoScheme = errors.New("url has no scheme")
	errNoHost   = errors.New("url has no host")
)

// hierarchical schemes must name a host.
var hostRequired = map[string]bool{"http": true, "https": true, "ws": true, "wss": true, "ftp": true}

// URL returns a Codec between absolute URL text and *url.URL. Relative
// references and host-less http(s)/ws(s)/ftp URLs are rejected.
func URL() tariffwire.Codec[string, *url.URL] {
	return urlCodec{in: dsl.FormattedString("uri")}
}

type urlCodec struct {
	in tariffwire.Schema[string]
}

func (c urlCodec) In() tariffwire.Schema[string] { return c.in }

func (c urlCodec) Decode(ctx context.Context, a string) (*url.URL, error) {
	u, err := parseAbsURL(a)
	if err != nil {
		return nil, tariffwire.Issues{{Path: "/", Code: tariffwire.CodeInvalidFormat, Message: i18n.Expect(tariffwire.CodeInvalidFormat, "absolute URL"), Hint: "uri", Cause: err}}
	}
	return u, nil
}

func (c urlCodec) Encode(ctx context.Context, b *url.URL) (string, error) {
	if b == nil {
		return "", tariffwire.Issues{{Path: "/", Code: tariffwire.CodeRequired, Message: i18n.T(tariffwire.CodeRequired, nil)}}
	}
	s := b.String()
	if _, err := parseAbsURL(s); err != nil {
		return "", tariffwire.Issues{{Path: "/", Code: tariffwire.CodeInvalidFormat, Message: i18n.Expect(tariffwire.CodeInvalidFormat, "absolute URL"), Cause: err}}
	}
	return s, nil
}

func parseAbsURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" {
		return nil, errNoScheme
	}
	if hostRequired[u.Scheme] && u.Host == "" {
		return nil, errNoHost
	}
	return u, nil
}
