// Package tariff holds the streaming tariff records, the schemas that map
// them to and from the wire, and typed shortcuts over tariffwire.ParseFrom
// and tariffwire.Render.
package tariff

import (
	"context"

	tariffwire "github.com/reoring/tariffwire"
)

// ParseRequest decodes a Request from data in format f. On failure the
// returned Request is the zero value and err holds tariffwire.Issues.
func ParseRequest(ctx context.Context, f tariffwire.Format, data []byte, opts ...tariffwire.ParseOpt) (Request, error) {
	return tariffwire.ParseFrom[Request](ctx, requestSchema, f, data, opts...)
}

// RenderRequest encodes r in format f with keys in declaration order.
func RenderRequest(ctx context.Context, f tariffwire.Format, r Request, opts ...tariffwire.RenderOpt) ([]byte, error) {
	return tariffwire.Render[Request](ctx, requestSchema, f, r, opts...)
}

// ParseEvent decodes an Event, stripping the date prefix.
func ParseEvent(ctx context.Context, f tariffwire.Format, data []byte, opts ...tariffwire.ParseOpt) (Event, error) {
	return tariffwire.ParseFrom[Event](ctx, eventSchema, f, data, opts...)
}

// RenderEvent encodes e, prefixing its date.
func RenderEvent(ctx context.Context, f tariffwire.Format, e Event, opts ...tariffwire.RenderOpt) ([]byte, error) {
	return tariffwire.Render[Event](ctx, eventSchema, f, e, opts...)
}

func ParseUser(ctx context.Context, f tariffwire.Format, data []byte, opts ...tariffwire.ParseOpt) (User, error) {
	return tariffwire.ParseFrom[User](ctx, userSchema, f, data, opts...)
}

func RenderUser(ctx context.Context, f tariffwire.Format, u User, opts ...tariffwire.RenderOpt) ([]byte, error) {
	return tariffwire.Render[User](ctx, userSchema, f, u, opts...)
}
