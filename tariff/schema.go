package tariff

import (
	"net/url"
	"time"

	"github.com/google/uuid"

	tariffwire "github.com/reoring/tariffwire"
	"github.com/reoring/tariffwire/codec"
	d "github.com/reoring/tariffwire/dsl"
)

// Schemas are built once; they are immutable and safe for concurrent use.
var (
	eventSchema   = EventSchema()
	userSchema    = UserSchema()
	requestSchema = RequestSchema()
)

// EventSchema maps {"name", "date"} with the date behind codec.DatePrefix.
func EventSchema() *d.ObjectSchema[Event] {
	return d.Object(
		d.Prop("name", d.String(), func(e *Event) *string { return &e.Name }),
		d.Prop("date", d.Codec(codec.Prefixed(codec.DatePrefix)), func(e *Event) *string { return &e.Date }),
	).Title("Event")
}

// UserSchema maps {"name", "email", "birthdate"} as plain strings.
func UserSchema() *d.ObjectSchema[User] {
	return d.Object(
		d.Prop("name", d.String(), func(u *User) *string { return &u.Name }),
		d.Prop("email", d.String(), func(u *User) *string { return &u.Email }),
		d.Prop("birthdate", d.String(), func(u *User) *string { return &u.Birthdate }),
	).Title("User")
}

func publicTariffSchema() *d.ObjectSchema[PublicTariff] {
	return d.Object(
		d.Prop("id", d.Uint32(), func(p *PublicTariff) *uint32 { return &p.ID }),
		d.Prop("price", d.Uint32(), func(p *PublicTariff) *uint32 { return &p.Price }),
		d.Prop("duration", d.Codec(codec.HumanDuration()), func(p *PublicTariff) *time.Duration { return &p.Duration }),
		d.Prop("description", d.String(), func(p *PublicTariff) *string { return &p.Description }),
	).Title("PublicTariff")
}

func privateTariffSchema() *d.ObjectSchema[PrivateTariff] {
	return d.Object(
		d.Prop("client_price", d.Uint32(), func(p *PrivateTariff) *uint32 { return &p.ClientPrice }),
		d.Prop("duration", d.Codec(codec.HumanDuration()), func(p *PrivateTariff) *time.Duration { return &p.Duration }),
		d.Prop("description", d.String(), func(p *PrivateTariff) *string { return &p.Description }),
	).Title("PrivateTariff")
}

func streamSchema() *d.ObjectSchema[Stream] {
	return d.Object(
		d.Prop("user_id", d.Codec(codec.UUID()), func(s *Stream) *uuid.UUID { return &s.UserID }),
		d.Prop("is_private", d.Bool(), func(s *Stream) *bool { return &s.IsPrivate }),
		d.Prop("settings", d.Uint32(), func(s *Stream) *uint32 { return &s.Settings }),
		d.Prop("shard_url", d.Codec(codec.URL()), func(s *Stream) **url.URL { return &s.ShardURL }),
		d.Prop[Stream, PublicTariff]("public_tariff", publicTariffSchema(), func(s *Stream) *PublicTariff { return &s.PublicTariff }),
		d.Prop[Stream, PrivateTariff]("private_tariff", privateTariffSchema(), func(s *Stream) *PrivateTariff { return &s.PrivateTariff }),
	).Title("Stream")
}

func giftSchema() *d.ObjectSchema[Gift] {
	return d.Object(
		d.Prop("id", d.Uint32(), func(g *Gift) *uint32 { return &g.ID }),
		d.Prop("price", d.Uint32(), func(g *Gift) *uint32 { return &g.Price }),
		d.Prop("description", d.String(), func(g *Gift) *string { return &g.Description }),
	).Title("Gift")
}

func debugSchema() *d.ObjectSchema[Debug] {
	return d.Object(
		d.Prop("duration", d.Codec(codec.HumanDuration()), func(g *Debug) *time.Duration { return &g.Duration }),
		d.Prop("at", d.Codec(codec.TimeRFC3339()), func(g *Debug) *time.Time { return &g.At }),
	).Title("Debug")
}

// RequestTypeCodec maps RequestType to its "success"/"failure" literals.
func RequestTypeCodec() tariffwire.Codec[string, RequestType] {
	return codec.Literal(
		codec.Pair[RequestType]{Value: RequestSuccess, Literal: "success"},
		codec.Pair[RequestType]{Value: RequestFailure, Literal: "failure"},
	)
}

// RequestSchema maps the full streaming tariff request.
func RequestSchema() *d.ObjectSchema[Request] {
	return d.Object(
		d.Prop("type", d.Codec(RequestTypeCodec()), func(r *Request) *RequestType { return &r.Type }),
		d.Prop[Request, Stream]("stream", streamSchema(), func(r *Request) *Stream { return &r.Stream }),
		d.Prop[Request, []Gift]("gifts", d.Array[Gift](giftSchema()), func(r *Request) *[]Gift { return &r.Gifts }),
		d.Prop[Request, Debug]("debug", debugSchema(), func(r *Request) *Debug { return &r.Debug }),
	).Title("Request")
}
