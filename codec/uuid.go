package codec

import (
	"context"

	"github.com/google/uuid"

	tariffwire "github.com/reoring/tariffwire"
	"github.com/reoring/tariffwire/dsl"
	"github.com/reoring/tariffwire/i18n"
)

// UUID returns a Codec between the canonical hyphenated text form and
// uuid.UUID. Braced and urn:uuid: forms are accepted on Decode; Encode always
// emits the canonical lower-case form.
func UUID() tariffwire.Codec[string, uuid.UUID] {
	return uuidCodec{in: dsl.FormattedString("uuid")}
}

type uuidCodec struct {
	in tariffwire.Schema[string]
}

func (c uuidCodec) In() tariffwire.Schema[string] { return c.in }

func (c uuidCodec) Decode(ctx context.Context, a string) (uuid.UUID, error) {
	id, err := uuid.Parse(a)
	if err != nil {
		return uuid.Nil, tariffwire.Issues{{Path: "/", Code: tariffwire.CodeInvalidFormat, Message: i18n.Expect(tariffwire.CodeInvalidFormat, "UUID"), Hint: "uuid", Cause: err}}
	}
	return id, nil
}

func (c uuidCodec) Encode(ctx context.Context, b uuid.UUID) (string, error) {
	return b.String(), nil
}
