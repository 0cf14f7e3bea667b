package tariff

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Event is a named occurrence whose date travels as "Date: <date>".
type Event struct {
	Name string
	Date string
}

// User is a plain contact record.
type User struct {
	Name      string
	Email     string
	Birthdate string
}

// PublicTariff is the price list shown to every viewer of a stream.
type PublicTariff struct {
	ID          uint32
	Price       uint32
	Duration    time.Duration
	Description string
}

// PrivateTariff is the price a client pays for a private stream.
type PrivateTariff struct {
	ClientPrice uint32
	Duration    time.Duration
	Description string
}

// Stream describes one live stream and its tariffs.
type Stream struct {
	UserID        uuid.UUID
	IsPrivate     bool
	Settings      uint32
	ShardURL      *url.URL
	PublicTariff  PublicTariff
	PrivateTariff PrivateTariff
}

// Gift is an item a viewer can send during a stream.
type Gift struct {
	ID          uint32
	Price       uint32
	Description string
}

// Debug carries timing information about request handling.
type Debug struct {
	Duration time.Duration
	At       time.Time
}

// RequestType tags a Request as a success or a failure. The zero value is
// unset and has no wire literal.
type RequestType int

const (
	RequestSuccess RequestType = iota + 1
	RequestFailure
)

func (t RequestType) String() string {
	switch t {
	case RequestSuccess:
		return "success"
	case RequestFailure:
		return "failure"
	default:
		return "RequestType(" + strconv.Itoa(int(t)) + ")"
	}
}

// Request is the streaming tariff payload.
type Request struct {
	Type   RequestType
	Stream Stream
	Gifts  []Gift
	Debug  Debug
}
