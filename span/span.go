// Package span parses and formats compact human-readable durations such as
// "1h", "1m", "234ms" or "1h 30m".
//
// A span is a sequence of <integer><unit> items, optionally separated by
// whitespace. Units: ns, us/µs, ms, s, m, h, d, w, M (month) and y (year)
// with their long spellings (sec, min, hour, day, week, month, year, ...).
// A month is 30.44 days and a year 365.25 days. Format emits the canonical
// form: the largest units first, zero components omitted, items separated
// by a space.
package span

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	day   = 24 * time.Hour
	month = 2_630_016 * time.Second
	year  = 31_557_600 * time.Second
)

var units = map[string]time.Duration{
	"ns": time.Nanosecond, "nsec": time.Nanosecond, "nanos": time.Nanosecond,
	"us": time.Microsecond, "µs": time.Microsecond, "usec": time.Microsecond, "micros": time.Microsecond,
	"ms": time.Millisecond, "msec": time.Millisecond, "millis": time.Millisecond,
	"s": time.Second, "sec": time.Second, "secs": time.Second, "second": time.Second, "seconds": time.Second,
	"m": time.Minute, "min": time.Minute, "mins": time.Minute, "minute": time.Minute, "minutes": time.Minute,
	"h": time.Hour, "hr": time.Hour, "hrs": time.Hour, "hour": time.Hour, "hours": time.Hour,
	"d": day, "day": day, "days": day,
	"w": 7 * day, "week": 7 * day, "weeks": 7 * day,
	"M": month, "month": month, "months": month,
	"y": year, "year": year, "years": year,
}

// ErrEmpty is returned for blank input.
var ErrEmpty = errors.New("span: empty duration")

// SyntaxError reports where a span stopped making sense.
type SyntaxError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("span: %s at offset %d in %q", e.Msg, e.Offset, e.Input)
}

// Parse converts a span into a time.Duration.
func Parse(s string) (time.Duration, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return 0, ErrEmpty
	}
	var total uint64
	i := 0
	for i < len(in) {
		for i < len(in) && isSpace(in[i]) {
			i++
		}
		if i == len(in) {
			break
		}
		start := i
		var n uint64
		for i < len(in) && in[i] >= '0' && in[i] <= '9' {
			d := uint64(in[i] - '0')
			if n > (math.MaxUint64-d)/10 {
				return 0, &SyntaxError{Input: s, Offset: start, Msg: "number too large"}
			}
			n = n*10 + d
			i++
		}
		if i == start {
			return 0, &SyntaxError{Input: s, Offset: i, Msg: "expected number"}
		}
		ustart := i
		for i < len(in) && !isSpace(in[i]) && (in[i] < '0' || in[i] > '9') {
			i++
		}
		if ustart == i {
			return 0, &SyntaxError{Input: s, Offset: i, Msg: "time unit needed"}
		}
		unit, ok := units[in[ustart:i]]
		if !ok {
			return 0, &SyntaxError{Input: s, Offset: ustart, Msg: fmt.Sprintf("unknown time unit %q", in[ustart:i])}
		}
		u := uint64(unit)
		if n != 0 && u > math.MaxInt64/n {
			return 0, &SyntaxError{Input: s, Offset: start, Msg: "duration overflows"}
		}
		total += n * u
		if total > math.MaxInt64 {
			return 0, &SyntaxError{Input: s, Offset: start, Msg: "duration overflows"}
		}
	}
	return time.Duration(total), nil
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

var order = []struct {
	unit time.Duration
	name string
}{
	{year, "y"},
	{month, "M"},
	{day, "d"},
	{time.Hour, "h"},
	{time.Minute, "m"},
	{time.Second, "s"},
	{time.Millisecond, "ms"},
	{time.Microsecond, "us"},
	{time.Nanosecond, "ns"},
}

// Format renders d in canonical span notation. Zero renders as "0s".
// Negative durations get a leading '-', which Parse does not accept.
func Format(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	var b strings.Builder
	rest := uint64(d)
	if d < 0 {
		b.WriteByte('-')
		rest = uint64(-(d + 1)) + 1
	}
	first := true
	for _, o := range order {
		u := uint64(o.unit)
		if rest < u {
			continue
		}
		q := rest / u
		rest -= q * u
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%d%s", q, o.name)
	}
	return b.String()
}
