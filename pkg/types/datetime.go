// Package types defines the wire-level value types and payloads exchanged
// with the orchestrator portal API.
//
// The portal encodes several field kinds inconsistently: date-times arrive as
// RFC3339 strings, unix epoch integers, or sentinel strings; addresses arrive
// as literals or sentinel strings; booleans arrive as the integers 0/1. The
// types in this package decode every legal wire form into one in-memory
// value, re-encode to exactly one canonical form, and reject malformed input
// with typed errors.
package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	// dateTimeNoneWire is the wire string the portal sends for an unset
	// date-time field.
	dateTimeNoneWire = "null"
	// dateTimeNeverWire is the wire string the portal sends for "never".
	dateTimeNeverWire = "0000-00-00 00:00:00"
	// dateTimeNeverDisplay is the human-readable form of Never. It is not a
	// legal wire token.
	dateTimeNeverDisplay = "never"
)

type dateTimeKind uint8

const (
	dateTimeNone dateTimeKind = iota
	dateTimeNever
	dateTimeStamp
)

// DateTime is a portal date-time field. It is one of exactly three variants:
// none (no value was set), never (the portal's explicit "never" sentinel), or
// a concrete instant normalized to UTC.
//
// DateTime values are immutable. Compare them with Equal, not ==.
type DateTime struct {
	t    time.Time
	kind dateTimeKind
}

// NoDateTime returns the "no value" variant.
func NoDateTime() DateTime {
	return DateTime{kind: dateTimeNone}
}

// NeverDateTime returns the "never" sentinel variant.
func NeverDateTime() DateTime {
	return DateTime{kind: dateTimeNever}
}

// FromTime returns a stamp holding t normalized to UTC. Sub-second precision
// is dropped: portal timestamps are whole seconds.
func FromTime(t time.Time) DateTime {
	return DateTime{kind: dateTimeStamp, t: t.UTC().Truncate(time.Second)}
}

// ParseRFC3339 parses an RFC3339 date-time string. The offset is required; a
// non-UTC offset is accepted and the result is normalized to UTC.
func ParseRFC3339(s string) (DateTime, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return DateTime{}, &BadDateTimeStringError{Value: s}
	}
	return FromTime(t), nil
}

// FromUnixTimestamp interprets n as seconds since the Unix epoch. Values
// whose year falls outside the RFC3339-representable range 0000-9999 are
// rejected.
func FromUnixTimestamp(n int64) (DateTime, error) {
	t := time.Unix(n, 0).UTC()
	if y := t.Year(); y < 0 || y > 9999 {
		return DateTime{}, &BadUnixTimestampError{Value: n}
	}
	return DateTime{kind: dateTimeStamp, t: t}, nil
}

// IsNone reports whether d is the "no value" variant.
func (d DateTime) IsNone() bool { return d.kind == dateTimeNone }

// IsNever reports whether d is the "never" sentinel variant.
func (d DateTime) IsNever() bool { return d.kind == dateTimeNever }

// IsStamp reports whether d holds a concrete instant.
func (d DateTime) IsStamp() bool { return d.kind == dateTimeStamp }

// Time returns the underlying UTC instant. The second return is false for
// the none and never variants.
func (d DateTime) Time() (time.Time, bool) {
	if d.kind != dateTimeStamp {
		return time.Time{}, false
	}
	return d.t, true
}

// RFC3339 renders the canonical RFC3339 string. It fails with
// ErrNoRFC3339Equivalent for the none and never variants, which have no
// RFC3339 form; callers encoding those variants must special-case them.
func (d DateTime) RFC3339() (string, error) {
	if d.kind != dateTimeStamp {
		return "", ErrNoRFC3339Equivalent
	}
	return d.t.Format(time.RFC3339), nil
}

// String renders d for logs and CLI output. It matches the wire encoding
// except that the never variant renders as "never" rather than the
// "0000-00-00 00:00:00" wire sentinel. Never feed String output back onto
// the wire.
func (d DateTime) String() string {
	switch d.kind {
	case dateTimeNone:
		return dateTimeNoneWire
	case dateTimeNever:
		return dateTimeNeverDisplay
	default:
		return d.t.Format(time.RFC3339)
	}
}

// Equal reports structural equality: same variant, and for stamps the same
// UTC instant.
func (d DateTime) Equal(other DateTime) bool {
	if d.kind != other.kind {
		return false
	}
	if d.kind != dateTimeStamp {
		return true
	}
	return d.t.Equal(other.t)
}

// Compare orders two DateTimes. Only stamps are ordered; if either side is
// none or never the pair is incomparable and ok is false, including a
// variant compared against itself. For two stamps it returns -1, 0 or +1.
func (d DateTime) Compare(other DateTime) (cmp int, ok bool) {
	if d.kind != dateTimeStamp || other.kind != dateTimeStamp {
		return 0, false
	}
	return d.t.Compare(other.t), true
}

// wireValue returns the canonical wire string for d. Unlike RFC3339 it is
// total: the none and never variants map to their sentinel strings.
func (d DateTime) wireValue() string {
	switch d.kind {
	case dateTimeNone:
		return dateTimeNoneWire
	case dateTimeNever:
		return dateTimeNeverWire
	default:
		return d.t.Format(time.RFC3339)
	}
}

// MarshalJSON encodes d as a JSON string: "null", "0000-00-00 00:00:00", or
// an RFC3339 string. Encoding never fails.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.wireValue())
}

// UnmarshalJSON decodes any of the portal's date-time wire forms: a JSON
// integer (epoch seconds), the JSON string "null" (none), the JSON string
// "0000-00-00 00:00:00" (never), any other JSON string (RFC3339), or a bare
// JSON null (none).
func (d *DateTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = NoDateTime()
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return &BadDateTimeStringError{Value: string(b)}
		}
		switch s {
		case dateTimeNoneWire:
			*d = NoDateTime()
			return nil
		case dateTimeNeverWire:
			*d = NeverDateTime()
			return nil
		}
		parsed, err := ParseRFC3339(s)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}

	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return &BadDateTimeStringError{Value: string(b)}
	}
	parsed, err := FromUnixTimestamp(n)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Interval is a start/end pair of DateTimes as used by the metrics APIs.
// End is omitted from the wire entirely when nil. The portal does not
// guarantee start <= end and neither does this type: it is a carrier, not a
// validator.
type Interval struct {
	Start DateTime  `json:"start"`
	End   *DateTime `json:"end,omitempty"`
}

// ErrNoRFC3339Equivalent is returned by RFC3339 for the none and never
// variants.
var ErrNoRFC3339Equivalent = errors.New("datetime has no RFC3339 equivalent")

// BadDateTimeStringError reports a wire token that is neither a recognized
// sentinel nor a valid RFC3339 string.
type BadDateTimeStringError struct {
	Value string
}

func (e *BadDateTimeStringError) Error() string {
	return fmt.Sprintf("bad date/time string format: %q", e.Value)
}

// BadUnixTimestampError reports an epoch integer outside the representable
// instant range.
type BadUnixTimestampError struct {
	Value int64
}

func (e *BadUnixTimestampError) Error() string {
	return fmt.Sprintf("bad unix timestamp: %d", e.Value)
}
