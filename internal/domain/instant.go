package domain

import (
	"fmt"
	"strings"
	"time"
)

// InstantKind tags the representation a RawInstant was built from
type InstantKind int

const (
	InstantNativeDate InstantKind = iota + 1
	InstantExternalTimestamp
	InstantRawScalar
)

func (k InstantKind) String() string {
	switch k {
	case InstantNativeDate:
		return "native"
	case InstantExternalTimestamp:
		return "timestamp"
	case InstantRawScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// ExternalTimestamp is the seconds/nanoseconds pair used by document stores
type ExternalTimestamp struct {
	Seconds     int64
	Nanoseconds int32
}

// RawInstant is an appointment instant as it arrived at an adapter boundary.
// Exactly one representation is set, selected by Kind.
type RawInstant struct {
	kind      InstantKind
	native    time.Time
	timestamp ExternalTimestamp
	text      string
	millis    int64
	numeric   bool
}

// NativeInstant wraps an already-typed time value
func NativeInstant(t time.Time) RawInstant {
	return RawInstant{kind: InstantNativeDate, native: t}
}

// TimestampInstant wraps a seconds/nanoseconds pair
func TimestampInstant(seconds int64, nanoseconds int32) RawInstant {
	return RawInstant{kind: InstantExternalTimestamp, timestamp: ExternalTimestamp{Seconds: seconds, Nanoseconds: nanoseconds}}
}

// TextInstant wraps a date/time string
func TextInstant(s string) RawInstant {
	return RawInstant{kind: InstantRawScalar, text: s}
}

// EpochMillisInstant wraps milliseconds since the Unix epoch
func EpochMillisInstant(ms int64) RawInstant {
	return RawInstant{kind: InstantRawScalar, millis: ms, numeric: true}
}

// Kind returns the representation tag
func (r RawInstant) Kind() InstantKind {
	return r.kind
}

func (r RawInstant) String() string {
	switch r.kind {
	case InstantNativeDate:
		return r.native.String()
	case InstantExternalTimestamp:
		return fmt.Sprintf("{seconds:%d nanoseconds:%d}", r.timestamp.Seconds, r.timestamp.Nanoseconds)
	case InstantRawScalar:
		if r.numeric {
			return fmt.Sprintf("%d", r.millis)
		}
		return fmt.Sprintf("%q", r.text)
	default:
		return "<empty>"
	}
}

// Layouts accepted for textual instants without an explicit offset are read in the salon location
var textLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	DateFormat,
}

// NormalizeInstant converts raw into a canonical instant expressed in loc.
// Unparseable or zero input yields a wrapped ErrInvalidInstant. A nil loc means time.Local.
func NormalizeInstant(raw RawInstant, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	switch raw.kind {
	case InstantNativeDate:
		if raw.native.IsZero() {
			return time.Time{}, fmt.Errorf("%w: zero time", ErrInvalidInstant)
		}
		return raw.native.In(loc), nil

	case InstantExternalTimestamp:
		ts := raw.timestamp
		if ts.Nanoseconds < 0 || ts.Nanoseconds >= int32(time.Second) {
			return time.Time{}, fmt.Errorf("%w: nanoseconds out of range in %s", ErrInvalidInstant, raw)
		}
		if ts.Seconds == 0 && ts.Nanoseconds == 0 {
			return time.Time{}, fmt.Errorf("%w: zero timestamp", ErrInvalidInstant)
		}
		return time.Unix(ts.Seconds, int64(ts.Nanoseconds)).In(loc), nil

	case InstantRawScalar:
		if raw.numeric {
			if raw.millis <= 0 {
				return time.Time{}, fmt.Errorf("%w: epoch millis %d", ErrInvalidInstant, raw.millis)
			}
			return time.UnixMilli(raw.millis).In(loc), nil
		}
		return parseText(raw.text, loc)

	default:
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidInstant)
	}
}

func parseText(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidInstant)
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range textLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidInstant, s)
}
