package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/parlourease/internal/domain"
)

// StringList принимает как одну строку, так и массив строк
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*l = StringList{}
			return nil
		}
		*l = StringList{s}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("expected string or array of strings: %w", err)
	}
	*l = list
	return nil
}

// Instant момент времени в любом из принимаемых видов:
// строка, epoch-миллисекунды или объект {seconds, nanoseconds}
// Ошибка разбора откладывается до DateAndTime, чтобы вернуть её как ошибку поля
type Instant struct {
	Raw domain.RawInstant
	Set bool

	err error
}

type timestampObject struct {
	Seconds     *int64 `json:"seconds"`
	Nanoseconds int32  `json:"nanoseconds"`
}

func (i *Instant) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*i = Instant{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = Instant{Raw: domain.TextInstant(s), Set: true}
	case '{':
		var ts timestampObject
		if err := json.Unmarshal(data, &ts); err != nil {
			*i = Instant{Set: true, err: fmt.Errorf("%w: malformed timestamp object: %v", domain.ErrInvalidInstant, err)}
			return nil
		}
		if ts.Seconds == nil {
			*i = Instant{Set: true, err: fmt.Errorf("%w: timestamp object without seconds", domain.ErrInvalidInstant)}
			return nil
		}
		*i = Instant{Raw: domain.TimestampInstant(*ts.Seconds, ts.Nanoseconds), Set: true}
	default:
		var ms int64
		if err := json.Unmarshal(data, &ms); err != nil {
			*i = Instant{Set: true, err: fmt.Errorf("%w: %s", domain.ErrInvalidInstant, string(data))}
			return nil
		}
		*i = Instant{Raw: domain.EpochMillisInstant(ms), Set: true}
	}
	return nil
}

// DateAndTime раскладывает момент на дату и время в часовом поясе салона
// Момент должен приходиться ровно на начало минуты
func (i Instant) DateAndTime(loc *time.Location) (string, string, error) {
	if i.err != nil {
		return "", "", i.err
	}
	at, err := domain.NormalizeInstant(i.Raw, loc)
	if err != nil {
		return "", "", err
	}
	if at.Second() != 0 || at.Nanosecond() != 0 {
		return "", "", fmt.Errorf("%w: %s is not on a minute boundary", domain.ErrInvalidInstant, at.Format(time.RFC3339Nano))
	}
	return at.Format(domain.DateFormat), at.Format(domain.TimeFormat), nil
}
