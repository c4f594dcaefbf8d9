// Package dateutil normalizes client-supplied date strings to the calendar
// day that keys journal entries.
package dateutil

import (
	"database/sql/driver"
	"fmt"
	"time"

	appErr "github.com/LourceDev/3pages/internal/pkg/errors"
)

const dayFormat = "2006-01-02"

// Date is a calendar day with no time-of-day. The zero value is invalid.
type Date struct {
	t time.Time
}

// Parse accepts either a bare YYYY-MM-DD or a full RFC 3339 timestamp.
// A full timestamp contributes the calendar date as written in its own
// offset; it is not converted to UTC first, so a late-evening entry saved
// from UTC+5:30 stays on the writer's day. Anything else fails with
// ErrInvalid.
func Parse(s string) (Date, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := ts.Date()
		return New(y, m, d), nil
	}
	if day, err := time.Parse(dayFormat, s); err == nil {
		return Date{t: day}, nil
	}
	return Date{}, fmt.Errorf("%w: bad date %q", appErr.ErrInvalid, s)
}

func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) String() string {
	return d.t.Format(dayFormat)
}

// Time returns the day as midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: date must be a string", appErr.ErrInvalid)
	}
	parsed, err := Parse(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer. The day is bound as its YYYY-MM-DD text
// form: binding a timestamp into a DATE column would go through the
// session-timezone cast and could land on the wrong day.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner. lib/pq hands DATE columns back as time.Time.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		y, m, day := v.Date()
		*d = New(y, m, day)
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
