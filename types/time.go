package types

import (
	"database/sql/driver"
	"strconv"
	"strings"
	"time"
)

// Time is a time.Time that renders as time.DateTime, so it embeds as
// '2006-01-02 15:04:05' in a statement.
type Time time.Time

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t Time) String() string {
	return time.Time(t).Format(time.DateTime)
}

// Value implements the driver Valuer interface. The zero time is NULL.
func (t Time) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.String(), nil
}

func (t *Time) UnmarshalJSON(b []byte) (err error) {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*t = Time{}
		return nil
	}
	nt, err := time.Parse(time.DateTime, s)
	*t = Time(nt)
	return
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(t.String())), nil
}
