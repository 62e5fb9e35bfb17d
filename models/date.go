package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire and storage format of a [Date].
const DateLayout = time.DateOnly

// Date is a calendar day stored in a PostgreSQL DATE column.
// It reads "2024-05-01" as well as a full RFC 3339 timestamp and always
// writes "2024-05-01".
type Date time.Time

// NewDate returns the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func (d Date) String() string {
	return time.Time(d).Format(DateLayout)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := parseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Scan implements [sql.Scanner].
func (d *Date) Scan(src any) error {
	switch value := src.(type) {
	case time.Time:
		y, m, day := value.Date()
		*d = NewDate(y, m, day)
		return nil
	case string:
		parsed, err := parseDate(value)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(value))
	default:
		return fmt.Errorf("cannot scan %T into models.Date", src)
	}
}

// Value implements [driver.Valuer].
func (d Date) Value() (driver.Value, error) {
	return time.Time(d), nil
}

func parseDate(s string) (Date, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date(t), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("date %q: want YYYY-MM-DD or RFC 3339", s)
	}
	y, m, day := t.Date()
	return NewDate(y, m, day), nil
}
