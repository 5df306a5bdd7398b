package entities

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = time.RFC3339
)

// accepted textual forms for calendar dates; spreadsheets and legacy rows
// are not consistent about formatting.
var dateLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"1/2/2006",
	"01-02-06",
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	dateLayout,
}

// Date is a nullable calendar date stored as text. Empty string and NULL
// are equivalent; malformed stored values scan as null instead of failing
// the whole read.
type Date struct {
	Time  time.Time
	Valid bool
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

// ParseDate accepts any of the known layouts. Empty input is a valid null.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(dateLayout)
}

func (d *Date) Scan(value any) error {
	d.Time, d.Valid = time.Time{}, false
	switch v := value.(type) {
	case nil:
	case time.Time:
		*d = NewDate(v)
	case string:
		if parsed, err := ParseDate(v); err == nil {
			*d = parsed
		}
	case []byte:
		if parsed, err := ParseDate(string(v)); err == nil {
			*d = parsed
		}
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Time.Format(dateLayout), nil
}

func (Date) GormDataType() string { return "date" }

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateTime is a nullable timestamp stored as RFC3339 text. RFC3339 strings
// sort lexicographically, so created_at ordering works directly in SQL.
type DateTime struct {
	Time  time.Time
	Valid bool
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.Truncate(time.Second).UTC(), Valid: true}
}

// Now is the timestamp every mutating repository operation stamps.
func Now() DateTime { return NewDateTime(time.Now()) }

func ParseDateTime(s string) (DateTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DateTime{}, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDateTime(t), nil
		}
	}
	return DateTime{}, fmt.Errorf("invalid timestamp %q", s)
}

func (d DateTime) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(dateTimeLayout)
}

func (d *DateTime) Scan(value any) error {
	d.Time, d.Valid = time.Time{}, false
	switch v := value.(type) {
	case nil:
	case time.Time:
		*d = NewDateTime(v)
	case string:
		if parsed, err := ParseDateTime(v); err == nil {
			*d = parsed
		}
	case []byte:
		if parsed, err := ParseDateTime(string(v)); err == nil {
			*d = parsed
		}
	default:
		return fmt.Errorf("cannot scan %T into DateTime", value)
	}
	return nil
}

func (d DateTime) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Time.Format(dateTimeLayout), nil
}

func (DateTime) GormDataType() string { return "datetime" }

func (d DateTime) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(dateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = DateTime{}
		return nil
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
