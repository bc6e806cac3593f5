// Package date provides a calendar day value that round-trips through JSON and SQL as YYYY-MM-DD.
package date

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const Layout = "2006-01-02"

// Date is a calendar day at midnight UTC. The zero value means unset.
type Date struct {
	t time.Time
}

// Of truncates t to its calendar day in t's own location.
func Of(t time.Time) Date {
	y, m, d := t.Date()

	return New(y, m, d)
}

func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse accepts exactly YYYY-MM-DD.
func Parse(value string) (Date, error) {
	t, err := time.Parse(Layout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}

	return Date{t: t}, nil
}

// MustParse is Parse for literals in tests and defaults.
func MustParse(value string) Date {
	d, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return d
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return d.t.Format(Layout)
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// DaysUntil counts calendar days from d to other, negative when other is earlier.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// Range lists every day from start to end inclusive; empty when start is after end.
func Range(start, end Date) []Date {
	if start.After(end) {
		return nil
	}

	days := make([]Date, 0, start.DaysUntil(end)+1)
	for day := start; !day.After(end); day = day.AddDays(1) {
		days = append(days, day)
	}

	return days
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}

		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}

	if raw == "" {
		*d = Date{}

		return nil
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// Value stores the day as text so sqlite comparisons stay lexicographic and postgres casts it to DATE.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}

	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = New(v.Year(), v.Month(), v.Day())
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into date", src)
	}

	return nil
}

func (d *Date) scanString(v string) error {
	if len(v) >= len(Layout) {
		v = v[:len(Layout)]
	}

	parsed, err := Parse(v)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
