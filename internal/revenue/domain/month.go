package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// monthKeyLayout is the canonical storage key for a calendar month.
const monthKeyLayout = "2006-01"

// Month identifies a calendar month at first-of-month granularity.
// It is ordered, comparable with ==, and persists as its canonical
// "YYYY-MM" key so lexicographic and chronological order agree.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthKeyLayout, strings.TrimSpace(s))
	if err != nil {
		return Month{}, fmt.Errorf("parse month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// Date returns the first instant of the month in UTC.
func (m Month) Date() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) Key() string {
	return m.Date().Format(monthKeyLayout)
}

// Display renders the month for humans, e.g. "Jan 2024".
func (m Month) Display() string {
	return m.Date().Format("Jan 2006")
}

func (m Month) Next() Month {
	return MonthOf(m.Date().AddDate(0, 1, 0))
}

func (m Month) Before(o Month) bool {
	return m.Year < o.Year || (m.Year == o.Year && m.Month < o.Month)
}

func (m Month) After(o Month) bool {
	return o.Before(m)
}

func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

func (m Month) String() string {
	return m.Key()
}

func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.Key() + `"`), nil
}

func (m *Month) UnmarshalJSON(data []byte) error {
	parsed, err := ParseMonth(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Month) Value() (driver.Value, error) {
	return m.Key(), nil
}

func (m *Month) Scan(value any) error {
	switch v := value.(type) {
	case string:
		parsed, err := ParseMonth(v)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case []byte:
		return m.Scan(string(v))
	case time.Time:
		*m = MonthOf(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Month", value)
	}
}

// GormDataType tells the migrator how to store Month columns.
func (Month) GormDataType() string {
	return "varchar(7)"
}
