package calendar

import (
	"fmt"
	"time"
)

// Month identifies a calendar month. The zero value is not a valid month; use NewMonth.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth returns the month for year and month number (1..12)
func NewMonth(year int, month time.Month) (Month, error) {
	if month < time.January || month > time.December {
		return Month{}, fmt.Errorf("month must be in 1..12, got %d", month)
	}
	return Month{Year: year, Month: month}, nil
}

// MonthOf returns the month containing t
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// AddMonths shifts the month by n months, crossing year boundaries as needed
func (m Month) AddMonths(n int) Month {
	total := m.Year*12 + int(m.Month) - 1 + n
	year := total / 12
	idx := total % 12
	if idx < 0 {
		idx += 12
		year--
	}
	return Month{Year: year, Month: time.Month(idx + 1)}
}

// Before reports whether m is chronologically earlier than other
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// Days returns the number of days in the month (leap-year aware)
func (m Month) Days() int {
	// day 0 of the next month is the last day of this one
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the ISO weekday of the 1st: Monday=1 .. Sunday=7
func (m Month) FirstWeekday() int {
	wd := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

// Contains reports whether t falls inside the month
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// MonthRange returns the months from before months prior to base through after months
// past it, base included, in ascending order. Negative counts are treated as zero.
func MonthRange(base Month, before, after int) []Month {
	if before < 0 {
		before = 0
	}
	if after < 0 {
		after = 0
	}

	start := base.AddMonths(-before)
	months := make([]Month, 0, before+after+1)
	for i := 0; i <= before+after; i++ {
		months = append(months, start.AddMonths(i))
	}
	return months
}
