package calendar

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

const (
	DateLayout  = "2006-01-02" // YYYY-MM-DD
	MonthLayout = "2006-01"    // YYYY-MM
)

// Naive layouts carry no zone, the date is taken literally.
var naiveLayouts = []string{
	DateLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDate returns the calendar date of value as it is written.
// RFC 3339 timestamps keep their own offset: "2025-03-10T23:30:00-05:00"
// is the 10th of March even though it is already the 11th in UTC.
func ParseDate(value string) (datetime.CalendarDate, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return datetime.CalendarDate{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return DateOf(t), nil
	}

	for _, layout := range naiveLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return DateOf(t), nil
		}
	}

	return datetime.CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) datetime.CalendarDate {
	year, month, day := t.Date()
	return datetime.CalendarDate{Year: year, Month: datetime.Month(month), Day: day}
}

// FormatDate formats d as YYYY-MM-DD.
func FormatDate(d datetime.CalendarDate) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DaysInMonth returns 28..31 depending on month and leap year.
func DaysInMonth(year int, month time.Month) int {
	return datetime.DaysInMonth(year, datetime.Month(month))
}

// Time returns midnight UTC of d, for storage and formatting only.
func Time(d datetime.CalendarDate) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}
