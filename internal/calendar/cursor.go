package calendar

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

const (
	MinYear = 1
	MaxYear = 9999
)

// Cursor is the month currently displayed by a calendar.
type Cursor struct {
	Year  int
	Month time.Month
}

// NewCursor returns a validated cursor.
func NewCursor(year int, month time.Month) (Cursor, error) {
	c := Cursor{Year: year, Month: month}
	if err := c.Validate(); err != nil {
		return Cursor{}, err
	}
	return c, nil
}

// CursorOf returns the month containing d.
func CursorOf(d datetime.CalendarDate) Cursor {
	return Cursor{Year: d.Year, Month: time.Month(d.Month)}
}

// ParseMonth parses a YYYY-MM value.
func ParseMonth(value string) (Cursor, error) {
	t, err := time.Parse(MonthLayout, value)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: month %q", ErrInvalidCursor, value)
	}
	return NewCursor(t.Year(), t.Month())
}

// InitialCursor returns the month of selected, or of now when nothing is selected.
// Callers evaluate now once, when the widget is built, not on every render.
func InitialCursor(selected *datetime.CalendarDate, now time.Time) Cursor {
	if selected != nil {
		return CursorOf(*selected)
	}
	return CursorOf(DateOf(now))
}

func (c Cursor) Validate() error {
	if c.Month < time.January || c.Month > time.December {
		return fmt.Errorf("%w: month %d", ErrInvalidCursor, int(c.Month))
	}
	if c.Year < MinYear || c.Year > MaxYear {
		return fmt.Errorf("%w: year %d", ErrInvalidCursor, c.Year)
	}
	return nil
}

// Next returns the following month, rolling December over into January.
func (c Cursor) Next() Cursor {
	if c.Month == time.December {
		return Cursor{Year: c.Year + 1, Month: time.January}
	}
	return Cursor{Year: c.Year, Month: c.Month + 1}
}

// Previous returns the preceding month, rolling January back into December.
func (c Cursor) Previous() Cursor {
	if c.Month == time.January {
		return Cursor{Year: c.Year - 1, Month: time.December}
	}
	return Cursor{Year: c.Year, Month: c.Month - 1}
}

func (c Cursor) DaysInMonth() int {
	return DaysInMonth(c.Year, c.Month)
}

// LeadingBlanks is the Sunday-first weekday index of day 1.
func (c Cursor) LeadingBlanks() int {
	return int(time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Date combines the cursor with a day number.
func (c Cursor) Date(day int) datetime.CalendarDate {
	return datetime.CalendarDate{Year: c.Year, Month: datetime.Month(c.Month), Day: day}
}

func (c Cursor) FirstDay() datetime.CalendarDate {
	return c.Date(1)
}

func (c Cursor) LastDay() datetime.CalendarDate {
	return c.Date(c.DaysInMonth())
}

// Contains reports whether d falls in the displayed month.
func (c Cursor) Contains(d datetime.CalendarDate) bool {
	return d.Year == c.Year && time.Month(d.Month) == c.Month
}

func (c Cursor) String() string {
	return fmt.Sprintf("%04d-%02d", c.Year, int(c.Month))
}
