package calendar

import (
	"fmt"

	"cloudeng.io/datetime"
	"cloudeng.io/errors"
)

// Dated is the only part of a reservation the grid looks at.
type Dated interface {
	ReservationDate() string
}

// DayCell is one square of the month grid. Leading blanks have IsEmpty set
// and a zero DayNumber.
type DayCell struct {
	DayNumber  int
	IsEmpty    bool
	IsSelected bool
	IsReserved bool
}

// Grid is a rendered month.
type Grid struct {
	Cursor        Cursor
	LeadingBlanks int
	DaysInMonth   int
	Cells         []DayCell

	// Skipped collects one error per reservation whose date could not be
	// parsed; nil when every date was usable.
	Skipped error
}

// ComputeGrid lays out the month under cursor and marks the selected day and
// every day holding at least one reservation. It has no side effects.
func ComputeGrid[R Dated](cursor Cursor, selected *datetime.CalendarDate, reservations []R) (*Grid, error) {
	if err := cursor.Validate(); err != nil {
		return nil, err
	}

	reserved, skipped := ReservedDays(cursor, reservations)

	blanks := cursor.LeadingBlanks()
	days := cursor.DaysInMonth()
	cells := make([]DayCell, 0, blanks+days)

	for i := 0; i < blanks; i++ {
		cells = append(cells, DayCell{IsEmpty: true})
	}

	for day := 1; day <= days; day++ {
		_, isReserved := reserved[day]
		cells = append(cells, DayCell{
			DayNumber:  day,
			IsSelected: selected != nil && *selected == cursor.Date(day),
			IsReserved: isReserved,
		})
	}

	return &Grid{
		Cursor:        cursor,
		LeadingBlanks: blanks,
		DaysInMonth:   days,
		Cells:         cells,
		Skipped:       skipped,
	}, nil
}

// ReservedDays returns the set of day numbers of cursor's month that hold a
// reservation. Unparseable dates are left out and reported in the error.
func ReservedDays[R Dated](cursor Cursor, reservations []R) (map[int]struct{}, error) {
	reserved := make(map[int]struct{})
	errs := &errors.M{}

	for i, r := range reservations {
		date, err := ParseDate(r.ReservationDate())
		if err != nil {
			errs.Append(fmt.Errorf("reservation #%d: %w", i, err))
			continue
		}
		if cursor.Contains(date) {
			reserved[date.Day] = struct{}{}
		}
	}

	return reserved, errs.Err()
}

// OnDay returns the reservations falling on date, in input order.
func OnDay[R Dated](reservations []R, date datetime.CalendarDate) []R {
	result := make([]R, 0)
	for _, r := range reservations {
		d, err := ParseDate(r.ReservationDate())
		if err != nil {
			continue
		}
		if d == date {
			result = append(result, r)
		}
	}
	return result
}

// Cell returns the cell of day, if the day exists in the month.
func (g *Grid) Cell(day int) (DayCell, bool) {
	if day < 1 || day > g.DaysInMonth {
		return DayCell{}, false
	}
	return g.Cells[g.LeadingBlanks+day-1], true
}

// SkippedCount returns how many reservations were left out of matching.
func (g *Grid) SkippedCount() int {
	if g.Skipped == nil {
		return 0
	}
	if m, ok := g.Skipped.(interface{ Unwrap() []error }); ok {
		return len(m.Unwrap())
	}
	return 1
}
