package calendar

import "errors"

var (
	// ErrInvalidCursor is returned for a month outside 1..12 or a year outside 1..9999.
	ErrInvalidCursor = errors.New("calendar: invalid cursor")

	// ErrInvalidDate is returned when a date string cannot be parsed.
	ErrInvalidDate = errors.New("calendar: invalid date")

	// ErrInvalidDay is returned when a clicked day is outside the displayed month.
	ErrInvalidDay = errors.New("calendar: day is outside the displayed month")
)
