package calendar

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// DateChangeFunc receives the fully qualified date of a clicked day.
type DateChangeFunc func(date datetime.CalendarDate)

// Layout carries rendering hints only; it never affects date arithmetic.
type Layout struct {
	RightToLeft bool
	MaxWidthPx  int
	CellSizePx  int
}

// Widget is a navigable month view. It owns its cursor and nothing else:
// the selected date belongs to the caller and only changes through
// onDateChange.
type Widget struct {
	cursor       Cursor
	onDateChange DateChangeFunc
	rightToLeft  bool
}

// NewWidget builds a widget showing the month of selected, or of now when
// nothing is selected.
func NewWidget(selected *datetime.CalendarDate, now time.Time, onDateChange DateChangeFunc) *Widget {
	return &Widget{
		cursor:       InitialCursor(selected, now),
		onDateChange: onDateChange,
	}
}

// NewWidgetAt builds a widget showing an explicit month.
func NewWidgetAt(cursor Cursor, onDateChange DateChangeFunc) (*Widget, error) {
	if err := cursor.Validate(); err != nil {
		return nil, err
	}
	return &Widget{cursor: cursor, onDateChange: onDateChange}, nil
}

// SetRightToLeft switches the layout hints for right-to-left locales.
func (w *Widget) SetRightToLeft(rtl bool) {
	w.rightToLeft = rtl
}

func (w *Widget) Cursor() Cursor {
	return w.cursor
}

func (w *Widget) GoToPreviousMonth() {
	w.cursor = w.cursor.Previous()
}

func (w *Widget) GoToNextMonth() {
	w.cursor = w.cursor.Next()
}

// OnDayClicked reports the clicked date to the caller exactly once.
func (w *Widget) OnDayClicked(day int) error {
	if day < 1 || day > w.cursor.DaysInMonth() {
		return fmt.Errorf("%w: day %d of %s", ErrInvalidDay, day, w.cursor)
	}
	if w.onDateChange != nil {
		w.onDateChange(w.cursor.Date(day))
	}
	return nil
}

func (w *Widget) Layout() Layout {
	if w.rightToLeft {
		return Layout{RightToLeft: true, MaxWidthPx: 500, CellSizePx: 40}
	}
	return Layout{MaxWidthPx: 300}
}
