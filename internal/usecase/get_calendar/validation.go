package get_calendar

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"

	"github.com/Abdo0422/GestionReservation/internal/calendar"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DepartmentID <= 0 {
		return fmt.Errorf("%w: departmentID must be positive", ErrInvalidInput)
	}

	switch req.Navigation {
	case NavigationNone, NavigationPrevious, NavigationNext:
	default:
		return fmt.Errorf("%w: unknown navigation %q", ErrInvalidInput, req.Navigation)
	}

	return nil
}

// resolveSelected возвращает выбранную дату или сегодняшнюю
func resolveSelected(value string, now time.Time) (datetime.CalendarDate, error) {
	if value == "" {
		return calendar.DateOf(now), nil
	}

	selected, err := calendar.ParseDate(value)
	if err != nil {
		return datetime.CalendarDate{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return selected, nil
}

// buildWidget создает виджет на запрошенном месяце или на месяце выбранной даты
// и применяет навигацию
func buildWidget(req *Request, selected datetime.CalendarDate, now time.Time) (*calendar.Widget, error) {
	var widget *calendar.Widget

	if req.Month != "" {
		cursor, err := calendar.ParseMonth(req.Month)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if widget, err = calendar.NewWidgetAt(cursor, nil); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	} else {
		widget = calendar.NewWidget(&selected, now, nil)
	}

	switch req.Navigation {
	case NavigationPrevious:
		widget.GoToPreviousMonth()
	case NavigationNext:
		widget.GoToNextMonth()
	}

	if err := widget.Cursor().Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return widget, nil
}
