package get_calendar

import (
	"net/http"

	"github.com/Abdo0422/GestionReservation/internal/api/handlers"
	"github.com/Abdo0422/GestionReservation/internal/calendar"
	getCalendar "github.com/Abdo0422/GestionReservation/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Department            handlers.DepartmentResponse    `json:"department"`
	Month                 string                         `json:"month"`
	MonthLabel            string                         `json:"monthLabel"`
	Language              string                         `json:"language"`
	Direction             string                         `json:"direction"`
	Layout                LayoutResponse                 `json:"layout"`
	Weekdays              []string                       `json:"weekdays"`
	LeadingBlanks         int                            `json:"leadingBlanks"`
	DaysInMonth           int                            `json:"daysInMonth"`
	Cells                 []DayCell                      `json:"cells"`
	PreviousMonth         string                         `json:"previousMonth"`
	NextMonth             string                         `json:"nextMonth"`
	SelectedDate          string                         `json:"selectedDate"`
	FormattedSelectedDate string                         `json:"formattedSelectedDate"`
	Reservations          []handlers.ReservationResponse `json:"reservations"`
	Skipped               int                            `json:"skipped"`
}

// DayCell клетка сетки месяца
type DayCell struct {
	DayNumber  int  `json:"dayNumber"`
	IsEmpty    bool `json:"isEmpty"`
	IsSelected bool `json:"isSelected"`
	IsReserved bool `json:"isReserved"`
}

// LayoutResponse подсказки для отрисовки
type LayoutResponse struct {
	RightToLeft bool `json:"rightToLeft"`
	MaxWidthPx  int  `json:"maxWidthPx"`
	CellSizePx  int  `json:"cellSizePx,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	grid := resp.Grid
	loc := resp.Locale

	cells := make([]DayCell, len(grid.Cells))
	for i, c := range grid.Cells {
		cells[i] = DayCell{
			DayNumber:  c.DayNumber,
			IsEmpty:    c.IsEmpty,
			IsSelected: c.IsSelected,
			IsReserved: c.IsReserved,
		}
	}

	return &CalendarResponse{
		Department: handlers.FromDomainDepartment(resp.Department),
		Month:      grid.Cursor.String(),
		MonthLabel: loc.MonthLabel(grid.Cursor),
		Language:   loc.Code,
		Direction:  loc.Direction(),
		Layout: LayoutResponse{
			RightToLeft: resp.Layout.RightToLeft,
			MaxWidthPx:  resp.Layout.MaxWidthPx,
			CellSizePx:  resp.Layout.CellSizePx,
		},
		Weekdays:              loc.Weekdays[:],
		LeadingBlanks:         grid.LeadingBlanks,
		DaysInMonth:           grid.DaysInMonth,
		Cells:                 cells,
		PreviousMonth:         resp.PreviousMonth.String(),
		NextMonth:             resp.NextMonth.String(),
		SelectedDate:          calendar.FormatDate(resp.Selected),
		FormattedSelectedDate: loc.FormatDate(resp.Selected),
		Reservations:          handlers.FromDomainReservations(resp.Reservations, loc),
		Skipped:               grid.SkippedCount(),
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(departmentID int64, r *http.Request) *getCalendar.Request {
	query := r.URL.Query()
	return &getCalendar.Request{
		DepartmentID:   departmentID,
		Month:          query.Get("month"),
		Selected:       query.Get("selected"),
		Navigation:     query.Get("nav"),
		Language:       query.Get("lang"),
		AcceptLanguage: r.Header.Get("Accept-Language"),
	}
}
