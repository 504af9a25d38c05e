package select_day

import (
	"net/http"

	"github.com/Abdo0422/GestionReservation/internal/api/handlers"
	"github.com/Abdo0422/GestionReservation/internal/calendar"
	selectDay "github.com/Abdo0422/GestionReservation/internal/usecase/select_day"
)

// SelectDayResponse HTTP response model
type SelectDayResponse struct {
	Department    handlers.DepartmentResponse    `json:"department"`
	SelectedDate  string                         `json:"selectedDate"`
	FormattedDate string                         `json:"formattedDate"`
	Direction     string                         `json:"direction"`
	Reservations  []handlers.ReservationResponse `json:"reservations"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *selectDay.Response) *SelectDayResponse {
	return &SelectDayResponse{
		Department:    handlers.FromDomainDepartment(resp.Department),
		SelectedDate:  calendar.FormatDate(resp.Selected),
		FormattedDate: resp.FormattedDate,
		Direction:     resp.Locale.Direction(),
		Reservations:  handlers.FromDomainReservations(resp.Reservations, resp.Locale),
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(departmentID int64, day int, r *http.Request) *selectDay.Request {
	query := r.URL.Query()
	return &selectDay.Request{
		DepartmentID:   departmentID,
		Month:          query.Get("month"),
		Day:            day,
		Language:       query.Get("lang"),
		AcceptLanguage: r.Header.Get("Accept-Language"),
	}
}
