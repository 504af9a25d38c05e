package toggle_status

import (
	"fmt"
	"net/http"

	"github.com/Abdo0422/GestionReservation/internal/api/handlers"
	"github.com/Abdo0422/GestionReservation/internal/domain"
	toggleStatus "github.com/Abdo0422/GestionReservation/internal/usecase/toggle_status"
)

// ToggleStatusResponse HTTP response model
type ToggleStatusResponse struct {
	Department     handlers.DepartmentResponse  `json:"department"`
	Reservation    handlers.ReservationResponse `json:"reservation"`
	PreviousStatus string                       `json:"previousStatus"`
	Direction      string                       `json:"direction"`
	Message        string                       `json:"message"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *toggleStatus.Response) *ToggleStatusResponse {
	reservation := handlers.FromDomainReservations([]*domain.Reservation{resp.Reservation}, resp.Locale)[0]
	return &ToggleStatusResponse{
		Department:     handlers.FromDomainDepartment(resp.Department),
		Reservation:    reservation,
		PreviousStatus: string(resp.PreviousStatus),
		Direction:      resp.Locale.Direction(),
		Message:        fmt.Sprintf("Statut de réservation changé en %s.", reservation.StatusLabel),
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(departmentID, reservationID int64, r *http.Request) *toggleStatus.Request {
	query := r.URL.Query()
	return &toggleStatus.Request{
		DepartmentID:   departmentID,
		ReservationID:  reservationID,
		Month:          query.Get("month"),
		Language:       query.Get("lang"),
		AcceptLanguage: r.Header.Get("Accept-Language"),
	}
}
