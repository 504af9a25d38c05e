package reservationservice

import "github.com/Abdo0422/GestionReservation/internal/domain"

// Department модель отдела из backend
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"nomdepart"` // может быть URL-encoded
}

// Reservation модель бронирования из backend
type Reservation struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Department  string `json:"department"`
	Citizen     string `json:"citizen"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateStatusRequest тело запроса смены статуса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ErrorResponse модель ошибки от backend
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToDomain конвертирует отдел в domain модель
func (d Department) ToDomain() *domain.Department {
	return &domain.Department{
		ID:   d.ID,
		Name: domain.DecodeDepartmentName(d.Name),
	}
}

// ToDomain конвертирует бронирование в domain модель
func (r Reservation) ToDomain() *domain.Reservation {
	return &domain.Reservation{
		ID:          r.ID,
		Date:        r.Date,
		Time:        r.Time,
		Department:  r.Department,
		Citizen:     r.Citizen,
		Description: r.Description,
		Status:      domain.ReservationStatus(r.Status),
	}
}
