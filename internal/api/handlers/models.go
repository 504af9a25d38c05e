package handlers

import (
	"github.com/Abdo0422/GestionReservation/internal/domain"
	"github.com/Abdo0422/GestionReservation/internal/locale"
)

// DepartmentResponse отдел в HTTP ответе
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ReservationResponse бронирование в HTTP ответе
type ReservationResponse struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Department  string `json:"department"`
	Citizen     string `json:"citizen"`
	Description string `json:"description"`
	Status      string `json:"status"`
	StatusKey   string `json:"statusKey"`
	StatusLabel string `json:"statusLabel"`
}

// FromDomainDepartment конвертирует отдел в HTTP модель
func FromDomainDepartment(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID, Name: d.Name}
}

// FromDomainReservations конвертирует бронирования в HTTP модель с переводом статуса
func FromDomainReservations(reservations []*domain.Reservation, loc *locale.Locale) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		key := r.StatusKey()
		result = append(result, ReservationResponse{
			ID:          r.ID,
			Date:        r.Date,
			Time:        r.Time,
			Department:  r.Department,
			Citizen:     r.Citizen,
			Description: r.Description,
			Status:      string(r.Status),
			StatusKey:   key,
			StatusLabel: loc.StatusLabel(key),
		})
	}
	return result
}
