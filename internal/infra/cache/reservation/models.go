package reservation

import "github.com/Abdo0422/GestionReservation/internal/domain"

// cachedReservation представление бронирования в кэше
type cachedReservation struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Department  string `json:"department"`
	Citizen     string `json:"citizen"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func fromDomain(reservations []*domain.Reservation) []cachedReservation {
	result := make([]cachedReservation, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, cachedReservation{
			ID:          r.ID,
			Date:        r.Date,
			Time:        r.Time,
			Department:  r.Department,
			Citizen:     r.Citizen,
			Description: r.Description,
			Status:      string(r.Status),
		})
	}
	return result
}

func toDomain(cached []cachedReservation) []*domain.Reservation {
	result := make([]*domain.Reservation, 0, len(cached))
	for _, c := range cached {
		result = append(result, &domain.Reservation{
			ID:          c.ID,
			Date:        c.Date,
			Time:        c.Time,
			Department:  c.Department,
			Citizen:     c.Citizen,
			Description: c.Description,
			Status:      domain.ReservationStatus(c.Status),
		})
	}
	return result
}
