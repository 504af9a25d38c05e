package toggle_status

import (
	"github.com/Abdo0422/GestionReservation/internal/domain"
	"github.com/Abdo0422/GestionReservation/internal/locale"
)

// Request модель запроса на смену статуса бронирования
type Request struct {
	DepartmentID   int64  // ID отдела (numdep начальника)
	ReservationID  int64  // ID бронирования
	Month          string // YYYY-MM месяца бронирования, по умолчанию текущий
	Language       string // fr | ar, опционально
	AcceptLanguage string // заголовок Accept-Language
}

// Response модель ответа с обновленным бронированием
type Response struct {
	Department     *domain.Department
	Locale         *locale.Locale
	Reservation    *domain.Reservation // с новым статусом
	PreviousStatus domain.ReservationStatus
}
