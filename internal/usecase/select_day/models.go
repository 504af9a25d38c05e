package select_day

import (
	"cloudeng.io/datetime"

	"github.com/Abdo0422/GestionReservation/internal/domain"
	"github.com/Abdo0422/GestionReservation/internal/locale"
)

// Request модель запроса на выбор дня в календаре
type Request struct {
	DepartmentID   int64  // ID отдела (numdep начальника)
	Month          string // YYYY-MM отображаемого месяца, по умолчанию текущий
	Day            int    // номер дня в месяце
	Language       string // fr | ar, опционально
	AcceptLanguage string // заголовок Accept-Language
}

// Response модель ответа с выбранной датой и ее бронированиями
type Response struct {
	Department    *domain.Department
	Locale        *locale.Locale
	Selected      datetime.CalendarDate
	FormattedDate string                // "D MMM YYYY" на языке интерфейса
	Reservations  []*domain.Reservation // отсортированы по времени
}
