package get_calendar

import (
	"cloudeng.io/datetime"

	"github.com/Abdo0422/GestionReservation/internal/calendar"
	"github.com/Abdo0422/GestionReservation/internal/domain"
	"github.com/Abdo0422/GestionReservation/internal/locale"
)

// Навигация относительно запрошенного месяца
const (
	NavigationNone     = ""
	NavigationPrevious = "previous"
	NavigationNext     = "next"
)

// Request модель запроса на построение календаря отдела
type Request struct {
	DepartmentID   int64  // ID отдела (numdep начальника)
	Month          string // YYYY-MM, опционально
	Selected       string // YYYY-MM-DD, опционально (по умолчанию сегодня)
	Navigation     string // "", "previous" или "next"
	Language       string // fr | ar, опционально
	AcceptLanguage string // заголовок Accept-Language
}

// Response модель ответа с сеткой месяца
type Response struct {
	Department    *domain.Department
	Locale        *locale.Locale
	Grid          *calendar.Grid
	Layout        calendar.Layout
	PreviousMonth calendar.Cursor
	NextMonth     calendar.Cursor
	Selected      datetime.CalendarDate
	Reservations  []*domain.Reservation // бронирования выбранного дня, по времени
}
