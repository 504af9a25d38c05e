package toggle_status

import (
	"context"
	"time"

	"github.com/Abdo0422/GestionReservation/internal/calendar"
	"github.com/Abdo0422/GestionReservation/internal/domain"
)

// ReservationsService интерфейс сервиса отделов и бронирований
type ReservationsService interface {
	GetDepartment(ctx context.Context, id int64) (*domain.Department, error)
	GetReservation(ctx context.Context, department string, month calendar.Cursor, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, department string, month calendar.Cursor, id int64, status domain.ReservationStatus) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
