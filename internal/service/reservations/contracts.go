package reservations

import (
	"context"

	"github.com/Abdo0422/GestionReservation/internal/calendar"
	"github.com/Abdo0422/GestionReservation/internal/domain"
)

// ReservationSource источник бронирований: REST backend или PostgreSQL
type ReservationSource interface {
	ListDepartments(ctx context.Context) ([]*domain.Department, error)
	ListDepartmentReservations(ctx context.Context, filter domain.DepartmentReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// ReservationCache кэш бронирований отдела за месяц
type ReservationCache interface {
	Get(ctx context.Context, department string, month calendar.Cursor) ([]*domain.Reservation, error)
	Set(ctx context.Context, department string, month calendar.Cursor, reservations []*domain.Reservation) error
	Delete(ctx context.Context, department string, month calendar.Cursor) error
}

// Metrics интерфейс для метрик сервиса
type Metrics interface {
	RecordSourceRequest(source, operation string, err error)
	RecordCache(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) RecordSourceRequest(string, string, error) {}
func (noopMetrics) RecordCache(string) {}
