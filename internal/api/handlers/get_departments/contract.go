package get_departments

import (
	"context"

	"github.com/Abdo0422/GestionReservation/internal/domain"
)

type ReservationsService interface {
	ListDepartments(ctx context.Context) ([]*domain.Department, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
