package toggle_status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abdo0422/GestionReservation/internal/calendar"
	"github.com/Abdo0422/GestionReservation/internal/locale"
	"github.com/Abdo0422/GestionReservation/internal/service/reservations"
)

// UseCase use case переключения статуса бронирования "En attente" <-> "Confirmé"
type UseCase struct {
	reservationsSvc ReservationsService
	timeProvider    TimeProvider
	location        *time.Location
	defaultLanguage string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationsSvc ReservationsService,
	location *time.Location,
	defaultLanguage string,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		reservationsSvc: reservationsSvc,
		timeProvider:    &RealTimeProvider{},
		location:        location,
		defaultLanguage: defaultLanguage,
		logger:          logger,
	}
}

// Execute выполняет use case переключения статуса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ToggleStatus: department=%d, reservation=%d, month=%q",
		req.DepartmentID, req.ReservationID, req.Month)

	// 1. Валидация входных данных
	if req.DepartmentID <= 0 || req.ReservationID <= 0 {
		uc.logger.Warn("ToggleStatus: invalid ids department=%d reservation=%d", req.DepartmentID, req.ReservationID)
		return nil, fmt.Errorf("%w: departmentID and reservationID must be positive", ErrInvalidInput)
	}

	cursor := calendar.CursorOf(calendar.DateOf(uc.timeProvider.Now().In(uc.location)))
	if req.Month != "" {
		var err error
		if cursor, err = calendar.ParseMonth(req.Month); err != nil {
			uc.logger.Warn("ToggleStatus: invalid month: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	// 2. Отдел
	department, err := uc.reservationsSvc.GetDepartment(ctx, req.DepartmentID)
	if err != nil {
		return nil, uc.mapServiceError("get department", err)
	}

	// 3. Текущее состояние бронирования, без кэша
	reservation, err := uc.reservationsSvc.GetReservation(ctx, department.Name, cursor, req.ReservationID)
	if err != nil {
		return nil, uc.mapServiceError("get reservation", err)
	}

	// 4. Переключаем статус; сервис сбрасывает кэш месяца
	previous := reservation.Status
	next := reservation.ToggledStatus()

	if err := uc.reservationsSvc.UpdateStatus(ctx, department.Name, cursor, reservation.ID, next); err != nil {
		return nil, uc.mapServiceError("update status", err)
	}

	updated := *reservation
	updated.Status = next

	uc.logger.Info("ToggleStatus: reservation id=%d of department=%q changed %q -> %q",
		updated.ID, department.Name, previous, next)

	return &Response{
		Department:     department,
		Locale:         locale.Resolve(req.Language, req.AcceptLanguage, uc.defaultLanguage),
		Reservation:    &updated,
		PreviousStatus: previous,
	}, nil
}

// mapServiceError приводит ошибки сервиса к ошибкам use case
func (uc *UseCase) mapServiceError(op string, err error) error {
	switch {
	case errors.Is(err, reservations.ErrDepartmentNotFound):
		uc.logger.Warn("ToggleStatus: %s: %v", op, err)
		return fmt.Errorf("%w: %v", ErrDepartmentNotFound, err)
	case errors.Is(err, reservations.ErrReservationNotFound):
		uc.logger.Warn("ToggleStatus: %s: %v", op, err)
		return fmt.Errorf("%w: %v", ErrReservationNotFound, err)
	case errors.Is(err, reservations.ErrSourceUnavailable):
		uc.logger.Error("ToggleStatus: %s: %v", op, err)
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	default:
		uc.logger.Error("ToggleStatus: %s: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
}
