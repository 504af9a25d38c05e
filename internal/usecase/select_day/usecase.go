package select_day

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloudeng.io/datetime"

	"github.com/Abdo0422/GestionReservation/internal/calendar"
	"github.com/Abdo0422/GestionReservation/internal/domain"
	"github.com/Abdo0422/GestionReservation/internal/locale"
	"github.com/Abdo0422/GestionReservation/internal/service/reservations"
)

// UseCase use case выбора дня в календаре отдела
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

// Execute выполняет use case выбора дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SelectDay: department=%d, month=%q, day=%d", req.DepartmentID, req.Month, req.Day)

	// 1. Валидация входных данных
	if req.DepartmentID <= 0 {
		uc.logger.Warn("SelectDay: invalid department id=%d", req.DepartmentID)
		return nil, fmt.Errorf("%w: departmentID must be positive", ErrInvalidInput)
	}

	cursor := calendar.CursorOf(calendar.DateOf(uc.timeProvider.Now().In(uc.location)))
	if req.Month != "" {
		var err error
		if cursor, err = calendar.ParseMonth(req.Month); err != nil {
			uc.logger.Warn("SelectDay: invalid month: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	// 2. Клик по дню: виджет сообщает дату через callback и сам ее не хранит
	var (
		selected datetime.CalendarDate
		changed  bool
	)
	widget, err := calendar.NewWidgetAt(cursor, func(date datetime.CalendarDate) {
		selected = date
		changed = true
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := widget.OnDayClicked(req.Day); err != nil {
		uc.logger.Warn("SelectDay: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDay, err)
	}
	if !changed {
		return nil, fmt.Errorf("%w: date change was not reported", ErrInternal)
	}

	// 3. Отдел и бронирования выбранного дня
	department, err := uc.reservationsSvc.GetDepartment(ctx, req.DepartmentID)
	if err != nil {
		return nil, uc.mapServiceError("get department", err)
	}

	monthReservations, err := uc.reservationsSvc.GetMonthReservations(ctx, department.Name, cursor)
	if err != nil {
		return nil, uc.mapServiceError("get month reservations", err)
	}

	day := calendar.OnDay(monthReservations, selected)
	domain.SortByTime(day)

	loc := locale.Resolve(req.Language, req.AcceptLanguage, uc.defaultLanguage)

	uc.logger.Info("SelectDay: department=%q selected %s with %d reservations",
		department.Name, calendar.FormatDate(selected), len(day))

	return &Response{
		Department:    department,
		Locale:        loc,
		Selected:      selected,
		FormattedDate: loc.FormatDate(selected),
		Reservations:  day,
	}, nil
}

// mapServiceError приводит ошибки сервиса к ошибкам use case
func (uc *UseCase) mapServiceError(op string, err error) error {
	switch {
	case errors.Is(err, reservations.ErrDepartmentNotFound):
		uc.logger.Warn("SelectDay: %s: %v", op, err)
		return fmt.Errorf("%w: %v", ErrDepartmentNotFound, err)
	case errors.Is(err, reservations.ErrSourceUnavailable):
		uc.logger.Error("SelectDay: %s: %v", op, err)
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	default:
		uc.logger.Error("SelectDay: %s: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
}
