package get_calendar

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

// UseCase use case построения календаря отдела
type UseCase struct {
	reservationsSvc ReservationsService
	metrics         Metrics
	timeProvider    TimeProvider
	location        *time.Location
	defaultLanguage string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationsSvc ReservationsService,
	metrics Metrics,
	location *time.Location,
	defaultLanguage string,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		reservationsSvc: reservationsSvc,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		location:        location,
		defaultLanguage: defaultLanguage,
		logger:          logger,
	}
}

// Execute выполняет use case построения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: department=%d, month=%q, selected=%q, nav=%q, lang=%q",
		req.DepartmentID, req.Month, req.Selected, req.Navigation, req.Language)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. "Сегодня" берется один раз, при построении виджета
	now := uc.timeProvider.Now().In(uc.location)

	selected, err := resolveSelected(req.Selected, now)
	if err != nil {
		uc.logger.Warn("GetCalendar: invalid selected date: %v", err)
		return nil, err
	}

	// 3. Виджет и навигация
	widget, err := buildWidget(req, selected, now)
	if err != nil {
		uc.logger.Warn("GetCalendar: invalid month: %v", err)
		return nil, err
	}
	cursor := widget.Cursor()

	// 4. Язык интерфейса
	loc := locale.Resolve(req.Language, req.AcceptLanguage, uc.defaultLanguage)
	widget.SetRightToLeft(loc.RightToLeft)

	// 5. Отдел
	department, err := uc.reservationsSvc.GetDepartment(ctx, req.DepartmentID)
	if err != nil {
		return nil, uc.mapServiceError("get department", err)
	}

	// 6. Бронирования отображаемого месяца
	monthReservations, err := uc.reservationsSvc.GetMonthReservations(ctx, department.Name, cursor)
	if err != nil {
		return nil, uc.mapServiceError("get month reservations", err)
	}

	// 7. Сетка месяца
	grid, err := calendar.ComputeGrid(cursor, &selected, monthReservations)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to compute grid for %s: %v", cursor, err)
		return nil, fmt.Errorf("%w: failed to compute grid: %v", ErrInternal, err)
	}

	if grid.Skipped != nil {
		uc.metrics.AddSkippedDates(grid.SkippedCount())
		uc.logger.Warn("GetCalendar: skipped %d reservations of department=%q with malformed dates: %v",
			grid.SkippedCount(), department.Name, grid.Skipped)
	}

	// 8. Бронирования выбранного дня
	dayReservations, err := uc.selectedDayReservations(ctx, department.Name, cursor, selected, monthReservations)
	if err != nil {
		return nil, err
	}

	uc.metrics.RecordRender(loc.Code)
	uc.logger.Info("GetCalendar: rendered %s for department=%q, %d reservations on %s",
		cursor, department.Name, len(dayReservations), calendar.FormatDate(selected))

	return &Response{
		Department:    department,
		Locale:        loc,
		Grid:          grid,
		Layout:        widget.Layout(),
		PreviousMonth: cursor.Previous(),
		NextMonth:     cursor.Next(),
		Selected:      selected,
		Reservations:  dayReservations,
	}, nil
}

// selectedDayReservations возвращает бронирования выбранного дня, отсортированные по времени.
// Если выбранная дата вне отображаемого месяца, догружает ее месяц.
func (uc *UseCase) selectedDayReservations(
	ctx context.Context,
	department string,
	cursor calendar.Cursor,
	selected datetime.CalendarDate,
	monthReservations []*domain.Reservation,
) ([]*domain.Reservation, error) {
	source := monthReservations
	if !cursor.Contains(selected) {
		var err error
		source, err = uc.reservationsSvc.GetMonthReservations(ctx, department, calendar.CursorOf(selected))
		if err != nil {
			return nil, uc.mapServiceError("get selected month reservations", err)
		}
	}

	day := calendar.OnDay(source, selected)
	domain.SortByTime(day)
	return day, nil
}

// mapServiceError приводит ошибки сервиса к ошибкам use case
func (uc *UseCase) mapServiceError(op string, err error) error {
	switch {
	case errors.Is(err, reservations.ErrDepartmentNotFound):
		uc.logger.Warn("GetCalendar: %s: %v", op, err)
		return fmt.Errorf("%w: %v", ErrDepartmentNotFound, err)
	case errors.Is(err, reservations.ErrSourceUnavailable):
		uc.logger.Error("GetCalendar: %s: %v", op, err)
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	default:
		uc.logger.Error("GetCalendar: %s: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
}
