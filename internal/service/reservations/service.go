package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abdo0422/GestionReservation/internal/calendar"
	"github.com/Abdo0422/GestionReservation/internal/domain"
	cacheRepo "github.com/Abdo0422/GestionReservation/internal/infra/cache/reservation"
	reservationRepo "github.com/Abdo0422/GestionReservation/internal/infra/storage/reservation"
	"github.com/Abdo0422/GestionReservation/internal/integrations/reservationservice"
)

// Результаты обращения к кэшу для метрик
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Service сервис отделов и бронирований
type Service struct {
	source     ReservationSource
	sourceKind string
	cache      ReservationCache
	metrics    Metrics
	logger     Logger
}

// Option дополнительная настройка сервиса
type Option func(*Service)

// WithCache включает кэширование бронирований за месяц
func WithCache(cache ReservationCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

// WithMetrics включает запись метрик
func WithMetrics(metrics Metrics) Option {
	return func(s *Service) {
		s.metrics = metrics
	}
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(source ReservationSource, sourceKind string, logger Logger, opts ...Option) *Service {
	s := &Service{
		source:     source,
		sourceKind: sourceKind,
		metrics:    noopMetrics{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListDepartments получает список отделов
func (s *Service) ListDepartments(ctx context.Context) ([]*domain.Department, error) {
	departments, err := s.source.ListDepartments(ctx)
	s.metrics.RecordSourceRequest(s.sourceKind, "list_departments", err)
	if err != nil {
		s.logger.Error("ListDepartments: source=%s error: %v", s.sourceKind, err)
		return nil, s.mapSourceError("ListDepartments", err)
	}

	s.logger.Info("ListDepartments: fetched %d departments", len(departments))
	return departments, nil
}

// GetDepartment находит отдел по ID (numdep начальника отдела)
func (s *Service) GetDepartment(ctx context.Context, id int64) (*domain.Department, error) {
	departments, err := s.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}

	for _, d := range departments {
		if d.ID == id {
			return d, nil
		}
	}

	s.logger.Warn("GetDepartment: department id=%d not found", id)
	return nil, fmt.Errorf("%w: id=%d", ErrDepartmentNotFound, id)
}

// GetMonthReservations получает бронирования отдела за месяц.
// Сначала читает кэш; ошибки кэша логируются и не влияют на результат.
func (s *Service) GetMonthReservations(ctx context.Context, department string, month calendar.Cursor) ([]*domain.Reservation, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, department, month)
		switch {
		case err == nil:
			s.metrics.RecordCache(CacheHit)
			s.logger.Info("GetMonthReservations: cache hit department=%q month=%s (%d reservations)",
				department, month, len(cached))
			return cached, nil
		case errors.Is(err, cacheRepo.ErrCacheMiss):
			s.metrics.RecordCache(CacheMiss)
		default:
			s.metrics.RecordCache(CacheError)
			s.logger.Warn("GetMonthReservations: cache read failed, falling back to source: %v", err)
		}
	}

	reservations, err := s.source.ListDepartmentReservations(ctx, monthFilter(department, month))
	s.metrics.RecordSourceRequest(s.sourceKind, "list_reservations", err)
	if err != nil {
		s.logger.Error("GetMonthReservations: source=%s department=%q month=%s error: %v",
			s.sourceKind, department, month, err)
		return nil, s.mapSourceError("GetMonthReservations", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, department, month, reservations); err != nil {
			s.metrics.RecordCache(CacheError)
			s.logger.Warn("GetMonthReservations: cache write failed: %v", err)
		}
	}

	s.logger.Info("GetMonthReservations: fetched %d reservations department=%q month=%s",
		len(reservations), department, month)
	return reservations, nil
}

// GetReservation находит бронирование отдела за месяц, минуя кэш
func (s *Service) GetReservation(ctx context.Context, department string, month calendar.Cursor, id int64) (*domain.Reservation, error) {
	reservations, err := s.source.ListDepartmentReservations(ctx, monthFilter(department, month))
	s.metrics.RecordSourceRequest(s.sourceKind, "list_reservations", err)
	if err != nil {
		s.logger.Error("GetReservation: source=%s department=%q month=%s error: %v",
			s.sourceKind, department, month, err)
		return nil, s.mapSourceError("GetReservation", err)
	}

	for _, r := range reservations {
		if r.ID == id {
			return r, nil
		}
	}

	s.logger.Warn("GetReservation: reservation id=%d not found in department=%q month=%s", id, department, month)
	return nil, fmt.Errorf("%w: id=%d", ErrReservationNotFound, id)
}

// UpdateStatus меняет статус бронирования и сбрасывает кэш месяца,
// которому принадлежит бронирование
func (s *Service) UpdateStatus(ctx context.Context, department string, month calendar.Cursor, id int64, status domain.ReservationStatus) error {
	err := s.source.UpdateStatus(ctx, id, status)
	s.metrics.RecordSourceRequest(s.sourceKind, "update_status", err)
	if err != nil {
		if errors.Is(err, reservationservice.ErrNotFound) || errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found: %v", id, err)
			return fmt.Errorf("%w: id=%d", ErrReservationNotFound, id)
		}
		s.logger.Error("UpdateStatus: source=%s reservation id=%d error: %v", s.sourceKind, id, err)
		return s.mapSourceError("UpdateStatus", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, department, month); err != nil {
			s.metrics.RecordCache(CacheError)
			s.logger.Warn("UpdateStatus: cache invalidation failed for department=%q month=%s: %v", department, month, err)
		}
	}

	s.logger.Info("UpdateStatus: reservation id=%d of department=%q set to %q", id, department, status)
	return nil
}

// monthFilter фильтр бронирований за месяц: [первое число, первое число следующего месяца)
func monthFilter(department string, month calendar.Cursor) domain.DepartmentReservationsFilter {
	return domain.DepartmentReservationsFilter{
		Department: department,
		StartDate:  calendar.Time(month.FirstDay()),
		EndBefore:  calendar.Time(month.Next().FirstDay()),
	}
}

// mapSourceError приводит ошибки источника к ошибкам сервиса
func (s *Service) mapSourceError(op string, err error) error {
	switch {
	case errors.Is(err, reservationservice.ErrUnavailable),
		errors.Is(err, reservationservice.ErrInvalidResponse),
		errors.Is(err, reservationservice.ErrNotFound),
		errors.Is(err, reservationRepo.ErrExecQuery),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s - %v", ErrSourceUnavailable, op, err)
	default:
		return fmt.Errorf("%w: %s - %v", ErrInternal, op, err)
	}
}
