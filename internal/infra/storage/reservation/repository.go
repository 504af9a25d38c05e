package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Abdo0422/GestionReservation/internal/domain"
	"github.com/Abdo0422/GestionReservation/pkg/psqlbuilder"
)

// Колонки date и time читаются как текст: в базе backend'а они бывают
// и DATE/TIME, и VARCHAR.
var reservationColumns = []string{
	"id",
	"date::text AS date",
	`LEFT("time"::text, 5) AS time`,
	"department",
	"COALESCE(citizen, '') AS citizen",
	"COALESCE(description, '') AS description",
	"COALESCE(status, '') AS status",
}

// Repository репозиторий бронирований backend'а: чтение и смена статуса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListDepartments получает список отделов
func (r *Repository) ListDepartments(ctx context.Context) ([]*domain.Department, error) {
	query, args, err := psqlbuilder.Select("id", "nomdepart").
		From("departments").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDepartments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDepartments - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	departments := make([]*domain.Department, 0)
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("%w: ListDepartments - scan department: %v", ErrScanRow, err)
		}
		d.Name = domain.DecodeDepartmentName(d.Name)
		departments = append(departments, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDepartments - rows error: %v", ErrScanRow, err)
	}

	return departments, nil
}

// ListDepartmentReservations получает бронирования отдела за период [StartDate, EndBefore),
// отсортированные по дате и времени.
// Верхняя граница строгая: текстовая дата "2025-03-31T10:00" больше "2025-03-31", но меньше "2025-04-01".
func (r *Repository) ListDepartmentReservations(ctx context.Context, filter domain.DepartmentReservationsFilter) ([]*domain.Reservation, error) {
	query, args, err := buildPeriodQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDepartmentReservations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDepartmentReservations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

func buildPeriodQuery(filter domain.DepartmentReservationsFilter) (string, []interface{}, error) {
	return psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"department": filter.Department}).
		Where(squirrel.GtOrEq{"date": filter.StartDate.Format(domain.DateFormat)}).
		Where(squirrel.Lt{"date": filter.EndBefore.Format(domain.DateFormat)}).
		OrderBy("date ASC", `"time" ASC`).
		ToSql()
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	query, args, err := buildUpdateStatusQuery(id, status)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute query: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: UpdateStatus - id=%d", ErrReservationNotFound, id)
	}

	return nil
}

func buildUpdateStatusQuery(id int64, status domain.ReservationStatus) (string, []interface{}, error) {
	return psqlbuilder.Update("reservations").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var (
			res    domain.Reservation
			status string
		)

		err := rows.Scan(
			&res.ID,
			&res.Date,
			&res.Time,
			&res.Department,
			&res.Citizen,
			&res.Description,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		res.Status = domain.ReservationStatus(status)
		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
