package toggle_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDepartmentNotFound возвращается, когда отдел не найден
	ErrDepartmentNotFound = errors.New("department not found")

	// ErrReservationNotFound возвращается, когда бронирование не найдено в отделе за месяц
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrSourceUnavailable возвращается, когда источник бронирований недоступен
	ErrSourceUnavailable = errors.New("reservation source unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
