package select_day

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDay возвращается при клике на день вне отображаемого месяца
	ErrInvalidDay = errors.New("day is outside the displayed month")

	// ErrDepartmentNotFound возвращается, когда отдел не найден
	ErrDepartmentNotFound = errors.New("department not found")

	// ErrSourceUnavailable возвращается, когда источник бронирований недоступен
	ErrSourceUnavailable = errors.New("reservation source unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
