package reservationservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("reservationservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от backend
	ErrInvalidResponse = errors.New("reservationservice client: invalid response")

	// ErrNotFound возвращается, когда backend отвечает 404
	ErrNotFound = errors.New("reservationservice client: not found")

	// ErrUnavailable возвращается, когда backend не отвечает или отвечает 5xx
	ErrUnavailable = errors.New("reservationservice client: backend unavailable")
)
