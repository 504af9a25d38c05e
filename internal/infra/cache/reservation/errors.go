package reservation

import "errors"

var (
	// ErrCacheMiss возвращается, когда ключа нет в кэше
	ErrCacheMiss = errors.New("reservation.cache: cache miss")

	// ErrCache возвращается при ошибке обращения к Redis
	ErrCache = errors.New("reservation.cache: redis error")

	// ErrEncode возвращается при ошибке сериализации значения
	ErrEncode = errors.New("reservation.cache: failed to encode value")

	// ErrDecode возвращается при ошибке десериализации значения
	ErrDecode = errors.New("reservation.cache: failed to decode value")
)
