package schedules

import "errors"

var (
	// ErrJamNotFound возвращается, когда джем не найден в основном API
	ErrJamNotFound = errors.New("jam not found")

	// ErrRosterUnavailable возвращается, когда основной API не ответил
	ErrRosterUnavailable = errors.New("roster unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
