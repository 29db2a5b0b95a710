package get_day_grid

import "errors"

var (
	// ErrJamNotFound возвращается, когда джем не найден в основном API
	ErrJamNotFound = errors.New("get_day_grid: jam not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_grid: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_grid: internal error")
)
