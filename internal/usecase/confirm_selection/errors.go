package confirm_selection

import "errors"

var (
	// ErrEmptySelection возвращается, когда подтверждают пустой выбор
	ErrEmptySelection = errors.New("confirm_selection: selection is empty")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_selection: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_selection: internal error")
)
