package bandicon

import "errors"

var (
	// ErrJamNotFound возвращается, когда джем не найден
	ErrJamNotFound = errors.New("bandicon client: jam not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bandicon client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bandicon client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что Bandicon API недоступен и сетка строится без состава
	ErrServiceDegraded = errors.New("bandicon unavailable: graceful degradation applied")
)
