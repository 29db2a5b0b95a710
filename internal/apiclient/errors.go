package apiclient

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound возвращается на 404
	ErrNotFound = errors.New("apiclient: not found")

	// ErrBadRequest возвращается на 400
	ErrBadRequest = errors.New("apiclient: bad request")

	// ErrUnauthorized возвращается на 401
	ErrUnauthorized = errors.New("apiclient: unauthorized")

	// ErrUnavailable возвращается, когда сервис не ответил или ответил 5xx
	ErrUnavailable = errors.New("apiclient: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе
	ErrInvalidResponse = errors.New("apiclient: invalid response")
)

// APIError ошибка, которую вернул сервис в теле ответа
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v: %d %s", e.kind, e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}
