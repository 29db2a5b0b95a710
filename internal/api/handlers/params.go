package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/bandicon/jam-schedule-service/internal/domain"
)

var (
	ErrInvalidPathParam = errors.New("invalid path parameter")
	ErrInvalidHours     = errors.New("invalid hours list")
)

// PathInt64 положительное целое из URL
func PathInt64(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || v <= 0 {
		return 0, ErrInvalidPathParam
	}
	return v, nil
}

// ParseHours разбирает список часов вида "9,10,11"; пустая строка - пустой список
func ParseHours(raw string) ([]domain.HourSlot, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	hours := make([]domain.HourSlot, 0, len(parts))
	for _, p := range parts {
		h, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || !domain.HourSlot(h).Valid() {
			return nil, ErrInvalidHours
		}
		hours = append(hours, domain.HourSlot(h))
	}
	return hours, nil
}
