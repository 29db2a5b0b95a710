package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const dateLayout = "20060102"

var ErrInvalidDateString = errors.New("invalid date string format")

// DateString календарная дата в формате YYYYMMDD ("20261016")
type DateString string

// NewDateString создает DateString из time.Time (время суток отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString парсит и валидирует строку YYYYMMDD
func NewDateStringFromString(s string) (DateString, error) {
	if len(s) != len(dateLayout) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}
	return DateString(s), nil
}

// Time возвращает полночь этой даты в UTC
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return t, nil
}

// AddDays сдвигает дату на n дней
func (d DateString) AddDays(n int) (DateString, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDateString(t.AddDate(0, 0, n)), nil
}

// Month возвращает префикс YYYYMM
func (d DateString) Month() string {
	if len(d) < 6 {
		return ""
	}
	return string(d[:6])
}

func (d DateString) String() string {
	return string(d)
}

// Scan реализует sql.Scanner
func (d *DateString) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*d = DateString(v)
	case []byte:
		*d = DateString(v)
	case nil:
		*d = ""
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidDateString, value)
	}
	return nil
}

// Value реализует driver.Valuer
func (d DateString) Value() (driver.Value, error) {
	return string(d), nil
}
