package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
)

var ErrInvalidClockString = errors.New("invalid clock string format")

// ClockString время суток в компактном формате бэкенда.
// Допускаются "HHMM" и "HHMMSS" ("0900", "115900").
type ClockString string

// NewClockString собирает строку HHMMSS из часа, минуты и секунды
func NewClockString(hour, minute, second int) ClockString {
	return ClockString(fmt.Sprintf("%02d%02d%02d", hour, minute, second))
}

// NewClockStringFromString парсит и валидирует строку
func NewClockStringFromString(s string) (ClockString, error) {
	c := ClockString(s)
	if _, _, err := c.HourMinute(); err != nil {
		return "", err
	}
	return c, nil
}

// HourMinute возвращает час и минуту. Секунды игнорируются.
func (c ClockString) HourMinute() (int, int, error) {
	s := string(c)
	if len(s) != 4 && len(s) != 6 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClockString, s)
	}

	hour, err := strconv.Atoi(s[0:2])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClockString, s)
	}

	minute, err := strconv.Atoi(s[2:4])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClockString, s)
	}

	if len(s) == 6 {
		second, err := strconv.Atoi(s[4:6])
		if err != nil || second < 0 || second > 59 {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClockString, s)
		}
	}

	return hour, minute, nil
}

func (c ClockString) String() string {
	return string(c)
}

// Scan реализует sql.Scanner
func (c *ClockString) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*c = ClockString(v)
	case []byte:
		*c = ClockString(v)
	case nil:
		*c = ""
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidClockString, value)
	}
	return nil
}

// Value реализует driver.Valuer
func (c ClockString) Value() (driver.Value, error) {
	return string(c), nil
}
