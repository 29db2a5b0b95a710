package get_day_grid

import (
	"context"

	"github.com/bandicon/jam-schedule-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория интервалов
type ScheduleRepository interface {
	GetByFilter(ctx context.Context, filter domain.ScheduleFilter) ([]domain.ScheduleInterval, error)
}

// RosterClient интерфейс клиента основного API (состав джема)
type RosterClient interface {
	GetRosterWithGracefulDegradation(ctx context.Context, jamID int64) ([]domain.RosterMember, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
