package schedules

import (
	"context"

	"github.com/bandicon/jam-schedule-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория интервалов
type ScheduleRepository interface {
	GetByFilter(ctx context.Context, filter domain.ScheduleFilter) ([]domain.ScheduleInterval, error)
	DeleteByOwnerAndDate(ctx context.Context, jamID, ownerID int64, date string) (int64, error)
}

// RosterClient интерфейс клиента основного API Bandicon
type RosterClient interface {
	GetRoster(ctx context.Context, jamID int64) ([]domain.RosterMember, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
