package get_roster

import (
	"context"

	"github.com/bandicon/jam-schedule-service/internal/service/schedules/models"
)

type ScheduleService interface {
	GetRoster(ctx context.Context, jamID int64) (*models.RosterResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
