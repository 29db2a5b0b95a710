package clear_day

import (
	"context"

	"github.com/bandicon/jam-schedule-service/internal/service/schedules/models"
)

type ScheduleService interface {
	ClearDay(ctx context.Context, req *models.ClearDayRequest) (*models.ClearDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
