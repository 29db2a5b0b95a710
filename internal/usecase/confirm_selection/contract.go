package confirm_selection

import (
	"context"

	"github.com/bandicon/jam-schedule-service/internal/domain"
	getDayGrid "github.com/bandicon/jam-schedule-service/internal/usecase/get_day_grid"
)

// ScheduleRepository интерфейс репозитория интервалов (приемник сохранения)
type ScheduleRepository interface {
	Create(ctx context.Context, interval *domain.ScheduleInterval) (*domain.ScheduleInterval, error)
}

// DayGridLoader перечитывает сетку после сохранения
type DayGridLoader interface {
	Execute(ctx context.Context, req *getDayGrid.Request) (*getDayGrid.Response, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SubmissionRecorder учет результатов сохранения диапазонов (метрики)
type SubmissionRecorder interface {
	ObserveScheduleRange(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
