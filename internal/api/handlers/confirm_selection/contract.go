package confirm_selection

import (
	"context"

	confirmSelection "github.com/bandicon/jam-schedule-service/internal/usecase/confirm_selection"
)

type ConfirmSelectionUseCase interface {
	Execute(ctx context.Context, req *confirmSelection.Request) (*confirmSelection.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
