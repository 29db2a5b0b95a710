package get_day_grid

import (
	"context"
	"errors"
	"fmt"

	"github.com/bandicon/jam-schedule-service/internal/domain"
	"github.com/bandicon/jam-schedule-service/internal/grid"
	bandiconClient "github.com/bandicon/jam-schedule-service/internal/integrations/bandicon"
)

// UseCase use case построения сетки доступности на дату
type UseCase struct {
	scheduleRepo ScheduleRepository
	rosterClient RosterClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleRepo ScheduleRepository, rosterClient RosterClient, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		rosterClient: rosterClient,
		logger:       logger,
	}
}

// Execute выполняет use case
// Сетка всегда пересчитывается из текущих интервалов, ничего не кэшируется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayGrid: jam=%d, date=%s, editing=%d", req.JamID, req.Date, len(req.EditingHours))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем состав джема (при недоступности API - пустой состав)
	degraded := false
	roster, err := uc.rosterClient.GetRosterWithGracefulDegradation(ctx, req.JamID)
	if err != nil {
		switch {
		case errors.Is(err, bandiconClient.ErrJamNotFound):
			uc.logger.Warn("GetDayGrid: jam id=%d not found", req.JamID)
			return nil, ErrJamNotFound
		case errors.Is(err, bandiconClient.ErrServiceDegraded):
			uc.logger.Warn("GetDayGrid: roster unavailable for jam id=%d, building grid without it", req.JamID)
			degraded = true
		default:
			uc.logger.Error("GetDayGrid: failed to get roster for jam id=%d: %v", req.JamID, err)
			return nil, fmt.Errorf("%w: failed to get roster: %v", ErrInternal, err)
		}
	}

	// 3. Получаем интервалы на дату
	intervals, err := uc.scheduleRepo.GetByFilter(ctx, domain.ScheduleFilter{
		JamID:    req.JamID,
		DateFrom: req.Date,
		DateTo:   req.Date,
	})
	if err != nil {
		uc.logger.Error("GetDayGrid: failed to get intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get intervals: %v", ErrInternal, err)
	}

	// 4. Считаем покрытие каждого слота
	selection := grid.NewSelection(req.Date, req.EditingHours...)
	slots := grid.DayCoverage(req.Date, intervals, roster, &selection)
	unscheduled := grid.Unscheduled(roster, intervals, req.Date)

	uc.logger.Info("GetDayGrid: jam=%d, date=%s, intervals=%d, roster=%d, unscheduled=%d",
		req.JamID, req.Date, len(intervals), len(roster), len(unscheduled))

	return &Response{
		JamID:          req.JamID,
		Date:           req.Date,
		Slots:          slots,
		Roster:         roster,
		Unscheduled:    unscheduled,
		RosterDegraded: degraded,
	}, nil
}
