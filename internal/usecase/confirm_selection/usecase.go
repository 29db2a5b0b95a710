package confirm_selection

import (
	"context"
	"errors"

	"github.com/bandicon/jam-schedule-service/internal/domain"
	"github.com/bandicon/jam-schedule-service/internal/grid"
	getDayGrid "github.com/bandicon/jam-schedule-service/internal/usecase/get_day_grid"
)

var errAtomicAborted = errors.New("confirm_selection: atomic submission aborted")

// Options режим сохранения и тексты-заглушки интервала
type Options struct {
	Atomic  bool
	Title   string
	Content string
}

// UseCase use case подтверждения выбранных в сетке часов
type UseCase struct {
	scheduleRepo ScheduleRepository
	gridLoader   DayGridLoader
	txManager    TransactionManager
	recorder     SubmissionRecorder
	options      Options
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	gridLoader DayGridLoader,
	txManager TransactionManager,
	recorder SubmissionRecorder,
	options Options,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		gridLoader:   gridLoader,
		txManager:    txManager,
		recorder:     recorder,
		options:      options,
		logger:       logger,
	}
}

// Execute выполняет use case
//
// Выбранные часы склеиваются в непрерывные диапазоны, каждый диапазон
// сохраняется отдельным интервалом, по очереди. Ошибка одного диапазона
// не откатывает уже сохраненные: результат возвращается по каждому.
// В атомарном режиме все диапазоны пишутся в одной транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmSelection: jam=%d, owner=%d, date=%s, hours=%v",
		req.JamID, req.OwnerID, req.Date, req.Hours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmSelection: validation failed: %v", err)
		return nil, err
	}

	// 2. Склеиваем часы в диапазоны
	ranges := grid.MergeRanges(req.Hours)
	results := make([]RangeResult, len(ranges))
	for i, r := range ranges {
		start, end := grid.EncodeRange(r)
		results[i] = RangeResult{Range: r, StartTime: start, EndTime: end}
	}

	uc.logger.Info("ConfirmSelection: %d hours merged into %d ranges", len(req.Hours), len(ranges))

	// 3. Сохраняем диапазоны
	if uc.options.Atomic {
		uc.submitAtomic(ctx, req, results)
	} else {
		uc.submitSequential(ctx, req, results)
	}

	resp := &Response{
		JamID:   req.JamID,
		OwnerID: req.OwnerID,
		Date:    req.Date,
		Atomic:  uc.options.Atomic,
		Ranges:  results,
	}
	resp.Status = overallStatus(resp.Saved(), len(results))

	for _, rr := range results {
		uc.recorder.ObserveScheduleRange(string(rr.Status))
	}

	// 4. Перечитываем сетку один раз после всех сохранений
	day, err := uc.gridLoader.Execute(ctx, &getDayGrid.Request{JamID: req.JamID, Date: req.Date})
	if err != nil {
		uc.logger.Error("ConfirmSelection: failed to reload grid for jam=%d date=%s: %v", req.JamID, req.Date, err)
		resp.GridStale = true
	} else {
		resp.Slots = day.Slots
		resp.Unscheduled = day.Unscheduled
	}

	uc.logger.Info("ConfirmSelection: jam=%d, owner=%d, date=%s, status=%s, saved=%d/%d",
		req.JamID, req.OwnerID, req.Date, resp.Status, resp.Saved(), len(results))

	return resp, nil
}

// submitSequential сохраняет диапазоны по одному, дожидаясь каждого
func (uc *UseCase) submitSequential(ctx context.Context, req *Request, results []RangeResult) {
	for i := range results {
		created, err := uc.scheduleRepo.Create(ctx, uc.newInterval(req, results[i].Range))
		if err != nil {
			uc.logger.Error("ConfirmSelection: failed to save range %s-%s: %v",
				results[i].StartTime, results[i].EndTime, err)
			results[i].Status = RangeFailed
			results[i].Error = err.Error()
			continue
		}
		results[i].Status = RangeSaved
		results[i].IntervalID = created.ID
	}
}

// submitAtomic сохраняет все диапазоны в одной транзакции
func (uc *UseCase) submitAtomic(ctx context.Context, req *Request, results []RangeResult) {
	failedAt := -1

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for i := range results {
			created, err := uc.scheduleRepo.Create(txCtx, uc.newInterval(req, results[i].Range))
			if err != nil {
				failedAt = i
				results[i].Error = err.Error()
				return errAtomicAborted
			}
			results[i].IntervalID = created.ID
		}
		return nil
	})

	if err == nil {
		for i := range results {
			results[i].Status = RangeSaved
		}
		return
	}

	uc.logger.Error("ConfirmSelection: atomic submission rolled back for jam=%d owner=%d date=%s: %v",
		req.JamID, req.OwnerID, req.Date, err)

	for i := range results {
		results[i].IntervalID = 0
		switch {
		case i == failedAt:
			results[i].Status = RangeFailed
		case failedAt < 0:
			// транзакция не открылась или не закоммитилась
			results[i].Status = RangeFailed
			results[i].Error = err.Error()
		default:
			results[i].Status = RangeRolledBack
		}
	}
}

func (uc *UseCase) newInterval(req *Request, r domain.CoverageRange) *domain.ScheduleInterval {
	return &domain.ScheduleInterval{
		JamID:       req.JamID,
		OwnerID:     req.OwnerID,
		Date:        req.Date,
		StartHour:   int(r.StartHour),
		StartMinute: 0,
		EndHour:     int(r.EndHour),
		EndMinute:   domain.RangeEndMinute,
		AllDayYn:    domain.AllDayPartial,
		Title:       uc.options.Title,
		Content:     uc.options.Content,
	}
}

func overallStatus(saved, total int) Status {
	switch {
	case saved == total:
		return StatusOK
	case saved == 0:
		return StatusFailed
	default:
		return StatusPartial
	}
}
