package schedules

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bandicon/jam-schedule-service/internal/domain"
	bandiconClient "github.com/bandicon/jam-schedule-service/internal/integrations/bandicon"
	"github.com/bandicon/jam-schedule-service/internal/service/schedules/models"
	"github.com/bandicon/jam-schedule-service/pkg/types"
)

// Service сервис чтения и удаления интервалов расписания
type Service struct {
	scheduleRepo ScheduleRepository
	rosterClient RosterClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	rosterClient RosterClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		rosterClient: rosterClient,
		logger:       logger,
	}
}

// List получает интервалы джема за дату или за месяц
//
// Примеры использования:
// - Интервалы на дату: List(ctx, &ListSchedulesRequest{JamID: 7, Date: ptr.Ptr("20261016")})
// - Интервалы за месяц: List(ctx, &ListSchedulesRequest{JamID: 7, Month: ptr.Ptr("202610")})
func (s *Service) List(ctx context.Context, req *models.ListSchedulesRequest) (*models.ScheduleListResponse, error) {
	filter, err := toFilter(req)
	if err != nil {
		s.logger.Warn("List: invalid request for jam=%d: %v", req.JamID, err)
		return nil, err
	}

	s.logger.Info("List: fetching schedules for jam=%d, period=%s..%s", req.JamID, filter.DateFrom, filter.DateTo)

	intervals, err := s.scheduleRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for jam=%d: %v", req.JamID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d schedules for jam=%d", len(intervals), req.JamID)
	return models.FromDomainIntervals(intervals), nil
}

// GetRoster проксирует состав джема из основного API
// В отличие от сетки здесь нет graceful degradation: клиенту нужен настоящий состав
func (s *Service) GetRoster(ctx context.Context, jamID int64) (*models.RosterResponse, error) {
	if jamID <= 0 {
		return nil, fmt.Errorf("%w: jamID must be positive", ErrInvalidInput)
	}

	roster, err := s.rosterClient.GetRoster(ctx, jamID)
	if err != nil {
		if errors.Is(err, bandiconClient.ErrJamNotFound) {
			s.logger.Warn("GetRoster: jam id=%d not found", jamID)
			return nil, ErrJamNotFound
		}
		s.logger.Error("GetRoster: bandicon error for jam id=%d: %v", jamID, err)
		return nil, fmt.Errorf("%w: %v", ErrRosterUnavailable, err)
	}

	s.logger.Info("GetRoster: jam id=%d has %d members", jamID, len(roster))
	return models.FromDomainRoster(jamID, roster), nil
}

// ClearDay удаляет все интервалы участника на дату
// Удаляются только свои интервалы: OwnerID берется из аутентификации
func (s *Service) ClearDay(ctx context.Context, req *models.ClearDayRequest) (*models.ClearDayResponse, error) {
	s.logger.Info("ClearDay: jam=%d, owner=%d, date=%s", req.JamID, req.OwnerID, req.Date)

	if req.JamID <= 0 || req.OwnerID <= 0 {
		return nil, fmt.Errorf("%w: jamID and ownerID must be positive", ErrInvalidInput)
	}
	if _, err := types.NewDateStringFromString(req.Date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	deleted, err := s.scheduleRepo.DeleteByOwnerAndDate(ctx, req.JamID, req.OwnerID, req.Date)
	if err != nil {
		s.logger.Error("ClearDay: repository error for jam=%d owner=%d: %v", req.JamID, req.OwnerID, err)
		return nil, fmt.Errorf("%w: ClearDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ClearDay: deleted %d schedules for jam=%d owner=%d date=%s", deleted, req.JamID, req.OwnerID, req.Date)
	return &models.ClearDayResponse{Deleted: deleted}, nil
}

// toFilter конвертирует запрос в domain фильтр
func toFilter(req *models.ListSchedulesRequest) (domain.ScheduleFilter, error) {
	filter := domain.ScheduleFilter{JamID: req.JamID, OwnerID: req.OwnerID}

	if req.JamID <= 0 {
		return filter, fmt.Errorf("%w: jamID must be positive", ErrInvalidInput)
	}

	switch {
	case req.Date != nil && req.Month != nil:
		return filter, fmt.Errorf("%w: date and month are mutually exclusive", ErrInvalidInput)

	case req.Date != nil:
		date, err := types.NewDateStringFromString(*req.Date)
		if err != nil {
			return filter, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.DateFrom = date.String()
		filter.DateTo = date.String()

	case req.Month != nil:
		first, err := time.Parse(domain.MonthFormat, *req.Month)
		if err != nil || len(*req.Month) != len(domain.MonthFormat) {
			return filter, fmt.Errorf("%w: invalid month %q", ErrInvalidInput, *req.Month)
		}
		filter.DateFrom = types.NewDateString(first).String()
		filter.DateTo = types.NewDateString(first.AddDate(0, 1, -1)).String()

	default:
		return filter, fmt.Errorf("%w: date or month is required", ErrInvalidInput)
	}

	return filter, nil
}
