package get_day_grid

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandicon/jam-schedule-service/internal/domain"
	bandiconClient "github.com/bandicon/jam-schedule-service/internal/integrations/bandicon"
	"github.com/bandicon/jam-schedule-service/pkg/logger"
)

type mockRepo struct {
	intervals  []domain.ScheduleInterval
	err        error
	lastFilter domain.ScheduleFilter
}

func (m *mockRepo) GetByFilter(ctx context.Context, f domain.ScheduleFilter) ([]domain.ScheduleInterval, error) {
	m.lastFilter = f
	return m.intervals, m.err
}

type mockRoster struct {
	roster []domain.RosterMember
	err    error
}

func (m *mockRoster) GetRosterWithGracefulDegradation(ctx context.Context, jamID int64) ([]domain.RosterMember, error) {
	return m.roster, m.err
}

func interval(owner int64, start, end int) domain.ScheduleInterval {
	return domain.ScheduleInterval{
		JamID: 7, OwnerID: owner, Date: "20261016",
		StartHour: start, EndHour: end, EndMinute: 59, AllDayYn: domain.AllDayPartial,
	}
}

func roster4() []domain.RosterMember {
	return []domain.RosterMember{
		{OwnerID: 1, SessionTypeCode: "VOCAL"},
		{OwnerID: 2, SessionTypeCode: "GUITAR"},
		{OwnerID: 3, SessionTypeCode: "BASS"},
		{OwnerID: 4, SessionTypeCode: "DRUM"},
	}
}

func TestGetDayGrid_Tiers(t *testing.T) {
	repo := &mockRepo{intervals: []domain.ScheduleInterval{
		interval(1, 18, 21),
		interval(2, 19, 21),
		interval(3, 20, 21),
		interval(4, 21, 21),
	}}
	uc := NewUseCase(repo, &mockRoster{roster: roster4()}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{JamID: 7, Date: "20261016", EditingHours: []domain.HourSlot{3}})
	require.NoError(t, err)

	assert.Equal(t, domain.ScheduleFilter{JamID: 7, DateFrom: "20261016", DateTo: "20261016"}, repo.lastFilter)
	require.Len(t, resp.Slots, domain.HoursPerDay)
	assert.Equal(t, domain.TierEditing, resp.Slots[3].Tier)
	assert.Equal(t, domain.TierPartialLow, resp.Slots[18].Tier)
	assert.Equal(t, domain.TierPartialLow, resp.Slots[19].Tier)
	assert.Equal(t, domain.TierPartialHigh, resp.Slots[20].Tier)
	assert.Equal(t, domain.TierFull, resp.Slots[21].Tier)
	assert.Equal(t, domain.TierEmpty, resp.Slots[22].Tier)
	assert.Equal(t, []int64{1, 2, 3, 4}, resp.Slots[21].ParticipantIDs)
	assert.Empty(t, resp.Unscheduled)
	assert.False(t, resp.RosterDegraded)
}

func TestGetDayGrid_Unscheduled(t *testing.T) {
	repo := &mockRepo{intervals: []domain.ScheduleInterval{interval(2, 10, 11)}}
	uc := NewUseCase(repo, &mockRoster{roster: roster4()}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{JamID: 7, Date: "20261016"})
	require.NoError(t, err)

	ids := make([]int64, 0, len(resp.Unscheduled))
	for _, m := range resp.Unscheduled {
		ids = append(ids, m.OwnerID)
	}
	assert.Equal(t, []int64{1, 3, 4}, ids)
}

func TestGetDayGrid_DegradedRoster(t *testing.T) {
	repo := &mockRepo{intervals: []domain.ScheduleInterval{interval(1, 10, 10)}}
	client := &mockRoster{
		roster: []domain.RosterMember{},
		err:    fmt.Errorf("%w: timeout", bandiconClient.ErrServiceDegraded),
	}
	uc := NewUseCase(repo, client, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{JamID: 7, Date: "20261016"})
	require.NoError(t, err)

	assert.True(t, resp.RosterDegraded)
	assert.Equal(t, domain.TierPartialLow, resp.Slots[10].Tier)
	assert.Equal(t, []domain.IconType{domain.IconDefault}, resp.Slots[10].Icons)
	assert.Empty(t, resp.Unscheduled)
}

func TestGetDayGrid_Errors(t *testing.T) {
	t.Run("jam not found", func(t *testing.T) {
		uc := NewUseCase(&mockRepo{}, &mockRoster{err: bandiconClient.ErrJamNotFound}, logger.NewNop())
		_, err := uc.Execute(context.Background(), &Request{JamID: 7, Date: "20261016"})
		assert.ErrorIs(t, err, ErrJamNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		uc := NewUseCase(&mockRepo{err: errors.New("db down")}, &mockRoster{roster: roster4()}, logger.NewNop())
		_, err := uc.Execute(context.Background(), &Request{JamID: 7, Date: "20261016"})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := NewUseCase(&mockRepo{}, &mockRoster{}, logger.NewNop())
		for _, req := range []*Request{
			{JamID: 0, Date: "20261016"},
			{JamID: 7, Date: "16.10.2026"},
			{JamID: 7, Date: "20261016", EditingHours: []domain.HourSlot{-1}},
		} {
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})
}
