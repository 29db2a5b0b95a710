package get_day_grid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandicon/jam-schedule-service/internal/domain"
	getDayGrid "github.com/bandicon/jam-schedule-service/internal/usecase/get_day_grid"
	"github.com/bandicon/jam-schedule-service/pkg/logger"
)

type mockUseCase struct {
	resp    *getDayGrid.Response
	err     error
	lastReq *getDayGrid.Request
}

func (m *mockUseCase) Execute(ctx context.Context, req *getDayGrid.Request) (*getDayGrid.Response, error) {
	m.lastReq = req
	return m.resp, m.err
}

func serve(uc *mockUseCase, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/jams/{jamId}/schedules/{date}/grid", NewHandler(uc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	slots := make([]domain.SlotCoverage, domain.HoursPerDay)
	for h := range slots {
		slots[h] = domain.SlotCoverage{Hour: domain.HourSlot(h), Tier: domain.TierEmpty}
	}
	slots[10] = domain.SlotCoverage{
		Hour: 10, Tier: domain.TierPartialLow,
		ParticipantIDs: []int64{3}, Icons: []domain.IconType{domain.IconBass},
	}

	uc := &mockUseCase{resp: &getDayGrid.Response{
		JamID: 7, Date: "20261016", Slots: slots,
		Roster:      []domain.RosterMember{{OwnerID: 1}, {OwnerID: 3, SessionTypeCode: "BASS"}},
		Unscheduled: []domain.RosterMember{{OwnerID: 1, SessionTypeCode: "VOCAL"}},
	}}

	rec := serve(uc, "/jams/7/schedules/20261016/grid?hours=9,12")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []domain.HourSlot{9, 12}, uc.lastReq.EditingHours)

	var body DayGridResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 2, body.RosterSize)
	require.Len(t, body.Slots, domain.HoursPerDay)
	assert.Equal(t, "partial-low", body.Slots[10].Tier)
	assert.Equal(t, []string{"bass"}, body.Slots[10].Icons)
	assert.Equal(t, []int64{}, body.Slots[0].ParticipantIDs)
	require.Len(t, body.Unscheduled, 1)
	assert.Equal(t, "vocal", body.Unscheduled[0].Icon)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&mockUseCase{}, "/jams/x/schedules/20261016/grid").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&mockUseCase{}, "/jams/7/schedules/20261016/grid?hours=25").Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(&mockUseCase{err: getDayGrid.ErrInvalidInput}, "/jams/7/schedules/2026/grid").Code)
	assert.Equal(t, http.StatusNotFound,
		serve(&mockUseCase{err: getDayGrid.ErrJamNotFound}, "/jams/7/schedules/20261016/grid").Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(&mockUseCase{err: getDayGrid.ErrInternal}, "/jams/7/schedules/20261016/grid").Code)
}
