package list_schedules

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandicon/jam-schedule-service/internal/service/schedules"
	"github.com/bandicon/jam-schedule-service/internal/service/schedules/models"
	"github.com/bandicon/jam-schedule-service/pkg/logger"
)

type mockService struct {
	resp    *models.ScheduleListResponse
	err     error
	lastReq *models.ListSchedulesRequest
}

func (m *mockService) List(ctx context.Context, req *models.ListSchedulesRequest) (*models.ScheduleListResponse, error) {
	m.lastReq = req
	return m.resp, m.err
}

func serve(svc *mockService, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/jams/{jamId}/schedules", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &mockService{resp: &models.ScheduleListResponse{Schedules: []models.ScheduleResponse{{ID: 1, StartTime: "090000"}}}}

	rec := serve(svc, "/jams/7/schedules?month=202610&ownerId=3")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.lastReq.Date)
	assert.Equal(t, "202610", *svc.lastReq.Month)
	assert.Equal(t, int64(3), *svc.lastReq.OwnerID)
	assert.Contains(t, rec.Body.String(), `"startTime":"090000"`)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&mockService{}, "/jams/7/schedules?date=20261016&ownerId=x").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&mockService{}, "/jams/0/schedules?date=20261016").Code)

	invalid := &mockService{err: fmt.Errorf("%w: date or month is required", schedules.ErrInvalidInput)}
	assert.Equal(t, http.StatusBadRequest, serve(invalid, "/jams/7/schedules").Code)

	internal := &mockService{err: schedules.ErrInternal}
	assert.Equal(t, http.StatusInternalServerError, serve(internal, "/jams/7/schedules?date=20261016").Code)
}
