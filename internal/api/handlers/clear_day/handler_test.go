package clear_day

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandicon/jam-schedule-service/internal/api/middleware"
	"github.com/bandicon/jam-schedule-service/internal/service/schedules"
	"github.com/bandicon/jam-schedule-service/internal/service/schedules/models"
	"github.com/bandicon/jam-schedule-service/pkg/logger"
)

type mockService struct {
	resp    *models.ClearDayResponse
	err     error
	lastReq *models.ClearDayRequest
}

func (m *mockService) ClearDay(ctx context.Context, req *models.ClearDayRequest) (*models.ClearDayResponse, error) {
	m.lastReq = req
	return m.resp, m.err
}

func serve(svc *mockService, userID string, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/jams/{jamId}/schedules/{date}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, url, nil)
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &mockService{resp: &models.ClearDayResponse{Deleted: 2}}

	rec := serve(svc, "3", "/jams/7/schedules/20261016")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &models.ClearDayRequest{JamID: 7, OwnerID: 3, Date: "20261016"}, svc.lastReq)
	assert.JSONEq(t, `{"deleted":2}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, serve(&mockService{}, "", "/jams/7/schedules/20261016").Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(&mockService{err: schedules.ErrInvalidInput}, "3", "/jams/7/schedules/2026").Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(&mockService{err: schedules.ErrInternal}, "3", "/jams/7/schedules/20261016").Code)
}
