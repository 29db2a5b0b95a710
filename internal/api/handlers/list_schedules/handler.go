package list_schedules

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bandicon/jam-schedule-service/internal/api/handlers"
	"github.com/bandicon/jam-schedule-service/internal/service/schedules"
	"github.com/bandicon/jam-schedule-service/internal/service/schedules/models"
	"github.com/bandicon/jam-schedule-service/pkg/ptr"
)

const (
	msgInvalidJamID   = "некорректный ID джема"
	msgInvalidOwnerID = "некорректный ID участника"
	msgInvalidPeriod  = "укажите date (YYYYMMDD) или month (YYYYMM)"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/jams/{jamId}/schedules
// Query params: date (YYYYMMDD) или month (YYYYMM), ownerId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	jamID, err := handlers.PathInt64(r, "jamId")
	if err != nil {
		h.logger.Warn("GET /jams/{id}/schedules - Invalid jam ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidJamID)
		return
	}

	query := r.URL.Query()
	req := &models.ListSchedulesRequest{JamID: jamID}

	if v := query.Get("date"); v != "" {
		req.Date = ptr.Ptr(v)
	}
	if v := query.Get("month"); v != "" {
		req.Month = ptr.Ptr(v)
	}
	if v := query.Get("ownerId"); v != "" {
		ownerID, err := strconv.ParseInt(v, 10, 64)
		if err != nil || ownerID <= 0 {
			h.logger.Warn("GET /jams/{id}/schedules - Invalid owner ID: %s", v)
			handlers.RespondBadRequest(w, msgInvalidOwnerID)
			return
		}
		req.OwnerID = ptr.Ptr(ownerID)
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("GET /jams/{id}/schedules - Invalid period: jam_id=%d, error=%v", jamID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /jams/{id}/schedules - Failed to list schedules: jam_id=%d, error=%v", jamID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /jams/{id}/schedules - Success: jam_id=%d, count=%d", jamID, len(result.Schedules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
