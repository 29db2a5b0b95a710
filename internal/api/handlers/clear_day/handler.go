package clear_day

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bandicon/jam-schedule-service/internal/api/handlers"
	"github.com/bandicon/jam-schedule-service/internal/api/middleware"
	"github.com/bandicon/jam-schedule-service/internal/service/schedules"
	"github.com/bandicon/jam-schedule-service/internal/service/schedules/models"
)

const (
	msgInvalidJamID = "некорректный ID джема"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYYMMDD"
	msgUnauthorized = "пользователь не определен"
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

// Handle DELETE /api/v1/jams/{jamId}/schedules/{date}
// Удаляет только интервалы пользователя из X-User-ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	jamID, err := handlers.PathInt64(r, "jamId")
	if err != nil {
		h.logger.Warn("DELETE /jams/{id}/schedules/{date} - Invalid jam ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidJamID)
		return
	}

	date := mux.Vars(r)["date"]
	result, err := h.service.ClearDay(r.Context(), &models.ClearDayRequest{
		JamID:   jamID,
		OwnerID: userID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("DELETE /jams/{id}/schedules/{date} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("DELETE /jams/{id}/schedules/{date} - Failed: jam_id=%d, user_id=%d, error=%v",
				jamID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /jams/{id}/schedules/{date} - Success: jam_id=%d, user_id=%d, deleted=%d",
		jamID, userID, result.Deleted)
	handlers.RespondJSON(w, http.StatusOK, result)
}
