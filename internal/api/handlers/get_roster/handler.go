package get_roster

import (
	"errors"
	"net/http"

	"github.com/bandicon/jam-schedule-service/internal/api/handlers"
	"github.com/bandicon/jam-schedule-service/internal/service/schedules"
)

const (
	msgInvalidJamID      = "некорректный ID джема"
	msgJamNotFound       = "джем не найден"
	msgRosterUnavailable = "состав джема временно недоступен"
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

// Handle GET /api/v1/jams/{jamId}/roster
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	jamID, err := handlers.PathInt64(r, "jamId")
	if err != nil {
		h.logger.Warn("GET /jams/{id}/roster - Invalid jam ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidJamID)
		return
	}

	result, err := h.service.GetRoster(r.Context(), jamID)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrJamNotFound):
			h.logger.Warn("GET /jams/{id}/roster - Jam not found: jam_id=%d", jamID)
			handlers.RespondNotFound(w, msgJamNotFound)

		case errors.Is(err, schedules.ErrRosterUnavailable):
			h.logger.Warn("GET /jams/{id}/roster - Roster unavailable: jam_id=%d", jamID)
			handlers.RespondError(w, http.StatusBadGateway, msgRosterUnavailable)

		case errors.Is(err, schedules.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidJamID)

		default:
			h.logger.Error("GET /jams/{id}/roster - Failed to get roster: jam_id=%d, error=%v", jamID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /jams/{id}/roster - Success: jam_id=%d, members=%d", jamID, len(result.Members))
	handlers.RespondJSON(w, http.StatusOK, result)
}
