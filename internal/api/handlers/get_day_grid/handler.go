package get_day_grid

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bandicon/jam-schedule-service/internal/api/handlers"
	getDayGrid "github.com/bandicon/jam-schedule-service/internal/usecase/get_day_grid"
)

const (
	msgInvalidJamID = "некорректный ID джема"
	msgInvalidHours = "некорректный список часов, ожидаются числа 0..23 через запятую"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYYMMDD"
	msgJamNotFound  = "джем не найден"
)

type Handler struct {
	useCase GetDayGridUseCase
	logger  Logger
}

func NewHandler(useCase GetDayGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/jams/{jamId}/schedules/{date}/grid
// Query params: hours (опционально) - часы, которые сейчас редактируются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	jamID, err := handlers.PathInt64(r, "jamId")
	if err != nil {
		h.logger.Warn("GET /jams/{id}/schedules/{date}/grid - Invalid jam ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidJamID)
		return
	}

	editing, err := handlers.ParseHours(r.URL.Query().Get("hours"))
	if err != nil {
		h.logger.Warn("GET /jams/{id}/schedules/{date}/grid - Invalid hours: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHours)
		return
	}

	date := mux.Vars(r)["date"]
	result, err := h.useCase.Execute(r.Context(), &getDayGrid.Request{
		JamID:        jamID,
		Date:         date,
		EditingHours: editing,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDayGrid.ErrInvalidInput):
			h.logger.Warn("GET /jams/{id}/schedules/{date}/grid - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getDayGrid.ErrJamNotFound):
			h.logger.Warn("GET /jams/{id}/schedules/{date}/grid - Jam not found: jam_id=%d", jamID)
			handlers.RespondNotFound(w, msgJamNotFound)

		default:
			h.logger.Error("GET /jams/{id}/schedules/{date}/grid - Failed to build grid: jam_id=%d, date=%s, error=%v",
				jamID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
