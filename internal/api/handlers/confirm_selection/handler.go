package confirm_selection

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bandicon/jam-schedule-service/internal/api/handlers"
	"github.com/bandicon/jam-schedule-service/internal/api/middleware"
	"github.com/bandicon/jam-schedule-service/internal/domain"
	confirmSelection "github.com/bandicon/jam-schedule-service/internal/usecase/confirm_selection"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidJamID       = "некорректный ID джема"
	msgUnauthorized       = "пользователь не определен"
	msgEmptySelection     = "не выбрано ни одного часа"
	msgInvalidInput       = "некорректная дата или часы вне диапазона 0..23"
)

type Handler struct {
	useCase ConfirmSelectionUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmSelectionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/jams/{jamId}/schedules/{date}/selection
//
// Коды ответа:
//   - 201 все диапазоны сохранены
//   - 207 часть диапазонов сохранена, результат в ranges
//   - 500 ни один диапазон не сохранен, результат в ranges
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	jamID, err := handlers.PathInt64(r, "jamId")
	if err != nil {
		h.logger.Warn("POST /jams/{id}/schedules/{date}/selection - Invalid jam ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidJamID)
		return
	}

	var req ConfirmSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /jams/{id}/schedules/{date}/selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	hours := make([]domain.HourSlot, len(req.Hours))
	for i, hour := range req.Hours {
		hours[i] = domain.HourSlot(hour)
	}

	date := mux.Vars(r)["date"]
	result, err := h.useCase.Execute(r.Context(), &confirmSelection.Request{
		JamID:   jamID,
		OwnerID: userID,
		Date:    date,
		Hours:   hours,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmSelection.ErrEmptySelection):
			h.logger.Warn("POST /jams/{id}/schedules/{date}/selection - Empty selection: jam_id=%d, user_id=%d", jamID, userID)
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, confirmSelection.ErrInvalidInput):
			h.logger.Warn("POST /jams/{id}/schedules/{date}/selection - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /jams/{id}/schedules/{date}/selection - Failed: jam_id=%d, user_id=%d, error=%v",
				jamID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	switch result.Status {
	case confirmSelection.StatusPartial:
		status = http.StatusMultiStatus
	case confirmSelection.StatusFailed:
		status = http.StatusInternalServerError
	}

	h.logger.Info("POST /jams/{id}/schedules/{date}/selection - jam_id=%d, user_id=%d, date=%s, status=%s, saved=%d/%d",
		jamID, userID, date, result.Status, result.Saved(), len(result.Ranges))
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
