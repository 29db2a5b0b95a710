package get_day_grid

import (
	"github.com/bandicon/jam-schedule-service/internal/api/handlers"
	getDayGrid "github.com/bandicon/jam-schedule-service/internal/usecase/get_day_grid"
)

// DayGridResponse HTTP response model
type DayGridResponse struct {
	JamID          int64                     `json:"jamId"`
	Date           string                    `json:"date"`
	RosterSize     int                       `json:"rosterSize"`
	RosterDegraded bool                      `json:"rosterDegraded"`
	Slots          []handlers.SlotResponse   `json:"slots"`
	Unscheduled    []handlers.MemberResponse `json:"unscheduled"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayGrid.Response) *DayGridResponse {
	return &DayGridResponse{
		JamID:          resp.JamID,
		Date:           resp.Date,
		RosterSize:     len(resp.Roster),
		RosterDegraded: resp.RosterDegraded,
		Slots:          handlers.FromDomainSlots(resp.Slots),
		Unscheduled:    handlers.FromDomainMembers(resp.Unscheduled),
	}
}
