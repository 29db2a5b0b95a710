package confirm_selection

import (
	"github.com/bandicon/jam-schedule-service/internal/api/handlers"
	confirmSelection "github.com/bandicon/jam-schedule-service/internal/usecase/confirm_selection"
)

// ConfirmSelectionRequest HTTP request model
type ConfirmSelectionRequest struct {
	Hours []int `json:"hours"`
}

// RangeResponse результат по одному диапазону
type RangeResponse struct {
	StartHour  int    `json:"startHour"`
	EndHour    int    `json:"endHour"`
	StartTime  string `json:"startTime"` // "090000"
	EndTime    string `json:"endTime"`   // "115900"
	Status     string `json:"status"`
	IntervalID int64  `json:"intervalId,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ConfirmSelectionResponse HTTP response model
type ConfirmSelectionResponse struct {
	JamID       int64                     `json:"jamId"`
	OwnerID     int64                     `json:"ownerId"`
	Date        string                    `json:"date"`
	Status      string                    `json:"status"`
	Atomic      bool                      `json:"atomic"`
	Ranges      []RangeResponse           `json:"ranges"`
	GridStale   bool                      `json:"gridStale"`
	Slots       []handlers.SlotResponse   `json:"slots,omitempty"`
	Unscheduled []handlers.MemberResponse `json:"unscheduled,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmSelection.Response) *ConfirmSelectionResponse {
	out := &ConfirmSelectionResponse{
		JamID:     resp.JamID,
		OwnerID:   resp.OwnerID,
		Date:      resp.Date,
		Status:    string(resp.Status),
		Atomic:    resp.Atomic,
		Ranges:    make([]RangeResponse, len(resp.Ranges)),
		GridStale: resp.GridStale,
		Slots:     handlers.FromDomainSlots(resp.Slots),
	}

	for i, rr := range resp.Ranges {
		out.Ranges[i] = RangeResponse{
			StartHour:  int(rr.Range.StartHour),
			EndHour:    int(rr.Range.EndHour),
			StartTime:  rr.StartTime.String(),
			EndTime:    rr.EndTime.String(),
			Status:     string(rr.Status),
			IntervalID: rr.IntervalID,
			Error:      rr.Error,
		}
	}

	if !resp.GridStale {
		out.Unscheduled = handlers.FromDomainMembers(resp.Unscheduled)
	}

	return out
}
