package handlers

import "github.com/bandicon/jam-schedule-service/internal/domain"

// SlotResponse состояние одного часового слота
type SlotResponse struct {
	Hour           int      `json:"hour"`
	Tier           string   `json:"tier"`
	ParticipantIDs []int64  `json:"participantIds"`
	Icons          []string `json:"icons"`
}

// MemberResponse участник без интервалов на дату
type MemberResponse struct {
	OwnerID         int64  `json:"ownerId"`
	SessionTypeCode string `json:"sessionTypeCode"`
	PartLabel       string `json:"partLabel,omitempty"`
	Nickname        string `json:"nickname,omitempty"`
	Icon            string `json:"icon"`
}

// FromDomainSlots конвертирует покрытие слотов в DTO
func FromDomainSlots(slots []domain.SlotCoverage) []SlotResponse {
	if slots == nil {
		return nil
	}
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		icons := make([]string, len(s.Icons))
		for j, icon := range s.Icons {
			icons[j] = string(icon)
		}
		ids := s.ParticipantIDs
		if ids == nil {
			ids = []int64{}
		}
		out[i] = SlotResponse{
			Hour:           int(s.Hour),
			Tier:           string(s.Tier),
			ParticipantIDs: ids,
			Icons:          icons,
		}
	}
	return out
}

// FromDomainMembers конвертирует участников в DTO
func FromDomainMembers(members []domain.RosterMember) []MemberResponse {
	out := make([]MemberResponse, len(members))
	for i, m := range members {
		out[i] = MemberResponse{
			OwnerID:         m.OwnerID,
			SessionTypeCode: m.SessionTypeCode,
			PartLabel:       m.PartLabel,
			Nickname:        m.Nickname,
			Icon:            string(m.Icon()),
		}
	}
	return out
}
