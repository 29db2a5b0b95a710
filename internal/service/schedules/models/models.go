package models

import (
	"time"

	"github.com/bandicon/jam-schedule-service/internal/domain"
	"github.com/bandicon/jam-schedule-service/pkg/types"
)

// Request модели

// ListSchedulesRequest запрос интервалов джема
// Нужно указать ровно одно из Date / Month
type ListSchedulesRequest struct {
	JamID   int64   `json:"jamId"`
	Date    *string `json:"date,omitempty"`    // YYYYMMDD
	Month   *string `json:"month,omitempty"`   // YYYYMM
	OwnerID *int64  `json:"ownerId,omitempty"` // Только интервалы участника (опционально)
}

// ClearDayRequest запрос на удаление своих интервалов за дату
type ClearDayRequest struct {
	JamID   int64  `json:"jamId"`
	OwnerID int64  `json:"ownerId"`
	Date    string `json:"date"`
}

// Response модели

// ScheduleResponse интервал в формате бэкенда
type ScheduleResponse struct {
	ID        int64     `json:"id"`
	JamID     int64     `json:"jamId"`
	OwnerID   int64     `json:"ownerId"`
	Date      string    `json:"date"`      // "20261016"
	StartTime string    `json:"startTime"` // "090000"
	EndTime   string    `json:"endTime"`   // "115900"
	AllDayYn  string    `json:"allDayYn"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ScheduleListResponse ответ со списком интервалов
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

// MemberResponse участник джема
type MemberResponse struct {
	OwnerID         int64  `json:"ownerId"`
	SessionTypeCode string `json:"sessionTypeCode"`
	PartLabel       string `json:"partLabel,omitempty"`
	Nickname        string `json:"nickname,omitempty"`
	Icon            string `json:"icon"`
}

// RosterResponse состав джема
type RosterResponse struct {
	JamID   int64            `json:"jamId"`
	Members []MemberResponse `json:"members"`
}

// ClearDayResponse результат удаления
type ClearDayResponse struct {
	Deleted int64 `json:"deleted"`
}

// Методы конвертации

// FromDomainInterval конвертирует domain модель в DTO
func FromDomainInterval(iv *domain.ScheduleInterval) ScheduleResponse {
	return ScheduleResponse{
		ID:        iv.ID,
		JamID:     iv.JamID,
		OwnerID:   iv.OwnerID,
		Date:      iv.Date,
		StartTime: types.NewClockString(iv.StartHour, iv.StartMinute, 0).String(),
		EndTime:   types.NewClockString(iv.EndHour, iv.EndMinute, 0).String(),
		AllDayYn:  iv.AllDayYn,
		Title:     iv.Title,
		Content:   iv.Content,
		CreatedAt: iv.CreatedAt,
	}
}

// FromDomainIntervals конвертирует список domain моделей в DTO
func FromDomainIntervals(intervals []domain.ScheduleInterval) *ScheduleListResponse {
	resp := &ScheduleListResponse{
		Schedules: make([]ScheduleResponse, len(intervals)),
	}
	for i := range intervals {
		resp.Schedules[i] = FromDomainInterval(&intervals[i])
	}
	return resp
}

// FromDomainMember конвертирует участника в DTO
func FromDomainMember(m domain.RosterMember) MemberResponse {
	return MemberResponse{
		OwnerID:         m.OwnerID,
		SessionTypeCode: m.SessionTypeCode,
		PartLabel:       m.PartLabel,
		Nickname:        m.Nickname,
		Icon:            string(m.Icon()),
	}
}

// FromDomainRoster конвертирует состав в DTO
func FromDomainRoster(jamID int64, roster []domain.RosterMember) *RosterResponse {
	resp := &RosterResponse{
		JamID:   jamID,
		Members: make([]MemberResponse, len(roster)),
	}
	for i, m := range roster {
		resp.Members[i] = FromDomainMember(m)
	}
	return resp
}
