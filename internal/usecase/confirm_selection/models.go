package confirm_selection

import (
	"github.com/bandicon/jam-schedule-service/internal/domain"
	"github.com/bandicon/jam-schedule-service/pkg/types"
)

// Request модель запроса на подтверждение выбранных часов
type Request struct {
	JamID   int64             // ID джема
	OwnerID int64             // ID участника, который сохраняет свое время
	Date    string            // Дата YYYYMMDD
	Hours   []domain.HourSlot // Выбранные часы (в любом порядке)
}

// Status итог подтверждения
type Status string

const (
	StatusOK      Status = "ok"      // все диапазоны сохранены
	StatusPartial Status = "partial" // часть диапазонов сохранена
	StatusFailed  Status = "failed"  // ничего не сохранено
)

// RangeStatus результат сохранения одного диапазона
type RangeStatus string

const (
	RangeSaved      RangeStatus = "ok"
	RangeFailed     RangeStatus = "failed"
	RangeRolledBack RangeStatus = "rolled_back" // атомарный режим: откатан из-за ошибки другого диапазона
)

// RangeResult результат по одному диапазону
type RangeResult struct {
	Range      domain.CoverageRange
	StartTime  types.ClockString // "HH0000"
	EndTime    types.ClockString // "HH5900"
	IntervalID int64             // 0, если не сохранен
	Status     RangeStatus
	Error      string
}

// Response модель ответа
type Response struct {
	JamID   int64
	OwnerID int64
	Date    string
	Status  Status
	Atomic  bool
	Ranges  []RangeResult

	// Сетка после сохранения. nil, если перечитать не удалось (GridStale = true)
	Slots       []domain.SlotCoverage
	Unscheduled []domain.RosterMember
	GridStale   bool
}

// Saved количество сохраненных диапазонов
func (r *Response) Saved() int {
	n := 0
	for _, rr := range r.Ranges {
		if rr.Status == RangeSaved {
			n++
		}
	}
	return n
}
