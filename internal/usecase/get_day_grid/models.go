package get_day_grid

import "github.com/bandicon/jam-schedule-service/internal/domain"

// Request модель запроса сетки доступности на дату
type Request struct {
	JamID        int64             // ID джема
	Date         string            // Дата YYYYMMDD
	EditingHours []domain.HourSlot // Часы, которые пользователь сейчас редактирует (опционально)
}

// Response сетка доступности на дату
type Response struct {
	JamID          int64
	Date           string
	Slots          []domain.SlotCoverage // Ровно 24 слота
	Roster         []domain.RosterMember
	Unscheduled    []domain.RosterMember // Участники без интервалов на эту дату
	RosterDegraded bool                  // Состав недоступен, уровни посчитаны без него
}
