package grid

import "github.com/bandicon/jam-schedule-service/internal/domain"

// Selection часы, выбранные на одну дату. Нулевое значение - пустое выделение без даты.
type Selection struct {
	Date  string
	hours [domain.HoursPerDay]bool
}

// NewSelection собирает выделение на дату из списка часов.
// Часы вне суток игнорируются.
func NewSelection(date string, hours ...domain.HourSlot) Selection {
	s := Selection{Date: date}
	for _, h := range hours {
		s.set(h, true)
	}
	return s
}

// IsSelected выбран ли h
func (s Selection) IsSelected(h domain.HourSlot) bool {
	if !h.Valid() {
		return false
	}
	return s.hours[h]
}

// Hours выбранные часы по возрастанию
func (s Selection) Hours() []domain.HourSlot {
	out := make([]domain.HourSlot, 0, domain.HoursPerDay)
	for h := domain.HourSlot(domain.MinHour); h <= domain.MaxHour; h++ {
		if s.hours[h] {
			out = append(out, h)
		}
	}
	return out
}

// Len количество выбранных часов
func (s Selection) Len() int {
	n := 0
	for _, v := range s.hours {
		if v {
			n++
		}
	}
	return n
}

// set задает принадлежность h, true если она изменилась
func (s *Selection) set(h domain.HourSlot, selected bool) bool {
	if !h.Valid() || s.hours[h] == selected {
		return false
	}
	s.hours[h] = selected
	return true
}
