package grid

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bandicon/jam-schedule-service/internal/domain"
	"github.com/bandicon/jam-schedule-service/pkg/types"
)

var ErrInvalidRange = errors.New("grid: invalid range")

// MergeRanges сливает часы в максимальные непрерывные диапазоны по возрастанию.
// Дубликаты и часы вне суток отбрасываются.
func MergeRanges(hours []domain.HourSlot) []domain.CoverageRange {
	sorted := make([]domain.HourSlot, 0, len(hours))
	for _, h := range hours {
		if h.Valid() {
			sorted = append(sorted, h)
		}
	}
	if len(sorted) == 0 {
		return nil
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	ranges := make([]domain.CoverageRange, 0, len(sorted))
	current := domain.CoverageRange{StartHour: sorted[0], EndHour: sorted[0]}

	for _, h := range sorted[1:] {
		switch {
		case h == current.EndHour:
			// дубликат
		case h == current.EndHour+1:
			current.EndHour = h
		default:
			ranges = append(ranges, current)
			current = domain.CoverageRange{StartHour: h, EndHour: h}
		}
	}

	return append(ranges, current)
}

// EncodeRange кодировка диапазона для бэкенда: "HH0000" .. "HH5900"
func EncodeRange(r domain.CoverageRange) (start, end types.ClockString) {
	start = types.ClockString(fmt.Sprintf("%02d%s", int(r.StartHour), domain.RangeStartSuffix))
	end = types.ClockString(fmt.Sprintf("%02d%s", int(r.EndHour), domain.RangeEndSuffix))
	return start, end
}

// DecodeRange часы, покрытые сохраненной парой начало/конец,
// по тому же правилу округления минут, что и покрытие.
func DecodeRange(start, end types.ClockString) (domain.CoverageRange, error) {
	interval, err := IntervalTimes(start, end)
	if err != nil {
		return domain.CoverageRange{}, err
	}

	last := interval.LastHour()
	if last < interval.StartHour {
		return domain.CoverageRange{}, fmt.Errorf("%w: %s-%s covers no hour", ErrInvalidRange, start, end)
	}

	return domain.CoverageRange{
		StartHour: domain.HourSlot(interval.StartHour),
		EndHour:   domain.HourSlot(last),
	}, nil
}

// IntervalTimes заполняет часы и минуты интервала из сохраненных строк времени
func IntervalTimes(start, end types.ClockString) (domain.ScheduleInterval, error) {
	sh, sm, err := start.HourMinute()
	if err != nil {
		return domain.ScheduleInterval{}, fmt.Errorf("%w: start: %v", ErrInvalidRange, err)
	}
	eh, em, err := end.HourMinute()
	if err != nil {
		return domain.ScheduleInterval{}, fmt.Errorf("%w: end: %v", ErrInvalidRange, err)
	}

	return domain.ScheduleInterval{
		StartHour:   sh,
		StartMinute: sm,
		EndHour:     eh,
		EndMinute:   em,
	}, nil
}
