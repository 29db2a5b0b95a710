package grid

import "github.com/bandicon/jam-schedule-service/internal/domain"

// CoverageAt состояние отображения слота h на дату. Считается заново при каждом вызове:
// интервалы других дат пропускаются, выделение другой даты не учитывается.
func CoverageAt(
	h domain.HourSlot,
	date string,
	intervals []domain.ScheduleInterval,
	roster []domain.RosterMember,
	selection *Selection,
) domain.SlotCoverage {
	participants := participantsAt(h, date, intervals)

	icons := make([]domain.IconType, len(participants))
	byOwner := rosterIndex(roster)
	for i, ownerID := range participants {
		if m, ok := byOwner[ownerID]; ok {
			icons[i] = m.Icon()
		} else {
			icons[i] = domain.IconDefault
		}
	}

	editing := selection != nil && selection.Date == date && selection.IsSelected(h)

	return domain.SlotCoverage{
		Hour:           h,
		Tier:           tierFor(editing, len(participants), len(roster)),
		ParticipantIDs: participants,
		Icons:          icons,
	}
}

// DayCoverage покрытие всех 24 слотов даты
func DayCoverage(
	date string,
	intervals []domain.ScheduleInterval,
	roster []domain.RosterMember,
	selection *Selection,
) []domain.SlotCoverage {
	out := make([]domain.SlotCoverage, domain.HoursPerDay)
	for h := domain.HourSlot(domain.MinHour); h <= domain.MaxHour; h++ {
		out[h] = CoverageAt(h, date, intervals, roster, selection)
	}
	return out
}

// Unscheduled участники состава без единого интервала на дату, в порядке состава
func Unscheduled(roster []domain.RosterMember, intervals []domain.ScheduleInterval, date string) []domain.RosterMember {
	scheduled := make(map[int64]struct{})
	for i := range intervals {
		if intervals[i].Date == date {
			scheduled[intervals[i].OwnerID] = struct{}{}
		}
	}

	out := make([]domain.RosterMember, 0, len(roster))
	for _, m := range roster {
		if _, ok := scheduled[m.OwnerID]; !ok {
			out = append(out, m)
		}
	}
	return out
}

// participantsAt уникальные владельцы интервалов, покрывающих h, в порядке первого появления
func participantsAt(h domain.HourSlot, date string, intervals []domain.ScheduleInterval) []int64 {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)
	for i := range intervals {
		iv := &intervals[i]
		if iv.Date != date || !iv.Covers(h) {
			continue
		}
		if _, ok := seen[iv.OwnerID]; ok {
			continue
		}
		seen[iv.OwnerID] = struct{}{}
		ids = append(ids, iv.OwnerID)
	}
	return ids
}

func rosterIndex(roster []domain.RosterMember) map[int64]domain.RosterMember {
	idx := make(map[int64]domain.RosterMember, len(roster))
	for _, m := range roster {
		idx[m.OwnerID] = m
	}
	return idx
}

// tierFor приоритет: editing, empty, full, partial-high, partial-low.
// Без состава непустой слот всегда partial-low.
func tierFor(editing bool, participants, rosterSize int) domain.Tier {
	switch {
	case editing:
		return domain.TierEditing
	case participants == 0:
		return domain.TierEmpty
	case rosterSize > 0 && participants >= rosterSize:
		return domain.TierFull
	case rosterSize > 0 && float64(participants)/float64(rosterSize) > domain.PartialHighRatio:
		return domain.TierPartialHigh
	default:
		return domain.TierPartialLow
	}
}
