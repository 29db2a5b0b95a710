package domain

import "time"

// ScheduleInterval a persisted commitment of one participant on one date.
// The grid engine only reads intervals.
type ScheduleInterval struct {
	ID          int64
	JamID       int64
	OwnerID     int64
	Date        string // YYYYMMDD
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
	AllDayYn    string
	Title       string
	Content     string
	CreatedAt   time.Time
}

// LastHour the last hour the interval covers, applying the minute rollover
// rule: an end minute of RolloverMinute or later keeps the end hour,
// anything earlier stops at the previous hour.
func (s *ScheduleInterval) LastHour() int {
	if s.EndMinute >= RolloverMinute {
		return s.EndHour
	}
	return s.EndHour - 1
}

// Covers reports whether the interval spans hour h on its date
func (s *ScheduleInterval) Covers(h HourSlot) bool {
	return int(h) >= s.StartHour && int(h) <= s.LastHour()
}

// IsPartial reports whether the interval was created from the availability grid
func (s *ScheduleInterval) IsPartial() bool {
	return s.AllDayYn == AllDayPartial
}

// ScheduleFilter filter for loading a jam's intervals
type ScheduleFilter struct {
	JamID    int64  // required
	DateFrom string // YYYYMMDD inclusive, empty = unbounded
	DateTo   string // YYYYMMDD inclusive, empty = unbounded
	OwnerID  *int64
}
