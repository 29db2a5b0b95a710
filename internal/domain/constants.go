package domain

// Grid geometry
const (
	HoursPerDay = 24
	MinHour     = 0
	MaxHour     = HoursPerDay - 1
)

// RolloverMinute an interval whose end minute is at least this value
// covers its end hour as well.
const RolloverMinute = 50

// PartialHighRatio participants/roster above this ratio render as partial-high.
const PartialHighRatio = 0.5

// AllDayYn markers stored with every interval
const (
	AllDayYes     = "Y"
	AllDayPartial = "P" // coordination slot created from the availability grid
)

// Range encoding: a confirmed range starts at the top of its first hour
// and ends at minute 59 of its last hour.
const (
	RangeStartSuffix = "0000"
	RangeEndSuffix   = "5900"
	RangeEndMinute   = 59
)

// Time format constants
const (
	DateFormat  = "20060102" // YYYYMMDD
	MonthFormat = "200601"   // YYYYMM
)
