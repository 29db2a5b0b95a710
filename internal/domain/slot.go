package domain

// HourSlot one hour of one calendar day, 0..23.
type HourSlot int

// Valid reports whether the slot lies inside a day
func (h HourSlot) Valid() bool {
	return h >= MinHour && h <= MaxHour
}

// CoverageRange a maximal contiguous run of selected slots.
// EndHour is inclusive.
type CoverageRange struct {
	StartHour HourSlot
	EndHour   HourSlot
}

// Len number of hours in the range
func (r CoverageRange) Len() int {
	return int(r.EndHour-r.StartHour) + 1
}

// Contains reports whether h belongs to the range
func (r CoverageRange) Contains(h HourSlot) bool {
	return h >= r.StartHour && h <= r.EndHour
}

// Tier display classification of a slot
type Tier string

const (
	TierEditing     Tier = "editing"
	TierEmpty       Tier = "empty"
	TierPartialLow  Tier = "partial-low"
	TierPartialHigh Tier = "partial-high"
	TierFull        Tier = "full"
)

// SlotCoverage derived display state of one slot. Never stored.
type SlotCoverage struct {
	Hour           HourSlot
	Tier           Tier
	ParticipantIDs []int64
	Icons          []IconType
}
