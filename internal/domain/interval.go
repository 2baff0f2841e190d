package domain

import "time"

// TimeInterval is a half-open [Start, End) span of wall-clock time.
// Both ends carry a full date, not just a time of day, because blocking
// rules are evaluated against a specific calendar date.
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (i TimeInterval) IsValid() bool {
	return i.End.After(i.Start)
}

// Overlaps reports half-open overlap: touching endpoints do not count.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Covers reports whether other lies entirely inside i.
func (i TimeInterval) Covers(other TimeInterval) bool {
	return !other.Start.Before(i.Start) && !other.End.After(i.End)
}

// Hours returns the duration as fractional hours.
func (i TimeInterval) Hours() float64 {
	return i.End.Sub(i.Start).Hours()
}

// Weekday returns the ISO weekday of the interval start (Monday=1 .. Sunday=7).
func (i TimeInterval) Weekday() int {
	return ISOWeekday(i.Start.Weekday())
}

// ISOWeekday converts time.Weekday (Sunday=0) to ISO numbering (Monday=1).
func ISOWeekday(w time.Weekday) int {
	if w == time.Sunday {
		return 7
	}
	return int(w)
}
