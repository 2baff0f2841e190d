package schedule

import (
	"time"

	"studiobooking/internal/domain"
	"studiobooking/internal/modules/settings"
)

// Reason codes carried by blocking verdicts.
type Reason string

const (
	ReasonDayClosed    Reason = "day closed"
	ReasonFullDay      Reason = "full day blocked"
	ReasonOutsideHours Reason = "outside opening hours"
	ReasonManualBlock  Reason = "manually blocked"
)

// Snapshot is everything the resolver needs, fetched once per evaluation so
// the decision cannot tear across store reads.
type Snapshot struct {
	Settings domain.StudioSettings
	Blocks   []domain.BlockedSlot // slots recorded for the interval's date
}

type Verdict struct {
	Blocked bool
	Reason  Reason
}

var allow = Verdict{}

func deny(r Reason) Verdict {
	return Verdict{Blocked: true, Reason: r}
}

// Resolve decides whether the interval may be booked, checking in order:
// closed weekday, full-day block, default closed hours, manual partial
// block. An unblock slot lifts the closed-day and closed-hours checks, and
// only when it fully covers the interval; it never lifts a manual block.
func Resolve(snap Snapshot, interval domain.TimeInterval) Verdict {
	unblocked := coveredByUnblock(snap.Blocks, interval)

	if !snap.Settings.IsDayOpen(interval.Weekday()) && !unblocked {
		return deny(ReasonDayClosed)
	}

	for _, b := range snap.Blocks {
		if b.IsFullDay && !b.IsUnblock {
			return deny(ReasonFullDay)
		}
	}

	if !unblocked {
		day := startOfDay(interval.Start)
		for _, hr := range settings.DefaultClosedRanges(&snap.Settings) {
			closed := domain.TimeInterval{
				Start: day.Add(time.Duration(hr.FromMin) * time.Minute),
				End:   day.Add(time.Duration(hr.ToMin) * time.Minute),
			}
			if closed.Overlaps(interval) {
				return deny(ReasonOutsideHours)
			}
		}
	}

	for _, b := range snap.Blocks {
		if b.IsFullDay || b.IsUnblock {
			continue
		}
		if b.Bounds().Overlaps(interval) {
			return deny(ReasonManualBlock)
		}
	}

	return allow
}

// coveredByUnblock requires full coverage: a partial overlap does not
// partially unblock.
func coveredByUnblock(blocks []domain.BlockedSlot, interval domain.TimeInterval) bool {
	for _, b := range blocks {
		if b.IsUnblock && b.Bounds().Covers(interval) {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
