package domain

import "time"

// BlockedSlot is an admin-defined restriction over a date. When IsUnblock
// is set it is the opposite: an exceptional opening outside default hours.
// Invariants: a full-day block carries no bounds; an unblock always carries
// explicit bounds and is never full-day.
type BlockedSlot struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	Date      time.Time `json:"date" gorm:"column:date"`
	StartTime *string   `json:"start_time,omitempty" gorm:"column:start_time"` // "HH:MM"
	EndTime   *string   `json:"end_time,omitempty" gorm:"column:end_time"`     // "HH:MM"
	IsFullDay bool      `json:"is_full_day" gorm:"column:is_full_day"`
	IsUnblock bool      `json:"is_unblock" gorm:"column:is_unblock"`
	Reason    string    `json:"reason,omitempty" gorm:"column:reason"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (BlockedSlot) TableName() string { return "blocked_slots" }

// Bounds resolves the slot to a concrete interval on its date. Full-day
// slots span the whole day.
func (b *BlockedSlot) Bounds() TimeInterval {
	day := time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(), 0, 0, 0, 0, time.UTC)
	if b.IsFullDay || b.StartTime == nil || b.EndTime == nil {
		return TimeInterval{Start: day, End: day.Add(24 * time.Hour)}
	}
	return TimeInterval{
		Start: atClock(day, *b.StartTime),
		End:   atClock(day, *b.EndTime),
	}
}

func atClock(day time.Time, clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return day
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}
