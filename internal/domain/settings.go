package domain

import "time"

// StudioSettings is the singleton configuration row for the studio: opening
// hours, open days, tax and surcharge rates. It is created lazily with
// defaults on first read and mutated only by admin updates. During a single
// booking evaluation it must be used as a point-in-time snapshot.
type StudioSettings struct {
	ID int64 `json:"id" gorm:"column:id;primaryKey"`

	OpeningTime string `json:"opening_time" gorm:"column:opening_time"` // "HH:MM"
	ClosingTime string `json:"closing_time" gorm:"column:closing_time"` // "HH:MM"

	// ISO weekday numbers, Monday=1 .. Sunday=7.
	OpenDays []int `json:"open_days" gorm:"column:open_days;serializer:json"`

	VATRate        float64 `json:"vat_rate" gorm:"column:vat_rate"`
	CommissionRate float64 `json:"commission_rate" gorm:"column:commission_rate"`

	// Night hours run from NightStartTime until NightEndTime the next morning.
	NightStartTime        string  `json:"night_start_time" gorm:"column:night_start_time"` // "HH:MM"
	NightEndTime          string  `json:"night_end_time" gorm:"column:night_end_time"`     // "HH:MM"
	NightSurchargePercent float64 `json:"night_surcharge_percent" gorm:"column:night_surcharge_percent"`

	WeekendSurchargePercent float64 `json:"weekend_surcharge_percent" gorm:"column:weekend_surcharge_percent"`

	ReminderHoursBefore int `json:"reminder_hours_before" gorm:"column:reminder_hours_before"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (StudioSettings) TableName() string { return "studio_settings" }

// DefaultStudioSettings returns the row persisted on first read.
func DefaultStudioSettings() *StudioSettings {
	return &StudioSettings{
		OpeningTime:             "09:00",
		ClosingTime:             "20:00",
		OpenDays:                []int{1, 2, 3, 4, 5, 6},
		VATRate:                 0.20,
		CommissionRate:          0.15,
		NightStartTime:          "20:00",
		NightEndTime:            "09:00",
		NightSurchargePercent:   15,
		WeekendSurchargePercent: 10,
		ReminderHoursBefore:     24,
	}
}

// IsDayOpen reports whether the ISO weekday (Monday=1) is an open day.
func (s *StudioSettings) IsDayOpen(weekday int) bool {
	for _, d := range s.OpenDays {
		if d == weekday {
			return true
		}
	}
	return false
}
