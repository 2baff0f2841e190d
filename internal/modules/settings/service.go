package settings

import (
	"context"
	"time"

	"studiobooking/internal/domain"
)

// HourRange is a half-open span of minutes since midnight.
type HourRange struct {
	FromMin int
	ToMin   int
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the settings snapshot, creating defaults on first read. The
// returned value must be treated as point-in-time for the whole evaluation.
func (s *Service) Get(ctx context.Context) (*domain.StudioSettings, error) {
	return s.repo.Get(ctx)
}

func (s *Service) Update(ctx context.Context, req UpdateSettingsRequest) (*domain.StudioSettings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := ParseClock(req.OpeningTime); err != nil {
		return nil, ErrValidation
	}
	if _, err := ParseClock(req.ClosingTime); err != nil {
		return nil, ErrValidation
	}
	if ClockMinutes(req.OpeningTime) >= ClockMinutes(req.ClosingTime) {
		return nil, ErrValidation
	}
	for _, d := range req.OpenDays {
		if d < 1 || d > 7 {
			return nil, ErrValidation
		}
	}
	if req.VATRate < 0 || req.VATRate >= 1 || req.CommissionRate < 0 || req.CommissionRate >= 1 {
		return nil, ErrValidation
	}
	if req.NightSurchargePercent < 0 || req.WeekendSurchargePercent < 0 {
		return nil, ErrValidation
	}
	if _, err := ParseClock(req.NightStartTime); err != nil {
		return nil, ErrValidation
	}
	if _, err := ParseClock(req.NightEndTime); err != nil {
		return nil, ErrValidation
	}

	current.OpeningTime = req.OpeningTime
	current.ClosingTime = req.ClosingTime
	current.OpenDays = req.OpenDays
	current.VATRate = req.VATRate
	current.CommissionRate = req.CommissionRate
	current.NightStartTime = req.NightStartTime
	current.NightEndTime = req.NightEndTime
	current.NightSurchargePercent = req.NightSurchargePercent
	current.WeekendSurchargePercent = req.WeekendSurchargePercent
	current.ReminderHoursBefore = req.ReminderHoursBefore

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// DefaultClosedRanges derives the closed minute ranges of a day from the
// opening hours: [00:00, opening) and [closing, 24:00), skipping empty ones.
func DefaultClosedRanges(s *domain.StudioSettings) []HourRange {
	open := ClockMinutes(s.OpeningTime)
	close := ClockMinutes(s.ClosingTime)

	var out []HourRange
	if open > 0 {
		out = append(out, HourRange{FromMin: 0, ToMin: open})
	}
	if close < 24*60 {
		out = append(out, HourRange{FromMin: close, ToMin: 24 * 60})
	}
	return out
}

// ParseClock validates an "HH:MM" clock string.
func ParseClock(clock string) (time.Time, error) {
	return time.Parse("15:04", clock)
}

// ClockMinutes converts "HH:MM" to minutes since midnight; malformed input
// yields 0.
func ClockMinutes(clock string) int {
	t, err := ParseClock(clock)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}
