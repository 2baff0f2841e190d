package domain

import "time"

// HourPack is a prepaid bundle of studio hours. Reservations booked against
// an active pack are priced at the pack's effective hourly rate instead of
// the formula rate (proration).
type HourPack struct {
	ID         int64      `json:"id" gorm:"column:id;primaryKey"`
	UserID     int64      `json:"user_id" gorm:"column:user_id"`
	PriceTTC   float64    `json:"price_ttc" gorm:"column:price_ttc"`
	HoursQuota float64    `json:"hours_quota" gorm:"column:hours_quota"`
	HoursUsed  float64    `json:"hours_used" gorm:"column:hours_used"`
	IsActive   bool       `json:"is_active" gorm:"column:is_active"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty" gorm:"column:expires_at"`
	CreatedAt  time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (HourPack) TableName() string { return "hour_packs" }

// EffectiveHourlyRate is the TTC pack price spread over its hour quota.
func (p *HourPack) EffectiveHourlyRate() float64 {
	if p.HoursQuota <= 0 {
		return 0
	}
	return p.PriceTTC / p.HoursQuota
}

// HoursRemaining never goes below zero.
func (p *HourPack) HoursRemaining() float64 {
	if rem := p.HoursQuota - p.HoursUsed; rem > 0 {
		return rem
	}
	return 0
}

// IsUsable reports whether the pack can cover a new reservation now.
func (p *HourPack) IsUsable(now time.Time) bool {
	if !p.IsActive || p.HoursRemaining() <= 0 {
		return false
	}
	return p.ExpiresAt == nil || now.Before(*p.ExpiresAt)
}
