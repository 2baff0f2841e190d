package domain

import (
	"strings"
	"time"
)

// PromoCode is a single-use percentage discount. A code is either scoped to
// one client email or issued manually (Email empty, usable by anyone once).
type PromoCode struct {
	ID              int64      `json:"id" gorm:"column:id;primaryKey"`
	Code            string     `json:"code" gorm:"column:code;uniqueIndex"`
	DiscountPercent float64    `json:"discount_percent" gorm:"column:discount_percent"`
	Email           string     `json:"email,omitempty" gorm:"column:email"`
	Used            bool       `json:"used" gorm:"column:used"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty" gorm:"column:expires_at"`
	CreatedAt       time.Time  `json:"created_at" gorm:"column:created_at"`
}

func (PromoCode) TableName() string { return "promo_codes" }

func (p *PromoCode) IsExpired(now time.Time) bool {
	return p.ExpiresAt != nil && now.After(*p.ExpiresAt)
}

// MatchesEmail reports whether the code may be redeemed by the given email.
// Manual codes (no email scope) match everyone.
func (p *PromoCode) MatchesEmail(email string) bool {
	if p.Email == "" {
		return true
	}
	return strings.EqualFold(p.Email, email)
}
