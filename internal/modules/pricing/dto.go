package pricing

import "time"

type QuoteRequest struct {
	FormulaID int64     `json:"formula_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	PromoCode string    `json:"promo_code"`
	Email     string    `json:"email"`
}

type CreatePromoRequest struct {
	Code            string     `json:"code"`
	DiscountPercent float64    `json:"discount_percent" binding:"required,gt=0,lte=100"`
	Email           string     `json:"email"`
	ExpiresAt       *time.Time `json:"expires_at"`
}
