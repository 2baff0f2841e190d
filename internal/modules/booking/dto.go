package booking

import "time"

type CreateBookingRequest struct {
	FormulaID   int64     `json:"formula_id" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	PodcasterID *int64    `json:"podcaster_id"`
	PromoCode   string    `json:"promo_code"`
	// Promo scoping email, taken from the body because accounts carry no
	// email yet. TODO: derive from the authenticated user once they do.
	Email       string    `json:"email"`

	// Set from the auth context, never from the body.
	UserID int64 `json:"-"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type RescheduleBookingRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}
