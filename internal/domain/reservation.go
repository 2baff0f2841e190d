package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation occupies its interval on the studio timeline while its status
// is pending or confirmed. Cancelled rows are kept for history but no longer
// count for overlap. Price fields are frozen at creation time and never
// recomputed, so the client is charged exactly what was quoted.
type Reservation struct {
	ID          int64  `json:"id" gorm:"column:id;primaryKey"`
	UserID      int64  `json:"user_id" gorm:"column:user_id" validate:"required"`
	PodcasterID *int64 `json:"podcaster_id,omitempty" gorm:"column:podcaster_id"`
	FormulaID   int64  `json:"formula_id" gorm:"column:formula_id" validate:"required"`

	StartTime time.Time `json:"start_time" gorm:"column:start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" gorm:"column:end_time" validate:"required"`

	Status ReservationStatus `json:"status" gorm:"column:status"`

	PriceHT         float64 `json:"price_ht" gorm:"column:price_ht"`
	PriceTVA        float64 `json:"price_tva" gorm:"column:price_tva"`
	PriceTTC        float64 `json:"price_ttc" gorm:"column:price_ttc"`
	OriginalPriceHT float64 `json:"original_price_ht" gorm:"column:original_price_ht"`

	PromoCode      *string `json:"promo_code,omitempty" gorm:"column:promo_code"`
	IsSubscription bool    `json:"is_subscription" gorm:"column:is_subscription"`

	PaymentReference   string     `json:"payment_reference,omitempty" gorm:"column:payment_reference"`
	CancellationReason string     `json:"cancellation_reason,omitempty" gorm:"column:cancellation_reason;type:text"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty" gorm:"column:cancelled_at"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Reservation) TableName() string { return "reservations" }

// ReservationNoOverlapConstraint names the Postgres exclusion constraint
// that rejects overlapping active reservations at the storage layer.
const ReservationNoOverlapConstraint = "idx_reservations_no_overlap"

func (r *Reservation) Interval() TimeInterval {
	return TimeInterval{Start: r.StartTime, End: r.EndTime}
}

// IsActive reports whether the reservation still holds its slot.
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationPending || r.Status == ReservationConfirmed
}
