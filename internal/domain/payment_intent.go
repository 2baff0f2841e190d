package domain

import "time"

type PaymentIntentStatus string

const (
	PaymentIntentCreated   PaymentIntentStatus = "created"
	PaymentIntentSucceeded PaymentIntentStatus = "succeeded"
	PaymentIntentFailed    PaymentIntentStatus = "failed"
)

// PaymentIntent tracks the provider handshake for one reservation. The
// provider itself is opaque to the engine beyond succeeded/failed.
type PaymentIntent struct {
	ID            int64               `json:"id" gorm:"column:id;primaryKey"`
	ReservationID int64               `json:"reservation_id" gorm:"column:reservation_id"`
	Reference     string              `json:"reference" gorm:"column:reference;uniqueIndex"`
	AmountTTC     float64             `json:"amount_ttc" gorm:"column:amount_ttc"`
	Currency      string              `json:"currency" gorm:"column:currency"`
	Status        PaymentIntentStatus `json:"status" gorm:"column:status"`
	PaidAt        *time.Time          `json:"paid_at,omitempty" gorm:"column:paid_at"`
	CreatedAt     time.Time           `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time           `json:"updated_at" gorm:"column:updated_at"`
}

func (PaymentIntent) TableName() string { return "payment_intents" }
