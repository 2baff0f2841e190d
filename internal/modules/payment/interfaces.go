package payment

import (
	"context"
	"time"

	"studiobooking/internal/domain"
)

// Provider is the opaque payment processor. The engine only ever learns
// "succeeded" or "failed" about what happens behind it.
type Provider interface {
	CreateIntent(ctx context.Context, amount float64, currency string, reservationID int64) (string, error)
}

type IntentRepository interface {
	Create(ctx context.Context, p *domain.PaymentIntent) error
	GetByReference(ctx context.Context, reference string) (*domain.PaymentIntent, error)
	MarkSucceeded(ctx context.Context, reference string, paidAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, reference string) error
}

// BookingTransitioner is the slice of the booking orchestrator the payment
// flow drives.
type BookingTransitioner interface {
	ConfirmBooking(ctx context.Context, id int64, paymentReference string) (*domain.Reservation, error)
	CancelBooking(ctx context.Context, id int64, reason string) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}
