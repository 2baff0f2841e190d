package booking

import (
	"context"
	"time"

	"studiobooking/internal/domain"
	"studiobooking/internal/modules/pricing"
	"studiobooking/internal/modules/schedule"
)

// ReservationRepository is the persistence surface the ledger and
// orchestrator need.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Overlapping(ctx context.Context, interval domain.TimeInterval, excludeID int64, pendingDeadline time.Time) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error
	CancelWithReason(ctx context.Context, id int64, reason string) error
	UpdateInterval(ctx context.Context, id int64, interval domain.TimeInterval) error
	SetPaymentReference(ctx context.Context, id int64, reference string) error
	ExpirePending(ctx context.Context, deadline time.Time) (int64, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Reservation, error)
}

// BlockingResolver answers whether an interval may legally be booked.
type BlockingResolver interface {
	IsBlocked(ctx context.Context, interval domain.TimeInterval) (schedule.Verdict, error)
}

// Pricer produces frozen price breakdowns and settles promo codes.
type Pricer interface {
	Quote(ctx context.Context, p pricing.QuoteParams) (*pricing.QuoteResult, error)
	RedeemPromo(ctx context.Context, promoID int64) error
}

// PackCharger debits consumed hours from a prepaid pack.
type PackCharger interface {
	AddUsedHours(ctx context.Context, id int64, hours float64) error
}

// PaymentIntentCreator opens the payment handshake for a pending
// reservation and returns the provider reference.
type PaymentIntentCreator interface {
	CreateIntent(ctx context.Context, reservationID int64, amountTTC float64) (string, error)
}
