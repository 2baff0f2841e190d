package payment

import (
	"context"
	"errors"
	"time"

	"studiobooking/internal/domain"

	"gorm.io/gorm"
)

var ErrUnknownReference = errors.New("unknown payment reference")

type Service struct {
	intents  IntentRepository
	bookings BookingTransitioner
	provider Provider
	currency string
}

func NewService(intents IntentRepository, bookings BookingTransitioner, provider Provider, currency string) *Service {
	return &Service{
		intents:  intents,
		bookings: bookings,
		provider: provider,
		currency: currency,
	}
}

// CreateIntent opens the handshake for a pending reservation and records
// the provider reference. Implements the orchestrator's
// PaymentIntentCreator.
func (s *Service) CreateIntent(ctx context.Context, reservationID int64, amountTTC float64) (string, error) {
	ref, err := s.provider.CreateIntent(ctx, amountTTC, s.currency, reservationID)
	if err != nil {
		return "", err
	}

	intent := &domain.PaymentIntent{
		ReservationID: reservationID,
		Reference:     ref,
		AmountTTC:     amountTTC,
		Currency:      s.currency,
		Status:        domain.PaymentIntentCreated,
	}
	if err := s.intents.Create(ctx, intent); err != nil {
		return "", err
	}
	return ref, nil
}

// HandleConfirmation settles an intent from a provider event and drives the
// reservation transition. A replayed success event is a no-op that returns
// the current reservation state.
func (s *Service) HandleConfirmation(ctx context.Context, reference string, succeeded bool) (*domain.Reservation, error) {
	intent, err := s.intents.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownReference
		}
		return nil, err
	}

	if !succeeded {
		if err := s.intents.MarkFailed(ctx, reference); err != nil {
			return nil, err
		}
		return s.bookings.CancelBooking(ctx, intent.ReservationID, "payment failed")
	}

	settled, err := s.intents.MarkSucceeded(ctx, reference, time.Now())
	if err != nil {
		return nil, err
	}
	if !settled {
		// Duplicate event: already settled, nothing left to transition.
		return s.bookings.GetByID(ctx, intent.ReservationID)
	}

	return s.bookings.ConfirmBooking(ctx, intent.ReservationID, reference)
}
