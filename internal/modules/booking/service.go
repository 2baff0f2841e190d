package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"studiobooking/internal/domain"
	"studiobooking/internal/modules/pricing"
	"studiobooking/internal/pkg/validator"

	"gorm.io/gorm"
)

// Service is the booking orchestrator: it composes the blocking resolver,
// the pricing calculator and the reservation ledger into the
// validate → resolve → price → commit pipeline.
type Service struct {
	ledger           *Ledger
	reservations     ReservationRepository
	resolver         BlockingResolver
	pricer           Pricer
	packs            PackCharger
	payments         PaymentIntentCreator
	pendingRetention time.Duration
	now              func() time.Time
}

func NewService(
	ledger *Ledger,
	reservations ReservationRepository,
	resolver BlockingResolver,
	pricer Pricer,
	packs PackCharger,
	pendingRetention time.Duration,
) *Service {
	return &Service{
		ledger:           ledger,
		reservations:     reservations,
		resolver:         resolver,
		pricer:           pricer,
		packs:            packs,
		pendingRetention: pendingRetention,
		now:              time.Now,
	}
}

// SetPaymentIntents wires the payment handshake in after construction; the
// payment service itself depends on this orchestrator for transitions.
func (s *Service) SetPaymentIntents(p PaymentIntentCreator) {
	s.payments = p
}

type Availability struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// CheckAvailability answers whether the interval could be booked right now.
// Read-only; the answer can go stale the moment it is returned.
func (s *Service) CheckAvailability(ctx context.Context, interval domain.TimeInterval) (*Availability, error) {
	if err := s.validateInterval(interval); err != nil {
		return nil, err
	}

	verdict, err := s.resolver.IsBlocked(ctx, interval)
	if err != nil {
		return nil, err
	}
	if verdict.Blocked {
		return &Availability{Available: false, Reason: string(verdict.Reason)}, nil
	}

	overlaps, err := s.ledger.Overlaps(ctx, interval, 0)
	if err != nil {
		return nil, err
	}
	if len(overlaps) > 0 {
		return &Availability{Available: false, Reason: "slot already reserved"}, nil
	}
	return &Availability{Available: true}, nil
}

type CreateBookingResult struct {
	Reservation      *domain.Reservation `json:"reservation"`
	Price            pricing.Breakdown   `json:"price"`
	PaymentReference string              `json:"payment_reference,omitempty"`
}

// CreateBooking runs the full pipeline and commits a pending reservation
// with its price frozen. The slot is held until payment confirmation or
// until the pending retention window runs out.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error) {
	interval := domain.TimeInterval{Start: req.StartTime, End: req.EndTime}
	if err := s.validateInterval(interval); err != nil {
		return nil, err
	}

	verdict, err := s.resolver.IsBlocked(ctx, interval)
	if err != nil {
		return nil, err
	}
	if verdict.Blocked {
		return nil, &BlockedError{Reason: verdict.Reason}
	}

	quote, err := s.pricer.Quote(ctx, pricing.QuoteParams{
		Interval:  interval,
		FormulaID: req.FormulaID,
		UserID:    req.UserID,
		Email:     req.Email,
		PromoCode: req.PromoCode,
	})
	if err != nil {
		return nil, err
	}

	res := &domain.Reservation{
		UserID:          req.UserID,
		PodcasterID:     req.PodcasterID,
		FormulaID:       req.FormulaID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Status:          domain.ReservationPending,
		PriceHT:         quote.Breakdown.PriceHT,
		PriceTVA:        quote.Breakdown.PriceTVA,
		PriceTTC:        quote.Breakdown.PriceTTC,
		OriginalPriceHT: quote.Breakdown.OriginalPriceHT,
		IsSubscription:  quote.Breakdown.IsSubscription,
	}
	if req.PromoCode != "" {
		code := req.PromoCode
		res.PromoCode = &code
	}
	if violations := validator.Validate(res); violations != nil {
		return nil, ErrValidation
	}

	if err := s.ledger.TryReserve(ctx, res); err != nil {
		return nil, err
	}

	if quote.Promo != nil {
		if err := s.pricer.RedeemPromo(ctx, quote.Promo.ID); err != nil {
			// Another reservation burned the code between quote and commit.
			_ = s.reservations.CancelWithReason(ctx, res.ID, "promo code no longer valid")
			return nil, err
		}
	}

	if quote.Pack != nil {
		if err := s.packs.AddUsedHours(ctx, quote.Pack.ID, quote.Breakdown.Hours); err != nil {
			log.Printf("booking: failed to charge pack %d for reservation %d: %v", quote.Pack.ID, res.ID, err)
		}
	}

	result := &CreateBookingResult{Reservation: res, Price: quote.Breakdown}
	if s.payments != nil {
		ref, err := s.payments.CreateIntent(ctx, res.ID, res.PriceTTC)
		if err != nil {
			_ = s.reservations.CancelWithReason(ctx, res.ID, "payment intent creation failed")
			return nil, err
		}
		_ = s.reservations.SetPaymentReference(ctx, res.ID, ref)
		res.PaymentReference = ref
		result.PaymentReference = ref
	}
	return result, nil
}

// ConfirmBooking flips a pending reservation to confirmed on a successful
// payment event. Prices are never recomputed here: they were frozen at
// creation so the client pays exactly what was quoted.
func (s *Service) ConfirmBooking(ctx context.Context, id int64, paymentReference string) (*domain.Reservation, error) {
	res, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationPending {
		return nil, ErrInvalidStatusTransition
	}

	// A hold past the retention window already stopped counting for
	// overlap; confirming it could double-book the slot.
	if s.now().Sub(res.CreatedAt) > s.pendingRetention {
		_ = s.reservations.CancelWithReason(ctx, id, "payment not completed in time")
		return nil, ErrInvalidStatusTransition
	}

	if paymentReference != "" {
		if err := s.reservations.SetPaymentReference(ctx, id, paymentReference); err != nil {
			return nil, err
		}
	}
	// The write carries its own pending predicate: a cancel landing after
	// the status check above loses nothing, the update simply matches no
	// row and the reservation stays cancelled.
	if err := s.reservations.UpdateStatus(ctx, id, domain.ReservationPending, domain.ReservationConfirmed); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidStatusTransition
		}
		return nil, err
	}
	return s.getByID(ctx, id)
}

// CancelBooking releases the slot while keeping the row for history.
func (s *Service) CancelBooking(ctx context.Context, id int64, reason string) (*domain.Reservation, error) {
	res, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status == domain.ReservationCancelled {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.reservations.CancelWithReason(ctx, id, reason); err != nil {
		return nil, err
	}
	return s.getByID(ctx, id)
}

// RescheduleBooking moves an active reservation to a new interval after
// re-running the blocking resolver and the overlap check against it,
// excluding the reservation's own current slot. Prices stay frozen.
func (s *Service) RescheduleBooking(ctx context.Context, id int64, newInterval domain.TimeInterval) (*domain.Reservation, error) {
	res, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.IsActive() {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.validateInterval(newInterval); err != nil {
		return nil, err
	}

	verdict, err := s.resolver.IsBlocked(ctx, newInterval)
	if err != nil {
		return nil, err
	}
	if verdict.Blocked {
		return nil, &BlockedError{Reason: verdict.Reason}
	}

	if err := s.ledger.Reschedule(ctx, id, newInterval); err != nil {
		return nil, err
	}
	return s.getByID(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.getByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Reservation, error) {
	return s.reservations.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) getByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

// validateInterval rejects malformed requests before any lock is touched.
// Blocking rules are evaluated per calendar date, so an interval must not
// straddle midnight (ending exactly at midnight is fine).
func (s *Service) validateInterval(interval domain.TimeInterval) error {
	if !interval.IsValid() {
		return ErrValidation
	}
	if interval.Start.Before(s.now()) {
		return ErrValidation
	}
	start := interval.Start.UTC()
	endAdj := interval.End.UTC().Add(-time.Nanosecond)
	if start.Year() != endAdj.Year() || start.YearDay() != endAdj.YearDay() {
		return ErrValidation
	}
	return nil
}
