package pricing

import (
	"context"
	"errors"
	"strings"
	"time"

	"studiobooking/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	formulas FormulaSource
	packs    PackSource
	promos   PromoSource
	settings SettingsSource
	now      nowFunc
}

func NewService(formulas FormulaSource, packs PackSource, promos PromoSource, settingsSource SettingsSource) *Service {
	return &Service{
		formulas: formulas,
		packs:    packs,
		promos:   promos,
		settings: settingsSource,
		now:      time.Now,
	}
}

type QuoteParams struct {
	Interval  domain.TimeInterval
	FormulaID int64
	UserID    int64  // 0 = anonymous quote, no hour-pack lookup
	Email     string // promo scope check
	PromoCode string
}

// QuoteResult carries the breakdown plus the records the orchestrator must
// settle on commit: the promo to burn and the pack to charge.
type QuoteResult struct {
	Breakdown Breakdown
	Promo     *domain.PromoCode
	Pack      *domain.HourPack
}

// Quote prices the interval without side effects; safe to call repeatedly.
func (s *Service) Quote(ctx context.Context, p QuoteParams) (*QuoteResult, error) {
	if !p.Interval.IsValid() {
		return nil, ErrValidation
	}

	formula, err := s.formulas.GetByID(ctx, p.FormulaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormulaNotFound
		}
		return nil, err
	}

	var pack *domain.HourPack
	if p.UserID > 0 {
		pack, err = s.packs.GetActiveForUser(ctx, p.UserID)
		if err != nil {
			return nil, err
		}
	}

	var promo *domain.PromoCode
	discount := 0.0
	if p.PromoCode != "" {
		promo, err = s.ValidatePromo(ctx, p.PromoCode, p.Email)
		if err != nil {
			return nil, err
		}
		discount = promo.DiscountPercent
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	rate := ResolveRate(formula, pack, s.now)
	breakdown := Calculate(CalcInput{
		Interval:        p.Interval,
		Rate:            rate,
		Settings:        *cfg,
		DiscountPercent: discount,
	})

	res := &QuoteResult{Breakdown: breakdown, Promo: promo}
	if rate.Kind == RatePack {
		res.Pack = pack
	}
	return res, nil
}

// ValidatePromo checks existence, single-use, expiry and email scope. It
// does not burn the code; that happens only when a reservation commits.
func (s *Service) ValidatePromo(ctx context.Context, code, email string) (*domain.PromoCode, error) {
	promo, err := s.promos.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromoInvalid
		}
		return nil, err
	}
	if promo.Used || !promo.MatchesEmail(email) {
		return nil, ErrPromoInvalid
	}
	if promo.IsExpired(s.now()) {
		return nil, ErrPromoExpired
	}
	return promo, nil
}

// CreatePromo registers a new code; when none is supplied a random one is
// generated.
func (s *Service) CreatePromo(ctx context.Context, req CreatePromoRequest) (*domain.PromoCode, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		code = "PROMO-" + strings.ToUpper(uuid.NewString()[:8])
	}
	promo := &domain.PromoCode{
		Code:            code,
		DiscountPercent: req.DiscountPercent,
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		ExpiresAt:       req.ExpiresAt,
	}
	if err := s.promos.Create(ctx, promo); err != nil {
		return nil, err
	}
	return promo, nil
}

// RedeemPromo burns a validated code; a lost race against another
// redemption surfaces as ErrPromoInvalid.
func (s *Service) RedeemPromo(ctx context.Context, promoID int64) error {
	ok, err := s.promos.MarkUsed(ctx, promoID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPromoInvalid
	}
	return nil
}
