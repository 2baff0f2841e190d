package pricing

import "errors"

var (
	ErrValidation      = errors.New("invalid quote request")
	ErrFormulaNotFound = errors.New("unknown formula")
	// Promo failures are distinct from booking conflicts: the caller can
	// rebook without a code.
	ErrPromoInvalid = errors.New("promo code invalid")
	ErrPromoExpired = errors.New("promo code expired")
)
