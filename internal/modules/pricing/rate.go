package pricing

import "studiobooking/internal/domain"

type RateKind string

const (
	// RateFlat bills the formula's own price: hourly, or a flat package
	// price regardless of duration.
	RateFlat RateKind = "flat"
	// RatePack prorates an hour-pack: its TTC price spread over the quota.
	RatePack RateKind = "pack"
)

// Rate is the resolved billing basis for one reservation. Resolution picks
// exactly one branch so callers never re-decide pack-vs-formula.
type Rate struct {
	Kind RateKind

	// RateFlat fields
	HourlyHT float64
	FlatHT   float64 // >0 for package formulas, overrides hourly
	// RatePack field
	HourlyTTC float64
}

// ResolveRate picks the billing basis: an active, unexpired pack with
// remaining hours wins over the formula rate.
func ResolveRate(formula *domain.Formula, pack *domain.HourPack, now nowFunc) Rate {
	if pack != nil && pack.IsUsable(now()) {
		return Rate{Kind: RatePack, HourlyTTC: pack.EffectiveHourlyRate()}
	}
	if formula.Kind == domain.FormulaPackage {
		return Rate{Kind: RateFlat, FlatHT: formula.PriceFlat}
	}
	return Rate{Kind: RateFlat, HourlyHT: formula.PriceHour}
}
