package pricing

import (
	"math"
	"time"

	"studiobooking/internal/domain"
)

type nowFunc func() time.Time

// Breakdown is the full price decomposition for an interval. All monetary
// fields are rounded to 2 decimals once, at the very end; intermediates keep
// full float precision so surcharge and discount steps don't compound
// rounding drift.
type Breakdown struct {
	Hours           float64  `json:"hours"`
	PriceHT         float64  `json:"price_ht"`
	PriceTVA        float64  `json:"price_tva"`
	PriceTTC        float64  `json:"price_ttc"`
	OriginalPriceHT float64  `json:"original_price_ht"`
	IsSubscription  bool     `json:"is_subscription"`
	RateKind        RateKind `json:"rate_kind"`
}

// CalcInput is everything Calculate needs; it reads no external state so
// quotes are referentially transparent.
type CalcInput struct {
	Interval        domain.TimeInterval
	Rate            Rate
	Settings        domain.StudioSettings
	DiscountPercent float64 // 0 = no promo
}

// Calculate produces the HT/TVA/TTC breakdown: base from the resolved rate,
// additive night and weekend surcharge percentages, then promo discount,
// then VAT.
func Calculate(in CalcInput) Breakdown {
	hours := in.Interval.Hours()

	var baseHT float64
	switch in.Rate.Kind {
	case RatePack:
		// Pack rate is quoted TTC; back out VAT so the stored breakdown
		// keeps ht + tva == ttc while the client pays the prorated pack price.
		baseHT = in.Rate.HourlyTTC * hours / (1 + in.Settings.VATRate)
	default:
		if in.Rate.FlatHT > 0 {
			baseHT = in.Rate.FlatHT
		} else {
			baseHT = in.Rate.HourlyHT * hours
		}
	}

	surchargePct := 0.0
	if hours > 0 {
		nightFraction := nightHours(in.Interval, in.Settings) / hours
		surchargePct += in.Settings.NightSurchargePercent * nightFraction
	}
	if isWeekend(in.Interval.Start) {
		surchargePct += in.Settings.WeekendSurchargePercent
	}

	grossHT := baseHT * (1 + surchargePct/100)
	netHT := grossHT * (1 - in.DiscountPercent/100)

	tva := netHT * in.Settings.VATRate

	return Breakdown{
		Hours:           hours,
		PriceHT:         round2(netHT),
		PriceTVA:        round2(tva),
		PriceTTC:        round2(netHT + tva),
		OriginalPriceHT: round2(grossHT),
		IsSubscription:  in.Rate.Kind == RatePack,
		RateKind:        in.Rate.Kind,
	}
}

// nightHours returns the hours of the interval falling outside the daytime
// window [night_end, night_start) of its calendar date.
func nightHours(interval domain.TimeInterval, s domain.StudioSettings) float64 {
	day := time.Date(interval.Start.Year(), interval.Start.Month(), interval.Start.Day(), 0, 0, 0, 0, time.UTC)

	morning := domain.TimeInterval{
		Start: day,
		End:   day.Add(clockDuration(s.NightEndTime)),
	}
	evening := domain.TimeInterval{
		Start: day.Add(clockDuration(s.NightStartTime)),
		End:   day.Add(24 * time.Hour),
	}
	return overlapHours(interval, morning) + overlapHours(interval, evening)
}

func overlapHours(a, b domain.TimeInterval) float64 {
	start := a.Start
	if b.Start.After(start) {
		start = b.Start
	}
	end := a.End
	if b.End.Before(end) {
		end = b.End
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start).Hours()
}

func clockDuration(clock string) time.Duration {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
