package pricing

import (
	"errors"
	"math"
	"time"

	"coworking/internal/domain"
)

var ErrInvalidInterval = errors.New("end time must be after start time")

// Tier identifies which duration band priced a booking.
type Tier string

const (
	TierHourly   Tier = "hourly"
	TierHalfDay  Tier = "half_day"
	TierFullDay  Tier = "full_day"
	TierMultiDay Tier = "multi_day"
)

const centsPerUnit = 100

// duration discounts per tier, applied before promo codes. Hourly bookings
// never carry one.
const (
	halfDayDiscountPct = 5
	fullDayDiscountPct = 10
)

// PriceFor returns the undiscounted tier price for booking the space over
// [start, end). Pure; safe for live preview.
func PriceFor(space *domain.Space, start, end time.Time) (int64, error) {
	amount, _, err := tierPrice(space, start, end)
	return amount, err
}

func tierPrice(space *domain.Space, start, end time.Time) (int64, Tier, error) {
	if !end.After(start) {
		return 0, "", ErrInvalidInterval
	}

	hours := end.Sub(start).Hours()
	switch {
	case hours <= 4:
		return int64(math.Ceil(hours)) * space.HourlyRateCents, TierHourly, nil
	case hours <= 8:
		return int64(math.Round(float64(space.DailyRateCents) / 2)), TierHalfDay, nil
	case hours < 24:
		return space.DailyRateCents, TierFullDay, nil
	default:
		return int64(math.Ceil(hours/24)) * space.DailyRateCents, TierMultiDay, nil
	}
}

// Quote breaks a booking price into its parts: the tier price, the duration
// discount, and the promo deduction. Amount is rounded to a whole currency
// unit and never negative.
type Quote struct {
	Tier          Tier  `json:"tier"`
	BaseCents     int64 `json:"base_cents"`
	DiscountCents int64 `json:"discount_cents"`
	PromoCents    int64 `json:"promo_cents"`
	AmountCents   int64 `json:"amount_cents"`
}

// QuoteFor prices a booking the way the reservation flow stamps it:
// tier price, then the duration discount, then the flat promo deduction.
// Unknown promo codes are a no-op, never an error.
func QuoteFor(space *domain.Space, start, end time.Time, promoCode string) (*Quote, error) {
	base, tier, err := tierPrice(space, start, end)
	if err != nil {
		return nil, err
	}

	var discount int64
	switch tier {
	case TierHalfDay:
		discount = pctOf(base, halfDayDiscountPct)
	case TierFullDay, TierMultiDay:
		discount = pctOf(base, fullDayDiscountPct)
	}

	promo := promoDeduction(promoCode)

	amount := roundToUnit(base - discount - promo)
	if amount < 0 {
		amount = 0
	}

	return &Quote{
		Tier:          tier,
		BaseCents:     base,
		DiscountCents: discount,
		PromoCents:    promo,
		AmountCents:   amount,
	}, nil
}

func pctOf(cents int64, pct int64) int64 {
	return int64(math.Round(float64(cents*pct) / 100))
}

// roundToUnit rounds cents to the nearest whole currency unit.
func roundToUnit(cents int64) int64 {
	if cents <= 0 {
		return cents
	}
	return (cents + centsPerUnit/2) / centsPerUnit * centsPerUnit
}
