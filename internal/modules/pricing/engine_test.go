package pricing

import (
	"testing"
	"time"

	"coworking/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testSpace() *domain.Space {
	return &domain.Space{
		ID:              1,
		Name:            "Meeting Room A",
		Type:            domain.SpaceMeetingRoom,
		HourlyRateCents: 50000,  // 500 units
		DailyRateCents:  300000, // 3000 units
	}
}

func at(hour int) time.Time {
	return time.Date(2026, 9, 14, hour, 0, 0, 0, time.UTC)
}

func TestPriceFor_HourlyTier(t *testing.T) {
	space := testSpace()

	price, err := PriceFor(space, at(9), at(12))
	assert.NoError(t, err)
	assert.Equal(t, int64(150000), price) // 3h * 500

	// partial hours round up
	price, err = PriceFor(space, at(9), at(9).Add(90*time.Minute))
	assert.NoError(t, err)
	assert.Equal(t, int64(100000), price) // ceil(1.5h) = 2h
}

func TestPriceFor_HalfDayTier(t *testing.T) {
	space := testSpace()

	price, err := PriceFor(space, at(9), at(15))
	assert.NoError(t, err)
	assert.Equal(t, int64(150000), price) // round(3000/2) = 1500
}

func TestPriceFor_FullDayTier(t *testing.T) {
	space := testSpace()

	price, err := PriceFor(space, at(9), at(19))
	assert.NoError(t, err)
	assert.Equal(t, int64(300000), price) // flat daily for 10h
}

func TestPriceFor_MultiDayTier(t *testing.T) {
	space := testSpace()

	price, err := PriceFor(space, at(9), at(9).Add(30*time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, int64(600000), price) // ceil(30/24) = 2 days

	price, err = PriceFor(space, at(9), at(9).Add(24*time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, int64(300000), price) // exactly one day
}

func TestPriceFor_InvalidInterval(t *testing.T) {
	space := testSpace()

	_, err := PriceFor(space, at(12), at(9))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = PriceFor(space, at(9), at(9))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestQuoteFor_NoDiscountOnHourly(t *testing.T) {
	space := testSpace()

	q, err := QuoteFor(space, at(9), at(11), "")
	assert.NoError(t, err)
	assert.Equal(t, TierHourly, q.Tier)
	assert.Equal(t, int64(0), q.DiscountCents)
	assert.Equal(t, int64(100000), q.AmountCents)
}

func TestQuoteFor_HalfDayDiscount(t *testing.T) {
	space := testSpace()

	q, err := QuoteFor(space, at(9), at(15), "")
	assert.NoError(t, err)
	assert.Equal(t, TierHalfDay, q.Tier)
	assert.Equal(t, int64(150000), q.BaseCents)
	assert.Equal(t, int64(7500), q.DiscountCents) // 5% of 1500
	assert.Equal(t, int64(142500), q.AmountCents)
}

func TestQuoteFor_FullDayDiscount(t *testing.T) {
	space := testSpace()

	q, err := QuoteFor(space, at(9), at(19), "")
	assert.NoError(t, err)
	assert.Equal(t, TierFullDay, q.Tier)
	assert.Equal(t, int64(30000), q.DiscountCents) // 10% of 3000
	assert.Equal(t, int64(270000), q.AmountCents)
}

func TestQuoteFor_PromoAppliedAfterDurationDiscount(t *testing.T) {
	space := testSpace()

	q, err := QuoteFor(space, at(9), at(15), "OPENDESK10")
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), q.PromoCents)
	assert.Equal(t, int64(141500), q.AmountCents) // 1500 - 5% - 10
}

func TestQuoteFor_UnknownPromoIsNoOp(t *testing.T) {
	space := testSpace()

	q, err := QuoteFor(space, at(9), at(11), "NOSUCHCODE")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), q.PromoCents)
	assert.Equal(t, int64(100000), q.AmountCents)
}

func TestQuoteFor_NeverNegative(t *testing.T) {
	cheap := &domain.Space{
		ID:              2,
		Name:            "Hot Desk 1",
		Type:            domain.SpaceDesk,
		HourlyRateCents: 500, // 5 units/h
		DailyRateCents:  2500,
	}

	q, err := QuoteFor(cheap, at(9), at(10), "TEAMDAY20")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), q.AmountCents)
}
