package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aitzhn/PS-BookingService/pkg/ptr"
)

func testEngine() *Engine {
	return NewEngine(testCalendar(), DefaultTiers, DefaultRates)
}

func TestEngine_BasePrice(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name     string
		date     time.Time
		override *float64
		want     float64
	}{
		{"normal weekday", date(2026, time.January, 12), nil, 1500},
		{"friday weekend tier", date(2026, time.January, 9), nil, 2000},
		{"saturday weekend tier", date(2026, time.January, 10), nil, 2000},
		{"holiday tier", date(2026, time.January, 1), nil, 2500},
		{"holiday on sunday takes holiday tier", date(2026, time.March, 8), nil, 2500},
		{"override wins on any date", date(2026, time.January, 1), ptr.Ptr(3200.0), 3200},
		{"zero override is honored", date(2026, time.January, 12), ptr.Ptr(0.0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.BasePrice(tt.date, tt.override))
		})
	}
}

func TestEngine_ApplyDiscounts_WorkedExample(t *testing.T) {
	e := testEngine()

	// Опорная дата: понедельник 2026-04-06, бронь на среду 2026-04-08.
	// До брони 2 дня -> last-minute 15%. Третье бронирование -> 10%.
	// Списание 200 баллов.
	quote, err := e.ApplyDiscounts(date(2026, time.April, 8), 1500, QuoteContext{
		ReferenceDate:         date(2026, time.April, 6),
		CompletedReservations: 2,
		PointsToRedeem:        200,
	})
	require.NoError(t, err)

	assert.Equal(t, 1500.0, quote.BasePrice)
	assert.Equal(t, 1500.0, quote.OriginalPrice)
	assert.Equal(t, 947.5, quote.FinalPrice)
	assert.Equal(t, 552.5, quote.TotalDiscount)

	require.Len(t, quote.Breakdown, 3)

	assert.Equal(t, DiscountLastMinute, quote.Breakdown[0].Kind)
	assert.Equal(t, 225.0, quote.Breakdown[0].Amount)

	assert.Equal(t, DiscountLoyaltyTier, quote.Breakdown[1].Kind)
	assert.Equal(t, 10.0, quote.Breakdown[1].Percent)
	assert.Equal(t, 127.5, quote.Breakdown[1].Amount)

	assert.Equal(t, DiscountPoints, quote.Breakdown[2].Kind)
	assert.Equal(t, 200.0, quote.Breakdown[2].Amount)
	assert.Equal(t, 200, quote.Breakdown[2].Points)
}

func TestEngine_ApplyDiscounts_LastMinuteWindow(t *testing.T) {
	e := testEngine()
	ref := date(2026, time.June, 1)

	tests := []struct {
		name     string
		daysOut  int
		expected bool
	}{
		{"same day", 0, true},
		{"one day out", 1, true},
		{"three days out", 3, true},
		{"four days out no discount", 4, false},
		{"week out no discount", 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := e.ApplyDiscounts(ref.AddDate(0, 0, tt.daysOut), 1000, QuoteContext{
				ReferenceDate: ref,
			})
			require.NoError(t, err)

			if tt.expected {
				require.Len(t, quote.Breakdown, 1)
				assert.Equal(t, DiscountLastMinute, quote.Breakdown[0].Kind)
				assert.Equal(t, 850.0, quote.FinalPrice)
			} else {
				assert.Empty(t, quote.Breakdown)
				assert.Equal(t, 1000.0, quote.FinalPrice)
			}
		})
	}
}

func TestEngine_ApplyDiscounts_LoyaltyTiers(t *testing.T) {
	e := testEngine()
	ref := date(2026, time.June, 1)
	// Дата далеко в будущем, чтобы last-minute не мешал
	reservation := ref.AddDate(0, 0, 30)

	tests := []struct {
		completed   int
		wantPercent float64
	}{
		{0, 0},
		{1, 5},
		{2, 10},
		{3, 15},
		{9, 15},
	}

	for _, tt := range tests {
		quote, err := e.ApplyDiscounts(reservation, 1000, QuoteContext{
			ReferenceDate:         ref,
			CompletedReservations: tt.completed,
		})
		require.NoError(t, err)

		if tt.wantPercent == 0 {
			assert.Empty(t, quote.Breakdown, "completed=%d", tt.completed)
			continue
		}

		require.Len(t, quote.Breakdown, 1, "completed=%d", tt.completed)
		assert.Equal(t, DiscountLoyaltyTier, quote.Breakdown[0].Kind)
		assert.Equal(t, tt.wantPercent, quote.Breakdown[0].Percent, "completed=%d", tt.completed)
	}
}

func TestEngine_ApplyDiscounts_ReferralOnlyOnFirstReservation(t *testing.T) {
	e := testEngine()
	ref := date(2026, time.June, 1)
	reservation := ref.AddDate(0, 0, 30)

	quote, err := e.ApplyDiscounts(reservation, 1000, QuoteContext{
		ReferenceDate: ref,
		Referred:      true,
	})
	require.NoError(t, err)
	require.Len(t, quote.Breakdown, 1)
	assert.Equal(t, DiscountReferral, quote.Breakdown[0].Kind)
	assert.Equal(t, 900.0, quote.FinalPrice)

	// Уже есть бронирования - реферальная скидка не применяется
	quote, err = e.ApplyDiscounts(reservation, 1000, QuoteContext{
		ReferenceDate:   ref,
		Referred:        true,
		HasReservations: true,
	})
	require.NoError(t, err)
	assert.Empty(t, quote.Breakdown)
}

func TestEngine_ApplyDiscounts_PointsFlooredAndClamped(t *testing.T) {
	e := testEngine()
	ref := date(2026, time.June, 1)
	reservation := ref.AddDate(0, 0, 30)

	// 250 баллов округляются вниз до 200
	quote, err := e.ApplyDiscounts(reservation, 1000, QuoteContext{
		ReferenceDate:  ref,
		PointsToRedeem: 250,
	})
	require.NoError(t, err)
	require.Len(t, quote.Breakdown, 1)
	assert.Equal(t, 200, quote.Breakdown[0].Points)
	assert.Equal(t, 800.0, quote.FinalPrice)

	// Меньше шага списания - баллы не применяются
	quote, err = e.ApplyDiscounts(reservation, 1000, QuoteContext{
		ReferenceDate:  ref,
		PointsToRedeem: 99,
	})
	require.NoError(t, err)
	assert.Empty(t, quote.Breakdown)

	// Баллов больше цены - итог прижимается к нулю, не уходит в минус
	quote, err = e.ApplyDiscounts(reservation, 1000, QuoteContext{
		ReferenceDate:  ref,
		PointsToRedeem: 5000,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, quote.FinalPrice)
	assert.Equal(t, 1000.0, quote.TotalDiscount)
	require.Len(t, quote.Breakdown, 1)
	assert.Equal(t, 1000.0, quote.Breakdown[0].Amount)
}

func TestEngine_ApplyDiscounts_StepsAreSkippable(t *testing.T) {
	e := testEngine()
	ref := date(2026, time.June, 1)

	// Всё применимо, но last-minute явно выключен
	quote, err := e.ApplyDiscounts(ref.AddDate(0, 0, 1), 1000, QuoteContext{
		ReferenceDate:         ref,
		CompletedReservations: 1,
		DisableLastMinute:     true,
	})
	require.NoError(t, err)
	require.Len(t, quote.Breakdown, 1)
	assert.Equal(t, DiscountLoyaltyTier, quote.Breakdown[0].Kind)

	// Выключены все процентные шаги
	quote, err = e.ApplyDiscounts(ref.AddDate(0, 0, 1), 1000, QuoteContext{
		ReferenceDate:         ref,
		CompletedReservations: 5,
		Referred:              true,
		DisableLastMinute:     true,
		DisableLoyalty:        true,
		DisableReferral:       true,
	})
	require.NoError(t, err)
	assert.Empty(t, quote.Breakdown)
	assert.Equal(t, 1000.0, quote.FinalPrice)
}

func TestEngine_ApplyDiscounts_RunningPriceOrder(t *testing.T) {
	e := testEngine()
	ref := date(2026, time.June, 1)

	// Каждый шаг считается от цены после предыдущего, а не от исходной:
	// 1000 -15% = 850; 5% от 850 = 42.5, а не 50
	quote, err := e.ApplyDiscounts(ref.AddDate(0, 0, 2), 1000, QuoteContext{
		ReferenceDate:         ref,
		CompletedReservations: 1,
	})
	require.NoError(t, err)
	require.Len(t, quote.Breakdown, 2)
	assert.Equal(t, 150.0, quote.Breakdown[0].Amount)
	assert.Equal(t, 42.5, quote.Breakdown[1].Amount)
	assert.Equal(t, 807.5, quote.FinalPrice)
}

func TestEngine_ApplyDiscounts_Blocks(t *testing.T) {
	e := testEngine()
	ref := date(2026, time.June, 1)

	quote, err := e.ApplyDiscounts(ref.AddDate(0, 0, 30), 1500, QuoteContext{
		ReferenceDate: ref,
		Blocks:        2,
	})
	require.NoError(t, err)
	assert.Equal(t, 1500.0, quote.BasePrice)
	assert.Equal(t, 3000.0, quote.OriginalPrice)
	assert.Equal(t, 3000.0, quote.FinalPrice)
}

func TestEngine_ApplyDiscounts_InvalidInput(t *testing.T) {
	e := testEngine()
	ref := date(2026, time.June, 1)

	_, err := e.ApplyDiscounts(ref, -10, QuoteContext{ReferenceDate: ref})
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = e.ApplyDiscounts(ref, 1000, QuoteContext{ReferenceDate: ref, PointsToRedeem: -5})
	assert.ErrorIs(t, err, ErrNegativePoints)

	_, err = e.ApplyDiscounts(ref, 1000, QuoteContext{})
	assert.ErrorIs(t, err, ErrMissingReferenceDate)

	_, err = e.ApplyDiscounts(ref, 1000, QuoteContext{ReferenceDate: ref, Blocks: -1})
	assert.ErrorIs(t, err, ErrInvalidBlocks)
}

func TestEngine_ApplyDiscounts_TotalDiscountInvariant(t *testing.T) {
	e := testEngine()
	ref := date(2026, time.June, 1)

	contexts := []QuoteContext{
		{ReferenceDate: ref},
		{ReferenceDate: ref, CompletedReservations: 3, PointsToRedeem: 700},
		{ReferenceDate: ref, Referred: true, PointsToRedeem: 10000},
	}

	for _, qctx := range contexts {
		quote, err := e.ApplyDiscounts(ref.AddDate(0, 0, 1), 1777, qctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, quote.FinalPrice, 0.0)
		assert.InDelta(t, quote.OriginalPrice-quote.FinalPrice, quote.TotalDiscount, 0.001)
	}
}
