package pricing

import (
	"fmt"
	"time"

	"github.com/aitzhn/PS-BookingService/internal/domain"
)

// DiscountKind вид скидки в breakdown
type DiscountKind string

const (
	DiscountLastMinute  DiscountKind = "last_minute"
	DiscountLoyaltyTier DiscountKind = "loyalty_tier"
	DiscountReferral    DiscountKind = "referral"
	DiscountPoints      DiscountKind = "points"
)

// AppliedDiscount одна примененная скидка в breakdown квоты
type AppliedDiscount struct {
	Kind    DiscountKind
	Percent float64 // 0 для списания баллов
	Amount  float64 // сумма уменьшения цены, всегда >= 0
	Points  int     // фактически списанные баллы (только для DiscountPoints)
}

// QuoteContext входные данные расчета скидок.
// ReferenceDate - "сегодня" для расчета last-minute окна; передается явно,
// чтобы расчет был детерминированным и тестируемым.
type QuoteContext struct {
	ReferenceDate time.Time

	Blocks int // число бронируемых блоков, минимум 1

	CompletedReservations int  // завершенные бронирования пользователя
	Referred              bool // пользователь пришел по реферальной ссылке
	HasReservations       bool // есть ли у пользователя бронирования (любой статус)
	PointsToRedeem        int  // запрошенное списание баллов

	// Флаги отключения отдельных шагов
	DisableLastMinute bool
	DisableLoyalty    bool
	DisableReferral   bool
}

// Quote результат расчета цены
type Quote struct {
	BasePrice     float64 // цена одного блока до скидок
	OriginalPrice float64 // BasePrice * Blocks
	FinalPrice    float64 // цена после всех скидок, >= 0
	TotalDiscount float64 // OriginalPrice - FinalPrice
	Breakdown     []AppliedDiscount
}

// discountStep один шаг пайплайна скидок. Каждый шаг получает цену после
// предыдущих шагов и возвращает либо примененную скидку и новую цену,
// либо nil, если шаг неприменим.
type discountStep interface {
	apply(e *Engine, date time.Time, qctx QuoteContext, running float64) (*AppliedDiscount, float64)
}

// ApplyDiscounts прогоняет цену через пайплайн скидок в фиксированном порядке:
// last-minute -> loyalty-tier -> referral -> points. Каждый шаг считается от
// текущей цены, не от исходной. Итоговая цена не бывает отрицательной.
func (e *Engine) ApplyDiscounts(date time.Time, basePrice float64, qctx QuoteContext) (*Quote, error) {
	if basePrice < 0 {
		return nil, fmt.Errorf("%w: base price %.2f", ErrNegativePrice, basePrice)
	}
	if qctx.PointsToRedeem < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativePoints, qctx.PointsToRedeem)
	}
	if qctx.ReferenceDate.IsZero() {
		return nil, ErrMissingReferenceDate
	}
	if qctx.Blocks == 0 {
		qctx.Blocks = 1
	}
	if qctx.Blocks < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlocks, qctx.Blocks)
	}

	original := round2(basePrice * float64(qctx.Blocks))
	running := original
	breakdown := make([]AppliedDiscount, 0, len(e.steps))

	for _, step := range e.steps {
		applied, next := step.apply(e, date, qctx, running)
		if applied != nil {
			breakdown = append(breakdown, *applied)
			running = next
		}
	}

	if running < 0 {
		running = 0
	}

	return &Quote{
		BasePrice:     round2(basePrice),
		OriginalPrice: original,
		FinalPrice:    round2(running),
		TotalDiscount: round2(original - running),
		Breakdown:     breakdown,
	}, nil
}

// lastMinuteStep скидка за бронирование в пределах окна от reference date.
// Окно включительное: 0..WindowDays дней до даты бронирования.
type lastMinuteStep struct{}

func (lastMinuteStep) apply(e *Engine, date time.Time, qctx QuoteContext, running float64) (*AppliedDiscount, float64) {
	if qctx.DisableLastMinute || e.rates.LastMinutePercent <= 0 {
		return nil, running
	}

	days := DaysUntil(qctx.ReferenceDate, date)
	if days < 0 || days > e.rates.LastMinuteWindowDays {
		return nil, running
	}

	amount := round2(running * e.rates.LastMinutePercent / 100)
	return &AppliedDiscount{
		Kind:    DiscountLastMinute,
		Percent: e.rates.LastMinutePercent,
		Amount:  amount,
	}, running - amount
}

// loyaltyTierStep скидка по числу завершенных бронирований.
// Предстоящее бронирование считается (completed+1)-м:
// 2-е дает LoyaltySecond, 3-е - LoyaltyThird, 4-е и далее - LoyaltyFourth.
type loyaltyTierStep struct{}

func (loyaltyTierStep) apply(e *Engine, _ time.Time, qctx QuoteContext, running float64) (*AppliedDiscount, float64) {
	if qctx.DisableLoyalty {
		return nil, running
	}

	var percent float64
	switch ordinal := qctx.CompletedReservations + 1; {
	case ordinal >= 4:
		percent = e.rates.LoyaltyFourthPercent
	case ordinal == 3:
		percent = e.rates.LoyaltyThirdPercent
	case ordinal == 2:
		percent = e.rates.LoyaltySecondPercent
	}

	if percent <= 0 {
		return nil, running
	}

	amount := round2(running * percent / 100)
	return &AppliedDiscount{
		Kind:    DiscountLoyaltyTier,
		Percent: percent,
		Amount:  amount,
	}, running - amount
}

// referralStep разовая скидка приглашенному пользователю на первое бронирование
type referralStep struct{}

func (referralStep) apply(e *Engine, _ time.Time, qctx QuoteContext, running float64) (*AppliedDiscount, float64) {
	if qctx.DisableReferral || !qctx.Referred || qctx.HasReservations {
		return nil, running
	}
	if e.rates.ReferralPercent <= 0 {
		return nil, running
	}

	amount := round2(running * e.rates.ReferralPercent / 100)
	return &AppliedDiscount{
		Kind:    DiscountReferral,
		Percent: e.rates.ReferralPercent,
		Amount:  amount,
	}, running - amount
}

// pointsStep списание баллов лояльности. Запрошенное число баллов
// округляется вниз до шага domain.PointsRedeemStep, один балл равен
// одной денежной единице.
// Списываются все округленные баллы, но цена не уходит в минус: Amount
// в breakdown равен фактическому уменьшению цены.
type pointsStep struct{}

func (pointsStep) apply(_ *Engine, _ time.Time, qctx QuoteContext, running float64) (*AppliedDiscount, float64) {
	points := qctx.PointsToRedeem - qctx.PointsToRedeem%domain.PointsRedeemStep
	if points <= 0 {
		return nil, running
	}

	reduction := float64(points)
	if reduction > running {
		reduction = running
	}
	reduction = round2(reduction)

	return &AppliedDiscount{
		Kind:   DiscountPoints,
		Amount: reduction,
		Points: points,
	}, running - reduction
}
