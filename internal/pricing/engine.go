package pricing

import (
	"math"
	"time"
)

// Tiers базовые цены слота по классу даты
type Tiers struct {
	Normal  float64
	Weekend float64
	Holiday float64
}

// Rates параметры скидок. Проценты в диапазоне 0-100.
type Rates struct {
	LastMinutePercent    float64 // скидка за бронирование в последний момент
	LastMinuteWindowDays int     // окно в днях включительно (0..N дней до даты)
	LoyaltySecondPercent float64 // скидка на 2-е бронирование
	LoyaltyThirdPercent  float64 // скидка на 3-е бронирование
	LoyaltyFourthPercent float64 // скидка на 4-е и последующие
	ReferralPercent      float64 // скидка приглашенному на первое бронирование
}

// DefaultTiers цены по умолчанию, применяются если в конфиге не задано иное
var DefaultTiers = Tiers{
	Normal:  1500,
	Weekend: 2000,
	Holiday: 2500,
}

// DefaultRates ставки скидок по умолчанию
var DefaultRates = Rates{
	LastMinutePercent:    15,
	LastMinuteWindowDays: 3,
	LoyaltySecondPercent: 5,
	LoyaltyThirdPercent:  10,
	LoyaltyFourthPercent: 15,
	ReferralPercent:      10,
}

// Engine вычисляет цены и скидки. Не имеет состояния кроме конфигурации,
// безопасен для конкурентного использования.
type Engine struct {
	calendar *Calendar
	tiers    Tiers
	rates    Rates
	steps    []discountStep
}

// NewEngine создает движок цен с заданным календарем, тарифами и ставками.
// Порядок шагов скидок фиксирован и значим: каждый следующий шаг считается
// от цены после предыдущего.
func NewEngine(calendar *Calendar, tiers Tiers, rates Rates) *Engine {
	e := &Engine{
		calendar: calendar,
		tiers:    tiers,
		rates:    rates,
	}
	e.steps = []discountStep{
		lastMinuteStep{},
		loyaltyTierStep{},
		referralStep{},
		pointsStep{},
	}
	return e
}

// Calendar возвращает календарь движка
func (e *Engine) Calendar() *Calendar {
	return e.calendar
}

// BasePrice возвращает цену слота на дату. Непустой override возвращается
// как есть (включая 0 - бесплатный промо-день); nil означает отсутствие
// переопределения, и цена берется из тарифа по классу даты.
func (e *Engine) BasePrice(date time.Time, override *float64) float64 {
	if override != nil {
		return *override
	}

	switch e.calendar.Classify(date) {
	case ClassHoliday:
		return e.tiers.Holiday
	case ClassWeekend:
		return e.tiers.Weekend
	default:
		return e.tiers.Normal
	}
}

// round2 округляет денежную сумму до 2 знаков
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
