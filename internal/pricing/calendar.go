// Package pricing детерминированный движок цен и доступности:
// классификация дат, базовые цены, пайплайн скидок, рабочие дни и сетка слотов.
// Все функции чистые: текущая дата всегда передается параметром.
package pricing

import "time"

// DayClass is the pricing classification of a calendar date
type DayClass string

const (
	ClassNormal  DayClass = "normal"
	ClassWeekend DayClass = "weekend"
	ClassHoliday DayClass = "holiday"
)

// Calendar answers date classification questions against an injected,
// year-keyed holiday table. Holiday lists are static per year and must be
// refreshed in configuration; KnownYear exposes staleness to callers.
//
// Two different "weekend" definitions coexist deliberately:
// IsPricingWeekend treats Friday-Sunday as weekend (surcharge pricing),
// IsBusinessDay treats only Saturday-Sunday as non-working (eligibility
// windows). They must stay separate predicates.
type Calendar struct {
	holidays map[string]struct{} // key: YYYY-MM-DD
	years    map[int]struct{}
}

// NewCalendar builds a calendar from a year-keyed holiday table.
// Dates listed under a wrong year key are still honored by date.
func NewCalendar(holidaysByYear map[int][]time.Time) *Calendar {
	c := &Calendar{
		holidays: make(map[string]struct{}),
		years:    make(map[int]struct{}),
	}
	for year, dates := range holidaysByYear {
		c.years[year] = struct{}{}
		for _, d := range dates {
			c.holidays[dateKey(d)] = struct{}{}
		}
	}
	return c
}

// KnownYear reports whether the holiday table carries an entry for year.
// An unknown year classifies as if it had no holidays; callers that care
// about stale configuration should check this explicitly.
func (c *Calendar) KnownYear(year int) bool {
	_, ok := c.years[year]
	return ok
}

// IsHoliday reports whether date is in the holiday table
func (c *Calendar) IsHoliday(date time.Time) bool {
	_, ok := c.holidays[dateKey(date)]
	return ok
}

// IsPricingWeekend reports whether date counts as weekend for pricing.
// Friday, Saturday and Sunday carry the weekend tier.
func (c *Calendar) IsPricingWeekend(date time.Time) bool {
	switch date.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}

// IsBusinessDay reports whether date counts towards eligibility windows.
// Saturday, Sunday and listed holidays are not business days.
func (c *Calendar) IsBusinessDay(date time.Time) bool {
	if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		return false
	}
	return !c.IsHoliday(date)
}

// Classify returns the pricing class of a date. Holiday always wins over
// weekend.
func (c *Calendar) Classify(date time.Time) DayClass {
	if c.IsHoliday(date) {
		return ClassHoliday
	}
	if c.IsPricingWeekend(date) {
		return ClassWeekend
	}
	return ClassNormal
}

// DaysUntil returns the whole-day difference between from and date,
// ignoring the time-of-day component. Negative for past dates.
func DaysUntil(from, date time.Time) int {
	fromDay := truncateToDay(from)
	targetDay := truncateToDay(date)
	return int(targetDay.Sub(fromDay).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
