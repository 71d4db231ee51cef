package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// testCalendar календарь с праздниками 2026 года
func testCalendar() *Calendar {
	return NewCalendar(map[int][]time.Time{
		2026: {
			date(2026, time.January, 1),
			date(2026, time.January, 2),
			date(2026, time.March, 8),
			date(2026, time.March, 21),
			date(2026, time.March, 22),
			date(2026, time.March, 23),
			date(2026, time.May, 1),
			date(2026, time.December, 16),
		},
	})
}

func TestCalendar_Classify(t *testing.T) {
	cal := testCalendar()

	tests := []struct {
		name string
		date time.Time
		want DayClass
	}{
		{"weekday holiday", date(2026, time.January, 1), ClassHoliday}, // четверг
		{"monday holiday", date(2026, time.March, 23), ClassHoliday},
		{"holiday on sunday overrides weekend", date(2026, time.March, 8), ClassHoliday},
		{"friday is weekend for pricing", date(2026, time.January, 9), ClassWeekend},
		{"saturday", date(2026, time.January, 10), ClassWeekend},
		{"sunday", date(2026, time.January, 11), ClassWeekend},
		{"plain monday", date(2026, time.January, 12), ClassNormal},
		{"plain wednesday", date(2026, time.January, 14), ClassNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cal.Classify(tt.date))
		})
	}
}

func TestCalendar_AllListedHolidaysClassifyAsHoliday(t *testing.T) {
	holidays := []time.Time{
		date(2026, time.January, 1),
		date(2026, time.January, 2),
		date(2026, time.March, 8),
		date(2026, time.March, 21),
		date(2026, time.March, 22),
		date(2026, time.March, 23),
		date(2026, time.May, 1),
		date(2026, time.December, 16),
	}
	cal := NewCalendar(map[int][]time.Time{2026: holidays})

	for _, h := range holidays {
		assert.Equal(t, ClassHoliday, cal.Classify(h), "date %s", h.Format("2006-01-02"))
	}
}

func TestCalendar_TwoWeekendDefinitionsDiffer(t *testing.T) {
	cal := testCalendar()

	friday := date(2026, time.January, 9)

	// Пятница - выходной для цен, но рабочий день для окон отмены
	assert.True(t, cal.IsPricingWeekend(friday))
	assert.True(t, cal.IsBusinessDay(friday))

	saturday := date(2026, time.January, 10)
	assert.True(t, cal.IsPricingWeekend(saturday))
	assert.False(t, cal.IsBusinessDay(saturday))

	// Праздник среди недели - не выходной для цен (weekend), но и не рабочий день
	holiday := date(2026, time.January, 1)
	assert.False(t, cal.IsPricingWeekend(holiday))
	assert.False(t, cal.IsBusinessDay(holiday))
}

func TestCalendar_KnownYear(t *testing.T) {
	cal := testCalendar()

	assert.True(t, cal.KnownYear(2026))
	assert.False(t, cal.KnownYear(2027))

	// Неизвестный год классифицируется как год без праздников
	assert.Equal(t, ClassNormal, cal.Classify(date(2027, time.March, 23)))
}

func TestCalendar_LocationIndependentHolidayLookup(t *testing.T) {
	cal := testCalendar()

	almaty, err := time.LoadLocation("Asia/Almaty")
	require.NoError(t, err)

	inAlmaty := time.Date(2026, time.May, 1, 23, 30, 0, 0, almaty)
	assert.True(t, cal.IsHoliday(inAlmaty))
}

func TestDaysUntil(t *testing.T) {
	ref := date(2026, time.April, 6)

	assert.Equal(t, 0, DaysUntil(ref, date(2026, time.April, 6)))
	assert.Equal(t, 3, DaysUntil(ref, date(2026, time.April, 9)))
	assert.Equal(t, -1, DaysUntil(ref, date(2026, time.April, 5)))

	// Компонент времени игнорируется
	lateEvening := time.Date(2026, time.April, 6, 23, 59, 0, 0, time.UTC)
	earlyMorning := time.Date(2026, time.April, 7, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysUntil(lateEvening, earlyMorning))
}
