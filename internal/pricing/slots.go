package pricing

import (
	"time"

	"github.com/aitzhn/PS-BookingService/pkg/types"
)

// Сетка слотов студии фиксированная: шаг 45 минут, по воскресеньям
// укороченный день. Списки статические - реальная занятость слотов
// накладывается поверх по данным хранилища.
var (
	weekdaySlotStarts = []types.TimeString{
		"11:00", "11:45", "12:30", "13:15", "14:00", "14:45",
		"15:30", "16:15", "17:00", "17:45", "18:30",
	}

	sundaySlotStarts = []types.TimeString{
		"11:00", "11:45", "12:30", "13:15", "14:00", "14:45", "15:30",
	}
)

// SlotsForDate returns the ordered slot start times for a date.
// Sunday has a shortened grid of 7 slots, every other day has 11.
// The returned slice is a copy and safe to mutate.
func SlotsForDate(date time.Time) []types.TimeString {
	source := weekdaySlotStarts
	if date.Weekday() == time.Sunday {
		source = sundaySlotStarts
	}

	slots := make([]types.TimeString, len(source))
	copy(slots, source)
	return slots
}
