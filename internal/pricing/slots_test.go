package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aitzhn/PS-BookingService/pkg/types"
)

func TestSlotsForDate(t *testing.T) {
	// 2026-06-01 понедельник, 2026-06-07 воскресенье
	monday := date(2026, time.June, 1)
	sunday := date(2026, time.June, 7)

	weekday := SlotsForDate(monday)
	require.Len(t, weekday, 11)
	assert.Equal(t, types.TimeString("11:00"), weekday[0])
	assert.Equal(t, types.TimeString("18:30"), weekday[len(weekday)-1])

	short := SlotsForDate(sunday)
	require.Len(t, short, 7)
	assert.Equal(t, types.TimeString("11:00"), short[0])
	assert.Equal(t, types.TimeString("15:30"), short[len(short)-1])

	// Суббота использует полную сетку
	saturday := date(2026, time.June, 6)
	assert.Len(t, SlotsForDate(saturday), 11)
}

func TestSlotsForDate_FixedStepGrid(t *testing.T) {
	slots := SlotsForDate(date(2026, time.June, 1))

	for i := 1; i < len(slots); i++ {
		prev, err := slots[i-1].Parse()
		require.NoError(t, err)
		cur, err := slots[i].Parse()
		require.NoError(t, err)

		assert.Equal(t, 45*time.Minute, cur.Sub(prev), "slot %d", i)
	}
}

func TestSlotsForDate_ReturnsCopy(t *testing.T) {
	first := SlotsForDate(date(2026, time.June, 1))
	first[0] = "00:00"

	second := SlotsForDate(date(2026, time.June, 1))
	assert.Equal(t, types.TimeString("11:00"), second[0])
}
