package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("11:45")
	require.NoError(t, err)
	assert.Equal(t, "11:45", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("11-45")
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("11:00")
	require.NoError(t, err)

	end, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "11:45", end.String())

	// Переход через полночь недопустим
	late, err := NewTimeStringFromString("23:30")
	require.NoError(t, err)
	_, err = late.AddMinutes(45)
	assert.Error(t, err)
}

func TestTimeString_Comparison(t *testing.T) {
	a, _ := NewTimeStringFromString("11:00")
	b, _ := NewTimeStringFromString("11:45")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// PostgreSQL TIME приходит с секундами
	require.NoError(t, ts.Scan("11:00:00"))
	assert.Equal(t, "11:00", ts.String())

	require.NoError(t, ts.Scan([]byte("18:30:00")))
	assert.Equal(t, "18:30", ts.String())
}

func TestTimeString_IsZero(t *testing.T) {
	var empty TimeString
	assert.True(t, empty.IsZero())

	ts := NewTimeString(time.Date(2026, time.March, 4, 11, 0, 0, 0, time.UTC))
	assert.False(t, ts.IsZero())
	assert.Equal(t, "11:00", ts.String())
}
