package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aitzhn/PS-BookingService/internal/domain"
	"github.com/aitzhn/PS-BookingService/pkg/types"
)

type mockReservationRepo struct {
	reservations []*domain.Reservation
	err          error

	gotFilter domain.RoomReservationsFilter
}

func (m *mockReservationRepo) GetByRoomWithFilter(_ context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error) {
	m.gotFilter = filter
	return m.reservations, m.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func activeReservation(start types.TimeString) *domain.Reservation {
	return &domain.Reservation{
		ID:              1,
		UserID:          10,
		RoomID:          1,
		StartTime:       start,
		DurationMinutes: domain.SlotDurationMinutes,
		Status:          domain.StatusConfirmed,
	}
}

func TestUseCase_Execute_WeekdayGrid(t *testing.T) {
	repo := &mockReservationRepo{}
	uc := NewUseCase(repo, noopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)})

	// Среда: полная сетка из 11 слотов
	resp, err := uc.Execute(context.Background(), &Request{
		RoomID: 1,
		Date:   time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 11)
	assert.Equal(t, "11:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "18:30", resp.Slots[10].StartTime.String())
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
		assert.Equal(t, domain.SlotDurationMinutes, slot.DurationMinutes)
	}
}

func TestUseCase_Execute_SundayGrid(t *testing.T) {
	repo := &mockReservationRepo{}
	uc := NewUseCase(repo, noopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)})

	// Воскресенье: укороченная сетка из 7 слотов
	resp, err := uc.Execute(context.Background(), &Request{
		RoomID: 1,
		Date:   time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 7)
	assert.Equal(t, "11:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "15:30", resp.Slots[6].StartTime.String())
}

func TestUseCase_Execute_PastDateReturnsEmpty(t *testing.T) {
	repo := &mockReservationRepo{}
	uc := NewUseCase(repo, noopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID: 1,
		Date:   time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_TodayFiltersStartedSlots(t *testing.T) {
	repo := &mockReservationRepo{}
	uc := NewUseCase(repo, noopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: time.Date(2026, time.March, 4, 13, 0, 0, 0, time.UTC)})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID: 1,
		Date:   time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Слоты 11:00, 11:45 и 12:30 уже начались к 13:00
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "13:15", resp.Slots[0].StartTime.String())
	require.Len(t, resp.Slots, 8)
}

func TestUseCase_Execute_OverlapMarksUnavailable(t *testing.T) {
	repo := &mockReservationRepo{
		reservations: []*domain.Reservation{activeReservation(mustTime(t, "11:45"))},
	}
	uc := NewUseCase(repo, noopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID: 1,
		Date:   time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 11)

	byStart := map[string]bool{}
	for _, slot := range resp.Slots {
		byStart[slot.StartTime.String()] = slot.Available
	}

	// Бронирование 11:45-12:30 закрывает ровно один слот.
	// Граничные слоты 11:00-11:45 и 12:30-13:15 остаются доступны.
	assert.True(t, byStart["11:00"])
	assert.False(t, byStart["11:45"])
	assert.True(t, byStart["12:30"])
}

func TestUseCase_Execute_InactiveReservationIgnored(t *testing.T) {
	cancelled := activeReservation(mustTime(t, "11:45"))
	cancelled.Status = domain.StatusCancelledByUser

	repo := &mockReservationRepo{reservations: []*domain.Reservation{cancelled}}
	uc := NewUseCase(repo, noopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID: 1,
		Date:   time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
	}
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := NewUseCase(&mockReservationRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RoomID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	repo := &mockReservationRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, noopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)})

	_, err := uc.Execute(context.Background(), &Request{
		RoomID: 1,
		Date:   time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInternal)
}
