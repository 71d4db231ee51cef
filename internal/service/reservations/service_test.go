package reservations

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aitzhn/PS-BookingService/internal/domain"
	reservationRepo "github.com/aitzhn/PS-BookingService/internal/infra/storage/reservation"
	"github.com/aitzhn/PS-BookingService/internal/pricing"
	"github.com/aitzhn/PS-BookingService/internal/service/reservations/models"
	"github.com/aitzhn/PS-BookingService/pkg/types"
)

type mockReservationRepo struct {
	reservation *domain.Reservation
	list        []*domain.Reservation

	cancelledID     int64
	cancelledStatus domain.ReservationStatus
	cancelledReason string
	gotUserID       int64
	gotStatus       *domain.ReservationStatus
	gotFilter       domain.RoomReservationsFilter
}

func (m *mockReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if m.reservation == nil || m.reservation.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return m.reservation, nil
}

func (m *mockReservationRepo) GetByUserID(_ context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	m.gotUserID = userID
	m.gotStatus = status
	return m.list, nil
}

func (m *mockReservationRepo) GetByRoomWithFilter(_ context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error) {
	m.gotFilter = filter
	return m.list, nil
}

func (m *mockReservationRepo) UpdateStatus(_ context.Context, _ int64, _ domain.ReservationStatus) error {
	return nil
}

func (m *mockReservationRepo) Cancel(_ context.Context, id int64, status domain.ReservationStatus, reason string) error {
	m.cancelledID = id
	m.cancelledStatus = status
	m.cancelledReason = reason
	return nil
}

type staticManagers struct {
	ids map[int64]bool
}

func (s staticManagers) IsManager(userID int64) bool {
	return s.ids[userID]
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

func testReservation(t *testing.T) *domain.Reservation {
	return &domain.Reservation{
		ID:              7,
		UserID:          42,
		RoomID:          1,
		Date:            time.Date(2026, time.April, 20, 0, 0, 0, 0, time.UTC),
		StartTime:       mustTime(t, "11:00"),
		DurationMinutes: domain.SlotDurationMinutes,
		Status:          domain.StatusConfirmed,
		PaymentStatus:   domain.PaymentUnpaid,
		BasePrice:       1500,
		FinalPrice:      1500,
	}
}

func newTestService(repo *mockReservationRepo, now time.Time) *Service {
	calendar := pricing.NewCalendar(map[int][]time.Time{2026: {}})
	return NewService(repo, calendar, staticManagers{ids: map[int64]bool{1: true}}, 5, noopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})
}

func TestService_GetByID_Owner(t *testing.T) {
	repo := &mockReservationRepo{reservation: testReservation(t)}
	svc := newTestService(repo, time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC))

	resp, err := svc.GetByID(context.Background(), 7, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2026-04-20", resp.Date)
}

func TestService_GetByID_Manager(t *testing.T) {
	repo := &mockReservationRepo{reservation: testReservation(t)}
	svc := newTestService(repo, time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC))

	_, err := svc.GetByID(context.Background(), 7, 1)
	require.NoError(t, err)
}

func TestService_GetByID_AccessDenied(t *testing.T) {
	repo := &mockReservationRepo{reservation: testReservation(t)}
	svc := newTestService(repo, time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC))

	_, err := svc.GetByID(context.Background(), 7, 55)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := newTestService(&mockReservationRepo{}, time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC))

	_, err := svc.GetByID(context.Background(), 99, 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_GetUserReservations_AccessControl(t *testing.T) {
	repo := &mockReservationRepo{}
	svc := newTestService(repo, time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC))

	// Свою историю видит любой
	_, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{UserID: 42, RequesterID: 42})
	require.NoError(t, err)

	// Чужую историю видит только менеджер
	_, err = svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{UserID: 42, RequesterID: 1})
	require.NoError(t, err)

	_, err = svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{UserID: 42, RequesterID: 55})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetUserReservations_InvalidStatus(t *testing.T) {
	repo := &mockReservationRepo{}
	svc := newTestService(repo, time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC))

	bogus := "booked"
	_, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{UserID: 42, RequesterID: 42, Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetRoomReservations_ManagerOnly(t *testing.T) {
	repo := &mockReservationRepo{}
	svc := newTestService(repo, time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC))

	_, err := svc.GetRoomReservations(context.Background(), &models.GetRoomReservationsRequest{UserID: 42, RoomID: 1})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetRoomReservations(context.Background(), &models.GetRoomReservationsRequest{UserID: 1, RoomID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.gotFilter.RoomID)
}

func TestService_Cancel_OwnerWithinWindow(t *testing.T) {
	repo := &mockReservationRepo{reservation: testReservation(t)}
	svc := newTestService(repo, time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC))

	err := svc.Cancel(context.Background(), 7, &models.CancelReservationRequest{UserID: 42, CancellationReason: "передумал"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByUser, repo.cancelledStatus)
	assert.Equal(t, "передумал", repo.cancelledReason)
}

func TestService_Cancel_OwnerTooLate(t *testing.T) {
	// Бронь в среду 8.04, сегодня понедельник 6.04: 2 рабочих дня при требуемых 5
	reservation := testReservation(t)
	reservation.Date = time.Date(2026, time.April, 8, 0, 0, 0, 0, time.UTC)
	repo := &mockReservationRepo{reservation: reservation}
	svc := newTestService(repo, time.Date(2026, time.April, 6, 10, 0, 0, 0, time.UTC))

	err := svc.Cancel(context.Background(), 7, &models.CancelReservationRequest{UserID: 42, CancellationReason: ""})
	assert.ErrorIs(t, err, ErrCancelTooLate)
}

func TestService_Cancel_ManagerBypassesWindow(t *testing.T) {
	reservation := testReservation(t)
	reservation.Date = time.Date(2026, time.April, 8, 0, 0, 0, 0, time.UTC)
	repo := &mockReservationRepo{reservation: reservation}
	svc := newTestService(repo, time.Date(2026, time.April, 6, 10, 0, 0, 0, time.UTC))

	err := svc.Cancel(context.Background(), 7, &models.CancelReservationRequest{UserID: 1, CancellationReason: "форс-мажор студии"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByStudio, repo.cancelledStatus)
}

func TestService_Cancel_StrangerDenied(t *testing.T) {
	repo := &mockReservationRepo{reservation: testReservation(t)}
	svc := newTestService(repo, time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC))

	err := svc.Cancel(context.Background(), 7, &models.CancelReservationRequest{UserID: 55, CancellationReason: ""})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Cancel_CompletedNotCancellable(t *testing.T) {
	reservation := testReservation(t)
	reservation.Status = domain.StatusCompleted
	repo := &mockReservationRepo{reservation: reservation}
	svc := newTestService(repo, time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC))

	err := svc.Cancel(context.Background(), 7, &models.CancelReservationRequest{UserID: 42, CancellationReason: ""})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_Cancel_ReasonTooLong(t *testing.T) {
	repo := &mockReservationRepo{reservation: testReservation(t)}
	svc := newTestService(repo, time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC))

	err := svc.Cancel(context.Background(), 7,
		&models.CancelReservationRequest{UserID: 42, CancellationReason: strings.Repeat("x", domain.MaxCancellationReasonLength+1)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
