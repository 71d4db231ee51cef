package dateprices

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aitzhn/PS-BookingService/internal/domain"
	datepriceRepo "github.com/aitzhn/PS-BookingService/internal/infra/storage/dateprice"
	"github.com/aitzhn/PS-BookingService/internal/service/dateprices/models"
)

type mockDatePriceRepo struct {
	prices    []*domain.DatePrice
	deleteErr error

	upserted   *domain.DatePrice
	deletedFor time.Time
}

func (m *mockDatePriceRepo) GetByRoomAndDate(_ context.Context, _ int64, _ time.Time) (*domain.DatePrice, error) {
	return nil, datepriceRepo.ErrDatePriceNotFound
}

func (m *mockDatePriceRepo) GetByRoomAndRange(_ context.Context, _ int64, _, _ time.Time) ([]*domain.DatePrice, error) {
	return m.prices, nil
}

func (m *mockDatePriceRepo) Upsert(_ context.Context, dp *domain.DatePrice) (*domain.DatePrice, error) {
	created := *dp
	created.ID = 5
	m.upserted = &created
	return &created, nil
}

func (m *mockDatePriceRepo) Delete(_ context.Context, _ int64, date time.Time) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedFor = date
	return nil
}

type staticManagers struct {
	ids map[int64]bool
}

func (s staticManagers) IsManager(userID int64) bool {
	return s.ids[userID]
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(repo *mockDatePriceRepo) *Service {
	return NewService(repo, staticManagers{ids: map[int64]bool{1: true}}, noopLogger{})
}

func TestService_List(t *testing.T) {
	repo := &mockDatePriceRepo{prices: []*domain.DatePrice{{
		ID:     5,
		RoomID: 1,
		Date:   time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC),
		Price:  3000,
	}}}
	svc := newTestService(repo)

	resp, err := svc.List(context.Background(), &models.ListDatePricesRequest{
		UserID:    1,
		RoomID:    1,
		StartDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, resp.DatePrices, 1)
	assert.Equal(t, "2026-03-08", resp.DatePrices[0].Date)
}

func TestService_List_NotManager(t *testing.T) {
	svc := newTestService(&mockDatePriceRepo{})

	_, err := svc.List(context.Background(), &models.ListDatePricesRequest{
		UserID:    42,
		RoomID:    1,
		StartDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_List_InvalidPeriod(t *testing.T) {
	svc := newTestService(&mockDatePriceRepo{})

	_, err := svc.List(context.Background(), &models.ListDatePricesRequest{
		UserID:    1,
		RoomID:    1,
		StartDate: time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Upsert(t *testing.T) {
	repo := &mockDatePriceRepo{}
	svc := newTestService(repo)

	resp, err := svc.Upsert(context.Background(), &models.UpsertDatePriceRequest{
		UserID: 1,
		RoomID: 1,
		Date:   time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC),
		Price:  3000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, 3000.0, repo.upserted.Price)
}

func TestService_Upsert_ZeroPriceAllowed(t *testing.T) {
	svc := newTestService(&mockDatePriceRepo{})

	resp, err := svc.Upsert(context.Background(), &models.UpsertDatePriceRequest{
		UserID: 1,
		RoomID: 1,
		Date:   time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC),
		Price:  0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Price)
}

func TestService_Upsert_NegativePrice(t *testing.T) {
	svc := newTestService(&mockDatePriceRepo{})

	_, err := svc.Upsert(context.Background(), &models.UpsertDatePriceRequest{
		UserID: 1,
		RoomID: 1,
		Date:   time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC),
		Price:  -100,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	repo := &mockDatePriceRepo{}
	svc := newTestService(repo)

	date := time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)
	err := svc.Delete(context.Background(), &models.DeleteDatePriceRequest{
		UserID: 1,
		RoomID: 1,
		Date:   date,
	})
	require.NoError(t, err)
	assert.Equal(t, date, repo.deletedFor)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := &mockDatePriceRepo{deleteErr: datepriceRepo.ErrDatePriceNotFound}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), &models.DeleteDatePriceRequest{
		UserID: 1,
		RoomID: 1,
		Date:   time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrDatePriceNotFound)
}
