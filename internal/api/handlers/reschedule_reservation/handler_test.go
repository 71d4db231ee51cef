package reschedule_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aitzhn/PS-BookingService/internal/api/middleware"
	rescheduleReservation "github.com/aitzhn/PS-BookingService/internal/usecase/reschedule_reservation"
)

type mockUseCase struct {
	resp *rescheduleReservation.Response
	err  error

	gotReq *rescheduleReservation.Request
}

func (m *mockUseCase) Execute(_ context.Context, req *rescheduleReservation.Request) (*rescheduleReservation.Response, error) {
	m.gotReq = req
	return m.resp, m.err
}

type noopLogger struct{}

func (noopLogger) Debug(format string, args ...interface{}) {}
func (noopLogger) Info(format string, args ...interface{})  {}
func (noopLogger) Warn(format string, args ...interface{})  {}
func (noopLogger) Error(format string, args ...interface{}) {}

// newRouter регистрирует ручку так же, как это делает composition root
func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/reservations/{reservationId}/reschedule", h.Handle).Methods(http.MethodPatch)
	return r
}

func TestHandler_Handle_Success(t *testing.T) {
	useCase := &mockUseCase{
		resp: &rescheduleReservation.Response{
			ID:              7,
			UserID:          42,
			RoomID:          1,
			Date:            time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC),
			StartTime:       "12:30",
			DurationMinutes: 45,
			Status:          "confirmed",
			BasePrice:       1500,
			FinalPrice:      1300,
			DiscountTotal:   200,
			PointsSpent:     200,
			RescheduleCount: 1,
		},
	}
	router := newRouter(NewHandler(useCase, noopLogger{}))

	body := strings.NewReader(`{"date": "2026-04-21", "start_time": "12:30"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/7/reschedule", body)
	req.Header.Set(middleware.UserIDHeader, "42")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, useCase.gotReq)
	assert.Equal(t, int64(7), useCase.gotReq.ReservationID)
	assert.Equal(t, int64(42), useCase.gotReq.UserID)

	var resp RescheduleReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-04-21", resp.Date)
	assert.Equal(t, "12:30", resp.StartTime)
	assert.Equal(t, 1, resp.RescheduleCount)
}

// Перенос выполняется методом PATCH, POST на тот же путь не поддерживается
func TestHandler_Handle_MethodIsPatch(t *testing.T) {
	useCase := &mockUseCase{}
	router := newRouter(NewHandler(useCase, noopLogger{}))

	body := strings.NewReader(`{"date": "2026-04-21", "start_time": "12:30"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/7/reschedule", body)
	req.Header.Set(middleware.UserIDHeader, "42")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Nil(t, useCase.gotReq)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		wantStatus int
	}{
		{"reservation not found", rescheduleReservation.ErrReservationNotFound, http.StatusNotFound},
		{"access denied", rescheduleReservation.ErrAccessDenied, http.StatusForbidden},
		{"cannot reschedule", rescheduleReservation.ErrCannotReschedule, http.StatusConflict},
		{"reschedule limit", rescheduleReservation.ErrRescheduleLimit, http.StatusConflict},
		{"reschedule too late", rescheduleReservation.ErrRescheduleTooLate, http.StatusConflict},
		{"slot not available", rescheduleReservation.ErrSlotNotAvailable, http.StatusConflict},
		{"invalid date", rescheduleReservation.ErrInvalidDate, http.StatusBadRequest},
		{"invalid time slot", rescheduleReservation.ErrInvalidTimeSlot, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := &mockUseCase{err: tt.useCaseErr}
			router := newRouter(NewHandler(useCase, noopLogger{}))

			body := strings.NewReader(`{"date": "2026-04-21", "start_time": "12:30"}`)
			req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/7/reschedule", body)
			req.Header.Set(middleware.UserIDHeader, "42")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Handle_BadDate(t *testing.T) {
	useCase := &mockUseCase{}
	router := newRouter(NewHandler(useCase, noopLogger{}))

	body := strings.NewReader(`{"date": "21.04.2026", "start_time": "12:30"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/7/reschedule", body)
	req.Header.Set(middleware.UserIDHeader, "42")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, useCase.gotReq)
}
