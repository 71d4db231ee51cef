package cancel_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aitzhn/PS-BookingService/internal/api/middleware"
	"github.com/aitzhn/PS-BookingService/internal/service/reservations"
	"github.com/aitzhn/PS-BookingService/internal/service/reservations/models"
)

type mockReservationsService struct {
	cancelErr error

	gotReservationID int64
	gotReq           *models.CancelReservationRequest
}

func (m *mockReservationsService) Cancel(_ context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	m.gotReservationID = reservationID
	m.gotReq = req
	return m.cancelErr
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
	protected.HandleFunc("/reservations/{reservationId}/cancel", h.Handle).Methods(http.MethodPatch)
	return r
}

func TestHandler_Handle_Success(t *testing.T) {
	service := &mockReservationsService{}
	router := newRouter(NewHandler(service, noopLogger{}))

	body := strings.NewReader(`{"cancellation_reason": "передумал"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/7/cancel", body)
	req.Header.Set(middleware.UserIDHeader, "42")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(7), service.gotReservationID)
	require.NotNil(t, service.gotReq)
	assert.Equal(t, int64(42), service.gotReq.UserID)
	assert.Equal(t, "передумал", service.gotReq.CancellationReason)
}

func TestHandler_Handle_EmptyBody(t *testing.T) {
	service := &mockReservationsService{}
	router := newRouter(NewHandler(service, noopLogger{}))

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/7/cancel", nil)
	req.Header.Set(middleware.UserIDHeader, "42")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, service.gotReq)
	assert.Empty(t, service.gotReq.CancellationReason)
}

// Отмена выполняется методом PATCH, POST на тот же путь не поддерживается
func TestHandler_Handle_MethodIsPatch(t *testing.T) {
	service := &mockReservationsService{}
	router := newRouter(NewHandler(service, noopLogger{}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/7/cancel", nil)
	req.Header.Set(middleware.UserIDHeader, "42")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Zero(t, service.gotReservationID)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"reservation not found", reservations.ErrReservationNotFound, http.StatusNotFound},
		{"access denied", reservations.ErrAccessDenied, http.StatusForbidden},
		{"cannot cancel", reservations.ErrCannotCancel, http.StatusConflict},
		{"cancel too late", reservations.ErrCancelTooLate, http.StatusConflict},
		{"invalid input", reservations.ErrInvalidInput, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockReservationsService{cancelErr: tt.serviceErr}
			router := newRouter(NewHandler(service, noopLogger{}))

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/7/cancel", nil)
			req.Header.Set(middleware.UserIDHeader, "42")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Handle_InvalidReservationID(t *testing.T) {
	service := &mockReservationsService{}
	router := newRouter(NewHandler(service, noopLogger{}))

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/abc/cancel", nil)
	req.Header.Set(middleware.UserIDHeader, "42")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
