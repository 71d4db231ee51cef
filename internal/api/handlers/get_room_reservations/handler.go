package get_room_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/aitzhn/PS-BookingService/internal/api/handlers"
	"github.com/aitzhn/PS-BookingService/internal/api/middleware"
	"github.com/aitzhn/PS-BookingService/internal/domain"
	"github.com/aitzhn/PS-BookingService/internal/service/reservations"
	"github.com/aitzhn/PS-BookingService/internal/service/reservations/models"
)

const (
	msgInvalidRoomID     = "некорректный ID зала"
	msgInvalidDateFormat = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgAccessDenied      = "доступ запрещён"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/reservations?from=...&to=...&status=...&include_inactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /rooms/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil || roomID <= 0 {
		h.logger.Warn("GET /rooms/{id}/reservations - Invalid room ID: %s", vars["roomId"])
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	req, err := parseQuery(r, userID, roomID)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/reservations - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.service.GetRoomReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /rooms/{id}/reservations - Access denied: room_id=%d, user_id=%d", roomID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/reservations - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/{id}/reservations - Failed to get reservations: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseQuery(r *http.Request, userID, roomID int64) (*models.GetRoomReservationsRequest, error) {
	query := r.URL.Query()

	req := &models.GetRoomReservationsRequest{
		UserID:          userID,
		RoomID:          roomID,
		IncludeInactive: query.Get("include_inactive") == "true",
	}

	if from := query.Get("from"); from != "" {
		date, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
	}

	if to := query.Get("to"); to != "" {
		date, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			return nil, err
		}
		req.EndDate = &date
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	return req, nil
}
