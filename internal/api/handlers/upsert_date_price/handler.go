package upsert_date_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aitzhn/PS-BookingService/internal/api/handlers"
	"github.com/aitzhn/PS-BookingService/internal/api/middleware"
	"github.com/aitzhn/PS-BookingService/internal/service/dateprices"
)

const (
	msgInvalidRoomID      = "некорректный ID зала"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateFormat  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgAccessDenied       = "доступ запрещён"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	service DatePricesService
	logger  Logger
}

func NewHandler(service DatePricesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/rooms/{roomId}/date-prices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /rooms/{id}/date-prices - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil || roomID <= 0 {
		h.logger.Warn("PUT /rooms/{id}/date-prices - Invalid room ID: %s", vars["roomId"])
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req UpsertDatePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rooms/{id}/date-prices - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID, roomID)
	if err != nil {
		h.logger.Warn("PUT /rooms/{id}/date-prices - Invalid date: %s", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.service.Upsert(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, dateprices.ErrAccessDenied):
			h.logger.Warn("PUT /rooms/{id}/date-prices - Access denied: room_id=%d, user_id=%d", roomID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, dateprices.ErrInvalidInput):
			h.logger.Warn("PUT /rooms/{id}/date-prices - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /rooms/{id}/date-prices - Failed to upsert date price: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rooms/{id}/date-prices - Date price upserted: room_id=%d, date=%s, price=%.2f",
		roomID, req.Date, req.Price)
	handlers.RespondJSON(w, http.StatusOK, result)
}
