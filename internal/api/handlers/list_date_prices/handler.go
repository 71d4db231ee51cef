package list_date_prices

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/aitzhn/PS-BookingService/internal/api/handlers"
	"github.com/aitzhn/PS-BookingService/internal/api/middleware"
	"github.com/aitzhn/PS-BookingService/internal/domain"
	"github.com/aitzhn/PS-BookingService/internal/service/dateprices"
	"github.com/aitzhn/PS-BookingService/internal/service/dateprices/models"
)

const (
	msgInvalidRoomID     = "некорректный ID зала"
	msgMissingPeriod     = "не указан период: требуются параметры from и to"
	msgInvalidDateFormat = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgAccessDenied      = "доступ запрещён"
	msgInvalidInput      = "некорректные параметры запроса"
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

// Handle GET /api/v1/rooms/{roomId}/date-prices?from=2026-03-01&to=2026-03-31
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /rooms/{id}/date-prices - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil || roomID <= 0 {
		h.logger.Warn("GET /rooms/{id}/date-prices - Invalid room ID: %s", vars["roomId"])
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()
	fromStr := query.Get("from")
	toStr := query.Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /rooms/{id}/date-prices - Missing period: room_id=%d", roomID)
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/date-prices - Invalid from date: %s", fromStr)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/date-prices - Invalid to date: %s", toStr)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListDatePricesRequest{
		UserID:    userID,
		RoomID:    roomID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, dateprices.ErrAccessDenied):
			h.logger.Warn("GET /rooms/{id}/date-prices - Access denied: room_id=%d, user_id=%d", roomID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, dateprices.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/date-prices - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/{id}/date-prices - Failed to list date prices: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
