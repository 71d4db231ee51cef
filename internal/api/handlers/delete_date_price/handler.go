package delete_date_price

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
	msgInvalidDateFormat = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgAccessDenied      = "доступ запрещён"
	msgDatePriceNotFound = "переопределение цены не найдено"
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

// Handle DELETE /api/v1/rooms/{roomId}/date-prices/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /rooms/{id}/date-prices/{date} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil || roomID <= 0 {
		h.logger.Warn("DELETE /rooms/{id}/date-prices/{date} - Invalid room ID: %s", vars["roomId"])
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("DELETE /rooms/{id}/date-prices/{date} - Invalid date: %s", vars["date"])
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	err = h.service.Delete(r.Context(), &models.DeleteDatePriceRequest{
		UserID: userID,
		RoomID: roomID,
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, dateprices.ErrAccessDenied):
			h.logger.Warn("DELETE /rooms/{id}/date-prices/{date} - Access denied: room_id=%d, user_id=%d",
				roomID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, dateprices.ErrDatePriceNotFound):
			h.logger.Warn("DELETE /rooms/{id}/date-prices/{date} - Not found: room_id=%d, date=%s",
				roomID, vars["date"])
			handlers.RespondNotFound(w, msgDatePriceNotFound)

		default:
			h.logger.Error("DELETE /rooms/{id}/date-prices/{date} - Failed to delete date price: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rooms/{id}/date-prices/{date} - Date price deleted: room_id=%d, date=%s",
		roomID, vars["date"])
	w.WriteHeader(http.StatusNoContent)
}
