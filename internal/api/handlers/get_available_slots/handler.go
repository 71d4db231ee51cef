package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/aitzhn/PS-BookingService/internal/api/handlers"
	"github.com/aitzhn/PS-BookingService/internal/api/middleware"
	"github.com/aitzhn/PS-BookingService/internal/domain"
	getAvailableSlots "github.com/aitzhn/PS-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidRoomID     = "некорректный ID зала"
	msgMissingDate       = "не указана дата"
	msgInvalidDateFormat = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/available-slots?date=2026-03-14
// Публичный endpoint: авторизация не требуется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil || roomID <= 0 {
		h.logger.Warn("GET /rooms/{id}/available-slots - Invalid room ID: %s", vars["roomId"])
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /rooms/{id}/available-slots - Missing date: room_id=%d", roomID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/available-slots - Invalid date format: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	// ID пользователя опционален: endpoint доступен без авторизации
	var userID int64
	if optionalID, err := middleware.OptionalUserID(r); err == nil && optionalID != nil {
		userID = *optionalID
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		UserID: userID,
		RoomID: roomID,
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/available-slots - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/{id}/available-slots - Failed to get slots: room_id=%d, date=%s, error=%v",
				roomID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
