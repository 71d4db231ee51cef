package get_price_quote

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/aitzhn/PS-BookingService/internal/api/handlers"
	"github.com/aitzhn/PS-BookingService/internal/api/middleware"
	"github.com/aitzhn/PS-BookingService/internal/domain"
	getPriceQuote "github.com/aitzhn/PS-BookingService/internal/usecase/get_price_quote"
)

const (
	msgInvalidRoomID      = "некорректный ID зала"
	msgMissingDate        = "не указана дата"
	msgInvalidDateFormat  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidQueryParams = "некорректные параметры запроса"
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidDate        = "дата в прошлом"
	msgInsufficientPoints = "недостаточно баллов лояльности"
)

type Handler struct {
	useCase GetPriceQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetPriceQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/price-quote?date=2026-03-14&blocks=2&points=300&disableLastMinute=true
// Публичный endpoint: без заголовка X-User-ID расчет анонимный (только last-minute скидка)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil || roomID <= 0 {
		h.logger.Warn("GET /rooms/{id}/price-quote - Invalid room ID: %s", vars["roomId"])
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /rooms/{id}/price-quote - Missing date: room_id=%d", roomID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/price-quote - Invalid date format: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	userID, err := middleware.OptionalUserID(r)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/price-quote - Invalid user ID header: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	req := &getPriceQuote.Request{
		UserID:            userID,
		RoomID:            roomID,
		Date:              date,
		DisableLastMinute: query.Get("disableLastMinute") == "true",
	}

	if blocksStr := query.Get("blocks"); blocksStr != "" {
		blocks, err := strconv.Atoi(blocksStr)
		if err != nil || blocks <= 0 {
			h.logger.Warn("GET /rooms/{id}/price-quote - Invalid blocks param: %s", blocksStr)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)
			return
		}
		req.Blocks = blocks
	}

	if pointsStr := query.Get("points"); pointsStr != "" {
		points, err := strconv.Atoi(pointsStr)
		if err != nil || points < 0 {
			h.logger.Warn("GET /rooms/{id}/price-quote - Invalid points param: %s", pointsStr)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)
			return
		}
		req.PointsToRedeem = points
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getPriceQuote.ErrInvalidDate):
			h.logger.Warn("GET /rooms/{id}/price-quote - Date in the past: room_id=%d, date=%s", roomID, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getPriceQuote.ErrInsufficientPoints):
			h.logger.Warn("GET /rooms/{id}/price-quote - Insufficient points: room_id=%d", roomID)
			handlers.RespondConflict(w, msgInsufficientPoints)

		case errors.Is(err, getPriceQuote.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/price-quote - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)

		default:
			h.logger.Error("GET /rooms/{id}/price-quote - Failed to calculate quote: room_id=%d, date=%s, error=%v",
				roomID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
