package reschedule_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aitzhn/PS-BookingService/internal/api/handlers"
	"github.com/aitzhn/PS-BookingService/internal/api/middleware"
	rescheduleReservation "github.com/aitzhn/PS-BookingService/internal/usecase/reschedule_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateFormat    = "некорректный формат даты или времени"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgReservationNotFound  = "бронирование не найдено"
	msgAccessDenied         = "доступ запрещён"
	msgCannotReschedule     = "бронирование нельзя перенести в текущем статусе"
	msgRescheduleLimit      = "исчерпан лимит переносов бронирования"
	msgRescheduleTooLate    = "срок переноса бронирования истёк"
	msgInvalidDate          = "некорректная дата переноса"
	msgInvalidTimeSlot      = "время начала не попадает в сетку слотов"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
)

type Handler struct {
	useCase RescheduleReservationUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid reservation ID: %s", vars["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req RescheduleReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID, userID)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, rescheduleReservation.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Access denied: reservation_id=%d, user_id=%d",
				reservationID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, rescheduleReservation.ErrCannotReschedule):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Cannot reschedule: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgCannotReschedule)

		case errors.Is(err, rescheduleReservation.ErrRescheduleLimit):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Reschedule limit reached: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgRescheduleLimit)

		case errors.Is(err, rescheduleReservation.ErrRescheduleTooLate):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Reschedule window passed: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgRescheduleTooLate)

		case errors.Is(err, rescheduleReservation.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Slot not available: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, rescheduleReservation.ErrInvalidDate):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid date: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, rescheduleReservation.ErrInvalidTimeSlot):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid time slot: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, rescheduleReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid input: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /reservations/{id}/reschedule - Failed to reschedule reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/reschedule - Reservation rescheduled: reservation_id=%d, user_id=%d, new_date=%s",
		result.ID, userID, req.Date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
