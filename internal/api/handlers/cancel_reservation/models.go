package cancel_reservation

import (
	"github.com/aitzhn/PS-BookingService/internal/service/reservations/models"
)

// CancelReservationRequest модель HTTP запроса на отмену бронирования
type CancelReservationRequest struct {
	CancellationReason string `json:"cancellation_reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelReservationRequest) ToServiceRequest(userID int64) *models.CancelReservationRequest {
	return &models.CancelReservationRequest{
		UserID:             userID,
		CancellationReason: r.CancellationReason,
	}
}
