package reschedule_reservation

import (
	"time"

	"github.com/aitzhn/PS-BookingService/internal/domain"
	rescheduleReservation "github.com/aitzhn/PS-BookingService/internal/usecase/reschedule_reservation"
	"github.com/aitzhn/PS-BookingService/pkg/types"
)

// RescheduleReservationRequest модель HTTP запроса на перенос бронирования
type RescheduleReservationRequest struct {
	Date      string `json:"date"`       // Новая дата в формате YYYY-MM-DD
	StartTime string `json:"start_time"` // Новое время начала в формате HH:MM
}

// RescheduleReservationResponse модель HTTP ответа
type RescheduleReservationResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"user_id"`
	RoomID          int64   `json:"room_id"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status"`
	BasePrice       float64 `json:"base_price"`
	FinalPrice      float64 `json:"final_price"`
	DiscountTotal   float64 `json:"discount_total"`
	PointsSpent     int     `json:"points_spent"`
	RescheduleCount int     `json:"reschedule_count"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleReservationRequest) ToUseCaseRequest(reservationID, userID int64) (*rescheduleReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleReservation.Request{
		ReservationID: reservationID,
		UserID:        userID,
		Date:          date,
		StartTime:     startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *rescheduleReservation.Response) *RescheduleReservationResponse {
	return &RescheduleReservationResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		RoomID:          resp.RoomID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		BasePrice:       resp.BasePrice,
		FinalPrice:      resp.FinalPrice,
		DiscountTotal:   resp.DiscountTotal,
		PointsSpent:     resp.PointsSpent,
		RescheduleCount: resp.RescheduleCount,
	}
}
