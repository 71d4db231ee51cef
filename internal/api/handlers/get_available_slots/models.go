package get_available_slots

import (
	"github.com/aitzhn/PS-BookingService/internal/domain"
	getAvailableSlots "github.com/aitzhn/PS-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse модель временного слота в HTTP ответе
type SlotResponse struct {
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Available       bool   `json:"available"`
}

// AvailableSlotsResponse модель HTTP ответа со списком слотов
type AvailableSlotsResponse struct {
	RoomID int64          `json:"room_id"`
	Date   string         `json:"date"`
	Slots  []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
		})
	}

	return &AvailableSlotsResponse{
		RoomID: resp.RoomID,
		Date:   resp.Date.Format(domain.DateFormat),
		Slots:  slots,
	}
}
