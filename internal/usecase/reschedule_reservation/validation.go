package reschedule_reservation

import (
	"fmt"
	"time"

	"github.com/aitzhn/PS-BookingService/internal/domain"
	"github.com/aitzhn/PS-BookingService/internal/pricing"
	"github.com/aitzhn/PS-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSlotInGrid проверяет, что время начала попадает в сетку слотов даты
func validateSlotInGrid(date time.Time, startTime types.TimeString) error {
	for _, slot := range pricing.SlotsForDate(date) {
		if slot == startTime {
			return nil
		}
	}
	return ErrInvalidTimeSlot
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// hasOverlap проверяет, пересекается ли слот с активными бронированиями.
// Переносимое бронирование (excludeID) не считается занимающим слот.
func hasOverlap(startTime types.TimeString, slotDuration int, reservations []*domain.Reservation, excludeID int64) bool {
	slotEnd, err := startTime.AddMinutes(slotDuration)
	if err != nil {
		return false
	}

	for _, reservation := range reservations {
		if reservation.ID == excludeID {
			continue
		}
		if !reservation.IsActive() {
			continue
		}

		reservationEnd, err := reservation.StartTime.AddMinutes(reservation.DurationMinutes)
		if err != nil {
			continue
		}

		// Строгие неравенства: граничные слоты не пересекаются
		if reservation.StartTime.IsBefore(slotEnd) && reservationEnd.IsAfter(startTime) {
			return true
		}
	}

	return false
}
