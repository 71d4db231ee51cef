package create_reservation

import (
	"fmt"
	"time"

	"github.com/aitzhn/PS-BookingService/internal/domain"
	"github.com/aitzhn/PS-BookingService/internal/pricing"
	"github.com/aitzhn/PS-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.PointsToRedeem < 0 {
		return fmt.Errorf("%w: points must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
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

// validateBookingTime проверяет, что слот на сегодня еще не начался
func validateBookingTime(date time.Time, startTime types.TimeString, now time.Time) error {
	if !isSameDay(date, now) {
		return nil
	}

	currentTime := types.NewTimeString(now)
	if startTime.IsBefore(currentTime) {
		return ErrTooLateToBook
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// hasOverlap проверяет, пересекается ли слот с активными бронированиями
func hasOverlap(startTime types.TimeString, slotDuration int, reservations []*domain.Reservation) bool {
	slotEnd, err := startTime.AddMinutes(slotDuration)
	if err != nil {
		return false
	}

	for _, reservation := range reservations {
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
