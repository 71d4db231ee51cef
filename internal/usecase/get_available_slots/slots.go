package get_available_slots

import (
	"time"

	"github.com/aitzhn/PS-BookingService/internal/domain"
	"github.com/aitzhn/PS-BookingService/pkg/types"
)

// markAvailability размечает доступность слотов сетки по активным бронированиям.
// Зал вмещает одну съемку: любое пересечение с активным бронированием делает
// слот недоступным.
func markAvailability(
	starts []types.TimeString,
	slotDuration int,
	reservations []*domain.Reservation,
) []Slot {
	result := make([]Slot, len(starts))

	for i, slotStart := range starts {
		overlapping := countOverlappingReservations(slotStart, slotDuration, reservations)

		result[i] = Slot{
			StartTime:       slotStart,
			DurationMinutes: slotDuration,
			Available:       overlapping == 0,
		}
	}

	return result
}

// countOverlappingReservations подсчитывает количество активных бронирований,
// пересекающихся с указанным слотом.
// Пересечение есть только если интервалы действительно накладываются друг на друга.
// Если бронирование заканчивается ровно там, где начинается слот (или наоборот) -
// это НЕ пересечение.
func countOverlappingReservations(slotStart types.TimeString, slotDuration int, reservations []*domain.Reservation) int {
	slotEnd, err := slotStart.AddMinutes(slotDuration)
	if err != nil {
		// Если не можем вычислить конец слота, считаем что пересечений нет
		return 0
	}

	count := 0

	for _, reservation := range reservations {
		// Пропускаем неактивные бронирования
		if !reservation.IsActive() {
			continue
		}

		reservationStart := reservation.StartTime
		reservationEnd, err := reservation.StartTime.AddMinutes(reservation.DurationMinutes)
		if err != nil {
			// Если не можем вычислить конец бронирования, пропускаем
			continue
		}

		// Строгие неравенства: граничные случаи не считаются пересечением
		if reservationStart.IsBefore(slotEnd) && reservationEnd.IsAfter(slotStart) {
			count++
		}
	}

	return count
}

// filterPastSlots для сегодняшней даты убирает слоты, которые уже начались
func filterPastSlots(starts []types.TimeString, requestDate, now time.Time) []types.TimeString {
	if !isSameDay(requestDate, now) {
		return starts
	}

	currentTime := types.NewTimeString(now)

	filtered := make([]types.TimeString, 0, len(starts))
	for _, slot := range starts {
		if !slot.IsBefore(currentTime) {
			filtered = append(filtered, slot)
		}
	}

	return filtered
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
