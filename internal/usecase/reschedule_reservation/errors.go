package reschedule_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reschedule_reservation: reservation not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на перенос
	ErrAccessDenied = errors.New("reschedule_reservation: access denied")

	// ErrCannotReschedule возвращается, когда бронирование нельзя перенести по статусу
	ErrCannotReschedule = errors.New("reschedule_reservation: reservation cannot be rescheduled")

	// ErrRescheduleLimit возвращается при исчерпании лимита переносов
	ErrRescheduleLimit = errors.New("reschedule_reservation: reschedule limit reached")

	// ErrRescheduleTooLate возвращается, когда до даты бронирования осталось
	// меньше требуемого числа рабочих дней
	ErrRescheduleTooLate = errors.New("reschedule_reservation: too late to reschedule")

	// ErrInvalidDate возвращается при целевой дате в прошлом
	ErrInvalidDate = errors.New("reschedule_reservation: invalid target date")

	// ErrInvalidTimeSlot возвращается, когда целевое время не попадает в сетку слотов
	ErrInvalidTimeSlot = errors.New("reschedule_reservation: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда целевой слот уже занят
	ErrSlotNotAvailable = errors.New("reschedule_reservation: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_reservation: internal error")
)
