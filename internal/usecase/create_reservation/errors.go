package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrInvalidTimeSlot возвращается, когда время начала не попадает в сетку слотов
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrTooLateToBook возвращается, когда слот на сегодня уже начался
	ErrTooLateToBook = errors.New("create_reservation: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrProfileNotFound возвращается, когда профиль пользователя не найден
	// (требуется для списания баллов)
	ErrProfileNotFound = errors.New("create_reservation: loyalty profile not found")

	// ErrInsufficientPoints возвращается, когда запрошено больше баллов,
	// чем есть на счету пользователя
	ErrInsufficientPoints = errors.New("create_reservation: insufficient loyalty points")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
