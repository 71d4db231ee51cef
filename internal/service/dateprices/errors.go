package dateprices

import "errors"

var (
	// ErrDatePriceNotFound возвращается, когда переопределение цены не найдено
	ErrDatePriceNotFound = errors.New("date price not found")

	// ErrAccessDenied возвращается, когда пользователь не является менеджером
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
