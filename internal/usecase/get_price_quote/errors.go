package get_price_quote

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_price_quote: invalid input data")

	// ErrInvalidDate возвращается для дат в прошлом
	ErrInvalidDate = errors.New("get_price_quote: invalid quote date")

	// ErrInsufficientPoints возвращается, когда запрошено больше баллов,
	// чем есть на счету пользователя
	ErrInsufficientPoints = errors.New("get_price_quote: insufficient loyalty points")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_price_quote: internal error")
)
