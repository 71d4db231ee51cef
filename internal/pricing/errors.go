package pricing

import "errors"

var (
	// ErrNegativePrice возвращается при отрицательной базовой цене
	ErrNegativePrice = errors.New("pricing: negative base price")

	// ErrNegativePoints возвращается при отрицательном числе баллов
	ErrNegativePoints = errors.New("pricing: negative points to redeem")

	// ErrInvalidBlocks возвращается при некорректном числе блоков
	ErrInvalidBlocks = errors.New("pricing: invalid block count")

	// ErrMissingReferenceDate возвращается, если не передана опорная дата.
	// Расчеты никогда не читают wall clock сами.
	ErrMissingReferenceDate = errors.New("pricing: reference date is required")
)
