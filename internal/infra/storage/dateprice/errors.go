package dateprice

import "errors"

var (
	// ErrDatePriceNotFound возвращается, когда переопределение цены не найдено
	ErrDatePriceNotFound = errors.New("dateprice.repository: date price not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("dateprice.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("dateprice.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("dateprice.repository: failed to scan row")

	// ErrInvalidPrice возвращается при попытке сохранить отрицательную цену
	ErrInvalidPrice = errors.New("dateprice.repository: invalid price")
)
