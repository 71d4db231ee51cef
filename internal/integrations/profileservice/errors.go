package profileservice

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль пользователя не найден
	ErrProfileNotFound = errors.New("loyalty profile not found")

	// ErrInsufficientPoints возвращается при попытке списать больше баллов, чем есть
	ErrInsufficientPoints = errors.New("insufficient loyalty points")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("profileservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("profileservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что ProfileService недоступен и расчет должен идти
	// по базовым ценам без скидок лояльности.
	ErrServiceDegraded = errors.New("profileservice unavailable: graceful degradation applied")
)
