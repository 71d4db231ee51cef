package get_available_slots

import (
	"time"

	"github.com/aitzhn/PS-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID int64     // ID пользователя (для логирования, не влияет на результат)
	RoomID int64     // ID зала
	Date   time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date   time.Time // Дата, на которую запрашивались слоты
	RoomID int64     // ID зала
	Slots  []Slot    // Список слотов сетки с признаком доступности
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "11:00")
	DurationMinutes int              // Длительность слота в минутах
	Available       bool             // Свободен ли слот
}
