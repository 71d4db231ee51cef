package domain

// Slot grid granularity. How clients group slots into blocks for display
// is purely a presentation concern.
const (
	SlotDurationMinutes = 45
)

// Default eligibility windows (business days before the reservation date)
const (
	DefaultCancelNoticeBusinessDays     = 5
	DefaultRescheduleNoticeBusinessDays = 3
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxRescheduleCount          = 3
)

// Loyalty points redemption: requested points are floored to the nearest
// PointsRedeemStep, one point is worth one currency unit.
const (
	PointsRedeemStep = 100
)

// DateFormat формат даты в API и конфигурации (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// InactiveStatuses список статусов, не занимающих слот.
// Используется при подсчете доступности слотов.
var InactiveStatuses = []ReservationStatus{
	StatusCancelledByUser,
	StatusCancelledByStudio,
	StatusNoShow,
}

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
