package domain

import (
	"time"

	"github.com/aitzhn/PS-BookingService/pkg/types"
)

// ReservationStatus represents the status of a studio reservation
type ReservationStatus string

const (
	StatusPending           ReservationStatus = "pending"
	StatusConfirmed         ReservationStatus = "confirmed"
	StatusCancelledByUser   ReservationStatus = "cancelled_by_user"
	StatusCancelledByStudio ReservationStatus = "cancelled_by_studio"
	StatusCompleted         ReservationStatus = "completed"
	StatusNoShow            ReservationStatus = "no_show"
)

// PaymentStatus represents the payment state of a reservation.
// Payment capture itself is handled by an external gateway; the service
// only stores the resulting state.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Reservation represents a booked studio time slot
type Reservation struct {
	ID              int64
	UserID          int64
	RoomID          int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          ReservationStatus
	PaymentStatus   PaymentStatus

	// Pricing snapshot computed at booking time
	BasePrice     float64
	FinalPrice    float64
	DiscountTotal float64
	PointsSpent   int

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time
	RescheduleCount    int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies its slot
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelledByUser &&
		r.Status != StatusCancelledByStudio &&
		r.Status != StatusNoShow
}

// CanBeCancelled returns true if the reservation is in a cancellable state.
// The business-day eligibility window is checked separately by the service layer.
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the reservation is in a reschedulable state
func (r *Reservation) CanBeRescheduled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelledByUser || r.Status == StatusCancelledByStudio
}

// RoomReservationsFilter фильтр для выборки бронирований зала
type RoomReservationsFilter struct {
	RoomID          int64              // Обязательный параметр
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отмененные и no-show
}
