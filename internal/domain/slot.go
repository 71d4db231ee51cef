package domain

import "github.com/aitzhn/PS-BookingService/pkg/types"

// AvailableSlot represents a time slot of the studio day grid with its
// availability against existing reservations
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool
}

// EndTime returns the slot end time
func (s *AvailableSlot) EndTime() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}
