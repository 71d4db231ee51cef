package domain

import "time"

// DatePrice is an explicit per-date price override for a room.
// When no override exists for a date, the tier price derived from the
// calendar classification applies.
type DatePrice struct {
	ID        int64
	RoomID    int64
	Date      time.Time
	Price     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValid returns true if the override carries a usable price.
// Zero is a legal override (free promo days); negative prices are not.
func (p *DatePrice) IsValid() bool {
	return p.Price >= 0
}
