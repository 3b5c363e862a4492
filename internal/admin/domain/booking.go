package domain

import (
	"time"

	"github.com/lodgekeep/backoffice/pkg/idx"
)

// Booking is supplied by the booking service as read-only reference data.
// The back-office lists bookings and attaches them to rooms but never
// creates or mutates them.
type Booking struct {
	ID        idx.ID
	AccountID idx.ID
	RoomID    idx.ID
	CheckIn   time.Time
	CheckOut  time.Time
	CreatedAt time.Time
}
