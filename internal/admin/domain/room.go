package domain

import (
	"time"

	"github.com/lodgekeep/backoffice/pkg/idx"
)

// VerificationStatus is a room's readiness flag. VERIFIED means listable for
// booking. Creation always forces VERIFIED before the first persist, so
// UNVERIFIED never reaches the store from this code.
type VerificationStatus string

const (
	StatusUnverified VerificationStatus = "UNVERIFIED"
	StatusVerified   VerificationStatus = "VERIFIED"
)

// Room is a bookable unit of inventory. Name is unique across all rooms.
// BookingID references the current booking and is idx.Zero when vacant.
type Room struct {
	ID          idx.ID
	Name        string
	Description string
	TypeID      idx.ID
	BookingID   idx.ID
	PriceCents  int64
	Capacity    int
	Status      VerificationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
