package domain

import "github.com/lodgekeep/backoffice/pkg/idx"

// RoomType is a read-only room category with its base price.
type RoomType struct {
	ID             idx.ID
	Name           string
	BasePriceCents int64
}
