package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lodgekeep/backoffice/internal/admin/domain"
	"github.com/lodgekeep/backoffice/internal/admin/store"
	"github.com/lodgekeep/backoffice/pkg/idx"
	"github.com/lodgekeep/backoffice/pkg/slogx"
)

// Availability answers for CheckAvailability. These strings are part of the
// public contract and travel to clients verbatim.
const (
	AvailabilityAvailable    = "Available"
	AvailabilityNotAvailable = "Not Available"
)

// RoomService owns the room lifecycle. Room names are unique across all
// rooms; creation forces the verification status to VERIFIED, and updates
// merge a fixed allow-list of fields while preserving price, capacity and
// status as stored.
type RoomService struct {
	Store store.Store
}

// RoomCandidate carries caller-supplied room fields. Status, PriceCents and
// Capacity are honoured on create only (status is still forced to VERIFIED);
// on update all three are preserved from the stored record.
type RoomCandidate struct {
	Name        string
	Description string
	TypeID      idx.ID
	BookingID   idx.ID
	PriceCents  int64
	Capacity    int
}

// IsNameUnique reports whether name is free to use, excluding the room with
// id excludeID from consideration. Pass idx.Zero to exclude nothing.
func (s *RoomService) IsNameUnique(ctx context.Context, excludeID idx.ID, name string) (bool, error) {
	existing, err := s.Store.Rooms().GetByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup room name: %w", err)
	}
	return existing.ID == excludeID, nil
}

// Create validates and persists a new room. The verification status is set
// to VERIFIED unconditionally before the first persist, so a freshly created
// room is immediately listable.
func (s *RoomService) Create(ctx context.Context, cand RoomCandidate) (domain.Room, error) {
	log := slogx.FromContext(ctx)

	unique, err := s.IsNameUnique(ctx, idx.Zero, cand.Name)
	if err != nil {
		return domain.Room{}, err
	}
	if !unique {
		log.Warn("room create rejected", "name", cand.Name, "reason", ErrDuplicateRoomName)
		return domain.Room{}, fieldError("name", ErrDuplicateRoomName)
	}

	if err := s.checkReferences(ctx, cand); err != nil {
		return domain.Room{}, err
	}

	now := time.Now().UTC()
	room := domain.Room{
		ID:          idx.New(),
		Name:        cand.Name,
		Description: cand.Description,
		TypeID:      cand.TypeID,
		BookingID:   cand.BookingID,
		PriceCents:  cand.PriceCents,
		Capacity:    cand.Capacity,
		Status:      domain.StatusVerified,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.Store.Rooms().Create(ctx, room)
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.Room{}, fieldError("name", ErrDuplicateRoomName)
	}
	if err != nil {
		return domain.Room{}, fmt.Errorf("create room: %w", err)
	}

	log.Info("room created", "room_id", room.ID, "name", room.Name)
	return room, nil
}

// Update merges cand onto the stored room and persists the result. Only the
// name, description, type and booking reference move; price, capacity and
// verification status stay exactly as stored. The room keeps its own name
// without tripping the uniqueness check.
func (s *RoomService) Update(ctx context.Context, id idx.ID, cand RoomCandidate) (domain.Room, error) {
	log := slogx.FromContext(ctx)

	current, err := s.Store.Rooms().GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Room{}, ErrRoomNotFound
	}
	if err != nil {
		return domain.Room{}, fmt.Errorf("load room: %w", err)
	}

	unique, err := s.IsNameUnique(ctx, current.ID, cand.Name)
	if err != nil {
		return domain.Room{}, err
	}
	if !unique {
		log.Warn("room update rejected", "room_id", id, "name", cand.Name, "reason", ErrDuplicateRoomName)
		return domain.Room{}, fieldError("name", ErrDuplicateRoomName)
	}

	if err := s.checkReferences(ctx, cand); err != nil {
		return domain.Room{}, err
	}

	current.Name = cand.Name
	current.Description = cand.Description
	current.TypeID = cand.TypeID
	current.BookingID = cand.BookingID
	current.UpdatedAt = time.Now().UTC()

	err = s.Store.Rooms().Update(ctx, current)
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.Room{}, fieldError("name", ErrDuplicateRoomName)
	}
	if err != nil {
		return domain.Room{}, fmt.Errorf("update room: %w", err)
	}

	log.Info("room updated", "room_id", current.ID, "name", current.Name)
	return current, nil
}

// Delete removes the room with the given id.
func (s *RoomService) Delete(ctx context.Context, id idx.ID) error {
	err := s.Store.Rooms().Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrRoomNotFound
	}
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}

	slogx.FromContext(ctx).Info("room deleted", "room_id", id)
	return nil
}

// GetByID loads a room for display or edit forms.
func (s *RoomService) GetByID(ctx context.Context, id idx.ID) (domain.Room, error) {
	room, err := s.Store.Rooms().GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Room{}, ErrRoomNotFound
	}
	if err != nil {
		return domain.Room{}, fmt.Errorf("load room: %w", err)
	}
	return room, nil
}

// CheckAvailability reports whether a room name is still free, as a
// human-readable answer. A name nobody holds is "Available".
func (s *RoomService) CheckAvailability(ctx context.Context, name string) (string, error) {
	unique, err := s.IsNameUnique(ctx, idx.Zero, name)
	if err != nil {
		return "", err
	}
	if unique {
		return AvailabilityAvailable, nil
	}
	return AvailabilityNotAvailable, nil
}

// checkReferences verifies the candidate's type and optional booking point at
// existing rows, attributing failures to the offending field.
func (s *RoomService) checkReferences(ctx context.Context, cand RoomCandidate) error {
	if _, err := s.Store.RoomTypes().GetByID(ctx, cand.TypeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fieldError("type", ErrInvalidRoomType)
		}
		return fmt.Errorf("load room type: %w", err)
	}

	if !cand.BookingID.IsZero() {
		if _, err := s.Store.Bookings().GetByID(ctx, cand.BookingID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fieldError("booking", ErrInvalidBooking)
			}
			return fmt.Errorf("load booking: %w", err)
		}
	}
	return nil
}
