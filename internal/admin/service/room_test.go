package service

import (
	"context"
	"testing"

	"github.com/lodgekeep/backoffice/internal/admin/domain"
	"github.com/lodgekeep/backoffice/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestRoomCreate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &RoomService{Store: s}
	typeID := roomTypeID(t, s)

	room, err := svc.Create(ctx, RoomCandidate{
		Name:        "101",
		Description: "Garden view",
		TypeID:      typeID,
		PriceCents:  12500,
		Capacity:    2,
	})
	require.NoError(t, err)
	require.False(t, room.ID.IsZero())

	t.Run("status is forced to verified", func(t *testing.T) {
		got, err := s.Rooms().GetByName(ctx, "101")
		require.NoError(t, err)
		require.Equal(t, domain.StatusVerified, got.Status)
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := svc.Create(ctx, RoomCandidate{Name: "101", TypeID: typeID})
		require.ErrorIs(t, err, ErrDuplicateRoomName)
		require.Equal(t, "name", FieldOf(err))
	})

	t.Run("unknown room type", func(t *testing.T) {
		_, err := svc.Create(ctx, RoomCandidate{Name: "102", TypeID: idx.New()})
		require.ErrorIs(t, err, ErrInvalidRoomType)
		require.Equal(t, "type", FieldOf(err))
	})

	t.Run("unknown booking reference", func(t *testing.T) {
		_, err := svc.Create(ctx, RoomCandidate{Name: "102", TypeID: typeID, BookingID: idx.New()})
		require.ErrorIs(t, err, ErrInvalidBooking)
		require.Equal(t, "booking", FieldOf(err))
	})
}

func TestRoomUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &RoomService{Store: s}
	typeID := roomTypeID(t, s)

	types, err := s.RoomTypes().ListAll(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(types), 2)
	otherType := types[1].ID

	room, err := svc.Create(ctx, RoomCandidate{
		Name:        "101",
		Description: "Garden view",
		TypeID:      typeID,
		PriceCents:  12500,
		Capacity:    2,
	})
	require.NoError(t, err)

	t.Run("merges allowed fields and preserves price, capacity, status", func(t *testing.T) {
		updated, err := svc.Update(ctx, room.ID, RoomCandidate{
			Name:        "101A",
			Description: "Garden view, renovated",
			TypeID:      otherType,
			PriceCents:  1, // ignored
			Capacity:    99,
		})
		require.NoError(t, err)
		require.Equal(t, "101A", updated.Name)
		require.Equal(t, otherType, updated.TypeID)
		require.Equal(t, int64(12500), updated.PriceCents)
		require.Equal(t, 2, updated.Capacity)
		require.Equal(t, domain.StatusVerified, updated.Status)

		got, err := s.Rooms().GetByID(ctx, room.ID)
		require.NoError(t, err)
		require.Equal(t, int64(12500), got.PriceCents)
		require.Equal(t, 2, got.Capacity)
		require.Equal(t, domain.StatusVerified, got.Status)
	})

	t.Run("keeping your own name is not a conflict", func(t *testing.T) {
		_, err := svc.Update(ctx, room.ID, RoomCandidate{Name: "101A", TypeID: typeID})
		require.NoError(t, err)
	})

	t.Run("renaming onto a taken name", func(t *testing.T) {
		_, err := svc.Create(ctx, RoomCandidate{Name: "102", TypeID: typeID})
		require.NoError(t, err)

		_, err = svc.Update(ctx, room.ID, RoomCandidate{Name: "102", TypeID: typeID})
		require.ErrorIs(t, err, ErrDuplicateRoomName)
		require.Equal(t, "name", FieldOf(err))
	})

	t.Run("missing target", func(t *testing.T) {
		_, err := svc.Update(ctx, idx.New(), RoomCandidate{Name: "103", TypeID: typeID})
		require.ErrorIs(t, err, ErrRoomNotFound)
	})
}

func TestRoomDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &RoomService{Store: s}

	room, err := svc.Create(ctx, RoomCandidate{Name: "101", TypeID: roomTypeID(t, s)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, room.ID))
	require.ErrorIs(t, svc.Delete(ctx, room.ID), ErrRoomNotFound)

	_, err = svc.GetByID(ctx, room.ID)
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRoomCheckAvailability(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &RoomService{Store: s}

	answer, err := svc.CheckAvailability(ctx, "101")
	require.NoError(t, err)
	require.Equal(t, AvailabilityAvailable, answer)

	_, err = svc.Create(ctx, RoomCandidate{Name: "101", TypeID: roomTypeID(t, s)})
	require.NoError(t, err)

	answer, err = svc.CheckAvailability(ctx, "101")
	require.NoError(t, err)
	require.Equal(t, AvailabilityNotAvailable, answer)

	t.Run("freed name becomes available again", func(t *testing.T) {
		room, err := s.Rooms().GetByName(ctx, "101")
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, room.ID))

		answer, err := svc.CheckAvailability(ctx, "101")
		require.NoError(t, err)
		require.Equal(t, AvailabilityAvailable, answer)
	})
}
