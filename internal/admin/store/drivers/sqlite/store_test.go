package sqlite

import (
	"context"
	"testing"

	"github.com/lodgekeep/backoffice/internal/admin/domain"
	"github.com/lodgekeep/backoffice/internal/admin/store"
	"github.com/lodgekeep/backoffice/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestMigrationsSeedReferenceData(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	roles, err := s.Roles().ListAll(ctx)
	require.NoError(t, err)
	labels := make([]string, len(roles))
	for i, r := range roles {
		labels[i] = r.Label
	}
	require.ElementsMatch(t, []string{domain.RoleAdmin, domain.RoleStaff, domain.RoleCustomer}, labels)

	types, err := s.RoomTypes().ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, types, 3)
}

func TestAccountUniqueConstraints(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a := domain.Account{
		ID:           idx.New(),
		Username:     "jdoe",
		Email:        "j@x.com",
		PasswordHash: "hash",
	}
	require.NoError(t, s.Accounts().Create(ctx, a))

	t.Run("duplicate username", func(t *testing.T) {
		dup := domain.Account{ID: idx.New(), Username: "jdoe", Email: "other@x.com", PasswordHash: "hash"}
		require.ErrorIs(t, s.Accounts().Create(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := domain.Account{ID: idx.New(), Username: "other", Email: "j@x.com", PasswordHash: "hash"}
		require.ErrorIs(t, s.Accounts().Create(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("update into taken username", func(t *testing.T) {
		b := domain.Account{ID: idx.New(), Username: "msmith", Email: "m@x.com", PasswordHash: "hash"}
		require.NoError(t, s.Accounts().Create(ctx, b))

		b.Username = "jdoe"
		require.ErrorIs(t, s.Accounts().Update(ctx, b), store.ErrAlreadyExists)
	})
}

func TestAccountUpdateNeverTouchesPasswordHash(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a := domain.Account{
		ID:           idx.New(),
		Username:     "jdoe",
		Email:        "j@x.com",
		PasswordHash: "original-hash",
	}
	require.NoError(t, s.Accounts().Create(ctx, a))

	a.FirstName = "Jane"
	a.PasswordHash = "attacker-controlled"
	require.NoError(t, s.Accounts().Update(ctx, a))

	got, err := s.Accounts().GetByUsername(ctx, "jdoe")
	require.NoError(t, err)
	require.Equal(t, "Jane", got.FirstName)
	require.Equal(t, "original-hash", got.PasswordHash)
}

func TestAccountRoleAssignments(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	admin, err := s.Roles().GetByLabel(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	staff, err := s.Roles().GetByLabel(ctx, domain.RoleStaff)
	require.NoError(t, err)

	a := domain.Account{ID: idx.New(), Username: "jdoe", Email: "j@x.com", PasswordHash: "hash"}
	require.NoError(t, s.Accounts().Create(ctx, a))
	require.NoError(t, s.Accounts().ReplaceRoles(ctx, a.ID, []idx.ID{admin.ID, staff.ID}))

	got, err := s.Accounts().GetByUsername(ctx, "jdoe")
	require.NoError(t, err)
	require.Len(t, got.Roles, 2)
	require.True(t, got.HasRole(domain.RoleAdmin))

	require.NoError(t, s.Accounts().ReplaceRoles(ctx, a.ID, []idx.ID{staff.ID}))
	got, err = s.Accounts().GetByUsername(ctx, "jdoe")
	require.NoError(t, err)
	require.Len(t, got.Roles, 1)
	require.Equal(t, domain.RoleStaff, got.Roles[0].Label)

	// Deleting the account cascades to its assignments.
	require.NoError(t, s.Accounts().DeleteByUsername(ctx, "jdoe"))
	_, err = s.Accounts().GetByUsername(ctx, "jdoe")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRoomCRUDAndConstraints(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	types, err := s.RoomTypes().ListAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, types)

	room := domain.Room{
		ID:         idx.New(),
		Name:       "101",
		TypeID:     types[0].ID,
		PriceCents: 12000,
		Capacity:   2,
		Status:     domain.StatusVerified,
	}
	require.NoError(t, s.Rooms().Create(ctx, room))

	t.Run("duplicate name", func(t *testing.T) {
		dup := domain.Room{ID: idx.New(), Name: "101", TypeID: types[0].ID, Status: domain.StatusVerified}
		require.ErrorIs(t, s.Rooms().Create(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("vacant room has zero booking id", func(t *testing.T) {
		got, err := s.Rooms().GetByName(ctx, "101")
		require.NoError(t, err)
		require.True(t, got.BookingID.IsZero())
	})

	t.Run("update missing room", func(t *testing.T) {
		missing := room
		missing.ID = idx.New()
		require.ErrorIs(t, s.Rooms().Update(ctx, missing), store.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Rooms().Delete(ctx, room.ID))
		require.ErrorIs(t, s.Rooms().Delete(ctx, room.ID), store.ErrNotFound)
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	boom := domain.Account{ID: idx.New(), Username: "jdoe", Email: "j@x.com", PasswordHash: "hash"}
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().Create(ctx, boom); err != nil {
			return err
		}
		// Second insert trips the unique index and must roll everything back.
		dup := domain.Account{ID: idx.New(), Username: "jdoe", Email: "other@x.com", PasswordHash: "hash"}
		return tx.Accounts().Create(ctx, dup)
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	count, err := s.Accounts().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}
