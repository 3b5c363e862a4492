package service

import (
	"context"
	"testing"

	"github.com/lodgekeep/backoffice/internal/admin/domain"
	"github.com/lodgekeep/backoffice/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestReferenceListsAndOverview(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	accounts := &AccountService{Store: s}
	rooms := &RoomService{Store: s}
	ref := &ReferenceService{Store: s}

	admin := roleID(t, s, domain.RoleAdmin)
	customer := roleID(t, s, domain.RoleCustomer)

	mustCreateAccount(t, accounts, AccountCandidate{
		Username: "operator",
		Email:    "operator@example.com",
		Password: "x",
		RoleIDs:  []idx.ID{admin},
	})
	mustCreateAccount(t, accounts, AccountCandidate{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "x",
		RoleIDs:  []idx.ID{customer},
	})
	mustCreateAccount(t, accounts, AccountCandidate{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "x",
		RoleIDs:  []idx.ID{customer},
	})

	_, err := rooms.Create(ctx, RoomCandidate{Name: "101", TypeID: roomTypeID(t, s)})
	require.NoError(t, err)

	t.Run("lists are partitioned by role", func(t *testing.T) {
		customers, err := ref.ListCustomers(ctx)
		require.NoError(t, err)
		require.Len(t, customers, 2)
		// Ordered by username.
		require.Equal(t, "alice", customers[0].Username)
		require.Equal(t, "bob", customers[1].Username)

		admins, err := ref.ListAdmins(ctx)
		require.NoError(t, err)
		require.Len(t, admins, 1)
		require.Equal(t, "operator", admins[0].Username)
	})

	t.Run("catalogues come from the seed data", func(t *testing.T) {
		roles, err := ref.ListRoles(ctx)
		require.NoError(t, err)
		require.Len(t, roles, 3)

		types, err := ref.ListRoomTypes(ctx)
		require.NoError(t, err)
		require.Len(t, types, 3)
	})

	t.Run("overview totals match the lists", func(t *testing.T) {
		o, err := ref.Overview(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, o.TotalCustomers)
		require.Equal(t, 1, o.TotalAdmins)
		require.Equal(t, 1, o.TotalRooms)
		require.Zero(t, o.TotalBookings)
		require.Len(t, o.Rooms, o.TotalRooms)
	})
}
