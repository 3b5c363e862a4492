package service

import (
	"context"
	"testing"

	"github.com/lodgekeep/backoffice/internal/admin/domain"
	"github.com/lodgekeep/backoffice/internal/admin/store"
	"github.com/lodgekeep/backoffice/internal/admin/store/drivers/sqlite"
	"github.com/lodgekeep/backoffice/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func roleID(t *testing.T, s store.Store, label string) idx.ID {
	t.Helper()

	role, err := s.Roles().GetByLabel(context.Background(), label)
	require.NoError(t, err)
	return role.ID
}

func roomTypeID(t *testing.T, s store.Store) idx.ID {
	t.Helper()

	types, err := s.RoomTypes().ListAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, types)
	return types[0].ID
}

func mustCreateAccount(t *testing.T, svc *AccountService, cand AccountCandidate) domain.Account {
	t.Helper()

	account, err := svc.Create(context.Background(), cand)
	require.NoError(t, err)
	return account
}
