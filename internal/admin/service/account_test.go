package service

import (
	"context"
	"testing"

	"github.com/lodgekeep/backoffice/internal/admin/domain"
	"github.com/lodgekeep/backoffice/internal/admin/store"
	"github.com/lodgekeep/backoffice/pkg/cryptox"
	"github.com/lodgekeep/backoffice/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestAccountCreate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &AccountService{Store: s}
	customer := roleID(t, s, domain.RoleCustomer)

	account := mustCreateAccount(t, svc, AccountCandidate{
		Username:  "jdoe",
		Email:     "jdoe@example.com",
		FirstName: "John",
		LastName:  "Doe",
		Password:  "s3cret-pw",
		RoleIDs:   []idx.ID{customer},
	})

	require.False(t, account.ID.IsZero())
	require.Equal(t, "John Doe", account.DisplayName())
	require.True(t, account.HasRole(domain.RoleCustomer))

	t.Run("password is stored hashed", func(t *testing.T) {
		got, err := s.Accounts().GetByUsername(ctx, "jdoe")
		require.NoError(t, err)
		require.NotEqual(t, "s3cret-pw", got.PasswordHash)
		require.NoError(t, cryptox.VerifyPassword("s3cret-pw", got.PasswordHash))
	})

	t.Run("duplicate username wins attribution over duplicate email", func(t *testing.T) {
		_, err := svc.Create(ctx, AccountCandidate{
			Username: "jdoe",
			Email:    "jdoe@example.com",
			Password: "x",
		})
		require.ErrorIs(t, err, ErrDuplicateUsername)
		require.Equal(t, "username", FieldOf(err))
	})

	t.Run("duplicate email alone", func(t *testing.T) {
		_, err := svc.Create(ctx, AccountCandidate{
			Username: "other",
			Email:    "jdoe@example.com",
			Password: "x",
		})
		require.ErrorIs(t, err, ErrDuplicateEmail)
		require.Equal(t, "email", FieldOf(err))
	})

	t.Run("unknown role id", func(t *testing.T) {
		_, err := svc.Create(ctx, AccountCandidate{
			Username: "rolefail",
			Email:    "rolefail@example.com",
			Password: "x",
			RoleIDs:  []idx.ID{idx.New()},
		})
		require.ErrorIs(t, err, ErrInvalidRole)
		require.Equal(t, "roles", FieldOf(err))
	})
}

func TestAccountUniquenessProbes(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &AccountService{Store: s}

	taken := mustCreateAccount(t, svc, AccountCandidate{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "x",
	})

	unique, err := svc.IsUsernameUnique(ctx, idx.Zero, "jdoe")
	require.NoError(t, err)
	require.False(t, unique)

	unique, err = svc.IsUsernameUnique(ctx, idx.Zero, "someone-else")
	require.NoError(t, err)
	require.True(t, unique)

	// A record excludes itself, so it can keep its own username.
	unique, err = svc.IsUsernameUnique(ctx, taken.ID, "jdoe")
	require.NoError(t, err)
	require.True(t, unique)

	unique, err = svc.IsEmailUnique(ctx, idx.Zero, "jdoe@example.com")
	require.NoError(t, err)
	require.False(t, unique)

	unique, err = svc.IsEmailUnique(ctx, taken.ID, "jdoe@example.com")
	require.NoError(t, err)
	require.True(t, unique)
}

func TestAccountUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &AccountService{Store: s}
	customer := roleID(t, s, domain.RoleCustomer)
	staff := roleID(t, s, domain.RoleStaff)

	mustCreateAccount(t, svc, AccountCandidate{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "original-pw",
		RoleIDs:  []idx.ID{customer},
	})

	t.Run("merges allowed fields and keeps the password", func(t *testing.T) {
		updated, err := svc.Update(ctx, "jdoe", AccountCandidate{
			Username:  "jdoe",
			Email:     "john.doe@example.com",
			FirstName: "John",
			LastName:  "Doe",
			Password:  "attacker-pw",
			RoleIDs:   []idx.ID{staff},
		})
		require.NoError(t, err)
		require.Equal(t, "john.doe@example.com", updated.Email)
		require.True(t, updated.HasRole(domain.RoleStaff))
		require.False(t, updated.HasRole(domain.RoleCustomer))

		got, err := s.Accounts().GetByUsername(ctx, "jdoe")
		require.NoError(t, err)
		require.NoError(t, cryptox.VerifyPassword("original-pw", got.PasswordHash))
	})

	t.Run("keeping your own username is not a conflict", func(t *testing.T) {
		_, err := svc.Update(ctx, "jdoe", AccountCandidate{
			Username: "jdoe",
			Email:    "john.doe@example.com",
		})
		require.NoError(t, err)
	})

	t.Run("renaming onto a taken username", func(t *testing.T) {
		mustCreateAccount(t, svc, AccountCandidate{
			Username: "msmith",
			Email:    "msmith@example.com",
			Password: "x",
		})

		_, err := svc.Update(ctx, "msmith", AccountCandidate{
			Username: "jdoe",
			Email:    "msmith@example.com",
		})
		require.ErrorIs(t, err, ErrDuplicateUsername)
		require.Equal(t, "username", FieldOf(err))
	})

	t.Run("renaming onto a taken email", func(t *testing.T) {
		_, err := svc.Update(ctx, "msmith", AccountCandidate{
			Username: "msmith",
			Email:    "john.doe@example.com",
		})
		require.ErrorIs(t, err, ErrDuplicateEmail)
		require.Equal(t, "email", FieldOf(err))
	})

	t.Run("missing target", func(t *testing.T) {
		_, err := svc.Update(ctx, "ghost", AccountCandidate{Username: "ghost", Email: "g@example.com"})
		require.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestAccountDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &AccountService{Store: s}

	mustCreateAccount(t, svc, AccountCandidate{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "x",
	})

	t.Run("deleting a missing account leaves the store unchanged", func(t *testing.T) {
		before, err := s.Accounts().Count(ctx)
		require.NoError(t, err)

		require.ErrorIs(t, svc.Delete(ctx, "nobody"), ErrAccountNotFound)

		after, err := s.Accounts().Count(ctx)
		require.NoError(t, err)
		require.Equal(t, before, after)
	})

	require.NoError(t, svc.Delete(ctx, "jdoe"))
	require.ErrorIs(t, svc.Delete(ctx, "jdoe"), ErrAccountNotFound)

	_, err := s.Accounts().GetByUsername(ctx, "jdoe")
	require.ErrorIs(t, err, store.ErrNotFound)

	t.Run("freed username is reusable", func(t *testing.T) {
		mustCreateAccount(t, svc, AccountCandidate{
			Username: "jdoe",
			Email:    "second@example.com",
			Password: "x",
		})
	})
}

func TestAccountResetPassword(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &AccountService{Store: s}

	mustCreateAccount(t, svc, AccountCandidate{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "old-pw",
	})

	require.NoError(t, svc.ResetPassword(ctx, "jdoe", "new-pw"))

	got, err := s.Accounts().GetByUsername(ctx, "jdoe")
	require.NoError(t, err)
	require.NoError(t, cryptox.VerifyPassword("new-pw", got.PasswordHash))
	require.ErrorIs(t, cryptox.VerifyPassword("old-pw", got.PasswordHash), cryptox.ErrPasswordMismatch)

	require.ErrorIs(t, svc.ResetPassword(ctx, "ghost", "x"), ErrAccountNotFound)
}
