package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lodgekeep/backoffice/internal/admin/domain"
	"github.com/lodgekeep/backoffice/internal/admin/store"
	"github.com/lodgekeep/backoffice/pkg/cryptox"
	"github.com/lodgekeep/backoffice/pkg/idx"
	"github.com/lodgekeep/backoffice/pkg/slogx"
)

// AccountService owns the account lifecycle: uniqueness enforcement,
// create/update/delete, and password custody. Updates are merge updates
// over a fixed allow-list of fields; the password hash and the id never
// move through Update.
type AccountService struct {
	Store store.Store
}

// AccountCandidate carries caller-supplied account fields. On update,
// Password is ignored and RoleIDs replace the current assignment set.
type AccountCandidate struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	RoleIDs   []idx.ID
}

// IsUsernameUnique reports whether username is free to use. An account whose
// id equals excludeID does not count as a taker, so a record can keep its own
// username through an update. Pass idx.Zero to exclude nothing.
func (s *AccountService) IsUsernameUnique(ctx context.Context, excludeID idx.ID, username string) (bool, error) {
	existing, err := s.Store.Accounts().GetByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup username: %w", err)
	}
	return existing.ID == excludeID, nil
}

// IsEmailUnique is the email counterpart of IsUsernameUnique.
func (s *AccountService) IsEmailUnique(ctx context.Context, excludeID idx.ID, email string) (bool, error) {
	existing, err := s.Store.Accounts().GetByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup email: %w", err)
	}
	return existing.ID == excludeID, nil
}

// Create validates and persists a new account. Uniqueness is checked username
// first, then email, and a single FieldError names the first field that
// failed. The unique indexes close the remaining check-then-write race; a
// constraint trip is re-probed so the conflict still comes back attributed.
func (s *AccountService) Create(ctx context.Context, cand AccountCandidate) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	if err := s.checkUnique(ctx, idx.Zero, cand.Username, cand.Email); err != nil {
		log.Warn("account create rejected", "username", cand.Username, "reason", err)
		return domain.Account{}, err
	}

	roles, err := s.resolveRoles(ctx, cand.RoleIDs)
	if err != nil {
		return domain.Account{}, err
	}

	hash, err := cryptox.HashPassword(cand.Password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	account := domain.Account{
		ID:           idx.New(),
		Username:     cand.Username,
		Email:        cand.Email,
		FirstName:    cand.FirstName,
		LastName:     cand.LastName,
		PasswordHash: hash,
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().Create(ctx, account); err != nil {
			return err
		}
		return tx.Accounts().ReplaceRoles(ctx, account.ID, account.RoleIDs())
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.Account{}, s.attributeConflict(ctx, idx.Zero, cand.Username, cand.Email)
	}
	if err != nil {
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	log.Info("account created", "account_id", account.ID, "username", account.Username)
	return account, nil
}

// Update merges cand onto the account currently holding targetUsername and
// persists the result. Only username, email, first name, last name and the
// role set move; cand.Password is ignored and the id is immutable. The target
// keeps its own username and email without tripping the uniqueness checks.
func (s *AccountService) Update(ctx context.Context, targetUsername string, cand AccountCandidate) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	current, err := s.Store.Accounts().GetByUsername(ctx, targetUsername)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return domain.Account{}, fmt.Errorf("load account: %w", err)
	}

	if err := s.checkUnique(ctx, current.ID, cand.Username, cand.Email); err != nil {
		log.Warn("account update rejected", "username", targetUsername, "reason", err)
		return domain.Account{}, err
	}

	roles, err := s.resolveRoles(ctx, cand.RoleIDs)
	if err != nil {
		return domain.Account{}, err
	}

	current.Username = cand.Username
	current.Email = cand.Email
	current.FirstName = cand.FirstName
	current.LastName = cand.LastName
	current.Roles = roles
	current.UpdatedAt = time.Now().UTC()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().Update(ctx, current); err != nil {
			return err
		}
		return tx.Accounts().ReplaceRoles(ctx, current.ID, current.RoleIDs())
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.Account{}, s.attributeConflict(ctx, current.ID, cand.Username, cand.Email)
	}
	if err != nil {
		return domain.Account{}, fmt.Errorf("update account: %w", err)
	}

	log.Info("account updated", "account_id", current.ID, "username", current.Username)
	return current, nil
}

// Delete removes the account holding username.
func (s *AccountService) Delete(ctx context.Context, username string) error {
	err := s.Store.Accounts().DeleteByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return ErrAccountNotFound
	}
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	slogx.FromContext(ctx).Info("account deleted", "username", username)
	return nil
}

// GetByUsername loads an account for display or edit forms.
func (s *AccountService) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	account, err := s.Store.Accounts().GetByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return domain.Account{}, fmt.Errorf("load account: %w", err)
	}
	return account, nil
}

// ResetPassword replaces the account's password hash. This is the only write
// path that touches the hash; Update cannot reach it.
func (s *AccountService) ResetPassword(ctx context.Context, username, newPassword string) error {
	account, err := s.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.Store.Accounts().UpdatePasswordHash(ctx, account.ID, hash); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	slogx.FromContext(ctx).Info("account password reset", "account_id", account.ID, "username", username)
	return nil
}

// checkUnique runs the username probe before the email probe and returns at
// most one FieldError, attributed to the first field that is taken.
func (s *AccountService) checkUnique(ctx context.Context, excludeID idx.ID, username, email string) error {
	unique, err := s.IsUsernameUnique(ctx, excludeID, username)
	if err != nil {
		return err
	}
	if !unique {
		return fieldError("username", ErrDuplicateUsername)
	}

	unique, err = s.IsEmailUnique(ctx, excludeID, email)
	if err != nil {
		return err
	}
	if !unique {
		return fieldError("email", ErrDuplicateEmail)
	}
	return nil
}

// attributeConflict turns a unique-constraint trip back into a FieldError by
// re-running the probes. When neither probe finds the taker (the competing
// row vanished again) the username field gets the blame, matching the probe
// ordering used everywhere else.
func (s *AccountService) attributeConflict(ctx context.Context, excludeID idx.ID, username, email string) error {
	if unique, err := s.IsUsernameUnique(ctx, excludeID, username); err == nil && !unique {
		return fieldError("username", ErrDuplicateUsername)
	}
	if unique, err := s.IsEmailUnique(ctx, excludeID, email); err == nil && !unique {
		return fieldError("email", ErrDuplicateEmail)
	}
	return fieldError("username", ErrDuplicateUsername)
}

// resolveRoles loads each referenced role so an unknown id fails here with a
// field attribution instead of surfacing as a foreign key violation.
func (s *AccountService) resolveRoles(ctx context.Context, roleIDs []idx.ID) ([]domain.Role, error) {
	roles := make([]domain.Role, 0, len(roleIDs))
	for _, id := range roleIDs {
		role, err := s.Store.Roles().GetByID(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return nil, fieldError("roles", ErrInvalidRole)
		}
		if err != nil {
			return nil, fmt.Errorf("load role: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, nil
}
