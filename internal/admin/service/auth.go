package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lodgekeep/backoffice/internal/admin/domain"
	"github.com/lodgekeep/backoffice/internal/admin/store"
	"github.com/lodgekeep/backoffice/pkg/cryptox"
	"github.com/lodgekeep/backoffice/pkg/jwtx"
	"github.com/lodgekeep/backoffice/pkg/slogx"
)

// Scopes granted per role. ADMIN gets both; STAFF is read-only. Accounts
// holding neither role authenticate but receive no scopes, so every guarded
// endpoint refuses them.
const (
	ScopeAdminRead  = "admin:read"
	ScopeAdminWrite = "admin:write"
)

// AuthService authenticates operators and mints session tokens.
type AuthService struct {
	Store      store.Store
	Signer     *jwtx.Signer
	Issuer     string
	SessionTTL time.Duration
}

// Login verifies the credentials and returns a signed session token together
// with the authenticated account. Unknown usernames and wrong passwords both
// come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, domain.Account, error) {
	log := slogx.FromContext(ctx)

	account, err := s.Store.Accounts().GetByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		// Burn a hash anyway so a missing username costs the same as a
		// wrong password.
		_ = cryptox.VerifyPassword(password, cryptox.DummyHash)
		log.Warn("login failed", "username", username, "reason", "unknown username")
		return "", domain.Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", domain.Account{}, fmt.Errorf("load account: %w", err)
	}

	if err := cryptox.VerifyPassword(password, account.PasswordHash); err != nil {
		log.Warn("login failed", "username", username, "reason", "password mismatch")
		return "", domain.Account{}, ErrInvalidCredentials
	}

	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(
		account.ID.String(),
		account.Username,
		account.DisplayName(),
		scopesForRoles(account.Roles),
		s.Issuer,
		ttl,
		time.Now(),
	)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", domain.Account{}, fmt.Errorf("sign session token: %w", err)
	}

	log.Info("login succeeded", "account_id", account.ID, "username", account.Username)
	return token, account, nil
}

func scopesForRoles(roles []domain.Role) []string {
	var scopes []string
	for _, r := range roles {
		switch r.Label {
		case domain.RoleAdmin:
			scopes = append(scopes, ScopeAdminRead, ScopeAdminWrite)
		case domain.RoleStaff:
			scopes = append(scopes, ScopeAdminRead)
		}
	}
	return dedupe(scopes)
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
