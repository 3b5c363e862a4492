package domain

import (
	"strings"
	"time"

	"github.com/lodgekeep/backoffice/pkg/idx"
)

// Account is a staff or customer account managed through the back-office.
// Username and Email are each unique across all accounts (exact match).
type Account struct {
	ID           idx.ID
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string // argon2id encoded, never exposed on read paths
	Roles        []Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName returns the name used for attribution in confirmation
// messages, falling back to the username when no name is set.
func (a Account) DisplayName() string {
	name := strings.TrimSpace(a.FirstName + " " + a.LastName)
	if name == "" {
		return a.Username
	}
	return name
}

// HasRole reports whether the account holds the role with the given label.
func (a Account) HasRole(label string) bool {
	for _, r := range a.Roles {
		if r.Label == label {
			return true
		}
	}
	return false
}

// RoleIDs returns the ids of the account's role assignments.
func (a Account) RoleIDs() []idx.ID {
	ids := make([]idx.ID, len(a.Roles))
	for i, r := range a.Roles {
		ids[i] = r.ID
	}
	return ids
}
