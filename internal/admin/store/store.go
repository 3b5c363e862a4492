package store

import (
	"context"
	"errors"

	"github.com/lodgekeep/backoffice/internal/admin/domain"
	"github.com/lodgekeep/backoffice/pkg/idx"
)

var (
	ErrNotFound = errors.New("store: not found")

	// ErrAlreadyExists is returned when an insert or update trips a unique
	// constraint (username, email, room name). The uniqueness pre-checks in
	// the services catch most duplicates; this is the backstop that closes
	// the check-then-write race at the persistence layer.
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories to keep concerns tidy and testable.
type Store interface {
	Accounts() Accounts
	Rooms() Rooms
	Roles() Roles
	RoomTypes() RoomTypes
	Bookings() Bookings

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back when fn returns
	// an error and committing otherwise. Multi-step writes (account row plus
	// its role assignments) go through here.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// GetByID returns an account with its role assignments loaded.
	GetByID(ctx context.Context, id idx.ID) (domain.Account, error)

	// GetByUsername looks up an account by exact username match.
	GetByUsername(ctx context.Context, username string) (domain.Account, error)

	// GetByEmail looks up an account by exact email match.
	GetByEmail(ctx context.Context, email string) (domain.Account, error)

	// ListByRole returns all accounts holding the role with the given label,
	// ordered by username.
	ListByRole(ctx context.Context, label string) ([]domain.Account, error)

	// Create inserts a new account row (id provided by the caller via ULID).
	// Role assignments are written separately through ReplaceRoles.
	Create(ctx context.Context, a domain.Account) error

	// Update persists username, email, first and last name. It deliberately
	// has no way to touch password_hash or id; the password moves only
	// through UpdatePasswordHash.
	Update(ctx context.Context, a domain.Account) error

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, id idx.ID, hash string) error

	// ReplaceRoles swaps the account's role assignment set.
	ReplaceRoles(ctx context.Context, accountID idx.ID, roleIDs []idx.ID) error

	// DeleteByUsername removes the account and cascades to its role
	// assignments (per schema).
	DeleteByUsername(ctx context.Context, username string) error

	// Count returns the total number of accounts.
	Count(ctx context.Context) (int, error)
}

type Rooms interface {
	GetByID(ctx context.Context, id idx.ID) (domain.Room, error)
	GetByName(ctx context.Context, name string) (domain.Room, error)

	// ListAll returns all rooms ordered by name.
	ListAll(ctx context.Context) ([]domain.Room, error)

	Create(ctx context.Context, r domain.Room) error

	// Update persists every mutable column of the room as given. Callers are
	// expected to have merged the candidate onto the persisted record first.
	Update(ctx context.Context, r domain.Room) error

	Delete(ctx context.Context, id idx.ID) error

	Count(ctx context.Context) (int, error)
}

type Roles interface {
	GetByID(ctx context.Context, id idx.ID) (domain.Role, error)
	GetByLabel(ctx context.Context, label string) (domain.Role, error)
	ListAll(ctx context.Context) ([]domain.Role, error)
}

type RoomTypes interface {
	GetByID(ctx context.Context, id idx.ID) (domain.RoomType, error)
	ListAll(ctx context.Context) ([]domain.RoomType, error)
}

type Bookings interface {
	GetByID(ctx context.Context, id idx.ID) (domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
}
