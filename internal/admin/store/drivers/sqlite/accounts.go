package sqlite

import (
	"context"
	"time"

	"github.com/lodgekeep/backoffice/internal/admin/domain"
	"github.com/lodgekeep/backoffice/internal/admin/store"
	"github.com/lodgekeep/backoffice/pkg/idx"
)

type accountsRepo struct {
	db dbtx
}

const accountColumns = `id, username, email, first_name, last_name, password_hash, created_at, updated_at`

func (r *accountsRepo) GetByID(ctx context.Context, id idx.ID) (domain.Account, error) {
	return r.getBy(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id.String())
}

func (r *accountsRepo) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	return r.getBy(ctx, `SELECT `+accountColumns+` FROM accounts WHERE username = ?`, username)
}

func (r *accountsRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.getBy(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)
}

func (r *accountsRepo) getBy(ctx context.Context, query string, arg any) (domain.Account, error) {
	var a domain.Account
	var id string
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&id,
		&a.Username,
		&a.Email,
		&a.FirstName,
		&a.LastName,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	a.ID = idx.ID(id)

	roles, err := r.rolesFor(ctx, a.ID)
	if err != nil {
		return domain.Account{}, err
	}
	a.Roles = roles
	return a, nil
}

func (r *accountsRepo) ListByRole(ctx context.Context, label string) ([]domain.Account, error) {
	const query = `
		SELECT a.id, a.username, a.email, a.first_name, a.last_name, a.password_hash, a.created_at, a.updated_at
		FROM accounts a
		JOIN account_roles ar ON ar.account_id = a.id
		JOIN roles r ON r.id = ar.role_id
		WHERE r.label = ?
		ORDER BY a.username`
	rows, err := r.db.QueryContext(ctx, query, label)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		var id string
		if err := rows.Scan(
			&id,
			&a.Username,
			&a.Email,
			&a.FirstName,
			&a.LastName,
			&a.PasswordHash,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		a.ID = idx.ID(id)
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range accounts {
		roles, err := r.rolesFor(ctx, accounts[i].ID)
		if err != nil {
			return nil, err
		}
		accounts[i].Roles = roles
	}
	return accounts, nil
}

func (r *accountsRepo) Create(ctx context.Context, a domain.Account) error {
	now := time.Now().UTC()
	const query = `
		INSERT INTO accounts (id, username, email, first_name, last_name, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID.String(),
		a.Username,
		a.Email,
		a.FirstName,
		a.LastName,
		a.PasswordHash,
		now,
		now,
	)
	return mapConflict(err)
}

func (r *accountsRepo) Update(ctx context.Context, a domain.Account) error {
	// password_hash is deliberately absent from the column list.
	const query = `
		UPDATE accounts
		SET username = ?, email = ?, first_name = ?, last_name = ?, updated_at = ?
		WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query,
		a.Username,
		a.Email,
		a.FirstName,
		a.LastName,
		time.Now().UTC(),
		a.ID.String(),
	)
	if err != nil {
		return mapConflict(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, id idx.ID, hash string) error {
	const query = `UPDATE accounts SET password_hash = ?, updated_at = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, hash, time.Now().UTC(), id.String())
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *accountsRepo) ReplaceRoles(ctx context.Context, accountID idx.ID, roleIDs []idx.ID) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM account_roles WHERE account_id = ?`, accountID.String()); err != nil {
		return err
	}
	for _, roleID := range roleIDs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO account_roles (account_id, role_id) VALUES (?, ?)`,
			accountID.String(), roleID.String())
		if err != nil {
			return mapConflict(err)
		}
	}
	return nil
}

func (r *accountsRepo) DeleteByUsername(ctx context.Context, username string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE username = ?`, username)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *accountsRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count)
	return count, err
}

func (r *accountsRepo) rolesFor(ctx context.Context, accountID idx.ID) ([]domain.Role, error) {
	const query = `
		SELECT r.id, r.label
		FROM roles r
		JOIN account_roles ar ON ar.role_id = r.id
		WHERE ar.account_id = ?
		ORDER BY r.label`
	rows, err := r.db.QueryContext(ctx, query, accountID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		var id string
		if err := rows.Scan(&id, &role.Label); err != nil {
			return nil, err
		}
		role.ID = idx.ID(id)
		roles = append(roles, role)
	}
	return roles, rows.Err()
}
