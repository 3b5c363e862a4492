package sqlite

import (
	"context"

	"github.com/lodgekeep/backoffice/internal/admin/domain"
	"github.com/lodgekeep/backoffice/pkg/idx"
)

type rolesRepo struct {
	db dbtx
}

func (r *rolesRepo) GetByID(ctx context.Context, id idx.ID) (domain.Role, error) {
	var role domain.Role
	var rowID string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, label FROM roles WHERE id = ?`, id.String()).
		Scan(&rowID, &role.Label)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	role.ID = idx.ID(rowID)
	return role, nil
}

func (r *rolesRepo) GetByLabel(ctx context.Context, label string) (domain.Role, error) {
	var role domain.Role
	var rowID string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, label FROM roles WHERE label = ?`, label).
		Scan(&rowID, &role.Label)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	role.ID = idx.ID(rowID)
	return role, nil
}

func (r *rolesRepo) ListAll(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, label FROM roles ORDER BY label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		var rowID string
		if err := rows.Scan(&rowID, &role.Label); err != nil {
			return nil, err
		}
		role.ID = idx.ID(rowID)
		roles = append(roles, role)
	}
	return roles, rows.Err()
}
