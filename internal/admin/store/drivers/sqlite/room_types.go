package sqlite

import (
	"context"

	"github.com/lodgekeep/backoffice/internal/admin/domain"
	"github.com/lodgekeep/backoffice/pkg/idx"
)

type roomTypesRepo struct {
	db dbtx
}

func (r *roomTypesRepo) GetByID(ctx context.Context, id idx.ID) (domain.RoomType, error) {
	var rt domain.RoomType
	var rowID string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, base_price_cents FROM room_types WHERE id = ?`, id.String()).
		Scan(&rowID, &rt.Name, &rt.BasePriceCents)
	if err != nil {
		return domain.RoomType{}, mapNotFound(err)
	}
	rt.ID = idx.ID(rowID)
	return rt, nil
}

func (r *roomTypesRepo) ListAll(ctx context.Context) ([]domain.RoomType, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, base_price_cents FROM room_types ORDER BY base_price_cents`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.RoomType
	for rows.Next() {
		var rt domain.RoomType
		var rowID string
		if err := rows.Scan(&rowID, &rt.Name, &rt.BasePriceCents); err != nil {
			return nil, err
		}
		rt.ID = idx.ID(rowID)
		types = append(types, rt)
	}
	return types, rows.Err()
}
