package sqlite

import (
	"context"

	"github.com/lodgekeep/backoffice/internal/admin/domain"
	"github.com/lodgekeep/backoffice/pkg/idx"
)

type bookingsRepo struct {
	db dbtx
}

const bookingColumns = `id, account_id, room_id, check_in, check_out, created_at`

func (r *bookingsRepo) GetByID(ctx context.Context, id idx.ID) (domain.Booking, error) {
	var b domain.Booking
	var rowID, accountID, roomID string
	err := r.db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id.String()).
		Scan(&rowID, &accountID, &roomID, &b.CheckIn, &b.CheckOut, &b.CreatedAt)
	if err != nil {
		return domain.Booking{}, mapNotFound(err)
	}
	b.ID = idx.ID(rowID)
	b.AccountID = idx.ID(accountID)
	b.RoomID = idx.ID(roomID)
	return b, nil
}

func (r *bookingsRepo) ListAll(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY check_in`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		var rowID, accountID, roomID string
		if err := rows.Scan(&rowID, &accountID, &roomID, &b.CheckIn, &b.CheckOut, &b.CreatedAt); err != nil {
			return nil, err
		}
		b.ID = idx.ID(rowID)
		b.AccountID = idx.ID(accountID)
		b.RoomID = idx.ID(roomID)
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
