package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/lodgekeep/backoffice/internal/admin/domain"
	"github.com/lodgekeep/backoffice/internal/admin/store"
	"github.com/lodgekeep/backoffice/pkg/idx"
)

type roomsRepo struct {
	db dbtx
}

const roomColumns = `id, name, description, type_id, booking_id, price_cents, capacity, status, created_at, updated_at`

func (r *roomsRepo) GetByID(ctx context.Context, id idx.ID) (domain.Room, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id = ?`, id.String())
	return scanRoom(row)
}

func (r *roomsRepo) GetByName(ctx context.Context, name string) (domain.Room, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE name = ?`, name)
	return scanRoom(row)
}

func (r *roomsRepo) ListAll(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roomColumns+` FROM rooms ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *roomsRepo) Create(ctx context.Context, room domain.Room) error {
	now := time.Now().UTC()
	const query = `
		INSERT INTO rooms (id, name, description, type_id, booking_id, price_cents, capacity, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		room.ID.String(),
		room.Name,
		room.Description,
		room.TypeID.String(),
		idToNull(room.BookingID),
		room.PriceCents,
		room.Capacity,
		string(room.Status),
		now,
		now,
	)
	return mapConflict(err)
}

func (r *roomsRepo) Update(ctx context.Context, room domain.Room) error {
	const query = `
		UPDATE rooms
		SET name = ?, description = ?, type_id = ?, booking_id = ?,
		    price_cents = ?, capacity = ?, status = ?, updated_at = ?
		WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query,
		room.Name,
		room.Description,
		room.TypeID.String(),
		idToNull(room.BookingID),
		room.PriceCents,
		room.Capacity,
		string(room.Status),
		time.Now().UTC(),
		room.ID.String(),
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

func (r *roomsRepo) Delete(ctx context.Context, id idx.ID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id.String())
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

func (r *roomsRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&count)
	return count, err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRoom(s scanner) (domain.Room, error) {
	var room domain.Room
	var id, typeID, status string
	var bookingID sql.NullString
	err := s.Scan(
		&id,
		&room.Name,
		&room.Description,
		&typeID,
		&bookingID,
		&room.PriceCents,
		&room.Capacity,
		&status,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return domain.Room{}, mapNotFound(err)
	}
	room.ID = idx.ID(id)
	room.TypeID = idx.ID(typeID)
	room.Status = domain.VerificationStatus(status)
	if bookingID.Valid {
		room.BookingID = idx.ID(bookingID.String)
	}
	return room, nil
}

func idToNull(id idx.ID) sql.NullString {
	if id.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: id.String(), Valid: true}
}
