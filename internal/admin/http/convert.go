package http

import (
	"fmt"

	"github.com/lodgekeep/backoffice/internal/admin/domain"
	"github.com/lodgekeep/backoffice/pkg/adminapi"
	"github.com/lodgekeep/backoffice/pkg/idx"
)

func toRoleInfo(r domain.Role) adminapi.RoleInfo {
	return adminapi.RoleInfo{ID: r.ID.String(), Label: r.Label}
}

func toAccountInfo(a domain.Account) adminapi.AccountInfo {
	roles := make([]adminapi.RoleInfo, len(a.Roles))
	for i, r := range a.Roles {
		roles[i] = toRoleInfo(r)
	}
	return adminapi.AccountInfo{
		ID:        a.ID.String(),
		Username:  a.Username,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Roles:     roles,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toAccountInfos(accounts []domain.Account) []adminapi.AccountInfo {
	out := make([]adminapi.AccountInfo, len(accounts))
	for i, a := range accounts {
		out[i] = toAccountInfo(a)
	}
	return out
}

func toRoomInfo(r domain.Room) adminapi.RoomInfo {
	info := adminapi.RoomInfo{
		ID:          r.ID.String(),
		Name:        r.Name,
		Description: r.Description,
		TypeID:      r.TypeID.String(),
		PriceCents:  r.PriceCents,
		Capacity:    r.Capacity,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if !r.BookingID.IsZero() {
		info.BookingID = r.BookingID.String()
	}
	return info
}

func toRoomInfos(rooms []domain.Room) []adminapi.RoomInfo {
	out := make([]adminapi.RoomInfo, len(rooms))
	for i, r := range rooms {
		out[i] = toRoomInfo(r)
	}
	return out
}

func toBookingInfo(b domain.Booking) adminapi.BookingInfo {
	return adminapi.BookingInfo{
		ID:        b.ID.String(),
		AccountID: b.AccountID.String(),
		RoomID:    b.RoomID.String(),
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		CreatedAt: b.CreatedAt,
	}
}

func toBookingInfos(bookings []domain.Booking) []adminapi.BookingInfo {
	out := make([]adminapi.BookingInfo, len(bookings))
	for i, b := range bookings {
		out[i] = toBookingInfo(b)
	}
	return out
}

func toRoomTypeInfo(rt domain.RoomType) adminapi.RoomTypeInfo {
	return adminapi.RoomTypeInfo{
		ID:             rt.ID.String(),
		Name:           rt.Name,
		BasePriceCents: rt.BasePriceCents,
	}
}

// parseIDs converts wire-format ULID strings, naming the field in the error
// so it can surface as a 400.
func parseIDs(field string, raw []string) ([]idx.ID, error) {
	ids := make([]idx.ID, len(raw))
	for i, s := range raw {
		id, err := idx.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid id %q", field, s)
		}
		ids[i] = id
	}
	return ids, nil
}

// parseOptionalID parses an id that may legitimately be absent, returning
// idx.Zero for the empty string.
func parseOptionalID(field, raw string) (idx.ID, error) {
	if raw == "" {
		return idx.Zero, nil
	}
	id, err := idx.Parse(raw)
	if err != nil {
		return idx.Zero, fmt.Errorf("%s: invalid id %q", field, raw)
	}
	return id, nil
}
