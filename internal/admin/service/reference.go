package service

import (
	"context"
	"fmt"

	"github.com/lodgekeep/backoffice/internal/admin/domain"
	"github.com/lodgekeep/backoffice/internal/admin/store"
)

// ReferenceService serves the read-only collections the back-office screens
// are built from: accounts by role, rooms, bookings, and the role and room
// type catalogues.
type ReferenceService struct {
	Store store.Store
}

// ListCustomers returns all accounts holding the CUSTOMER role.
func (s *ReferenceService) ListCustomers(ctx context.Context) ([]domain.Account, error) {
	return s.Store.Accounts().ListByRole(ctx, domain.RoleCustomer)
}

// ListAdmins returns all accounts holding the ADMIN role.
func (s *ReferenceService) ListAdmins(ctx context.Context) ([]domain.Account, error) {
	return s.Store.Accounts().ListByRole(ctx, domain.RoleAdmin)
}

func (s *ReferenceService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.Store.Rooms().ListAll(ctx)
}

func (s *ReferenceService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.Store.Bookings().ListAll(ctx)
}

func (s *ReferenceService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListAll(ctx)
}

func (s *ReferenceService) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	return s.Store.RoomTypes().ListAll(ctx)
}

// Overview is the dashboard payload: the managed collections plus their
// totals, loaded in one pass.
type Overview struct {
	Customers []domain.Account
	Admins    []domain.Account
	Rooms     []domain.Room
	Bookings  []domain.Booking

	TotalCustomers int
	TotalAdmins    int
	TotalRooms     int
	TotalBookings  int
}

// Overview assembles the dashboard collections and counts.
func (s *ReferenceService) Overview(ctx context.Context) (Overview, error) {
	var o Overview
	var err error

	if o.Customers, err = s.ListCustomers(ctx); err != nil {
		return Overview{}, fmt.Errorf("list customers: %w", err)
	}
	if o.Admins, err = s.ListAdmins(ctx); err != nil {
		return Overview{}, fmt.Errorf("list admins: %w", err)
	}
	if o.Rooms, err = s.ListRooms(ctx); err != nil {
		return Overview{}, fmt.Errorf("list rooms: %w", err)
	}
	if o.Bookings, err = s.ListBookings(ctx); err != nil {
		return Overview{}, fmt.Errorf("list bookings: %w", err)
	}

	o.TotalCustomers = len(o.Customers)
	o.TotalAdmins = len(o.Admins)
	o.TotalRooms = len(o.Rooms)
	o.TotalBookings = len(o.Bookings)
	return o, nil
}
