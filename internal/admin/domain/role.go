package domain

import "github.com/lodgekeep/backoffice/pkg/idx"

// Canonical role labels seeded by migration. Roles are read-only reference
// data; the back-office assigns them but never mutates the set.
const (
	RoleAdmin    = "ADMIN"
	RoleStaff    = "STAFF"
	RoleCustomer = "CUSTOMER"
)

type Role struct {
	ID    idx.ID
	Label string
}
