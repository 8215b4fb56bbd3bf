package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is a user's access level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string { return string(r) }

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is an account with its letter-generation balances.
//
// Credits is the paid balance; it is only ever reset to a fixed value by
// the restore operation — decrements happen through the generation flow.
// Quota is the remaining free allowance and TotalUsage counts consumed
// generations; the quota restore operation shifts both by one unit inside
// a single transaction.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	Credits      int
	Quota        int
	TotalUsage   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
