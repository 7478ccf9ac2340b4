package domain

import "time"

// UserRole enumerates account roles for the admin surface.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleAgent UserRole = "agent"
)

// User is an operator account. Authentication is disabled by default; these
// records only matter when AUTH_ENABLED is set.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}
