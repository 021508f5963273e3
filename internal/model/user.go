package model

import "time"

// Roles a user may register with.
const (
	RoleEventOrganizer = "event_organizer"
	RoleCustomer       = "customer"
)

// User represents a row in the `users` table. A freshly registered user
// is pending: OTPCode and OTPExpiresAt are set and IsActive is false.
// Verifying the OTP clears both fields permanently and activates the
// account. Username and email are unique.
type User struct {
	ID           uint64     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	OTPCode      *string    `json:"-"` // nil once verified
	OTPExpiresAt *time.Time `json:"-"` // nil once verified
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ValidRole reports whether role is one of the accepted registration roles.
func ValidRole(role string) bool {
	return role == RoleEventOrganizer || role == RoleCustomer
}
