package domain

// UserStatus represents lifecycle states for a registered user.
type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
)

// User is the domain model for registered board users. New users start as
// pending; rejection removes the record entirely, so no rejected terminal
// state exists.
type User struct {
	ID         string     `json:"id"`
	Status     UserStatus `json:"status"`
	Name       string     `json:"name"`
	Role       string     `json:"role"`
	Department string     `json:"department"`
	Email      string     `json:"email"`
}
