package models

import "time"

// Roles a user record can carry. Every record created through registration
// starts as a member; only the promotion endpoint writes RoleAdmin.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User represents a registered user in the system.
type User struct {
	ID        string    `json:"id" firestore:"-"` // Firestore document ID
	Email     string    `json:"email" firestore:"email"`
	Name      string    `json:"name,omitempty" firestore:"name,omitempty"`
	PhotoURL  string    `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`
	Role      string    `json:"role" firestore:"role"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// IsAdmin reports whether the record carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
