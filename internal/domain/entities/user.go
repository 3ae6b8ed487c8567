package entities

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleRider UserRole = "rider"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleUser, UserRoleRider, UserRoleAdmin:
		return true
	}
	return false
}

// User is an account known to the platform. Email is unique.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName,omitempty"`
	PhotoURL    string    `json:"photoURL,omitempty"`
	Role        UserRole  `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}
