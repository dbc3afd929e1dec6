package domain

import "time"

// Role is the access class of a dashboard user.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleFreelancer Role = "freelancer"
	RoleClient     Role = "client"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleFreelancer, RoleClient:
		return true
	}
	return false
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         Role      `json:"role" bson:"role"`
	ClientID     string    `json:"client_id,omitempty" bson:"client_id,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// Validate checks the role/client link invariant: a client user must reference
// a client and staff users must not.
func (u *User) Validate() error {
	if u.Username == "" {
		return NewValidationError("username", "is required")
	}
	if !u.Role.Valid() {
		return NewValidationError("role", "must be one of: admin freelancer client")
	}
	if u.Role == RoleClient && u.ClientID == "" {
		return NewValidationError("client_id", "is required for client users")
	}
	if u.Role != RoleClient && u.ClientID != "" {
		return NewValidationError("client_id", "must be empty for "+string(u.Role)+" users")
	}
	return nil
}

// Actor is the resolved identity of the caller, as supplied by the auth layer.
type Actor struct {
	Username string
	Role     Role
	ClientID string
}
