package domain

import (
	"fmt"
	"time"
)

type User struct {
	ID             string
	Email          string
	Name           string
	OrganizationID string
	Role           UserRole
	Status         UserStatus
	// APIToken authenticates HTTP calls against the admin gateway.
	// Never included in list/inspect output.
	APIToken  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) Validate() error {
	if u.Email == "" {
		return fmt.Errorf("user email is required")
	}
	if u.Role != "" && u.Role != RoleAdmin && u.Role != RoleMember {
		return fmt.Errorf("invalid user role %q", u.Role)
	}
	return nil
}

// IsAdmin reports whether the user carries the admin role claim.
// Authorization is role-based; there is no privileged email address.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
