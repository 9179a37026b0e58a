package model

import "time"

// Role gates which booking actions a profile may perform.
type Role string

const (
	RoleNone     Role = "none"
	RoleClient   Role = "client"
	RoleCoiffeur Role = "coiffeur"
	RoleSalon    Role = "salon"
)

// AssignableRoles lists the roles a profile may pick after registration.
var AssignableRoles = []Role{RoleClient, RoleCoiffeur, RoleSalon}

// ValidRole reports whether the value is an assignable role.
func ValidRole(r Role) bool {
	for _, role := range AssignableRoles {
		if role == r {
			return true
		}
	}
	return false
}

// Profile represents a registered identity of the marketplace.
type Profile struct {
	ID           int64
	Login        string
	PasswordHash string
	Name         string
	Role         Role
	CreatedAt    time.Time
}
