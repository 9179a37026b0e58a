package dto

// AuthRequest describes login/password payload. Name is optional on
// registration and defaults to the login.
type AuthRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// RoleRequest selects which side of the marketplace the profile acts on.
type RoleRequest struct {
	Role string `json:"role"`
}
