package model

// Account roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Account represents a login-capable identity. The password field holds a
// bcrypt hash, never the raw secret. Field names follow the persisted state
// layout, so the struct serializes directly into the state blob.
type Account struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"` // admin or user
	Verified  bool   `json:"verified"`
}

// ValidRole reports whether role is one of the supported account roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
