package domain

import "strings"

// Role is the level of access granted to a session.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User is a session identity. Users are not persisted; they exist only for the
// lifetime of the session that logged in.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// DisplayNameFor derives a customer display name from an email address.
func DisplayNameFor(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
