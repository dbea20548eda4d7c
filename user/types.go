package user

import "github.com/google/uuid"

// Role represents an authorisation tier. It is stored on the account
// but not enforced anywhere in this library.
type Role string

const (
	// RoleAdmin has full control in a consuming system.
	RoleAdmin Role = "admin"

	// RoleRegular is a household member. The default for new accounts.
	RoleRegular Role = "regular"
)

// ValidRoles is the set of valid user roles.
var ValidRoles = []Role{RoleAdmin, RoleRegular}

// IsValidRole returns true if the role is a recognised user role.
func IsValidRole(r Role) bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

// User represents a registered account.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// New creates a user with a generated ID and the regular role.
func New(name, email string) *User {
	return &User{
		ID:    GenerateID(),
		Name:  name,
		Email: email,
		Role:  RoleRegular,
	}
}

// GenerateID creates a new UUID for a user.
func GenerateID() string {
	return uuid.New().String()
}
