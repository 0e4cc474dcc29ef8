package model

// Role represents the permission tier of a user account
type Role string

const (
	// RoleRoot is the super-administrator tier; sole manager of institutional
	// branding and of other administrator accounts
	RoleRoot Role = "ROOT"

	// RoleAdmin is the professor tier; manages course content and student accounts
	RoleAdmin Role = "ADMIN"

	// RoleStudent is a registered student account
	RoleStudent Role = "STUDENT"

	// RoleGuest is a time-boxed, read-only anonymous session
	RoleGuest Role = "GUEST"
)

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// IsStaff returns true for the roles allowed to manage course content
func (r Role) IsStaff() bool {
	return r == RoleRoot || r == RoleAdmin
}

// IsGuest returns true for the anonymous visitor role
func (r Role) IsGuest() bool {
	return r == RoleGuest
}
