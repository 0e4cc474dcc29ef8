package model

// Seeded ROOT account. The record is reconstructed identically at every
// startup and is immutable and undeletable for the whole process lifetime.
const (
	RootUserID   = "1"
	RootUsername = "zero"
)

// User represents a library account
type User struct {
	ID       string
	Username string // login key, unique across the store
	Name     string // display name
	Role     Role
	Password string // empty for GUEST sessions
	Locked   bool
	// FailedAttempts is declared for the lock-after-failures feature the
	// login screen copy promises. Nothing increments it yet.
	FailedAttempts int
}

// IsProtected returns true for the seeded ROOT account that can never be
// deleted or locked
func (u User) IsProtected() bool {
	return u.Username == RootUsername
}

// SeedRoot returns the fixed ROOT account present after every startup
func SeedRoot() User {
	return User{
		ID:       RootUserID,
		Username: RootUsername,
		Name:     "المدير العام (zero)",
		Role:     RoleRoot,
		Password: "975312468qq",
	}
}
