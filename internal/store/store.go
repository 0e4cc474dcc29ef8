package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/redsea-eng/englib/internal/model"
)

// Store holds the in-memory entity collections. Process restart loses
// everything except the seeded root account, which New reconstructs
// identically every time.
type Store struct {
	mu       sync.RWMutex
	users    []model.User
	courses  []model.Course
	messages []model.Message
	onChange func() // callback for UI updates
}

// New creates a store seeded with the protected root account
func New() *Store {
	return &Store{
		users: []model.User{model.SeedRoot()},
	}
}

// SetChangeCallback sets the callback invoked after every successful mutation
func (s *Store) SetChangeCallback(callback func()) {
	s.onChange = callback
}

// notify calls the change callback if set. Called outside the lock.
func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// NewGuest synthesizes a transient guest account for the given visitor name.
// Guests never enter the user collection.
func NewGuest(name string) model.User {
	return model.User{
		ID:       "guest-" + uuid.NewString(),
		Username: "guest-" + name,
		Name:     name,
		Role:     model.RoleGuest,
	}
}

// Users returns a snapshot of all accounts
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]model.User, len(s.users))
	copy(users, s.users)
	return users
}

// UserByID returns the account with the given id
func (s *Store) UserByID(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// Authenticate performs the credential lookup for the login form. The
// security filter must have vetted both fields before this is called.
func (s *Store) Authenticate(username, password string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			if u.Locked {
				return model.User{}, ErrAccountLocked
			}
			return u, nil
		}
	}
	return model.User{}, ErrInvalidCredentials
}

// AddUser creates a new account. Usernames are unique login keys.
func (s *Store) AddUser(username, name string, role model.Role, password string) (model.User, error) {
	s.mu.Lock()

	for _, u := range s.users {
		if u.Username == username {
			s.mu.Unlock()
			return model.User{}, fmt.Errorf("add user %q: %w", username, ErrDuplicateUsername)
		}
	}

	user := model.User{
		ID:       uuid.NewString(),
		Username: username,
		Name:     name,
		Role:     role,
		Password: password,
	}

	users := make([]model.User, len(s.users), len(s.users)+1)
	copy(users, s.users)
	s.users = append(users, user)
	s.mu.Unlock()

	s.notify()
	return user, nil
}

// DeleteUser removes an account. The seeded root account is refused here as
// well, independently of the policy layer.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()

	index := -1
	for i, u := range s.users {
		if u.ID == id {
			if u.IsProtected() {
				s.mu.Unlock()
				return ErrProtectedAccount
			}
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return fmt.Errorf("delete user %q: %w", id, ErrNotFound)
	}

	users := make([]model.User, 0, len(s.users)-1)
	users = append(users, s.users[:index]...)
	users = append(users, s.users[index+1:]...)
	s.users = users
	s.mu.Unlock()

	s.notify()
	return nil
}

// SetUserLocked freezes or unfreezes an account
func (s *Store) SetUserLocked(id string, locked bool) error {
	s.mu.Lock()

	index := -1
	for i, u := range s.users {
		if u.ID == id {
			if u.IsProtected() {
				s.mu.Unlock()
				return ErrProtectedAccount
			}
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return fmt.Errorf("lock user %q: %w", id, ErrNotFound)
	}

	users := make([]model.User, len(s.users))
	copy(users, s.users)
	users[index].Locked = locked
	s.users = users
	s.mu.Unlock()

	s.notify()
	return nil
}
