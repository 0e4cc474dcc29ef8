package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redsea-eng/englib/internal/model"
)

func TestNew_SeedsProtectedRoot(t *testing.T) {
	s := New()

	users := s.Users()
	require.Len(t, users, 1)
	assert.Equal(t, model.RootUsername, users[0].Username)
	assert.Equal(t, model.RoleRoot, users[0].Role)
	assert.Equal(t, model.RootUserID, users[0].ID)
}

func TestAuthenticate(t *testing.T) {
	s := New()
	root := model.SeedRoot()

	u, err := s.Authenticate(root.Username, root.Password)
	require.NoError(t, err)
	assert.Equal(t, root.ID, u.ID)

	_, err = s.Authenticate(root.Username, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Authenticate("nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_LockedAccount(t *testing.T) {
	s := New()

	u, err := s.AddUser("s1", "Student One", model.RoleStudent, "pw")
	require.NoError(t, err)
	require.NoError(t, s.SetUserLocked(u.ID, true))

	_, err = s.Authenticate("s1", "pw")
	assert.ErrorIs(t, err, ErrAccountLocked)

	require.NoError(t, s.SetUserLocked(u.ID, false))
	_, err = s.Authenticate("s1", "pw")
	assert.NoError(t, err)
}

func TestAddUser_DuplicateUsername(t *testing.T) {
	s := New()

	_, err := s.AddUser("prof", "Dr. Ali", model.RoleAdmin, "pw")
	require.NoError(t, err)

	_, err = s.AddUser("prof", "Someone Else", model.RoleStudent, "pw2")
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	_, err = s.AddUser(model.RootUsername, "Impostor", model.RoleStudent, "pw")
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestDeleteUser(t *testing.T) {
	s := New()

	u, err := s.AddUser("s1", "Student One", model.RoleStudent, "pw")
	require.NoError(t, err)
	require.Len(t, s.Users(), 2)

	require.NoError(t, s.DeleteUser(u.ID))
	assert.Len(t, s.Users(), 1)

	err = s.DeleteUser(u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUser_ProtectedRoot(t *testing.T) {
	s := New()

	err := s.DeleteUser(model.RootUserID)
	require.ErrorIs(t, err, ErrProtectedAccount)
	assert.Len(t, s.Users(), 1)

	err = s.SetUserLocked(model.RootUserID, true)
	require.ErrorIs(t, err, ErrProtectedAccount)

	users := s.Users()
	assert.False(t, users[0].Locked)
}

func TestUsers_SnapshotIsolation(t *testing.T) {
	s := New()

	users := s.Users()
	users[0].Name = "mutated"

	fresh := s.Users()
	assert.NotEqual(t, "mutated", fresh[0].Name, "mutating a snapshot must not affect the store")
}

func TestNewGuest(t *testing.T) {
	g := NewGuest("Sara")

	assert.Equal(t, model.RoleGuest, g.Role)
	assert.Equal(t, "Sara", g.Name)
	assert.Empty(t, g.Password)
	assert.NotEmpty(t, g.ID)

	// Guests are transient; the store never holds them.
	s := New()
	assert.Len(t, s.Users(), 1)
}

func TestChangeCallback(t *testing.T) {
	s := New()

	calls := 0
	s.SetChangeCallback(func() { calls++ })

	_, err := s.AddUser("s1", "Student One", model.RoleStudent, "pw")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// Failed mutations must not notify.
	_, err = s.AddUser("s1", "Dup", model.RoleStudent, "pw")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidCredentials, ErrAccountLocked,
		ErrOversizeFile, ErrUnsupportedExtension, ErrOversizeImage,
		ErrEmptyMessage, ErrInvalidSemester,
		ErrNotFound, ErrDuplicateUsername, ErrProtectedAccount,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v overlaps %v", a, b)
			}
		}
	}
}
