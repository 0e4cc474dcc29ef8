package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redsea-eng/englib/internal/model"
)

func user(id, username string, role model.Role) model.User {
	return model.User{ID: id, Username: username, Name: username, Role: role}
}

func TestCanDeleteUser_ProtectedAccount(t *testing.T) {
	zero := model.SeedRoot()

	// No actor, whatever the role, may ever delete "zero".
	actors := []model.User{
		zero,
		user("2", "root2", model.RoleRoot),
		user("3", "prof", model.RoleAdmin),
		user("4", "student", model.RoleStudent),
		user("5", "guest", model.RoleGuest),
	}
	for _, actor := range actors {
		d := CanDeleteUser(actor, zero)
		require.False(t, d.Allowed, "actor role %s must not delete zero", actor.Role)
		assert.Equal(t, ReasonProtectedAccount, d.Reason)
	}
}

func TestCanDeleteUser_SelfDelete(t *testing.T) {
	actor := user("7", "prof", model.RoleAdmin)
	d := CanDeleteUser(actor, actor)
	require.False(t, d.Allowed)
	assert.Equal(t, ReasonSelfDelete, d.Reason)
}

func TestCanDeleteUser_AdminHierarchy(t *testing.T) {
	admin := user("10", "prof", model.RoleAdmin)

	allowed := CanDeleteUser(admin, user("11", "student", model.RoleStudent))
	assert.True(t, allowed.Allowed, "professor deletes student")

	tests := []struct {
		target model.User
	}{
		{user("12", "prof2", model.RoleAdmin)},
		{user("13", "root2", model.RoleRoot)},
		{user("14", "visitor", model.RoleGuest)},
	}
	for _, test := range tests {
		d := CanDeleteUser(admin, test.target)
		require.False(t, d.Allowed, "professor must not delete %s", test.target.Role)
		assert.Equal(t, ReasonAdminDeletesStudentsOnly, d.Reason)
	}
}

func TestCanDeleteUser_RootTier(t *testing.T) {
	student := user("20", "student", model.RoleStudent)
	secondRoot := user("21", "root2", model.RoleRoot)

	d := CanDeleteUser(student, secondRoot)
	require.False(t, d.Allowed)
	assert.Equal(t, ReasonRootTierRequired, d.Reason)

	// ROOT removes any non-protected account, including another ROOT.
	root := user("22", "root3", model.RoleRoot)
	assert.True(t, CanDeleteUser(root, secondRoot).Allowed)
	assert.True(t, CanDeleteUser(root, student).Allowed)
}

func TestCanToggleLock(t *testing.T) {
	zero := model.SeedRoot()
	root := user("2", "root2", model.RoleRoot)
	admin := user("3", "prof", model.RoleAdmin)
	student := user("4", "student", model.RoleStudent)

	d := CanToggleLock(root, zero)
	require.False(t, d.Allowed)
	assert.Equal(t, ReasonProtectedAccount, d.Reason)

	d = CanToggleLock(admin, root)
	require.False(t, d.Allowed)
	assert.Equal(t, ReasonLockRootRequiresRoot, d.Reason)

	assert.True(t, CanToggleLock(root, admin).Allowed)
	assert.True(t, CanToggleLock(admin, student).Allowed)
	assert.True(t, CanToggleLock(root, user("5", "root3", model.RoleRoot)).Allowed)
}

func TestCanManageContent(t *testing.T) {
	tests := []struct {
		role    model.Role
		allowed bool
	}{
		{model.RoleRoot, true},
		{model.RoleAdmin, true},
		{model.RoleStudent, false},
		{model.RoleGuest, false},
	}

	for _, test := range tests {
		d := CanManageContent(user("1", "u", test.role))
		assert.Equal(t, test.allowed, d.Allowed, "role %s", test.role)
		if !test.allowed {
			assert.Equal(t, ReasonStaffOnly, d.Reason)
		}
	}
}

func TestCanSendMessage(t *testing.T) {
	for _, role := range []model.Role{model.RoleRoot, model.RoleAdmin, model.RoleStudent} {
		assert.True(t, CanSendMessage(user("1", "u", role)).Allowed, "role %s", role)
	}

	d := CanSendMessage(user("2", "visitor", model.RoleGuest))
	require.False(t, d.Allowed)
	assert.Equal(t, ReasonGuestReadOnly, d.Reason)
}

func TestCanDeleteMessage(t *testing.T) {
	assert.True(t, CanDeleteMessage(user("1", "root", model.RoleRoot)).Allowed)
	assert.True(t, CanDeleteMessage(user("2", "prof", model.RoleAdmin)).Allowed)
	assert.False(t, CanDeleteMessage(user("3", "student", model.RoleStudent)).Allowed)
	assert.False(t, CanDeleteMessage(user("4", "visitor", model.RoleGuest)).Allowed)
}

func TestCanManageLogos(t *testing.T) {
	assert.True(t, CanManageLogos(user("1", "root", model.RoleRoot)).Allowed)

	for _, role := range []model.Role{model.RoleAdmin, model.RoleStudent, model.RoleGuest} {
		d := CanManageLogos(user("2", "u", role))
		require.False(t, d.Allowed, "role %s", role)
		assert.Equal(t, ReasonRootOnly, d.Reason)
	}
}

func TestCanPerform_Dispatch(t *testing.T) {
	root := user("1", "root2", model.RoleRoot)
	student := user("2", "student", model.RoleStudent)

	assert.True(t, CanPerform(root, ActionDeleteUser, student).Allowed)
	assert.False(t, CanPerform(student, ActionManageContent, model.User{}).Allowed)
	assert.True(t, CanPerform(student, ActionSendMessage, model.User{}).Allowed)
	assert.False(t, CanPerform(student, ActionManageLogos, model.User{}).Allowed)
	assert.False(t, CanPerform(root, Action(99), model.User{}).Allowed)
}

func TestDenyReason_StringsAreDistinct(t *testing.T) {
	reasons := []DenyReason{
		ReasonProtectedAccount,
		ReasonSelfDelete,
		ReasonAdminDeletesStudentsOnly,
		ReasonRootTierRequired,
		ReasonLockRootRequiresRoot,
		ReasonStaffOnly,
		ReasonGuestReadOnly,
		ReasonRootOnly,
	}

	seen := make(map[string]DenyReason)
	for _, r := range reasons {
		s := r.String()
		require.NotEmpty(t, s)
		_, dup := seen[s]
		require.False(t, dup, "reason text %q reused", s)
		seen[s] = r
	}
}
