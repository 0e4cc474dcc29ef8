package model

import "testing"

func TestSeedRoot(t *testing.T) {
	root := SeedRoot()

	if root.ID != RootUserID {
		t.Errorf("Expected seeded root id %q, got %q", RootUserID, root.ID)
	}
	if root.Username != RootUsername {
		t.Errorf("Expected seeded root username %q, got %q", RootUsername, root.Username)
	}
	if root.Role != RoleRoot {
		t.Errorf("Expected seeded root role ROOT, got %s", root.Role)
	}
	if !root.IsProtected() {
		t.Error("Seeded root account must be protected")
	}
	if root.Locked {
		t.Error("Seeded root account must not be locked")
	}

	// Two seeds must be identical records
	if SeedRoot() != SeedRoot() {
		t.Error("SeedRoot must reconstruct an identical record every time")
	}
}

func TestUser_IsProtected(t *testing.T) {
	tests := []struct {
		username string
		expected bool
	}{
		{"zero", true},
		{"zero2", false},
		{"", false},
		{"admin", false},
	}

	for _, test := range tests {
		u := User{Username: test.username}
		if u.IsProtected() != test.expected {
			t.Errorf("IsProtected() for username %q = %v, expected %v", test.username, u.IsProtected(), test.expected)
		}
	}
}

func TestRole_Predicates(t *testing.T) {
	tests := []struct {
		role    Role
		staff   bool
		isGuest bool
	}{
		{RoleRoot, true, false},
		{RoleAdmin, true, false},
		{RoleStudent, false, false},
		{RoleGuest, false, true},
	}

	for _, test := range tests {
		if test.role.IsStaff() != test.staff {
			t.Errorf("%s.IsStaff() = %v, expected %v", test.role, test.role.IsStaff(), test.staff)
		}
		if test.role.IsGuest() != test.isGuest {
			t.Errorf("%s.IsGuest() = %v, expected %v", test.role, test.role.IsGuest(), test.isGuest)
		}
	}
}
