package domain

import "testing"

func TestParseRole(t *testing.T) {
	for _, s := range []string{"admin", "manager", "staff"} {
		role, err := ParseRole(s)
		if err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", s, err)
		}
		if string(role) != s {
			t.Fatalf("ParseRole(%q) = %q", s, role)
		}
	}

	for _, s := range []string{"", "root", "Admin", "superuser"} {
		if _, err := ParseRole(s); err != ErrInvalidInput {
			t.Fatalf("ParseRole(%q): expected ErrInvalidInput, got %v", s, err)
		}
	}
}

func TestRolePermissions_Hierarchy(t *testing.T) {
	admin := RoleAdmin.Permissions()
	manager := RoleManager.Permissions()
	staff := RoleStaff.Permissions()

	if len(staff) != 1 || staff[0] != "staff" {
		t.Fatalf("staff expansion = %v, want [staff]", staff)
	}

	// admin ⊇ manager ⊇ staff
	if !contains(manager, staff) {
		t.Fatalf("manager %v does not contain staff %v", manager, staff)
	}
	if !contains(admin, manager) {
		t.Fatalf("admin %v does not contain manager %v", admin, manager)
	}

	// reflexive: each role implies itself
	for _, r := range []Role{RoleAdmin, RoleManager, RoleStaff} {
		if !r.HasPermission(string(r)) {
			t.Fatalf("role %s does not imply itself", r)
		}
	}
}

func TestRolePermissions_UnknownRole(t *testing.T) {
	if perms := Role("ghost").Permissions(); len(perms) != 0 {
		t.Fatalf("unknown role expanded to %v, want empty", perms)
	}
	if perms := Role("").Permissions(); len(perms) != 0 {
		t.Fatalf("zero role expanded to %v, want empty", perms)
	}
	if Role("ghost").HasPermission("staff") {
		t.Fatalf("unknown role granted a permission")
	}
}

func TestRolePermissions_CopyIsolation(t *testing.T) {
	perms := RoleAdmin.Permissions()
	perms[0] = "mutated"
	if RoleAdmin.Permissions()[0] != "admin" {
		t.Fatalf("mutating the returned slice leaked into the table")
	}
}

func contains(outer, inner []string) bool {
	for _, want := range inner {
		found := false
		for _, have := range outer {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
