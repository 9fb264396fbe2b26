package auth

import (
	"testing"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
)

func TestCapabilitiesForRole(t *testing.T) {
	if !HasCapability(models.RoleAdmin, CapManageUsers) {
		t.Fatal("admin should manage users")
	}
	if HasCapability(models.RoleTeacher, CapManageUsers) {
		t.Fatal("teacher should not manage users")
	}
	if !HasCapability(models.RoleTeacher, CapAuthorCourses) {
		t.Fatal("teacher should author courses")
	}
	if HasCapability(models.RoleStudent, CapAuthorCourses) {
		t.Fatal("student should not author courses")
	}
	if len(CapabilitiesForRole(models.RoleType("GUEST"))) != 0 {
		t.Fatal("unknown role should have no capabilities")
	}
}

func TestCapabilitiesForRoleReturnsCopy(t *testing.T) {
	caps := CapabilitiesForRole(models.RoleStudent)
	caps[0] = "tampered"
	if CapabilitiesForRole(models.RoleStudent)[0] == "tampered" {
		t.Fatal("mutating the returned slice must not affect the role table")
	}
}
