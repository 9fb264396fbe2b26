package auth

import (
	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
)

// Capability names exposed to clients. The shell resolves its
// navigation and action visibility from this set once per login.
const (
	CapBrowseCatalog     = "catalog:browse"
	CapEnrollCourse      = "course:enroll"
	CapAuthorCourses     = "course:author"
	CapImportCourses     = "course:import"
	CapManageOwnStudents = "students:list"
	CapManageUsers       = "users:manage"
	CapManageInstitutes  = "institutes:manage"
	CapManageTechnology  = "technology:manage"
)

var roleCapabilities = map[models.RoleType][]string{
	models.RoleStudent: {
		CapBrowseCatalog,
		CapEnrollCourse,
	},
	models.RoleTeacher: {
		CapBrowseCatalog,
		CapAuthorCourses,
		CapImportCourses,
		CapManageOwnStudents,
	},
	models.RoleAdmin: {
		CapBrowseCatalog,
		CapAuthorCourses,
		CapImportCourses,
		CapManageOwnStudents,
		CapManageUsers,
		CapManageInstitutes,
		CapManageTechnology,
	},
}

// CapabilitiesForRole resolves the capability set of a role. Unknown
// roles get no capabilities.
func CapabilitiesForRole(role models.RoleType) []string {
	caps, ok := roleCapabilities[role]
	if !ok {
		return []string{}
	}
	out := make([]string, len(caps))
	copy(out, caps)
	return out
}

// HasCapability reports whether a role carries a capability.
func HasCapability(role models.RoleType, capability string) bool {
	for _, c := range roleCapabilities[role] {
		if c == capability {
			return true
		}
	}
	return false
}
