package constants

import "fmt"

// Closed role enumeration. Every server-side capability check goes through
// these values, never through ad hoc strings in controllers.
const (
	RoleStudent           = "student"
	RoleLecturer          = "lecturer"
	RolePrincipalLecturer = "principal_lecturer"
	RoleProgramLeader     = "program_leader"
	RoleAdmin             = "admin"
)

var (
	AllRoles = []string{
		RoleStudent,
		RoleLecturer,
		RolePrincipalLecturer,
		RoleProgramLeader,
		RoleAdmin,
	}

	// Roles allowed to submit and maintain lecture reports.
	ReportingRoles = []string{
		RoleLecturer,
		RolePrincipalLecturer,
		RoleProgramLeader,
		RoleAdmin,
	}

	// Roles allowed to manage faculties, courses and classes.
	LeaderAndAbove = []string{
		RoleProgramLeader,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Forbidden message templates
const (
	errOnlyLeadersCanAccess   = "Only program leaders or admins may manage %s."
	errOnlyReportersCanAccess = "Only lecturers and above may manage %s."
	errOnlyAdminsCanAccess    = "Only admins may manage %s."
)

func RoleErrorLeader(feature string) string {
	return fmt.Sprintf(errOnlyLeadersCanAccess, feature)
}

func RoleErrorReporter(feature string) string {
	return fmt.Sprintf(errOnlyReportersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(errOnlyAdminsCanAccess, feature)
}
